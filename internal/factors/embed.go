package factors

import (
	_ "embed"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// Embedded seed dataset. Regenerate or audit with tools/validate-factors.
//
//go:embed data/emission_factors.json
var rawFactorsJSON []byte

// factorDataset is the on-disk shape of a factor data file.
type factorDataset struct {
	Version string           `json:"version"`
	Source  string           `json:"source"`
	Factors []EmissionFactor `json:"factors"`
}

// LoadDataset parses a factor data file and returns its rows.
func LoadDataset(data []byte) ([]EmissionFactor, error) {
	var ds factorDataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parsing factor dataset: %w", err)
	}
	if len(ds.Factors) == 0 {
		return nil, fmt.Errorf("dataset %q has no factor rows: %w", ds.Version, ErrInvalidDataset)
	}
	for i, f := range ds.Factors {
		if f.Subcategory == "" || f.Unit == "" || !f.Scope.Valid() {
			return nil, fmt.Errorf("row %d (%s/%s) is malformed: %w", i, f.Category, f.Subcategory, ErrInvalidDataset)
		}
		if f.Factor < 0 {
			return nil, fmt.Errorf("row %d (%s/%s) has negative factor: %w", i, f.Category, f.Subcategory, ErrInvalidDataset)
		}
	}
	return ds.Factors, nil
}

// NewDefaultRegistry builds a Registry from the embedded seed dataset.
// Each call returns an independent snapshot.
func NewDefaultRegistry(logger zerolog.Logger) (*Registry, error) {
	rows, err := LoadDataset(rawFactorsJSON)
	if err != nil {
		return nil, err
	}
	return NewRegistry(rows, logger), nil
}
