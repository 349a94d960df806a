package calc

import (
	"fmt"

	"github.com/carbonclear/emissions-engine/internal/factors"
)

// sourceCategoryNamespace maps a scope 1 source category to the registry
// category namespace searched for its fuel type.
var sourceCategoryNamespace = map[SourceCategory]factors.Category{
	SourceStationaryCombustion: factors.CategoryFuel,
	SourceMobileCombustion:     factors.CategoryFuel,
	SourceProcess:              factors.CategoryProcess,
	SourceFugitive:             factors.CategoryRefrigerant,
}

// CalculateScope1 computes direct emissions for one activity record.
// Region defaults to DefaultRegion when empty.
func (c *Calculator) CalculateScope1(input Scope1Input, region string) (EmissionResult, error) {
	if input.SourceCategory == "" {
		return EmissionResult{}, fmt.Errorf("source_category: %w", ErrMissingField)
	}
	if !input.SourceCategory.Valid() {
		return EmissionResult{}, fmt.Errorf("source_category %q is not a scope 1 source: %w", input.SourceCategory, ErrInvalidFieldValue)
	}
	if input.FuelType == "" {
		return EmissionResult{}, fmt.Errorf("fuel_type: %w", ErrMissingField)
	}
	if err := validateActivityData(input.ActivityData); err != nil {
		return EmissionResult{}, err
	}

	category := sourceCategoryNamespace[input.SourceCategory]

	return c.compute(
		factors.Scope1,
		category,
		input.FuelType,
		input.ActivityData,
		input.ActivityUnit,
		region,
		input.Estimated,
	)
}
