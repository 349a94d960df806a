package factors

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultRegistry(t *testing.T) {
	r, err := NewDefaultRegistry(zerolog.Nop())

	require.NoError(t, err)
	assert.Greater(t, r.Len(), 30, "seed dataset should carry a substantial factor catalog")
}

// TestDefaultDataset_FactorsWithinValidRange validates that every embedded
// factor is within a physically plausible range for its category. Grid
// electricity never exceeds ~2 kg CO2e/kWh anywhere in the world; refrigerant
// factors are GWP multipliers and legitimately run to the thousands.
func TestDefaultDataset_FactorsWithinValidRange(t *testing.T) {
	rows, err := LoadDataset(rawFactorsJSON)
	require.NoError(t, err)

	ceilings := map[Category]float64{
		CategoryFuel:        3000,
		CategoryElectricity: 100,
		CategoryTransport:   50,
		CategoryMaterial:    50,
		CategoryWaste:       5,
		CategoryRefrigerant: 15000,
		CategoryProcess:     2000,
	}

	for _, f := range rows {
		t.Run(string(f.Category)+"/"+f.Subcategory+"/"+f.Region, func(t *testing.T) {
			ceiling, known := ceilings[f.Category]
			require.True(t, known, "category %q has no validation ceiling", f.Category)
			assert.GreaterOrEqual(t, f.Factor, 0.0)
			assert.LessOrEqual(t, f.Factor, ceiling)
			assert.NotEmpty(t, f.Unit)
			assert.NotEmpty(t, f.Region)
			assert.NotEmpty(t, f.Source)
		})
	}
}

// TestDefaultDataset_ExpectedSourcesPresent pins the seed rows that the
// calculators and their documentation rely on.
func TestDefaultDataset_ExpectedSourcesPresent(t *testing.T) {
	r, err := NewDefaultRegistry(zerolog.Nop())
	require.NoError(t, err)

	tests := []struct {
		name        string
		category    Category
		subcategory string
		scope       Scope
		region      string
		wantFactor  float64
	}{
		{"US natural gas", CategoryFuel, "natural_gas", Scope1, "US", 53.02},
		{"US grid electricity", CategoryElectricity, "electricity", Scope2, "US", 0.3866},
		{"global grid electricity", CategoryElectricity, "electricity", Scope2, "GLOBAL", 0.4360},
		{"CAMX subregion", CategoryElectricity, "electricity", Scope2, "US-CAMX", 0.2250},
		{"US residual mix", CategoryElectricity, "electricity_residual_mix", Scope2, "US", 0.4510},
		{"steel", CategoryMaterial, "steel", Scope3, "GLOBAL", 2.89},
		{"short-haul flight", CategoryTransport, "air_short_haul", Scope3, "GLOBAL", 0.255},
		{"US landfill", CategoryWaste, "landfill", Scope3, "US", 0.458},
		{"R-410A", CategoryRefrigerant, "r410a", Scope1, "GLOBAL", 2088.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factor, match, err := r.Resolve(tt.category, tt.subcategory, tt.scope, tt.region)
			require.NoError(t, err)
			assert.Equal(t, MatchExactRegion, match)
			assert.InDelta(t, tt.wantFactor, factor.Factor, 0.0001)
		})
	}
}

func TestLoadDataset_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{"factors": [`},
		{"no rows", `{"version": "test", "factors": []}`},
		{"missing subcategory", `{"factors": [{"category": "fuel", "scope": 1, "factor": 1, "unit": "kg", "region": "US"}]}`},
		{"invalid scope", `{"factors": [{"category": "fuel", "subcategory": "x", "scope": 9, "factor": 1, "unit": "kg", "region": "US"}]}`},
		{"negative factor", `{"factors": [{"category": "fuel", "subcategory": "x", "scope": 1, "factor": -1, "unit": "kg", "region": "US"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadDataset([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}
