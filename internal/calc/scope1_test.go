package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carbonclear/emissions-engine/internal/factors"
)

func TestCalculateScope1_NaturalGasKnownValue(t *testing.T) {
	c := testCalculator(t)

	// 1000 MMBtu of natural gas at 53.02 kg CO2e/MMBtu is 53.02 tCO2e.
	result, err := c.CalculateScope1(Scope1Input{
		SourceCategory: SourceStationaryCombustion,
		FuelType:       "natural_gas",
		ActivityData:   1000,
		ActivityUnit:   "MMBtu",
	}, "US")

	require.NoError(t, err)
	assert.InDelta(t, 53.02, result.TotalEmissions, 0.01)
	assert.InDelta(t, 53.02, result.EmissionFactor, 0.0001)
	assert.Equal(t, factors.Scope1, result.Scope)
	assert.Equal(t, factors.CategoryFuel, result.Category)
	assert.Equal(t, "natural_gas", result.Subcategory)
	assert.Equal(t, factors.MatchExactRegion, result.Match)
	assert.True(t, result.UnitVerified)
	assert.Equal(t, 100, result.ConfidenceLevel)
}

func TestCalculateScope1_UnitConversion(t *testing.T) {
	c := testCalculator(t)

	// 1000 therms is 100 MMBtu, so a tenth of the 1000 MMBtu result.
	result, err := c.CalculateScope1(Scope1Input{
		SourceCategory: SourceStationaryCombustion,
		FuelType:       "natural_gas",
		ActivityData:   1000,
		ActivityUnit:   "therm",
	}, "US")

	require.NoError(t, err)
	assert.InDelta(t, 5.302, result.TotalEmissions, 0.001)
	assert.True(t, result.UnitVerified)
	assert.Equal(t, 100, result.ConfidenceLevel)
}

func TestCalculateScope1_UnverifiedUnitLowersConfidence(t *testing.T) {
	c := testCalculator(t)

	// The diesel factor is per gallon; kg has no conversion path to volume,
	// so the value passes through and confidence drops.
	result, err := c.CalculateScope1(Scope1Input{
		SourceCategory: SourceMobileCombustion,
		FuelType:       "diesel",
		ActivityData:   100,
		ActivityUnit:   "kg",
	}, "US")

	require.NoError(t, err)
	assert.False(t, result.UnitVerified)
	assert.Equal(t, 85, result.ConfidenceLevel)
	assert.InDelta(t, 100*10.21/1000, result.TotalEmissions, 0.0001)
}

func TestCalculateScope1_RegionFallback(t *testing.T) {
	c := testCalculator(t)

	result, err := c.CalculateScope1(Scope1Input{
		SourceCategory: SourceStationaryCombustion,
		FuelType:       "natural_gas",
		ActivityData:   1000,
		ActivityUnit:   "MMBtu",
	}, "FR")

	require.NoError(t, err)
	assert.Equal(t, factors.MatchGlobalFallback, result.Match)
	assert.Equal(t, "GLOBAL", result.FactorRegion)
	assert.Equal(t, 80, result.ConfidenceLevel)
	assert.InDelta(t, 53.06, result.TotalEmissions, 0.01)
}

func TestCalculateScope1_AnyRegionFallback(t *testing.T) {
	c := testCalculator(t)

	// Propane has only a US row: a German caller still gets a result, at
	// degraded confidence.
	result, err := c.CalculateScope1(Scope1Input{
		SourceCategory: SourceStationaryCombustion,
		FuelType:       "propane",
		ActivityData:   500,
		ActivityUnit:   "gallon",
	}, "DE")

	require.NoError(t, err)
	assert.Equal(t, factors.MatchAnyRegion, result.Match)
	assert.Equal(t, "US", result.FactorRegion)
	assert.Equal(t, 80, result.ConfidenceLevel)
}

func TestCalculateScope1_DefaultRegion(t *testing.T) {
	c := testCalculator(t)

	result, err := c.CalculateScope1(Scope1Input{
		SourceCategory: SourceStationaryCombustion,
		FuelType:       "natural_gas",
		ActivityData:   10,
		ActivityUnit:   "MMBtu",
	}, "")

	require.NoError(t, err)
	assert.Equal(t, "US", result.FactorRegion, "empty region defaults to US")
	assert.Equal(t, factors.MatchExactRegion, result.Match)
}

func TestCalculateScope1_FugitiveRefrigerant(t *testing.T) {
	c := testCalculator(t)

	// 1.5 kg of leaked R-410A at GWP 2088 is 3.132 tCO2e.
	result, err := c.CalculateScope1(Scope1Input{
		SourceCategory: SourceFugitive,
		FuelType:       "r410a",
		ActivityData:   1.5,
		ActivityUnit:   "kg",
	}, "US")

	require.NoError(t, err)
	assert.Equal(t, factors.CategoryRefrigerant, result.Category)
	assert.InDelta(t, 3.132, result.TotalEmissions, 0.001)
}

func TestCalculateScope1_EstimatedPenalty(t *testing.T) {
	c := testCalculator(t)

	result, err := c.CalculateScope1(Scope1Input{
		SourceCategory: SourceStationaryCombustion,
		FuelType:       "natural_gas",
		ActivityData:   100,
		ActivityUnit:   "MMBtu",
		Estimated:      true,
	}, "US")

	require.NoError(t, err)
	assert.Equal(t, 90, result.ConfidenceLevel)
}

func TestCalculateScope1_Errors(t *testing.T) {
	c := testCalculator(t)

	tests := []struct {
		name    string
		input   Scope1Input
		wantErr error
	}{
		{
			"missing source category",
			Scope1Input{FuelType: "natural_gas", ActivityData: 10, ActivityUnit: "MMBtu"},
			ErrMissingField,
		},
		{
			"invalid source category",
			Scope1Input{SourceCategory: "teleportation", FuelType: "natural_gas", ActivityData: 10, ActivityUnit: "MMBtu"},
			ErrInvalidFieldValue,
		},
		{
			"missing fuel type",
			Scope1Input{SourceCategory: SourceStationaryCombustion, ActivityData: 10, ActivityUnit: "MMBtu"},
			ErrMissingField,
		},
		{
			"negative activity data",
			Scope1Input{SourceCategory: SourceStationaryCombustion, FuelType: "natural_gas", ActivityData: -1, ActivityUnit: "MMBtu"},
			ErrInvalidActivityData,
		},
		{
			"activity data over ceiling",
			Scope1Input{SourceCategory: SourceStationaryCombustion, FuelType: "natural_gas", ActivityData: 2_000_000, ActivityUnit: "MMBtu"},
			ErrActivityDataOutOfRange,
		},
		{
			"unknown fuel",
			Scope1Input{SourceCategory: SourceStationaryCombustion, FuelType: "unobtainium", ActivityData: 10, ActivityUnit: "MMBtu"},
			factors.ErrUnknownEmissionSource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.CalculateScope1(tt.input, "US")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
