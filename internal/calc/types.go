// Package calc implements the scope 1/2/3 emission calculators.
//
// Each calculation runs the same pipeline: validate the input, resolve an
// emission factor, normalize the activity unit to the factor's canonical
// unit, compute tCO2e, and score confidence. Calculations are pure and
// independent; a batch may run concurrently against one registry snapshot.
package calc

import "github.com/carbonclear/emissions-engine/internal/factors"

// SourceCategory classifies a scope 1 emission source.
type SourceCategory string

const (
	// SourceStationaryCombustion covers fuel burned in fixed equipment
	// (boilers, furnaces, generators).
	SourceStationaryCombustion SourceCategory = "stationary_combustion"

	// SourceMobileCombustion covers fuel burned in owned vehicles.
	SourceMobileCombustion SourceCategory = "mobile_combustion"

	// SourceProcess covers physical or chemical process emissions.
	SourceProcess SourceCategory = "process"

	// SourceFugitive covers leaks, primarily refrigerants.
	SourceFugitive SourceCategory = "fugitive"
)

// Valid reports whether the source category is one of the four scope 1 kinds.
func (s SourceCategory) Valid() bool {
	switch s {
	case SourceStationaryCombustion, SourceMobileCombustion, SourceProcess, SourceFugitive:
		return true
	default:
		return false
	}
}

// Scope2Method selects between location-based and market-based scope 2
// accounting.
type Scope2Method string

const (
	// MethodLocationBased uses the physical grid's average intensity.
	MethodLocationBased Scope2Method = "location"

	// MethodMarketBased uses residual-mix factors reflecting contractual
	// instruments.
	MethodMarketBased Scope2Method = "market"
)

// Scope1Input describes one direct-emission activity record.
type Scope1Input struct {
	// SourceCategory selects the factor namespace searched.
	SourceCategory SourceCategory `json:"source_category" yaml:"source_category"`

	// FuelType is the registry subcategory (e.g. "natural_gas", "r410a").
	FuelType string `json:"fuel_type" yaml:"fuel_type"`

	// ActivityData is the measured quantity. Must be positive, finite, and
	// at most MaxActivityData.
	ActivityData float64 `json:"activity_data" yaml:"activity_data"`

	// ActivityUnit is the unit ActivityData was measured in.
	ActivityUnit string `json:"activity_unit" yaml:"activity_unit"`

	// Estimated flags approximate caller-supplied values; costs confidence.
	Estimated bool `json:"estimated,omitempty" yaml:"estimated,omitempty"`
}

// Scope2Input describes one purchased-energy activity record.
type Scope2Input struct {
	// EnergyType is the purchased energy kind (electricity, steam,
	// district_heating, district_cooling).
	EnergyType string `json:"energy_type" yaml:"energy_type"`

	// ActivityData is the measured quantity.
	ActivityData float64 `json:"activity_data" yaml:"activity_data"`

	// ActivityUnit is the unit ActivityData was measured in.
	ActivityUnit string `json:"activity_unit" yaml:"activity_unit"`

	// GridRegion optionally overrides the caller region for factor lookup
	// (e.g. an eGRID subregion like "US-CAMX").
	GridRegion string `json:"grid_region,omitempty" yaml:"grid_region,omitempty"`

	// Method selects location-based (default) or market-based accounting.
	Method Scope2Method `json:"method,omitempty" yaml:"method,omitempty"`

	// Estimated flags approximate caller-supplied values; costs confidence.
	Estimated bool `json:"estimated,omitempty" yaml:"estimated,omitempty"`
}

// Scope3Input describes one value-chain activity record.
type Scope3Input struct {
	// CategoryNumber is the GHG Protocol scope 3 category (1-15).
	CategoryNumber int `json:"category_number" yaml:"category_number"`

	// ActivityType refines the factor subcategory (e.g. "steel",
	// "air_short_haul"). When empty, the category's default subcategory is
	// used.
	ActivityType string `json:"activity_type,omitempty" yaml:"activity_type,omitempty"`

	// ActivityData is the measured quantity.
	ActivityData float64 `json:"activity_data" yaml:"activity_data"`

	// ActivityUnit is the unit ActivityData was measured in.
	ActivityUnit string `json:"activity_unit" yaml:"activity_unit"`

	// Estimated flags approximate caller-supplied values; costs confidence.
	Estimated bool `json:"estimated,omitempty" yaml:"estimated,omitempty"`
}

// EmissionResult is the outcome of one calculation. Results are constructed
// fresh per call, never mutated, and safe to serialize.
type EmissionResult struct {
	// Scope echoes the originating scope.
	Scope factors.Scope `json:"scope"`

	// Category echoes the resolved factor's category.
	Category factors.Category `json:"category"`

	// Subcategory echoes the resolved factor's subcategory.
	Subcategory string `json:"subcategory"`

	// TotalEmissions is the computed quantity in tonnes CO2e, unrounded.
	TotalEmissions float64 `json:"total_emissions"`

	// EmissionFactor is the factor value actually used (kg CO2e per
	// FactorUnit).
	EmissionFactor float64 `json:"emission_factor"`

	// FactorUnit is the canonical unit of the resolved factor.
	FactorUnit string `json:"factor_unit"`

	// FactorRegion is the region of the resolved factor row.
	FactorRegion string `json:"factor_region"`

	// Match records how closely factor resolution matched the request.
	Match factors.MatchQuality `json:"match"`

	// UnitVerified reports whether the unit conversion path was verified.
	UnitVerified bool `json:"unit_verified"`

	// ConfidenceLevel is a 0-100 heuristic score; lower when resolution or
	// unit conversion needed fallbacks.
	ConfidenceLevel int `json:"confidence_level"`
}
