// Package factors provides the emission-factor registry: reference data that
// maps a unit of activity (fuel burned, electricity consumed, distance
// traveled) to an emitted mass of CO2e.
//
// All factors are stored in kg CO2e per canonical unit. Calculators divide by
// 1000 exactly once to report tonnes.
package factors

import "fmt"

// Scope is a GHG Protocol emission scope.
type Scope int

const (
	// Scope1 covers direct emissions from owned or controlled sources.
	Scope1 Scope = 1

	// Scope2 covers indirect emissions from purchased energy.
	Scope2 Scope = 2

	// Scope3 covers value-chain emissions (GHG Protocol categories 1-15).
	Scope3 Scope = 3
)

// Valid reports whether the scope is one of the three GHG Protocol scopes.
func (s Scope) Valid() bool {
	return s >= Scope1 && s <= Scope3
}

// String returns a human-readable representation of the Scope.
func (s Scope) String() string {
	if s.Valid() {
		return fmt.Sprintf("scope %d", int(s))
	}
	return fmt.Sprintf("Scope(%d)", int(s))
}

// Category is the top-level emission source classification.
type Category string

const (
	CategoryFuel        Category = "fuel"
	CategoryElectricity Category = "electricity"
	CategoryTransport   Category = "transport"
	CategoryMaterial    Category = "material"
	CategoryWaste       Category = "waste"
	CategoryRefrigerant Category = "refrigerant"
	CategoryProcess     Category = "process"
)

// RegionGlobal is the region code for globally averaged factors. It is the
// first fallback when a caller's region has no specific factor.
const RegionGlobal = "GLOBAL"

// EmissionFactor is an immutable reference record mapping one canonical unit
// of activity to kg CO2e.
type EmissionFactor struct {
	// Category is the top-level source classification.
	Category Category `json:"category"`

	// Subcategory is the specific source key (e.g. "natural_gas").
	Subcategory string `json:"subcategory"`

	// Scope is the GHG Protocol scope this factor applies to.
	Scope Scope `json:"scope"`

	// Factor is the emission intensity in kg CO2e per canonical unit.
	Factor float64 `json:"factor"`

	// Unit is the canonical activity unit (e.g. "MMBtu", "kWh", "kg").
	Unit string `json:"unit"`

	// Source is the publishing body for this factor (provenance only).
	Source string `json:"source"`

	// Methodology describes how the factor was derived (provenance only).
	Methodology string `json:"methodology"`

	// Region is an ISO-style code or RegionGlobal.
	Region string `json:"region"`

	// Year is the vintage of the factor.
	Year int `json:"year"`
}

// MatchQuality describes how closely a resolved factor matched the request.
type MatchQuality int

const (
	// MatchExactRegion means the factor matched the requested region.
	MatchExactRegion MatchQuality = iota

	// MatchGlobalFallback means no region-specific factor existed and the
	// GLOBAL factor was used.
	MatchGlobalFallback

	// MatchAnyRegion means neither the requested region nor GLOBAL had a
	// factor; an arbitrary region's factor was used. Callers must treat the
	// result as low confidence.
	MatchAnyRegion
)

// String returns a human-readable representation of the MatchQuality.
func (m MatchQuality) String() string {
	switch m {
	case MatchExactRegion:
		return "exact_region"
	case MatchGlobalFallback:
		return "global_fallback"
	case MatchAnyRegion:
		return "any_region"
	default:
		return fmt.Sprintf("MatchQuality(%d)", int(m))
	}
}

// Exact reports whether resolution did not fall back past the requested region.
func (m MatchQuality) Exact() bool {
	return m == MatchExactRegion
}
