// Package units converts activity data between measurement units.
//
// It maintains fixed conversion tables for three physical quantity families
// (energy, volume, mass). Units outside those families, such as passenger-km
// or count-based units, pass through unchanged: unit mismatches are common in
// loosely specified activity data, so the policy is best effort with a
// verification flag rather than rejection.
package units

import "strings"

// Family identifies the physical quantity family a unit belongs to.
type Family int

const (
	// FamilyUnknown marks units with no conversion table (pass-through).
	FamilyUnknown Family = iota

	// FamilyEnergy covers kWh, MWh, GJ, MMBtu, therm.
	FamilyEnergy

	// FamilyVolume covers liter, m3, gallon, barrel.
	FamilyVolume

	// FamilyMass covers g, kg, lb, tonne, short ton.
	FamilyMass
)

// String returns a human-readable representation of the Family.
func (f Family) String() string {
	switch f {
	case FamilyEnergy:
		return "energy"
	case FamilyVolume:
		return "volume"
	case FamilyMass:
		return "mass"
	default:
		return "unknown"
	}
}

// unitSpec pairs a unit's family with its factor to the family base unit.
type unitSpec struct {
	family Family
	factor float64
}

// unitTable maps canonical unit spellings to their conversion specs.
// Aliases are resolved by canonicalize before lookup.
var unitTable = map[string]unitSpec{
	// Energy (base: kWh)
	"kwh":   {FamilyEnergy, KWhPerKWh},
	"mwh":   {FamilyEnergy, KWhPerMWh},
	"gj":    {FamilyEnergy, KWhPerGJ},
	"mmbtu": {FamilyEnergy, KWhPerMMBtu},
	"therm": {FamilyEnergy, KWhPerTherm},

	// Volume (base: liter)
	"liter":  {FamilyVolume, LitersPerLiter},
	"m3":     {FamilyVolume, LitersPerCubicMeter},
	"gallon": {FamilyVolume, LitersPerGallon},
	"barrel": {FamilyVolume, LitersPerBarrel},

	// Mass (base: kg)
	"g":        {FamilyMass, KgPerGram},
	"kg":       {FamilyMass, KgPerKg},
	"lb":       {FamilyMass, KgPerPound},
	"tonne":    {FamilyMass, KgPerTonne},
	"shortton": {FamilyMass, KgPerShortTon},
}

// unitAliases maps alternate spellings to canonical table keys.
var unitAliases = map[string]string{
	"kilowatt_hour": "kwh",
	"megawatt_hour": "mwh",
	"gigajoule":     "gj",
	"therms":        "therm",
	"litre":         "liter",
	"liters":        "liter",
	"litres":        "liter",
	"l":             "liter",
	"cubic_meter":   "m3",
	"m^3":           "m3",
	"gallons":       "gallon",
	"gal":           "gallon",
	"bbl":           "barrel",
	"gram":          "g",
	"grams":         "g",
	"kilogram":      "kg",
	"kilograms":     "kg",
	"lbs":           "lb",
	"pound":         "lb",
	"pounds":        "lb",
	"tonnes":        "tonne",
	"metric_ton":    "tonne",
	"t":             "tonne",
	"short_ton":     "shortton",
}

// canonicalize lowercases and trims a unit string and resolves aliases.
func canonicalize(unit string) string {
	u := strings.ToLower(strings.TrimSpace(unit))
	if alias, ok := unitAliases[u]; ok {
		return alias
	}
	return u
}

// lookup returns the conversion spec for a unit, or ok=false if the unit has
// no conversion table entry.
func lookup(unit string) (unitSpec, bool) {
	spec, ok := unitTable[canonicalize(unit)]
	return spec, ok
}

// FamilyOf returns the quantity family a unit belongs to.
// Units without a table entry report FamilyUnknown.
func FamilyOf(unit string) Family {
	spec, ok := lookup(unit)
	if !ok {
		return FamilyUnknown
	}
	return spec.family
}

// IsRecognized reports whether the unit has a conversion table entry.
func IsRecognized(unit string) bool {
	_, ok := lookup(unit)
	return ok
}

// Normalize converts value from fromUnit to toUnit.
//
// The returned bool reports whether the conversion path was verified:
//   - identical units (after alias resolution) return value unchanged, verified
//   - units in the same family convert through the family base unit, verified
//   - anything else returns value unchanged, unverified
//
// An unverified result is not an error; callers downgrade confidence instead.
func Normalize(value float64, fromUnit, toUnit string) (float64, bool) {
	from := canonicalize(fromUnit)
	to := canonicalize(toUnit)

	if from == to {
		return value, true
	}

	fromSpec, fromOK := lookup(from)
	toSpec, toOK := lookup(to)
	if !fromOK || !toOK || fromSpec.family != toSpec.family {
		return value, false
	}

	return value * fromSpec.factor / toSpec.factor, true
}
