package units

// Conversion constants for normalizing activity data between measurement units.
// Each family converts through a base unit (kWh for energy, liter for volume,
// kg for mass), so a conversion between any two units in a family is
// value * fromFactor / toFactor.
//
// Sources: NIST SP 811 for volume/mass; EIA unit equivalents for energy.
const (
	// KWhPerKWh is the identity factor for kilowatt-hours.
	KWhPerKWh = 1.0

	// KWhPerMWh converts megawatt-hours to kilowatt-hours.
	KWhPerMWh = 1000.0

	// KWhPerGJ converts gigajoules to kilowatt-hours.
	KWhPerGJ = 277.777778

	// KWhPerMMBtu converts million British thermal units to kilowatt-hours.
	// The inverse (1 kWh = 0.003412 MMBtu) is the commonly published figure.
	KWhPerMMBtu = 293.071070

	// KWhPerTherm converts therms to kilowatt-hours.
	KWhPerTherm = 29.307107

	// LitersPerLiter is the identity factor for liters.
	LitersPerLiter = 1.0

	// LitersPerCubicMeter converts cubic meters to liters.
	LitersPerCubicMeter = 1000.0

	// LitersPerGallon converts US gallons to liters.
	// The inverse (1 liter = 0.264172 gallons) is the commonly published figure.
	LitersPerGallon = 3.785412

	// LitersPerBarrel converts oil barrels (42 US gallons) to liters.
	LitersPerBarrel = 158.987295

	// KgPerKg is the identity factor for kilograms.
	KgPerKg = 1.0

	// KgPerGram converts grams to kilograms.
	KgPerGram = 0.001

	// KgPerPound converts pounds to kilograms.
	KgPerPound = 0.453592

	// KgPerTonne converts metric tonnes to kilograms.
	KgPerTonne = 1000.0

	// KgPerShortTon converts US short tons to kilograms.
	KgPerShortTon = 907.18474
)
