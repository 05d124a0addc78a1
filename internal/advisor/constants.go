package advisor

// Default calibration table.
//
// Distances are expressed as a factor of a reference vehicle length:
//
//	distance = factor * length
const (
	// DefaultMinSpeedKmh is the speed at or below which the minimum distance applies.
	DefaultMinSpeedKmh = 30.0

	// DefaultMaxSpeedKmh is the speed at or above which the maximum distance applies.
	DefaultMaxSpeedKmh = 120.0

	// DefaultMinDistanceFactor is the number of vehicle lengths kept at low speed.
	DefaultMinDistanceFactor = 2.0

	// DefaultMaxDistanceFactor is the number of vehicle lengths kept at high speed.
	DefaultMaxDistanceFactor = 7.0

	// DefaultLengthMeters is the reference vehicle length in meters.
	DefaultLengthMeters = 7.0
)

// Speed conversion factors to km/h.
const (
	// MetersPerSecondToKmh converts m/s to km/h.
	MetersPerSecondToKmh = 3.6

	// KmhToKmh is the identity conversion.
	KmhToKmh = 1.0

	// MphToKmh converts miles per hour to km/h.
	MphToKmh = 1.609344
)

// MetersToFeet converts meters to international feet.
const MetersToFeet = 3.280839895

// Preset names for the calibration tables in use.
const (
	PresetStandard = "standard"
	PresetMidsize  = "midsize"
	PresetLarge    = "large"
)

// presetLengths maps a preset name to its reference vehicle length in meters.
//
//nolint:gochecknoglobals // Read-only lookup table.
var presetLengths = map[string]float64{
	PresetStandard: DefaultLengthMeters,
	PresetMidsize:  8.0,
	PresetLarge:    10.0,
}
