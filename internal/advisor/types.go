package advisor

import (
	"fmt"
	"math"
	"sort"
)

// SpeedUnit identifies the unit a speed reading is expressed in.
type SpeedUnit string

// Supported speed units.
const (
	// UnitKmh is kilometers per hour, the canonical unit.
	UnitKmh SpeedUnit = "kmh"
	// UnitMetersPerSecond is what platform location APIs report.
	UnitMetersPerSecond SpeedUnit = "ms"
	// UnitMph is miles per hour.
	UnitMph SpeedUnit = "mph"
)

// Regime is the speed range that determined a recommendation.
type Regime int

const (
	// RegimeBelowMinimum applies at or below the calibrated minimum speed.
	RegimeBelowMinimum Regime = iota
	// RegimeInRange applies strictly between the minimum and maximum speeds.
	RegimeInRange
	// RegimeAboveMaximum applies at or above the calibrated maximum speed.
	RegimeAboveMaximum
)

// String returns the snake_case name used in logs and machine output.
func (r Regime) String() string {
	switch r {
	case RegimeBelowMinimum:
		return "below_minimum"
	case RegimeInRange:
		return "in_range"
	case RegimeAboveMaximum:
		return "above_maximum"
	default:
		return fmt.Sprintf("regime(%d)", int(r))
	}
}

// MarshalText lets regimes appear by name in JSON and YAML output.
func (r Regime) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText parses a regime name written by MarshalText.
func (r *Regime) UnmarshalText(text []byte) error {
	parsed, err := ParseRegime(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseRegime resolves a regime name such as "in_range".
func ParseRegime(s string) (Regime, error) {
	for _, r := range []Regime{RegimeBelowMinimum, RegimeInRange, RegimeAboveMaximum} {
		if r.String() == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown regime %q", s)
}

// Calibration holds the constants of the speed-to-distance mapping.
// It can only be built through NewCalibration, DefaultCalibration or Preset,
// so a Calibration value always satisfies its ordering invariant.
type Calibration struct {
	minSpeed  float64
	maxSpeed  float64
	minFactor float64
	maxFactor float64
	length    float64
}

// NewCalibration validates the constants and returns a Calibration.
// Speeds are in km/h and length is in meters.
func NewCalibration(minSpeed, maxSpeed, minFactor, maxFactor, length float64) (Calibration, error) {
	fields := []struct {
		name  string
		value float64
	}{
		{"min speed", minSpeed},
		{"max speed", maxSpeed},
		{"min distance factor", minFactor},
		{"max distance factor", maxFactor},
		{"length", length},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return Calibration{}, fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidConfiguration, f.name, f.value)
		}
	}

	if minSpeed < 0 {
		return Calibration{}, fmt.Errorf("%w: min speed must be >= 0, got %.2f", ErrInvalidConfiguration, minSpeed)
	}
	if minSpeed >= maxSpeed {
		return Calibration{}, fmt.Errorf("%w: min speed %.2f must be below max speed %.2f",
			ErrInvalidConfiguration, minSpeed, maxSpeed)
	}
	if minFactor < 0 {
		return Calibration{}, fmt.Errorf("%w: min distance factor must be >= 0, got %.2f",
			ErrInvalidConfiguration, minFactor)
	}
	if minFactor >= maxFactor {
		return Calibration{}, fmt.Errorf("%w: min distance factor %.2f must be below max distance factor %.2f",
			ErrInvalidConfiguration, minFactor, maxFactor)
	}
	if length <= 0 {
		return Calibration{}, fmt.Errorf("%w: length must be > 0, got %.2f", ErrInvalidConfiguration, length)
	}

	return Calibration{
		minSpeed:  minSpeed,
		maxSpeed:  maxSpeed,
		minFactor: minFactor,
		maxFactor: maxFactor,
		length:    length,
	}, nil
}

// DefaultCalibration returns the standard 30-120 km/h, 2-7 lengths, 7 m table.
func DefaultCalibration() Calibration {
	return Calibration{
		minSpeed:  DefaultMinSpeedKmh,
		maxSpeed:  DefaultMaxSpeedKmh,
		minFactor: DefaultMinDistanceFactor,
		maxFactor: DefaultMaxDistanceFactor,
		length:    DefaultLengthMeters,
	}
}

// Preset returns the named calibration table.
func Preset(name string) (Calibration, error) {
	length, ok := presetLengths[name]
	if !ok {
		return Calibration{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	c := DefaultCalibration()
	c.length = length
	return c, nil
}

// PresetNames returns the available preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presetLengths))
	for name := range presetLengths {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MinSpeed returns the lower speed bound in km/h.
func (c Calibration) MinSpeed() float64 { return c.minSpeed }

// MaxSpeed returns the upper speed bound in km/h.
func (c Calibration) MaxSpeed() float64 { return c.maxSpeed }

// MinDistanceFactor returns the number of lengths kept at or below MinSpeed.
func (c Calibration) MinDistanceFactor() float64 { return c.minFactor }

// MaxDistanceFactor returns the number of lengths kept at or above MaxSpeed.
func (c Calibration) MaxDistanceFactor() float64 { return c.maxFactor }

// LengthUnit returns the reference vehicle length in meters.
func (c Calibration) LengthUnit() float64 { return c.length }

// MinDistance returns the clamped distance in meters for low speeds.
func (c Calibration) MinDistance() float64 { return c.minFactor * c.length }

// MaxDistance returns the clamped distance in meters for high speeds.
func (c Calibration) MaxDistance() float64 { return c.maxFactor * c.length }

// IsZero reports whether c was never initialized.
func (c Calibration) IsZero() bool { return c == Calibration{} }

// Recommendation is the result of mapping one speed sample.
type Recommendation struct {
	// SpeedKmh is the normalized input speed.
	SpeedKmh float64 `json:"speed_kmh" yaml:"speed_kmh"`
	// Distance is the recommended following distance in meters.
	Distance float64 `json:"distance_m" yaml:"distance_m"`
	// Regime is the branch of the mapping that produced Distance.
	Regime Regime `json:"regime" yaml:"regime"`
}
