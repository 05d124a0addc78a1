package advisor

import (
	"fmt"
	"strings"
)

// ParseSpeedUnit resolves a user-supplied unit name, accepting common
// spellings (km/h, kph, m/s, mps, mi/h). Matching is case-insensitive.
func ParseSpeedUnit(s string) (SpeedUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kmh", "km/h", "kph":
		return UnitKmh, nil
	case "ms", "m/s", "mps":
		return UnitMetersPerSecond, nil
	case "mph", "mi/h":
		return UnitMph, nil
	default:
		return "", fmt.Errorf("%w: speed unit %q (use kmh, ms or mph)", ErrInvalidUnit, s)
	}
}

// ToKmh converts a speed value to km/h.
// The value is not normalized here; RecommendDistance handles negative input.
func ToKmh(value float64, unit SpeedUnit) (float64, error) {
	switch unit {
	case UnitKmh, "":
		return value * KmhToKmh, nil
	case UnitMetersPerSecond:
		return value * MetersPerSecondToKmh, nil
	case UnitMph:
		return value * MphToKmh, nil
	default:
		return 0, fmt.Errorf("%w: speed unit %q", ErrInvalidUnit, unit)
	}
}

// FromKmh converts a km/h value to the given unit.
func FromKmh(kmh float64, unit SpeedUnit) (float64, error) {
	switch unit {
	case UnitKmh, "":
		return kmh, nil
	case UnitMetersPerSecond:
		return kmh / MetersPerSecondToKmh, nil
	case UnitMph:
		return kmh / MphToKmh, nil
	default:
		return 0, fmt.Errorf("%w: speed unit %q", ErrInvalidUnit, unit)
	}
}

// Label returns the display suffix for the unit.
func (u SpeedUnit) Label() string {
	switch u {
	case UnitMetersPerSecond:
		return "m/s"
	case UnitMph:
		return "mph"
	default:
		return "km/h"
	}
}
