package advisor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DistanceUnit identifies the unit a distance is displayed in.
type DistanceUnit string

// Supported display units.
const (
	DistanceMeters DistanceUnit = "m"
	DistanceFeet   DistanceUnit = "ft"
)

// MaxPrecision is the largest number of decimals FormatDistance will print.
const MaxPrecision = 6

// printer is the locale-aware message printer for number formatting.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// ParseDistanceUnit resolves a user-supplied distance unit name.
func ParseDistanceUnit(s string) (DistanceUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "meter", "meters", "metre", "metres":
		return DistanceMeters, nil
	case "ft", "foot", "feet":
		return DistanceFeet, nil
	default:
		return "", fmt.Errorf("%w: distance unit %q (use m or ft)", ErrInvalidUnit, s)
	}
}

// Label returns the long display name of the unit.
func (u DistanceUnit) Label() string {
	if u == DistanceFeet {
		return "feet"
	}
	return "meters"
}

// Convert converts a distance in meters into u.
func (u DistanceUnit) Convert(meters float64) float64 {
	if u == DistanceFeet {
		return meters * MetersToFeet
	}
	return meters
}

// FormatDistance renders a distance in meters for display, e.g. "31.5 meters"
// or "1,234.5 feet". precision is clamped to [0, MaxPrecision].
func FormatDistance(meters float64, unit DistanceUnit, precision int) string {
	return FormatNumber(unit.Convert(meters), precision) + " " + unit.Label()
}

// FormatSpeed renders a km/h speed in the given unit, e.g. "20.8 m/s".
func FormatSpeed(kmh float64, unit SpeedUnit, precision int) string {
	v, err := FromKmh(kmh, unit)
	if err != nil {
		v, unit = kmh, UnitKmh
	}
	return FormatNumber(v, precision) + " " + unit.Label()
}

// FormatNumber formats v with thousand separators and a fixed number of decimals.
// Example: FormatNumber(1234.567, 2) returns "1,234.57".
func FormatNumber(v float64, precision int) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	if math.IsInf(v, -1) {
		return "-∞"
	}
	if math.IsNaN(v) {
		return "n/a"
	}
	precision = max(0, min(precision, MaxPrecision))

	formatted := strconv.FormatFloat(math.Abs(v), 'f', precision, 64)
	intPart, frac, hasFrac := strings.Cut(formatted, ".")

	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return formatted
	}

	sign := ""
	if v < 0 && strings.Trim(formatted, "0.") != "" {
		sign = "-"
	}

	out := sign + printer.Sprintf("%d", n)
	if hasFrac {
		out += "." + frac
	}
	return out
}
