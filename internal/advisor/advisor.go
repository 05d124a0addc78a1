package advisor

import (
	"fmt"
	"math"
)

// RecommendDistance maps a speed in km/h to a following distance in meters.
//
// Negative and NaN speeds are treated as zero; some location sources report
// a negative speed when the reading is not valid. The boundaries belong to the
// clamped branches, which yield the same value interpolation would.
//
// Example:
//
//	r := RecommendDistance(75, DefaultCalibration())
//	// r.Distance == 31.5, r.Regime == RegimeInRange
func RecommendDistance(speedKmh float64, c Calibration) Recommendation {
	speed := normalizeSpeed(speedKmh)

	switch {
	case speed >= c.maxSpeed:
		return Recommendation{SpeedKmh: speed, Distance: c.maxFactor * c.length, Regime: RegimeAboveMaximum}
	case speed <= c.minSpeed:
		return Recommendation{SpeedKmh: speed, Distance: c.minFactor * c.length, Regime: RegimeBelowMinimum}
	}

	ratio := (c.maxFactor - c.minFactor) / (c.maxSpeed - c.minSpeed)
	distance := ((speed-c.minSpeed)*ratio + c.minFactor) * c.length

	return Recommendation{SpeedKmh: speed, Distance: distance, Regime: RegimeInRange}
}

// normalizeSpeed folds readings that cannot be a real speed onto zero.
// +Inf is kept and falls into the upper clamp.
func normalizeSpeed(speed float64) float64 {
	if math.IsNaN(speed) || speed < 0 {
		return 0
	}
	return speed
}

// Advisor binds a Calibration to the recommendation functions.
// An Advisor holds no mutable state and is safe for concurrent use.
type Advisor struct {
	calibration Calibration
}

// NewAdvisor returns an Advisor for c. A zero Calibration selects the defaults.
func NewAdvisor(c Calibration) *Advisor {
	if c.IsZero() {
		c = DefaultCalibration()
	}
	return &Advisor{calibration: c}
}

// Calibration returns the constants the advisor was built with.
func (a *Advisor) Calibration() Calibration {
	return a.calibration
}

// Recommend maps a speed in km/h to a Recommendation.
func (a *Advisor) Recommend(speedKmh float64) Recommendation {
	return RecommendDistance(speedKmh, a.calibration)
}

// RecommendIn converts value from unit to km/h and maps it.
func (a *Advisor) RecommendIn(value float64, unit SpeedUnit) (Recommendation, error) {
	kmh, err := ToKmh(value, unit)
	if err != nil {
		return Recommendation{}, err
	}
	return a.Recommend(kmh), nil
}

// maxTableRows caps the size of a speed sweep.
const maxTableRows = 10_000

// Table returns the recommendations for every speed from 'from' to 'to'
// (inclusive) in increments of step, all in km/h.
func Table(c Calibration, from, to, step float64) ([]Recommendation, error) {
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("%w: step must be > 0, got %v", ErrInvalidRange, step)
	}
	if math.IsNaN(from) || math.IsNaN(to) || math.IsInf(from, 0) || math.IsInf(to, 0) {
		return nil, fmt.Errorf("%w: bounds must be finite", ErrInvalidRange)
	}
	if from > to {
		return nil, fmt.Errorf("%w: from %.2f is above to %.2f", ErrInvalidRange, from, to)
	}

	n := math.Floor((to-from)/step) + 1
	if n > maxTableRows {
		return nil, fmt.Errorf("%w: %.0f rows exceeds limit of %d", ErrInvalidRange, n, maxTableRows)
	}
	rows := int(n)

	out := make([]Recommendation, 0, rows)
	for i := range rows {
		out = append(out, RecommendDistance(from+float64(i)*step, c))
	}
	return out, nil
}
