package config

import (
	"github.com/rshade/headway/internal/advisor"
)

// CalibrationConfig selects the speed-to-distance constants. Preset picks a
// named table; any numeric field that is set overrides the preset's value.
type CalibrationConfig struct {
	Preset            string   `yaml:"preset,omitempty" json:"preset,omitempty"`
	MinSpeedKmh       *float64 `yaml:"min_speed_kmh,omitempty" json:"min_speed_kmh,omitempty"`
	MaxSpeedKmh       *float64 `yaml:"max_speed_kmh,omitempty" json:"max_speed_kmh,omitempty"`
	MinDistanceFactor *float64 `yaml:"min_distance_factor,omitempty" json:"min_distance_factor,omitempty"`
	MaxDistanceFactor *float64 `yaml:"max_distance_factor,omitempty" json:"max_distance_factor,omitempty"`
	LengthM           *float64 `yaml:"length_m,omitempty" json:"length_m,omitempty"`
}

// DefaultCalibrationConfig selects the standard preset with no overrides.
func DefaultCalibrationConfig() CalibrationConfig {
	return CalibrationConfig{Preset: advisor.PresetStandard}
}

// Build resolves the preset and overrides into a validated Calibration.
// Ordering violations fail here, with advisor.ErrInvalidConfiguration.
func (c CalibrationConfig) Build() (advisor.Calibration, error) {
	base := advisor.DefaultCalibration()
	if c.Preset != "" {
		preset, err := advisor.Preset(c.Preset)
		if err != nil {
			return advisor.Calibration{}, err
		}
		base = preset
	}

	return advisor.NewCalibration(
		valueOr(c.MinSpeedKmh, base.MinSpeed()),
		valueOr(c.MaxSpeedKmh, base.MaxSpeed()),
		valueOr(c.MinDistanceFactor, base.MinDistanceFactor()),
		valueOr(c.MaxDistanceFactor, base.MaxDistanceFactor()),
		valueOr(c.LengthM, base.LengthUnit()),
	)
}

// HasOverrides reports whether any numeric field is set.
func (c CalibrationConfig) HasOverrides() bool {
	return c.MinSpeedKmh != nil || c.MaxSpeedKmh != nil ||
		c.MinDistanceFactor != nil || c.MaxDistanceFactor != nil || c.LengthM != nil
}

func valueOr(p *float64, fallback float64) float64 {
	if p == nil {
		return fallback
	}
	return *p
}
