package config

import (
	"errors"
	"fmt"

	"github.com/rshade/headway/internal/advisor"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// DefaultPrecision is the number of decimals printed for distances and speeds.
const DefaultPrecision = 1

// ErrInvalidOutputFormat indicates an unknown output format.
var ErrInvalidOutputFormat = errors.New("output format must be 'table', 'json' or 'yaml'")

// ErrPrecisionOutOfRange indicates a precision outside [0, advisor.MaxPrecision].
var ErrPrecisionOutOfRange = fmt.Errorf("precision must be between 0 and %d", advisor.MaxPrecision)

// OutputConfig controls how results are printed.
type OutputConfig struct {
	// SpeedUnit is the unit speeds are entered and printed in (kmh, ms, mph).
	SpeedUnit string `yaml:"speed_unit" json:"speed_unit"`
	// DistanceUnit is the unit distances are printed in (m, ft).
	DistanceUnit string `yaml:"distance_unit" json:"distance_unit"`
	// Precision is the number of decimals printed.
	Precision int `yaml:"precision" json:"precision"`
	// Format is the default output format.
	Format string `yaml:"format" json:"format"`
}

// DefaultOutputConfig returns km/h in, meters out, one decimal, table format.
func DefaultOutputConfig() OutputConfig {
	return OutputConfig{
		SpeedUnit:    string(advisor.UnitKmh),
		DistanceUnit: string(advisor.DistanceMeters),
		Precision:    DefaultPrecision,
		Format:       FormatTable,
	}
}

// Validate checks the units, precision and format.
func (o OutputConfig) Validate() error {
	if _, err := o.ParsedSpeedUnit(); err != nil {
		return err
	}
	if _, err := o.ParsedDistanceUnit(); err != nil {
		return err
	}
	if o.Precision < 0 || o.Precision > advisor.MaxPrecision {
		return fmt.Errorf("%w: got %d", ErrPrecisionOutOfRange, o.Precision)
	}
	return ValidateFormat(o.Format)
}

// ParsedSpeedUnit returns the configured speed unit; empty means km/h.
func (o OutputConfig) ParsedSpeedUnit() (advisor.SpeedUnit, error) {
	if o.SpeedUnit == "" {
		return advisor.UnitKmh, nil
	}
	return advisor.ParseSpeedUnit(o.SpeedUnit)
}

// ParsedDistanceUnit returns the configured distance unit; empty means meters.
func (o OutputConfig) ParsedDistanceUnit() (advisor.DistanceUnit, error) {
	if o.DistanceUnit == "" {
		return advisor.DistanceMeters, nil
	}
	return advisor.ParseDistanceUnit(o.DistanceUnit)
}

// ValidateFormat checks an output format name; empty is accepted as table.
func ValidateFormat(format string) error {
	switch format {
	case "", FormatTable, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidOutputFormat, format)
	}
}
