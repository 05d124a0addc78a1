package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/rshade/headway/internal/advisor"
	"github.com/rshade/headway/internal/config"
)

const (
	tabPadding = 2
	yamlIndent = 2
)

// display holds the resolved presentation settings for one command.
type display struct {
	format       string
	speedUnit    advisor.SpeedUnit
	distanceUnit advisor.DistanceUnit
	precision    int
}

// resolveDisplay merges the --output flag with the output section of the
// configuration. An empty flag keeps the configured format.
func resolveDisplay(cfg *config.Config, outputFlag string) (display, error) {
	format := cfg.Output.Format
	if outputFlag != "" {
		format = outputFlag
	}
	if format == "" {
		format = config.FormatTable
	}
	if err := config.ValidateFormat(format); err != nil {
		return display{}, err
	}

	speedUnit, err := cfg.Output.ParsedSpeedUnit()
	if err != nil {
		return display{}, err
	}
	distanceUnit, err := cfg.Output.ParsedDistanceUnit()
	if err != nil {
		return display{}, err
	}

	return display{
		format:       format,
		speedUnit:    speedUnit,
		distanceUnit: distanceUnit,
		precision:    cfg.Output.Precision,
	}, nil
}

func (d display) speed(kmh float64) string {
	return advisor.FormatSpeed(kmh, d.speedUnit, d.precision)
}

func (d display) distance(meters float64) string {
	return advisor.FormatDistance(meters, d.distanceUnit, d.precision)
}

func (d display) seconds(s float64) string {
	return advisor.FormatNumber(s, d.precision) + "s"
}

// writeStructured writes v as indented JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case config.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	case config.FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(yamlIndent)
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return encoder.Close()
	default:
		return fmt.Errorf("%w: got %q", config.ErrInvalidOutputFormat, format)
	}
}

// newAdvisor builds an advisor from the calibration section of cfg.
func newAdvisor(cfg *config.Config) (*advisor.Advisor, error) {
	c, err := cfg.Calibration.Build()
	if err != nil {
		return nil, fmt.Errorf("building calibration: %w", err)
	}
	return advisor.NewAdvisor(c), nil
}
