package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/headway/internal/advisor"
	"github.com/rshade/headway/internal/config"
)

// presetOutput is the JSON/YAML shape of one calibration preset.
type presetOutput struct {
	Name              string  `json:"name" yaml:"name"`
	MinSpeedKmh       float64 `json:"min_speed_kmh" yaml:"min_speed_kmh"`
	MaxSpeedKmh       float64 `json:"max_speed_kmh" yaml:"max_speed_kmh"`
	MinDistanceFactor float64 `json:"min_distance_factor" yaml:"min_distance_factor"`
	MaxDistanceFactor float64 `json:"max_distance_factor" yaml:"max_distance_factor"`
	LengthM           float64 `json:"length_m" yaml:"length_m"`
	MinDistanceM      float64 `json:"min_distance_m" yaml:"min_distance_m"`
	MaxDistanceM      float64 `json:"max_distance_m" yaml:"max_distance_m"`
}

// NewPresetsCmd creates the presets command, which lists the calibration presets.
func NewPresetsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List calibration presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPresets(cmd, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table, json or yaml (default from config)")

	return cmd
}

func runPresets(cmd *cobra.Command, outputFlag string) error {
	disp, err := resolveDisplay(config.GetGlobalConfig(), outputFlag)
	if err != nil {
		return err
	}

	names := advisor.PresetNames()
	presets := make([]presetOutput, 0, len(names))
	for _, name := range names {
		c, presetErr := advisor.Preset(name)
		if presetErr != nil {
			return presetErr
		}
		presets = append(presets, presetOutput{
			Name:              name,
			MinSpeedKmh:       c.MinSpeed(),
			MaxSpeedKmh:       c.MaxSpeed(),
			MinDistanceFactor: c.MinDistanceFactor(),
			MaxDistanceFactor: c.MaxDistanceFactor(),
			LengthM:           c.LengthUnit(),
			MinDistanceM:      c.MinDistance(),
			MaxDistanceM:      c.MaxDistance(),
		})
	}

	if disp.format != config.FormatTable {
		return writeStructured(cmd.OutOrStdout(), disp.format, presets)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "NAME\tLENGTH\tSPEEDS\tMIN DISTANCE\tMAX DISTANCE")
	fmt.Fprintln(tw, "----\t------\t------\t------------\t------------")
	for _, p := range presets {
		fmt.Fprintf(tw, "%s\t%s\t%s - %s\t%s\t%s\n",
			p.Name,
			disp.distance(p.LengthM),
			disp.speed(p.MinSpeedKmh), disp.speed(p.MaxSpeedKmh),
			disp.distance(p.MinDistanceM),
			disp.distance(p.MaxDistanceM),
		)
	}
	return tw.Flush()
}
