package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/headway/internal/advisor"
	"github.com/rshade/headway/internal/config"
)

// adviceOutput is the JSON/YAML shape of one recommendation.
type adviceOutput struct {
	Input                  float64           `json:"input" yaml:"input"`
	Unit                   advisor.SpeedUnit `json:"unit" yaml:"unit"`
	advisor.Recommendation `yaml:",inline"`
}

// NewAdviseCmd creates the advise command, which recommends a following
// distance for a single speed.
func NewAdviseCmd() *cobra.Command {
	var (
		unit   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "advise <speed>",
		Short: "Recommend a following distance for one speed",
		Long: `Prints the recommended following distance and the speed regime for one
speed reading. Negative readings are treated as a standstill.`,
		Example: `  # 75 km/h with the standard calibration
  headway advise 75

  # 20 m/s, as JSON
  headway advise 20 --unit ms --output json

  # A negative reading (use -- so it is not taken as a flag)
  headway advise -- -1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdvise(cmd, args[0], unit, output)
		},
	}

	cmd.Flags().StringVar(&unit, "unit", "", "speed unit of the input: kmh, ms or mph (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table, json or yaml (default from config)")

	return cmd
}

func runAdvise(cmd *cobra.Command, rawSpeed, unitFlag, outputFlag string) error {
	cfg := config.GetGlobalConfig()

	value, err := strconv.ParseFloat(rawSpeed, 64)
	if err != nil {
		return fmt.Errorf("invalid speed %q: %w", rawSpeed, err)
	}

	disp, err := resolveDisplay(cfg, outputFlag)
	if err != nil {
		return err
	}

	unit := disp.speedUnit
	if unitFlag != "" {
		if unit, err = advisor.ParseSpeedUnit(unitFlag); err != nil {
			return err
		}
	}

	adv, err := newAdvisor(cfg)
	if err != nil {
		return err
	}

	rec, err := adv.RecommendIn(value, unit)
	if err != nil {
		return err
	}

	logger.Debug().
		Ctx(cmd.Context()).
		Float64("input", value).
		Str("unit", string(unit)).
		Float64("distance_m", rec.Distance).
		Stringer("regime", rec.Regime).
		Msg("recommendation computed")

	if disp.format != config.FormatTable {
		return writeStructured(cmd.OutOrStdout(), disp.format, adviceOutput{
			Input:          value,
			Unit:           unit,
			Recommendation: rec,
		})
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
	fmt.Fprintf(tw, "Speed:\t%s\n", disp.speed(rec.SpeedKmh))
	fmt.Fprintf(tw, "Distance:\t%s\n", disp.distance(rec.Distance))
	fmt.Fprintf(tw, "Regime:\t%s\n", rec.Regime)
	return tw.Flush()
}
