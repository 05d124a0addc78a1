package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/headway/internal/advisor"
	"github.com/rshade/headway/internal/config"
)

// Default sweep of the table command, in km/h.
const (
	defaultTableFrom = 0
	defaultTableTo   = 150
	defaultTableStep = 10
)

// NewTableCmd creates the table command, which prints the recommendation for
// a range of speeds.
func NewTableCmd() *cobra.Command {
	var (
		from, to, step float64
		output         string
	)

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print recommended distances for a range of speeds",
		Long: `Prints the recommended following distance for every speed from --from to
--to (inclusive) in increments of --step. Bounds are in km/h.`,
		Example: `  # Default sweep, 0 to 150 km/h every 10 km/h
  headway table

  # Fine-grained sweep around the lower bound for a large vehicle
  headway table --preset large --from 20 --to 40 --step 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTable(cmd, from, to, step, output)
		},
	}

	cmd.Flags().Float64Var(&from, "from", defaultTableFrom, "first speed in km/h")
	cmd.Flags().Float64Var(&to, "to", defaultTableTo, "last speed in km/h")
	cmd.Flags().Float64Var(&step, "step", defaultTableStep, "speed increment in km/h")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table, json or yaml (default from config)")

	return cmd
}

func runTable(cmd *cobra.Command, from, to, step float64, outputFlag string) error {
	cfg := config.GetGlobalConfig()

	disp, err := resolveDisplay(cfg, outputFlag)
	if err != nil {
		return err
	}
	adv, err := newAdvisor(cfg)
	if err != nil {
		return err
	}

	rows, err := advisor.Table(adv.Calibration(), from, to, step)
	if err != nil {
		return err
	}

	if disp.format != config.FormatTable {
		return writeStructured(cmd.OutOrStdout(), disp.format, rows)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "SPEED\tDISTANCE\tREGIME")
	fmt.Fprintln(tw, "-----\t--------\t------")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", disp.speed(r.SpeedKmh), disp.distance(r.Distance), r.Regime)
	}
	return tw.Flush()
}
