package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/headway/internal/advisor"
	"github.com/rshade/headway/internal/config"
	"github.com/rshade/headway/internal/track"
)

// NewReplayCmd creates the replay command, which maps every sample of one
// or more recorded tracks.
func NewReplayCmd() *cobra.Command {
	var (
		output string
		opts   track.Options
	)

	cmd := &cobra.Command{
		Use:   "replay <track>...",
		Short: "Replay recorded speed tracks",
		Long: `Replays one or more YAML or JSON track files and prints the recommendation
for every sample, the regime transitions and a summary per track.

A track file lists samples taken t seconds after the start:

  name: commute
  unit: ms
  samples:
    - {t: 0, speed: 8.3}
    - {t: 1, speed: 9.1}`,
		Example: `  # Replay two tracks
  headway replay commute.yaml highway.json

  # Machine-readable output
  headway replay commute.yaml --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd, args, output, opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table, json or yaml (default from config)")
	cmd.Flags().IntVar(&opts.Concurrency, "concurrency", 0, "tracks and batches processed at once (default: number of CPUs)")
	cmd.Flags().IntVar(&opts.BatchSize, "batch-size", 0, "samples per batch (default 256)")

	return cmd
}

func runReplay(cmd *cobra.Command, paths []string, outputFlag string, opts track.Options) error {
	cfg := config.GetGlobalConfig()

	disp, err := resolveDisplay(cfg, outputFlag)
	if err != nil {
		return err
	}
	adv, err := newAdvisor(cfg)
	if err != nil {
		return err
	}

	reports, err := track.ReplayAll(cmd.Context(), adv, paths, opts)
	if err != nil {
		return err
	}

	logger.Debug().
		Ctx(cmd.Context()).
		Int("tracks", len(reports)).
		Msg("replay finished")

	if disp.format != config.FormatTable {
		return writeStructured(cmd.OutOrStdout(), disp.format, reports)
	}

	w := cmd.OutOrStdout()
	for i, report := range reports {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err = renderReportTable(w, disp, report); err != nil {
			return err
		}
	}
	return nil
}

// renderReportTable prints one replay report as text.
func renderReportTable(w io.Writer, disp display, report *track.Report) error {
	fmt.Fprintf(w, "Track: %s (%d samples, unit %s, run %s)\n\n",
		report.Track, report.Summary.Samples, report.Unit.Label(), report.RunID)

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "TIME\tSPEED\tDISTANCE\tREGIME")
	fmt.Fprintln(tw, "----\t-----\t--------\t------")
	for _, r := range report.Results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			disp.seconds(r.T), disp.speed(r.SpeedKmh), disp.distance(r.Distance), r.Regime)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	if len(report.Transitions) == 0 {
		fmt.Fprintln(w, "Transitions: none")
	} else {
		fmt.Fprintln(w, "Transitions:")
		for _, tr := range report.Transitions {
			line := fmt.Sprintf("  %s  %s -> %s", disp.seconds(tr.T), tr.From, tr.To)
			if tr.Warn {
				line += "  (warning)"
			}
			fmt.Fprintln(w, line)
		}
	}

	s := report.Summary
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Distance: min %s, max %s, mean %s\n",
		disp.distance(s.MinDistance), disp.distance(s.MaxDistance), disp.distance(s.MeanDistance))
	fmt.Fprintf(w, "Duration: %s, warnings: %d\n", disp.seconds(s.Duration), s.Warnings)
	fmt.Fprintf(w, "Time in regime: %s\n", formatTimeInRegime(disp, s.TimeInRegime))
	return nil
}

// formatTimeInRegime lists the regimes in their natural order.
func formatTimeInRegime(disp display, times map[string]float64) string {
	regimes := []advisor.Regime{advisor.RegimeBelowMinimum, advisor.RegimeInRange, advisor.RegimeAboveMaximum}
	parts := make([]string, 0, len(regimes))
	for _, r := range regimes {
		parts = append(parts, fmt.Sprintf("%s %s", r, disp.seconds(times[r.String()])))
	}
	return strings.Join(parts, ", ")
}
