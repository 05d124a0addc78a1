package cli

import (
	"fmt"
	"math"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/headway/internal/config"
	"github.com/rshade/headway/internal/track"
	"github.com/rshade/headway/internal/tui"
)

// NewWatchCmd creates the watch command, which plays a track back live in
// the terminal.
func NewWatchCmd() *cobra.Command {
	var speedup float64

	cmd := &cobra.Command{
		Use:   "watch <track>",
		Short: "Play a track back live in the terminal",
		Long: `Plays a track back in real time, or faster with --speedup, showing the
current speed, the recommended distance and a warning once the vehicle moves
out of the low-speed regime.

When stdin or stdout is not a terminal the replay table is printed instead.`,
		Example: `  # Watch at ten times real speed
  headway watch commute.yaml --speedup 10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args[0], speedup)
		},
	}

	cmd.Flags().Float64Var(&speedup, "speedup", 1, "playback speed multiplier")

	return cmd
}

func runWatch(cmd *cobra.Command, path string, speedup float64) error {
	if !(speedup > 0) || math.IsInf(speedup, 0) {
		return fmt.Errorf("speedup must be a finite number > 0, got %v", speedup)
	}

	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		logger.Debug().Ctx(cmd.Context()).Msg("no terminal, falling back to replay output")
		cmd.PrintErrln("Not a terminal; printing the replay instead.")
		return runReplay(cmd, []string{path}, config.FormatTable, track.Options{})
	}

	cfg := config.GetGlobalConfig()
	disp, err := resolveDisplay(cfg, config.FormatTable)
	if err != nil {
		return err
	}
	adv, err := newAdvisor(cfg)
	if err != nil {
		return err
	}
	tr, err := track.Load(path)
	if err != nil {
		return err
	}

	model, err := tui.NewWatchModel(adv, tr, tui.WatchOptions{
		Speedup:      speedup,
		SpeedUnit:    disp.speedUnit,
		DistanceUnit: disp.distanceUnit,
		Precision:    disp.precision,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithContext(cmd.Context()), tea.WithAltScreen())
	if _, err = p.Run(); err != nil {
		return fmt.Errorf("failed to run watch TUI: %w", err)
	}
	return nil
}
