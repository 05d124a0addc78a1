package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/headway/internal/config"
	"github.com/rshade/headway/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// prepareFunc loads the configuration and sets up logging for a command.
// When strict is set, an unreadable or invalid configuration fails the command.
type prepareFunc func(cmd *cobra.Command, strict bool) error

// NewRootCmd creates the root Cobra command for the headway CLI.
// It loads and validates the configuration, wires up logging and tracing,
// and registers the subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	prepare := func(cmd *cobra.Command, strict bool) error {
		cfg, err := loadConfig(cmd, strict)
		if err != nil {
			return err
		}
		config.SetGlobalConfig(cfg)

		result := setupLogging(cmd)
		logResult = &result
		return nil
	}

	cmd := &cobra.Command{
		Use:   "headway",
		Short: "Speed-based following distance advisor",
		Long: `headway recommends a safe following distance for a given speed.

Distances grow linearly with speed between the calibrated minimum and maximum
speeds and are clamped outside that range. Recorded speed tracks can be
replayed in batch or watched live in the terminal.`,
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return prepare(cmd, true)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default $HEADWAY_HOME/config.yaml)")
	cmd.PersistentFlags().String("preset", "", "calibration preset (standard, midsize, large)")
	cmd.PersistentFlags().String("project-dir", "",
		"directory holding a "+config.ProjectConfigName+" overlay (default: working directory)")

	cmd.AddCommand(
		NewAdviseCmd(),
		NewTableCmd(),
		NewReplayCmd(),
		NewWatchCmd(),
		NewPresetsCmd(),
		newConfigCmd(prepare),
	)

	return cmd
}

const rootCmdExample = `  # Recommend a distance for 75 km/h
  headway advise 75

  # Same speed reported in meters per second, as JSON
  headway advise 20.8 --unit ms --output json

  # Print a sweep table for a large vehicle
  headway table --preset large --from 0 --to 150 --step 10

  # Replay recorded tracks
  headway replay commute.yaml highway.json

  # Watch a track play back at ten times real speed
  headway watch commute.yaml --speedup 10

  # Initialize configuration
  headway config init`

// loadConfig reads the configuration named by --config (or the default
// location), merges the project overlay and applies --preset.
func loadConfig(cmd *cobra.Command, strict bool) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	preset, _ := cmd.Flags().GetString("preset")

	cfg, err := loadEffectiveConfig(cmd, path)
	if err != nil {
		if strict {
			return nil, fmt.Errorf("loading configuration: %w", err)
		}
		cfg = config.New()
		if path != "" {
			cfg.SetConfigPath(path)
		}
	}

	if preset != "" {
		cfg.Calibration.Preset = preset
	}

	if strict {
		if err = cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration %s: %w", cfg.ConfigPath(), err)
		}
	}
	return cfg, nil
}

// loadEffectiveConfig loads the file at path and shallow-merges the
// .headway.yaml overlay of the project directory (--project-dir, or the
// working directory) on top of it.
func loadEffectiveConfig(cmd *cobra.Command, path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	dir, _ := cmd.Flags().GetString("project-dir")
	if dir == "" {
		if dir, err = os.Getwd(); err != nil {
			return nil, fmt.Errorf("resolving project directory: %w", err)
		}
	}

	if _, err = config.ApplyProjectOverlay(cfg, dir); err != nil {
		return nil, fmt.Errorf("merging project config: %w", err)
	}
	return cfg, nil
}

// newConfigCmd creates the config command group. Its commands must run even
// when the configuration on disk is broken, so they load it leniently.
func newConfigCmd(prepare prepareFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management commands",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return prepare(cmd, false)
		},
	}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd(), NewConfigShowCmd())
	return cmd
}
