package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/headway/internal/advisor"
	"github.com/rshade/headway/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file for syntax and semantic correctness.

This includes:
- Schema version compatibility, including the project .headway.yaml overlay
- Calibration ordering (min speed below max speed, min factor below max factor,
  positive vehicle length)
- Output units, precision and format
- Logging level and format`,
		Example: `  # Validate current configuration
  headway config validate

  # Validate and show the resolved calibration
  headway config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate reloads the configuration file and project overlay so load
// errors are reported instead of masked by defaults.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg, err := loadEffectiveConfig(cmd, config.GetGlobalConfig().ConfigPath())
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("✅ Configuration is valid\n")

	if verbose {
		return printVerboseDetails(cmd, cfg)
	}
	return nil
}

// printVerboseDetails prints the resolved configuration.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) error {
	c, err := cfg.Calibration.Build()
	if err != nil {
		return err
	}

	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Config file: %s\n", cfg.ConfigPath())
	cmd.Printf("  Schema version: %s\n", cfg.Version)
	if cfg.Calibration.Preset != "" {
		cmd.Printf("  Calibration preset: %s\n", cfg.Calibration.Preset)
	}
	if cfg.Calibration.HasOverrides() {
		cmd.Println("  Calibration overrides: yes")
	}
	cmd.Printf("  Speed range: %s to %s\n",
		advisor.FormatSpeed(c.MinSpeed(), advisor.UnitKmh, config.DefaultPrecision),
		advisor.FormatSpeed(c.MaxSpeed(), advisor.UnitKmh, config.DefaultPrecision))
	cmd.Printf("  Distance range: %s to %s\n",
		advisor.FormatDistance(c.MinDistance(), advisor.DistanceMeters, config.DefaultPrecision),
		advisor.FormatDistance(c.MaxDistance(), advisor.DistanceMeters, config.DefaultPrecision))
	cmd.Printf("  Output: %s, %s, %s, precision %d\n",
		cfg.Output.Format, cfg.Output.SpeedUnit, cfg.Output.DistanceUnit, cfg.Output.Precision)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	if cfg.Logging.File != "" {
		cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	}
	return nil
}
