package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/headway/internal/config"
)

// NewConfigShowCmd creates the config show command, which prints the
// effective configuration after flags are applied.
func NewConfigShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.ValidateFormat(output); err != nil {
				return err
			}
			if output == "" || output == config.FormatTable {
				output = config.FormatYAML
			}
			return writeStructured(cmd.OutOrStdout(), output, config.GetGlobalConfig())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", config.FormatYAML, "output format: yaml or json")

	return cmd
}
