package cli

import (
	"fmt"
	"os"

	"github.com/SumitLubal/retirement/internal/config"
	"github.com/spf13/cobra"
)

// NewInitCommand creates the init command.
func NewInitCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		path  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write an example configuration file",
		Long:  "Write a ready-to-run example configuration. The file format follows the extension (.yaml, .toml or .json).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			parser := config.NewInputParser()
			if err := parser.SaveConfiguration(parser.CreateExampleConfiguration(), path); err != nil {
				return err
			}
			rootOpts.Logger().Sugar().Debugf("wrote example configuration to %s", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "output", "o", "retirement.yaml", "configuration file to write")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}
