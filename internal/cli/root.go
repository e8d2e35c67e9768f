package cli

import (
	"fmt"

	"github.com/SumitLubal/retirement/internal/calculation"
	"github.com/SumitLubal/retirement/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	LogLevel string
	Verbose  bool

	logger *zap.Logger
}

// Logger returns the logger built for the running command, or a no-op logger before one exists.
func (o *RootOptions) Logger() *zap.Logger {
	if o.logger == nil {
		return zap.NewNop()
	}
	return o.logger
}

// NewRootCommand creates the root command for the retirement CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "retirement",
		Short: "Project retirement account balances",
		Long: `Project savings, investment, 401k and Roth IRA balances to a retirement age,
size a fixed annual withdrawal and follow the balance year by year until it runs out.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := opts.LogLevel
			if opts.Verbose && level == "" {
				level = "debug"
			}
			logger, err := logging.New(level, "")
			if err != nil {
				return fmt.Errorf("invalid logging configuration: %w", err)
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			// stderr sync fails on some terminals
			_ = opts.Logger().Sync()
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error), defaults to $"+logging.LevelEnv)
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output (same as --log-level debug)")

	cmd.AddCommand(NewProjectCommand(opts))
	cmd.AddCommand(NewValueCommand(opts))
	cmd.AddCommand(NewAccountsCommand(opts))
	cmd.AddCommand(NewAssumptionsCommand(opts))
	cmd.AddCommand(NewInitCommand(opts))

	return cmd
}

// newEngine builds a projection engine that logs through the command's logger.
func newEngine(opts *RootOptions) *calculation.ProjectionEngine {
	engine := calculation.NewProjectionEngine()
	engine.SetLogger(opts.Logger().Sugar())
	return engine
}
