package cli

import (
	"fmt"
	"time"

	"github.com/SumitLubal/retirement/internal/calculation"
	"github.com/SumitLubal/retirement/internal/config"
	"github.com/SumitLubal/retirement/internal/domain"
	"github.com/SumitLubal/retirement/internal/output"
	"github.com/SumitLubal/retirement/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ProjectOptions holds flags for the project command.
type ProjectOptions struct {
	ConfigPath string
	DBPath     string
	Scenario   string
	Format     string
	Output     string
	Workers    int
}

// NewProjectCommand creates the project command.
func NewProjectCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ProjectOptions{}

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Run the projection for every scenario",
		Long: `Load accounts and assumptions from a configuration file or a snapshot database,
project each scenario and render the report.

The report goes to stdout unless --output names a file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProject(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "configuration file (.yaml, .toml or .json)")
	cmd.Flags().StringVar(&opts.DBPath, "db", "", "snapshot database path")
	cmd.Flags().StringVarP(&opts.Scenario, "scenario", "s", "", "run only the named scenario")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "console", "report format (console|table|csv|detailed-csv|json|pdf)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write the report to this file")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "scenario worker count (0 uses every CPU)")
	cmd.MarkFlagsMutuallyExclusive("config", "db")
	cmd.MarkFlagsOneRequired("config", "db")

	return cmd
}

func runProject(rootOpts *RootOptions, opts *ProjectOptions, cmd *cobra.Command) error {
	logger := rootOpts.Logger()

	cfg, err := loadProjectConfiguration(opts)
	if err != nil {
		return err
	}
	if opts.Scenario != "" {
		if cfg.Scenarios, err = selectScenario(cfg.Scenarios, opts.Scenario); err != nil {
			return err
		}
	}

	engine := newEngine(rootOpts)
	if opts.Workers > 0 {
		engine.Workers = opts.Workers
	}

	start := time.Now()
	report, err := engine.RunScenarios(cmd.Context(), cfg, start)
	if err != nil {
		return err
	}
	logger.Debug("projection complete",
		zap.Int("accounts", len(cfg.Accounts)),
		zap.Int("scenarios", len(report.Scenarios)),
		zap.Duration("elapsed", time.Since(start)))

	if opts.Output == "" {
		data, err := output.Render(report, opts.Format)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	path, err := output.GenerateReport(report, opts.Format, opts.Output)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
	return nil
}

func loadProjectConfiguration(opts *ProjectOptions) (*domain.Configuration, error) {
	parser := config.NewInputParser()
	if opts.ConfigPath != "" {
		return parser.LoadFromFile(opts.ConfigPath)
	}

	st, err := store.Open(opts.DBPath)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	cfg, err := st.LoadConfiguration()
	if err != nil {
		return nil, err
	}
	if err := parser.ValidateConfiguration(cfg); err != nil {
		return nil, fmt.Errorf("stored snapshot is invalid: %w", err)
	}
	return cfg, nil
}

// selectScenario narrows the scenario list to one name. The base scenario is always selectable.
func selectScenario(scenarios []domain.Scenario, name string) ([]domain.Scenario, error) {
	for _, s := range scenarios {
		if s.Name == name {
			return []domain.Scenario{s}, nil
		}
	}
	if name == calculation.BaseScenarioName {
		return []domain.Scenario{{Name: calculation.BaseScenarioName}}, nil
	}
	return nil, fmt.Errorf("scenario %q not found", name)
}
