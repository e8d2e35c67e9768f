package cli

import (
	"fmt"

	"github.com/SumitLubal/retirement/internal/domain"
	"github.com/SumitLubal/retirement/internal/output"
	"github.com/spf13/cobra"
)

// ValueOptions holds flags for the value command.
type ValueOptions struct {
	Principal float64
	Monthly   float64
	Rate      float64
	Years     float64
}

// NewValueCommand creates the value command.
func NewValueCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ValueOptions{}

	cmd := &cobra.Command{
		Use:   "value",
		Short: "Project a single balance with monthly contributions",
		Long: `Compute the closed-form future value of a principal plus monthly contributions
compounded monthly at an annual rate.`,
		Example: "  retirement value --principal 10000 --monthly 100 --rate 5 --years 30",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			got, err := newEngine(rootOpts).ProjectValue(
				domain.BucketAggregate{Principal: opts.Principal, MonthlyContribution: opts.Monthly},
				opts.Rate, opts.Years)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), output.FormatCurrency(got))
			return nil
		},
	}

	cmd.Flags().Float64Var(&opts.Principal, "principal", 0, "starting balance")
	cmd.Flags().Float64Var(&opts.Monthly, "monthly", 0, "monthly contribution")
	cmd.Flags().Float64Var(&opts.Rate, "rate", 0, "annual rate in percent")
	cmd.Flags().Float64Var(&opts.Years, "years", 0, "years to project")
	_ = cmd.MarkFlagRequired("years")

	return cmd
}
