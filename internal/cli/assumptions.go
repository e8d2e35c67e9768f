package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/SumitLubal/retirement/internal/config"
	"github.com/SumitLubal/retirement/internal/domain"
	"github.com/SumitLubal/retirement/internal/store"
	"github.com/SumitLubal/retirement/pkg/dateutil"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const birthDateLayout = "2006-01-02"

// NewAssumptionsCommand creates the assumptions command and its subcommands.
func NewAssumptionsCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "assumptions",
		Short: "Manage the stored ages and rates",
	}
	cmd.PersistentFlags().StringVar(&dbPath, "db", store.DefaultPath(), "snapshot database path")

	cmd.AddCommand(newAssumptionsSetCommand(rootOpts, &dbPath))
	cmd.AddCommand(newAssumptionsShowCommand(&dbPath))

	return cmd
}

func newAssumptionsSetCommand(rootOpts *RootOptions, dbPath *string) *cobra.Command {
	var (
		currentAge, retirementAge, viewHorizonAge int
		birthDate                                 string
		conservative, growth, withdrawal          string
	)

	cmd := &cobra.Command{
		Use:     "set",
		Short:   "Set assumptions; flags left out keep their stored value",
		Example: "  retirement assumptions set --current-age 35 --retirement-age 65 --view-horizon-age 90 \\\n" +
			"    --conservative-rate 2 --growth-rate 7 --withdrawal-rate 4",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(*dbPath, func(st *store.Store) error {
				a, _, err := st.LoadAssumptions()
				if err != nil {
					return err
				}

				flags := cmd.Flags()
				if flags.Changed("current-age") {
					a.CurrentAge = currentAge
				}
				if flags.Changed("birth-date") {
					if birthDate == "" {
						a.BirthDate = time.Time{}
					} else if a.BirthDate, err = time.Parse(birthDateLayout, birthDate); err != nil {
						return fmt.Errorf("invalid --birth-date %q: want YYYY-MM-DD", birthDate)
					}
				}
				if flags.Changed("retirement-age") {
					a.RetirementAge = retirementAge
				}
				if flags.Changed("view-horizon-age") {
					a.ViewHorizonAge = viewHorizonAge
				}
				for _, r := range []struct {
					flag  string
					value string
					dst   *decimal.Decimal
				}{
					{"conservative-rate", conservative, &a.ConservativeRate},
					{"growth-rate", growth, &a.GrowthRate},
					{"withdrawal-rate", withdrawal, &a.WithdrawalRate},
				} {
					if !flags.Changed(r.flag) {
						continue
					}
					d, err := decimal.NewFromString(r.value)
					if err != nil {
						return fmt.Errorf("invalid --%s %q: %w", r.flag, r.value, err)
					}
					*r.dst = d
				}

				if err := config.NewInputParser().ValidateAssumptions(&a); err != nil {
					return err
				}
				if err := st.SaveAssumptions(a); err != nil {
					return err
				}
				rootOpts.Logger().Sugar().Infof("saved assumptions in namespace %s", st.Namespace())
				fmt.Fprintln(cmd.OutOrStdout(), "Assumptions saved")
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&currentAge, "current-age", 0, "current age in whole years")
	cmd.Flags().StringVar(&birthDate, "birth-date", "", "birth date (YYYY-MM-DD), used when current age is 0")
	cmd.Flags().IntVar(&retirementAge, "retirement-age", 0, "age at which withdrawals start")
	cmd.Flags().IntVar(&viewHorizonAge, "view-horizon-age", 0, "last age to project (0 stops at retirement)")
	cmd.Flags().StringVar(&conservative, "conservative-rate", "", "savings growth rate in percent")
	cmd.Flags().StringVar(&growth, "growth-rate", "", "investment growth rate in percent")
	cmd.Flags().StringVar(&withdrawal, "withdrawal-rate", "", "withdrawal rate in percent of the balance at retirement")

	return cmd
}

func newAssumptionsShowCommand(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the stored assumptions as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(*dbPath, func(st *store.Store) error {
				a, found, err := st.LoadAssumptions()
				if err != nil {
					return err
				}
				if !found {
					return errors.New("no assumptions stored, run `retirement assumptions set` first")
				}
				data, err := yaml.Marshal(showAssumptions(a, time.Now()))
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			})
		},
	}
}

// assumptionsView mirrors domain.Assumptions with printable dates and rates.
type assumptionsView struct {
	CurrentAge       int    `yaml:"current_age,omitempty"`
	BirthDate        string `yaml:"birth_date,omitempty"`
	RetirementAge    int    `yaml:"retirement_age"`
	ViewHorizonAge   int    `yaml:"view_horizon_age,omitempty"`
	ConservativeRate string `yaml:"conservative_rate"`
	GrowthRate       string `yaml:"growth_rate"`
	WithdrawalRate   string `yaml:"withdrawal_rate"`

	YearsToRetirement string `yaml:"years_to_retirement,omitempty"`
}

func showAssumptions(a domain.Assumptions, now time.Time) assumptionsView {
	v := assumptionsView{
		CurrentAge:       a.CurrentAge,
		RetirementAge:    a.RetirementAge,
		ViewHorizonAge:   a.ViewHorizonAge,
		ConservativeRate: a.ConservativeRate.String(),
		GrowthRate:       a.GrowthRate.String(),
		WithdrawalRate:   a.WithdrawalRate.String(),
	}
	if !a.BirthDate.IsZero() {
		v.BirthDate = a.BirthDate.Format(birthDateLayout)
		at := a.AsOf
		if at.IsZero() {
			at = now
		}
		v.YearsToRetirement = fmt.Sprintf("%.1f", dateutil.YearsUntilAge(a.BirthDate, at, a.RetirementAge))
	}
	return v
}
