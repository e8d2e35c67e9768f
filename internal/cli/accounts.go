package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/SumitLubal/retirement/internal/calculation"
	"github.com/SumitLubal/retirement/internal/domain"
	"github.com/SumitLubal/retirement/internal/store"
	money "github.com/SumitLubal/retirement/pkg/decimal"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// accountFlags are the editable account fields shared by add and update.
type accountFlags struct {
	ID       string
	Name     string
	Category string
	Balance  string
	Monthly  string
}

func (f *accountFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Name, "name", "", "account name")
	cmd.Flags().StringVar(&f.Category, "category", "", "account category (savings|investment|401k|roth-ira)")
	cmd.Flags().StringVar(&f.Balance, "balance", "0", "current balance")
	cmd.Flags().StringVar(&f.Monthly, "monthly", "0", "monthly contribution")
}

// apply copies every flag the user set onto the account.
func (f *accountFlags) apply(cmd *cobra.Command, acct *domain.Account) error {
	flags := cmd.Flags()
	if flags.Changed("name") {
		acct.Name = f.Name
	}
	if flags.Changed("category") {
		c, err := domain.ParseCategory(f.Category)
		if err != nil {
			return err
		}
		acct.Category = c
	}
	if flags.Changed("balance") {
		d, err := parseAmount("balance", f.Balance)
		if err != nil {
			return err
		}
		acct.Balance = d
	}
	if flags.Changed("monthly") {
		d, err := parseAmount("monthly", f.Monthly)
		if err != nil {
			return err
		}
		acct.MonthlyContribution = d
	}
	return nil
}

func parseAmount(field, s string) (decimal.Decimal, error) {
	m, err := money.NewMoneyFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid --%s %q: %w", field, s, err)
	}
	if m.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: --%s cannot be negative", calculation.ErrInvalidParameter, field)
	}
	return m.Decimal, nil
}

// NewAccountsCommand creates the accounts command and its subcommands.
func NewAccountsCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage the stored account snapshot",
	}
	cmd.PersistentFlags().StringVar(&dbPath, "db", store.DefaultPath(), "snapshot database path")

	cmd.AddCommand(newAccountsListCommand(&dbPath))
	cmd.AddCommand(newAccountsAddCommand(rootOpts, &dbPath))
	cmd.AddCommand(newAccountsUpdateCommand(rootOpts, &dbPath))
	cmd.AddCommand(newAccountsRemoveCommand(rootOpts, &dbPath))

	return cmd
}

// withStore opens the snapshot database for the duration of fn.
func withStore(dbPath string, fn func(*store.Store) error) error {
	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(st)
}

func newAccountsListCommand(dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(*dbPath, func(st *store.Store) error {
				accounts, err := st.LoadAccounts()
				if err != nil {
					return err
				}
				return writeAccounts(cmd.OutOrStdout(), accounts)
			})
		},
	}
}

func writeAccounts(w io.Writer, accounts []domain.Account) error {
	if len(accounts) == 0 {
		_, err := fmt.Fprintln(w, "No accounts stored.")
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if row != table.HeaderRow && col >= 3 {
				return s.Align(lipgloss.Right)
			}
			return s
		}).
		Headers("ID", "Name", "Category", "Balance", "Monthly", "Annual")

	balances := make([]money.Money, 0, len(accounts))
	monthly := make([]money.Money, 0, len(accounts))
	for _, a := range accounts {
		b := money.NewMoneyFromDecimal(a.Balance)
		m := money.NewMoneyFromDecimal(a.MonthlyContribution)
		t.Row(a.ID, a.Name, string(a.Category), b.String(), m.String(), m.Annual().String())
		balances = append(balances, b)
		monthly = append(monthly, m)
	}

	_, err := fmt.Fprintf(w, "%s\nTotal: %s (+%s/mo)\n", t.Render(), money.Sum(balances...), money.Sum(monthly...))
	return err
}

func newAccountsAddCommand(rootOpts *RootOptions, dbPath *string) *cobra.Command {
	flags := &accountFlags{}

	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add an account",
		Example: `  retirement accounts add --name "Roth IRA" --category roth-ira --balance 30000 --monthly 583`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			acct := domain.Account{ID: flags.ID, Balance: decimal.Zero, MonthlyContribution: decimal.Zero}
			if err := flags.apply(cmd, &acct); err != nil {
				return err
			}
			return withStore(*dbPath, func(st *store.Store) error {
				added, err := st.AddAccount(acct)
				if err != nil {
					return err
				}
				rootOpts.Logger().Sugar().Infof("added account %s (%s)", added.ID, added.Category)
				fmt.Fprintf(cmd.OutOrStdout(), "Added account %s\n", added.ID)
				return nil
			})
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&flags.ID, "id", "", "account id (generated when empty)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func newAccountsUpdateCommand(rootOpts *RootOptions, dbPath *string) *cobra.Command {
	flags := &accountFlags{}

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of an existing account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			return withStore(*dbPath, func(st *store.Store) error {
				accounts, err := st.LoadAccounts()
				if err != nil {
					return err
				}
				var acct *domain.Account
				for i := range accounts {
					if accounts[i].ID == id {
						acct = &accounts[i]
						break
					}
				}
				if acct == nil {
					return fmt.Errorf("%w: %s", store.ErrAccountNotFound, id)
				}
				if err := flags.apply(cmd, acct); err != nil {
					return err
				}
				if err := st.UpdateAccount(*acct); err != nil {
					return err
				}
				rootOpts.Logger().Sugar().Infof("updated account %s", id)
				fmt.Fprintf(cmd.OutOrStdout(), "Updated account %s\n", id)
				return nil
			})
		},
	}
	flags.register(cmd)

	return cmd
}

func newAccountsRemoveCommand(rootOpts *RootOptions, dbPath *string) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove an account",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(*dbPath, func(st *store.Store) error {
				if err := st.DeleteAccount(args[0]); err != nil {
					if errors.Is(err, store.ErrAccountNotFound) {
						rootOpts.Logger().Sugar().Warnf("remove: no account %s", args[0])
					}
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed account %s\n", args[0])
				return nil
			})
		},
	}
}
