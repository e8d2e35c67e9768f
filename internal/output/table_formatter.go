package output

import (
	"fmt"
	"strings"

	"github.com/SumitLubal/retirement/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	colorBorder = lipgloss.Color("#4B5563")
	colorAccent = lipgloss.Color("#60A5FA")
	colorDim    = lipgloss.Color("#9CA3AF")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

// TableFormatter renders one bordered terminal table of yearly rows per scenario.
type TableFormatter struct{}

func (tf TableFormatter) Name() string { return "table" }

func (tf TableFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var b strings.Builder

	for i, sp := range report.Scenarios {
		if i > 0 {
			b.WriteString("\n")
		}
		res := sp.Result
		b.WriteString(titleStyle.Render(sp.Name))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("Retire at %d, withdraw %s/yr (%s of %s)",
			res.Ages.HorizonAge, FormatCurrency(res.AnnualWithdrawal),
			FormatPercentage(res.Rates.WithdrawalRate), FormatCurrency(res.ValueAtHorizon))))
		b.WriteString("\n")

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				if col <= 1 {
					return cellStyle
				}
				return cellStyle.Align(lipgloss.Right)
			}).
			Headers("Year", "Age", "Phase", "Return", "Start", "Contribution", "Payout", "Interest", "Balance")

		for _, row := range res.Rows {
			t.Row(
				intToString(row.Year),
				intToString(row.Age),
				string(row.Phase),
				FormatPercentage(row.BlendedReturn),
				FormatCurrency(row.StartingTotal),
				FormatCurrency(row.Contribution),
				FormatCurrency(row.Payout),
				FormatCurrency(row.Interest),
				FormatCurrency(row.Balance),
			)
		}
		b.WriteString(t.Render())
		b.WriteString("\n")

		if res.IsDepleted() {
			b.WriteString(dimStyle.Render(fmt.Sprintf("Balance runs out at age %d", res.Summary.DepletionAge)))
			b.WriteString("\n")
		}
	}

	return []byte(b.String()), nil
}
