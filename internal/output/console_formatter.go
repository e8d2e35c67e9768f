package output

import (
	"bytes"
	"fmt"

	"github.com/SumitLubal/retirement/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "RETIREMENT PROJECTION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	if len(report.Scenarios) > 0 && report.Scenarios[0].Result != nil {
		totals := report.Scenarios[0].Result.Totals
		fmt.Fprintf(&buf, "Accounts: %d  Conservative: %s (+%s/mo)  Growth: %s (+%s/mo)\n",
			len(report.Accounts),
			FormatCurrency(totals.Conservative.Principal), FormatCurrency(totals.Conservative.MonthlyContribution),
			FormatCurrency(totals.Growth.Principal), FormatCurrency(totals.Growth.MonthlyContribution))
		fmt.Fprintf(&buf, "Total: %s (+%s/mo)\n",
			FormatCurrency(totals.TotalPrincipal()), FormatCurrency(totals.TotalMonthlyContribution()))
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range assumptionLines(report) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	for _, sp := range report.Scenarios {
		res := sp.Result
		fmt.Fprintf(&buf, "%s: Retire=%d ValueAtRetirement=%s Withdrawal=%s/yr\n",
			sp.Name, res.Ages.HorizonAge, FormatCurrency(res.ValueAtHorizon), FormatCurrency(res.AnnualWithdrawal))
		fmt.Fprintf(&buf, "  Peak=%s@%d Final=%s@%d Contributions=%s Interest=%s Payouts=%s\n",
			FormatCurrency(res.Summary.PeakBalance), res.Summary.PeakAge,
			FormatCurrency(res.Summary.FinalBalance), res.Ages.EndAge(),
			FormatCurrency(res.Summary.TotalContributions), FormatCurrency(res.Summary.TotalInterest),
			FormatCurrency(res.Summary.TotalPayouts))
		if res.IsDepleted() {
			fmt.Fprintf(&buf, "  Balance runs out at age %d\n", res.Summary.DepletionAge)
		}
	}

	rec := AnalyzeScenarios(report)
	if rec.ScenarioName != "" && len(report.Scenarios) > 1 {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (%s/yr)\n", rec.ScenarioName, FormatCurrency(rec.AnnualWithdrawal))
	}
	return buf.Bytes(), nil
}
