package output

import "github.com/SumitLubal/retirement/internal/domain"

// DefaultAssumptions lists key modeling assumptions rendered when a report carries none.
var DefaultAssumptions = []string{
	"Savings accounts grow at the conservative rate; investment, 401k and Roth IRA accounts at the growth rate",
	"Contributions are added once a year before growth",
	"Withdrawal is a fixed dollar amount sized once at retirement",
	"No inflation, tax or fee adjustment",
}

func assumptionLines(report *domain.ProjectionReport) []string {
	if len(report.Assumptions) == 0 {
		return DefaultAssumptions
	}
	return report.Assumptions
}
