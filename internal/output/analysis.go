package output

import (
	"sort"

	"github.com/SumitLubal/retirement/internal/domain"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName     string
	AnnualWithdrawal float64
	FinalBalance     float64
	DepletionAge     int
}

// AnalyzeScenarios picks the scenario that sustains the largest withdrawal.
// Scenarios whose balance outlasts the projection rank ahead of ones that run dry;
// depleted scenarios rank by how late the money runs out.
func AnalyzeScenarios(report *domain.ProjectionReport) Recommendation {
	ranks := make([]Recommendation, 0, len(report.Scenarios))
	for _, sp := range report.Scenarios {
		if sp.Result == nil {
			continue
		}
		ranks = append(ranks, Recommendation{
			ScenarioName:     sp.Name,
			AnnualWithdrawal: sp.Result.AnnualWithdrawal,
			FinalBalance:     sp.Result.Summary.FinalBalance,
			DepletionAge:     sp.Result.Summary.DepletionAge,
		})
	}
	if len(ranks) == 0 {
		return Recommendation{}
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		a, b := ranks[i], ranks[j]
		aDepleted, bDepleted := a.DepletionAge > 0, b.DepletionAge > 0
		if aDepleted != bDepleted {
			return !aDepleted
		}
		if aDepleted && a.DepletionAge != b.DepletionAge {
			return a.DepletionAge > b.DepletionAge
		}
		if a.AnnualWithdrawal != b.AnnualWithdrawal {
			return a.AnnualWithdrawal > b.AnnualWithdrawal
		}
		return a.FinalBalance > b.FinalBalance
	})
	return ranks[0]
}
