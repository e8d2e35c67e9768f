package output

import (
	"github.com/SumitLubal/retirement/internal/domain"
	"github.com/shopspring/decimal"
)

// testReport is a hand-built two scenario report with exact amounts.
func testReport() *domain.ProjectionReport {
	steady := &domain.ProjectionResult{
		Totals: domain.BucketTotals{
			Conservative: domain.BucketAggregate{Principal: 10000, MonthlyContribution: 100},
		},
		Ages:             domain.AgeParameters{CurrentAge: 30, HorizonAge: 31, ViewHorizonAge: 31},
		Rates:            domain.RateParameters{ConservativeRate: 2, GrowthRate: 5, WithdrawalRate: 4},
		ValueAtHorizon:   11411.03,
		AnnualWithdrawal: 456.44,
		Rows: []domain.ProjectionRow{
			{Year: 0, Age: 30, Phase: domain.PhaseAccumulation, BlendedReturn: 2, StartingTotal: 10000, Balance: 10000, ConservativeBalance: 10000},
			{Year: 1, Age: 31, Phase: domain.PhaseAccumulation, BlendedReturn: 2, StartingTotal: 10000, Contribution: 1200, Interest: 224, Balance: 11424, ConservativeBalance: 11424},
		},
		Summary: domain.ProjectionSummary{
			BalanceAtHorizon:   11424,
			PeakBalance:        11424,
			PeakAge:            31,
			FinalBalance:       11424,
			TotalContributions: 1200,
			TotalInterest:      224,
		},
	}

	depleting := &domain.ProjectionResult{
		Totals: domain.BucketTotals{
			Conservative: domain.BucketAggregate{Principal: 1000},
		},
		Ages:             domain.AgeParameters{CurrentAge: 65, HorizonAge: 65, ViewHorizonAge: 67},
		Rates:            domain.RateParameters{ConservativeRate: 2, GrowthRate: 5, WithdrawalRate: 100},
		ValueAtHorizon:   1000,
		AnnualWithdrawal: 1000,
		Rows: []domain.ProjectionRow{
			{Year: 0, Age: 65, Phase: domain.PhaseDecumulation, BlendedReturn: 2, StartingTotal: 1000, Balance: 1000, ConservativeBalance: 1000},
			{Year: 1, Age: 66, Phase: domain.PhaseDecumulation, BlendedReturn: 2, StartingTotal: 1000, Payout: 1000},
			{Year: 2, Age: 67, Phase: domain.PhaseDecumulation, BlendedReturn: 3.5},
		},
		Summary: domain.ProjectionSummary{
			BalanceAtHorizon: 1000,
			PeakBalance:      1000,
			PeakAge:          65,
			TotalPayouts:     1000,
			DepletionAge:     66,
		},
	}

	return &domain.ProjectionReport{
		Accounts: []domain.Account{
			{ID: "savings", Name: "Savings", Category: domain.CategorySavings, Balance: decimal.NewFromInt(10000), MonthlyContribution: decimal.NewFromInt(100)},
		},
		Scenarios: []domain.ScenarioProjection{
			{Name: "Scenario A", Result: steady},
			{Name: "Depleting", Result: depleting},
		},
		Assumptions: []string{"Conservative return 2.00%", "Growth return 5.00%"},
	}
}
