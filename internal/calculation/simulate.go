package calculation

import "github.com/SumitLubal/retirement/internal/domain"

// SimulationInput is the full parameter set of one yearly simulation.
// Rates are decimal fractions (0.05 for 5%).
type SimulationInput struct {
	ConservativePrincipal float64
	GrowthPrincipal       float64
	ConservativeMonthly   float64
	GrowthMonthly         float64
	ConservativeRate      float64
	GrowthRate            float64
	CurrentAge            int
	HorizonAge            int
	EndAge                int
	AnnualWithdrawal      float64
}

// YearsToHorizon returns the number of accumulation transitions
func (in SimulationInput) YearsToHorizon() int {
	return in.HorizonAge - in.CurrentAge
}

// bucketState carries the two running balances between rows
type bucketState struct {
	conservative float64
	growth       float64
}

func (s bucketState) total() float64 {
	return s.conservative + s.growth
}

// Simulate produces one row per year offset from 0 to EndAge-CurrentAge inclusive.
//
// Row 0 is the opening snapshot. Every later row applies one year: contributions then
// growth up to and including the horizon year, the fixed withdrawal then growth after it.
// When the horizon is the current age, row 0 is tagged decumulation and the first payout lands in row 1.
func Simulate(in SimulationInput) []domain.ProjectionRow {
	span := in.EndAge - in.CurrentAge
	if span < 0 {
		return nil
	}

	yearsToHorizon := in.YearsToHorizon()
	withdrawal := FixedWithdrawal{Annual: in.AnnualWithdrawal}
	state := bucketState{conservative: in.ConservativePrincipal, growth: in.GrowthPrincipal}

	rows := make([]domain.ProjectionRow, 0, span+1)

	openingPhase := domain.PhaseAccumulation
	if yearsToHorizon <= 0 {
		openingPhase = domain.PhaseDecumulation
	}
	rows = append(rows, domain.ProjectionRow{
		Year:                0,
		Age:                 in.CurrentAge,
		Phase:               openingPhase,
		BlendedReturn:       blendedReturn(state, in.ConservativeRate, in.GrowthRate),
		StartingTotal:       state.total(),
		Balance:             state.total(),
		ConservativeBalance: state.conservative,
		GrowthBalance:       state.growth,
	})

	for y := 1; y <= span; y++ {
		row := domain.ProjectionRow{
			Year:          y,
			Age:           in.CurrentAge + y,
			BlendedReturn: blendedReturn(state, in.ConservativeRate, in.GrowthRate),
			StartingTotal: state.total(),
		}

		if y <= yearsToHorizon {
			row.Phase = domain.PhaseAccumulation
			state, row.Contribution, row.Interest = accumulate(state, in)
		} else {
			row.Phase = domain.PhaseDecumulation
			state, row.Payout, row.Interest = decumulate(state, in, withdrawal)
		}

		row.ConservativeBalance = state.conservative
		row.GrowthBalance = state.growth
		row.Balance = state.total()
		rows = append(rows, row)
	}

	return rows
}

// accumulate adds a year of contributions to each bucket and then grows it
func accumulate(s bucketState, in SimulationInput) (bucketState, float64, float64) {
	conservativeContribution := in.ConservativeMonthly * MonthsPerYear
	growthContribution := in.GrowthMonthly * MonthsPerYear

	conservative := s.conservative + conservativeContribution
	growth := s.growth + growthContribution
	contributed := conservative + growth

	next := bucketState{
		conservative: conservative * (1 + in.ConservativeRate),
		growth:       growth * (1 + in.GrowthRate),
	}
	return next, conservativeContribution + growthContribution, next.total() - contributed
}

// decumulate takes the fixed withdrawal from the combined balance, splits the remainder
// in the pre-withdrawal proportions and grows each share at its own rate
func decumulate(s bucketState, in SimulationInput, withdrawal FixedWithdrawal) (bucketState, float64, float64) {
	starting := s.total()
	payout := withdrawal.Withdraw(starting)
	remaining := starting - payout

	conservativeShare := 0.5
	if starting > 0 {
		conservativeShare = s.conservative / starting
	}
	conservative := remaining * conservativeShare
	growth := remaining - conservative

	next := bucketState{
		conservative: conservative * (1 + in.ConservativeRate),
		growth:       growth * (1 + in.GrowthRate),
	}
	return next, payout, next.total() - remaining
}

// blendedReturn weights the two rates by each bucket's share of the starting balance, as a percentage
func blendedReturn(s bucketState, conservativeRate, growthRate float64) float64 {
	total := s.total()
	if total <= 0 {
		return (conservativeRate + growthRate) / 2 * 100
	}
	return (s.conservative*conservativeRate + s.growth*growthRate) / total * 100
}

// Summarize condenses simulated rows into headline figures
func Summarize(rows []domain.ProjectionRow, yearsToHorizon int) domain.ProjectionSummary {
	var summary domain.ProjectionSummary
	if len(rows) == 0 {
		return summary
	}

	horizonRow := yearsToHorizon
	if horizonRow < 0 {
		horizonRow = 0
	}
	if horizonRow > len(rows)-1 {
		horizonRow = len(rows) - 1
	}
	summary.BalanceAtHorizon = rows[horizonRow].Balance

	summary.PeakBalance = rows[0].Balance
	summary.PeakAge = rows[0].Age
	for _, row := range rows {
		if row.Balance > summary.PeakBalance {
			summary.PeakBalance = row.Balance
			summary.PeakAge = row.Age
		}
		summary.TotalContributions += row.Contribution
		summary.TotalInterest += row.Interest
		summary.TotalPayouts += row.Payout

		if summary.DepletionAge == 0 && row.Year > 0 && row.Phase == domain.PhaseDecumulation &&
			row.Payout > 0 && row.Balance <= 0 {
			summary.DepletionAge = row.Age
		}
	}
	summary.FinalBalance = rows[len(rows)-1].Balance

	return summary
}
