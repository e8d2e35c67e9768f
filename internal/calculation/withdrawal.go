package calculation

// AnnualWithdrawal sizes the yearly payout as a percentage of the projected total at the horizon.
// The figure is computed once and held for every decumulation year; it is not re-derived
// from the shrinking balance.
func AnnualWithdrawal(projectedTotalAtHorizon, withdrawalRatePercent float64) float64 {
	return projectedTotalAtHorizon * withdrawalRatePercent / 100
}

// FixedWithdrawal pays out the same dollar amount every decumulation year
type FixedWithdrawal struct {
	Annual float64
}

// NewFixedWithdrawal creates a FixedWithdrawal sized from the horizon total
func NewFixedWithdrawal(projectedTotalAtHorizon, withdrawalRatePercent float64) FixedWithdrawal {
	return FixedWithdrawal{Annual: AnnualWithdrawal(projectedTotalAtHorizon, withdrawalRatePercent)}
}

// Withdraw returns the amount taken from a combined balance, never more than the balance itself
func (fw FixedWithdrawal) Withdraw(balance float64) float64 {
	if balance <= 0 || fw.Annual <= 0 {
		return 0
	}
	if fw.Annual > balance {
		return balance
	}
	return fw.Annual
}
