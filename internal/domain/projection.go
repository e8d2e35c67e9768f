package domain

// Phase identifies which side of the horizon a projection row falls on
type Phase string

const (
	PhaseAccumulation Phase = "accumulation"
	PhaseDecumulation Phase = "decumulation"
)

// RateParameters are annual rates expressed as percentages (5 means 5%)
type RateParameters struct {
	ConservativeRate float64 `json:"conservative_rate"`
	GrowthRate       float64 `json:"growth_rate"`
	WithdrawalRate   float64 `json:"withdrawal_rate"`
}

// AgeParameters bound the projection. ViewHorizonAge of zero means "stop at HorizonAge".
type AgeParameters struct {
	CurrentAge     int `json:"current_age"`
	HorizonAge     int `json:"horizon_age"`
	ViewHorizonAge int `json:"view_horizon_age,omitempty"`
}

// EndAge returns the last age covered by the projection
func (ap AgeParameters) EndAge() int {
	if ap.ViewHorizonAge == 0 {
		return ap.HorizonAge
	}
	return ap.ViewHorizonAge
}

// YearsToHorizon returns the whole years between the current age and the horizon (may be negative)
func (ap AgeParameters) YearsToHorizon() int {
	return ap.HorizonAge - ap.CurrentAge
}

// ProjectionRow represents a single year of the projection.
// Row 0 is the opening snapshot; row n carries the change applied during year n.
type ProjectionRow struct {
	Year                int     `json:"year"`
	Age                 int     `json:"age"`
	Phase               Phase   `json:"phase"`
	BlendedReturn       float64 `json:"blended_return"` // percent
	StartingTotal       float64 `json:"starting_total"`
	Contribution        float64 `json:"contribution"`
	Payout              float64 `json:"payout"`
	Interest            float64 `json:"interest"`
	Balance             float64 `json:"balance"`
	ConservativeBalance float64 `json:"conservative_balance"`
	GrowthBalance       float64 `json:"growth_balance"`
}

// ProjectionSummary condenses a projection into headline figures
type ProjectionSummary struct {
	BalanceAtHorizon   float64 `json:"balance_at_horizon"`
	PeakBalance        float64 `json:"peak_balance"`
	PeakAge            int     `json:"peak_age"`
	FinalBalance       float64 `json:"final_balance"`
	TotalContributions float64 `json:"total_contributions"`
	TotalInterest      float64 `json:"total_interest"`
	TotalPayouts       float64 `json:"total_payouts"`
	DepletionAge       int     `json:"depletion_age,omitempty"` // 0 when the balance outlasts the projection
}

// ProjectionResult is the full engine output for one account snapshot and parameter set
type ProjectionResult struct {
	Totals           BucketTotals      `json:"totals"`
	Ages             AgeParameters     `json:"ages"`
	Rates            RateParameters    `json:"rates"`
	ValueAtHorizon   float64           `json:"value_at_horizon"`
	AnnualWithdrawal float64           `json:"annual_withdrawal"`
	Rows             []ProjectionRow   `json:"rows"`
	Summary          ProjectionSummary `json:"summary"`
}

// Row returns the row for a year offset, or false when the year is outside the projection
func (pr *ProjectionResult) Row(year int) (ProjectionRow, bool) {
	if year < 0 || year >= len(pr.Rows) {
		return ProjectionRow{}, false
	}
	return pr.Rows[year], true
}

// IsDepleted reports whether the balance ran out before the end of the projection
func (pr *ProjectionResult) IsDepleted() bool {
	return pr.Summary.DepletionAge > 0
}

// ScenarioProjection pairs a named scenario with its projection
type ScenarioProjection struct {
	Name   string            `json:"name"`
	Result *ProjectionResult `json:"result"`
}

// ProjectionReport is the set of scenario projections handed to output formatters
type ProjectionReport struct {
	Accounts    []Account            `json:"accounts"`
	Scenarios   []ScenarioProjection `json:"scenarios"`
	Assumptions []string             `json:"assumptions"`
}
