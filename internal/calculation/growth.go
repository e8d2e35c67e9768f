package calculation

import "math"

// MonthsPerYear is the compounding frequency of contributions
const MonthsPerYear = 12

// ZeroYearMode selects what a closed-form projection returns for zero (or negative) years
type ZeroYearMode int

const (
	// ZeroYearsPrincipalOnly treats "0 years" as right now: no contributions have been made yet
	ZeroYearsPrincipalOnly ZeroYearMode = iota
	// ZeroYearsWithFirstContribution adds one year of contributions up front
	ZeroYearsWithFirstContribution
)

// ZeroYearPolicy is the single zero-year convention used by every closed-form projection
const ZeroYearPolicy = ZeroYearsPrincipalOnly

// FutureValue projects a single bucket forward without iterating: the principal compounds
// annually and the monthly contribution is an ordinary annuity compounded monthly.
//
// annualRate is a decimal fraction (0.05 for 5%). years may be fractional. Negative rates
// decay the balance. Extreme inputs saturate to ±Inf rather than failing.
func FutureValue(principal, monthlyContribution, annualRate, years float64) float64 {
	if years <= 0 {
		return zeroYearValue(principal, monthlyContribution)
	}

	// an empty term stays zero even when its growth factor overflows (0 * Inf is NaN)
	var lumpSum, annuity float64
	if principal != 0 {
		lumpSum = principal * math.Pow(1+annualRate, years)
	}

	switch {
	case monthlyContribution == 0:
	case annualRate == 0:
		annuity = monthlyContribution * years * MonthsPerYear
	default:
		monthlyRate := annualRate / MonthsPerYear
		annuity = monthlyContribution * (math.Pow(1+monthlyRate, years*MonthsPerYear) - 1) / monthlyRate
	}

	return lumpSum + annuity
}

func zeroYearValue(principal, monthlyContribution float64) float64 {
	if ZeroYearPolicy == ZeroYearsWithFirstContribution {
		return principal + monthlyContribution*MonthsPerYear
	}
	return principal
}
