package calculation

import (
	"errors"
	"fmt"
	"math"

	"github.com/SumitLubal/retirement/internal/domain"
)

// ErrInvalidParameter is returned when projection inputs would produce meaningless rows
var ErrInvalidParameter = errors.New("invalid parameter")

// MaxAge bounds every age the engine will project to
const MaxAge = 150

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ValidateAges rejects negative ages and a view horizon before the current age.
// A horizon at or before the current age is allowed and starts the projection in decumulation.
func ValidateAges(ages domain.AgeParameters) error {
	if ages.CurrentAge < 0 {
		return invalidf("current age cannot be negative, got %d", ages.CurrentAge)
	}
	if ages.HorizonAge < 0 {
		return invalidf("retirement age cannot be negative, got %d", ages.HorizonAge)
	}
	if ages.ViewHorizonAge < 0 {
		return invalidf("view horizon age cannot be negative, got %d", ages.ViewHorizonAge)
	}
	if ages.EndAge() < ages.CurrentAge {
		return invalidf("projection end age %d is before current age %d", ages.EndAge(), ages.CurrentAge)
	}
	if ages.CurrentAge > MaxAge || ages.HorizonAge > MaxAge || ages.EndAge() > MaxAge {
		return invalidf("ages must not exceed %d", MaxAge)
	}
	return nil
}

// ValidateRates checks percentage rates: growth rates in [-100, 100], withdrawal rate in [0, 100]
func ValidateRates(rates domain.RateParameters) error {
	for _, r := range []struct {
		name  string
		value float64
	}{
		{"conservative rate", rates.ConservativeRate},
		{"growth rate", rates.GrowthRate},
	} {
		if !isFinite(r.value) {
			return invalidf("%s must be a finite number", r.name)
		}
		if r.value < -100 || r.value > 100 {
			return invalidf("%s must be between -100%% and 100%%, got %g%%", r.name, r.value)
		}
	}
	if !isFinite(rates.WithdrawalRate) {
		return invalidf("withdrawal rate must be a finite number")
	}
	if rates.WithdrawalRate < 0 || rates.WithdrawalRate > 100 {
		return invalidf("withdrawal rate must be between 0%% and 100%%, got %g%%", rates.WithdrawalRate)
	}
	return nil
}

// ValidateTotals checks that both bucket aggregates are finite and non-negative
func ValidateTotals(totals domain.BucketTotals) error {
	for _, b := range []struct {
		bucket domain.Bucket
		agg    domain.BucketAggregate
	}{
		{domain.BucketConservative, totals.Conservative},
		{domain.BucketGrowth, totals.Growth},
	} {
		if !isFinite(b.agg.Principal) || !isFinite(b.agg.MonthlyContribution) {
			return invalidf("%s bucket must hold finite amounts", b.bucket)
		}
		if b.agg.Principal < 0 {
			return invalidf("%s bucket principal cannot be negative", b.bucket)
		}
		if b.agg.MonthlyContribution < 0 {
			return invalidf("%s bucket monthly contribution cannot be negative", b.bucket)
		}
	}
	return nil
}
