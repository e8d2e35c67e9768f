package calculation

import (
	"fmt"

	"github.com/SumitLubal/retirement/internal/domain"
	"github.com/shopspring/decimal"
)

// AggregateBuckets sums account balances and monthly contributions into the two growth buckets.
// Sums are taken in decimal so a long account list does not accumulate float error.
func AggregateBuckets(accounts []domain.Account) (domain.BucketTotals, error) {
	var (
		conservativePrincipal, conservativeMonthly decimal.Decimal
		growthPrincipal, growthMonthly             decimal.Decimal
	)

	for i := range accounts {
		acct := &accounts[i]
		bucket, err := acct.Category.Bucket()
		if err != nil {
			return domain.BucketTotals{}, fmt.Errorf("account %q: %w", acct.Name, err)
		}
		if acct.Balance.IsNegative() {
			return domain.BucketTotals{}, invalidf("account %q balance cannot be negative", acct.Name)
		}
		if acct.MonthlyContribution.IsNegative() {
			return domain.BucketTotals{}, invalidf("account %q monthly contribution cannot be negative", acct.Name)
		}

		switch bucket {
		case domain.BucketConservative:
			conservativePrincipal = conservativePrincipal.Add(acct.Balance)
			conservativeMonthly = conservativeMonthly.Add(acct.MonthlyContribution)
		case domain.BucketGrowth:
			growthPrincipal = growthPrincipal.Add(acct.Balance)
			growthMonthly = growthMonthly.Add(acct.MonthlyContribution)
		}
	}

	return domain.BucketTotals{
		Conservative: domain.BucketAggregate{
			Principal:           conservativePrincipal.InexactFloat64(),
			MonthlyContribution: conservativeMonthly.InexactFloat64(),
		},
		Growth: domain.BucketAggregate{
			Principal:           growthPrincipal.InexactFloat64(),
			MonthlyContribution: growthMonthly.InexactFloat64(),
		},
	}, nil
}
