package decimal

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

var printer = message.NewPrinter(language.English)

// NewMoney creates a new Money instance from a float64.
// Non-finite values panic; use FromFloat when the input may have overflowed.
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// FromFloat converts a float64, reporting false for NaN or infinite values
func FromFloat(value float64) (Money, bool) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Money{}, false
	}
	return NewMoney(value), true
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the money amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(12))}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sum adds up any number of amounts
func Sum(amounts ...Money) Money {
	total := Zero()
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the plain two-decimal representation
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount as dollars with thousands separators, e.g. $11,424.00
func (m Money) Format() string {
	rounded := m.Round()
	if rounded.IsNegative() {
		return "-$" + printer.Sprintf("%.2f", rounded.Neg().InexactFloat64())
	}
	return "$" + printer.Sprintf("%.2f", rounded.InexactFloat64())
}
