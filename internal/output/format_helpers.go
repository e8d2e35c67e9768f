package output

import (
	"strconv"

	money "github.com/SumitLubal/retirement/pkg/decimal"
)

// FormatCurrency formats a dollar amount with thousands separators and 2 decimals.
// Amounts that overflowed to infinity render as "n/a".
func FormatCurrency(amount float64) string {
	m, ok := money.FromFloat(amount)
	if !ok {
		return "n/a"
	}
	return m.Format()
}

// FormatPercentage formats a percentage with 2 decimals.
func FormatPercentage(pct float64) string {
	m, ok := money.FromFloat(pct)
	if !ok {
		return "n/a"
	}
	return m.String() + "%"
}

// fixed2 renders a plain machine-readable amount for CSV output.
func fixed2(amount float64) string {
	m, ok := money.FromFloat(amount)
	if !ok {
		return strconv.FormatFloat(amount, 'f', -1, 64)
	}
	return m.String()
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
