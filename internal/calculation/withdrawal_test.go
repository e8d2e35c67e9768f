package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnnualWithdrawal(t *testing.T) {
	assert.Equal(t, 20000.0, AnnualWithdrawal(500000, 4))
	assert.Equal(t, 0.0, AnnualWithdrawal(500000, 0))
	assert.Equal(t, 0.0, AnnualWithdrawal(0, 4))
	assert.InDelta(t, 35000.0, AnnualWithdrawal(1000000, 3.5), 1e-9)
}

func TestFixedWithdrawalClampsToBalance(t *testing.T) {
	fw := NewFixedWithdrawal(500000, 4)
	assert.Equal(t, 20000.0, fw.Annual)

	tests := []struct {
		name     string
		balance  float64
		expected float64
	}{
		{"balance covers withdrawal", 300000, 20000},
		{"balance exactly withdrawal", 20000, 20000},
		{"balance below withdrawal", 7500, 7500},
		{"empty balance", 0, 0},
		{"negative balance", -100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, fw.Withdraw(tt.balance))
		})
	}

	assert.Equal(t, 0.0, FixedWithdrawal{}.Withdraw(1000))
}
