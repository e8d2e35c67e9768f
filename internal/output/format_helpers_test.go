package output

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{1234.5, "$1,234.50"},
		{11424, "$11,424.00"},
		{-250.125, "-$250.13"},
		{math.Inf(1), "n/a"},
		{math.NaN(), "n/a"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(tt.in), "FormatCurrency(%v)", tt.in)
	}
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "4.00%", FormatPercentage(4))
	assert.Equal(t, "3.20%", FormatPercentage(3.2))
	assert.Equal(t, "n/a", FormatPercentage(math.Inf(-1)))
}

func TestFixed2(t *testing.T) {
	assert.Equal(t, "11424.00", fixed2(11424))
	assert.Equal(t, "0.00", fixed2(0))
	assert.Equal(t, "+Inf", fixed2(math.Inf(1)))
}
