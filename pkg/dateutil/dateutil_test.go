package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestAgeCalculation tests the age calculation function with various scenarios
func TestAgeCalculation(t *testing.T) {
	tests := []struct {
		name        string
		birthDate   time.Time
		atDate      time.Time
		expectedAge int
		description string
	}{
		{
			name:        "Same month and day",
			birthDate:   time.Date(1990, 2, 25, 0, 0, 0, 0, time.UTC),
			atDate:      time.Date(2025, 2, 25, 0, 0, 0, 0, time.UTC),
			expectedAge: 35,
			description: "Exact birthday",
		},
		{
			name:        "Day before birthday",
			birthDate:   time.Date(1990, 2, 25, 0, 0, 0, 0, time.UTC),
			atDate:      time.Date(2025, 2, 24, 0, 0, 0, 0, time.UTC),
			expectedAge: 34,
			description: "One day before 35th birthday",
		},
		{
			name:        "Month after birthday",
			birthDate:   time.Date(1990, 2, 25, 0, 0, 0, 0, time.UTC),
			atDate:      time.Date(2025, 3, 25, 0, 0, 0, 0, time.UTC),
			expectedAge: 35,
			description: "Same day, month after birthday",
		},
		{
			name:        "Leap year birth, non-leap year check",
			birthDate:   time.Date(1992, 2, 29, 0, 0, 0, 0, time.UTC),
			atDate:      time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
			expectedAge: 32,
			description: "Born on leap day, checking on Feb 28",
		},
		{
			name:        "Leap year birth, leap year check",
			birthDate:   time.Date(1992, 2, 29, 0, 0, 0, 0, time.UTC),
			atDate:      time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			expectedAge: 32,
			description: "Born on leap day, checking on leap day",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			age := Age(tt.birthDate, tt.atDate)
			assert.Equal(t, tt.expectedAge, age,
				"%s: Expected age %d, got %d", tt.description, tt.expectedAge, age)
		})
	}
}

func TestYearsUntilDate(t *testing.T) {
	from := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.InDelta(t, 25.0, YearsUntilDate(from, to), 0.01)
	assert.InDelta(t, -25.0, YearsUntilDate(to, from), 0.01)
}

func TestYearsUntilAge(t *testing.T) {
	birth := time.Date(1990, 7, 1, 0, 0, 0, 0, time.UTC)
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	// 65th birthday is 2055-07-01, thirty and a half years away
	assert.InDelta(t, 30.5, YearsUntilAge(birth, at, 65), 0.01)
	assert.Less(t, YearsUntilAge(birth, at, 30), 0.0)
}

func TestAddYears(t *testing.T) {
	d := time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2030, 3, 15, 0, 0, 0, 0, time.UTC), AddYears(d, 10))
}
