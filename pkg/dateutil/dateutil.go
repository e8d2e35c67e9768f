package dateutil

import (
	"time"
)

// Age calculates the age in whole years at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// AddYears adds a specified number of years to a date
func AddYears(date time.Time, years int) time.Time {
	return date.AddDate(years, 0, 0)
}

// YearsUntilDate calculates the fractional number of years between two dates
func YearsUntilDate(fromDate, toDate time.Time) float64 {
	duration := toDate.Sub(fromDate)
	return duration.Hours() / 24 / 365.25
}

// YearsUntilAge returns the fractional years from atDate until the birthday at targetAge.
// The result is negative once that birthday has passed.
func YearsUntilAge(birthDate, atDate time.Time, targetAge int) float64 {
	return YearsUntilDate(atDate, AddYears(birthDate, targetAge))
}
