// Package datetime provides date and time utility functions.
package datetime

import (
	"time"

	"github.com/iwvelando/penalty-estimator/pkg/constants"
)

const (
	// DateTimeLayout is the format expected for due and settled dates.
	DateTimeLayout = constants.DateTimeLayout
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// MonthsBetween returns the number of calendar months from firstDate to
// secondDate. The result is negative when secondDate is earlier.
func MonthsBetween(firstDate, secondDate string) (int, error) {
	firstDateT, err := time.Parse(DateTimeLayout, firstDate)
	if err != nil {
		return 0, err
	}
	secondDateT, err := time.Parse(DateTimeLayout, secondDate)
	if err != nil {
		return 0, err
	}
	years := secondDateT.Year() - firstDateT.Year()
	months := int(secondDateT.Month()) - int(firstDateT.Month())
	return years*12 + months, nil
}

// MonthsLate returns how many months settledDate falls after dueDate, never
// less than zero.
func MonthsLate(dueDate, settledDate string) (int, error) {
	months, err := MonthsBetween(dueDate, settledDate)
	if err != nil {
		return 0, err
	}
	if months < 0 {
		return 0, nil
	}
	return months, nil
}

// DateBeforeDate returns true if firstDate is strictly before secondDate.
func DateBeforeDate(firstDate string, secondDate string) (bool, error) {
	firstDateT, err := time.Parse(DateTimeLayout, firstDate)
	if err != nil {
		return false, err
	}
	secondDateT, err := time.Parse(DateTimeLayout, secondDate)
	if err != nil {
		return false, err
	}
	return firstDateT.Before(secondDateT), nil
}
