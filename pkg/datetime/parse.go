// Package datetime provides date and time utility functions.
package datetime

import (
	"time"

	"github.com/paisawise/paisawise/pkg/constants"
)

const (
	// DateLayout is the month format used by schedule builders and is also
	// the output date format.
	DateLayout = constants.DateLayout
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

// OffsetDate returns the string-formatted date offset by the given number of
// months relative to the given date.
func OffsetDate(date, layout string, months int) (string, error) {
	t, err := time.Parse(layout, date)
	if err != nil {
		return date, err
	}
	return t.AddDate(0, months, 0).Format(layout), nil
}

// CheckMonth identifies whether a given date is in the month indicated by the
// numeric representation e.g. 01 = January and 12 = December.
func CheckMonth(date string, month string) (bool, error) {
	dateT, err := time.Parse(DateLayout, date)
	if err != nil {
		return false, err
	}
	return dateT.Format("01") == month, nil
}

// DateBeforeDate returns true if firstDate is strictly before secondDate.
func DateBeforeDate(firstDate string, secondDate string) (bool, error) {
	firstDateT, err := time.Parse(DateLayout, firstDate)
	if err != nil {
		return false, err
	}
	secondDateT, err := time.Parse(DateLayout, secondDate)
	if err != nil {
		return false, err
	}
	return firstDateT.Before(secondDateT), nil
}

// SequenceMonths returns n consecutive month strings starting at start.
// Schedule builders use this to label ledger rows.
func SequenceMonths(start string, n int) ([]string, error) {
	t, err := time.Parse(DateLayout, start)
	if err != nil {
		return nil, err
	}
	months := make([]string, 0, n)
	for i := 0; i < n; i++ {
		months = append(months, t.AddDate(0, i, 0).Format(DateLayout))
	}
	return months, nil
}

// CurrentMonth returns the current month in DateLayout format.
func CurrentMonth() string {
	return time.Now().Format(DateLayout)
}
