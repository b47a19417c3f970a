// Package dateutil parses the calendar dates used to filter dashcam recordings.
package dateutil

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Layouts accepted for a date bound, in the order they are tried.
const (
	layoutDate         = "2006-01-02"
	layoutMonth        = "2006-01"
	layoutCompactDate  = "20060102"
	layoutCompactMonth = "200601"
)

// FromFilename extracts the recording date from the first 8 characters of the
// file's base name (YYYYMMDD). ok is false when the prefix is missing, not
// numeric, or not a real calendar date.
func FromFilename(path string) (date time.Time, ok bool) {
	base := filepath.Base(path)
	if len(base) < 8 {
		return time.Time{}, false
	}
	prefix := base[:8]
	for _, r := range prefix {
		if r < '0' || r > '9' {
			return time.Time{}, false
		}
	}
	d, err := time.Parse(layoutCompactDate, prefix)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// ParseBound parses a date bound in YYYY-MM-DD, YYYY-MM, YYYYMMDD or YYYYMM
// form. Month-only values resolve to the first day of the month, or to the
// last day when end is true.
func ParseBound(s string, end bool) (time.Time, error) {
	s = strings.TrimSpace(s)

	if d, err := time.Parse(layoutDate, s); err == nil {
		return d, nil
	}
	if d, err := time.Parse(layoutCompactDate, s); len(s) == 8 && err == nil {
		return d, nil
	}

	first, err := parseMonth(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected YYYY-MM-DD, YYYY-MM, YYYYMMDD, or YYYYMM, got '%s'", s)
	}
	if end {
		return lastDayOf(first), nil
	}
	return first, nil
}

// MonthRange expands a YYYY-MM or YYYYMM month into its first and last day.
func MonthRange(s string) (first, last time.Time, err error) {
	first, err = parseMonth(strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("expected YYYY-MM or YYYYMM, got '%s'", s)
	}
	return first, lastDayOf(first), nil
}

// Format renders a date as YYYY-MM-DD.
func Format(d time.Time) string {
	return d.Format(layoutDate)
}

func parseMonth(s string) (time.Time, error) {
	if d, err := time.Parse(layoutMonth, s); err == nil {
		return d, nil
	}
	if len(s) != 6 {
		return time.Time{}, fmt.Errorf("invalid month '%s'", s)
	}
	return time.Parse(layoutCompactMonth, s)
}

// lastDayOf returns the last calendar day of d's month. time.Date normalises
// month 13 into January of the following year.
func lastDayOf(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month()+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
}
