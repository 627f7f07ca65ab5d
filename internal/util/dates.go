package util

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errors.New("invalid date format (use YYYY-MM-DD)")
	}
	return t, nil
}

// DateString formats a year/month/day triple as YYYY-MM-DD.
func DateString(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// DaysInMonth returns the number of days in the given month (1-12).
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Weekday returns the weekday index (0=Sunday) for a YYYY-MM-DD string.
func Weekday(dateStr string) (int, error) {
	t, err := ParseDate(dateStr)
	if err != nil {
		return 0, err
	}
	return int(t.Weekday()), nil
}

// MonthPrefix returns the "YYYY-MM-" prefix shared by all dates in a month.
func MonthPrefix(year, month int) string {
	return fmt.Sprintf("%04d-%02d-", year, month)
}

func ParseDateRange(startStr, endStr *string) (start time.Time, hasStart bool, endExclusive time.Time, hasEnd bool, err error) {
	parseAny := func(s string) (t time.Time, ok bool, isDateOnly bool, err error) {
		s = strings.TrimSpace(s)
		if s == "" {
			return time.Time{}, false, false, nil
		}

		if tt, e := time.Parse(time.RFC3339, s); e == nil {
			return tt, true, false, nil
		}

		if tt, e := time.Parse(DateLayout, s); e == nil {
			return tt, true, true, nil // date-only => start of day
		}

		return time.Time{}, false, false, errors.New("invalid date format (use YYYY-MM-DD or RFC3339)")
	}

	var (
		rawStart    time.Time
		rawEnd      time.Time
		startOk     bool
		endOk       bool
		endDateOnly bool
	)

	if startStr != nil {
		t, ok, _, e := parseAny(*startStr)
		if e != nil {
			return time.Time{}, false, time.Time{}, false, e
		}
		if ok {
			rawStart = t
			startOk = true
		}
	}

	if endStr != nil {
		t, ok, isDateOnly, e := parseAny(*endStr)
		if e != nil {
			return time.Time{}, false, time.Time{}, false, e
		}
		if ok {
			rawEnd = t
			endOk = true
			endDateOnly = isDateOnly
		}
	}

	if startOk && endOk && rawEnd.Before(rawStart) {
		rawStart, rawEnd = rawEnd, rawStart
	}

	if startOk {
		start = rawStart
		hasStart = true
	}

	if endOk {
		if endDateOnly {
			endExclusive = rawEnd.AddDate(0, 0, 1) // include the whole end date
		} else {
			endExclusive = rawEnd
		}
		hasEnd = true
	}

	return start, hasStart, endExclusive, hasEnd, nil
}
