package holiday

import (
	"time"

	"carebase-api/internal/util"
)

// Period is a date-range override of the facility's regular weekly holidays.
// EndDate may be empty, in which case the period extends indefinitely.
type Period struct {
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate,omitempty"`
	RegularHolidays []int64 `json:"regularHolidays"`
}

// Settings is the holiday-relevant slice of a facility's configuration.
type Settings struct {
	RegularHolidays         []int64  `json:"regularHolidays"`
	HolidayPeriods          []Period `json:"holidayPeriods,omitempty"`
	CustomHolidays          []string `json:"customHolidays,omitempty"`
	IncludeNationalHolidays bool     `json:"includeNationalHolidays"`
}

// Options tune resolver behavior for individual call sites.
type Options struct {
	// ForceSunday additionally treats every Sunday as a holiday, matching
	// the behavior one legacy screen applied regardless of configuration.
	ForceSunday bool
}

// IsHoliday reports whether the date (YYYY-MM-DD) is non-operating under
// the given settings.
//
// The first holiday period whose [start, end] range contains the date wins
// and its weekday set replaces the facility default. Periods without a
// start date are skipped; a missing end date means the period never ends.
// Custom holiday dates and, when enabled, Japanese national holidays are
// holidays regardless of weekday. Malformed dates resolve to non-holiday.
func IsHoliday(s Settings, dateStr string) bool {
	return IsHolidayOpt(s, dateStr, Options{})
}

func IsHolidayOpt(s Settings, dateStr string, opt Options) bool {
	weekday, err := util.Weekday(dateStr)
	if err != nil {
		return false
	}

	if opt.ForceSunday && weekday == int(time.Sunday) {
		return true
	}

	var matched *Period
	for i := range s.HolidayPeriods {
		p := &s.HolidayPeriods[i]
		if p.StartDate == "" {
			continue
		}
		// ISO date strings compare correctly as plain strings.
		if dateStr >= p.StartDate && (p.EndDate == "" || dateStr <= p.EndDate) {
			matched = p
			break
		}
	}

	if matched != nil {
		if containsWeekday(matched.RegularHolidays, weekday) {
			return true
		}
	} else if containsWeekday(s.RegularHolidays, weekday) {
		return true
	}

	for _, custom := range s.CustomHolidays {
		if custom == dateStr {
			return true
		}
	}

	if s.IncludeNationalHolidays && IsNationalHoliday(dateStr) {
		return true
	}

	return false
}

func containsWeekday(set []int64, weekday int) bool {
	for _, w := range set {
		if int(w) == weekday {
			return true
		}
	}
	return false
}
