package holiday

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"carebase-api/internal/util"
)

// NationalHolidays returns the Japanese national holidays for a year as
// sorted YYYY-MM-DD strings, including substitute holidays.
func NationalHolidays(year int) []string {
	holidays := []string{
		util.DateString(year, 1, 1),   // New Year's Day
		util.DateString(year, 2, 11),  // National Foundation Day
		util.DateString(year, 4, 29),  // Showa Day
		util.DateString(year, 5, 3),   // Constitution Memorial Day
		util.DateString(year, 5, 4),   // Greenery Day
		util.DateString(year, 5, 5),   // Children's Day
		util.DateString(year, 8, 11),  // Mountain Day
		util.DateString(year, 11, 3),  // Culture Day
		util.DateString(year, 11, 23), // Labor Thanksgiving Day
	}

	// Emperor's Birthday moved from Dec 23 to Feb 23 in 2020.
	if year >= 2020 {
		holidays = append(holidays, util.DateString(year, 2, 23))
	} else {
		holidays = append(holidays, util.DateString(year, 12, 23))
	}

	holidays = append(holidays, springEquinox(year), autumnEquinox(year))

	// Marine Day: 3rd Monday of July until 2020, fixed thereafter.
	if year >= 2020 {
		holidays = append(holidays, util.DateString(year, 7, 23))
	} else {
		holidays = append(holidays, nthMonday(year, time.July, 3))
	}

	// Respect for the Aged Day: 3rd Monday of September.
	holidays = append(holidays, nthMonday(year, time.September, 3))

	// Sports Day: 2nd Monday of October until 2020, fixed thereafter.
	if year >= 2020 {
		holidays = append(holidays, util.DateString(year, 7, 24))
	} else {
		holidays = append(holidays, nthMonday(year, time.October, 2))
	}

	holidays = append(holidays, substituteHolidays(holidays)...)

	sort.Strings(holidays)
	return holidays
}

// IsNationalHoliday reports whether a YYYY-MM-DD date is a Japanese
// national holiday.
func IsNationalHoliday(dateStr string) bool {
	yearStr, _, ok := strings.Cut(dateStr, "-")
	if !ok {
		return false
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return false
	}
	for _, h := range NationalHolidays(year) {
		if h == dateStr {
			return true
		}
	}
	return false
}

// springEquinox approximates the vernal equinox day, valid 1900-2099.
func springEquinox(year int) string {
	if year <= 2099 {
		day := int(math.Floor(20.8431 + 0.242194*float64(year-1980) - math.Floor(float64(year-1980)/4)))
		return util.DateString(year, 3, day)
	}
	return util.DateString(year, 3, 20)
}

// autumnEquinox approximates the autumnal equinox day, valid 1900-2099.
func autumnEquinox(year int) string {
	if year <= 2099 {
		day := int(math.Floor(23.2488 + 0.242194*float64(year-1980) - math.Floor(float64(year-1980)/4)))
		return util.DateString(year, 9, day)
	}
	return util.DateString(year, 9, 23)
}

func nthMonday(year int, month time.Month, n int) string {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysToAdd := (int(time.Monday)-int(first.Weekday())+7)%7 + (n-1)*7
	d := first.AddDate(0, 0, daysToAdd)
	return util.DateString(d.Year(), int(d.Month()), d.Day())
}

// substituteHolidays returns the Monday after each holiday that falls on a
// Sunday, unless that Monday is already a holiday.
func substituteHolidays(holidays []string) []string {
	known := make(map[string]bool, len(holidays))
	for _, h := range holidays {
		known[h] = true
	}

	var subs []string
	for _, h := range holidays {
		d, err := util.ParseDate(h)
		if err != nil {
			continue
		}
		if d.Weekday() != time.Sunday {
			continue
		}
		next := d.AddDate(0, 0, 1)
		nextStr := util.DateString(next.Year(), int(next.Month()), next.Day())
		if !known[nextStr] {
			subs = append(subs, nextStr)
			known[nextStr] = true
		}
	}
	return subs
}
