package schedule

import (
	"math"
	"sort"

	"carebase-api/internal/child"
	"carebase-api/internal/holiday"
	"carebase-api/internal/util"
)

var weekdayNames = []string{"日", "月", "火", "水", "木", "金", "土"}

// WeekdayForecast is the expected slot load on one weekday of the month.
type WeekdayForecast struct {
	DayIndex   int    `json:"day_index"`
	DayOfWeek  string `json:"day_of_week"`
	AMSlots    int    `json:"am_slots"`
	PMSlots    int    `json:"pm_slots"`
	TotalSlots int    `json:"total_slots"`
}

// ChildWeekForecast counts one child's expected usage days in a week.
type ChildWeekForecast struct {
	ChildID   string `json:"child_id"`
	ChildName string `json:"child_name"`
	Days      int    `json:"days"`
}

// WeekForecast is the expected slot load of one calendar week (days 1-7,
// 8-14, and so on, of the month).
type WeekForecast struct {
	Week       int                 `json:"week"`
	StartDate  string              `json:"start_date"`
	EndDate    string              `json:"end_date"`
	AMSlots    int                 `json:"am_slots"`
	PMSlots    int                 `json:"pm_slots"`
	TotalSlots int                 `json:"total_slots"`
	Children   []ChildWeekForecast `json:"children"`
}

// ChildDayForecast is one expected child visit on one day.
type ChildDayForecast struct {
	ChildID   string `json:"child_id"`
	ChildName string `json:"child_name"`
	TimeSlot  string `json:"time_slot"`
}

// DayForecast is the expected slot load of one day.
type DayForecast struct {
	Date       string             `json:"date"`
	DayOfWeek  string             `json:"day_of_week"`
	AMSlots    int                `json:"am_slots"`
	PMSlots    int                `json:"pm_slots"`
	TotalSlots int                `json:"total_slots"`
	Children   []ChildDayForecast `json:"children"`
}

// MonthForecast projects the month's expected occupancy from the
// children's recurring patterns and contract-day allowances, before any
// schedule rows exist.
type MonthForecast struct {
	Year            int               `json:"year"`
	Month           int               `json:"month"`
	TotalSlots      int               `json:"total_slots"`
	ForecastedSlots int               `json:"forecasted_slots"`
	UtilizationRate int               `json:"utilization_rate"`
	ByWeekday       []WeekdayForecast `json:"by_weekday"`
	ByWeek          []WeekForecast    `json:"by_week"`
	ByDay           []DayForecast     `json:"by_day"`
}

// ForecastMonth computes the utilization forecast for one month. A
// child's contract days are prorated over the weekdays of their pattern:
// when the pattern would occur more often than the contract allows, the
// earliest occurrences of each weekday are kept.
func ForecastMonth(children []child.Child, hs holiday.Settings, cap Capacity, year, month int) MonthForecast {
	daysInMonth := util.DaysInMonth(year, month)

	type dayBucket struct {
		am []ChildDayForecast
		pm []ChildDayForecast
	}
	daily := map[string]*dayBucket{}
	weekly := map[int]*WeekForecast{}
	weeklyChildren := map[int]map[string]*ChildWeekForecast{}
	weekdaySlots := make([]WeekdayForecast, 7)
	for i := range weekdaySlots {
		weekdaySlots[i] = WeekdayForecast{DayIndex: i, DayOfWeek: weekdayNames[i]}
	}

	businessDate := func(day int) (string, int, bool) {
		date := util.DateString(year, month, day)
		if holiday.IsHoliday(hs, date) {
			return date, 0, false
		}
		weekday, err := util.Weekday(date)
		if err != nil {
			return date, 0, false
		}
		return date, weekday, true
	}

	for i := range children {
		ch := &children[i]
		if len(ch.PatternDays) == 0 {
			continue
		}
		contractDays := 0
		if ch.ContractDays != nil {
			contractDays = *ch.ContractDays
		}
		if contractDays <= 0 {
			continue
		}

		inWindow := func(date string) bool {
			if ch.ContractStartDate != "" && date < ch.ContractStartDate {
				return false
			}
			if ch.ContractEndDate != "" && date > ch.ContractEndDate {
				return false
			}
			return true
		}

		// Count how often each pattern weekday is bookable this month.
		occurrences := map[int]int{}
		total := 0
		for day := 1; day <= daysInMonth; day++ {
			date, weekday, ok := businessDate(day)
			if !ok || !inWindow(date) {
				continue
			}
			if hasDay(ch.PatternDays, weekday) {
				occurrences[weekday]++
				total++
			}
		}
		if total == 0 {
			continue
		}

		usageDays := contractDays
		if usageDays > total {
			usageDays = total
		}
		ratio := float64(usageDays) / float64(total)

		for _, d := range ch.PatternDays {
			weekday := int(d)
			wanted := int(math.Floor(float64(occurrences[weekday]) * ratio))
			if wanted == 0 {
				continue
			}
			slot := child.PatternSlot(ch, weekday)
			if slot == "" {
				slot = SlotPM
			}

			used := 0
			for day := 1; day <= daysInMonth && used < wanted; day++ {
				date, wd, ok := businessDate(day)
				if !ok || wd != weekday || !inWindow(date) {
					continue
				}

				bucket := daily[date]
				if bucket == nil {
					bucket = &dayBucket{}
					daily[date] = bucket
				}
				week := (day-1)/7 + 1
				wf := weekly[week]
				if wf == nil {
					wf = &WeekForecast{Week: week}
					weekly[week] = wf
					weeklyChildren[week] = map[string]*ChildWeekForecast{}
				}
				cw := weeklyChildren[week][ch.ID]
				if cw == nil {
					cw = &ChildWeekForecast{ChildID: ch.ID, ChildName: ch.Name}
					weeklyChildren[week][ch.ID] = cw
				}
				cw.Days++

				if slot == SlotAM || slot == child.SlotAMPM {
					bucket.am = append(bucket.am, ChildDayForecast{ChildID: ch.ID, ChildName: ch.Name, TimeSlot: SlotAM})
					weekdaySlots[weekday].AMSlots++
					wf.AMSlots++
				}
				if slot == SlotPM || slot == child.SlotAMPM {
					bucket.pm = append(bucket.pm, ChildDayForecast{ChildID: ch.ID, ChildName: ch.Name, TimeSlot: SlotPM})
					weekdaySlots[weekday].PMSlots++
					wf.PMSlots++
				}
				used++
			}
		}
	}

	forecast := MonthForecast{Year: year, Month: month}

	forecastedSlots := 0
	for i := range weekdaySlots {
		weekdaySlots[i].TotalSlots = weekdaySlots[i].AMSlots + weekdaySlots[i].PMSlots
		forecastedSlots += weekdaySlots[i].TotalSlots
	}
	forecast.ByWeekday = weekdaySlots

	for week := 1; week <= 5; week++ {
		startDay := (week-1)*7 + 1
		if startDay > daysInMonth {
			break
		}
		endDay := week * 7
		if endDay > daysInMonth {
			endDay = daysInMonth
		}

		wf := weekly[week]
		if wf == nil {
			wf = &WeekForecast{Week: week}
		}
		wf.StartDate = util.DateString(year, month, startDay)
		wf.EndDate = util.DateString(year, month, endDay)
		wf.TotalSlots = wf.AMSlots + wf.PMSlots
		wf.Children = []ChildWeekForecast{}
		for _, cw := range weeklyChildren[week] {
			wf.Children = append(wf.Children, *cw)
		}
		sortChildWeekForecasts(wf.Children)
		forecast.ByWeek = append(forecast.ByWeek, *wf)
	}

	for day := 1; day <= daysInMonth; day++ {
		date := util.DateString(year, month, day)
		bucket := daily[date]
		if bucket == nil {
			continue
		}
		weekday, _ := util.Weekday(date)
		df := DayForecast{
			Date:       date,
			DayOfWeek:  weekdayNames[weekday],
			AMSlots:    len(bucket.am),
			PMSlots:    len(bucket.pm),
			TotalSlots: len(bucket.am) + len(bucket.pm),
		}
		df.Children = append(df.Children, bucket.am...)
		df.Children = append(df.Children, bucket.pm...)
		forecast.ByDay = append(forecast.ByDay, df)
	}

	businessDays := 0
	for day := 1; day <= daysInMonth; day++ {
		if _, _, ok := businessDate(day); ok {
			businessDays++
		}
	}
	forecast.TotalSlots = businessDays * (cap.AM + cap.PM)
	forecast.ForecastedSlots = forecastedSlots
	forecast.UtilizationRate = Utilization(forecastedSlots, forecast.TotalSlots)

	return forecast
}

func hasDay(days []int64, weekday int) bool {
	for _, d := range days {
		if int(d) == weekday {
			return true
		}
	}
	return false
}

func sortChildWeekForecasts(list []ChildWeekForecast) {
	sort.Slice(list, func(i, j int) bool { return list[i].ChildID < list[j].ChildID })
}

// GetMonthForecast projects the month's expected occupancy from the
// facility's children and settings.
func (ss *ScheduleService) GetMonthForecast(facilityID string, year, month int) (*MonthForecast, error) {
	settings, err := ss.Settings.GetSettings(facilityID)
	if err != nil {
		return nil, err
	}
	children, err := ss.Children.GetChildren(facilityID)
	if err != nil {
		return nil, err
	}

	forecast := ForecastMonth(children, settings.HolidaySettings(), capacityOf(settings), year, month)
	return &forecast, nil
}
