package schedule

import (
	"math"

	"carebase-api/internal/facility"
	"carebase-api/internal/holiday"
	"carebase-api/internal/util"
)

func capacityOf(s *facility.Settings) Capacity {
	return Capacity{
		AM:      s.CapacityAM,
		PM:      s.CapacityPM,
		Pickup:  s.PickupCapacity,
		Dropoff: s.DropoffCapacity,
	}
}

// Utilization returns round(used/capacity*100), with capacity 0 mapping
// to 0 instead of dividing by zero.
func Utilization(used, capacity int) int {
	if capacity <= 0 {
		return 0
	}
	return int(math.Round(float64(used) / float64(capacity) * 100))
}

// SummarizeDay derives one day's occupancy from the schedule rows of that
// day. Counts are derived, never stored.
func SummarizeDay(items []ScheduleItem, date string, cap Capacity, hs holiday.Settings) DaySummary {
	sum := DaySummary{
		Date:    date,
		Holiday: holiday.IsHoliday(hs, date),
	}

	uniq := map[string]bool{}
	for _, it := range items {
		if it.Date != date {
			continue
		}
		uniq[it.ChildID] = true

		var slot *SlotSummary
		switch it.Slot {
		case SlotAM:
			slot = &sum.AM
		case SlotPM:
			slot = &sum.PM
		default:
			continue
		}

		slot.Used++
		if it.HasPickup {
			slot.Pickup++
		}
		if it.HasDropoff {
			slot.Dropoff++
		}
	}

	sum.AM.Capacity = cap.AM
	sum.PM.Capacity = cap.PM
	sum.AM.Remaining = cap.AM - sum.AM.Used
	sum.PM.Remaining = cap.PM - sum.PM.Used
	sum.AM.Utilization = Utilization(sum.AM.Used, cap.AM)
	sum.PM.Utilization = Utilization(sum.PM.Used, cap.PM)
	sum.UniqueChildren = len(uniq)
	sum.TotalPickup = sum.AM.Pickup + sum.PM.Pickup
	sum.TotalDropoff = sum.AM.Dropoff + sum.PM.Dropoff

	return sum
}

// SummarizeRange sums occupancy across the non-holiday days of [from, to]
// (inclusive, YYYY-MM-DD). Holiday days are carried in Days for display
// but excluded from the totals.
func SummarizeRange(items []ScheduleItem, from, to string, cap Capacity, hs holiday.Settings) (RangeSummary, error) {
	start, err := util.ParseDate(from)
	if err != nil {
		return RangeSummary{}, err
	}
	end, err := util.ParseDate(to)
	if err != nil {
		return RangeSummary{}, err
	}

	sum := RangeSummary{From: from, To: to}
	uniq := map[string]bool{}

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dateStr := util.DateString(d.Year(), int(d.Month()), d.Day())
		day := SummarizeDay(items, dateStr, cap, hs)
		sum.Days = append(sum.Days, day)

		if day.Holiday {
			continue
		}
		sum.BusinessDays++
		sum.UsedAM += day.AM.Used
		sum.UsedPM += day.PM.Used
		for _, it := range items {
			if it.Date == dateStr {
				uniq[it.ChildID] = true
			}
		}
	}

	sum.UniqueChildren = len(uniq)
	sum.Utilization = Utilization(sum.UsedAM+sum.UsedPM, sum.BusinessDays*(cap.AM+cap.PM))
	return sum, nil
}
