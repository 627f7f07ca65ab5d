package schedule

import (
	"testing"

	"carebase-api/internal/holiday"
)

func TestUtilization(t *testing.T) {
	cases := []struct {
		used, capacity, want int
	}{
		{7, 10, 70},
		{10, 10, 100},
		{12, 10, 120},
		{0, 10, 0},
		{5, 0, 0},  // capacity zero never divides
		{1, 3, 33}, // rounded
		{2, 3, 67},
	}
	for _, c := range cases {
		if got := Utilization(c.used, c.capacity); got != c.want {
			t.Errorf("Utilization(%d, %d) = %d, want %d", c.used, c.capacity, got, c.want)
		}
	}
}

func TestSummarizeDay(t *testing.T) {
	cap := Capacity{AM: 10, PM: 10, Pickup: 4, Dropoff: 4}
	items := []ScheduleItem{
		{Date: "2024-08-07", ChildID: "c1", Slot: SlotAM, HasPickup: true},
		{Date: "2024-08-07", ChildID: "c2", Slot: SlotAM},
		{Date: "2024-08-07", ChildID: "c1", Slot: SlotPM, HasDropoff: true},
		{Date: "2024-08-08", ChildID: "c3", Slot: SlotAM}, // other day, ignored
	}

	sum := SummarizeDay(items, "2024-08-07", cap, holiday.Settings{})

	if sum.AM.Used != 2 || sum.PM.Used != 1 {
		t.Fatalf("used = AM %d / PM %d, want 2 / 1", sum.AM.Used, sum.PM.Used)
	}
	if sum.AM.Remaining != 8 {
		t.Errorf("AM remaining = %d, want 8", sum.AM.Remaining)
	}
	if sum.AM.Utilization != 20 || sum.PM.Utilization != 10 {
		t.Errorf("utilization = AM %d / PM %d, want 20 / 10", sum.AM.Utilization, sum.PM.Utilization)
	}
	if sum.UniqueChildren != 2 {
		t.Errorf("unique children = %d, want 2", sum.UniqueChildren)
	}
	if sum.TotalPickup != 1 || sum.TotalDropoff != 1 {
		t.Errorf("transport = pickup %d / dropoff %d, want 1 / 1", sum.TotalPickup, sum.TotalDropoff)
	}
}

func TestSummarizeDayHolidayFlag(t *testing.T) {
	hs := holiday.Settings{RegularHolidays: []int64{0}}

	// 2024-08-04 is a Sunday
	sum := SummarizeDay(nil, "2024-08-04", Capacity{AM: 10, PM: 10}, hs)
	if !sum.Holiday {
		t.Fatal("expected Sunday to be flagged as holiday")
	}
}

func TestSummarizeRangeExcludesHolidays(t *testing.T) {
	hs := holiday.Settings{RegularHolidays: []int64{0}}
	cap := Capacity{AM: 10, PM: 10}

	items := []ScheduleItem{
		{Date: "2024-08-05", ChildID: "c1", Slot: SlotAM}, // Monday
		{Date: "2024-08-06", ChildID: "c2", Slot: SlotPM}, // Tuesday
	}

	// Sunday 2024-08-04 through Tuesday 2024-08-06
	sum, err := SummarizeRange(items, "2024-08-04", "2024-08-06", cap, hs)
	if err != nil {
		t.Fatalf("SummarizeRange: %v", err)
	}

	if len(sum.Days) != 3 {
		t.Fatalf("days = %d, want 3", len(sum.Days))
	}
	if sum.BusinessDays != 2 {
		t.Errorf("business days = %d, want 2", sum.BusinessDays)
	}
	if sum.UsedAM != 1 || sum.UsedPM != 1 {
		t.Errorf("used = AM %d / PM %d, want 1 / 1", sum.UsedAM, sum.UsedPM)
	}
	// 2 used over 2 business days * 20 slots = 5%
	if sum.Utilization != 5 {
		t.Errorf("utilization = %d, want 5", sum.Utilization)
	}
	if sum.UniqueChildren != 2 {
		t.Errorf("unique children = %d, want 2", sum.UniqueChildren)
	}
}

func TestSummarizeRangeBadDates(t *testing.T) {
	if _, err := SummarizeRange(nil, "not-a-date", "2024-08-06", Capacity{}, holiday.Settings{}); err == nil {
		t.Fatal("expected error for malformed from date")
	}
}
