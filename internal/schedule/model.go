package schedule

import "time"

type TimeSlot = string

const (
	SlotAM TimeSlot = "AM"
	SlotPM TimeSlot = "PM"
)

type ScheduleItem struct {
	ID         string `gorm:"primaryKey;size:64" json:"id"`
	FacilityID string `gorm:"size:64;index:idx_sched_unique,unique;not null" json:"facility_id"`
	Date       string `gorm:"size:10;index:idx_sched_unique,unique;not null" json:"date"`
	ChildID    string `gorm:"size:64;index:idx_sched_unique,unique;not null" json:"child_id"`
	Slot       string `gorm:"size:4;index:idx_sched_unique,unique;not null" json:"slot"`

	ChildName  string `gorm:"size:100" json:"child_name"` // denormalized for display
	HasPickup  bool   `gorm:"default:false" json:"has_pickup"`
	HasDropoff bool   `gorm:"default:false" json:"has_dropoff"`
	StaffID    string `gorm:"size:64" json:"staff_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ScheduleItem) TableName() string {
	return "schedules"
}

// Capacity is the per-slot and transport capacity configuration used by
// the aggregator.
type Capacity struct {
	AM      int `json:"am"`
	PM      int `json:"pm"`
	Pickup  int `json:"pickup"`
	Dropoff int `json:"dropoff"`
}

// SlotSummary is the derived occupancy of one half-day slot.
type SlotSummary struct {
	Used        int `json:"used"`
	Capacity    int `json:"capacity"`
	Remaining   int `json:"remaining"`
	Utilization int `json:"utilization"` // percent, rounded
	Pickup      int `json:"pickup"`
	Dropoff     int `json:"dropoff"`
}

// DaySummary aggregates one day's slots and transport load.
type DaySummary struct {
	Date           string      `json:"date"`
	Holiday        bool        `json:"holiday"`
	AM             SlotSummary `json:"am"`
	PM             SlotSummary `json:"pm"`
	UniqueChildren int         `json:"unique_children"`
	TotalPickup    int         `json:"total_pickup"`
	TotalDropoff   int         `json:"total_dropoff"`
}

// RangeSummary sums day summaries across the non-holiday days of a range.
type RangeSummary struct {
	From           string       `json:"from"`
	To             string       `json:"to"`
	BusinessDays   int          `json:"business_days"`
	UsedAM         int          `json:"used_am"`
	UsedPM         int          `json:"used_pm"`
	Utilization    int          `json:"utilization"` // percent over both slots
	UniqueChildren int          `json:"unique_children"`
	Days           []DaySummary `json:"days"`
}

// BulkResult reports the outcome of a month bulk registration.
type BulkResult struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}
