package schedule

import (
	"carebase-api/internal/child"
	"carebase-api/internal/facility"
)

// UsageRecordStore answers whether schedules are frozen by usage records.
type UsageRecordStore interface {
	ExistsForSchedule(scheduleID string) (bool, error)
	ScheduleIDsWithRecords(scheduleIDs []string) (map[string]bool, error)
}

// SettingsStore supplies the facility configuration the resolver and
// aggregator run against.
type SettingsStore interface {
	GetSettings(facilityID string) (*facility.Settings, error)
}

// ChildStore supplies the children whose patterns drive bulk registration.
type ChildStore interface {
	GetChildren(facilityID string) ([]child.Child, error)
}
