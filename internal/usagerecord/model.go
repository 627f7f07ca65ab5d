package usagerecord

import "time"

// UsageRecord is the attendance/billing confirmation for one schedule row.
// Once it exists, the linked schedule is frozen against deletion.
type UsageRecord struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	FacilityID string `gorm:"size:64;index;not null" json:"facility_id"`
	ScheduleID string `gorm:"size:64;uniqueIndex;not null" json:"schedule_id"`
	ChildID    string `gorm:"size:64;index;not null" json:"child_id"`
	ChildName  string `gorm:"size:100" json:"child_name"`
	Date       string `gorm:"size:10;index;not null" json:"date"`
	Slot       string `gorm:"size:4;not null" json:"slot"`

	ServiceStart string `gorm:"size:5" json:"service_start"`
	ServiceEnd   string `gorm:"size:5" json:"service_end"`
	HasPickup    bool   `gorm:"default:false" json:"has_pickup"`
	HasDropoff   bool   `gorm:"default:false" json:"has_dropoff"`
	Notes        string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UsageRecord) TableName() string {
	return "usage_records"
}
