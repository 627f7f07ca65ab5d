package attendance

import "time"

type PunchType = string

const (
	PunchStart      PunchType = "start"
	PunchEnd        PunchType = "end"
	PunchBreakStart PunchType = "break_start"
	PunchBreakEnd   PunchType = "break_end"
)

type WorkStatus = string

const (
	StatusNotStarted WorkStatus = "not_started"
	StatusWorking    WorkStatus = "working"
	StatusOnBreak    WorkStatus = "on_break"
	StatusCompleted  WorkStatus = "completed"
)

// AttendanceRecord is one punch: a user pressing start/end/break at a
// facility. One row per (user, facility, date, type); re-punching the
// same type overwrites the time.
type AttendanceRecord struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint   `gorm:"index:idx_attendance_unique,unique;not null" json:"user_id"`
	FacilityID string `gorm:"size:64;index:idx_attendance_unique,unique;not null" json:"facility_id"`
	Date       string `gorm:"size:10;index:idx_attendance_unique,unique;not null" json:"date"`
	Type       string `gorm:"size:15;index:idx_attendance_unique,unique;not null" json:"type"`

	Time       string    `gorm:"size:5;not null" json:"time"` // HH:MM
	RecordedAt time.Time `json:"recorded_at"`

	IsManualCorrection bool    `gorm:"default:false" json:"is_manual_correction"`
	CorrectionReason   string  `gorm:"size:255" json:"correction_reason,omitempty"`
	CorrectedBy        *uint   `json:"corrected_by,omitempty"`
	LocationLat        *float64 `json:"location_lat,omitempty"`
	LocationLng        *float64 `json:"location_lng,omitempty"`
	Memo               string  `gorm:"size:255" json:"memo,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

// DaySummary collapses a day's punches into the four times plus derived
// status and minutes.
type DaySummary struct {
	Date           string     `json:"date"`
	StartTime      string     `json:"start_time,omitempty"`
	EndTime        string     `json:"end_time,omitempty"`
	BreakStartTime string     `json:"break_start_time,omitempty"`
	BreakEndTime   string     `json:"break_end_time,omitempty"`
	Status         WorkStatus `json:"status"`
	WorkedMinutes  int        `json:"worked_minutes"`
	BreakMinutes   int        `json:"break_minutes"`
}
