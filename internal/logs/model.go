package logs

import "time"

type SystemLog struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Level      string    `gorm:"size:10;not null" json:"level"` // info | warn | error
	Service    string    `gorm:"size:50;not null" json:"service"`
	Action     string    `gorm:"size:100" json:"action"`
	Message    string    `gorm:"type:text" json:"message"`
	UserID     *uint     `gorm:"index" json:"user_id,omitempty"`
	FacilityID string    `gorm:"size:64;index" json:"facility_id,omitempty"`
	Metadata   *string   `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (SystemLog) TableName() string {
	return "logs"
}

type LogFilterInput struct {
	FacilityID string
	UserID     *uint
	Level      *string
	Service    *string
	Action     *string
	Search     *string
	StartDate  *string
	EndDate    *string
	Page       int
	PageSize   int
}
