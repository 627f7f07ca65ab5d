package lead

import (
	"time"

	"github.com/lib/pq"
)

// Pipeline statuses, in board order.
const (
	StatusNewInquiry       = "new-inquiry"
	StatusVisitScheduled   = "visit-scheduled"
	StatusConsidering      = "considering"
	StatusWaitingBenefit   = "waiting-benefit"
	StatusContractProgress = "contract-progress"
	StatusContracted       = "contracted"
	StatusLost             = "lost"
)

var StatusOrder = []string{
	StatusNewInquiry,
	StatusVisitScheduled,
	StatusConsidering,
	StatusWaitingBenefit,
	StatusContractProgress,
	StatusContracted,
	StatusLost,
}

type Lead struct {
	ID                  string         `gorm:"primaryKey;size:64" json:"id"`
	FacilityID          string         `gorm:"size:64;index;not null" json:"facility_id"`
	Name                string         `gorm:"size:100;not null" json:"name"`
	ChildName           string         `gorm:"size:100" json:"child_name"`
	Status              string         `gorm:"size:30;default:new-inquiry" json:"status"`
	Phone               string         `gorm:"size:30" json:"phone"`
	Email               string         `gorm:"size:100" json:"email"`
	Address             string         `gorm:"size:255" json:"address"`
	ExpectedStartDate   string         `gorm:"size:10" json:"expected_start_date"`
	PreferredDays       pq.StringArray `gorm:"type:text[]" json:"preferred_days"`
	PickupOption        string         `gorm:"size:30" json:"pickup_option"`
	InquirySource       string         `gorm:"size:50" json:"inquiry_source"`
	InquirySourceDetail string         `gorm:"size:255" json:"inquiry_source_detail"`
	ChildIDs            pq.StringArray `gorm:"type:text[]" json:"child_ids"`
	Memo                string         `json:"memo"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

func (Lead) TableName() string {
	return "leads"
}
