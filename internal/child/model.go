package child

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type ContractStatus = string

const (
	StatusPreContract ContractStatus = "pre-contract"
	StatusActive      ContractStatus = "active"
	StatusInactive    ContractStatus = "inactive"
	StatusTerminated  ContractStatus = "terminated"
)

type Child struct {
	ID         string `gorm:"primaryKey;size:64" json:"id"`
	FacilityID string `gorm:"size:64;index;not null" json:"facility_id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	NameKana string `gorm:"size:100" json:"name_kana"`
	Age      *int   `json:"age,omitempty"`

	GuardianName         string `gorm:"size:100" json:"guardian_name"`
	GuardianRelationship string `gorm:"size:50" json:"guardian_relationship"`

	BeneficiaryNumber string `gorm:"size:50" json:"beneficiary_number"`
	GrantDays         *int   `json:"grant_days,omitempty"`
	ContractDays      *int   `json:"contract_days,omitempty"`

	Address string `gorm:"size:255" json:"address"`
	Phone   string `gorm:"size:30" json:"phone"`
	Email   string `gorm:"size:100" json:"email"`

	SchoolName string `gorm:"size:100" json:"school_name"`

	// Weekly recurring usage pattern: weekdays plus a per-weekday slot
	// preference stored as {"1":"AM","3":"AMPM",...}.
	PatternDays      pq.Int64Array  `gorm:"type:integer[]" json:"pattern_days"`
	PatternTimeSlots datatypes.JSON `json:"pattern_time_slots"`

	NeedsPickup     bool   `gorm:"default:false" json:"needs_pickup"`
	NeedsDropoff    bool   `gorm:"default:false" json:"needs_dropoff"`
	PickupLocation  string `gorm:"size:255" json:"pickup_location"`
	DropoffLocation string `gorm:"size:255" json:"dropoff_location"`

	ContractStatus    ContractStatus `gorm:"size:20;default:active" json:"contract_status"`
	ContractStartDate string         `gorm:"size:10" json:"contract_start_date"`
	ContractEndDate   string         `gorm:"size:10" json:"contract_end_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Child) TableName() string {
	return "children"
}
