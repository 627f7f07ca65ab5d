package staff

import (
	"time"

	"github.com/lib/pq"
)

type StaffStatus = string

const (
	// StatusShadow marks a facility-entered row with no linked user account.
	StatusShadow StaffStatus = "shadow"
	// StatusClaimed marks a row linked to a real user account.
	StatusClaimed StaffStatus = "claimed"
)

type Staff struct {
	ID         string `gorm:"primaryKey;size:64" json:"id"`
	FacilityID string `gorm:"size:64;index;not null" json:"facility_id"`
	UserID     *uint  `gorm:"index" json:"user_id,omitempty"`
	Status     string `gorm:"size:10;default:shadow;not null" json:"status"`

	Name     string `gorm:"size:100;not null" json:"name"`
	NameKana string `gorm:"size:100" json:"name_kana"`
	Email    string `gorm:"size:100" json:"email"`
	Phone    string `gorm:"size:30" json:"phone"`

	Type              string         `gorm:"size:30;default:other" json:"type"` // 常勤 / 非常勤 / other
	Role              string         `gorm:"size:50;default:staff" json:"role"`
	Qualifications    pq.StringArray `gorm:"type:text[]" json:"qualifications"`
	YearsOfExperience *int           `json:"years_of_experience,omitempty"`
	EmergencyContact  string         `gorm:"size:100" json:"emergency_contact"`
	Memo              string         `gorm:"type:text" json:"memo"`
	MonthlySalary     *int           `json:"monthly_salary,omitempty"`
	HourlyWage        *int           `json:"hourly_wage,omitempty"`

	PhotoURL    string  `gorm:"size:512" json:"photo_url,omitempty"`
	InviteToken *string `gorm:"size:64;index" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Staff) TableName() string {
	return "staff"
}

type EmploymentRecord struct {
	ID         uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint    `gorm:"index;not null" json:"user_id"`
	FacilityID string  `gorm:"size:64;index;not null" json:"facility_id"`
	StaffID    string  `gorm:"size:64;index" json:"staff_id,omitempty"`
	StartDate  string  `gorm:"size:10;not null" json:"start_date"`
	EndDate    *string `gorm:"size:10" json:"end_date,omitempty"`

	Role           string `gorm:"size:50" json:"role"`
	EmploymentType string `gorm:"size:30" json:"employment_type"`

	HealthInsuranceNumber     string `gorm:"size:50" json:"health_insurance_number,omitempty"`
	PensionNumber             string `gorm:"size:50" json:"pension_number,omitempty"`
	EmploymentInsuranceNumber string `gorm:"size:50" json:"employment_insurance_number,omitempty"`
	Dependents                int    `gorm:"default:0" json:"dependents"`

	Qualifications pq.StringArray `gorm:"type:text[]" json:"qualifications"`
	Experience     string         `gorm:"type:text" json:"experience,omitempty"`
	Education      string         `gorm:"type:text" json:"education,omitempty"`
	CertificateURL string         `gorm:"size:512" json:"certificate_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (EmploymentRecord) TableName() string {
	return "employment_records"
}
