package facility

import (
	"encoding/json"
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"

	"carebase-api/internal/holiday"
)

type Facility struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Code      string    `gorm:"size:32;uniqueIndex;not null" json:"code"`
	CompanyID *uint     `gorm:"index" json:"company_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HourRange is a "HH:MM"-"HH:MM" business-hour window.
type HourRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// BusinessHours holds the per-slot operating windows.
type BusinessHours struct {
	AM HourRange `json:"AM"`
	PM HourRange `json:"PM"`
}

type Settings struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	FacilityID string `gorm:"size:64;uniqueIndex;not null;column:facility_id" json:"facility_id"`

	RegularHolidays  pq.Int64Array  `gorm:"type:integer[]" json:"regular_holidays"`
	HolidayPeriods   datatypes.JSON `json:"holiday_periods"`
	CustomHolidays   pq.StringArray `gorm:"type:text[]" json:"custom_holidays"`
	IncludeHolidays  bool           `gorm:"default:false" json:"include_holidays"`
	BusinessHours    datatypes.JSON `json:"business_hours"`
	CapacityAM       int            `gorm:"default:10" json:"capacity_am"`
	CapacityPM       int            `gorm:"default:10" json:"capacity_pm"`
	PickupCapacity   int            `gorm:"default:4" json:"pickup_capacity"`
	DropoffCapacity  int            `gorm:"default:4" json:"dropoff_capacity"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Facility) TableName() string {
	return "facilities"
}

func (Settings) TableName() string {
	return "facility_settings"
}

// HolidaySettings converts the stored columns into the resolver's input.
func (s *Settings) HolidaySettings() holiday.Settings {
	var periods []holiday.Period
	if len(s.HolidayPeriods) > 0 {
		// malformed period JSON degrades to "no periods", never an error
		_ = json.Unmarshal(s.HolidayPeriods, &periods)
	}
	return holiday.Settings{
		RegularHolidays:         []int64(s.RegularHolidays),
		HolidayPeriods:          periods,
		CustomHolidays:          []string(s.CustomHolidays),
		IncludeNationalHolidays: s.IncludeHolidays,
	}
}

// DefaultSettings mirrors the defaults applied when a facility has no
// stored settings row: closed on Sundays, capacity 10/10, transport 4/4.
func DefaultSettings(facilityID string) Settings {
	hours, _ := json.Marshal(BusinessHours{
		AM: HourRange{Start: "09:00", End: "12:00"},
		PM: HourRange{Start: "13:00", End: "18:00"},
	})
	return Settings{
		FacilityID:      facilityID,
		RegularHolidays: pq.Int64Array{0},
		CustomHolidays:  pq.StringArray{},
		BusinessHours:   hours,
		CapacityAM:      10,
		CapacityPM:      10,
		PickupCapacity:  4,
		DropoffCapacity: 4,
	}
}
