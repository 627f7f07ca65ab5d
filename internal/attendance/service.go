package attendance

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"carebase-api/internal/util"
)

type AttendanceService struct {
	DB *gorm.DB
}

func validPunchType(t string) bool {
	switch t {
	case PunchStart, PunchEnd, PunchBreakStart, PunchBreakEnd:
		return true
	}
	return false
}

// Punch records a punch for today, overwriting an earlier punch of the
// same type on the same day.
func (as *AttendanceService) Punch(userID uint, facilityID string, punchType PunchType, lat, lng *float64) (*AttendanceRecord, error) {
	if !validPunchType(punchType) {
		return nil, errors.New("unknown punch type")
	}

	now := time.Now()
	record := AttendanceRecord{
		UserID:      userID,
		FacilityID:  facilityID,
		Date:        util.DateString(now.Year(), int(now.Month()), now.Day()),
		Type:        punchType,
		Time:        now.Format("15:04"),
		RecordedAt:  now,
		LocationLat: lat,
		LocationLng: lng,
	}

	err := as.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "facility_id"}, {Name: "date"}, {Name: "type"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"time", "recorded_at", "location_lat", "location_lng", "updated_at",
		}),
	}).Create(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ManualEntry writes or corrects a punch for an arbitrary date. A reason
// is mandatory; the row keeps who corrected it.
func (as *AttendanceService) ManualEntry(userID uint, facilityID, date string, punchType PunchType, timeStr, reason string, correctedBy uint) (*AttendanceRecord, error) {
	if !validPunchType(punchType) {
		return nil, errors.New("unknown punch type")
	}
	if reason == "" {
		return nil, errors.New("a correction reason is required")
	}
	if _, err := util.ParseDate(date); err != nil {
		return nil, err
	}
	if _, err := time.Parse("15:04", timeStr); err != nil {
		return nil, errors.New("time must be HH:MM")
	}

	record := AttendanceRecord{
		UserID:             userID,
		FacilityID:         facilityID,
		Date:               date,
		Type:               punchType,
		Time:               timeStr,
		RecordedAt:         time.Now(),
		IsManualCorrection: true,
		CorrectionReason:   reason,
		CorrectedBy:        &correctedBy,
	}

	err := as.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "facility_id"}, {Name: "date"}, {Name: "type"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"time", "recorded_at", "is_manual_correction", "correction_reason", "corrected_by", "updated_at",
		}),
	}).Create(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetHistory lists a user's punches at one facility over an inclusive
// date range, newest day first.
func (as *AttendanceService) GetHistory(userID uint, facilityID, startDate, endDate string) ([]AttendanceRecord, error) {
	records := []AttendanceRecord{}
	err := as.DB.
		Where("user_id = ? AND facility_id = ? AND date >= ? AND date <= ?",
			userID, facilityID, startDate, endDate).
		Order("date desc").Order("time asc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// GetMonthSummaries collapses a month of punches into per-day summaries
// with worked and break minutes.
func (as *AttendanceService) GetMonthSummaries(userID uint, facilityID string, year, month int) ([]DaySummary, error) {
	records := []AttendanceRecord{}
	prefix := util.MonthPrefix(year, month)
	err := as.DB.
		Where("user_id = ? AND facility_id = ? AND date LIKE ?", userID, facilityID, prefix+"%").
		Order("date asc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	byDate := map[string][]AttendanceRecord{}
	dates := []string{}
	for _, r := range records {
		if _, seen := byDate[r.Date]; !seen {
			dates = append(dates, r.Date)
		}
		byDate[r.Date] = append(byDate[r.Date], r)
	}

	summaries := make([]DaySummary, 0, len(dates))
	for _, date := range dates {
		summaries = append(summaries, SummarizeDay(date, byDate[date]))
	}
	return summaries, nil
}

// SummarizeDay derives the day summary from that day's punches.
func SummarizeDay(date string, records []AttendanceRecord) DaySummary {
	sum := DaySummary{Date: date, Status: StatusNotStarted}

	for _, r := range records {
		switch r.Type {
		case PunchStart:
			sum.StartTime = r.Time
		case PunchEnd:
			sum.EndTime = r.Time
		case PunchBreakStart:
			sum.BreakStartTime = r.Time
		case PunchBreakEnd:
			sum.BreakEndTime = r.Time
		}
	}

	switch {
	case sum.EndTime != "":
		sum.Status = StatusCompleted
	case sum.BreakStartTime != "" && sum.BreakEndTime == "":
		sum.Status = StatusOnBreak
	case sum.StartTime != "":
		sum.Status = StatusWorking
	}

	sum.BreakMinutes = minutesBetween(sum.BreakStartTime, sum.BreakEndTime)
	worked := minutesBetween(sum.StartTime, sum.EndTime)
	if worked > 0 {
		worked -= sum.BreakMinutes
		if worked < 0 {
			worked = 0
		}
	}
	sum.WorkedMinutes = worked

	return sum
}

func minutesBetween(start, end string) int {
	if start == "" || end == "" {
		return 0
	}
	s, err1 := time.Parse("15:04", start)
	e, err2 := time.Parse("15:04", end)
	if err1 != nil || err2 != nil {
		return 0
	}
	mins := int(e.Sub(s).Minutes())
	if mins < 0 {
		return 0
	}
	return mins
}
