package usagerecord

import (
	"errors"

	"gorm.io/gorm"

	"carebase-api/internal/util"
)

type UsageRecordService struct {
	DB *gorm.DB
}

func (us *UsageRecordService) CreateRecord(r UsageRecord) (*UsageRecord, error) {
	if r.ScheduleID == "" {
		return nil, errors.New("schedule id is required")
	}

	var existing UsageRecord
	err := us.DB.Where("schedule_id = ?", r.ScheduleID).First(&existing).Error
	if err == nil {
		return nil, errors.New("A usage record already exists for this schedule.")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := us.DB.Create(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// ExistsForSchedule reports whether a usage record references the schedule.
// Schedules with a record are frozen against deletion.
func (us *UsageRecordService) ExistsForSchedule(scheduleID string) (bool, error) {
	var count int64
	if err := us.DB.Model(&UsageRecord{}).Where("schedule_id = ?", scheduleID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ScheduleIDsWithRecords returns, out of the given ids, those that have a
// linked usage record. Used by the bulk reset paths.
func (us *UsageRecordService) ScheduleIDsWithRecords(scheduleIDs []string) (map[string]bool, error) {
	linked := map[string]bool{}
	if len(scheduleIDs) == 0 {
		return linked, nil
	}

	var rows []UsageRecord
	if err := us.DB.Select("schedule_id").Where("schedule_id IN ?", scheduleIDs).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		linked[r.ScheduleID] = true
	}
	return linked, nil
}

func (us *UsageRecordService) GetByMonth(facilityID string, year, month int) ([]UsageRecord, error) {
	records := []UsageRecord{}
	prefix := util.MonthPrefix(year, month)
	if err := us.DB.Where("facility_id = ? AND date LIKE ?", facilityID, prefix+"%").
		Order("date asc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (us *UsageRecordService) GetByChild(facilityID, childID string) ([]UsageRecord, error) {
	records := []UsageRecord{}
	if err := us.DB.Where("facility_id = ? AND child_id = ?", facilityID, childID).
		Order("date asc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (us *UsageRecordService) DeleteRecord(facilityID string, id uint) error {
	result := us.DB.Where("facility_id = ? AND id = ?", facilityID, id).Delete(&UsageRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
