package schedule

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"carebase-api/internal/child"
	"carebase-api/internal/holiday"
	"carebase-api/internal/util"
)

var (
	ErrDuplicateSchedule = errors.New("This child is already scheduled for that date and slot.")
	ErrScheduleLocked    = errors.New("This schedule has a usage record and cannot be deleted.")
)

type ScheduleService struct {
	DB           *gorm.DB
	UsageRecords UsageRecordStore
	Settings     SettingsStore
	Children     ChildStore
}

func (ss *ScheduleService) GetSchedules(facilityID string) ([]ScheduleItem, error) {
	items := []ScheduleItem{}
	if err := ss.DB.Where("facility_id = ?", facilityID).
		Order("date asc").Order("slot asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (ss *ScheduleService) GetByDate(facilityID, date string) ([]ScheduleItem, error) {
	items := []ScheduleItem{}
	if err := ss.DB.Where("facility_id = ? AND date = ?", facilityID, date).
		Order("slot asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (ss *ScheduleService) GetByMonth(facilityID string, year, month int) ([]ScheduleItem, error) {
	items := []ScheduleItem{}
	prefix := util.MonthPrefix(year, month)
	if err := ss.DB.Where("facility_id = ? AND date LIKE ?", facilityID, prefix+"%").
		Order("date asc").Order("slot asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// AddSchedule inserts a schedule row after the duplicate pre-check on
// (child, date, slot). The composite unique index is the backstop for
// two writers racing past the check.
func (ss *ScheduleService) AddSchedule(item ScheduleItem) (*ScheduleItem, error) {
	if item.FacilityID == "" || item.ChildID == "" || item.Date == "" {
		return nil, errors.New("facility, child and date are required")
	}
	if item.Slot != SlotAM && item.Slot != SlotPM {
		return nil, errors.New("slot must be AM or PM")
	}

	var count int64
	if err := ss.DB.Model(&ScheduleItem{}).
		Where("facility_id = ? AND child_id = ? AND date = ? AND slot = ?",
			item.FacilityID, item.ChildID, item.Date, item.Slot).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateSchedule
	}

	if item.ID == "" {
		item.ID = util.NewID()
	}
	if err := ss.DB.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteSchedule removes a row unless a usage record has frozen it.
func (ss *ScheduleService) DeleteSchedule(facilityID, id string) error {
	var item ScheduleItem
	if err := ss.DB.Where("facility_id = ? AND id = ?", facilityID, id).First(&item).Error; err != nil {
		return err
	}

	locked, err := ss.UsageRecords.ExistsForSchedule(id)
	if err != nil {
		return err
	}
	if locked {
		return ErrScheduleLocked
	}

	return ss.DB.Delete(&item).Error
}

// MoveSchedule changes the slot of an existing row in place.
func (ss *ScheduleService) MoveSchedule(facilityID, id string, newSlot TimeSlot) (*ScheduleItem, error) {
	if newSlot != SlotAM && newSlot != SlotPM {
		return nil, errors.New("slot must be AM or PM")
	}

	var item ScheduleItem
	if err := ss.DB.Where("facility_id = ? AND id = ?", facilityID, id).First(&item).Error; err != nil {
		return nil, err
	}
	if item.Slot == newSlot {
		return &item, nil
	}

	var count int64
	if err := ss.DB.Model(&ScheduleItem{}).
		Where("facility_id = ? AND child_id = ? AND date = ? AND slot = ?",
			facilityID, item.ChildID, item.Date, newSlot).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateSchedule
	}

	if err := ss.DB.Model(&item).Update("slot", newSlot).Error; err != nil {
		return nil, err
	}
	item.Slot = newSlot
	return &item, nil
}

// UpdateTransport updates the pickup/dropoff flags in place.
func (ss *ScheduleService) UpdateTransport(facilityID, id string, hasPickup, hasDropoff bool) (*ScheduleItem, error) {
	var item ScheduleItem
	if err := ss.DB.Where("facility_id = ? AND id = ?", facilityID, id).First(&item).Error; err != nil {
		return nil, err
	}

	if err := ss.DB.Model(&item).Updates(map[string]interface{}{
		"has_pickup":  hasPickup,
		"has_dropoff": hasDropoff,
	}).Error; err != nil {
		return nil, err
	}
	item.HasPickup = hasPickup
	item.HasDropoff = hasDropoff
	return &item, nil
}

// BulkRegisterFromPatterns registers every child whose weekly pattern
// matches a bookable day of the month. An "AMPM" pattern registers both
// slots. Rows are inserted sequentially; a failed insert is counted as
// skipped and the loop continues.
func (ss *ScheduleService) BulkRegisterFromPatterns(facilityID string, year, month int) (BulkResult, error) {
	var result BulkResult

	settings, err := ss.Settings.GetSettings(facilityID)
	if err != nil {
		return result, err
	}
	hs := settings.HolidaySettings()

	children, err := ss.Children.GetChildren(facilityID)
	if err != nil {
		return result, err
	}

	existingRows, err := ss.GetByMonth(facilityID, year, month)
	if err != nil {
		return result, err
	}
	existing := make(map[string]bool, len(existingRows))
	for _, it := range existingRows {
		existing[it.Date+"|"+it.ChildID+"|"+it.Slot] = true
	}

	daysInMonth := util.DaysInMonth(year, month)
	for day := 1; day <= daysInMonth; day++ {
		date := util.DateString(year, month, day)
		if holiday.IsHoliday(hs, date) {
			continue
		}
		weekday, err := util.Weekday(date)
		if err != nil {
			continue
		}

		for i := range children {
			ch := &children[i]
			slot := child.PatternSlot(ch, weekday)
			if slot == "" {
				continue
			}

			slots := []TimeSlot{slot}
			if slot == child.SlotAMPM {
				slots = []TimeSlot{SlotAM, SlotPM}
			}

			for _, s := range slots {
				key := date + "|" + ch.ID + "|" + s
				if existing[key] {
					result.Skipped++
					continue
				}

				_, err := ss.AddSchedule(ScheduleItem{
					FacilityID: facilityID,
					Date:       date,
					ChildID:    ch.ID,
					ChildName:  ch.Name,
					Slot:       s,
					HasPickup:  ch.NeedsPickup,
					HasDropoff: ch.NeedsDropoff,
				})
				if err != nil {
					log.Printf("bulk register: %s %s %s: %v", date, ch.ID, s, err)
					result.Skipped++
					continue
				}
				existing[key] = true
				result.Added++
			}
		}
	}

	return result, nil
}

// ResetDay deletes the day's schedules that have no linked usage record
// and returns the count deleted.
func (ss *ScheduleService) ResetDay(facilityID, date string) (int, error) {
	items, err := ss.GetByDate(facilityID, date)
	if err != nil {
		return 0, err
	}
	return ss.deleteUnlocked(items)
}

// ResetMonth deletes the month's schedules that have no linked usage
// record and returns the count deleted.
func (ss *ScheduleService) ResetMonth(facilityID string, year, month int) (int, error) {
	items, err := ss.GetByMonth(facilityID, year, month)
	if err != nil {
		return 0, err
	}
	return ss.deleteUnlocked(items)
}

func (ss *ScheduleService) deleteUnlocked(items []ScheduleItem) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	locked, err := ss.UsageRecords.ScheduleIDsWithRecords(ids)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, it := range items {
		if locked[it.ID] {
			continue
		}
		if err := ss.DB.Delete(&ScheduleItem{}, "id = ?", it.ID).Error; err != nil {
			log.Printf("reset: delete %s: %v", it.ID, err)
			continue
		}
		deleted++
	}
	return deleted, nil
}

// GetDaySummary derives the occupancy summary for one day.
func (ss *ScheduleService) GetDaySummary(facilityID, date string) (*DaySummary, error) {
	settings, err := ss.Settings.GetSettings(facilityID)
	if err != nil {
		return nil, err
	}
	items, err := ss.GetByDate(facilityID, date)
	if err != nil {
		return nil, err
	}

	sum := SummarizeDay(items, date, capacityOf(settings), settings.HolidaySettings())
	return &sum, nil
}

// GetRangeSummary derives the occupancy summary for an inclusive date
// range (a week or a month in the calendar views).
func (ss *ScheduleService) GetRangeSummary(facilityID, from, to string) (*RangeSummary, error) {
	settings, err := ss.Settings.GetSettings(facilityID)
	if err != nil {
		return nil, err
	}

	items := []ScheduleItem{}
	if err := ss.DB.Where("facility_id = ? AND date >= ? AND date <= ?", facilityID, from, to).
		Find(&items).Error; err != nil {
		return nil, err
	}

	sum, err := SummarizeRange(items, from, to, capacityOf(settings), settings.HolidaySettings())
	if err != nil {
		return nil, err
	}
	return &sum, nil
}
