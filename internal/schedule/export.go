package schedule

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"

	"carebase-api/internal/util"
)

// ExportMonthXLSX renders the month's schedules and the per-day occupancy
// summary as a two-sheet workbook.
func (ss *ScheduleService) ExportMonthXLSX(facilityID string, year, month int) ([]byte, string, error) {
	items, err := ss.GetByMonth(facilityID, year, month)
	if err != nil {
		return nil, "", err
	}
	settings, err := ss.Settings.GetSettings(facilityID)
	if err != nil {
		return nil, "", err
	}

	from := util.DateString(year, month, 1)
	to := util.DateString(year, month, util.DaysInMonth(year, month))
	summary, err := SummarizeRange(items, from, to, capacityOf(settings), settings.HolidaySettings())
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E2E8F0"}},
	})
	holidayStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#FDE8E8"}},
	})

	scheduleSheet := f.GetSheetName(0)
	_ = f.SetSheetName(scheduleSheet, "Schedules")
	scheduleSheet = "Schedules"

	scheduleHeader := []string{"date", "slot", "child_name", "child_id", "pickup", "dropoff"}
	for i, h := range scheduleHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(scheduleSheet, cell, h)
		_ = f.SetCellStyle(scheduleSheet, cell, cell, headerStyle)
	}
	for i, it := range items {
		row := i + 2
		values := []interface{}{it.Date, it.Slot, it.ChildName, it.ChildID, boolMark(it.HasPickup), boolMark(it.HasDropoff)}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(scheduleSheet, cell, v)
		}
	}

	summarySheet := "Summary"
	_, _ = f.NewSheet(summarySheet)

	summaryHeader := []string{"date", "holiday", "am_used", "am_capacity", "am_utilization",
		"pm_used", "pm_capacity", "pm_utilization", "pickup", "dropoff"}
	for i, h := range summaryHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(summarySheet, cell, h)
		_ = f.SetCellStyle(summarySheet, cell, cell, headerStyle)
	}
	for i, day := range summary.Days {
		row := i + 2
		values := []interface{}{day.Date, boolMark(day.Holiday),
			day.AM.Used, day.AM.Capacity, day.AM.Utilization,
			day.PM.Used, day.PM.Capacity, day.PM.Utilization,
			day.TotalPickup, day.TotalDropoff}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(summarySheet, cell, v)
		}
		if day.Holiday {
			start, _ := excelize.CoordinatesToCellName(1, row)
			end, _ := excelize.CoordinatesToCellName(len(values), row)
			_ = f.SetCellStyle(summarySheet, start, end, holidayStyle)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("schedules_%04d-%02d.xlsx", year, month)
	return buf.Bytes(), filename, nil
}

// ExportMonthCSV is the plain fallback for clients that cannot take a
// workbook: the schedule rows only, no summary sheet.
func (ss *ScheduleService) ExportMonthCSV(facilityID string, year, month int) ([]byte, string, error) {
	items, err := ss.GetByMonth(facilityID, year, month)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"date", "slot", "child_name", "child_id", "pickup", "dropoff"})
	for _, it := range items {
		_ = w.Write([]string{it.Date, it.Slot, it.ChildName, it.ChildID, boolMark(it.HasPickup), boolMark(it.HasDropoff)})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("schedules_%04d-%02d.csv", year, month)
	return buf.Bytes(), filename, nil
}

func boolMark(b bool) string {
	if b {
		return "Yes"
	}
	return ""
}
