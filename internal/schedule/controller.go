package schedule

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ScheduleController struct {
	ScheduleService *ScheduleService
}

func yearMonthParams(c *gin.Context) (int, int, bool) {
	year, err1 := strconv.Atoi(c.Query("year"))
	month, err2 := strconv.Atoi(c.Query("month"))
	if err1 != nil || err2 != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year and month query params are required"})
		return 0, 0, false
	}
	return year, month, true
}

func (sc *ScheduleController) GetByMonth(c *gin.Context) {
	year, month, ok := yearMonthParams(c)
	if !ok {
		return
	}

	items, err := sc.ScheduleService.GetByMonth(c.GetString("facilityID"), year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Schedules fetched successfully",
		"schedules": items,
	})
}

func (sc *ScheduleController) GetByDate(c *gin.Context) {
	date := c.Param("date")
	items, err := sc.ScheduleService.GetByDate(c.GetString("facilityID"), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Schedules fetched successfully",
		"schedules": items,
	})
}

func (sc *ScheduleController) AddSchedule(c *gin.Context) {
	var req struct {
		Date       string `json:"date" binding:"required"`
		ChildID    string `json:"child_id" binding:"required"`
		ChildName  string `json:"child_name"`
		Slot       string `json:"slot" binding:"required,oneof=AM PM"`
		HasPickup  bool   `json:"has_pickup"`
		HasDropoff bool   `json:"has_dropoff"`
		StaffID    string `json:"staff_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := sc.ScheduleService.AddSchedule(ScheduleItem{
		FacilityID: c.GetString("facilityID"),
		Date:       req.Date,
		ChildID:    req.ChildID,
		ChildName:  req.ChildName,
		Slot:       req.Slot,
		HasPickup:  req.HasPickup,
		HasDropoff: req.HasDropoff,
		StaffID:    req.StaffID,
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateSchedule) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Schedule added successfully",
		"schedule": item,
	})
}

func (sc *ScheduleController) DeleteSchedule(c *gin.Context) {
	err := sc.ScheduleService.DeleteSchedule(c.GetString("facilityID"), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrScheduleLocked):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted successfully"})
}

func (sc *ScheduleController) MoveSchedule(c *gin.Context) {
	var req struct {
		Slot string `json:"slot" binding:"required,oneof=AM PM"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := sc.ScheduleService.MoveSchedule(c.GetString("facilityID"), c.Param("id"), req.Slot)
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateSchedule):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Schedule moved successfully",
		"schedule": item,
	})
}

func (sc *ScheduleController) UpdateTransport(c *gin.Context) {
	var req struct {
		HasPickup  *bool `json:"has_pickup" binding:"required"`
		HasDropoff *bool `json:"has_dropoff" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := sc.ScheduleService.UpdateTransport(
		c.GetString("facilityID"), c.Param("id"), *req.HasPickup, *req.HasDropoff)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Transport updated successfully",
		"schedule": item,
	})
}

func (sc *ScheduleController) BulkRegister(c *gin.Context) {
	var req struct {
		Year  int `json:"year" binding:"required"`
		Month int `json:"month" binding:"required,min=1,max=12"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := sc.ScheduleService.BulkRegisterFromPatterns(c.GetString("facilityID"), req.Year, req.Month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Bulk registration complete: %d added, %d skipped", result.Added, result.Skipped),
		"added":   result.Added,
		"skipped": result.Skipped,
	})
}

func (sc *ScheduleController) ResetDay(c *gin.Context) {
	deleted, err := sc.ScheduleService.ResetDay(c.GetString("facilityID"), c.Param("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Day reset successfully",
		"deleted": deleted,
	})
}

func (sc *ScheduleController) ResetMonth(c *gin.Context) {
	var req struct {
		Year  int `json:"year" binding:"required"`
		Month int `json:"month" binding:"required,min=1,max=12"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	deleted, err := sc.ScheduleService.ResetMonth(c.GetString("facilityID"), req.Year, req.Month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Month reset successfully",
		"deleted": deleted,
	})
}

func (sc *ScheduleController) GetDaySummary(c *gin.Context) {
	sum, err := sc.ScheduleService.GetDaySummary(c.GetString("facilityID"), c.Param("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Summary fetched successfully",
		"summary": sum,
	})
}

func (sc *ScheduleController) GetRangeSummary(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query params are required"})
		return
	}

	sum, err := sc.ScheduleService.GetRangeSummary(c.GetString("facilityID"), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Summary fetched successfully",
		"summary": sum,
	})
}

func (sc *ScheduleController) GetForecast(c *gin.Context) {
	year, month, ok := yearMonthParams(c)
	if !ok {
		return
	}

	forecast, err := sc.ScheduleService.GetMonthForecast(c.GetString("facilityID"), year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Forecast fetched successfully",
		"forecast": forecast,
	})
}

func (sc *ScheduleController) ExportMonth(c *gin.Context) {
	year, month, ok := yearMonthParams(c)
	if !ok {
		return
	}

	if c.Query("format") == "csv" {
		buf, filename, err := sc.ScheduleService.ExportMonthCSV(c.GetString("facilityID"), year, month)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, "text/csv", buf)
		return
	}

	buf, filename, err := sc.ScheduleService.ExportMonthXLSX(c.GetString("facilityID"), year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf)
}
