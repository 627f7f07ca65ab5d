package attendance

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AttendanceController struct {
	AttendanceService *AttendanceService
}

func (ac *AttendanceController) Punch(c *gin.Context) {
	var req struct {
		Type        string   `json:"type" binding:"required,oneof=start end break_start break_end"`
		LocationLat *float64 `json:"location_lat"`
		LocationLng *float64 `json:"location_lng"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := ac.AttendanceService.Punch(
		c.GetUint("userID"), c.GetString("facilityID"), req.Type, req.LocationLat, req.LocationLng)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Attendance recorded successfully",
		"record":  record,
	})
}

func (ac *AttendanceController) ManualEntry(c *gin.Context) {
	var req struct {
		UserID uint   `json:"user_id" binding:"required"`
		Date   string `json:"date" binding:"required"`
		Type   string `json:"type" binding:"required,oneof=start end break_start break_end"`
		Time   string `json:"time" binding:"required"`
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := ac.AttendanceService.ManualEntry(
		req.UserID, c.GetString("facilityID"), req.Date, req.Type, req.Time, req.Reason, c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Manual entry recorded successfully",
		"record":  record,
	})
}

func (ac *AttendanceController) GetHistory(c *gin.Context) {
	start := c.Query("start_date")
	end := c.Query("end_date")
	if start == "" || end == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date and end_date query params are required"})
		return
	}

	records, err := ac.AttendanceService.GetHistory(
		c.GetUint("userID"), c.GetString("facilityID"), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Attendance records fetched successfully",
		"records": records,
	})
}

func (ac *AttendanceController) GetMonth(c *gin.Context) {
	year, err1 := strconv.Atoi(c.Query("year"))
	month, err2 := strconv.Atoi(c.Query("month"))
	if err1 != nil || err2 != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year and month query params are required"})
		return
	}

	summaries, err := ac.AttendanceService.GetMonthSummaries(
		c.GetUint("userID"), c.GetString("facilityID"), year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Attendance summaries fetched successfully",
		"summaries": summaries,
	})
}
