package usagerecord

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type UsageRecordController struct {
	UsageRecordService *UsageRecordService
}

func (uc *UsageRecordController) CreateRecord(c *gin.Context) {
	var req struct {
		ScheduleID   string `json:"schedule_id" binding:"required"`
		ChildID      string `json:"child_id" binding:"required"`
		ChildName    string `json:"child_name"`
		Date         string `json:"date" binding:"required"`
		Slot         string `json:"slot" binding:"required,oneof=AM PM"`
		ServiceStart string `json:"service_start"`
		ServiceEnd   string `json:"service_end"`
		HasPickup    bool   `json:"has_pickup"`
		HasDropoff   bool   `json:"has_dropoff"`
		Notes        string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := uc.UsageRecordService.CreateRecord(UsageRecord{
		FacilityID:   c.GetString("facilityID"),
		ScheduleID:   req.ScheduleID,
		ChildID:      req.ChildID,
		ChildName:    req.ChildName,
		Date:         req.Date,
		Slot:         req.Slot,
		ServiceStart: req.ServiceStart,
		ServiceEnd:   req.ServiceEnd,
		HasPickup:    req.HasPickup,
		HasDropoff:   req.HasDropoff,
		Notes:        req.Notes,
	})
	if err != nil {
		if err.Error() == "A usage record already exists for this schedule." {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Usage record created successfully",
		"record":  record,
	})
}

func (uc *UsageRecordController) GetByMonth(c *gin.Context) {
	year, err1 := strconv.Atoi(c.Query("year"))
	month, err2 := strconv.Atoi(c.Query("month"))
	if err1 != nil || err2 != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year and month query params are required"})
		return
	}

	records, err := uc.UsageRecordService.GetByMonth(c.GetString("facilityID"), year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Usage records fetched successfully",
		"records": records,
	})
}

func (uc *UsageRecordController) GetByChild(c *gin.Context) {
	records, err := uc.UsageRecordService.GetByChild(c.GetString("facilityID"), c.Param("childId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Usage records fetched successfully",
		"records": records,
	})
}

func (uc *UsageRecordController) DeleteRecord(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record id"})
		return
	}
	if err := uc.UsageRecordService.DeleteRecord(c.GetString("facilityID"), uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usage record not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Usage record deleted successfully"})
}
