package facility

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type FacilityController struct {
	FacilityService *FacilityService
}

func (fc *FacilityController) GetFacility(c *gin.Context) {
	f, err := fc.FacilityService.GetFacility(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Facility not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"facility": f})
}

func (fc *FacilityController) CreateFacility(c *gin.Context) {
	var req struct {
		ID   string `json:"id" binding:"required"`
		Name string `json:"name" binding:"required"`
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	f, err := fc.FacilityService.CreateFacility(Facility{ID: req.ID, Name: req.Name, Code: req.Code})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Facility created successfully",
		"facility": f,
	})
}

func (fc *FacilityController) GetSettings(c *gin.Context) {
	s, err := fc.FacilityService.GetSettings(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": s})
}

func (fc *FacilityController) UpdateSettings(c *gin.Context) {
	var req struct {
		RegularHolidays []int64         `json:"regular_holidays"`
		HolidayPeriods  datatypes.JSON  `json:"holiday_periods"`
		CustomHolidays  []string        `json:"custom_holidays"`
		IncludeHolidays bool            `json:"include_holidays"`
		BusinessHours   datatypes.JSON  `json:"business_hours"`
		CapacityAM      *int            `json:"capacity_am"`
		CapacityPM      *int            `json:"capacity_pm"`
		PickupCapacity  *int            `json:"pickup_capacity"`
		DropoffCapacity *int            `json:"dropoff_capacity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s := DefaultSettings(c.Param("id"))
	if req.RegularHolidays != nil {
		s.RegularHolidays = pq.Int64Array(req.RegularHolidays)
	}
	if req.HolidayPeriods != nil {
		s.HolidayPeriods = req.HolidayPeriods
	}
	if req.CustomHolidays != nil {
		s.CustomHolidays = pq.StringArray(req.CustomHolidays)
	}
	s.IncludeHolidays = req.IncludeHolidays
	if req.BusinessHours != nil {
		s.BusinessHours = req.BusinessHours
	}
	if req.CapacityAM != nil {
		s.CapacityAM = *req.CapacityAM
	}
	if req.CapacityPM != nil {
		s.CapacityPM = *req.CapacityPM
	}
	if req.PickupCapacity != nil {
		s.PickupCapacity = *req.PickupCapacity
	}
	if req.DropoffCapacity != nil {
		s.DropoffCapacity = *req.DropoffCapacity
	}

	saved, err := fc.FacilityService.UpsertSettings(s)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Settings updated successfully",
		"settings": saved,
	})
}
