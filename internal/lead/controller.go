package lead

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type LeadController struct {
	LeadService *LeadService
}

func (lc *LeadController) GetLeads(c *gin.Context) {
	leads, err := lc.LeadService.GetLeads(c.GetString("facilityID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Leads fetched successfully",
		"leads":   leads,
	})
}

func (lc *LeadController) GetBoard(c *gin.Context) {
	board, err := lc.LeadService.GetBoard(c.GetString("facilityID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"board": board})
}

func (lc *LeadController) AddLead(c *gin.Context) {
	var req struct {
		Name                string   `json:"name" binding:"required"`
		ChildName           string   `json:"child_name"`
		Status              string   `json:"status"`
		Phone               string   `json:"phone"`
		Email               string   `json:"email"`
		Address             string   `json:"address"`
		ExpectedStartDate   string   `json:"expected_start_date"`
		PreferredDays       []string `json:"preferred_days"`
		PickupOption        string   `json:"pickup_option"`
		InquirySource       string   `json:"inquiry_source"`
		InquirySourceDetail string   `json:"inquiry_source_detail"`
		ChildIDs            []string `json:"child_ids"`
		Memo                string   `json:"memo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := lc.LeadService.AddLead(Lead{
		FacilityID:          c.GetString("facilityID"),
		Name:                req.Name,
		ChildName:           req.ChildName,
		Status:              req.Status,
		Phone:               req.Phone,
		Email:               req.Email,
		Address:             req.Address,
		ExpectedStartDate:   req.ExpectedStartDate,
		PreferredDays:       pq.StringArray(req.PreferredDays),
		PickupOption:        req.PickupOption,
		InquirySource:       req.InquirySource,
		InquirySourceDetail: req.InquirySourceDetail,
		ChildIDs:            pq.StringArray(req.ChildIDs),
		Memo:                req.Memo,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Lead created successfully",
		"lead":    created,
	})
}

func (lc *LeadController) UpdateLead(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := lc.LeadService.UpdateLead(c.GetString("facilityID"), c.Param("id"), updates)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		case errors.Is(err, ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Lead updated successfully",
		"lead":    updated,
	})
}

func (lc *LeadController) ChangeStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := lc.LeadService.ChangeStatus(c.GetString("facilityID"), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		case errors.Is(err, ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Lead status updated successfully",
		"lead":    updated,
	})
}

func (lc *LeadController) DeleteLead(c *gin.Context) {
	if err := lc.LeadService.DeleteLead(c.GetString("facilityID"), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Lead deleted successfully"})
}

func (lc *LeadController) GetLeadsByChild(c *gin.Context) {
	leads, err := lc.LeadService.GetLeadsByChild(c.GetString("facilityID"), c.Param("childId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"leads": leads})
}
