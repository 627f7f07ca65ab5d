package staff

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type StaffController struct {
	StaffService *StaffService
}

func (sc *StaffController) GetStaffList(c *gin.Context) {
	list, err := sc.StaffService.GetStaffList(c.GetString("facilityID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Staff fetched successfully",
		"staff":   list,
	})
}

func (sc *StaffController) GetStaff(c *gin.Context) {
	s, err := sc.StaffService.GetStaff(c.GetString("facilityID"), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Staff fetched successfully",
		"staff":   s,
	})
}

func (sc *StaffController) CreateStaff(c *gin.Context) {
	var req struct {
		Name              string   `json:"name" binding:"required"`
		NameKana          string   `json:"name_kana"`
		Email             string   `json:"email"`
		Phone             string   `json:"phone"`
		Type              string   `json:"type"`
		Role              string   `json:"role"`
		Qualifications    []string `json:"qualifications"`
		YearsOfExperience *int     `json:"years_of_experience"`
		EmergencyContact  string   `json:"emergency_contact"`
		Memo              string   `json:"memo"`
		MonthlySalary     *int     `json:"monthly_salary"`
		HourlyWage        *int     `json:"hourly_wage"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, err := sc.StaffService.CreateStaff(Staff{
		FacilityID:        c.GetString("facilityID"),
		Name:              req.Name,
		NameKana:          req.NameKana,
		Email:             req.Email,
		Phone:             req.Phone,
		Type:              req.Type,
		Role:              req.Role,
		Qualifications:    pq.StringArray(req.Qualifications),
		YearsOfExperience: req.YearsOfExperience,
		EmergencyContact:  req.EmergencyContact,
		Memo:              req.Memo,
		MonthlySalary:     req.MonthlySalary,
		HourlyWage:        req.HourlyWage,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Staff created successfully",
		"staff":   s,
	})
}

func (sc *StaffController) UpdateStaff(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, err := sc.StaffService.UpdateStaff(c.GetString("facilityID"), c.Param("id"), updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Staff updated successfully",
		"staff":   s,
	})
}

func (sc *StaffController) DeleteStaff(c *gin.Context) {
	err := sc.StaffService.DeleteStaff(c.GetString("facilityID"), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff deleted successfully"})
}

func (sc *StaffController) IssueInvite(c *gin.Context) {
	token, err := sc.StaffService.IssueInvite(c.GetString("facilityID"), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotShadow):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Invite issued successfully",
		"token":   token,
	})
}

func (sc *StaffController) ClaimShadow(c *gin.Context) {
	var req struct {
		Token    string `json:"token"`
		Name     string `json:"name"`
		NameKana string `json:"name_kana"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, err := sc.StaffService.ClaimShadow(c.GetString("facilityID"), ClaimInput{
		UserID:   c.GetUint("userID"),
		Token:    req.Token,
		Name:     req.Name,
		NameKana: req.NameKana,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrNoShadowMatch):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, ErrNotShadow), errors.Is(err, ErrUserHasProfile):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Staff record claimed successfully",
		"staff":   s,
	})
}

func (sc *StaffController) GetEmploymentRecords(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Query("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id query param is required"})
		return
	}

	records, err := sc.StaffService.GetEmploymentRecords(c.GetString("facilityID"), uint(userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Employment records fetched successfully",
		"records": records,
	})
}

func (sc *StaffController) CreateEmploymentRecord(c *gin.Context) {
	var req struct {
		UserID                    uint     `json:"user_id" binding:"required"`
		StaffID                   string   `json:"staff_id"`
		StartDate                 string   `json:"start_date" binding:"required"`
		EndDate                   *string  `json:"end_date"`
		Role                      string   `json:"role"`
		EmploymentType            string   `json:"employment_type"`
		HealthInsuranceNumber     string   `json:"health_insurance_number"`
		PensionNumber             string   `json:"pension_number"`
		EmploymentInsuranceNumber string   `json:"employment_insurance_number"`
		Dependents                int      `json:"dependents"`
		Qualifications            []string `json:"qualifications"`
		Experience                string   `json:"experience"`
		Education                 string   `json:"education"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := sc.StaffService.CreateEmploymentRecord(EmploymentRecord{
		UserID:                    req.UserID,
		FacilityID:                c.GetString("facilityID"),
		StaffID:                   req.StaffID,
		StartDate:                 req.StartDate,
		EndDate:                   req.EndDate,
		Role:                      req.Role,
		EmploymentType:            req.EmploymentType,
		HealthInsuranceNumber:     req.HealthInsuranceNumber,
		PensionNumber:             req.PensionNumber,
		EmploymentInsuranceNumber: req.EmploymentInsuranceNumber,
		Dependents:                req.Dependents,
		Qualifications:            pq.StringArray(req.Qualifications),
		Experience:                req.Experience,
		Education:                 req.Education,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Employment record created successfully",
		"record":  record,
	})
}

func (sc *StaffController) UpdateEmploymentRecord(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record id"})
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := sc.StaffService.UpdateEmploymentRecord(c.GetString("facilityID"), uint(id), updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employment record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Employment record updated successfully",
		"record":  record,
	})
}

func (sc *StaffController) DeleteEmploymentRecord(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record id"})
		return
	}

	if err := sc.StaffService.DeleteEmploymentRecord(c.GetString("facilityID"), uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employment record not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employment record deleted successfully"})
}

func (sc *StaffController) UploadPhoto(c *gin.Context) {
	var req struct {
		Data        string `json:"data" binding:"required"`
		ContentType string `json:"content_type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	url, err := sc.StaffService.UploadPhoto(c.GetString("facilityID"), c.Param("id"), req.Data, req.ContentType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Photo uploaded successfully",
		"url":     url,
	})
}

func (sc *StaffController) UploadCertificate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record id"})
		return
	}

	var req struct {
		Filename    string `json:"filename" binding:"required"`
		Data        string `json:"data" binding:"required"`
		ContentType string `json:"content_type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	url, err := sc.StaffService.UploadCertificate(
		c.GetString("facilityID"), uint(id), req.Filename, req.Data, req.ContentType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employment record not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Certificate uploaded successfully",
		"url":     url,
	})
}

func (sc *StaffController) ListCertificates(c *gin.Context) {
	urls, err := sc.StaffService.ListCertificates(c.GetString("facilityID"), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"certificates": urls})
}
