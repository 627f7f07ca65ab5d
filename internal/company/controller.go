package company

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type CompanyController struct {
	CompanyService *CompanyService
}

func (cc *CompanyController) GetAllCompanies(c *gin.Context) {
	companies, err := cc.CompanyService.GetAllCompanies()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Companies fetched successfully",
		"companies": companies,
	})
}

func (cc *CompanyController) AddCompanies(c *gin.Context) {
	var req struct {
		Companies []string `json:"companies" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := cc.CompanyService.AddCompanies(req.Companies); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Companies added successfully",
	})
}
