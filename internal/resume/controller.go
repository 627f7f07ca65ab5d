package resume

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ResumeController struct {
	ResumeService *ResumeService
}

func (rc *ResumeController) GetResume(c *gin.Context) {
	doc, err := rc.ResumeService.BuildResume(c.GetString("facilityID"), c.Param("staffId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Resume assembled successfully",
		"resume":  doc,
	})
}

func (rc *ResumeController) DraftSelfPR(c *gin.Context) {
	text, err := rc.ResumeService.DraftSelfPR(c.Request.Context(), c.GetString("facilityID"), c.Param("staffId"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Self-PR drafted successfully",
		"text":    text,
	})
}
