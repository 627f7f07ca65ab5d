package child

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"carebase-api/internal/util"
)

type ChildController struct {
	ChildService *ChildService
}

func (cc *ChildController) GetChildren(c *gin.Context) {
	children, err := cc.ChildService.GetChildren(c.GetString("facilityID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Children fetched successfully",
		"children": children,
	})
}

func (cc *ChildController) GetChild(c *gin.Context) {
	ch, err := cc.ChildService.GetChild(c.GetString("facilityID"), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Child not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"child": ch})
}

func (cc *ChildController) CreateChild(c *gin.Context) {
	var ch Child
	if err := c.ShouldBindJSON(&ch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if ch.ID == "" {
		ch.ID = util.NewID()
	}
	ch.FacilityID = c.GetString("facilityID")

	created, err := cc.ChildService.CreateChild(ch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Child created successfully",
		"child":   created,
	})
}

func (cc *ChildController) UpdateChild(c *gin.Context) {
	var ch Child
	if err := c.ShouldBindJSON(&ch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ch.ID = c.Param("id")
	ch.FacilityID = c.GetString("facilityID")

	updated, err := cc.ChildService.UpdateChild(ch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Child updated successfully",
		"child":   updated,
	})
}

func (cc *ChildController) DeleteChild(c *gin.Context) {
	if err := cc.ChildService.DeleteChild(c.GetString("facilityID"), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Child not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Child deleted successfully"})
}

// PickerCandidates answers the slot-assignment picker: ?date=YYYY-MM-DD&slot=AM
// plus an optional comma-separated exclude list of already-registered ids.
func (cc *ChildController) PickerCandidates(c *gin.Context) {
	dateStr := c.Query("date")
	slot := c.Query("slot")
	if slot != "AM" && slot != "PM" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slot must be AM or PM"})
		return
	}

	weekday, err := util.Weekday(dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var excludeIDs []string
	if raw := strings.TrimSpace(c.Query("exclude")); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				excludeIDs = append(excludeIDs, id)
			}
		}
	}

	candidates, err := cc.ChildService.PickerCandidates(c.GetString("facilityID"), weekday, slot, excludeIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Candidates fetched successfully",
		"children": candidates,
	})
}
