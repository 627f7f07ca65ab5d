package lead

import (
	"github.com/gin-gonic/gin"

	"carebase-api/internal/middlewares"
)

func RegisterRoutes(r *gin.Engine, leadService *LeadService) {
	leadController := &LeadController{LeadService: leadService}

	group := r.Group("/api/leads")
	group.Use(middlewares.AuthMiddleware())
	{
		group.GET("", leadController.GetLeads)
		group.GET("/board", leadController.GetBoard)
		group.POST("", leadController.AddLead)
		group.PUT("/:id", leadController.UpdateLead)
		group.PATCH("/:id/status", leadController.ChangeStatus)
		group.DELETE("/:id", leadController.DeleteLead)
		group.GET("/child/:childId", leadController.GetLeadsByChild)
	}
}
