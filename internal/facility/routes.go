package facility

import (
	"github.com/gin-gonic/gin"

	"carebase-api/internal/middlewares"
)

func RegisterRoutes(r *gin.Engine, facilityService *FacilityService) {
	facilityController := &FacilityController{FacilityService: facilityService}

	group := r.Group("/api/facilities")
	group.Use(middlewares.AuthMiddleware())
	{
		group.POST("", facilityController.CreateFacility)
		group.GET("/:id", facilityController.GetFacility)
		group.GET("/:id/settings", facilityController.GetSettings)
		group.PUT("/:id/settings", facilityController.UpdateSettings)
	}
}
