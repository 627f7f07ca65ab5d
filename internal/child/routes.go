package child

import (
	"github.com/gin-gonic/gin"

	"carebase-api/internal/middlewares"
)

func RegisterRoutes(r *gin.Engine, childService *ChildService) {
	childController := &ChildController{ChildService: childService}

	group := r.Group("/api/children")
	group.Use(middlewares.AuthMiddleware())
	{
		group.GET("", childController.GetChildren)
		group.POST("", childController.CreateChild)
		group.GET("/picker", childController.PickerCandidates)
		group.GET("/:id", childController.GetChild)
		group.PUT("/:id", childController.UpdateChild)
		group.DELETE("/:id", childController.DeleteChild)
	}
}
