package usagerecord

import (
	"github.com/gin-gonic/gin"

	"carebase-api/internal/middlewares"
)

func RegisterRoutes(r *gin.Engine, usageRecordService *UsageRecordService) {
	usageRecordController := &UsageRecordController{UsageRecordService: usageRecordService}

	group := r.Group("/api/usage-records")
	group.Use(middlewares.AuthMiddleware())
	{
		group.POST("", usageRecordController.CreateRecord)
		group.GET("", usageRecordController.GetByMonth)
		group.GET("/child/:childId", usageRecordController.GetByChild)
		group.DELETE("/:id", usageRecordController.DeleteRecord)
	}
}
