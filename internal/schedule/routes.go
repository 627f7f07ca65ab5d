package schedule

import (
	"github.com/gin-gonic/gin"

	"carebase-api/internal/middlewares"
)

func RegisterRoutes(r *gin.Engine, scheduleService *ScheduleService) {
	scheduleController := &ScheduleController{ScheduleService: scheduleService}

	group := r.Group("/api/schedules")
	group.Use(middlewares.AuthMiddleware())
	{
		group.GET("", scheduleController.GetByMonth)
		group.GET("/date/:date", scheduleController.GetByDate)
		group.POST("", scheduleController.AddSchedule)
		group.DELETE("/:id", scheduleController.DeleteSchedule)
		group.PATCH("/:id/slot", scheduleController.MoveSchedule)
		group.PATCH("/:id/transport", scheduleController.UpdateTransport)
		group.POST("/bulk-register", scheduleController.BulkRegister)
		group.DELETE("/reset/day/:date", scheduleController.ResetDay)
		group.POST("/reset/month", scheduleController.ResetMonth)
		group.GET("/summary/day/:date", scheduleController.GetDaySummary)
		group.GET("/summary/range", scheduleController.GetRangeSummary)
		group.GET("/forecast", scheduleController.GetForecast)
		group.GET("/export", scheduleController.ExportMonth)
	}
}
