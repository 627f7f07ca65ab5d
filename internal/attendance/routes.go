package attendance

import (
	"github.com/gin-gonic/gin"

	"carebase-api/internal/middlewares"
)

func RegisterRoutes(r *gin.Engine, attendanceService *AttendanceService) {
	attendanceController := &AttendanceController{AttendanceService: attendanceService}

	group := r.Group("/api/attendance")
	group.Use(middlewares.AuthMiddleware())
	{
		group.POST("/punch", attendanceController.Punch)
		group.POST("/manual", attendanceController.ManualEntry)
		group.GET("/history", attendanceController.GetHistory)
		group.GET("/month", attendanceController.GetMonth)
	}
}
