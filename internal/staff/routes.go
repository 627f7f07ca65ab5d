package staff

import (
	"github.com/gin-gonic/gin"

	"carebase-api/internal/middlewares"
)

func RegisterRoutes(r *gin.Engine, staffService *StaffService) {
	staffController := &StaffController{StaffService: staffService}

	group := r.Group("/api/staff")
	group.Use(middlewares.AuthMiddleware())
	{
		group.GET("", staffController.GetStaffList)
		group.GET("/:id", staffController.GetStaff)
		group.POST("", staffController.CreateStaff)
		group.PUT("/:id", staffController.UpdateStaff)
		group.DELETE("/:id", staffController.DeleteStaff)
		group.POST("/:id/invite", staffController.IssueInvite)
		group.POST("/claim", staffController.ClaimShadow)
		group.POST("/:id/photo", staffController.UploadPhoto)
		group.GET("/:id/certificates", staffController.ListCertificates)

		group.GET("/employment-records", staffController.GetEmploymentRecords)
		group.POST("/employment-records", staffController.CreateEmploymentRecord)
		group.PUT("/employment-records/:id", staffController.UpdateEmploymentRecord)
		group.DELETE("/employment-records/:id", staffController.DeleteEmploymentRecord)
		group.POST("/employment-records/:id/certificate", staffController.UploadCertificate)
	}
}
