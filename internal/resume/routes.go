package resume

import (
	"github.com/gin-gonic/gin"

	"carebase-api/internal/middlewares"
)

func RegisterRoutes(r *gin.Engine, resumeService *ResumeService) {
	resumeController := &ResumeController{ResumeService: resumeService}

	group := r.Group("/api/resumes")
	group.Use(middlewares.AuthMiddleware())
	{
		group.GET("/:staffId", resumeController.GetResume)
		group.POST("/:staffId/self-pr", resumeController.DraftSelfPR)
	}
}
