package company

import (
	"github.com/gin-gonic/gin"

	"carebase-api/internal/middlewares"
)

func RegisterRoutes(r *gin.Engine, companyService *CompanyService) {
	companyController := &CompanyController{CompanyService: companyService}

	group := r.Group("/api/companies")
	group.Use(middlewares.AuthMiddleware())
	{
		group.GET("", companyController.GetAllCompanies)
		group.POST("", companyController.AddCompanies)
	}
}
