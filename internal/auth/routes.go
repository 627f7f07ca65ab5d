package auth

import (
	"github.com/gin-gonic/gin"

	"carebase-api/internal/logs"
)

func RegisterRoutes(r *gin.Engine, authService *AuthService, logService *logs.LogService) {
	authController := &AuthController{AuthService: authService, LS: logService}

	group := r.Group("/api/user")
	{
		group.POST("/signup", authController.SignUp)
		group.POST("/login", authController.Login)
		group.POST("/logout", authController.Logout)
		group.GET("/me", authController.Me)
		group.POST("/refresh", authController.Refresh)
		group.POST("/send-otp", authController.SendOTP)
		group.POST("/reset-password", authController.ResetPassword)
	}
}
