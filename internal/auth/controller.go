package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"carebase-api/config"
	"carebase-api/internal/logs"
	"carebase-api/internal/util"
)

type AuthController struct {
	AuthService *AuthService
	LS          *logs.LogService
}

func (ac *AuthController) SignUp(c *gin.Context) {
	var req struct {
		Name       string `json:"name" binding:"required"`
		NameKana   string `json:"name_kana"`
		Email      string `json:"email" binding:"required,email"`
		Phone      string `json:"phone"`
		Password   string `json:"password" binding:"required,min=6"`
		Role       string `json:"role"`
		FacilityID string `json:"facility_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	password, err := util.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	newUser, err := ac.AuthService.CreateUser(User{
		Name:       req.Name,
		NameKana:   req.NameKana,
		Email:      req.Email,
		Phone:      req.Phone,
		Password:   password,
		Role:       req.Role,
		FacilityID: req.FacilityID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	uid := newUser.ID
	entry := logs.SystemLog{
		Level:      "info",
		Service:    "auth",
		Action:     "SIGNUP",
		Message:    fmt.Sprintf("Account created with email %s", newUser.Email),
		UserID:     &uid,
		FacilityID: newUser.FacilityID,
	}
	if err := ac.LS.Log(entry, nil); err != nil {
		fmt.Printf("Failed to insert log: %v\n", err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user": LoginResponse{
			ID:         newUser.ID,
			Name:       newUser.Name,
			Email:      newUser.Email,
			Role:       newUser.Role,
			FacilityID: newUser.FacilityID,
		},
	})
}

type LoginRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"rememberMe"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.AuthService.GetUser(req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Oops! We couldn’t log you in. Please check your email and password and try again."})
		return
	}

	if err := util.VerifyPassword(req.Password, user.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Oops! We couldn’t log you in. Please check your email and password and try again."})
		return
	}

	cfg := config.LoadConfig()

	// Short-lived access token
	accessExp := time.Now().Add(15 * time.Minute)
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":     user.ID,
		"facility_id": user.FacilityID,
		"role":        user.Role,
		"exp":         accessExp.Unix(),
	})
	accessTokenString, _ := accessToken.SignedString([]byte(cfg.JWTSecret))

	// Refresh token (longer if RememberMe is true)
	refreshDuration := 24 * time.Hour
	if req.RememberMe {
		refreshDuration = 30 * 24 * time.Hour
	}
	refreshExp := time.Now().Add(refreshDuration)
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":     user.ID,
		"facility_id": user.FacilityID,
		"role":        user.Role,
		"exp":         refreshExp.Unix(),
	})
	refreshTokenString, _ := refreshToken.SignedString([]byte(cfg.JWTSecret))

	httpOnly := true
	secure := true // Must be true for HTTPS
	accessCookie := &http.Cookie{
		Name:     "access_token",
		Value:    accessTokenString,
		Path:     "/",
		HttpOnly: httpOnly,
		Secure:   secure,
		SameSite: http.SameSiteNoneMode, // required for cross-site cookies
	}
	refreshCookie := &http.Cookie{
		Name:     "refresh_token",
		Value:    refreshTokenString,
		Path:     "/",
		HttpOnly: httpOnly,
		Secure:   secure,
		SameSite: http.SameSiteNoneMode,
	}
	http.SetCookie(c.Writer, accessCookie)
	http.SetCookie(c.Writer, refreshCookie)

	uid := user.ID
	entry := logs.SystemLog{
		Level:      "info",
		Service:    "auth",
		Action:     "LOGIN",
		Message:    fmt.Sprintf("User logged in with email: %s", user.Email),
		UserID:     &uid,
		FacilityID: user.FacilityID,
	}
	if err := ac.LS.Log(entry, nil); err != nil {
		fmt.Printf("Failed to insert log: %v\n", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data": LoginResponse{
			ID:         user.ID,
			Name:       user.Name,
			Email:      user.Email,
			Role:       user.Role,
			FacilityID: user.FacilityID,
		},
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	accessCookie := &http.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
		MaxAge:   -1,
	}
	refreshCookie := &http.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
		MaxAge:   -1,
	}
	http.SetCookie(c.Writer, accessCookie)
	http.SetCookie(c.Writer, refreshCookie)

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (ac *AuthController) Me(c *gin.Context) {
	cfg := config.LoadConfig()

	accessToken, err := c.Cookie("access_token")
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing access token"})
		return
	}

	token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	claims := token.Claims.(jwt.MapClaims)
	userID := uint(claims["user_id"].(float64))

	user, err := ac.AuthService.GetUserByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": LoginResponse{
			ID:         user.ID,
			Name:       user.Name,
			Email:      user.Email,
			Role:       user.Role,
			FacilityID: user.FacilityID,
		},
	})
}

// Refresh endpoint to generate new access token
func (ac *AuthController) Refresh(c *gin.Context) {
	cfg := config.LoadConfig()

	refreshToken, err := c.Cookie("refresh_token")
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing refresh token"})
		return
	}

	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	claims := token.Claims.(jwt.MapClaims)
	userID := uint(claims["user_id"].(float64))
	facilityID, _ := claims["facility_id"].(string)
	role, _ := claims["role"].(string)

	accessExp := time.Now().Add(15 * time.Minute)
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":     userID,
		"facility_id": facilityID,
		"role":        role,
		"exp":         accessExp.Unix(),
	})
	accessTokenString, _ := accessToken.SignedString([]byte(cfg.JWTSecret))

	accessCookie := &http.Cookie{
		Name:     "access_token",
		Value:    accessTokenString,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
	http.SetCookie(c.Writer, accessCookie)

	c.JSON(http.StatusOK, gin.H{"message": "Access token refreshed"})
}

func (ac *AuthController) SendOTP(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, _, err := ac.AuthService.SendOTP(req.Email)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid := user.ID
	entry := logs.SystemLog{
		Level:      "info",
		Service:    "auth",
		Action:     "SEND_OTP",
		Message:    fmt.Sprintf("Sent OTP to email: %s", req.Email),
		UserID:     &uid,
		FacilityID: user.FacilityID,
	}
	if err := ac.LS.Log(entry, nil); err != nil {
		fmt.Printf("Failed to insert log: %v\n", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent successfully"})
}

func (ac *AuthController) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.AuthService.ResetPassword(req.Email, req.OTP, req.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	uid := user.ID
	entry := logs.SystemLog{
		Level:      "info",
		Service:    "auth",
		Action:     "RESET_PASSWORD",
		Message:    fmt.Sprintf("Password reset for email: %s", req.Email),
		UserID:     &uid,
		FacilityID: user.FacilityID,
	}
	if err := ac.LS.Log(entry, nil); err != nil {
		fmt.Printf("Failed to insert log: %v\n", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
}
