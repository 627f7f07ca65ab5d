package auth

import (
	"errors"
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"

	"gorm.io/gorm"

	"carebase-api/config"
	"carebase-api/internal/util"
)

type AuthService struct {
	DB  *gorm.DB
	CFG *config.Config
}

var sendMail = smtp.SendMail

func (s *AuthService) CreateUser(user User) (*User, error) {
	if user.Role == "" {
		user.Role = "staff"
	}

	if err := s.DB.Create(&user).Error; err != nil {
		// check if it's a unique constraint violation
		if strings.Contains(err.Error(), "duplicate key") || strings.Contains(err.Error(), "UNIQUE constraint") || strings.Contains(err.Error(), "unique constraint") {
			return nil, errors.New("An account with this email already exists. Please log in or use a different address.")
		}
		return nil, err
	}

	return &user, nil
}

func (s *AuthService) GetUser(email string) (*User, error) {
	var user User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) GetUserByID(id uint) (*User, error) {
	var user User
	if err := s.DB.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) SendOTP(email string) (*User, string, error) {
	// Check if user exists
	var user User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, "", errors.New("user not found")
	}

	// Generate 6-digit OTP
	otp := fmt.Sprintf("%06d", util.RandomInt(100000, 999999))

	record := OTP{
		Email: email,
		Code:  otp,
	}
	if err := s.DB.Create(&record).Error; err != nil {
		return nil, "", err
	}

	from := s.CFG.GmailUser
	password := s.CFG.GmailPass
	to := []string{user.Email}
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	subject := "OTP to change password"
	body := fmt.Sprintf(
		"Hi there,\n\n"+
			"Your OTP to change the password is: %s\n\n"+
			"This code will expire in 10 minutes.\n\n"+
			"Thank you.",
		otp,
	)

	message := []byte(fmt.Sprintf(
		"To: %s\r\n"+
			"Subject: %s\r\n"+
			"\r\n"+
			"%s",
		user.Email,
		subject,
		body,
	))

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := sendMail(smtpHost+":"+smtpPort, auth, from, to, message); err != nil {
		log.Printf("Error sending email to %s: %v\n", user.Email, err)
		return nil, "", errors.New("failed to send OTP email")
	}

	return &user, otp, nil
}

// Verify OTP and reset password
func (s *AuthService) ResetPassword(email, code, newPassword string) (*User, error) {
	// Get latest OTP for email
	var otp OTP
	if err := s.DB.Where("email = ? AND code = ?", email, code).
		Order("created_at desc").First(&otp).Error; err != nil {
		return nil, errors.New("invalid OTP")
	}

	var user User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, errors.New("user not found")
	}

	// Check if OTP is older than 10 minutes
	if time.Since(otp.CreatedAt) > 10*time.Minute {
		return nil, errors.New("OTP expired")
	}

	hashed, err := util.HashPassword(newPassword)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(&User{}).Where("email = ?", email).
		Update("password", hashed).Error; err != nil {
		return nil, err
	}

	return &user, nil
}
