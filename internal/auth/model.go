package auth

import "time"

type User struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	NameKana   string    `gorm:"size:100" json:"name_kana"`
	Email      string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone      string    `gorm:"size:30" json:"phone"`
	Password   string    `gorm:"not null" json:"-"`
	Role       string    `gorm:"size:20;default:staff" json:"role"`
	FacilityID string    `gorm:"size:64;index" json:"facility_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

type OTP struct {
	ID        uint      `gorm:"primaryKey"`
	Email     string    `gorm:"index;not null"`
	Code      string    `gorm:"size:6;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (OTP) TableName() string {
	return "otp_codes"
}

type LoginResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	FacilityID string `json:"facility_id,omitempty"`
}

type SendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Email    string `json:"email" binding:"required,email"`
	OTP      string `json:"otp" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}
