package auth

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

func TestCreateUserDefaultsRole(t *testing.T) {
	svc := newTestService(t)

	user, err := svc.CreateUser(User{Name: "A", Email: "a@example.com", Password: "x"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.Role != "staff" {
		t.Errorf("role = %s, want staff", user.Role)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	seedUser(t, svc.DB, "taken@example.com", "secret1")

	_, err := svc.CreateUser(User{Name: "B", Email: "taken@example.com", Password: "x"})
	if err == nil {
		t.Fatal("expected duplicate email error")
	}
	requireContains(t, err.Error(), "already exists")
}

func TestSendOTPStoresCodeAndSendsMail(t *testing.T) {
	svc := newTestService(t)
	seedUser(t, svc.DB, "taro@example.com", "secret1")

	mail := &stubMail{}
	mail.install(t)

	user, otp, err := svc.SendOTP("taro@example.com")
	if err != nil {
		t.Fatalf("send otp: %v", err)
	}
	if len(otp) != 6 {
		t.Errorf("otp = %q, want 6 digits", otp)
	}
	if user.Email != "taro@example.com" {
		t.Errorf("user = %s", user.Email)
	}

	if len(mail.to) != 1 || mail.to[0] != "taro@example.com" {
		t.Errorf("mail to = %v", mail.to)
	}
	requireContains(t, string(mail.message), otp)

	var stored OTP
	if err := svc.DB.Where("email = ?", "taro@example.com").First(&stored).Error; err != nil {
		t.Fatalf("load otp row: %v", err)
	}
	if stored.Code != otp {
		t.Errorf("stored code = %s, want %s", stored.Code, otp)
	}
}

func TestSendOTPUnknownUser(t *testing.T) {
	svc := newTestService(t)

	mail := &stubMail{}
	mail.install(t)

	if _, _, err := svc.SendOTP("nobody@example.com"); err == nil {
		t.Fatal("expected error for unknown user")
	}
	if mail.to != nil {
		t.Errorf("no mail should be sent, got %v", mail.to)
	}
}

func TestSendOTPMailFailure(t *testing.T) {
	svc := newTestService(t)
	seedUser(t, svc.DB, "taro@example.com", "secret1")

	mail := &stubMail{err: errors.New("smtp down")}
	mail.install(t)

	if _, _, err := svc.SendOTP("taro@example.com"); err == nil {
		t.Fatal("expected error when mail fails")
	}
}

func TestResetPassword(t *testing.T) {
	svc := newTestService(t)
	seedUser(t, svc.DB, "taro@example.com", "oldpass")

	if err := svc.DB.Create(&OTP{Email: "taro@example.com", Code: "123456"}).Error; err != nil {
		t.Fatalf("seed otp: %v", err)
	}

	if _, err := svc.ResetPassword("taro@example.com", "123456", "newpass1"); err != nil {
		t.Fatalf("reset: %v", err)
	}

	var updated User
	if err := svc.DB.Where("email = ?", "taro@example.com").First(&updated).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("newpass1")); err != nil {
		t.Error("new password does not verify")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("oldpass")); err == nil {
		t.Error("old password still verifies")
	}
}

func TestResetPasswordInvalidCode(t *testing.T) {
	svc := newTestService(t)
	seedUser(t, svc.DB, "taro@example.com", "oldpass")

	if _, err := svc.ResetPassword("taro@example.com", "000000", "newpass1"); err == nil {
		t.Fatal("expected invalid OTP error")
	}
}

func TestResetPasswordExpiredCode(t *testing.T) {
	svc := newTestService(t)
	seedUser(t, svc.DB, "taro@example.com", "oldpass")

	otp := OTP{Email: "taro@example.com", Code: "123456"}
	if err := svc.DB.Create(&otp).Error; err != nil {
		t.Fatalf("seed otp: %v", err)
	}
	stale := time.Now().Add(-11 * time.Minute)
	if err := svc.DB.Model(&OTP{}).Where("id = ?", otp.ID).
		Update("created_at", stale).Error; err != nil {
		t.Fatalf("backdate otp: %v", err)
	}

	_, err := svc.ResetPassword("taro@example.com", "123456", "newpass1")
	if err == nil {
		t.Fatal("expected expired OTP error")
	}
	requireContains(t, err.Error(), "expired")
}
