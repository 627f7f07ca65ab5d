package staff

import (
	"errors"
	"testing"
)

func TestCreateStaffDefaultsToShadow(t *testing.T) {
	svc, _ := newTestService(t)

	s, err := svc.CreateStaff(Staff{FacilityID: "fac1", Name: "山田太郎"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if s.Status != StatusShadow {
		t.Fatalf("status = %s, want shadow", s.Status)
	}
	if s.ID == "" {
		t.Fatal("expected generated id")
	}
}

func TestCreateStaffWithUserIsClaimed(t *testing.T) {
	svc, _ := newTestService(t)

	userID := uint(7)
	s, err := svc.CreateStaff(Staff{FacilityID: "fac1", Name: "佐藤花子", UserID: &userID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if s.Status != StatusClaimed {
		t.Fatalf("status = %s, want claimed", s.Status)
	}
}

func TestUpdateStaffIgnoresLinkageFields(t *testing.T) {
	svc, _ := newTestService(t)

	s, err := svc.CreateStaff(Staff{FacilityID: "fac1", Name: "山田太郎"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateStaff("fac1", s.ID, map[string]interface{}{
		"memo":    "updated",
		"user_id": 99,
		"status":  StatusClaimed,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Memo != "updated" {
		t.Errorf("memo = %q, want updated", updated.Memo)
	}
	if updated.UserID != nil || updated.Status != StatusShadow {
		t.Errorf("linkage changed outside claim flow: %+v", updated)
	}
}

func TestIssueInviteOnlyForShadow(t *testing.T) {
	svc, _ := newTestService(t)

	userID := uint(7)
	claimed, err := svc.CreateStaff(Staff{FacilityID: "fac1", Name: "佐藤花子", UserID: &userID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.IssueInvite("fac1", claimed.ID); !errors.Is(err, ErrNotShadow) {
		t.Fatalf("expected ErrNotShadow, got %v", err)
	}

	shadow, err := svc.CreateStaff(Staff{FacilityID: "fac1", Name: "山田太郎"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	token, err := svc.IssueInvite("fac1", shadow.ID)
	if err != nil {
		t.Fatalf("invite: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
}

func TestClaimShadowByToken(t *testing.T) {
	svc, logger := newTestService(t)

	shadow, err := svc.CreateStaff(Staff{
		FacilityID: "fac1",
		Name:       "山田太郎",
		NameKana:   "やまだたろう",
		Email:      "facility-entered@example.com",
		Memo:       "entered by manager",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	token, err := svc.IssueInvite("fac1", shadow.ID)
	if err != nil {
		t.Fatalf("invite: %v", err)
	}

	claimed, err := svc.ClaimShadow("fac1", ClaimInput{
		UserID: 42,
		Token:  token,
		Name:   "山田 太郎",
		Email:  "taro@example.com",
	})
	if err != nil {
		t.Fatalf("claim: %v", err)
	}

	if claimed.Status != StatusClaimed || claimed.UserID == nil || *claimed.UserID != 42 {
		t.Fatalf("linkage = %+v", claimed)
	}
	// claimed profile fields win
	if claimed.Name != "山田 太郎" || claimed.Email != "taro@example.com" {
		t.Errorf("claimed fields lost: %+v", claimed)
	}
	// facility-entered values fill the gaps the user left empty
	if claimed.NameKana != "やまだたろう" || claimed.Memo != "entered by manager" {
		t.Errorf("shadow fields lost: %+v", claimed)
	}
	if claimed.InviteToken != nil {
		t.Error("invite token should be cleared after claim")
	}

	if len(logger.entries) != 1 || logger.entries[0].Action != "claim" {
		t.Fatalf("audit log entries = %+v", logger.entries)
	}
}

func TestClaimShadowByEmailMatch(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.CreateStaff(Staff{
		FacilityID: "fac1",
		Name:       "山田太郎",
		Email:      "taro@example.com",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	claimed, err := svc.ClaimShadow("fac1", ClaimInput{
		UserID: 42,
		Email:  "taro@example.com",
	})
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if claimed.Status != StatusClaimed {
		t.Fatalf("status = %s, want claimed", claimed.Status)
	}
}

func TestClaimShadowInvalidToken(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ClaimShadow("fac1", ClaimInput{UserID: 42, Token: "nope"})
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestClaimShadowRejectsSecondProfile(t *testing.T) {
	svc, _ := newTestService(t)

	first, err := svc.CreateStaff(Staff{FacilityID: "fac1", Name: "山田太郎", Email: "taro@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	token, err := svc.IssueInvite("fac1", first.ID)
	if err != nil {
		t.Fatalf("invite: %v", err)
	}
	if _, err := svc.ClaimShadow("fac1", ClaimInput{UserID: 42, Token: token}); err != nil {
		t.Fatalf("first claim: %v", err)
	}

	second, err := svc.CreateStaff(Staff{FacilityID: "fac1", Name: "別人", Email: "other@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	token2, err := svc.IssueInvite("fac1", second.ID)
	if err != nil {
		t.Fatalf("invite: %v", err)
	}

	if _, err := svc.ClaimShadow("fac1", ClaimInput{UserID: 42, Token: token2}); !errors.Is(err, ErrUserHasProfile) {
		t.Fatalf("expected ErrUserHasProfile, got %v", err)
	}
}

func TestEmploymentRecordCRUD(t *testing.T) {
	svc, _ := newTestService(t)

	record, err := svc.CreateEmploymentRecord(EmploymentRecord{
		UserID:     42,
		FacilityID: "fac1",
		StartDate:  "2023-04-01",
		Role:       "児童指導員",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateEmploymentRecord("fac1", record.ID, map[string]interface{}{
		"dependents": 2,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Dependents != 2 {
		t.Errorf("dependents = %d, want 2", updated.Dependents)
	}

	records, err := svc.GetEmploymentRecords("fac1", 42)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}

	if err := svc.DeleteEmploymentRecord("fac1", record.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteEmploymentRecord("fac1", record.ID); err == nil {
		t.Fatal("expected error deleting twice")
	}
}

func TestCreateEmploymentRecordValidates(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.CreateEmploymentRecord(EmploymentRecord{
		UserID: 42, FacilityID: "fac1", StartDate: "April 2023",
	}); err == nil {
		t.Fatal("expected error for malformed start date")
	}
}
