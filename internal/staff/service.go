package staff

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"carebase-api/config"
	"carebase-api/internal/logs"
	"carebase-api/internal/util"
)

var (
	ErrNotShadow      = errors.New("This staff record is already linked to an account.")
	ErrNoShadowMatch  = errors.New("No matching staff record found to claim.")
	ErrInvalidToken   = errors.New("Invalid or expired invite token.")
	ErrUserHasProfile = errors.New("This account already has a staff record at the facility.")
)

type StaffService struct {
	DB   *gorm.DB
	CFG  *config.Config
	Logs LogServicePort
}

func (ss *StaffService) GetStaffList(facilityID string) ([]Staff, error) {
	list := []Staff{}
	if err := ss.DB.Where("facility_id = ?", facilityID).
		Order("name_kana asc").Order("name asc").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (ss *StaffService) GetStaff(facilityID, id string) (*Staff, error) {
	var s Staff
	if err := ss.DB.Where("facility_id = ? AND id = ?", facilityID, id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateStaff inserts a facility-entered staff row. Rows start as shadow
// until a user account claims them.
func (ss *StaffService) CreateStaff(s Staff) (*Staff, error) {
	if s.Name == "" {
		return nil, errors.New("name is required")
	}
	if s.ID == "" {
		s.ID = util.NewID()
	}
	if s.UserID != nil {
		s.Status = StatusClaimed
	} else {
		s.Status = StatusShadow
	}
	if s.Type == "" {
		s.Type = "other"
	}
	if s.Role == "" {
		s.Role = "staff"
	}

	if err := ss.DB.Create(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (ss *StaffService) UpdateStaff(facilityID, id string, updates map[string]interface{}) (*Staff, error) {
	var s Staff
	if err := ss.DB.Where("facility_id = ? AND id = ?", facilityID, id).First(&s).Error; err != nil {
		return nil, err
	}

	// linkage fields only change through the claim flow
	delete(updates, "user_id")
	delete(updates, "status")
	delete(updates, "invite_token")

	if err := ss.DB.Model(&s).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := ss.DB.Where("facility_id = ? AND id = ?", facilityID, id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (ss *StaffService) DeleteStaff(facilityID, id string) error {
	result := ss.DB.Where("facility_id = ? AND id = ?", facilityID, id).Delete(&Staff{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IssueInvite generates an invite token for a shadow row. The token is
// handed to the staff member out of band and redeemed by ClaimShadow.
func (ss *StaffService) IssueInvite(facilityID, id string) (string, error) {
	var s Staff
	if err := ss.DB.Where("facility_id = ? AND id = ?", facilityID, id).First(&s).Error; err != nil {
		return "", err
	}
	if s.Status != StatusShadow {
		return "", ErrNotShadow
	}

	token := uuid.NewString()
	if err := ss.DB.Model(&s).Update("invite_token", token).Error; err != nil {
		return "", err
	}
	return token, nil
}

// ClaimInput carries the claiming user's own profile values. Fields the
// user filled in win over the facility-entered shadow values; shadow
// values survive where the user left a field empty.
type ClaimInput struct {
	UserID   uint
	Token    string
	Name     string
	NameKana string
	Email    string
	Phone    string
}

// ClaimShadow links a user account to a shadow staff row. The row is
// found by invite token, or by email/phone match when no token is given.
// The merge is recorded in the audit log.
func (ss *StaffService) ClaimShadow(facilityID string, input ClaimInput) (*Staff, error) {
	var existing int64
	if err := ss.DB.Model(&Staff{}).
		Where("facility_id = ? AND user_id = ?", facilityID, input.UserID).
		Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, ErrUserHasProfile
	}

	var s Staff
	if input.Token != "" {
		err := ss.DB.Where("facility_id = ? AND invite_token = ?", facilityID, input.Token).First(&s).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		if err != nil {
			return nil, err
		}
	} else {
		query := ss.DB.Where("facility_id = ? AND status = ?", facilityID, StatusShadow)
		switch {
		case input.Email != "":
			query = query.Where("email = ?", input.Email)
		case input.Phone != "":
			query = query.Where("phone = ?", input.Phone)
		default:
			return nil, ErrNoShadowMatch
		}
		err := query.First(&s).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoShadowMatch
		}
		if err != nil {
			return nil, err
		}
	}
	if s.Status != StatusShadow {
		return nil, ErrNotShadow
	}

	shadowName := s.Name
	merged := map[string]interface{}{
		"user_id":      input.UserID,
		"status":       StatusClaimed,
		"invite_token": nil,
	}
	if input.Name != "" {
		merged["name"] = input.Name
	}
	if input.NameKana != "" {
		merged["name_kana"] = input.NameKana
	}
	if input.Email != "" {
		merged["email"] = input.Email
	}
	if input.Phone != "" {
		merged["phone"] = input.Phone
	}

	if err := ss.DB.Model(&s).Updates(merged).Error; err != nil {
		return nil, err
	}
	if err := ss.DB.Where("id = ?", s.ID).First(&s).Error; err != nil {
		return nil, err
	}

	if ss.Logs != nil {
		_ = ss.Logs.Log(logs.SystemLog{
			Level:      "info",
			Service:    "staff",
			Action:     "claim",
			Message:    "shadow staff record claimed",
			UserID:     &input.UserID,
			FacilityID: facilityID,
		}, map[string]string{
			"staff_id":    s.ID,
			"shadow_name": shadowName,
		})
	}

	return &s, nil
}

// ---- employment records ----

func (ss *StaffService) GetEmploymentRecords(facilityID string, userID uint) ([]EmploymentRecord, error) {
	records := []EmploymentRecord{}
	if err := ss.DB.Where("facility_id = ? AND user_id = ?", facilityID, userID).
		Order("start_date desc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (ss *StaffService) CreateEmploymentRecord(record EmploymentRecord) (*EmploymentRecord, error) {
	if record.UserID == 0 || record.FacilityID == "" || record.StartDate == "" {
		return nil, errors.New("user, facility and start date are required")
	}
	if _, err := util.ParseDate(record.StartDate); err != nil {
		return nil, err
	}

	if err := ss.DB.Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (ss *StaffService) UpdateEmploymentRecord(facilityID string, id uint, updates map[string]interface{}) (*EmploymentRecord, error) {
	var record EmploymentRecord
	if err := ss.DB.Where("facility_id = ? AND id = ?", facilityID, id).First(&record).Error; err != nil {
		return nil, err
	}
	if err := ss.DB.Model(&record).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := ss.DB.Where("facility_id = ? AND id = ?", facilityID, id).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (ss *StaffService) DeleteEmploymentRecord(facilityID string, id uint) error {
	result := ss.DB.Where("facility_id = ? AND id = ?", facilityID, id).Delete(&EmploymentRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
