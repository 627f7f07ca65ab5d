package facility

import (
	"errors"

	"gorm.io/gorm"
)

type FacilityService struct {
	DB *gorm.DB
}

func (fs *FacilityService) GetFacility(id string) (*Facility, error) {
	var f Facility
	if err := fs.DB.Where("id = ?", id).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (fs *FacilityService) GetFacilityByCode(code string) (*Facility, error) {
	var f Facility
	if err := fs.DB.Where("code = ?", code).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (fs *FacilityService) CreateFacility(f Facility) (*Facility, error) {
	if f.ID == "" || f.Code == "" {
		return nil, errors.New("facility id and code are required")
	}
	if err := fs.DB.Create(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// GetSettings returns the stored settings row for a facility, or the
// defaults when none exists yet.
func (fs *FacilityService) GetSettings(facilityID string) (*Settings, error) {
	var s Settings
	err := fs.DB.Where("facility_id = ?", facilityID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		def := DefaultSettings(facilityID)
		return &def, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// UpsertSettings creates or replaces the settings row for a facility.
func (fs *FacilityService) UpsertSettings(s Settings) (*Settings, error) {
	if s.FacilityID == "" {
		return nil, errors.New("facility id is required")
	}

	var existing Settings
	err := fs.DB.Where("facility_id = ?", s.FacilityID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := fs.DB.Create(&s).Error; err != nil {
			return nil, err
		}
		return &s, nil
	}
	if err != nil {
		return nil, err
	}

	s.ID = existing.ID
	s.CreatedAt = existing.CreatedAt
	if err := fs.DB.Save(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
