package child

import (
	"errors"

	"gorm.io/gorm"
)

type ChildService struct {
	DB *gorm.DB
}

func (cs *ChildService) GetChildren(facilityID string) ([]Child, error) {
	children := []Child{}
	if err := cs.DB.Where("facility_id = ?", facilityID).Order("name_kana asc, name asc").Find(&children).Error; err != nil {
		return nil, err
	}
	return children, nil
}

func (cs *ChildService) GetChild(facilityID, id string) (*Child, error) {
	var c Child
	if err := cs.DB.Where("facility_id = ? AND id = ?", facilityID, id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (cs *ChildService) CreateChild(c Child) (*Child, error) {
	if c.FacilityID == "" {
		return nil, errors.New("facility id is required")
	}
	if c.Name == "" {
		return nil, errors.New("child name is required")
	}
	if err := cs.DB.Create(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (cs *ChildService) UpdateChild(c Child) (*Child, error) {
	var existing Child
	if err := cs.DB.Where("facility_id = ? AND id = ?", c.FacilityID, c.ID).First(&existing).Error; err != nil {
		return nil, err
	}
	c.CreatedAt = existing.CreatedAt
	if err := cs.DB.Save(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (cs *ChildService) DeleteChild(facilityID, id string) error {
	result := cs.DB.Where("facility_id = ? AND id = ?", facilityID, id).Delete(&Child{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// PickerCandidates returns children not yet registered for the day, ordered
// for the slot-assignment picker.
func (cs *ChildService) PickerCandidates(facilityID string, weekday int, slot string, excludeIDs []string) ([]Child, error) {
	children, err := cs.GetChildren(facilityID)
	if err != nil {
		return nil, err
	}

	excluded := make(map[string]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}

	candidates := make([]Child, 0, len(children))
	for _, c := range children {
		if !excluded[c.ID] {
			candidates = append(candidates, c)
		}
	}

	SortForPicker(candidates, weekday, slot)
	return candidates, nil
}
