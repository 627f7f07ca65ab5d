package lead

import (
	"errors"

	"gorm.io/gorm"

	"carebase-api/internal/util"
)

var ErrInvalidStatus = errors.New("unknown lead status")

type LeadService struct {
	DB *gorm.DB
}

func validStatus(status string) bool {
	for _, s := range StatusOrder {
		if s == status {
			return true
		}
	}
	return false
}

func (ls *LeadService) GetLeads(facilityID string) ([]Lead, error) {
	leads := []Lead{}
	if err := ls.DB.Where("facility_id = ?", facilityID).
		Order("created_at desc").Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}

// StatusGroup is one pipeline column, in board order.
type StatusGroup struct {
	Status string `json:"status"`
	Leads  []Lead `json:"leads"`
}

func (ls *LeadService) GetBoard(facilityID string) ([]StatusGroup, error) {
	leads, err := ls.GetLeads(facilityID)
	if err != nil {
		return nil, err
	}

	byStatus := make(map[string][]Lead, len(StatusOrder))
	for _, l := range leads {
		byStatus[l.Status] = append(byStatus[l.Status], l)
	}

	board := make([]StatusGroup, 0, len(StatusOrder))
	for _, status := range StatusOrder {
		group := byStatus[status]
		if group == nil {
			group = []Lead{}
		}
		board = append(board, StatusGroup{Status: status, Leads: group})
	}
	return board, nil
}

func (ls *LeadService) AddLead(l Lead) (*Lead, error) {
	if l.FacilityID == "" {
		return nil, errors.New("facility id is required")
	}
	if l.Name == "" {
		return nil, errors.New("lead name is required")
	}
	if l.Status == "" {
		l.Status = StatusNewInquiry
	}
	if !validStatus(l.Status) {
		return nil, ErrInvalidStatus
	}
	if l.ID == "" {
		l.ID = util.NewID()
	}
	if err := ls.DB.Create(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (ls *LeadService) UpdateLead(facilityID, id string, updates map[string]interface{}) (*Lead, error) {
	var existing Lead
	if err := ls.DB.Where("facility_id = ? AND id = ?", facilityID, id).First(&existing).Error; err != nil {
		return nil, err
	}

	// id and facility scope never change through updates
	delete(updates, "id")
	delete(updates, "facility_id")
	if status, ok := updates["status"].(string); ok && !validStatus(status) {
		return nil, ErrInvalidStatus
	}

	if err := ls.DB.Model(&existing).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

func (ls *LeadService) ChangeStatus(facilityID, id, status string) (*Lead, error) {
	if !validStatus(status) {
		return nil, ErrInvalidStatus
	}
	return ls.UpdateLead(facilityID, id, map[string]interface{}{"status": status})
}

func (ls *LeadService) DeleteLead(facilityID, id string) error {
	result := ls.DB.Where("facility_id = ? AND id = ?", facilityID, id).Delete(&Lead{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetLeadsByChild returns the leads linked to a registered child.
func (ls *LeadService) GetLeadsByChild(facilityID, childID string) ([]Lead, error) {
	leads, err := ls.GetLeads(facilityID)
	if err != nil {
		return nil, err
	}

	linked := []Lead{}
	for _, l := range leads {
		for _, id := range l.ChildIDs {
			if id == childID {
				linked = append(linked, l)
				break
			}
		}
	}
	return linked, nil
}
