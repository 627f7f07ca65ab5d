package lead

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Unique in-memory DB per test to avoid cross-test contamination
	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&Lead{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return db
}

func TestAddLeadDefaultsStatus(t *testing.T) {
	svc := &LeadService{DB: newTestDB(t)}

	lead, err := svc.AddLead(Lead{FacilityID: "fac1", Name: "佐藤花子"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if lead.Status != StatusNewInquiry {
		t.Errorf("status = %s, want %s", lead.Status, StatusNewInquiry)
	}
	if lead.ID == "" {
		t.Error("id not generated")
	}
}

func TestAddLeadRejectsUnknownStatus(t *testing.T) {
	svc := &LeadService{DB: newTestDB(t)}

	if _, err := svc.AddLead(Lead{FacilityID: "fac1", Name: "A", Status: "bogus"}); err != ErrInvalidStatus {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
}

func TestChangeStatus(t *testing.T) {
	svc := &LeadService{DB: newTestDB(t)}
	lead, _ := svc.AddLead(Lead{FacilityID: "fac1", Name: "A"})

	updated, err := svc.ChangeStatus("fac1", lead.ID, StatusContracted)
	if err != nil {
		t.Fatalf("change status: %v", err)
	}
	if updated.Status != StatusContracted {
		t.Errorf("status = %s", updated.Status)
	}

	if _, err := svc.ChangeStatus("fac1", lead.ID, "bogus"); err != ErrInvalidStatus {
		t.Errorf("err = %v, want ErrInvalidStatus", err)
	}
	if _, err := svc.ChangeStatus("other", lead.ID, StatusLost); err == nil {
		t.Error("status change crossed facility boundary")
	}
}

func TestUpdateLeadIgnoresScopeFields(t *testing.T) {
	svc := &LeadService{DB: newTestDB(t)}
	lead, _ := svc.AddLead(Lead{FacilityID: "fac1", Name: "A"})

	_, err := svc.UpdateLead("fac1", lead.ID, map[string]interface{}{
		"memo":        "見学予定あり",
		"facility_id": "fac2",
		"id":          "hijacked",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	var stored Lead
	if err := svc.DB.First(&stored, "id = ?", lead.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stored.FacilityID != "fac1" {
		t.Errorf("facility_id changed to %s", stored.FacilityID)
	}
	if stored.Memo != "見学予定あり" {
		t.Errorf("memo = %s", stored.Memo)
	}
}

func TestGetBoardGroupsInOrder(t *testing.T) {
	svc := &LeadService{DB: newTestDB(t)}
	svc.AddLead(Lead{FacilityID: "fac1", Name: "A", Status: StatusContracted})
	svc.AddLead(Lead{FacilityID: "fac1", Name: "B"})
	svc.AddLead(Lead{FacilityID: "fac1", Name: "C"})
	svc.AddLead(Lead{FacilityID: "fac2", Name: "other facility"})

	board, err := svc.GetBoard("fac1")
	if err != nil {
		t.Fatalf("board: %v", err)
	}
	if len(board) != len(StatusOrder) {
		t.Fatalf("columns = %d, want %d", len(board), len(StatusOrder))
	}
	for i, group := range board {
		if group.Status != StatusOrder[i] {
			t.Errorf("column[%d] = %s, want %s", i, group.Status, StatusOrder[i])
		}
	}
	if len(board[0].Leads) != 2 {
		t.Errorf("new-inquiry leads = %d, want 2", len(board[0].Leads))
	}
	if len(board[5].Leads) != 1 {
		t.Errorf("contracted leads = %d, want 1", len(board[5].Leads))
	}
}

func TestGetLeadsByChild(t *testing.T) {
	svc := &LeadService{DB: newTestDB(t)}
	svc.AddLead(Lead{FacilityID: "fac1", Name: "A", ChildIDs: pq.StringArray{"c1", "c2"}})
	svc.AddLead(Lead{FacilityID: "fac1", Name: "B", ChildIDs: pq.StringArray{"c3"}})

	linked, err := svc.GetLeadsByChild("fac1", "c2")
	if err != nil {
		t.Fatalf("by child: %v", err)
	}
	if len(linked) != 1 || linked[0].Name != "A" {
		t.Errorf("linked = %+v", linked)
	}
}

func TestDeleteLead(t *testing.T) {
	svc := &LeadService{DB: newTestDB(t)}
	lead, _ := svc.AddLead(Lead{FacilityID: "fac1", Name: "A"})

	if err := svc.DeleteLead("other", lead.ID); err != gorm.ErrRecordNotFound {
		t.Errorf("cross-facility delete err = %v", err)
	}
	if err := svc.DeleteLead("fac1", lead.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteLead("fac1", lead.ID); err != gorm.ErrRecordNotFound {
		t.Errorf("second delete err = %v", err)
	}
}
