package logs

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
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

	if err := db.AutoMigrate(&SystemLog{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return db
}

func strPtr(s string) *string { return &s }

func TestLogWritesMetadata(t *testing.T) {
	svc := &LogService{DB: newTestDB(t)}

	err := svc.Log(SystemLog{
		Level:      "info",
		Service:    "staff",
		Action:     "claim",
		Message:    "shadow staff claimed",
		FacilityID: "fac1",
	}, map[string]string{"staff_id": "s1"})
	if err != nil {
		t.Fatalf("log: %v", err)
	}

	var row SystemLog
	if err := svc.DB.First(&row).Error; err != nil {
		t.Fatalf("read back: %v", err)
	}
	if row.Metadata == nil || *row.Metadata != `{"staff_id":"s1"}` {
		t.Fatalf("metadata = %v", row.Metadata)
	}
}

func TestGetLogsFiltersByFacilityAndLevel(t *testing.T) {
	svc := &LogService{DB: newTestDB(t)}

	seed := []SystemLog{
		{Level: "info", Service: "staff", FacilityID: "fac1", Message: "a"},
		{Level: "error", Service: "staff", FacilityID: "fac1", Message: "b"},
		{Level: "info", Service: "staff", FacilityID: "fac2", Message: "c"},
	}
	for _, l := range seed {
		if err := svc.Log(l, nil); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	rows, total, _, err := svc.GetLogs(LogFilterInput{
		FacilityID: "fac1",
		Level:      strPtr("error"),
	})
	if err != nil {
		t.Fatalf("get logs: %v", err)
	}
	if total != 1 || len(rows) != 1 || rows[0].Message != "b" {
		t.Fatalf("rows = %+v, total = %d", rows, total)
	}
}

func TestGetLogsPagination(t *testing.T) {
	svc := &LogService{DB: newTestDB(t)}

	for i := 0; i < 25; i++ {
		if err := svc.Log(SystemLog{
			Level: "info", Service: "auth", FacilityID: "fac1",
			Message: fmt.Sprintf("entry %d", i),
		}, nil); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	rows, total, totalPages, err := svc.GetLogs(LogFilterInput{
		FacilityID: "fac1",
		Page:       2,
		PageSize:   10,
	})
	if err != nil {
		t.Fatalf("get logs: %v", err)
	}
	if total != 25 || totalPages != 3 {
		t.Fatalf("total = %d, pages = %d, want 25 / 3", total, totalPages)
	}
	if len(rows) != 10 {
		t.Fatalf("page rows = %d, want 10", len(rows))
	}
}
