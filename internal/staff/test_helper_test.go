package staff

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"carebase-api/internal/logs"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Unique in-memory DB per test to avoid cross-test contamination
	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&Staff{}, &EmploymentRecord{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return db
}

type recordingLogger struct {
	entries []logs.SystemLog
}

func (rl *recordingLogger) Log(entry logs.SystemLog, payload any) error {
	rl.entries = append(rl.entries, entry)
	return nil
}

func newTestService(t *testing.T) (*StaffService, *recordingLogger) {
	t.Helper()
	logger := &recordingLogger{}
	return &StaffService{DB: newTestDB(t), Logs: logger}, logger
}
