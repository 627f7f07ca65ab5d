package schedule

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"carebase-api/internal/child"
	"carebase-api/internal/facility"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Unique in-memory DB per test to avoid cross-test contamination
	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(&ScheduleItem{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	return db
}

type stubUsageRecords struct {
	locked map[string]bool
}

func (s *stubUsageRecords) ExistsForSchedule(scheduleID string) (bool, error) {
	return s.locked[scheduleID], nil
}

func (s *stubUsageRecords) ScheduleIDsWithRecords(scheduleIDs []string) (map[string]bool, error) {
	out := map[string]bool{}
	for _, id := range scheduleIDs {
		if s.locked[id] {
			out[id] = true
		}
	}
	return out, nil
}

type stubSettings struct {
	settings facility.Settings
}

func (s *stubSettings) GetSettings(facilityID string) (*facility.Settings, error) {
	cp := s.settings
	cp.FacilityID = facilityID
	return &cp, nil
}

type stubChildren struct {
	children []child.Child
}

func (s *stubChildren) GetChildren(facilityID string) ([]child.Child, error) {
	return s.children, nil
}

func newTestService(t *testing.T) (*ScheduleService, *stubUsageRecords, *stubSettings, *stubChildren) {
	t.Helper()

	records := &stubUsageRecords{locked: map[string]bool{}}
	settings := &stubSettings{settings: facility.DefaultSettings("fac1")}
	children := &stubChildren{}

	svc := &ScheduleService{
		DB:           newTestDB(t),
		UsageRecords: records,
		Settings:     settings,
		Children:     children,
	}
	return svc, records, settings, children
}
