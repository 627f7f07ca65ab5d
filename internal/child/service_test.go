package child

import (
	"testing"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

func TestChildService_CreateAndGetChildren(t *testing.T) {
	db := newTestDB(t)
	svc := &ChildService{DB: db}

	_, err := svc.CreateChild(Child{ID: "c1", FacilityID: "fac-1", Name: "山田太郎", NameKana: "やまだたろう"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err = svc.CreateChild(Child{ID: "c2", FacilityID: "fac-2", Name: "鈴木花子"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.GetChildren("fac-1")
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 child for fac-1, got %d: %#v", len(got), got)
	}
	if got[0].ID != "c1" {
		t.Fatalf("unexpected child: %#v", got[0])
	}
}

func TestChildService_CreateChild_MissingFields(t *testing.T) {
	db := newTestDB(t)
	svc := &ChildService{DB: db}

	if _, err := svc.CreateChild(Child{ID: "c1", Name: "x"}); err == nil {
		t.Fatalf("expected error for missing facility id")
	}
	if _, err := svc.CreateChild(Child{ID: "c1", FacilityID: "fac-1"}); err == nil {
		t.Fatalf("expected error for missing name")
	}
}

func TestChildService_UpdateChild_PreservesCreatedAt(t *testing.T) {
	db := newTestDB(t)
	svc := &ChildService{DB: db}

	created, err := svc.CreateChild(Child{ID: "c1", FacilityID: "fac-1", Name: "old"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateChild(Child{ID: "c1", FacilityID: "fac-1", Name: "new"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "new" {
		t.Fatalf("expected updated name, got %q", updated.Name)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("created_at changed: %v -> %v", created.CreatedAt, updated.CreatedAt)
	}
}

func TestChildService_DeleteChild_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := &ChildService{DB: db}

	if err := svc.DeleteChild("fac-1", "missing"); err == nil {
		t.Fatalf("expected error deleting missing child")
	}
}

func TestChildService_PickerCandidates_ExcludesRegistered(t *testing.T) {
	db := newTestDB(t)
	svc := &ChildService{DB: db}

	seed := []Child{
		{ID: "match", FacilityID: "fac-1", Name: "一致", PatternDays: pq.Int64Array{1}, PatternTimeSlots: datatypes.JSON([]byte(`{"1":"AM"}`))},
		{ID: "registered", FacilityID: "fac-1", Name: "登録済"},
		{ID: "rest", FacilityID: "fac-1", Name: "その他"},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	got, err := svc.PickerCandidates("fac-1", 1, "AM", []string{"registered"})
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d: %#v", len(got), got)
	}
	if got[0].ID != "match" {
		t.Fatalf("expected pattern match first, got %s", got[0].ID)
	}
	for _, c := range got {
		if c.ID == "registered" {
			t.Fatalf("registered child should be excluded")
		}
	}
}

func TestChildService_DBBroken_ReturnsError(t *testing.T) {
	db := newTestDB(t)
	svc := &ChildService{DB: db}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB(): %v", err)
	}
	_ = sqlDB.Close()

	if _, err := svc.GetChildren("fac-1"); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
