package child

import (
	"testing"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

func patternChild(id, name string, days []int64, slots string) Child {
	return Child{
		ID:               id,
		Name:             name,
		PatternDays:      pq.Int64Array(days),
		PatternTimeSlots: datatypes.JSON([]byte(slots)),
	}
}

func TestMatchesPattern_ExactSlot(t *testing.T) {
	c := patternChild("c1", "A", []int64{1, 3}, `{"1":"AM","3":"PM"}`)

	if !MatchesPattern(&c, 1, "AM") {
		t.Fatalf("Monday AM should match")
	}
	if MatchesPattern(&c, 1, "PM") {
		t.Fatalf("Monday PM should not match")
	}
	if !MatchesPattern(&c, 3, "PM") {
		t.Fatalf("Wednesday PM should match")
	}
}

func TestMatchesPattern_AMPMMatchesEither(t *testing.T) {
	c := patternChild("c1", "A", []int64{2}, `{"2":"AMPM"}`)

	if !MatchesPattern(&c, 2, "AM") || !MatchesPattern(&c, 2, "PM") {
		t.Fatalf("AMPM should match both slots")
	}
}

func TestMatchesPattern_WeekdayNotInPattern(t *testing.T) {
	c := patternChild("c1", "A", []int64{1}, `{"1":"AM","5":"AM"}`)

	// slot map has an entry for Friday, but Friday is not a pattern day
	if MatchesPattern(&c, 5, "AM") {
		t.Fatalf("weekday outside pattern days should not match")
	}
}

func TestMatchesPattern_NoPattern(t *testing.T) {
	c := Child{ID: "c1", Name: "A"}
	if MatchesPattern(&c, 1, "AM") {
		t.Fatalf("child without pattern should not match")
	}
}

func TestMatchesPattern_MalformedSlotJSON(t *testing.T) {
	c := patternChild("c1", "A", []int64{1}, `{"1":`)
	if MatchesPattern(&c, 1, "AM") {
		t.Fatalf("malformed slot json should not match")
	}
}

func TestSortForPicker_Priorities(t *testing.T) {
	children := []Child{
		patternChild("other", "たなか", nil, `{}`),
		patternChild("day-only", "すずき", []int64{1}, `{"1":"PM"}`),
		patternChild("exact", "やまだ", []int64{1}, `{"1":"AM"}`),
		patternChild("ampm", "いとう", []int64{1}, `{"1":"AMPM"}`),
	}

	SortForPicker(children, 1, "AM")

	// exact and AMPM matches first, then day-only, then the rest
	if children[0].ID != "ampm" && children[0].ID != "exact" {
		t.Fatalf("expected a slot match first, got %s", children[0].ID)
	}
	if children[1].ID != "ampm" && children[1].ID != "exact" {
		t.Fatalf("expected both slot matches up front, got %s", children[1].ID)
	}
	if children[2].ID != "day-only" {
		t.Fatalf("expected day-only third, got %s", children[2].ID)
	}
	if children[3].ID != "other" {
		t.Fatalf("expected non-matching child last, got %s", children[3].ID)
	}
}

func TestSortForPicker_TiesBrokenByKana(t *testing.T) {
	a := patternChild("a", "B", nil, `{}`)
	a.NameKana = "さとう"
	b := patternChild("b", "A", nil, `{}`)
	b.NameKana = "あおき"

	children := []Child{a, b}
	SortForPicker(children, 1, "AM")

	if children[0].ID != "b" {
		t.Fatalf("expected あおき before さとう, got %s first", children[0].ID)
	}
}
