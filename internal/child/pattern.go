package child

import (
	"encoding/json"
	"sort"
	"strconv"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SlotAMPM marks a pattern that covers both half-day slots.
const SlotAMPM = "AMPM"

var jaCollator = collate.New(language.Japanese)

// PatternSlot returns the child's preferred slot for a weekday, or "" when
// the weekday is not part of the pattern.
func PatternSlot(c *Child, weekday int) string {
	if !hasPatternDay(c, weekday) {
		return ""
	}
	if len(c.PatternTimeSlots) == 0 {
		return ""
	}
	var slots map[string]string
	if err := json.Unmarshal(c.PatternTimeSlots, &slots); err != nil {
		return ""
	}
	return slots[strconv.Itoa(weekday)]
}

// MatchesPattern reports whether the child's recurring pattern covers the
// given weekday and slot. A stored "AMPM" matches either slot.
func MatchesPattern(c *Child, weekday int, slot string) bool {
	s := PatternSlot(c, weekday)
	return s == slot || s == SlotAMPM
}

// SortForPicker orders picker candidates: pattern-and-slot matches first,
// pattern-only matches second, everyone else after, ties broken by kana
// (falling back to name) under Japanese collation.
func SortForPicker(children []Child, weekday int, slot string) {
	rank := func(c *Child) int {
		if MatchesPattern(c, weekday, slot) {
			return 0
		}
		if hasPatternDay(c, weekday) {
			return 1
		}
		return 2
	}

	sort.SliceStable(children, func(i, j int) bool {
		ri, rj := rank(&children[i]), rank(&children[j])
		if ri != rj {
			return ri < rj
		}
		return jaCollator.CompareString(sortKey(&children[i]), sortKey(&children[j])) < 0
	})
}

func sortKey(c *Child) string {
	if c.NameKana != "" {
		return c.NameKana
	}
	return c.Name
}

func hasPatternDay(c *Child, weekday int) bool {
	for _, d := range c.PatternDays {
		if int(d) == weekday {
			return true
		}
	}
	return false
}
