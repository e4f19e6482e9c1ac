package schedule

import (
	"sort"

	"eventplanner-backend/internal/timekey"
)

// Fixed offsets used when the insertion point has only one timed neighbor,
// and the default proposal for an empty bucket (09:00).
const (
	edgeOffsetMinutes      = 15
	defaultProposalMinutes = 9 * 60
)

// OrderEntries returns the entries in display order: sort value ascending
// with unscheduled entries last, ties broken by title (case-sensitive).
func OrderEntries(entries []Entry) []Entry {
	ordered := make([]Entry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].SortValue != ordered[j].SortValue {
			return ordered[i].SortValue < ordered[j].SortValue
		}
		return ordered[i].Title < ordered[j].Title
	})
	return ordered
}

// ProposeTime computes a proposed minutes-since-midnight value for dropping
// the dragged entry at targetIndex within a bucket's current visual order.
// The dragged entry is excluded from the order first, so same-day reorders
// and cross-day moves share this one code path. Dropping into the
// Unscheduled bucket proposes no time (nil): the entry's schedule field is
// cleared instead.
//
// With two timed neighbors the proposal is the floor midpoint; with one, a
// fixed offset away from it; with none, 09:00. Neighbors without a time are
// treated as absent.
func ProposeTime(targetIndex int, ordered []Entry, bucketKey string, dragged EntryID) *int {
	if bucketKey == timekey.UnscheduledKey {
		return nil
	}

	remaining := make([]Entry, 0, len(ordered))
	for _, e := range ordered {
		if e.ID == dragged {
			continue
		}
		remaining = append(remaining, e)
	}

	if targetIndex < 0 {
		targetIndex = 0
	}
	if targetIndex > len(remaining) {
		targetIndex = len(remaining)
	}

	prev, prevOK := neighborAt(remaining, targetIndex-1)
	next, nextOK := neighborAt(remaining, targetIndex)

	var proposed int
	switch {
	case prevOK && nextOK:
		proposed = (prev + next) / 2
	case prevOK:
		proposed = prev + edgeOffsetMinutes
	case nextOK:
		proposed = next - edgeOffsetMinutes
		if proposed < 0 {
			proposed = 0
		}
	default:
		proposed = defaultProposalMinutes
	}
	return &proposed
}

// neighborAt returns the sort value at index if it exists and is finite.
func neighborAt(entries []Entry, index int) (int, bool) {
	if index < 0 || index >= len(entries) {
		return 0, false
	}
	if entries[index].SortValue == timekey.Unscheduled {
		return 0, false
	}
	return entries[index].SortValue, true
}
