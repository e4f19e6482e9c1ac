package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventplanner-backend/internal/timekey"
)

func timedEntry(kind Kind, id int64, title string, minutes int) Entry {
	return Entry{ID: EntryID{Kind: kind, ID: id}, Title: title, SortValue: minutes}
}

func TestOrderEntries(t *testing.T) {
	entries := []Entry{
		timedEntry(KindMeal, 1, "Dinner", 1140),
		timedEntry(KindActivity, 1, "1. Morning jump", 600),
		{ID: EntryID{Kind: KindTransport, ID: 1}, Title: "A to B", SortValue: timekey.Unscheduled},
		timedEntry(KindActivity, 2, "2. Afternoon jump", 600),
	}

	ordered := OrderEntries(entries)
	titles := make([]string, len(ordered))
	for i, e := range ordered {
		titles[i] = e.Title
	}
	// Equal sort values tie-break by title; unscheduled entries sort last.
	assert.Equal(t, []string{"1. Morning jump", "2. Afternoon jump", "Dinner", "A to B"}, titles)

	// Re-running the ordering on the same set yields the same order.
	assert.Equal(t, ordered, OrderEntries(entries))
	// The input is not reordered in place.
	assert.Equal(t, "Dinner", entries[0].Title)
}

func TestProposeTime(t *testing.T) {
	dragged := EntryID{Kind: KindOther, ID: 99}

	testCases := []struct {
		name     string
		ordered  []Entry
		index    int
		expected int
	}{
		{
			name: "midpoint between neighbors",
			ordered: []Entry{
				timedEntry(KindActivity, 1, "a", 540),
				timedEntry(KindMeal, 1, "b", 600),
			},
			index:    1,
			expected: 570,
		},
		{
			name:     "only left neighbor",
			ordered:  []Entry{timedEntry(KindActivity, 1, "a", 540)},
			index:    1,
			expected: 555,
		},
		{
			name:     "only right neighbor",
			ordered:  []Entry{timedEntry(KindActivity, 1, "a", 60)},
			index:    0,
			expected: 45,
		},
		{
			name:     "right neighbor near midnight clamps to zero",
			ordered:  []Entry{timedEntry(KindActivity, 1, "a", 5)},
			index:    0,
			expected: 0,
		},
		{
			name:     "empty bucket defaults to 09:00",
			ordered:  nil,
			index:    0,
			expected: 540,
		},
		{
			name: "unscheduled right neighbor treated as absent",
			ordered: []Entry{
				timedEntry(KindActivity, 1, "a", 540),
				{ID: EntryID{Kind: KindTransport, ID: 1}, Title: "b", SortValue: timekey.Unscheduled},
			},
			index:    1,
			expected: 555,
		},
		{
			name: "dragged entry excluded from the order",
			ordered: []Entry{
				timedEntry(KindActivity, 1, "a", 540),
				{ID: dragged, Title: "dragged", SortValue: 550},
				timedEntry(KindMeal, 1, "b", 600),
			},
			index:    1,
			expected: 570,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			proposed := ProposeTime(tc.index, tc.ordered, "2024-06-01", dragged)
			require.NotNil(t, proposed)
			assert.Equal(t, tc.expected, *proposed)
		})
	}
}

func TestProposeTimeUnscheduledBucket(t *testing.T) {
	ordered := []Entry{
		timedEntry(KindActivity, 1, "a", 540),
		timedEntry(KindMeal, 1, "b", 600),
	}
	// The Unscheduled bucket never proposes a time, regardless of neighbors.
	assert.Nil(t, ProposeTime(1, ordered, timekey.UnscheduledKey, EntryID{Kind: KindOther, ID: 99}))
}

func TestProposeTimeStrictlyBetweenNeighbors(t *testing.T) {
	dragged := EntryID{Kind: KindOther, ID: 99}
	for prev := 0; prev < 120; prev += 7 {
		for next := prev + 2; next < prev+90; next += 11 {
			ordered := []Entry{
				timedEntry(KindActivity, 1, "a", prev),
				timedEntry(KindMeal, 1, "b", next),
			}
			proposed := ProposeTime(1, ordered, "2024-06-01", dragged)
			require.NotNil(t, proposed)
			assert.Greater(t, *proposed, prev)
			assert.Less(t, *proposed, next)
		}
	}
}

func TestProposeTimeIdempotentAtFixedIndex(t *testing.T) {
	// Re-dropping an entry at the index it already occupies must keep its
	// relative order among the others.
	dragged := EntryID{Kind: KindMeal, ID: 5}
	ordered := []Entry{
		timedEntry(KindActivity, 1, "a", 540),
		{ID: dragged, Title: "lunch", SortValue: 570},
		timedEntry(KindActivity, 2, "b", 600),
	}
	for i := 0; i < 3; i++ {
		proposed := ProposeTime(1, ordered, "2024-06-01", dragged)
		require.NotNil(t, proposed)
		assert.Greater(t, *proposed, 540)
		assert.Less(t, *proposed, 600)
		ordered[1].SortValue = *proposed
		ordered = OrderEntries(ordered)
		assert.Equal(t, dragged, ordered[1].ID)
	}
}
