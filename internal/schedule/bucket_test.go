package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventplanner-backend/internal/model"
	"eventplanner-backend/internal/timekey"
)

func twoDaySnapshot() (model.Event, *Snapshot) {
	ev := model.Event{
		ID:    1,
		Name:  "June Boogie",
		Start: "2024-06-01T09:00",
		End:   "2024-06-02T18:00",
	}
	snap := &Snapshot{
		Event: ev,
		Activities: []model.Activity{
			{ID: 1, EventID: 1, Seq: 1, Name: "Ridge jump", Schedule: "2024-06-01T10:00"},
		},
		Transports: []model.Transport{
			{ID: 1, EventID: 1, Pickup: "Fjord Lodge", Destination: "Voss Airfield"},
		},
		Accommodations: []model.Accommodation{
			{ID: 1, EventID: 1, Name: "Fjord Lodge", CheckIn: "2024-06-01T15:00", CheckOut: "2024-06-02T11:00"},
		},
	}
	return ev, snap
}

func bucketKeys(buckets []DayBucket) []string {
	keys := make([]string, len(buckets))
	for i, b := range buckets {
		keys[i] = b.Key
	}
	return keys
}

func TestComputeDayBuckets(t *testing.T) {
	ev, snap := twoDaySnapshot()

	buckets := ComputeDayBuckets(ev, snap)
	require.Equal(t, []string{"2024-06-01", "2024-06-02", timekey.UnscheduledKey}, bucketKeys(buckets))

	day1 := buckets[0].Ordered()
	require.Len(t, day1, 2)
	assert.Equal(t, "i-1", day1[0].ID.String())
	assert.Equal(t, "acc-in-1", day1[1].ID.String())

	day2 := buckets[1].Ordered()
	require.Len(t, day2, 1)
	assert.Equal(t, "acc-out-1", day2[0].ID.String())

	unscheduled := buckets[2].Ordered()
	require.Len(t, unscheduled, 1)
	assert.Equal(t, "t-1", unscheduled[0].ID.String())
}

func TestComputeDayBucketsCoverage(t *testing.T) {
	ev, snap := twoDaySnapshot()
	snap.Meals = []model.Meal{
		{ID: 1, EventID: 1, Name: "Dinner", Schedule: "2024-06-01T19:00"},
	}
	// Scheduled outside the event's nominal span: the implied day gets its
	// own bucket.
	snap.Others = []model.OtherEntry{
		{ID: 1, EventID: 1, Name: "Gear return", Schedule: "2024-06-05T09:00"},
	}

	buckets := ComputeDayBuckets(ev, snap)
	require.Equal(t,
		[]string{"2024-06-01", "2024-06-02", "2024-06-05", timekey.UnscheduledKey},
		bucketKeys(buckets))

	// Every projected entry lands in exactly one bucket.
	seen := make(map[string]int)
	total := 0
	for i := range buckets {
		for _, e := range buckets[i].Ordered() {
			seen[e.ID.String()]++
			total++
		}
	}
	assert.Equal(t, 6, total) // activity, transport, acc-in, acc-out, meal, other
	for id, count := range seen {
		assert.Equal(t, 1, count, "entry %s", id)
	}
}

func TestComputeDayBucketsNoUnscheduled(t *testing.T) {
	ev, snap := twoDaySnapshot()
	snap.Transports[0].Schedule = "2024-06-01T08:00"

	buckets := ComputeDayBuckets(ev, snap)
	assert.Equal(t, []string{"2024-06-01", "2024-06-02"}, bucketKeys(buckets))
}

func TestComputeDayBucketsDeterministic(t *testing.T) {
	ev, snap := twoDaySnapshot()
	first := ComputeDayBuckets(ev, snap)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ComputeDayBuckets(ev, snap))
	}
}

func TestComputeDayBucketsBlankEventStart(t *testing.T) {
	ev := model.Event{ID: 1, Name: "Draft event"}
	snap := &Snapshot{
		Event: ev,
		Meals: []model.Meal{{ID: 1, EventID: 1, Name: "Dinner", Schedule: "2024-06-03T19:00"}},
	}

	buckets := ComputeDayBuckets(ev, snap)
	assert.Equal(t, []string{"2024-06-03"}, bucketKeys(buckets))
}
