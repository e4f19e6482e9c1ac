package schedule

import (
	"sort"
	"time"

	"eventplanner-backend/internal/model"
	"eventplanner-backend/internal/timekey"
)

// DayBucket holds the schedule entries of one calendar day, split per source
// kind. Buckets are derived on every recomputation; nothing is maintained
// incrementally.
type DayBucket struct {
	Key   string
	Label string

	Activities     []Entry
	Transports     []Entry
	Accommodations []Entry
	Meals          []Entry
	Others         []Entry
}

// Ordered merges the bucket's per-kind lists into the total display order.
func (b *DayBucket) Ordered() []Entry {
	merged := make([]Entry, 0,
		len(b.Activities)+len(b.Transports)+len(b.Accommodations)+len(b.Meals)+len(b.Others))
	merged = append(merged, b.Activities...)
	merged = append(merged, b.Transports...)
	merged = append(merged, b.Accommodations...)
	merged = append(merged, b.Meals...)
	merged = append(merged, b.Others...)
	return OrderEntries(merged)
}

func (b *DayBucket) add(e Entry) {
	switch e.ID.Kind {
	case KindActivity:
		b.Activities = append(b.Activities, e)
	case KindTransport:
		b.Transports = append(b.Transports, e)
	case KindAccommodationIn, KindAccommodationOut, KindAccommodation:
		b.Accommodations = append(b.Accommodations, e)
	case KindMeal:
		b.Meals = append(b.Meals, e)
	case KindOther:
		b.Others = append(b.Others, e)
	}
}

// ComputeDayBuckets produces the ordered day buckets for an event: one per
// calendar day of the event's span, plus any day implied by an entry's own
// instant, plus a trailing Unscheduled bucket iff some entry has no
// resolvable date. Every projected entry lands in exactly one bucket.
func ComputeDayBuckets(ev model.Event, snap *Snapshot) []DayBucket {
	entries := projectSnapshot(snap)

	keys := make(map[string]bool)
	for _, day := range spanDays(ev.Start, ev.End) {
		keys[day] = true
	}
	unscheduled := false
	for _, e := range entries {
		if e.DateKey == "" {
			unscheduled = true
			continue
		}
		keys[e.DateKey] = true
	}

	ordered := make([]string, 0, len(keys))
	for k := range keys {
		ordered = append(ordered, k)
	}
	// Lexicographic is chronological for zero-padded Y-M-D keys.
	sort.Strings(ordered)
	if unscheduled {
		ordered = append(ordered, timekey.UnscheduledKey)
	}

	buckets := make([]DayBucket, len(ordered))
	index := make(map[string]*DayBucket, len(ordered))
	for i, key := range ordered {
		buckets[i] = DayBucket{Key: key, Label: timekey.DayLabel(key)}
		index[key] = &buckets[i]
	}

	for _, e := range entries {
		key := e.DateKey
		if key == "" {
			key = timekey.UnscheduledKey
		}
		index[key].add(e)
	}
	return buckets
}

func projectSnapshot(snap *Snapshot) []Entry {
	loc := NewLocationIndex(snap)

	var entries []Entry
	for _, a := range snap.Activities {
		entries = append(entries, ProjectActivity(a))
	}
	for _, tr := range snap.Transports {
		entries = append(entries, ProjectTransport(tr, loc))
	}
	for _, acc := range snap.Accommodations {
		entries = append(entries, ProjectAccommodation(acc)...)
	}
	for _, m := range snap.Meals {
		entries = append(entries, ProjectMeal(m))
	}
	for _, o := range snap.Others {
		entries = append(entries, ProjectOtherEntry(o))
	}
	return entries
}

// spanDays lists the date keys of the event's inclusive day span. A blank or
// unparseable start yields no span days; a missing end collapses the span to
// the start day.
func spanDays(start, end string) []string {
	startKey := timekey.DateKeyOf(start)
	if startKey == "" {
		return nil
	}
	endKey := timekey.DateKeyOf(end)
	if endKey == "" || endKey < startKey {
		endKey = startKey
	}

	first, _ := time.Parse(timekey.DayLayout, startKey)
	var days []string
	for d := first; ; d = d.AddDate(0, 0, 1) {
		key := d.Format(timekey.DayLayout)
		if key > endKey {
			break
		}
		days = append(days, key)
	}
	return days
}
