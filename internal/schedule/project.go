package schedule

import (
	"fmt"
	"strings"

	"eventplanner-backend/internal/model"
	"eventplanner-backend/internal/timekey"
)

// LocationIndex resolves free-text location names to coordinates by matching
// against the names of accommodations, airfields, other entries and
// activities. Matching is case-insensitive with prefix fallback in either
// direction; only records that carry coordinates are resolvable.
type LocationIndex struct {
	byName map[string]string
}

// NewLocationIndex builds the lookup from a snapshot's collections.
func NewLocationIndex(snap *Snapshot) *LocationIndex {
	idx := &LocationIndex{byName: make(map[string]string)}
	for _, acc := range snap.Accommodations {
		idx.add(acc.Name, acc.Coordinates)
	}
	for _, af := range snap.Airfields {
		idx.add(af.Name, af.Coordinates)
	}
	for _, o := range snap.Others {
		idx.add(o.Name, o.Coordinates)
	}
	for _, a := range snap.Activities {
		idx.add(a.Name, a.Coordinates)
	}
	return idx
}

func (idx *LocationIndex) add(name, coords string) {
	key := normalizeLocation(name)
	if key == "" || coords == "" {
		return
	}
	if _, exists := idx.byName[key]; !exists {
		idx.byName[key] = coords
	}
}

// Resolve returns the coordinates matched to a location name.
func (idx *LocationIndex) Resolve(name string) (string, bool) {
	key := normalizeLocation(name)
	if key == "" {
		return "", false
	}
	if coords, ok := idx.byName[key]; ok {
		return coords, true
	}
	for candidate, coords := range idx.byName {
		if strings.HasPrefix(candidate, key) || strings.HasPrefix(key, candidate) {
			return coords, true
		}
	}
	return "", false
}

func normalizeLocation(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ActivityReady is the completeness predicate for activities: the planning
// fields a jumpable activity must have filled in.
func ActivityReady(a model.Activity) bool {
	return a.Name != "" &&
		a.Schedule != "" &&
		a.Coordinates != "" &&
		a.Elevation > 0 &&
		a.LandingArea != ""
}

// ProjectActivity maps an activity record to its schedule entry.
func ProjectActivity(a model.Activity) Entry {
	return Entry{
		ID:                 EntryID{Kind: KindActivity, ID: a.ID},
		Title:              fmt.Sprintf("%d. %s", a.Seq, a.Name),
		Subtitle:           a.LandingArea,
		Schedule:           a.Schedule,
		DateKey:            timekey.DateKeyOf(a.Schedule),
		SortValue:          timekey.MinutesOf(a.Schedule),
		Ready:              ActivityReady(a),
		MissingCoordinates: a.Coordinates == "",
	}
}

// ProjectTransport maps a transport record to its schedule entry. A route is
// complete only when both endpoint names resolve to known coordinates, not
// merely when the strings are present.
func ProjectTransport(tr model.Transport, loc *LocationIndex) Entry {
	_, pickupOK := loc.Resolve(tr.Pickup)
	_, destOK := loc.Resolve(tr.Destination)
	ready := strings.TrimSpace(tr.Pickup) != "" &&
		strings.TrimSpace(tr.Destination) != "" &&
		pickupOK && destOK &&
		tr.Schedule != "" &&
		tr.Passengers >= 0 &&
		len(tr.Vehicles) > 0

	return Entry{
		ID:                 EntryID{Kind: KindTransport, ID: tr.ID},
		Title:              fmt.Sprintf("%s → %s", tr.Pickup, tr.Destination),
		Subtitle:           fmt.Sprintf("%d pax", tr.Passengers),
		Schedule:           tr.Schedule,
		DateKey:            timekey.DateKeyOf(tr.Schedule),
		SortValue:          timekey.MinutesOf(tr.Schedule),
		Ready:              ready,
		MissingCoordinates: !pickupOK || !destOK,
	}
}

// ProjectAccommodation fans an accommodation out into its schedule entries:
// one per set instant field, or a single unscheduled entry when neither
// check-in nor check-out is set.
func ProjectAccommodation(acc model.Accommodation) []Entry {
	ready := acc.Name != "" && acc.Booked
	missingCoords := acc.Coordinates == ""

	var entries []Entry
	if acc.CheckIn != "" {
		entries = append(entries, Entry{
			ID:                 EntryID{Kind: KindAccommodationIn, ID: acc.ID},
			Title:              acc.Name,
			Subtitle:           "Check-in",
			Schedule:           acc.CheckIn,
			DateKey:            timekey.DateKeyOf(acc.CheckIn),
			SortValue:          timekey.MinutesOf(acc.CheckIn),
			Ready:              ready,
			MissingCoordinates: missingCoords,
		})
	}
	if acc.CheckOut != "" {
		entries = append(entries, Entry{
			ID:                 EntryID{Kind: KindAccommodationOut, ID: acc.ID},
			Title:              acc.Name,
			Subtitle:           "Check-out",
			Schedule:           acc.CheckOut,
			DateKey:            timekey.DateKeyOf(acc.CheckOut),
			SortValue:          timekey.MinutesOf(acc.CheckOut),
			Ready:              ready,
			MissingCoordinates: missingCoords,
		})
	}
	if len(entries) == 0 {
		entries = append(entries, Entry{
			ID:                 EntryID{Kind: KindAccommodation, ID: acc.ID},
			Title:              acc.Name,
			SortValue:          timekey.Unscheduled,
			Ready:              ready,
			MissingCoordinates: missingCoords,
		})
	}
	return entries
}

// ProjectMeal maps a meal record to its schedule entry.
func ProjectMeal(m model.Meal) Entry {
	return Entry{
		ID:        EntryID{Kind: KindMeal, ID: m.ID},
		Title:     m.Name,
		Subtitle:  m.Location,
		Schedule:  m.Schedule,
		DateKey:   timekey.DateKeyOf(m.Schedule),
		SortValue: timekey.MinutesOf(m.Schedule),
		Ready:     m.Name != "" && m.Location != "" && m.Schedule != "",
	}
}

// ProjectOtherEntry maps a miscellaneous logistics record to its schedule
// entry.
func ProjectOtherEntry(o model.OtherEntry) Entry {
	return Entry{
		ID:                 EntryID{Kind: KindOther, ID: o.ID},
		Title:              o.Name,
		Subtitle:           o.Description,
		Schedule:           o.Schedule,
		DateKey:            timekey.DateKeyOf(o.Schedule),
		SortValue:          timekey.MinutesOf(o.Schedule),
		Ready:              o.Name != "" && o.Coordinates != "" && o.Schedule != "",
		MissingCoordinates: o.Coordinates == "",
	}
}
