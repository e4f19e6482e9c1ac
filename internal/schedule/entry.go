package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tags the source entity kind of a schedule entry. Accommodations fan
// out into three kinds: one per instant field plus the unscheduled form.
type Kind string

const (
	KindActivity         Kind = "activity"
	KindTransport        Kind = "transport"
	KindAccommodationIn  Kind = "accommodation-in"
	KindAccommodationOut Kind = "accommodation-out"
	KindAccommodation    Kind = "accommodation"
	KindMeal             Kind = "meal"
	KindOther            Kind = "other"
)

var kindPrefixes = map[Kind]string{
	KindActivity:         "i",
	KindTransport:        "t",
	KindAccommodationIn:  "acc-in",
	KindAccommodationOut: "acc-out",
	KindAccommodation:    "acc",
	KindMeal:             "meal",
	KindOther:            "o",
}

// EntryID identifies one schedule entry occurrence: the source entity's
// numeric id plus a kind tag carried as data, not re-parsed out of strings.
// The accommodation sub-kinds select which instant field a reschedule
// targets.
type EntryID struct {
	Kind Kind
	ID   int64
}

// String renders the wire form of the id, e.g. "i-7" or "acc-in-42".
func (id EntryID) String() string {
	prefix, ok := kindPrefixes[id.Kind]
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s-%d", prefix, id.ID)
}

// IsZero reports whether the id is unset.
func (id EntryID) IsZero() bool {
	return id.Kind == "" && id.ID == 0
}

// ParseEntryID parses the wire form of an entry id. The numeric part is the
// suffix after the last dash; the remainder selects the kind.
func ParseEntryID(s string) (EntryID, error) {
	i := strings.LastIndex(s, "-")
	if i <= 0 || i == len(s)-1 {
		return EntryID{}, fmt.Errorf("malformed entry id %q", s)
	}
	n, err := strconv.ParseInt(s[i+1:], 10, 64)
	if err != nil {
		return EntryID{}, fmt.Errorf("malformed entry id %q: %w", s, err)
	}
	prefix := s[:i]
	for kind, p := range kindPrefixes {
		if p == prefix {
			return EntryID{Kind: kind, ID: n}, nil
		}
	}
	return EntryID{}, fmt.Errorf("unknown entry id prefix %q", prefix)
}

// Entry is the uniform per-occurrence representation of any schedulable item.
// SortValue is minutes since midnight, or timekey.Unscheduled when the entry
// has no time.
type Entry struct {
	ID       EntryID
	Title    string
	Subtitle string

	// Schedule is the raw persisted instant the entry was projected from;
	// blank for unscheduled entries.
	Schedule  string
	DateKey   string
	SortValue int

	// Ready reports the per-kind completeness predicate.
	Ready bool
	// MissingCoordinates flags entries whose record lacks coordinates.
	MissingCoordinates bool
}
