// Package timekey is the single source of truth for converting between the
// persisted instant representation and the day-key / time-of-day pairs the
// scheduler reasons about. Instants are stored as event-local wall-clock
// strings; a blank or malformed value means "unscheduled".
package timekey

import (
	"math"
	"time"
)

const (
	// InstantLayout is the canonical persisted instant representation.
	InstantLayout = "2006-01-02T15:04"
	// DayLayout is the date-only bucket key derived from an instant.
	DayLayout = "2006-01-02"

	// UnscheduledKey is the sentinel bucket key for entries without a
	// resolvable date. It sorts after every zero-padded Y-M-D key.
	UnscheduledKey = "unscheduled"
)

// Unscheduled is the sort value of an entry without a time. It must order
// after every real minutes-since-midnight value.
const Unscheduled = math.MaxInt

// Parse parses a persisted instant. ok is false for blank or malformed input.
func Parse(instant string) (time.Time, bool) {
	if instant == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(InstantLayout, instant)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DateKeyOf extracts the date-only bucket key from an instant. It returns ""
// for blank or unparseable input.
func DateKeyOf(instant string) string {
	t, ok := Parse(instant)
	if !ok {
		return ""
	}
	return t.Format(DayLayout)
}

// TimeOfDayOf extracts the hour and minute of an instant.
func TimeOfDayOf(instant string) (hour, minute int, ok bool) {
	t, parsed := Parse(instant)
	if !parsed {
		return 0, 0, false
	}
	return t.Hour(), t.Minute(), true
}

// MinutesOf returns the instant's minutes since midnight, or Unscheduled for
// blank or unparseable input.
func MinutesOf(instant string) int {
	h, m, ok := TimeOfDayOf(instant)
	if !ok {
		return Unscheduled
	}
	return h*60 + m
}

// BuildInstant constructs an instant from a day key and minutes since
// midnight. Minutes beyond 1439 roll into the following day; callers that
// need to stay within the day clamp first. An unparseable day key yields "".
func BuildInstant(dayKey string, minutes int) string {
	day, err := time.Parse(DayLayout, dayKey)
	if err != nil {
		return ""
	}
	return day.Add(time.Duration(minutes) * time.Minute).Format(InstantLayout)
}

// ValidDayKey reports whether key is a well-formed date-only bucket key.
func ValidDayKey(key string) bool {
	_, err := time.Parse(DayLayout, key)
	return err == nil
}

// ClampMinutes clamps a minutes-since-midnight value to [0, 1439].
func ClampMinutes(minutes int) int {
	if minutes < 0 {
		return 0
	}
	if minutes > 1439 {
		return 1439
	}
	return minutes
}

// DayLabel renders a bucket key for display.
func DayLabel(key string) string {
	if key == UnscheduledKey {
		return "Unscheduled"
	}
	day, err := time.Parse(DayLayout, key)
	if err != nil {
		return key
	}
	return day.Format("Monday 2 Jan")
}

// FormatClock renders minutes since midnight as HH:MM. Unscheduled renders
// as the empty string.
func FormatClock(minutes int) string {
	if minutes == Unscheduled || minutes < 0 {
		return ""
	}
	return time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC).
		Add(time.Duration(minutes) * time.Minute).Format("15:04")
}
