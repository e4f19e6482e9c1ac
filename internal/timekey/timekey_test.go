package timekey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDateKeyOf(t *testing.T) {
	testCases := []struct {
		name     string
		instant  string
		expected string
	}{
		{name: "valid instant", instant: "2024-06-01T10:00", expected: "2024-06-01"},
		{name: "midnight", instant: "2024-06-02T00:00", expected: "2024-06-02"},
		{name: "blank", instant: "", expected: ""},
		{name: "malformed", instant: "yesterday-ish", expected: ""},
		{name: "date only", instant: "2024-06-01", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DateKeyOf(tc.instant))
		})
	}
}

func TestTimeOfDayOf(t *testing.T) {
	h, m, ok := TimeOfDayOf("2024-06-01T09:45")
	assert.True(t, ok)
	assert.Equal(t, 9, h)
	assert.Equal(t, 45, m)

	_, _, ok = TimeOfDayOf("")
	assert.False(t, ok)
}

func TestMinutesOf(t *testing.T) {
	assert.Equal(t, 600, MinutesOf("2024-06-01T10:00"))
	assert.Equal(t, 0, MinutesOf("2024-06-01T00:00"))
	assert.Equal(t, 1439, MinutesOf("2024-06-01T23:59"))
	assert.Equal(t, Unscheduled, MinutesOf(""))
	assert.Equal(t, Unscheduled, MinutesOf("not a time"))
}

func TestBuildInstant(t *testing.T) {
	assert.Equal(t, "2024-06-01T12:30", BuildInstant("2024-06-01", 750))
	assert.Equal(t, "2024-06-01T00:00", BuildInstant("2024-06-01", 0))
	// Minutes beyond the day roll over; callers clamp when they need to stay
	// within the day.
	assert.Equal(t, "2024-06-02T00:30", BuildInstant("2024-06-01", 1470))
	assert.Equal(t, "", BuildInstant("nonsense", 600))
}

func TestRoundTrip(t *testing.T) {
	// Decomposing an instant and rebuilding it must reproduce the same
	// wall-clock day and minute.
	instants := []string{"2024-06-01T10:00", "2024-12-31T23:59", "2025-01-01T00:00"}
	for _, instant := range instants {
		rebuilt := BuildInstant(DateKeyOf(instant), MinutesOf(instant))
		assert.Equal(t, instant, rebuilt)
	}
}

func TestClampMinutes(t *testing.T) {
	assert.Equal(t, 0, ClampMinutes(-10))
	assert.Equal(t, 0, ClampMinutes(0))
	assert.Equal(t, 720, ClampMinutes(720))
	assert.Equal(t, 1439, ClampMinutes(1439))
	assert.Equal(t, 1439, ClampMinutes(2000))
}

func TestDayLabel(t *testing.T) {
	assert.Equal(t, "Saturday 1 Jun", DayLabel("2024-06-01"))
	assert.Equal(t, "Unscheduled", DayLabel(UnscheduledKey))
	assert.Equal(t, "garbage", DayLabel("garbage"))
}

func TestValidDayKey(t *testing.T) {
	assert.True(t, ValidDayKey("2024-06-01"))
	assert.False(t, ValidDayKey("2024-6-1"))
	assert.False(t, ValidDayKey(UnscheduledKey))
	assert.False(t, ValidDayKey(""))
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:00", FormatClock(540))
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "23:59", FormatClock(1439))
	assert.Equal(t, "", FormatClock(Unscheduled))
}
