package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorhub/models"
)

// 2026-03-02 is a Monday.
var monday = time.Date(2026, time.March, 2, 0, 0, 0, 0, time.Local)

func window(day int, start, end string) models.WeeklyAvailabilityWindow {
	return models.WeeklyAvailabilityWindow{
		MentorID:    "mentor-1",
		DayOfWeek:   day,
		StartTime:   start,
		EndTime:     end,
		IsAvailable: true,
	}
}

func TestSlotGridSingleWindow(t *testing.T) {
	windows := []models.WeeklyAvailabilityWindow{window(1, "09:00", "10:00")}

	got := SlotGrid(monday, windows)
	assert.Equal(t, []string{"09:00", "09:30"}, got)
}

func TestSlotGridHourRollover(t *testing.T) {
	windows := []models.WeeklyAvailabilityWindow{window(1, "09:30", "11:00")}

	got := SlotGrid(monday, windows)
	assert.Equal(t, []string{"09:30", "10:00", "10:30"}, got)
}

func TestSlotGridSkipsOtherDaysAndUnavailable(t *testing.T) {
	off := window(1, "13:00", "14:00")
	off.IsAvailable = false

	windows := []models.WeeklyAvailabilityWindow{
		window(2, "09:00", "17:00"), // Tuesday, wrong day
		off,
	}

	got := SlotGrid(monday, windows)
	assert.Empty(t, got)
}

func TestSlotGridUnionSortedDeduped(t *testing.T) {
	windows := []models.WeeklyAvailabilityWindow{
		window(1, "10:00", "11:00"),
		window(1, "09:00", "10:30"), // overlaps the first
	}

	got := SlotGrid(monday, windows)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, got)
}

func TestSlotGridNoWindows(t *testing.T) {
	assert.Empty(t, SlotGrid(monday, nil))
}

func TestSlotGridSkipsMalformedWindow(t *testing.T) {
	windows := []models.WeeklyAvailabilityWindow{
		window(1, "not-a-time", "10:00"),
		window(1, "14:00", "15:00"),
	}

	got := SlotGrid(monday, windows)
	assert.Equal(t, []string{"14:00", "14:30"}, got)
}

// SlotGrid is a pure function: repeated calls agree and inputs are untouched.
func TestSlotGridIsPure(t *testing.T) {
	windows := []models.WeeklyAvailabilityWindow{
		window(1, "09:00", "10:00"),
		window(1, "16:00", "17:00"),
	}
	before := make([]models.WeeklyAvailabilityWindow, len(windows))
	copy(before, windows)

	first := SlotGrid(monday, windows)
	second := SlotGrid(monday, windows)

	assert.Equal(t, first, second)
	assert.Equal(t, before, windows)
}

func TestParseClock(t *testing.T) {
	h, m, err := parseClock("09:05")
	require.NoError(t, err)
	assert.Equal(t, 9, h)
	assert.Equal(t, 5, m)

	for _, bad := range []string{"", "abc", "25:00", "12:60", "-1:30"} {
		_, _, err := parseClock(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestValidateWindow(t *testing.T) {
	assert.NoError(t, ValidateWindow(window(1, "09:00", "17:00")))

	assert.Error(t, ValidateWindow(window(7, "09:00", "17:00")))
	assert.Error(t, ValidateWindow(window(1, "xx", "17:00")))
	assert.Error(t, ValidateWindow(window(1, "09:00", "yy")))
	assert.Error(t, ValidateWindow(window(1, "17:00", "09:00")))
	assert.Error(t, ValidateWindow(window(1, "09:00", "09:00")))

	// Unavailable windows skip the ordering check.
	off := window(1, "17:00", "09:00")
	off.IsAvailable = false
	assert.NoError(t, ValidateWindow(off))
}
