package booking

import (
	"fmt"
	"time"

	"mentorhub/models"
)

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching boundaries do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// FindConflict returns the first existing session whose interval overlaps
// the candidate interval, considering only sessions whose status still
// blocks bookings. Returns nil when the candidate is clear.
func FindConflict(start, end time.Time, sessions []models.ScheduledSession) *models.ScheduledSession {
	for i := range sessions {
		s := &sessions[i]
		if !s.IsActive() {
			continue
		}
		if Overlaps(start, end, s.ScheduledStart, s.ScheduledEnd) {
			return s
		}
	}
	return nil
}

// WithinAvailability reports whether the candidate start falls inside one of
// the mentor's windows for that weekday. A mentor with no windows at all is
// treated as fully open. Containment is checked on the start side only
// (start <= t < end); the candidate's end is deliberately not compared
// against the window end. The window Timezone field is not consulted; the
// weekday comes from the candidate start's local calendar.
func WithinAvailability(start time.Time, windows []models.WeeklyAvailabilityWindow) bool {
	if len(windows) == 0 {
		return true
	}

	day := int(start.Weekday())
	t := start.Hour()*60 + start.Minute()

	for _, w := range windows {
		if w.DayOfWeek != day || !w.IsAvailable {
			continue
		}
		ws, err := clockToMinutes(w.StartTime)
		if err != nil {
			continue
		}
		we, err := clockToMinutes(w.EndTime)
		if err != nil {
			continue
		}
		if t >= ws && t < we {
			return true
		}
	}
	return false
}

// CheckCandidate applies the conflict checks in order: existing-session
// overlap first, then availability containment. The first failing check
// determines the outcome; nil means the candidate is acceptable.
func CheckCandidate(start, end time.Time, sessions []models.ScheduledSession, windows []models.WeeklyAvailabilityWindow) error {
	if c := FindConflict(start, end, sessions); c != nil {
		return newSlotConflict(fmt.Sprintf(
			"requested slot overlaps an existing session from %s to %s",
			c.ScheduledStart.Format("15:04"), c.ScheduledEnd.Format("15:04"),
		))
	}
	if !WithinAvailability(start, windows) {
		return newOutsideAvailability("requested time is outside the mentor's availability")
	}
	return nil
}
