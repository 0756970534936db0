package booking

import (
	"fmt"
	"sort"
	"time"

	"mentorhub/models"
)

// SlotStepMinutes is the bookable grid granularity.
const SlotStepMinutes = 30

// parseClock parses an "HH:MM" wall-clock string into hour and minute.
func parseClock(s string) (hour, minute int, err error) {
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return 0, 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	return hour, minute, nil
}

// clockToMinutes converts an "HH:MM" string to minutes from midnight.
func clockToMinutes(s string) (int, error) {
	h, m, err := parseClock(s)
	if err != nil {
		return 0, err
	}
	return h*60 + m, nil
}

func formatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// ValidateWindow checks a weekly window's fields: day range, parseable
// times, and start < end whenever the window is marked available.
func ValidateWindow(w models.WeeklyAvailabilityWindow) error {
	if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
		return fmt.Errorf("dayOfWeek %d out of range", w.DayOfWeek)
	}
	start, err := clockToMinutes(w.StartTime)
	if err != nil {
		return err
	}
	end, err := clockToMinutes(w.EndTime)
	if err != nil {
		return err
	}
	if w.IsAvailable && start >= end {
		return fmt.Errorf("window start %s must be before end %s", w.StartTime, w.EndTime)
	}
	return nil
}

// SlotGrid produces the ordered, de-duplicated bookable start-times for the
// given calendar date from the mentor's weekly windows. Only windows whose
// DayOfWeek matches the date (and with IsAvailable set) contribute. Each
// window is stepped in 30-minute increments from its start, emitting starts
// strictly before the window end. Overlapping windows union; the result is
// sorted ascending. Pure function of its inputs.
func SlotGrid(date time.Time, windows []models.WeeklyAvailabilityWindow) []string {
	day := int(date.Weekday())

	seen := make(map[string]bool)
	var slots []string
	for _, w := range windows {
		if w.DayOfWeek != day || !w.IsAvailable {
			continue
		}
		h, m, err := parseClock(w.StartTime)
		if err != nil {
			continue
		}
		endMins, err := clockToMinutes(w.EndTime)
		if err != nil {
			continue
		}
		for h*60+m < endMins {
			s := formatClock(h, m)
			if !seen[s] {
				seen[s] = true
				slots = append(slots, s)
			}
			m += SlotStepMinutes
			if m >= 60 {
				m -= 60
				h++
			}
		}
	}

	sort.Strings(slots)
	return slots
}
