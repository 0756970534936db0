package models

import "time"

// Session statuses. Only requested, confirmed and in_progress sessions
// participate in conflict detection.
const (
	SessionStatusRequested  = "requested"
	SessionStatusConfirmed  = "confirmed"
	SessionStatusInProgress = "in_progress"
	SessionStatusCompleted  = "completed"
	SessionStatusCancelled  = "cancelled"
	SessionStatusNoShow     = "no_show"
)

// ActiveSessionStatuses lists the statuses that block new bookings.
var ActiveSessionStatuses = []string{
	SessionStatusRequested,
	SessionStatusConfirmed,
	SessionStatusInProgress,
}

// ScheduledSession represents a booked mentorship session.
type ScheduledSession struct {
	ID              string    `bson:"id" json:"id"`
	MentorID        string    `bson:"mentorId" json:"mentorId"`
	MenteeID        string    `bson:"menteeId" json:"menteeId"`
	Topic           string    `bson:"topic,omitempty" json:"topic,omitempty"`
	ScheduledStart  time.Time `bson:"scheduledStart" json:"scheduledStart"`
	ScheduledEnd    time.Time `bson:"scheduledEnd" json:"scheduledEnd"`
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
	Status          string    `bson:"status" json:"status"`
	BasePrice       float64   `bson:"basePrice" json:"basePrice"`
	PlatformFee     float64   `bson:"platformFee" json:"platformFee"`
	CommissionRate  float64   `bson:"commissionRate" json:"commissionRate"`
	FinalPrice      float64   `bson:"finalPrice" json:"finalPrice"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// IsActive reports whether the session still blocks other bookings.
func (s ScheduledSession) IsActive() bool {
	switch s.Status {
	case SessionStatusRequested, SessionStatusConfirmed, SessionStatusInProgress:
		return true
	}
	return false
}
