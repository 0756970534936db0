package models

import "time"

// Seminar statuses.
const (
	SeminarStatusScheduled = "scheduled"
	SeminarStatusCancelled = "cancelled"
	SeminarStatusCompleted = "completed"
)

// Seminar is a public group session hosted by a mentor.
type Seminar struct {
	ID           string    `bson:"id" json:"id"`
	MentorID     string    `bson:"mentorId" json:"mentorId"`
	Title        string    `bson:"title" json:"title"`
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
	Topic        string    `bson:"topic,omitempty" json:"topic,omitempty"`
	StartsAt     time.Time `bson:"startsAt" json:"startsAt"`
	DurationMins int       `bson:"durationMins" json:"durationMins"`
	Capacity     int       `bson:"capacity" json:"capacity"`
	Registered   []string  `bson:"registered,omitempty" json:"registered,omitempty"` // mentee IDs
	Status       string    `bson:"status" json:"status"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
