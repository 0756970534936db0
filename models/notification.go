package models

import "time"

// Notification is a persisted in-app notification record. A push is also
// attempted over FCM when the recipient has a registered token.
type Notification struct {
	ID          string    `bson:"id" json:"id"`
	RecipientID string    `bson:"recipientId" json:"recipientId"`
	Title       string    `bson:"title" json:"title"`
	Message     string    `bson:"message" json:"message"`
	SessionID   string    `bson:"sessionId,omitempty" json:"sessionId,omitempty"`
	Read        bool      `bson:"read" json:"read"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// BookingEmail carries the details for a booking confirmation email.
type BookingEmail struct {
	RecipientEmail string
	RecipientName  string
	MentorName     string
	StartsAt       time.Time
	DurationMins   int
	FinalPrice     float64
	Topic          string
}
