package models

// BookingCandidate is a not-yet-persisted booking request awaiting
// validation. It is consumed once by the booking engine and never mutated.
type BookingCandidate struct {
	MentorID        string `json:"mentorId" binding:"required"`
	MenteeID        string `json:"menteeId"`
	RequestedDate   string `json:"requestedDate" binding:"required"` // "2006-01-02"
	RequestedTime   string `json:"requestedTime" binding:"required"` // "15:04"
	DurationMinutes int    `json:"durationMinutes" binding:"required"`
	Topic           string `json:"topic,omitempty"`
}

// PricingResult holds the computed price split for a session.
type PricingResult struct {
	BasePrice      float64 `json:"basePrice"`
	PlatformFee    float64 `json:"platformFee"`
	CommissionRate float64 `json:"commissionRate"`
	FinalPrice     float64 `json:"finalPrice"`
}
