package models

import "time"

// Idea is a business-idea post on the marketplace.
type Idea struct {
	ID          string    `bson:"id" json:"id"`
	OwnerID     string    `bson:"ownerId" json:"ownerId"`
	Title       string    `bson:"title" json:"title"`
	Summary     string    `bson:"summary" json:"summary"`
	Category    string    `bson:"category,omitempty" json:"category,omitempty"`
	Stage       string    `bson:"stage,omitempty" json:"stage,omitempty"` // e.g. "concept", "mvp", "revenue"
	LookingFor  []string  `bson:"lookingFor,omitempty" json:"lookingFor,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
