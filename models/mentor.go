package models

import "time"

// Mentor represents a mentor profile on the marketplace.
type Mentor struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Bio          string    `bson:"bio,omitempty" json:"bio,omitempty"`
	Expertise    []string  `bson:"expertise,omitempty" json:"expertise,omitempty"`
	Company      string    `bson:"company,omitempty" json:"company,omitempty"`
	Title        string    `bson:"title,omitempty" json:"title,omitempty"`
	HourlyRate   float64   `bson:"hourlyRate" json:"hourlyRate"`
	Rating       float64   `bson:"rating,omitempty" json:"rating,omitempty"`
	FCMToken     string    `bson:"fcmToken,omitempty" json:"-"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// MentorRegistration defines the payload for mentor sign-up.
type MentorRegistration struct {
	Name       string   `json:"name" binding:"required"`
	Email      string   `json:"email" binding:"required,email"`
	Password   string   `json:"password" binding:"required,min=8"`
	Bio        string   `json:"bio"`
	Expertise  []string `json:"expertise"`
	HourlyRate float64  `json:"hourlyRate" binding:"required,gt=0"`
}
