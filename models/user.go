package models

import "time"

// User represents a mentee account.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Interests    []string  `bson:"interests,omitempty" json:"interests,omitempty"`
	Goals        string    `bson:"goals,omitempty" json:"goals,omitempty"`
	FCMToken     string    `bson:"fcmToken,omitempty" json:"-"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// UserRegistration defines the payload for mentee sign-up.
type UserRegistration struct {
	Name      string   `json:"name" binding:"required"`
	Email     string   `json:"email" binding:"required,email"`
	Password  string   `json:"password" binding:"required,min=8"`
	Interests []string `json:"interests"`
}

// AuthRequest defines the payload for login.
type AuthRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries a freshly minted token.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}
