package mentor

import (
	"context"
	"time"

	availabilityRepo "mentorhub/database/repository/availability"
	mentorRepo "mentorhub/database/repository/mentor"
	"mentorhub/models"
)

// MentorService manages mentor accounts, profiles and weekly availability.
type MentorService interface {
	Register(ctx context.Context, reg models.MentorRegistration) (*models.Mentor, string, error)
	Authenticate(ctx context.Context, email, password string) (*models.Mentor, string, error)
	GetByID(ctx context.Context, id string) (*models.Mentor, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Mentor, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, expertise string, limit int64) ([]models.Mentor, error)
	SetAvailability(ctx context.Context, mentorID string, req models.SetAvailabilityRequest) error
	GetAvailability(ctx context.Context, mentorID string) ([]models.WeeklyAvailabilityWindow, error)
}

// TokenCache stores hashed auth tokens; a missing entry means the token was
// revoked. Backed by the redis auth DB in production.
type TokenCache interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// DefaultMentorService implements MentorService.
type DefaultMentorService struct {
	Repo         mentorRepo.MentorRepository
	Availability availabilityRepo.AvailabilityRepository
	Tokens       TokenCache
}
