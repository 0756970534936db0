package sessionRepo

import (
	"context"
	"errors"
	"time"

	"mentorhub/database"
	"mentorhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotTaken is returned by Create when the write-side conflict re-check
// finds an active session overlapping the one being inserted.
var ErrSlotTaken = errors.New("session slot already taken")

// SessionRepository stores scheduled mentorship sessions.
type SessionRepository interface {
	// GetActiveSessions returns the mentor's sessions whose status still
	// blocks new bookings (requested, confirmed, in_progress).
	GetActiveSessions(ctx context.Context, mentorID string) ([]models.ScheduledSession, error)
	// Create inserts the session, re-checking for overlapping active
	// sessions inside the write. Returns ErrSlotTaken on overlap.
	Create(ctx context.Context, session *models.ScheduledSession) error
	GetByID(ctx context.Context, sessionID string) (*models.ScheduledSession, error)
	ListByMentor(ctx context.Context, mentorID string) ([]models.ScheduledSession, error)
	ListByMentee(ctx context.Context, menteeID string) ([]models.ScheduledSession, error)
	UpdateStatus(ctx context.Context, sessionID, status string) error
	// ListStartingBetween returns active sessions whose start falls in
	// [from, to); used by the reminder worker.
	ListStartingBetween(ctx context.Context, from, to time.Time) ([]models.ScheduledSession, error)
}

type mongoSessionRepo struct {
	coll   *mongo.Collection
	client *mongo.Client
}

// NewMongoSessionRepo constructs a new MongoDB SessionRepository.
func NewMongoSessionRepo() SessionRepository {
	return &mongoSessionRepo{
		coll:   database.DB().Collection("sessions"),
		client: database.MongoClient,
	}
}
