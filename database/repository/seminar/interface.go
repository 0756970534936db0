package seminarRepo

import (
	"context"

	"mentorhub/database"
	"mentorhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SeminarRepository stores public seminars.
type SeminarRepository interface {
	Create(ctx context.Context, seminar *models.Seminar) error
	GetByID(ctx context.Context, id string) (*models.Seminar, error)
	ListUpcoming(ctx context.Context, limit int64) ([]models.Seminar, error)
	ListByMentor(ctx context.Context, mentorID string) ([]models.Seminar, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	// AddRegistrant appends a mentee to the registration list only while
	// capacity remains; returns mongo.ErrNoDocuments when full or missing.
	AddRegistrant(ctx context.Context, seminarID, menteeID string) error
}

type mongoSeminarRepo struct {
	coll *mongo.Collection
}

// NewMongoSeminarRepo constructs a new MongoDB SeminarRepository.
func NewMongoSeminarRepo() SeminarRepository {
	return &mongoSeminarRepo{
		coll: database.DB().Collection("seminars"),
	}
}
