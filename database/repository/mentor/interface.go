package mentorRepo

import (
	"context"

	"mentorhub/database"
	"mentorhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// MentorRepository stores mentor profiles.
type MentorRepository interface {
	Create(ctx context.Context, mentor *models.Mentor) error
	GetByID(ctx context.Context, id string) (*models.Mentor, error)
	GetByEmail(ctx context.Context, email string) (*models.Mentor, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	ListByExpertise(ctx context.Context, expertise string, limit int64) ([]models.Mentor, error)
}

type mongoMentorRepo struct {
	coll *mongo.Collection
}

// NewMongoMentorRepo constructs a new MongoDB MentorRepository.
func NewMongoMentorRepo() MentorRepository {
	return &mongoMentorRepo{
		coll: database.DB().Collection("mentors"),
	}
}
