package ideaRepo

import (
	"context"

	"mentorhub/database"
	"mentorhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// IdeaRepository stores business-idea marketplace posts.
type IdeaRepository interface {
	Create(ctx context.Context, idea *models.Idea) error
	GetByID(ctx context.Context, id string) (*models.Idea, error)
	List(ctx context.Context, category string, limit int64) ([]models.Idea, error)
	Update(ctx context.Context, id, ownerID string, fields map[string]interface{}) error
	Delete(ctx context.Context, id, ownerID string) error
}

type mongoIdeaRepo struct {
	coll *mongo.Collection
}

// NewMongoIdeaRepo constructs a new MongoDB IdeaRepository.
func NewMongoIdeaRepo() IdeaRepository {
	return &mongoIdeaRepo{
		coll: database.DB().Collection("ideas"),
	}
}
