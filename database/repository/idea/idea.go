package ideaRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mentorhub/models"
)

func (r *mongoIdeaRepo) Create(ctx context.Context, idea *models.Idea) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if idea.ID == "" {
		idea.ID = uuid.New().String()
	}
	idea.CreatedAt = time.Now()
	_, err := r.coll.InsertOne(ctx, idea)
	return err
}

func (r *mongoIdeaRepo) GetByID(ctx context.Context, id string) (*models.Idea, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var idea models.Idea
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&idea); err != nil {
		return nil, err
	}
	return &idea, nil
}

func (r *mongoIdeaRepo) List(ctx context.Context, category string, limit int64) ([]models.Idea, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ideas []models.Idea
	if err := cursor.All(ctx, &ideas); err != nil {
		return nil, err
	}
	return ideas, nil
}

func (r *mongoIdeaRepo) Update(ctx context.Context, id, ownerID string, fields map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id, "ownerId": ownerID}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoIdeaRepo) Delete(ctx context.Context, id, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "ownerId": ownerID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
