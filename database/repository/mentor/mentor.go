package mentorRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mentorhub/models"
)

func (r *mongoMentorRepo) Create(ctx context.Context, mentor *models.Mentor) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if mentor.ID == "" {
		mentor.ID = uuid.New().String()
	}
	mentor.CreatedAt = time.Now()
	_, err := r.coll.InsertOne(ctx, mentor)
	return err
}

func (r *mongoMentorRepo) GetByID(ctx context.Context, id string) (*models.Mentor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var mentor models.Mentor
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&mentor); err != nil {
		return nil, err
	}
	return &mentor, nil
}

func (r *mongoMentorRepo) GetByEmail(ctx context.Context, email string) (*models.Mentor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var mentor models.Mentor
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mentor); err != nil {
		return nil, err
	}
	return &mentor, nil
}

func (r *mongoMentorRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoMentorRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoMentorRepo) ListByExpertise(ctx context.Context, expertise string, limit int64) ([]models.Mentor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if expertise != "" {
		filter["expertise"] = expertise
	}
	opts := options.Find().SetSort(bson.M{"rating": -1})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var mentors []models.Mentor
	if err := cursor.All(ctx, &mentors); err != nil {
		return nil, err
	}
	return mentors, nil
}
