package seminarRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mentorhub/models"
)

func (r *mongoSeminarRepo) Create(ctx context.Context, seminar *models.Seminar) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if seminar.ID == "" {
		seminar.ID = uuid.New().String()
	}
	if seminar.Status == "" {
		seminar.Status = models.SeminarStatusScheduled
	}
	seminar.CreatedAt = time.Now()
	_, err := r.coll.InsertOne(ctx, seminar)
	return err
}

func (r *mongoSeminarRepo) GetByID(ctx context.Context, id string) (*models.Seminar, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var seminar models.Seminar
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&seminar); err != nil {
		return nil, err
	}
	return &seminar, nil
}

func (r *mongoSeminarRepo) ListUpcoming(ctx context.Context, limit int64) ([]models.Seminar, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"status":   models.SeminarStatusScheduled,
		"startsAt": bson.M{"$gte": time.Now()},
	}
	opts := options.Find().SetSort(bson.M{"startsAt": 1})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var seminars []models.Seminar
	if err := cursor.All(ctx, &seminars); err != nil {
		return nil, err
	}
	return seminars, nil
}

func (r *mongoSeminarRepo) ListByMentor(ctx context.Context, mentorID string) ([]models.Seminar, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"mentorId": mentorID}, options.Find().SetSort(bson.M{"startsAt": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var seminars []models.Seminar
	if err := cursor.All(ctx, &seminars); err != nil {
		return nil, err
	}
	return seminars, nil
}

func (r *mongoSeminarRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// AddRegistrant pushes the mentee onto the registration list with a
// capacity-guarded filter so the append and the capacity check are one
// atomic update.
func (r *mongoSeminarRepo) AddRegistrant(ctx context.Context, seminarID, menteeID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":         seminarID,
		"status":     models.SeminarStatusScheduled,
		"registered": bson.M{"$ne": menteeID},
		"$expr": bson.M{"$lt": bson.A{
			bson.M{"$size": bson.M{"$ifNull": bson.A{"$registered", bson.A{}}}},
			"$capacity",
		}},
	}
	update := bson.M{"$push": bson.M{"registered": menteeID}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
