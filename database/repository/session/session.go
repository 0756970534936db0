package sessionRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"mentorhub/models"
)

func activeStatusFilter() bson.M {
	return bson.M{"$in": models.ActiveSessionStatuses}
}

func (r *mongoSessionRepo) GetActiveSessions(ctx context.Context, mentorID string) ([]models.ScheduledSession, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"mentorId": mentorID, "status": activeStatusFilter()}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []models.ScheduledSession
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// Create inserts the session after re-checking for overlap against active
// sessions in the same write path. The booking engine has already run its own
// conflict pass; this second check narrows (but does not fully close, absent a
// unique index on the interval) the read-then-write window between two
// concurrent bookings.
func (r *mongoSessionRepo) Create(ctx context.Context, session *models.ScheduledSession) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if session.ID == "" {
		session.ID = uuid.New().String()
	}

	overlapFilter := bson.M{
		"mentorId": session.MentorID,
		"status":   activeStatusFilter(),
		// half-open overlap: existing.start < candidate.end AND existing.end > candidate.start
		"scheduledStart": bson.M{"$lt": session.ScheduledEnd},
		"scheduledEnd":   bson.M{"$gt": session.ScheduledStart},
	}

	sess, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		n, err := r.coll.CountDocuments(sc, overlapFilter)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			return nil, ErrSlotTaken
		}
		return r.coll.InsertOne(sc, session)
	})
	return err
}

func (r *mongoSessionRepo) GetByID(ctx context.Context, sessionID string) (*models.ScheduledSession, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var session models.ScheduledSession
	if err := r.coll.FindOne(ctx, bson.M{"id": sessionID}).Decode(&session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *mongoSessionRepo) ListByMentor(ctx context.Context, mentorID string) ([]models.ScheduledSession, error) {
	return r.list(ctx, bson.M{"mentorId": mentorID})
}

func (r *mongoSessionRepo) ListByMentee(ctx context.Context, menteeID string) ([]models.ScheduledSession, error) {
	return r.list(ctx, bson.M{"menteeId": menteeID})
}

func (r *mongoSessionRepo) list(ctx context.Context, filter bson.M) ([]models.ScheduledSession, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []models.ScheduledSession
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *mongoSessionRepo) UpdateStatus(ctx context.Context, sessionID, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": sessionID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoSessionRepo) ListStartingBetween(ctx context.Context, from, to time.Time) ([]models.ScheduledSession, error) {
	return r.list(ctx, bson.M{
		"status":         activeStatusFilter(),
		"scheduledStart": bson.M{"$gte": from, "$lt": to},
	})
}
