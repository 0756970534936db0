package availabilityRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"mentorhub/models"
)

func (r *mongoAvailabilityRepo) GetWeeklyAvailability(ctx context.Context, mentorID string) ([]models.WeeklyAvailabilityWindow, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"mentorId": mentorID}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var windows []models.WeeklyAvailabilityWindow
	if err := cursor.All(ctx, &windows); err != nil {
		return nil, err
	}
	return windows, nil
}

// ReplaceForDay swaps out all of a mentor's windows for one weekday in a
// delete-then-insert pair. Window IDs are assigned here if missing.
func (r *mongoAvailabilityRepo) ReplaceForDay(ctx context.Context, mentorID string, dayOfWeek int, windows []models.WeeklyAvailabilityWindow) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"mentorId": mentorID, "dayOfWeek": dayOfWeek}); err != nil {
		return err
	}
	if len(windows) == 0 {
		return nil
	}

	docs := make([]interface{}, len(windows))
	for i, w := range windows {
		if w.ID == "" {
			w.ID = uuid.New().String()
		}
		w.MentorID = mentorID
		w.DayOfWeek = dayOfWeek
		docs[i] = w
	}
	_, err := r.coll.InsertMany(ctx, docs)
	return err
}

func (r *mongoAvailabilityRepo) DeleteForDay(ctx context.Context, mentorID string, dayOfWeek int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.DeleteMany(ctx, bson.M{"mentorId": mentorID, "dayOfWeek": dayOfWeek})
	return err
}
