package availabilityRepo

import (
	"context"

	"mentorhub/database"
	"mentorhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AvailabilityRepository stores mentors' weekly recurring windows. The
// booking core only reads; writes come from mentor profile management.
type AvailabilityRepository interface {
	GetWeeklyAvailability(ctx context.Context, mentorID string) ([]models.WeeklyAvailabilityWindow, error)
	ReplaceForDay(ctx context.Context, mentorID string, dayOfWeek int, windows []models.WeeklyAvailabilityWindow) error
	DeleteForDay(ctx context.Context, mentorID string, dayOfWeek int) error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	return &mongoAvailabilityRepo{
		coll: database.DB().Collection("availability_windows"),
	}
}
