package mentor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"mentorhub/models"
)

type fakeMentorRepo struct {
	mentors map[string]*models.Mentor
	updates map[string]interface{}
}

func (f *fakeMentorRepo) Create(_ context.Context, _ *models.Mentor) error { return nil }

func (f *fakeMentorRepo) GetByID(_ context.Context, id string) (*models.Mentor, error) {
	if m, ok := f.mentors[id]; ok {
		return m, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeMentorRepo) GetByEmail(_ context.Context, _ string) (*models.Mentor, error) {
	return nil, mongo.ErrNoDocuments
}

func (f *fakeMentorRepo) Update(_ context.Context, _ string, fields map[string]interface{}) error {
	f.updates = fields
	return nil
}

func (f *fakeMentorRepo) Delete(_ context.Context, _ string) error { return nil }

func (f *fakeMentorRepo) ListByExpertise(_ context.Context, _ string, _ int64) ([]models.Mentor, error) {
	return nil, nil
}

type fakeAvailabilityRepo struct {
	replacedDay     int
	replacedWindows []models.WeeklyAvailabilityWindow
	replaceCalls    int
}

func (f *fakeAvailabilityRepo) GetWeeklyAvailability(_ context.Context, _ string) ([]models.WeeklyAvailabilityWindow, error) {
	return f.replacedWindows, nil
}

func (f *fakeAvailabilityRepo) ReplaceForDay(_ context.Context, _ string, dayOfWeek int, windows []models.WeeklyAvailabilityWindow) error {
	f.replaceCalls++
	f.replacedDay = dayOfWeek
	f.replacedWindows = windows
	return nil
}

func (f *fakeAvailabilityRepo) DeleteForDay(_ context.Context, _ string, _ int) error { return nil }

func newService() (*DefaultMentorService, *fakeMentorRepo, *fakeAvailabilityRepo) {
	repo := &fakeMentorRepo{mentors: map[string]*models.Mentor{
		"mentor-1": {ID: "mentor-1", Name: "Ada", HourlyRate: 60},
	}}
	avail := &fakeAvailabilityRepo{}
	return &DefaultMentorService{Repo: repo, Availability: avail}, repo, avail
}

func TestSetAvailability(t *testing.T) {
	svc, _, avail := newService()

	req := models.SetAvailabilityRequest{
		DayOfWeek: 1,
		Windows: []models.WeeklyAvailabilityWindow{
			{StartTime: "09:00", EndTime: "12:00", IsAvailable: true},
			{StartTime: "14:00", EndTime: "17:00", IsAvailable: true},
		},
	}
	require.NoError(t, svc.SetAvailability(context.Background(), "mentor-1", req))

	assert.Equal(t, 1, avail.replaceCalls)
	assert.Equal(t, 1, avail.replacedDay)
	require.Len(t, avail.replacedWindows, 2)
	// The request day is stamped onto every window.
	for _, w := range avail.replacedWindows {
		assert.Equal(t, 1, w.DayOfWeek)
	}
}

func TestSetAvailabilityRejectsInvalidWindows(t *testing.T) {
	svc, _, avail := newService()

	tests := []models.WeeklyAvailabilityWindow{
		{StartTime: "17:00", EndTime: "09:00", IsAvailable: true}, // inverted
		{StartTime: "nine", EndTime: "17:00", IsAvailable: true},
		{StartTime: "09:00", EndTime: "25:00", IsAvailable: true},
	}
	for _, w := range tests {
		err := svc.SetAvailability(context.Background(), "mentor-1", models.SetAvailabilityRequest{
			DayOfWeek: 2,
			Windows:   []models.WeeklyAvailabilityWindow{w},
		})
		assert.Error(t, err, "window %+v", w)
	}
	assert.Zero(t, avail.replaceCalls)
}

func TestUpdateWhitelistsFields(t *testing.T) {
	svc, repo, _ := newService()

	_, err := svc.Update(context.Background(), "mentor-1", map[string]interface{}{
		"bio":          "Compilers and careers",
		"hourlyRate":   75.0,
		"passwordHash": "sneaky",
		"email":        "other@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "Compilers and careers", repo.updates["bio"])
	assert.Equal(t, 75.0, repo.updates["hourlyRate"])
	assert.NotContains(t, repo.updates, "passwordHash")
	assert.NotContains(t, repo.updates, "email")
}

func TestUpdateRejectsBadInput(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.Update(context.Background(), "mentor-1", map[string]interface{}{"passwordHash": "x"})
	assert.Error(t, err)

	_, err = svc.Update(context.Background(), "mentor-1", map[string]interface{}{"hourlyRate": -10.0})
	assert.Error(t, err)
}
