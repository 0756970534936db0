package seminar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"mentorhub/models"
)

type fakeSeminarRepo struct {
	seminars map[string]*models.Seminar
	updates  map[string]interface{}
	addErr   error
}

func (f *fakeSeminarRepo) Create(_ context.Context, seminar *models.Seminar) error {
	f.seminars[seminar.ID] = seminar
	return nil
}

func (f *fakeSeminarRepo) GetByID(_ context.Context, id string) (*models.Seminar, error) {
	if s, ok := f.seminars[id]; ok {
		return s, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeSeminarRepo) ListUpcoming(_ context.Context, _ int64) ([]models.Seminar, error) {
	return nil, nil
}

func (f *fakeSeminarRepo) ListByMentor(_ context.Context, _ string) ([]models.Seminar, error) {
	return nil, nil
}

func (f *fakeSeminarRepo) Update(_ context.Context, id string, fields map[string]interface{}) error {
	if _, ok := f.seminars[id]; !ok {
		return mongo.ErrNoDocuments
	}
	f.updates = fields
	return nil
}

func (f *fakeSeminarRepo) AddRegistrant(_ context.Context, seminarID, menteeID string) error {
	if f.addErr != nil {
		return f.addErr
	}
	s, ok := f.seminars[seminarID]
	if !ok || len(s.Registered) >= s.Capacity {
		return mongo.ErrNoDocuments
	}
	s.Registered = append(s.Registered, menteeID)
	return nil
}

type fakeNotifier struct {
	notified []string
}

func (f *fakeNotifier) NotifyUser(_ context.Context, userID, _, _, _ string) error {
	f.notified = append(f.notified, userID)
	return nil
}

func (f *fakeNotifier) NotifyMentor(_ context.Context, _, _, _, _ string) error { return nil }

func (f *fakeNotifier) ListForRecipient(_ context.Context, _ string, _ int64) ([]models.Notification, error) {
	return nil, nil
}

func (f *fakeNotifier) MarkRead(_ context.Context, _, _ string) error { return nil }

func newService() (*DefaultSeminarService, *fakeSeminarRepo, *fakeNotifier) {
	repo := &fakeSeminarRepo{seminars: map[string]*models.Seminar{}}
	notifier := &fakeNotifier{}
	return &DefaultSeminarService{Repo: repo, Notifier: notifier}, repo, notifier
}

func validSeminar() *models.Seminar {
	return &models.Seminar{
		ID:           "sem-1",
		MentorID:     "mentor-1",
		Title:        "Scaling Go services",
		StartsAt:     time.Now().Add(48 * time.Hour),
		DurationMins: 90,
		Capacity:     2,
		Status:       models.SeminarStatusScheduled,
	}
}

func TestCreateValidation(t *testing.T) {
	svc, _, _ := newService()

	tests := []struct {
		name   string
		mutate func(*models.Seminar)
	}{
		{"missing title", func(s *models.Seminar) { s.Title = "" }},
		{"zero capacity", func(s *models.Seminar) { s.Capacity = 0 }},
		{"zero duration", func(s *models.Seminar) { s.DurationMins = 0 }},
		{"starts in the past", func(s *models.Seminar) { s.StartsAt = time.Now().Add(-time.Hour) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSeminar()
			tt.mutate(s)
			_, err := svc.Create(context.Background(), s)
			assert.Error(t, err)
		})
	}

	_, err := svc.Create(context.Background(), validSeminar())
	assert.NoError(t, err)
}

func TestRegisterUntilFull(t *testing.T) {
	svc, repo, _ := newService()
	repo.seminars["sem-1"] = validSeminar()

	require.NoError(t, svc.Register(context.Background(), "sem-1", "mentee-1"))
	require.NoError(t, svc.Register(context.Background(), "sem-1", "mentee-2"))

	err := svc.Register(context.Background(), "sem-1", "mentee-3")
	assert.ErrorIs(t, err, ErrSeminarFull)
	assert.Len(t, repo.seminars["sem-1"].Registered, 2)
}

func TestCancelNotifiesRegistrants(t *testing.T) {
	svc, repo, notifier := newService()
	s := validSeminar()
	s.Registered = []string{"mentee-1", "mentee-2"}
	repo.seminars["sem-1"] = s

	require.NoError(t, svc.Cancel(context.Background(), "sem-1", "mentor-1"))
	assert.Equal(t, models.SeminarStatusCancelled, repo.updates["status"])
	assert.Equal(t, []string{"mentee-1", "mentee-2"}, notifier.notified)
}

func TestUpdateWhitelistsFieldsAndChecksOwner(t *testing.T) {
	svc, repo, _ := newService()
	repo.seminars["sem-1"] = validSeminar()

	_, err := svc.Update(context.Background(), "sem-1", "mentor-1", map[string]interface{}{
		"title":    "Scaling Go services, part 2",
		"capacity": 500, // not updatable
	})
	require.NoError(t, err)
	assert.Equal(t, "Scaling Go services, part 2", repo.updates["title"])
	assert.NotContains(t, repo.updates, "capacity")

	_, err = svc.Update(context.Background(), "sem-1", "someone-else", map[string]interface{}{"title": "x"})
	assert.Error(t, err)
}

func TestUpdateRejectsCancelledSeminar(t *testing.T) {
	svc, repo, _ := newService()
	s := validSeminar()
	s.Status = models.SeminarStatusCancelled
	repo.seminars["sem-1"] = s

	_, err := svc.Update(context.Background(), "sem-1", "mentor-1", map[string]interface{}{"title": "x"})
	assert.Error(t, err)
}

func TestCancelRequiresHostingMentor(t *testing.T) {
	svc, repo, _ := newService()
	repo.seminars["sem-1"] = validSeminar()

	err := svc.Cancel(context.Background(), "sem-1", "someone-else")
	assert.Error(t, err)
	assert.Nil(t, repo.updates)
}
