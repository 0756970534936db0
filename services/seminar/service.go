package seminar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	seminarRepo "mentorhub/database/repository/seminar"
	"mentorhub/models"
	"mentorhub/services/notification"
)

// ErrSeminarFull is returned when registration is attempted on a seminar at
// capacity (or already containing the mentee).
var ErrSeminarFull = errors.New("seminar is full or registration not possible")

// SeminarService manages public seminars and registrations.
type SeminarService interface {
	Create(ctx context.Context, seminar *models.Seminar) (*models.Seminar, error)
	GetByID(ctx context.Context, id string) (*models.Seminar, error)
	ListUpcoming(ctx context.Context, limit int64) ([]models.Seminar, error)
	ListByMentor(ctx context.Context, mentorID string) ([]models.Seminar, error)
	Update(ctx context.Context, seminarID, mentorID string, fields map[string]interface{}) (*models.Seminar, error)
	Cancel(ctx context.Context, seminarID, mentorID string) error
	Register(ctx context.Context, seminarID, menteeID string) error
}

// DefaultSeminarService implements SeminarService.
type DefaultSeminarService struct {
	Repo     seminarRepo.SeminarRepository
	Notifier notification.NotificationService
}

func (s *DefaultSeminarService) Create(ctx context.Context, seminar *models.Seminar) (*models.Seminar, error) {
	if seminar.Title == "" {
		return nil, errors.New("title is required")
	}
	if seminar.Capacity <= 0 {
		return nil, errors.New("capacity must be positive")
	}
	if seminar.DurationMins <= 0 {
		return nil, errors.New("durationMins must be positive")
	}
	if seminar.StartsAt.Before(time.Now()) {
		return nil, errors.New("startsAt must be in the future")
	}
	if err := s.Repo.Create(ctx, seminar); err != nil {
		return nil, fmt.Errorf("failed to create seminar: %w", err)
	}
	return seminar, nil
}

func (s *DefaultSeminarService) GetByID(ctx context.Context, id string) (*models.Seminar, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultSeminarService) ListUpcoming(ctx context.Context, limit int64) ([]models.Seminar, error) {
	return s.Repo.ListUpcoming(ctx, limit)
}

func (s *DefaultSeminarService) ListByMentor(ctx context.Context, mentorID string) ([]models.Seminar, error) {
	return s.Repo.ListByMentor(ctx, mentorID)
}

// Update edits a scheduled seminar's details. Only the hosting mentor may
// edit, and only whitelisted fields are applied.
func (s *DefaultSeminarService) Update(ctx context.Context, seminarID, mentorID string, fields map[string]interface{}) (*models.Seminar, error) {
	seminar, err := s.Repo.GetByID(ctx, seminarID)
	if err != nil {
		return nil, err
	}
	if seminar.MentorID != mentorID {
		return nil, errors.New("only the hosting mentor can update a seminar")
	}
	if seminar.Status != models.SeminarStatusScheduled {
		return nil, fmt.Errorf("cannot update a seminar in status %q", seminar.Status)
	}

	allowed := map[string]bool{
		"title": true, "description": true, "topic": true, "durationMins": true,
	}
	update := make(map[string]interface{})
	for k, v := range fields {
		if allowed[k] {
			update[k] = v
		}
	}
	if len(update) == 0 {
		return nil, errors.New("no updatable fields supplied")
	}

	if err := s.Repo.Update(ctx, seminarID, update); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, seminarID)
}

// Cancel marks the seminar cancelled and notifies registered mentees.
func (s *DefaultSeminarService) Cancel(ctx context.Context, seminarID, mentorID string) error {
	seminar, err := s.Repo.GetByID(ctx, seminarID)
	if err != nil {
		return err
	}
	if seminar.MentorID != mentorID {
		return errors.New("only the hosting mentor can cancel a seminar")
	}
	if err := s.Repo.Update(ctx, seminarID, map[string]interface{}{"status": models.SeminarStatusCancelled}); err != nil {
		return err
	}

	for _, menteeID := range seminar.Registered {
		// Best-effort; errors are the notifier's to log.
		_ = s.Notifier.NotifyUser(ctx, menteeID,
			"Seminar cancelled",
			fmt.Sprintf("The seminar %q on %s has been cancelled.", seminar.Title, seminar.StartsAt.Format("Jan 2, 15:04")),
			"",
		)
	}
	return nil
}

func (s *DefaultSeminarService) Register(ctx context.Context, seminarID, menteeID string) error {
	err := s.Repo.AddRegistrant(ctx, seminarID, menteeID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrSeminarFull
	}
	return err
}
