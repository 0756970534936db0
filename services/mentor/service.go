package mentor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"mentorhub/models"
	"mentorhub/services/booking"
	"mentorhub/utils"
)

const tokenDuration = 72 * time.Hour

var errInvalidCredentials = errors.New("invalid email or password")

func (s *DefaultMentorService) Register(ctx context.Context, reg models.MentorRegistration) (*models.Mentor, string, error) {
	if existing, _ := s.Repo.GetByEmail(ctx, reg.Email); existing != nil {
		return nil, "", fmt.Errorf("mentor with email %s already exists", reg.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	mentor := &models.Mentor{
		Name:         reg.Name,
		Email:        reg.Email,
		PasswordHash: string(hash),
		Bio:          reg.Bio,
		Expertise:    reg.Expertise,
		HourlyRate:   reg.HourlyRate,
	}
	if err := s.Repo.Create(ctx, mentor); err != nil {
		return nil, "", fmt.Errorf("failed to create mentor: %w", err)
	}

	token, err := s.issueToken(ctx, mentor)
	if err != nil {
		return nil, "", err
	}
	return mentor, token, nil
}

func (s *DefaultMentorService) Authenticate(ctx context.Context, email, password string) (*models.Mentor, string, error) {
	mentor, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", errInvalidCredentials
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(mentor.PasswordHash), []byte(password)) != nil {
		return nil, "", errInvalidCredentials
	}

	token, err := s.issueToken(ctx, mentor)
	if err != nil {
		return nil, "", err
	}
	return mentor, token, nil
}

// issueToken mints a JWT and caches its hash in the auth DB for revocation.
func (s *DefaultMentorService) issueToken(ctx context.Context, mentor *models.Mentor) (string, error) {
	token, err := utils.GenerateToken(mentor.ID, mentor.Email, "mentor", tokenDuration)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	key := "auth:mentor:" + mentor.ID
	if err := s.Tokens.Set(ctx, key, utils.HashToken(token), tokenDuration); err != nil {
		return "", fmt.Errorf("failed to cache auth token: %w", err)
	}
	return token, nil
}

func (s *DefaultMentorService) GetByID(ctx context.Context, id string) (*models.Mentor, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultMentorService) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Mentor, error) {
	// Only whitelisted profile fields may be updated.
	allowed := map[string]bool{
		"name": true, "bio": true, "expertise": true, "company": true,
		"title": true, "hourlyRate": true, "fcmToken": true,
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
	if rate, ok := update["hourlyRate"].(float64); ok && rate <= 0 {
		return nil, errors.New("hourlyRate must be positive")
	}

	if err := s.Repo.Update(ctx, id, update); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultMentorService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func (s *DefaultMentorService) List(ctx context.Context, expertise string, limit int64) ([]models.Mentor, error) {
	return s.Repo.ListByExpertise(ctx, expertise, limit)
}

// SetAvailability replaces the mentor's windows for one weekday after
// validating each window with the booking core's rules.
func (s *DefaultMentorService) SetAvailability(ctx context.Context, mentorID string, req models.SetAvailabilityRequest) error {
	for i := range req.Windows {
		req.Windows[i].DayOfWeek = req.DayOfWeek
		if err := booking.ValidateWindow(req.Windows[i]); err != nil {
			return fmt.Errorf("invalid window: %w", err)
		}
	}
	return s.Availability.ReplaceForDay(ctx, mentorID, req.DayOfWeek, req.Windows)
}

func (s *DefaultMentorService) GetAvailability(ctx context.Context, mentorID string) ([]models.WeeklyAvailabilityWindow, error) {
	return s.Availability.GetWeeklyAvailability(ctx, mentorID)
}
