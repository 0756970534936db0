package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"mentorhub/models"
	"mentorhub/utils"
)

const tokenDuration = 72 * time.Hour

var errInvalidCredentials = errors.New("invalid email or password")

func (s *DefaultUserService) Register(ctx context.Context, reg models.UserRegistration) (*models.User, string, error) {
	if existing, _ := s.Repo.GetByEmail(ctx, reg.Email); existing != nil {
		return nil, "", fmt.Errorf("user with email %s already exists", reg.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		Name:         reg.Name,
		Email:        reg.Email,
		PasswordHash: string(hash),
		Interests:    reg.Interests,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.issueToken(ctx, u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*models.User, string, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", errInvalidCredentials
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", errInvalidCredentials
	}

	token, err := s.issueToken(ctx, u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *DefaultUserService) issueToken(ctx context.Context, u *models.User) (string, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, "mentee", tokenDuration)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	key := "auth:user:" + u.ID
	if err := s.Tokens.Set(ctx, key, utils.HashToken(token), tokenDuration); err != nil {
		return "", fmt.Errorf("failed to cache auth token: %w", err)
	}
	return token, nil
}

func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultUserService) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.User, error) {
	allowed := map[string]bool{
		"name": true, "interests": true, "goals": true, "fcmToken": true,
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

	if err := s.Repo.Update(ctx, id, update); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultUserService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// RevokeToken drops the cached token hash, invalidating outstanding JWTs.
func (s *DefaultUserService) RevokeToken(ctx context.Context, id string) error {
	return s.Tokens.Del(ctx, "auth:user:"+id)
}
