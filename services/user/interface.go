package user

import (
	"context"
	"time"

	userRepo "mentorhub/database/repository/user"
	"mentorhub/models"
)

// UserService manages mentee accounts.
type UserService interface {
	Register(ctx context.Context, reg models.UserRegistration) (*models.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, string, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.User, error)
	Delete(ctx context.Context, id string) error
	RevokeToken(ctx context.Context, id string) error
}

// TokenCache stores hashed auth tokens; a missing entry means the token was
// revoked. Backed by the redis auth DB in production.
type TokenCache interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Tokens TokenCache
}
