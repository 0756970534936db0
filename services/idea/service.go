package idea

import (
	"context"
	"errors"
	"fmt"

	ideaRepo "mentorhub/database/repository/idea"
	"mentorhub/models"
)

// IdeaService manages business-idea marketplace posts.
type IdeaService interface {
	Create(ctx context.Context, idea *models.Idea) (*models.Idea, error)
	GetByID(ctx context.Context, id string) (*models.Idea, error)
	List(ctx context.Context, category string, limit int64) ([]models.Idea, error)
	Update(ctx context.Context, id, ownerID string, fields map[string]interface{}) (*models.Idea, error)
	Delete(ctx context.Context, id, ownerID string) error
}

// DefaultIdeaService implements IdeaService.
type DefaultIdeaService struct {
	Repo ideaRepo.IdeaRepository
}

func (s *DefaultIdeaService) Create(ctx context.Context, idea *models.Idea) (*models.Idea, error) {
	if idea.Title == "" {
		return nil, errors.New("title is required")
	}
	if idea.OwnerID == "" {
		return nil, errors.New("ownerId is required")
	}
	if err := s.Repo.Create(ctx, idea); err != nil {
		return nil, fmt.Errorf("failed to create idea: %w", err)
	}
	return idea, nil
}

func (s *DefaultIdeaService) GetByID(ctx context.Context, id string) (*models.Idea, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultIdeaService) List(ctx context.Context, category string, limit int64) ([]models.Idea, error) {
	return s.Repo.List(ctx, category, limit)
}

func (s *DefaultIdeaService) Update(ctx context.Context, id, ownerID string, fields map[string]interface{}) (*models.Idea, error) {
	allowed := map[string]bool{
		"title": true, "summary": true, "category": true, "stage": true, "lookingFor": true,
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
	if err := s.Repo.Update(ctx, id, ownerID, update); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultIdeaService) Delete(ctx context.Context, id, ownerID string) error {
	return s.Repo.Delete(ctx, id, ownerID)
}
