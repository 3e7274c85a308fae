package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"burritoapi/internal/auth"
	apperrors "burritoapi/internal/errors"
	"burritoapi/internal/logger"
	"burritoapi/internal/model"
	"burritoapi/internal/repository"
)

// BurritoService handles burrito review operations.
type BurritoService interface {
	List(ctx context.Context) ([]model.Burrito, error)
	Search(ctx context.Context, restaurant string) ([]model.Burrito, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Burrito, error)
	Create(ctx context.Context, ownerID uuid.UUID, in BurritoInput) (*model.Burrito, error)
	// Replace overwrites every editable field; fields absent from in are cleared.
	Replace(ctx context.Context, requesterID, id uuid.UUID, in BurritoInput) (*model.Burrito, error)
	// Patch changes only the fields present in in.
	Patch(ctx context.Context, requesterID, id uuid.UUID, in BurritoInput) (*model.Burrito, error)
	Delete(ctx context.Context, requesterID, id uuid.UUID) (*model.Burrito, error)
	Like(ctx context.Context, id uuid.UUID) (*model.Burrito, error)
	Dislike(ctx context.Context, id uuid.UUID) (*model.Burrito, error)
}

type burritoService struct {
	repo repository.BurritoRepository
}

// NewBurritoService creates a new burrito service.
func NewBurritoService(repo repository.BurritoRepository) BurritoService {
	return &burritoService{repo: repo}
}

func (s *burritoService) List(ctx context.Context) ([]model.Burrito, error) {
	return s.repo.List(ctx)
}

func (s *burritoService) Search(ctx context.Context, restaurant string) ([]model.Burrito, error) {
	return s.repo.SearchByRestaurant(ctx, restaurant)
}

func (s *burritoService) Get(ctx context.Context, id uuid.UUID) (*model.Burrito, error) {
	burrito, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return burrito, nil
}

// Create stores a new review owned by ownerID.
func (s *burritoService) Create(ctx context.Context, ownerID uuid.UUID, in BurritoInput) (*model.Burrito, error) {
	burrito := &model.Burrito{UserID: ownerID}
	in.applyTo(burrito, true)

	if err := model.ValidateBurrito(burrito).Err(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, burrito); err != nil {
		return nil, fmt.Errorf("create burrito: %w", err)
	}
	return burrito, nil
}

func (s *burritoService) Replace(ctx context.Context, requesterID, id uuid.UUID, in BurritoInput) (*model.Burrito, error) {
	return s.update(ctx, requesterID, id, in, true)
}

func (s *burritoService) Patch(ctx context.Context, requesterID, id uuid.UUID, in BurritoInput) (*model.Burrito, error) {
	return s.update(ctx, requesterID, id, in, false)
}

func (s *burritoService) update(ctx context.Context, requesterID, id uuid.UUID, in BurritoInput, replace bool) (*model.Burrito, error) {
	burrito, err := s.findOwned(ctx, requesterID, id)
	if err != nil {
		return nil, err
	}

	in.applyTo(burrito, replace)
	if err := model.ValidateBurrito(burrito).Err(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, burrito); err != nil {
		return nil, fmt.Errorf("update burrito: %w", err)
	}
	return burrito, nil
}

// Delete removes a review owned by the requester.
func (s *burritoService) Delete(ctx context.Context, requesterID, id uuid.UUID) (*model.Burrito, error) {
	burrito, err := s.findOwned(ctx, requesterID, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBurritoNotFound
		}
		return nil, fmt.Errorf("delete burrito: %w", err)
	}
	return burrito, nil
}

// Like is open to any authenticated user.
func (s *burritoService) Like(ctx context.Context, id uuid.UUID) (*model.Burrito, error) {
	return s.increment(ctx, id, model.CounterThumbsUp)
}

// Dislike is open to any authenticated user.
func (s *burritoService) Dislike(ctx context.Context, id uuid.UUID) (*model.Burrito, error) {
	return s.increment(ctx, id, model.CounterThumbsDown)
}

func (s *burritoService) increment(ctx context.Context, id uuid.UUID, counter model.Counter) (*model.Burrito, error) {
	burrito, err := s.repo.Increment(ctx, id, counter)
	if err != nil {
		return nil, notFound(err)
	}
	return burrito, nil
}

// findOwned loads a review and checks ownership. Existence is checked first,
// so a missing review is always reported as not found.
func (s *burritoService) findOwned(ctx context.Context, requesterID, id uuid.UUID) (*model.Burrito, error) {
	burrito, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := auth.AuthorizeOwner(requesterID, burrito.UserID); err != nil {
		logger.FromContext(ctx).Warn().
			Str("burrito_id", id.String()).
			Str("requester_id", requesterID.String()).
			Msg("ownership check denied")
		return nil, err
	}
	return burrito, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrBurritoNotFound
	}
	return fmt.Errorf("find burrito: %w", err)
}
