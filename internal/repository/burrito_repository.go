package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"burritoapi/internal/model"
)

// BurritoRepository defines burrito review persistence operations.
type BurritoRepository interface {
	Create(ctx context.Context, burrito *model.Burrito) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Burrito, error)
	List(ctx context.Context) ([]model.Burrito, error)
	SearchByRestaurant(ctx context.Context, term string) ([]model.Burrito, error)
	// Update writes the editable columns only; owner and counters are untouched.
	Update(ctx context.Context, burrito *model.Burrito) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Increment atomically adds one to a counter and returns the fresh record.
	Increment(ctx context.Context, id uuid.UUID, counter model.Counter) (*model.Burrito, error)
}

type burritoRepository struct {
	db *gorm.DB
}

// NewBurritoRepository creates a new burrito repository.
func NewBurritoRepository(db *gorm.DB) BurritoRepository {
	return &burritoRepository{db: db}
}

// Create creates a new review.
func (r *burritoRepository) Create(ctx context.Context, burrito *model.Burrito) error {
	return r.db.WithContext(ctx).Create(burrito).Error
}

// FindByID finds a review by ID.
func (r *burritoRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Burrito, error) {
	var burrito model.Burrito
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&burrito).Error; err != nil {
		return nil, err
	}
	return &burrito, nil
}

// List returns every review.
func (r *burritoRepository) List(ctx context.Context) ([]model.Burrito, error) {
	burritos := []model.Burrito{}
	if err := r.db.WithContext(ctx).Order("created_at").Find(&burritos).Error; err != nil {
		return nil, err
	}
	return burritos, nil
}

// SearchByRestaurant does a case-insensitive substring match on restaurant name.
func (r *burritoRepository) SearchByRestaurant(ctx context.Context, term string) ([]model.Burrito, error) {
	burritos := []model.Burrito{}
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(restaurant_name) LIKE ?", pattern).
		Order("created_at").
		Find(&burritos).Error
	if err != nil {
		return nil, err
	}
	return burritos, nil
}

// Update writes the editable columns of an existing review.
func (r *burritoRepository) Update(ctx context.Context, burrito *model.Burrito) error {
	return r.db.WithContext(ctx).Model(burrito).
		Select(model.EditableColumns).
		Updates(burrito).Error
}

// Delete removes a review.
func (r *burritoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Burrito{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Increment bumps a like/dislike counter in a single UPDATE statement.
func (r *burritoRepository) Increment(ctx context.Context, id uuid.UUID, counter model.Counter) (*model.Burrito, error) {
	if counter != model.CounterThumbsUp && counter != model.CounterThumbsDown {
		return nil, fmt.Errorf("unknown counter %q", counter)
	}

	res := r.db.WithContext(ctx).Model(&model.Burrito{}).
		Where("id = ?", id).
		UpdateColumn(string(counter), gorm.Expr(string(counter)+" + ?", 1))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.FindByID(ctx, id)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
