package router

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "burritoapi/internal/errors"
	"burritoapi/internal/model"
)

// memStore backs both repositories so that cascade deletes can be observed.
type memStore struct {
	mu       sync.Mutex
	users    map[uuid.UUID]model.User
	burritos map[uuid.UUID]model.Burrito
	order    []uuid.UUID
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[uuid.UUID]model.User),
		burritos: make(map[uuid.UUID]model.Burrito),
	}
}

type memUsers struct{ *memStore }

func (s memUsers) Create(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.taken(uuid.Nil, user) {
		return apperrors.ErrDuplicateUser
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	s.users[user.ID] = *user
	return nil
}

func (s memUsers) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (s memUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s memUsers) Update(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.taken(user.ID, user) {
		return apperrors.ErrDuplicateUser
	}
	user.UpdatedAt = time.Now()
	s.users[user.ID] = *user
	return nil
}

func (s memUsers) DeleteCascade(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	for bid, b := range s.burritos {
		if b.UserID == id {
			delete(s.burritos, bid)
		}
	}
	delete(s.users, id)
	return nil
}

func (s *memStore) taken(self uuid.UUID, user *model.User) bool {
	for id, u := range s.users {
		if id != self && (u.Username == user.Username || u.Email == user.Email) {
			return true
		}
	}
	return false
}

type memBurritos struct{ *memStore }

func (s memBurritos) Create(_ context.Context, b *model.Burrito) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	s.burritos[b.ID] = *b
	s.order = append(s.order, b.ID)
	return nil
}

func (s memBurritos) FindByID(_ context.Context, id uuid.UUID) (*model.Burrito, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.burritos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &b, nil
}

func (s memBurritos) List(ctx context.Context) ([]model.Burrito, error) {
	return s.SearchByRestaurant(ctx, "")
}

func (s memBurritos) SearchByRestaurant(_ context.Context, term string) ([]model.Burrito, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Burrito{}
	for _, id := range s.order {
		b, ok := s.burritos[id]
		if ok && strings.Contains(strings.ToLower(b.RestaurantName), strings.ToLower(term)) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s memBurritos) Update(_ context.Context, b *model.Burrito) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.burritos[b.ID]
	if !ok {
		return nil
	}
	owner, up, down := stored.UserID, stored.ThumbsUp, stored.ThumbsDown
	stored = *b
	stored.UserID, stored.ThumbsUp, stored.ThumbsDown = owner, up, down
	stored.UpdatedAt = time.Now()
	s.burritos[b.ID] = stored
	return nil
}

func (s memBurritos) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.burritos[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.burritos, id)
	return nil
}

func (s memBurritos) Increment(_ context.Context, id uuid.UUID, counter model.Counter) (*model.Burrito, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.burritos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	switch counter {
	case model.CounterThumbsUp:
		b.ThumbsUp++
	case model.CounterThumbsDown:
		b.ThumbsDown++
	}
	s.burritos[id] = b
	return &b, nil
}
