package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"burritoapi/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBurritoRepository is a mock implementation of BurritoRepository.
type MockBurritoRepository struct {
	mock.Mock
}

func (m *MockBurritoRepository) Create(ctx context.Context, burrito *model.Burrito) error {
	args := m.Called(ctx, burrito)
	return args.Error(0)
}

func (m *MockBurritoRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Burrito, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Burrito), args.Error(1)
}

func (m *MockBurritoRepository) List(ctx context.Context) ([]model.Burrito, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Burrito), args.Error(1)
}

func (m *MockBurritoRepository) SearchByRestaurant(ctx context.Context, term string) ([]model.Burrito, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Burrito), args.Error(1)
}

func (m *MockBurritoRepository) Update(ctx context.Context, burrito *model.Burrito) error {
	args := m.Called(ctx, burrito)
	return args.Error(0)
}

func (m *MockBurritoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBurritoRepository) Increment(ctx context.Context, id uuid.UUID, counter model.Counter) (*model.Burrito, error) {
	args := m.Called(ctx, id, counter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Burrito), args.Error(1)
}

func strPtr(s string) *string { return &s }

func intPtr(v int) *int { return &v }
