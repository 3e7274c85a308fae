package main

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "burritoapi/internal/errors"
	"burritoapi/internal/model"
	"burritoapi/internal/service"
)

type fakeAuthService struct {
	service.AuthService
	existing map[string]bool
}

func (f *fakeAuthService) Signup(_ context.Context, username, email, _ string) (*model.User, error) {
	if f.existing[email] {
		return nil, apperrors.ErrDuplicateUser
	}
	return &model.User{ID: uuid.New(), Username: username, Email: email}, nil
}

type fakeBurritoService struct {
	service.BurritoService
	owners []uuid.UUID
	fail   error
}

func (f *fakeBurritoService) Create(_ context.Context, ownerID uuid.UUID, in service.BurritoInput) (*model.Burrito, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	if in.Salsa != nil && (*in.Salsa < 1 || *in.Salsa > 10) {
		return nil, &apperrors.ValidationError{Fields: []apperrors.FieldError{{Field: "salsa", Message: "must be at most 10"}}}
	}
	f.owners = append(f.owners, ownerID)
	return &model.Burrito{ID: uuid.New(), UserID: ownerID}, nil
}

func TestLoadFixture_Embedded(t *testing.T) {
	f, err := loadFixture("")

	require.NoError(t, err)
	require.Len(t, f.Users, 2)
	assert.Equal(t, "carl@example.com", f.Users[0].Email)
	assert.Len(t, f.Users[0].Burritos, 2)
	assert.Equal(t, "11.5", f.Users[0].Burritos[0].Price.String())
}

func TestLoadFixture_MissingFile(t *testing.T) {
	_, err := loadFixture("does-not-exist.json")
	assert.Error(t, err)
}

func TestSeed(t *testing.T) {
	salsa := 11
	fixture := Fixture{Users: []SeedUser{
		{Email: "a@example.com", Burritos: []service.BurritoInput{{}, {Salsa: &salsa}}},
		{Email: "taken@example.com", Burritos: []service.BurritoInput{{}}},
	}}
	authSvc := &fakeAuthService{existing: map[string]bool{"taken@example.com": true}}
	burritoSvc := &fakeBurritoService{}

	report, err := seed(context.Background(), fixture, authSvc, burritoSvc)

	require.NoError(t, err)
	assert.Equal(t, Report{UsersCreated: 1, UsersSkipped: 1, BurritosCreated: 1, BurritosSkipped: 2}, report)
	assert.Len(t, burritoSvc.owners, 1)
}

func TestSeed_StoreFailureStops(t *testing.T) {
	fixture := Fixture{Users: []SeedUser{{Email: "a@example.com", Burritos: []service.BurritoInput{{}}}}}
	burritoSvc := &fakeBurritoService{fail: errors.New("connection refused")}

	_, err := seed(context.Background(), fixture, &fakeAuthService{}, burritoSvc)

	assert.ErrorContains(t, err, "connection refused")
}
