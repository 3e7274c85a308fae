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

// ProfileUpdate carries the profile fields a user may change. Nil fields are left alone.
type ProfileUpdate struct {
	Username *string
	Email    *string
	Password *string
}

// UserService exposes operations on the authenticated user's own account.
type UserService interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*model.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, update ProfileUpdate) (*model.User, error)
	ChangePassword(ctx context.Context, id uuid.UUID, currentPassword, newPassword string) (*model.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type userService struct {
	repo   repository.UserRepository
	hasher auth.PasswordHasher
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository, hasher auth.PasswordHasher) UserService {
	return &userService{repo: repo, hasher: hasher}
}

func (s *userService) GetProfile(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// UpdateProfile applies the given fields, re-hashing the password when one is supplied.
func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, update ProfileUpdate) (*model.User, error) {
	user, err := s.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Username != nil {
		user.Username = *update.Username
	}
	if update.Email != nil {
		user.Email = *update.Email
	}

	res := model.ValidateUser(user)
	if update.Password != nil {
		if msg := passwordProblem(*update.Password); msg != "" {
			res.Errors = append(res.Errors, apperrors.FieldError{Field: "password", Message: msg})
		}
	}
	if err := res.Err(); err != nil {
		return nil, err
	}

	if update.Password != nil {
		hashed, err := s.hasher.Hash(*update.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// ChangePassword replaces the password after checking the current one.
func (s *userService) ChangePassword(ctx context.Context, id uuid.UUID, currentPassword, newPassword string) (*model.User, error) {
	user, err := s.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	ok, err := s.hasher.Verify(currentPassword, user.Password)
	if err != nil {
		return nil, fmt.Errorf("verify current password: %w", err)
	}
	if !ok {
		return nil, apperrors.ErrInvalidCurrentPassword
	}

	if msg := passwordProblem(newPassword); msg != "" {
		return nil, &apperrors.ValidationError{Fields: []apperrors.FieldError{
			{Field: "newPassword", Message: msg},
		}}
	}

	hashed, err := s.hasher.Hash(newPassword)
	if err != nil {
		return nil, err
	}
	user.Password = hashed

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update password: %w", err)
	}
	return user, nil
}

// DeleteAccount removes the user together with every review they own.
func (s *userService) DeleteAccount(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.DeleteCascade(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("delete user: %w", err)
	}

	logger.FromContext(ctx).Info().Str("user_id", id.String()).Msg("account deleted")
	return user, nil
}
