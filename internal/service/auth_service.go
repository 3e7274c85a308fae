package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"burritoapi/internal/auth"
	apperrors "burritoapi/internal/errors"
	"burritoapi/internal/logger"
	"burritoapi/internal/model"
	"burritoapi/internal/repository"
)

// AuthService handles signup and login.
type AuthService interface {
	Signup(ctx context.Context, username, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, err error)
}

type authService struct {
	userRepo repository.UserRepository
	hasher   auth.PasswordHasher
	tokens   auth.TokenService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, hasher auth.PasswordHasher, tokens auth.TokenService) AuthService {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

// Signup creates a user with a hashed password. Duplicate usernames or emails
// surface as errors.ErrDuplicateUser from the store's unique indexes.
func (s *authService) Signup(ctx context.Context, username, email, password string) (*model.User, error) {
	user := &model.User{
		Username: username,
		Email:    email,
	}
	res := model.ValidateUser(user)
	if msg := passwordProblem(password); msg != "" {
		res.Errors = append(res.Errors, apperrors.FieldError{Field: "password", Message: msg})
	}
	if err := res.Err(); err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	user.Password = hashed

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	logger.FromContext(ctx).Info().Str("user_id", user.ID.String()).Msg("user signed up")
	return user, nil
}

// Login verifies credentials and returns a bearer token.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrUserNotFound
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	ok, err := s.hasher.Verify(password, user.Password)
	if err != nil {
		// a broken stored hash is an operator problem; the client still sees a plain mismatch
		log.Error().Err(err).Str("user_id", user.ID.String()).Msg("password comparison failed")
		return "", apperrors.ErrIncorrectPassword
	}
	if !ok {
		return "", apperrors.ErrIncorrectPassword
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// passwordProblem describes why plaintext cannot be hashed, or returns "" when it can.
func passwordProblem(plaintext string) string {
	switch {
	case plaintext == "":
		return "is required"
	case len(plaintext) > auth.MaxPasswordBytes:
		return fmt.Sprintf("must be at most %d bytes", auth.MaxPasswordBytes)
	default:
		return ""
	}
}
