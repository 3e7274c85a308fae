package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	apperrors "burritoapi/internal/errors"
)

// AccessTokenExpiry is the duration for which access tokens are valid.
const AccessTokenExpiry = 24 * time.Hour

// Claims is the token payload: {_id, iat, exp}.
type Claims struct {
	UserID string `json:"_id"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies bearer tokens.
type TokenService interface {
	Issue(userID uuid.UUID) (string, error)
	// Verify returns the subject of a valid token. Every failure is reported
	// as errors.ErrInvalidToken; the underlying reason is available through
	// errors.Unwrap chains only for logging.
	Verify(token string) (uuid.UUID, error)
}

// JWTService handles JWT token generation and validation.
type JWTService struct {
	secret []byte
	now    func() time.Time
	parser *jwt.Parser
}

var _ TokenService = (*JWTService)(nil)

// NewJWTService creates a new JWT service with the given secret.
func NewJWTService(secret string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		now:    time.Now,
		// expiry is checked against s.now so it can be driven by tests
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithoutClaimsValidation(),
		),
	}
}

// Issue generates a signed token for the user, expiring AccessTokenExpiry from now.
func (s *JWTService) Issue(userID uuid.UUID) (string, error) {
	// NumericDate has second precision. Rounding up keeps exp at least 24h after the real issue time.
	now := s.now().Add(time.Second - time.Nanosecond).Truncate(time.Second)
	claims := &Claims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTokenExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify validates a token and returns the user id it was issued for.
func (s *JWTService) Verify(tokenString string) (uuid.UUID, error) {
	claims := &Claims{}
	token, err := s.parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return uuid.Nil, invalid(err)
	}
	if !token.Valid {
		return uuid.Nil, invalid(errors.New("token not valid"))
	}

	if !claims.VerifyExpiresAt(s.now(), true) {
		return uuid.Nil, invalid(errors.New("token expired"))
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, invalid(fmt.Errorf("bad subject: %w", err))
	}
	return userID, nil
}

func invalid(cause error) error {
	return &invalidTokenError{cause: cause}
}

// invalidTokenError matches errors.ErrInvalidToken and prints only that
// message, keeping the cause available for logs.
type invalidTokenError struct {
	cause error
}

func (e *invalidTokenError) Error() string { return apperrors.ErrInvalidToken.Error() }

func (e *invalidTokenError) Is(target error) bool { return target == apperrors.ErrInvalidToken }

// Cause returns the underlying verification failure.
func (e *invalidTokenError) Cause() error { return e.cause }

// Reason extracts the internal failure reason from a Verify error, for logging.
func Reason(err error) string {
	var ite *invalidTokenError
	if errors.As(err, &ite) && ite.cause != nil {
		return ite.cause.Error()
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
