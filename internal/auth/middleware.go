package auth

import (
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "burritoapi/internal/errors"
	"burritoapi/internal/logger"
)

const (
	// ContextKeyUserID is the echo context key holding the verified user id.
	ContextKeyUserID = "userID"

	tokenPresentedKey = "auth.tokenPresented"
)

// Middleware authenticates requests carrying "Authorization: Bearer <token>".
//
// A request without a bearer token is rejected with 401. A request whose token
// fails verification is rejected with 403. On success the user id is stored
// both in the echo context and in the request's context.Context.
func Middleware(tokens TokenService) echo.MiddlewareFunc {
	verify := echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ContextKey:  ContextKeyUserID,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			c.Set(tokenPresentedKey, true)
			id, err := tokens.Verify(token)
			if err != nil {
				logger.FromContext(c.Request().Context()).Debug().
					Str("reason", Reason(err)).
					Msg("bearer token rejected")
				return nil, err
			}
			return id, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			cause := apperrors.ErrUnauthenticated
			if presented, _ := c.Get(tokenPresentedKey).(bool); presented {
				cause = apperrors.ErrInvalidToken
			}
			logger.FromContext(c.Request().Context()).Debug().Err(err).Msg("authentication failed")
			httpErr := apperrors.MapErrorToHTTP(cause)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return verify(func(c echo.Context) error {
			id, _ := c.Get(ContextKeyUserID).(uuid.UUID)
			req := c.Request()
			c.SetRequest(req.WithContext(WithUserID(req.Context(), id)))
			return next(c)
		})
	}
}

// UserID returns the authenticated user id stored by Middleware.
func UserID(c echo.Context) (uuid.UUID, error) {
	if id, ok := UserIDFromContext(c.Request().Context()); ok {
		return id, nil
	}
	return uuid.Nil, apperrors.ErrUnauthenticated
}
