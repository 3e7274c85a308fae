package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "burritoapi/internal/errors"
	"burritoapi/internal/logger"
)

// errorResponse maps a service error onto an echo HTTP error with an ErrorResponse body.
// Internal failures are logged here and hidden from the client.
func errorResponse(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	if httpErr.StatusCode >= http.StatusInternalServerError {
		logger.FromContext(c.Request().Context()).Error().Err(err).
			Str("path", c.Path()).
			Msg("request failed")
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func invalidBody() error {
	return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
		Error: "invalid request body",
		Code:  "INVALID_REQUEST",
	})
}
