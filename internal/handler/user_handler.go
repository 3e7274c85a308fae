package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"burritoapi/internal/auth"
	apperrors "burritoapi/internal/errors"
	"burritoapi/internal/service"
)

// UserHandler serves the authenticated user's own account.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// ChangePasswordRequest represents a password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

var updatableUserFields = map[string]bool{
	"username": true,
	"email":    true,
	"password": true,
}

// GetMe godoc
// @Summary Get the current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) GetMe(c echo.Context) error {
	id, err := auth.UserID(c)
	if err != nil {
		return errorResponse(c, err)
	}

	user, err := h.svc.GetProfile(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateMe godoc
// @Summary Update username, email or password
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body map[string]string true "Any of username, email, password"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /users/me [patch]
func (h *UserHandler) UpdateMe(c echo.Context) error {
	id, err := auth.UserID(c)
	if err != nil {
		return errorResponse(c, err)
	}

	var body map[string]any
	if err := c.Bind(&body); err != nil {
		return invalidBody()
	}

	update, err := profileUpdateFromBody(body)
	if err != nil {
		return errorResponse(c, err)
	}

	user, err := h.svc.UpdateProfile(c.Request().Context(), id, update)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// profileUpdateFromBody rejects any key outside the updatable set before
// looking at values.
func profileUpdateFromBody(body map[string]any) (service.ProfileUpdate, error) {
	for key := range body {
		if !updatableUserFields[key] {
			return service.ProfileUpdate{}, apperrors.ErrInvalidUpdates
		}
	}

	var (
		update service.ProfileUpdate
		fields []apperrors.FieldError
	)
	for key, raw := range body {
		s, ok := raw.(string)
		if !ok {
			fields = append(fields, apperrors.FieldError{Field: key, Message: "must be a string"})
			continue
		}
		switch key {
		case "username":
			update.Username = &s
		case "email":
			update.Email = &s
		case "password":
			update.Password = &s
		}
	}
	if len(fields) > 0 {
		return service.ProfileUpdate{}, &apperrors.ValidationError{Fields: fields}
	}
	return update, nil
}

// ChangePassword godoc
// @Summary Change password
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Current and new password"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/me/password [patch]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	id, err := auth.UserID(c)
	if err != nil {
		return errorResponse(c, err)
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return errorResponse(c, err)
	}

	user, err := h.svc.ChangePassword(c.Request().Context(), id, req.CurrentPassword, req.NewPassword)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteMe godoc
// @Summary Delete the current user and all of their reviews
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/me [delete]
func (h *UserHandler) DeleteMe(c echo.Context) error {
	id, err := auth.UserID(c)
	if err != nil {
		return errorResponse(c, err)
	}

	user, err := h.svc.DeleteAccount(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, user)
}
