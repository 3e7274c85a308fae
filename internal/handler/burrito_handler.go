package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"burritoapi/internal/auth"
	apperrors "burritoapi/internal/errors"
	"burritoapi/internal/model"
	"burritoapi/internal/service"
)

// BurritoHandler handles burrito review endpoints.
type BurritoHandler struct {
	svc service.BurritoService
}

// NewBurritoHandler creates a new burrito handler.
func NewBurritoHandler(svc service.BurritoService) *BurritoHandler {
	return &BurritoHandler{svc: svc}
}

// List godoc
// @Summary List all reviews
// @Tags burritos
// @Produce json
// @Success 200 {array} model.Burrito
// @Failure 500 {object} errors.ErrorResponse
// @Router /burritos [get]
func (h *BurritoHandler) List(c echo.Context) error {
	burritos, err := h.svc.List(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, burritos)
}

// Search godoc
// @Summary Search reviews by restaurant name
// @Tags burritos
// @Produce json
// @Param searchTerm query string false "Case-insensitive substring of the restaurant name"
// @Success 200 {array} model.Burrito
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/search [get]
func (h *BurritoHandler) Search(c echo.Context) error {
	burritos, err := h.svc.Search(c.Request().Context(), c.QueryParam("searchTerm"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, burritos)
}

// Get godoc
// @Summary Get a review
// @Tags burritos
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} model.Burrito
// @Failure 404 {object} errors.ErrorResponse
// @Router /burritos/{id} [get]
func (h *BurritoHandler) Get(c echo.Context) error {
	id, err := burritoID(c)
	if err != nil {
		return errorResponse(c, err)
	}

	burrito, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, burrito)
}

// Create godoc
// @Summary Create a review owned by the caller
// @Tags burritos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.BurritoInput true "Review fields"
// @Success 200 {object} model.Burrito
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /burritos [post]
func (h *BurritoHandler) Create(c echo.Context) error {
	ownerID, err := auth.UserID(c)
	if err != nil {
		return errorResponse(c, err)
	}

	var in service.BurritoInput
	if err := c.Bind(&in); err != nil {
		return invalidBody()
	}

	burrito, err := h.svc.Create(c.Request().Context(), ownerID, in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, burrito)
}

// Replace godoc
// @Summary Replace a review
// @Description Fields missing from the body are cleared.
// @Tags burritos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body service.BurritoInput true "Review fields"
// @Success 200 {object} model.Burrito
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /burritos/{id} [put]
func (h *BurritoHandler) Replace(c echo.Context) error {
	return h.update(c, h.svc.Replace)
}

// Patch godoc
// @Summary Update some fields of a review
// @Tags burritos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body service.BurritoInput true "Review fields"
// @Success 200 {object} model.Burrito
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /burritos/{id} [patch]
func (h *BurritoHandler) Patch(c echo.Context) error {
	return h.update(c, h.svc.Patch)
}

type updateFunc func(ctx context.Context, requesterID, id uuid.UUID, in service.BurritoInput) (*model.Burrito, error)

func (h *BurritoHandler) update(c echo.Context, apply updateFunc) error {
	requesterID, err := auth.UserID(c)
	if err != nil {
		return errorResponse(c, err)
	}
	id, err := burritoID(c)
	if err != nil {
		return errorResponse(c, err)
	}

	var in service.BurritoInput
	if err := c.Bind(&in); err != nil {
		return invalidBody()
	}

	burrito, err := apply(c.Request().Context(), requesterID, id, in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, burrito)
}

// Delete godoc
// @Summary Delete a review
// @Tags burritos
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 200 {object} model.Burrito
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /burritos/{id} [delete]
func (h *BurritoHandler) Delete(c echo.Context) error {
	requesterID, err := auth.UserID(c)
	if err != nil {
		return errorResponse(c, err)
	}
	id, err := burritoID(c)
	if err != nil {
		return errorResponse(c, err)
	}

	burrito, err := h.svc.Delete(c.Request().Context(), requesterID, id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, burrito)
}

// Like godoc
// @Summary Add a thumbs up
// @Tags burritos
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 200 {object} model.Burrito
// @Failure 404 {object} errors.ErrorResponse
// @Router /burritos/{id}/like [patch]
func (h *BurritoHandler) Like(c echo.Context) error {
	return h.count(c, h.svc.Like)
}

// Dislike godoc
// @Summary Add a thumbs down
// @Tags burritos
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 200 {object} model.Burrito
// @Failure 404 {object} errors.ErrorResponse
// @Router /burritos/{id}/dislike [patch]
func (h *BurritoHandler) Dislike(c echo.Context) error {
	return h.count(c, h.svc.Dislike)
}

func (h *BurritoHandler) count(c echo.Context, bump func(context.Context, uuid.UUID) (*model.Burrito, error)) error {
	id, err := burritoID(c)
	if err != nil {
		return errorResponse(c, err)
	}

	burrito, err := bump(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, burrito)
}

// burritoID parses the :id path parameter. A malformed id cannot name a
// stored review, so it is reported as not found.
func burritoID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.ErrBurritoNotFound
	}
	return id, nil
}
