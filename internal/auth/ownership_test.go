package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	apperrors "burritoapi/internal/errors"
)

func TestAuthorizeOwner(t *testing.T) {
	owner := uuid.New()

	assert.NoError(t, AuthorizeOwner(owner, owner))
	assert.ErrorIs(t, AuthorizeOwner(uuid.New(), owner), apperrors.ErrNotOwner)
	assert.ErrorIs(t, AuthorizeOwner(uuid.Nil, uuid.Nil), apperrors.ErrNotOwner)
}
