package auth

import (
	"github.com/google/uuid"

	apperrors "burritoapi/internal/errors"
)

// AuthorizeOwner allows a mutation only when the requester owns the record.
// Callers must confirm the record exists first.
func AuthorizeOwner(requesterID, ownerID uuid.UUID) error {
	if requesterID == uuid.Nil || requesterID != ownerID {
		return apperrors.ErrNotOwner
	}
	return nil
}
