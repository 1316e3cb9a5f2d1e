// Package authz holds the ownership policy applied by every
// ownership-sensitive mutation. Handlers and usecases never compare owner
// references inline; they call RequireOwner so the rule lives in one place.
package authz

import (
	domainerrors "vendo/internal/domain/errors"

	"github.com/google/uuid"
)

// RequireOwner returns nil when the caller is the recorded owner of a
// resource, and ErrOwnershipViolation otherwise. Callers must resolve
// resource existence first so that a missing resource reports 404 before
// this check can report 403.
func RequireOwner(callerID, ownerID uuid.UUID) error {
	if callerID != ownerID {
		return domainerrors.ErrOwnershipViolation
	}

	return nil
}
