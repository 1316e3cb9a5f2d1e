package authz

import (
	"testing"

	domainerrors "vendo/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequireOwner_Match(t *testing.T) {
	owner := uuid.New()

	assert.NoError(t, RequireOwner(owner, owner))
}

func TestRequireOwner_Mismatch(t *testing.T) {
	err := RequireOwner(uuid.New(), uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrOwnershipViolation)
}
