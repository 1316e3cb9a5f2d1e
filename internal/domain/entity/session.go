package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken represents a long-lived, authorized session. It is used to
// obtain a new access token after the old one expires, without requiring
// the account's credentials again.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this specific refresh token record.
	AccountID uuid.UUID // Links this session to the Account it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token for secure comparison.
	ExpiresAt time.Time // When this refresh token becomes invalid.
	CreatedAt time.Time // When this session was created (i.e., when the account logged in).
}
