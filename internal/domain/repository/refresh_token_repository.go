package repository

import (
	"context"
	"errors"

	"vendo/internal/domain/entity"
)

// ErrTokenNotFound is returned when a refresh token is not found or expired.
var ErrTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the standard operations for session persistence.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new refresh token, representing a session.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves a live (unexpired) refresh token record
	// by its securely stored hash.
	FindRefreshTokenByHash(ctx context.Context, hash string) (*entity.RefreshToken, error)

	// DeleteRefreshTokenByHash deletes a refresh token by its hash, ending a session.
	DeleteRefreshTokenByHash(ctx context.Context, hash string) error
}
