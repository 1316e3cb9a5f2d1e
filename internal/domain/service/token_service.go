package service

import (
	"time"

	"vendo/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by Vendo's JWT tokens.
type Claims struct {
	AccountID uuid.UUID `json:"-"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role,omitempty"`
	Type      string    `json:"type"` // "access" or "refresh"
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for an account.
	// The access token carries email and role; the refresh token carries neither.
	GenerateTokens(accountID uuid.UUID, email string, role entity.Role) (accessToken string, refreshToken string, err error)

	// ValidateToken checks the signature and expiry of a token string and
	// returns its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// HashToken returns the hash under which a refresh token is stored.
	HashToken(token string) string

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
