package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the JWT access tokens.
type Claims struct {
	UserID   uuid.UUID
	UserName string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a new access token for a given user.
	GenerateToken(userID uuid.UUID, userName string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// GenerateLoginKey creates a new opaque login key for persisting a
	// session across restarts.
	GenerateLoginKey() (string, error)

	// HashKey produces the storable digest of an opaque login key.
	HashKey(key string) string

	// GetLoginKeyDuration returns the configured lifetime for persisted login keys.
	GetLoginKeyDuration() time.Duration
}
