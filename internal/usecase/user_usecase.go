// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"relay/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new player.
type RegisterUserInput struct {
	UserName string
	Password string
	Location entity.GeoPoint
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	UserName string
	Password string
}

// RedeemLoginKeyInput carries the opaque login key a returning client
// presents instead of its credentials.
type RedeemLoginKeyInput struct {
	LoginKey string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the credentials issued after a successful login: a JWT
// access token plus an opaque login key that survives server restarts.
type LoginOutput struct {
	AccessToken string
	LoginKey    string
	User        *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterUserInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// RedeemLoginKey exchanges a stored login key for a fresh access token
	// without asking for credentials again.
	RedeemLoginKey(ctx context.Context, input RedeemLoginKeyInput) (*LoginOutput, error)

	// Logout revokes every login key issued to the user.
	Logout(ctx context.Context, userID uuid.UUID) error

	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetUserVictories(ctx context.Context, userID uuid.UUID) ([]*entity.Victory, error)
}
