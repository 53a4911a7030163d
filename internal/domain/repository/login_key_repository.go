package repository

import (
	"context"
	"errors"
	"time"

	"relay/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrLoginKeyNotFound is returned when a login key is not found.
var ErrLoginKeyNotFound = errors.New("login key not found")

// LoginKeyRepository defines persistence operations for issued login keys.
type LoginKeyRepository interface {
	// Create persists a newly issued login key.
	Create(ctx context.Context, key *entity.LoginKey) error

	// FindByHash retrieves a login key by the hash of its opaque token.
	FindByHash(ctx context.Context, keyHash string) (*entity.LoginKey, error)

	// DeleteByUserID removes every key issued to the given user.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error

	// DeleteExpired removes every key that expired before the given moment
	// and returns how many rows were removed.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
