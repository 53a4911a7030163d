package repository

import (
	"context"
	"errors"

	"relay/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrVictoryNotFound is returned when a victory is not found.
var ErrVictoryNotFound = errors.New("victory not found")

// VictoryRepository defines persistence operations for victories. Victories
// are immutable scoring records, so there is no Update.
type VictoryRepository interface {
	// FindByID retrieves a single victory by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Victory, error)

	// ListAll retrieves every stored victory.
	ListAll(ctx context.Context) ([]*entity.Victory, error)

	// Create persists a new victory entity to the storage.
	Create(ctx context.Context, victory *entity.Victory) error

	// Delete removes the victory record.
	Delete(ctx context.Context, id uuid.UUID) error
}
