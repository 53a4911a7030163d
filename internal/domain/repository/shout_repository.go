package repository

import (
	"context"
	"errors"

	"relay/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrShoutNotFound is returned when a shout is not found.
var ErrShoutNotFound = errors.New("shout not found")

// ShoutRepository defines persistence operations for shouts. Shouts are
// immutable once created, so there is no Update.
type ShoutRepository interface {
	// FindByID retrieves a single shout by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shout, error)

	// ListAll retrieves every stored shout. The audible set is small by
	// construction because expired shouts are garbage collected.
	ListAll(ctx context.Context) ([]*entity.Shout, error)

	// Create persists a new shout entity to the storage.
	Create(ctx context.Context, shout *entity.Shout) error

	// DeleteByTemplateID removes every shout belonging to the given template.
	DeleteByTemplateID(ctx context.Context, templateID uuid.UUID) error
}
