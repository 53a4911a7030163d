package repository

import (
	"context"
	"errors"

	"relay/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTemplateNotFound is returned when a template is not found.
var ErrTemplateNotFound = errors.New("template not found")

// TemplateRepository defines persistence operations for shout templates.
type TemplateRepository interface {
	// FindByID retrieves a single template by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Template, error)

	// ListAll retrieves every stored template.
	ListAll(ctx context.Context) ([]*entity.Template, error)

	// Create persists a new template entity to the storage.
	Create(ctx context.Context, template *entity.Template) error

	// Update modifies an existing template entity in the storage.
	Update(ctx context.Context, template *entity.Template) error

	// Delete removes the template. Dependent shouts are removed separately
	// through the shout repository.
	Delete(ctx context.Context, id uuid.UUID) error
}
