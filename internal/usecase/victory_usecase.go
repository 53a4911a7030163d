package usecase

import (
	"context"

	"relay/internal/domain/entity"

	"github.com/google/uuid"
)

// CompleteVictoryInput defines the data needed to settle a finished chain.
type CompleteVictoryInput struct {
	TemplateID  uuid.UUID
	ReceiverIDs []uuid.UUID
}

// VictoryUsecase manages the terminal scoring records of completed chains.
type VictoryUsecase interface {
	// Complete marks the template as completed, creates the victory record
	// and credits every receiver. Completing an already completed template
	// is a forbidden action.
	Complete(ctx context.Context, input CompleteVictoryInput) (*entity.Victory, error)

	// GetVictory retrieves a single victory.
	GetVictory(ctx context.Context, id uuid.UUID) (*entity.Victory, error)

	// Delete removes the victory together with its template and the
	// template's shouts.
	Delete(ctx context.Context, id uuid.UUID) error
}
