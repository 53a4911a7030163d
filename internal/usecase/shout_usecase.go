package usecase

import (
	"context"

	"relay/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateShoutInput defines the data required to shout. A nil SourceShoutID
// seeds a brand new chain; otherwise the shout forwards an existing one.
type CreateShoutInput struct {
	ShouterID uuid.UUID
	Location  entity.GeoPoint

	// Seed-only fields. Exactly one destination must be given: a concrete
	// end location or a receiver whose current location becomes the goal.
	EndLocation *entity.GeoPoint
	ReceiverID  *uuid.UUID

	// Forward-only field: the heard shout being carried onward.
	SourceShoutID *uuid.UUID
}

// CreateShoutOutput returns the created shout, its template, and the victory
// when this shout completed the chain.
type CreateShoutOutput struct {
	Shout    *entity.Shout
	Template *entity.Template
	Victory  *entity.Victory
}

// ShoutUsecase defines the business operations around shout chains.
type ShoutUsecase interface {
	// CreateShout seeds or forwards a chain, enforcing the shouter's
	// cooldown and the chain's time windows.
	CreateShout(ctx context.Context, input CreateShoutInput) (*CreateShoutOutput, error)

	// GetShout retrieves a single shout.
	GetShout(ctx context.Context, id uuid.UUID) (*entity.Shout, error)

	// GetTemplate retrieves a single template.
	GetTemplate(ctx context.Context, id uuid.UUID) (*entity.Template, error)
}
