package usecase

import (
	"context"

	"relay/internal/domain/entity"

	"github.com/google/uuid"
)

// BestShoutLimit caps how many shouts a listening request returns.
const BestShoutLimit = 3

// BestShoutsInput identifies the listener and where they are listening from.
type BestShoutsInput struct {
	UserID   uuid.UUID
	Location entity.GeoPoint
}

// RankerUsecase selects the best audible shouts for a listener.
type RankerUsecase interface {
	// BestShouts returns up to BestShoutLimit shouts audible to the user at
	// the given location, best first. Listening also records the user's
	// location.
	BestShouts(ctx context.Context, input BestShoutsInput) ([]*entity.Shout, error)
}
