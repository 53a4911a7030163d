package usecase

import (
	"context"
	"time"
)

// MaintenanceUsecase groups the periodic cleanup passes run by the scheduler.
// Each pass returns how many records it removed.
type MaintenanceUsecase interface {
	// CleanupTemplates removes templates whose chains expired without
	// completing, together with their shouts.
	CleanupTemplates(ctx context.Context, now time.Time) (int, error)

	// CleanupVictories removes victories past their retention, together
	// with their completed templates and shouts.
	CleanupVictories(ctx context.Context, now time.Time) (int, error)

	// CleanupLoginKeys removes expired login keys.
	CleanupLoginKeys(ctx context.Context, now time.Time) (int64, error)
}
