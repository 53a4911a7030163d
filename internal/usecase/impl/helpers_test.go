package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"relay/config"
	"relay/internal/domain/repository"
	mockRepo "relay/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Game: &config.GameConfig{
			ShoutCooldown:    15 * time.Minute,
			ReachMeters:      1000,
			BasePoints:       10,
			VictoryRetention: 7 * 24 * time.Hour,
		},
	}
}

// expectPassthroughTx makes the transaction manager run the given function
// against the supplied factory, as the real manager would inside a committed
// transaction.
func expectPassthroughTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
