package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"relay/config"
	mockUsecase "relay/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewScheduler_DefaultIntervals(t *testing.T) {
	maintenance := mockUsecase.NewMockMaintenanceUsecase(t)

	d, err := NewScheduler(SchedulerParams{
		Lifecycle:   fxtest.NewLifecycle(t),
		Config:      &config.Config{},
		Logger:      newDiscardLogger(),
		Maintenance: maintenance,
	})
	require.NoError(t, err)

	s, ok := d.(*maintenanceScheduler)
	require.True(t, ok)
	assert.Equal(t, defaultTemplateSweepInterval, s.templateInterval)
	assert.Equal(t, defaultVictorySweepInterval, s.victoryInterval)
	assert.Equal(t, defaultLoginKeySweepInterval, s.loginKeyInterval)
}

func TestNewScheduler_ConfiguredIntervals(t *testing.T) {
	maintenance := mockUsecase.NewMockMaintenanceUsecase(t)

	d, err := NewScheduler(SchedulerParams{
		Lifecycle: fxtest.NewLifecycle(t),
		Config: &config.Config{
			Maintenance: &config.MaintenanceConfig{
				TemplateSweepInterval: time.Hour,
				VictorySweepInterval:  6 * time.Hour,
				LoginKeySweepInterval: 2 * time.Hour,
			},
		},
		Logger:      newDiscardLogger(),
		Maintenance: maintenance,
	})
	require.NoError(t, err)

	s, ok := d.(*maintenanceScheduler)
	require.True(t, ok)
	assert.Equal(t, time.Hour, s.templateInterval)
	assert.Equal(t, 6*time.Hour, s.victoryInterval)
	assert.Equal(t, 2*time.Hour, s.loginKeyInterval)
}

func newTestScheduler(t *testing.T) (*maintenanceScheduler, *mockUsecase.MockMaintenanceUsecase) {
	maintenance := mockUsecase.NewMockMaintenanceUsecase(t)
	s := &maintenanceScheduler{
		maintenance: maintenance,
		logger:      newDiscardLogger(),
		stop:        make(chan struct{}),
	}

	return s, maintenance
}

func TestScheduler_SweepsCallMaintenance(t *testing.T) {
	s, maintenance := newTestScheduler(t)
	ctx := context.Background()

	maintenance.EXPECT().CleanupTemplates(ctx, mock.AnythingOfType("time.Time")).Return(2, nil)
	maintenance.EXPECT().CleanupVictories(ctx, mock.AnythingOfType("time.Time")).Return(1, nil)
	maintenance.EXPECT().CleanupLoginKeys(ctx, mock.AnythingOfType("time.Time")).Return(int64(7), nil)

	s.sweepTemplates(ctx)
	s.sweepVictories(ctx)
	s.sweepLoginKeys(ctx)
}

func TestScheduler_SweepFailureDoesNotPanic(t *testing.T) {
	s, maintenance := newTestScheduler(t)
	ctx := context.Background()

	maintenance.EXPECT().CleanupTemplates(ctx, mock.AnythingOfType("time.Time")).
		Return(0, errors.New("db down"))

	s.sweepTemplates(ctx)
}

func TestScheduler_ServeStopsOnStop(t *testing.T) {
	s, _ := newTestScheduler(t)
	s.templateInterval = time.Hour
	s.victoryInterval = time.Hour
	s.loginKeyInterval = time.Hour

	done := make(chan error, 1)
	go func() {
		done <- s.Serve(context.Background())
	}()

	close(s.stop)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}
