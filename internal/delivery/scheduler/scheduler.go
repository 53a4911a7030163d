// Package scheduler runs the periodic maintenance sweeps as a delivery.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"relay/config"
	"relay/internal/delivery"
	"relay/internal/usecase"
	"relay/internal/util"

	"go.uber.org/fx"
)

const (
	defaultTemplateSweepInterval = 90 * time.Minute
	defaultVictorySweepInterval  = 24 * time.Hour
	defaultLoginKeySweepInterval = 12 * time.Hour

	// midnightGrace delays the first daily sweep slightly past local
	// midnight so retention cutoffs fall on the new date.
	midnightGrace = 5 * time.Minute
)

// SchedulerParams holds dependencies for the maintenance scheduler, injected by Fx.
type SchedulerParams struct {
	fx.In
	fx.Lifecycle

	Config      *config.Config
	Logger      *slog.Logger
	Maintenance usecase.MaintenanceUsecase
}

type maintenanceScheduler struct {
	templateInterval time.Duration
	victoryInterval  time.Duration
	loginKeyInterval time.Duration
	maintenance      usecase.MaintenanceUsecase
	logger           *slog.Logger
	stop             chan struct{}
}

// NewScheduler creates the background maintenance delivery. Each sweep runs on
// its own ticker so one slow sweep never delays the others.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	templateInterval := defaultTemplateSweepInterval
	victoryInterval := defaultVictorySweepInterval
	loginKeyInterval := defaultLoginKeySweepInterval
	if m := params.Config.Maintenance; m != nil {
		if m.TemplateSweepInterval > 0 {
			templateInterval = m.TemplateSweepInterval
		}
		if m.VictorySweepInterval > 0 {
			victoryInterval = m.VictorySweepInterval
		}
		if m.LoginKeySweepInterval > 0 {
			loginKeyInterval = m.LoginKeySweepInterval
		}
	}

	scheduler := &maintenanceScheduler{
		templateInterval: templateInterval,
		victoryInterval:  victoryInterval,
		loginKeyInterval: loginKeyInterval,
		maintenance:      params.Maintenance,
		logger:           params.Logger,
		stop:             make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			close(scheduler.stop)

			return nil
		},
	})

	return scheduler, nil
}

// Serve runs the sweep loops until the context is cancelled or the scheduler
// is stopped.
func (s *maintenanceScheduler) Serve(ctx context.Context) error {
	s.logger.Info("Starting maintenance scheduler",
		slog.String("templateSweepEvery", util.FormatDuration(s.templateInterval)),
		slog.String("victorySweepEvery", util.FormatDuration(s.victoryInterval)),
		slog.String("loginKeySweepEvery", util.FormatDuration(s.loginKeyInterval)))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go s.runEvery(ctx, s.templateInterval, s.sweepTemplates)
	go s.runDaily(ctx, s.victoryInterval, s.sweepVictories)
	go s.runEvery(ctx, s.loginKeyInterval, s.sweepLoginKeys)

	select {
	case <-ctx.Done():
	case <-s.stop:
	}

	s.logger.Info("Maintenance scheduler stopped")

	return nil
}

// runEvery triggers the sweep on a fixed interval, starting one interval from now.
func (s *maintenanceScheduler) runEvery(ctx context.Context, interval time.Duration, sweep func(ctx context.Context)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stop:
			return
		case <-ticker.C:
			sweep(ctx)
		}
	}
}

// runDaily waits until just past the next local midnight for the first sweep,
// then repeats on the given interval.
func (s *maintenanceScheduler) runDaily(ctx context.Context, interval time.Duration, sweep func(ctx context.Context)) {
	firstRun := time.NewTimer(time.Until(util.NextMidnight(time.Now(), midnightGrace)))
	defer firstRun.Stop()

	select {
	case <-ctx.Done():
		return
	case <-s.stop:
		return
	case <-firstRun.C:
		sweep(ctx)
	}

	s.runEvery(ctx, interval, sweep)
}

func (s *maintenanceScheduler) sweepTemplates(ctx context.Context) {
	removed, err := s.maintenance.CleanupTemplates(ctx, time.Now())
	if err != nil {
		s.logger.Error("Template sweep failed", slog.Any("error", err))

		return
	}

	s.logger.Debug("Template sweep finished", slog.Int("removed", removed))
}

func (s *maintenanceScheduler) sweepVictories(ctx context.Context) {
	removed, err := s.maintenance.CleanupVictories(ctx, time.Now())
	if err != nil {
		s.logger.Error("Victory sweep failed", slog.Any("error", err))

		return
	}

	s.logger.Debug("Victory sweep finished", slog.Int("removed", removed))
}

func (s *maintenanceScheduler) sweepLoginKeys(ctx context.Context) {
	removed, err := s.maintenance.CleanupLoginKeys(ctx, time.Now())
	if err != nil {
		s.logger.Error("Login key sweep failed", slog.Any("error", err))

		return
	}

	s.logger.Debug("Login key sweep finished", slog.Int64("removed", removed))
}
