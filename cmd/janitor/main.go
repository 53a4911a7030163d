// The janitor runs only the maintenance sweeps, for deployments that keep
// cleanup off the serving instances.
package main

import (
	"context"
	"log/slog"
	"os"

	"relay/config"
	"relay/internal/delivery"
	"relay/internal/delivery/scheduler"
	"relay/internal/domain/service"
	logs "relay/internal/infra/log"
	"relay/internal/infra/persistence/postgres"
	"relay/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTemplateRepository,
			postgres.NewVictoryRepository,
			postgres.NewLoginKeyRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPointsPolicy,
		),
	)
}

// newPointsPolicy builds the scoring policy from configuration. The sweeps
// never award points, but the victory usecase that owns the deletion cascade
// carries the policy with it.
func newPointsPolicy(cfg *config.Config) service.PointsPolicy {
	if cfg.Game == nil {
		return service.NewParticipantPointsPolicy(0)
	}

	return service.NewParticipantPointsPolicy(cfg.Game.BasePoints)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewVictoryService,
			impl.NewMaintenanceService,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				scheduler.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start scheduler", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
