package main

import (
	"context"
	"log/slog"
	"os"

	"relay/config"
	"relay/internal/delivery"
	"relay/internal/delivery/http"
	"relay/internal/delivery/http/middleware"
	"relay/internal/delivery/http/router/handler"
	"relay/internal/delivery/scheduler"
	"relay/internal/domain/service"
	"relay/internal/infra/auth"
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
		injectMiddleware(),
		injectHandler(),
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
			postgres.NewUserRepository,
			postgres.NewShoutRepository,
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
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newShoutComparator,
			newReachPolicy,
			newPointsPolicy,
		),
	)
}

// newShoutComparator picks the ordering used by the best-shout listing.
func newShoutComparator() service.ShoutComparator {
	return service.NewRecencyComparator()
}

// newReachPolicy builds the reach policy from configuration.
func newReachPolicy(cfg *config.Config) service.ReachPolicy {
	if cfg.Game == nil {
		return service.NewFixedReachPolicy(0)
	}

	return service.NewFixedReachPolicy(cfg.Game.ReachMeters)
}

// newPointsPolicy builds the scoring policy from configuration.
func newPointsPolicy(cfg *config.Config) service.PointsPolicy {
	if cfg.Game == nil {
		return service.NewParticipantPointsPolicy(0)
	}

	return service.NewParticipantPointsPolicy(cfg.Game.BasePoints)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewShoutService,
			impl.NewRankerService,
			impl.NewVictoryService,
			impl.NewMaintenanceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewShoutHandler,
			handler.NewVictoryHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
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
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
