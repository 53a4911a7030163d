package impl

import (
	"context"
	"log/slog"
	"time"

	"relay/config"
	deliverycontext "relay/internal/delivery/context"
	"relay/internal/domain/entity"
	"relay/internal/domain/repository"
	"relay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maintenanceService implements the MaintenanceUsecase interface. A failed
// removal of one record never aborts the sweep; the record is retried on the
// next pass.
type maintenanceService struct {
	txManager        repository.TransactionManager
	templateRepo     repository.TemplateRepository
	victoryRepo      repository.VictoryRepository
	victoryUsecase   usecase.VictoryUsecase
	loginKeyRepo     repository.LoginKeyRepository
	victoryRetention time.Duration
	logger           *slog.Logger
}

// MaintenanceServiceParams holds dependencies for MaintenanceService, injected by Fx.
type MaintenanceServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	TemplateRepo   repository.TemplateRepository
	VictoryRepo    repository.VictoryRepository
	VictoryUsecase usecase.VictoryUsecase
	LoginKeyRepo   repository.LoginKeyRepository
	Config         *config.Config
	Logger         *slog.Logger
}

// NewMaintenanceService is the constructor for maintenanceService.
func NewMaintenanceService(params MaintenanceServiceParams) usecase.MaintenanceUsecase {
	retention := entity.VictoryRetention
	if params.Config != nil && params.Config.Game != nil && params.Config.Game.VictoryRetention > 0 {
		retention = params.Config.Game.VictoryRetention
	}

	return &maintenanceService{
		txManager:        params.TxManager,
		templateRepo:     params.TemplateRepo,
		victoryRepo:      params.VictoryRepo,
		victoryUsecase:   params.VictoryUsecase,
		loginKeyRepo:     params.LoginKeyRepo,
		victoryRetention: retention,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *maintenanceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CleanupTemplates removes templates whose chains expired without completing,
// together with their shouts.
func (srv *maintenanceService) CleanupTemplates(ctx context.Context, now time.Time) (int, error) {
	templates, err := srv.templateRepo.ListAll(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list templates for cleanup")
	}

	removed := 0
	for _, template := range templates {
		if !template.EligibleForCleanup(now) {
			continue
		}

		if err := srv.removeTemplate(ctx, template.ID); err != nil {
			srv.log(ctx).Warn("Failed to remove expired template", slog.Any("templateID", template.ID), slog.Any("error", err))

			continue
		}

		removed++
	}

	if removed > 0 {
		srv.log(ctx).Info("Expired templates removed", slog.Int("count", removed))
	}

	return removed, nil
}

// removeTemplate deletes a template and its shouts in one transaction.
func (srv *maintenanceService) removeTemplate(ctx context.Context, templateID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewShoutRepository().DeleteByTemplateID(ctx, templateID); err != nil {
			return errors.Wrap(err, "failed to delete template shouts")
		}
		if err := repoFactory.NewTemplateRepository().Delete(ctx, templateID); err != nil {
			return errors.Wrap(err, "failed to delete template")
		}

		return nil
	})
}

// CleanupVictories removes victories past their retention. The cascade to
// the completed template and its shouts lives in the victory usecase.
func (srv *maintenanceService) CleanupVictories(ctx context.Context, now time.Time) (int, error) {
	victories, err := srv.victoryRepo.ListAll(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list victories for cleanup")
	}

	removed := 0
	for _, victory := range victories {
		if !victory.ShouldBeRemoved(now, srv.victoryRetention) {
			continue
		}

		if err := srv.victoryUsecase.Delete(ctx, victory.ID); err != nil {
			srv.log(ctx).Warn("Failed to remove expired victory", slog.Any("victoryID", victory.ID), slog.Any("error", err))

			continue
		}

		removed++
	}

	if removed > 0 {
		srv.log(ctx).Info("Expired victories removed", slog.Int("count", removed))
	}

	return removed, nil
}

// CleanupLoginKeys removes login keys that expired before now.
func (srv *maintenanceService) CleanupLoginKeys(ctx context.Context, now time.Time) (int64, error) {
	removed, err := srv.loginKeyRepo.DeleteExpired(ctx, now)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete expired login keys")
	}

	if removed > 0 {
		srv.log(ctx).Info("Expired login keys removed", slog.Int64("count", removed))
	}

	return removed, nil
}
