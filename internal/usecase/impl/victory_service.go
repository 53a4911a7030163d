package impl

import (
	"context"
	"log/slog"
	"time"

	"relay/config"
	deliverycontext "relay/internal/delivery/context"
	"relay/internal/domain/entity"
	domainerrors "relay/internal/domain/errors"
	"relay/internal/domain/repository"
	"relay/internal/domain/service"
	"relay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// victoryService implements the VictoryUsecase interface.
type victoryService struct {
	txManager   repository.TransactionManager
	victoryRepo repository.VictoryRepository
	points      service.PointsPolicy
	logger      *slog.Logger
}

// VictoryServiceParams holds dependencies for VictoryService, injected by Fx.
type VictoryServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	VictoryRepo repository.VictoryRepository
	Points      service.PointsPolicy
	Config      *config.Config
	Logger      *slog.Logger
}

// NewVictoryService is the constructor for victoryService.
func NewVictoryService(params VictoryServiceParams) usecase.VictoryUsecase {
	return &victoryService{
		txManager:   params.TxManager,
		victoryRepo: params.VictoryRepo,
		points:      params.Points,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *victoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Complete settles a finished chain: it marks the template as completed,
// records the victory and credits every receiver, all in one transaction.
// A template can only be completed once.
func (srv *victoryService) Complete(ctx context.Context, input usecase.CompleteVictoryInput) (*entity.Victory, error) {
	var victory *entity.Victory

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		templateRepo := repoFactory.NewTemplateRepository()

		template, findErr := templateRepo.FindByID(ctx, input.TemplateID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrTemplateNotFound) {
				return errors.Wrap(domainerrors.ErrTemplateNotFound, "complete victory")
			}

			return errors.Wrap(findErr, "failed to find template for victory")
		}

		if template.Completed {
			return errors.Wrap(domainerrors.ErrTemplateCompleted, "template already settled")
		}

		template.Completed = true
		if updateErr := templateRepo.Update(ctx, template); updateErr != nil {
			return errors.Wrap(updateErr, "failed to mark template completed")
		}

		gainedPoints := srv.points.PointsFor(template, len(input.ReceiverIDs))

		victory = &entity.Victory{
			ID:            uuid.New(),
			TemplateID:    template.ID,
			ReceiverIDs:   input.ReceiverIDs,
			PointsAwarded: gainedPoints,
			CreatedAt:     time.Now(),
		}

		if createErr := repoFactory.NewVictoryRepository().Create(ctx, victory); createErr != nil {
			return errors.Wrap(createErr, "failed to create victory")
		}

		return srv.creditReceivers(ctx, repoFactory, input.ReceiverIDs, gainedPoints)
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute victory transaction", slog.Any("templateID", input.TemplateID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute victory transaction")
	}

	srv.log(ctx).Info("Victory settled",
		slog.Any("victoryID", victory.ID),
		slog.Any("templateID", victory.TemplateID),
		slog.Int("points", victory.PointsAwarded),
		slog.Int("receivers", len(victory.ReceiverIDs)))

	return victory, nil
}

// creditReceivers adds the gained points to every receiver. A single failed
// credit aborts the whole settlement so no partial payout is ever committed.
func (srv *victoryService) creditReceivers(ctx context.Context, repoFactory repository.RepositoryFactory, receiverIDs []uuid.UUID, gainedPoints int) error {
	userRepo := repoFactory.NewUserRepository()

	for _, receiverID := range receiverIDs {
		receiver, err := userRepo.FindByID(ctx, receiverID)
		if err != nil {
			return errors.Wrapf(err, "failed to load receiver %s for crediting", receiverID)
		}

		receiver.Points += gainedPoints
		if err := userRepo.Update(ctx, receiver); err != nil {
			return errors.Wrapf(err, "failed to credit receiver %s", receiverID)
		}
	}

	return nil
}

// GetVictory retrieves a single victory by ID.
func (srv *victoryService) GetVictory(ctx context.Context, id uuid.UUID) (*entity.Victory, error) {
	victory, err := srv.victoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVictoryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrVictoryNotFound, "get victory")
		}

		return nil, errors.Wrap(err, "failed to find victory by id")
	}

	return victory, nil
}

// Delete removes a victory together with its template and all of the
// template's shouts.
func (srv *victoryService) Delete(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		victory, findErr := repoFactory.NewVictoryRepository().FindByID(ctx, id)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrVictoryNotFound) {
				return errors.Wrap(domainerrors.ErrVictoryNotFound, "delete victory")
			}

			return errors.Wrap(findErr, "failed to find victory for deletion")
		}

		if deleteErr := repoFactory.NewShoutRepository().DeleteByTemplateID(ctx, victory.TemplateID); deleteErr != nil {
			return errors.Wrap(deleteErr, "failed to delete victory shouts")
		}
		if deleteErr := repoFactory.NewTemplateRepository().Delete(ctx, victory.TemplateID); deleteErr != nil {
			return errors.Wrap(deleteErr, "failed to delete victory template")
		}
		if deleteErr := repoFactory.NewVictoryRepository().Delete(ctx, victory.ID); deleteErr != nil {
			return errors.Wrap(deleteErr, "failed to delete victory")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute victory deletion", slog.Any("victoryID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute victory deletion")
	}

	srv.log(ctx).Info("Victory deleted", slog.Any("victoryID", id))

	return nil
}
