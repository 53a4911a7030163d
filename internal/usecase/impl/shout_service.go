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

// shoutService implements the ShoutUsecase interface.
type shoutService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	shoutRepo      repository.ShoutRepository
	templateRepo   repository.TemplateRepository
	victoryUsecase usecase.VictoryUsecase
	reachPolicy    service.ReachPolicy
	cooldown       time.Duration
	logger         *slog.Logger
}

// ShoutServiceParams holds dependencies for ShoutService, injected by Fx.
type ShoutServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	ShoutRepo      repository.ShoutRepository
	TemplateRepo   repository.TemplateRepository
	VictoryUsecase usecase.VictoryUsecase
	ReachPolicy    service.ReachPolicy
	Config         *config.Config
	Logger         *slog.Logger
}

// NewShoutService is the constructor for shoutService.
func NewShoutService(params ShoutServiceParams) usecase.ShoutUsecase {
	cooldown := entity.ShoutCooldown
	if params.Config != nil && params.Config.Game != nil && params.Config.Game.ShoutCooldown > 0 {
		cooldown = params.Config.Game.ShoutCooldown
	}

	return &shoutService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		shoutRepo:      params.ShoutRepo,
		templateRepo:   params.TemplateRepo,
		victoryUsecase: params.VictoryUsecase,
		reachPolicy:    params.ReachPolicy,
		cooldown:       cooldown,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *shoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateShout seeds a new chain or forwards an existing one. Forwarding a
// shout into reach of the template's end location settles the chain as a
// victory.
func (srv *shoutService) CreateShout(ctx context.Context, input usecase.CreateShoutInput) (*usecase.CreateShoutOutput, error) {
	now := time.Now()

	shouter, err := srv.userRepo.FindByID(ctx, input.ShouterID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "create shout")
		}

		return nil, errors.Wrap(err, "failed to find shouter")
	}

	if !shouter.CanShout(now, srv.cooldown) {
		srv.log(ctx).Debug("Shout rejected by cooldown", slog.Any("userID", shouter.ID))

		return nil, errors.Wrap(domainerrors.ErrCooldownActive, "create shout")
	}

	if input.SourceShoutID == nil {
		return srv.seedChain(ctx, shouter, input, now)
	}

	return srv.forwardChain(ctx, shouter, input, now)
}

// seedChain creates a template and its first shout in one transaction.
func (srv *shoutService) seedChain(ctx context.Context, shouter *entity.User, input usecase.CreateShoutInput, now time.Time) (*usecase.CreateShoutOutput, error) {
	endLocation, err := srv.resolveEndLocation(ctx, input)
	if err != nil {
		return nil, err
	}

	template := &entity.Template{
		ID:            uuid.New(),
		SenderID:      shouter.ID,
		ReceiverID:    input.ReceiverID,
		StartLocation: input.Location,
		EndLocation:   endLocation,
		LastShoutAt:   now,
		CreatedAt:     now,
	}
	shout := &entity.Shout{
		ID:             uuid.New(),
		TemplateID:     template.ID,
		ParticipantIDs: []uuid.UUID{shouter.ID},
		Origin:         input.Location,
		CreatedAt:      now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if createErr := repoFactory.NewTemplateRepository().Create(ctx, template); createErr != nil {
			return errors.Wrap(createErr, "failed to create template")
		}
		if createErr := repoFactory.NewShoutRepository().Create(ctx, shout); createErr != nil {
			return errors.Wrap(createErr, "failed to create first shout")
		}

		return srv.recordShouterActivity(ctx, repoFactory, shouter, input.Location, now)
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute seed transaction", slog.Any("userID", shouter.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute seed shout transaction")
	}

	srv.log(ctx).Info("Chain seeded",
		slog.Any("templateID", template.ID),
		slog.Any("shoutID", shout.ID),
		slog.Any("userID", shouter.ID))

	return &usecase.CreateShoutOutput{Shout: shout, Template: template}, nil
}

// resolveEndLocation picks the seed destination: an explicit end location, or
// the receiver's current whereabouts.
func (srv *shoutService) resolveEndLocation(ctx context.Context, input usecase.CreateShoutInput) (entity.GeoPoint, error) {
	if input.EndLocation != nil {
		return *input.EndLocation, nil
	}

	if input.ReceiverID == nil {
		return entity.GeoPoint{}, errors.Wrap(domainerrors.ErrValidationFailed, "a seed shout needs an end location or a receiver")
	}

	receiver, err := srv.userRepo.FindByID(ctx, *input.ReceiverID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return entity.GeoPoint{}, errors.Wrap(domainerrors.ErrUserNotFound, "resolve receiver")
		}

		return entity.GeoPoint{}, errors.Wrap(err, "failed to find receiver")
	}

	return receiver.Location, nil
}

// forwardChain appends the shouter to a heard chain and checks for victory.
func (srv *shoutService) forwardChain(ctx context.Context, shouter *entity.User, input usecase.CreateShoutInput, now time.Time) (*usecase.CreateShoutOutput, error) {
	source, err := srv.shoutRepo.FindByID(ctx, *input.SourceShoutID)
	if err != nil {
		if errors.Is(err, repository.ErrShoutNotFound) {
			return nil, errors.Wrap(domainerrors.ErrShoutNotFound, "forward shout")
		}

		return nil, errors.Wrap(err, "failed to find source shout")
	}

	if source.HasParticipant(shouter.ID) {
		return nil, errors.Wrap(domainerrors.ErrAlreadyInChain, "forward shout")
	}
	if !source.CanBeReshouted(now) {
		return nil, errors.Wrap(domainerrors.ErrChainExpired, "forward shout")
	}

	template, err := srv.templateRepo.FindByID(ctx, source.TemplateID)
	if err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTemplateNotFound, "forward shout")
		}

		return nil, errors.Wrap(err, "failed to find template")
	}

	if template.Completed {
		return nil, errors.Wrap(domainerrors.ErrTemplateCompleted, "forward shout")
	}
	if !template.CanBeShouted(now) {
		return nil, errors.Wrap(domainerrors.ErrTemplateExpired, "forward shout")
	}

	participants := make([]uuid.UUID, 0, len(source.ParticipantIDs)+1)
	participants = append(participants, source.ParticipantIDs...)
	participants = append(participants, shouter.ID)

	shout := &entity.Shout{
		ID:             uuid.New(),
		TemplateID:     template.ID,
		ParticipantIDs: participants,
		Origin:         input.Location,
		CreatedAt:      now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if createErr := repoFactory.NewShoutRepository().Create(ctx, shout); createErr != nil {
			return errors.Wrap(createErr, "failed to create forwarded shout")
		}

		template.LastShoutAt = now
		if updateErr := repoFactory.NewTemplateRepository().Update(ctx, template); updateErr != nil {
			return errors.Wrap(updateErr, "failed to refresh template")
		}

		return srv.recordShouterActivity(ctx, repoFactory, shouter, input.Location, now)
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute forward transaction", slog.Any("userID", shouter.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute forward shout transaction")
	}

	srv.log(ctx).Info("Chain forwarded",
		slog.Any("templateID", template.ID),
		slog.Any("shoutID", shout.ID),
		slog.Int("chainLength", len(participants)))

	output := &usecase.CreateShoutOutput{Shout: shout, Template: template}

	// Settle the chain when this shout carries into reach of the goal.
	if shout.Reaches(template.EndLocation, srv.reachPolicy.ReachOf(shout)) {
		victory, completeErr := srv.victoryUsecase.Complete(ctx, usecase.CompleteVictoryInput{
			TemplateID:  template.ID,
			ReceiverIDs: participants,
		})
		if completeErr != nil {
			srv.log(ctx).Error("Failed to settle completed chain", slog.Any("templateID", template.ID), slog.Any("error", completeErr))

			return nil, errors.Wrap(completeErr, "failed to settle completed chain")
		}

		output.Victory = victory
	}

	return output, nil
}

// recordShouterActivity stores the shouter's new location and restarts their cooldown.
func (srv *shoutService) recordShouterActivity(ctx context.Context, repoFactory repository.RepositoryFactory, shouter *entity.User, location entity.GeoPoint, now time.Time) error {
	shouter.Location = location
	shouter.LastShoutAt = now

	if err := repoFactory.NewUserRepository().Update(ctx, shouter); err != nil {
		return errors.Wrap(err, "failed to record shouter activity")
	}

	return nil
}

// GetShout retrieves a single shout by ID.
func (srv *shoutService) GetShout(ctx context.Context, id uuid.UUID) (*entity.Shout, error) {
	shout, err := srv.shoutRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrShoutNotFound) {
			return nil, errors.Wrap(domainerrors.ErrShoutNotFound, "get shout")
		}

		return nil, errors.Wrap(err, "failed to find shout by id")
	}

	return shout, nil
}

// GetTemplate retrieves a single template by ID.
func (srv *shoutService) GetTemplate(ctx context.Context, id uuid.UUID) (*entity.Template, error) {
	template, err := srv.templateRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTemplateNotFound, "get template")
		}

		return nil, errors.Wrap(err, "failed to find template by id")
	}

	return template, nil
}
