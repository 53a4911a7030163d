package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "relay/internal/delivery/context"
	"relay/internal/domain/entity"
	domainerrors "relay/internal/domain/errors"
	"relay/internal/domain/repository"
	"relay/internal/domain/service"
	"relay/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// rankerService implements the RankerUsecase interface.
type rankerService struct {
	userRepo   repository.UserRepository
	shoutRepo  repository.ShoutRepository
	comparator service.ShoutComparator
	reach      service.ReachPolicy
	logger     *slog.Logger
}

// RankerServiceParams holds dependencies for RankerService, injected by Fx.
type RankerServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	ShoutRepo  repository.ShoutRepository
	Comparator service.ShoutComparator
	Reach      service.ReachPolicy
	Logger     *slog.Logger
}

// NewRankerService is the constructor for rankerService.
func NewRankerService(params RankerServiceParams) usecase.RankerUsecase {
	return &rankerService{
		userRepo:   params.UserRepo,
		shoutRepo:  params.ShoutRepo,
		comparator: params.Comparator,
		reach:      params.Reach,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *rankerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BestShouts returns the top audible shouts for the listener, best first.
// Listening also records the listener's current location.
func (srv *rankerService) BestShouts(ctx context.Context, input usecase.BestShoutsInput) ([]*entity.Shout, error) {
	now := time.Now()

	listener, err := srv.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "best shouts")
		}

		return nil, errors.Wrap(err, "failed to find listener")
	}

	listener.Location = input.Location
	if err := srv.userRepo.Update(ctx, listener); err != nil {
		// Listening should still work when the location write fails.
		srv.log(ctx).Warn("Failed to record listener location", slog.Any("userID", listener.ID), slog.Any("error", err))
	}

	shouts, err := srv.shoutRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shouts")
	}

	best := make([]*entity.Shout, 0, usecase.BestShoutLimit)
	for _, shout := range shouts {
		if !shout.CanBeHeardBy(listener.ID, now) {
			continue
		}
		if !shout.Reaches(input.Location, srv.reach.ReachOf(shout)) {
			continue
		}

		best = srv.insertRanked(best, shout)
	}

	srv.log(ctx).Debug("Best shouts selected",
		slog.Any("userID", listener.ID),
		slog.Int("candidates", len(shouts)),
		slog.Int("selected", len(best)))

	return best, nil
}

// insertRanked inserts the shout into the bounded, ordered result list and
// drops the worst entry when the list overflows.
func (srv *rankerService) insertRanked(best []*entity.Shout, shout *entity.Shout) []*entity.Shout {
	pos := len(best)
	for i, ranked := range best {
		if srv.comparator.Less(shout, ranked) {
			pos = i

			break
		}
	}

	if pos == len(best) {
		if len(best) == usecase.BestShoutLimit {
			return best
		}

		return append(best, shout)
	}

	best = append(best, nil)
	copy(best[pos+1:], best[pos:])
	best[pos] = shout

	if len(best) > usecase.BestShoutLimit {
		best = best[:usecase.BestShoutLimit]
	}

	return best
}
