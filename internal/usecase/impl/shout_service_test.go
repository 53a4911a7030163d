package impl

import (
	"context"
	"testing"
	"time"

	"relay/internal/domain/entity"
	domainerrors "relay/internal/domain/errors"
	"relay/internal/domain/repository"
	"relay/internal/domain/service"
	mockRepo "relay/internal/mocks/repository"
	mockUsecase "relay/internal/mocks/usecase"
	"relay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type shoutServiceFixtures struct {
	txManager      *mockRepo.MockTransactionManager
	userRepo       *mockRepo.MockUserRepository
	shoutRepo      *mockRepo.MockShoutRepository
	templateRepo   *mockRepo.MockTemplateRepository
	victoryUsecase *mockUsecase.MockVictoryUsecase
	service        usecase.ShoutUsecase
}

func createTestShoutService(t *testing.T) *shoutServiceFixtures {
	f := &shoutServiceFixtures{
		txManager:      mockRepo.NewMockTransactionManager(t),
		userRepo:       mockRepo.NewMockUserRepository(t),
		shoutRepo:      mockRepo.NewMockShoutRepository(t),
		templateRepo:   mockRepo.NewMockTemplateRepository(t),
		victoryUsecase: mockUsecase.NewMockVictoryUsecase(t),
	}

	f.service = NewShoutService(ShoutServiceParams{
		TxManager:      f.txManager,
		UserRepo:       f.userRepo,
		ShoutRepo:      f.shoutRepo,
		TemplateRepo:   f.templateRepo,
		VictoryUsecase: f.victoryUsecase,
		ReachPolicy:    service.NewFixedReachPolicy(1000),
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})

	return f
}

// restedUser returns a user whose cooldown elapsed long ago.
func restedUser() *entity.User {
	return &entity.User{
		ID:          uuid.New(),
		UserName:    "shouter",
		LastShoutAt: time.Now().Add(-time.Hour),
	}
}

func (f *shoutServiceFixtures) expectWriteTx(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewShoutRepository().Return(f.shoutRepo).Maybe()
	factory.EXPECT().NewTemplateRepository().Return(f.templateRepo).Maybe()
	factory.EXPECT().NewUserRepository().Return(f.userRepo).Maybe()
	expectPassthroughTx(f.txManager, factory)
}

func TestShoutService_CreateShout_Seed(t *testing.T) {
	f := createTestShoutService(t)
	ctx := context.Background()
	shouter := restedUser()
	origin := entity.NewGeoPoint(60.45, 22.28)
	end := entity.NewGeoPoint(60.47, 22.30)

	f.userRepo.EXPECT().FindByID(ctx, shouter.ID).Return(shouter, nil)
	f.expectWriteTx(t)
	f.templateRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Template")).Return(nil)
	f.shoutRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Shout")).Return(nil)
	f.userRepo.EXPECT().Update(ctx, shouter).Return(nil)

	out, err := f.service.CreateShout(ctx, usecase.CreateShoutInput{
		ShouterID:   shouter.ID,
		Location:    origin,
		EndLocation: &end,
	})
	require.NoError(t, err)
	require.NotNil(t, out.Template)
	require.NotNil(t, out.Shout)
	assert.Nil(t, out.Victory)

	assert.Equal(t, shouter.ID, out.Template.SenderID)
	assert.Equal(t, origin, out.Template.StartLocation)
	assert.Equal(t, end, out.Template.EndLocation)
	assert.Equal(t, out.Template.ID, out.Shout.TemplateID)
	assert.Equal(t, []uuid.UUID{shouter.ID}, out.Shout.ParticipantIDs)
	assert.Equal(t, origin, shouter.Location)
	assert.WithinDuration(t, time.Now(), shouter.LastShoutAt, time.Minute)
}

func TestShoutService_CreateShout_SeedTargetsReceiver(t *testing.T) {
	f := createTestShoutService(t)
	ctx := context.Background()
	shouter := restedUser()
	receiver := &entity.User{ID: uuid.New(), UserName: "receiver", Location: entity.NewGeoPoint(61.0, 23.0)}

	f.userRepo.EXPECT().FindByID(ctx, shouter.ID).Return(shouter, nil)
	f.userRepo.EXPECT().FindByID(ctx, receiver.ID).Return(receiver, nil)
	f.expectWriteTx(t)
	f.templateRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Template")).Return(nil)
	f.shoutRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Shout")).Return(nil)
	f.userRepo.EXPECT().Update(ctx, shouter).Return(nil)

	out, err := f.service.CreateShout(ctx, usecase.CreateShoutInput{
		ShouterID:  shouter.ID,
		Location:   entity.NewGeoPoint(60.45, 22.28),
		ReceiverID: &receiver.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, receiver.Location, out.Template.EndLocation)
	require.NotNil(t, out.Template.ReceiverID)
	assert.Equal(t, receiver.ID, *out.Template.ReceiverID)
}

func TestShoutService_CreateShout_SeedWithoutDestination(t *testing.T) {
	f := createTestShoutService(t)
	ctx := context.Background()
	shouter := restedUser()

	f.userRepo.EXPECT().FindByID(ctx, shouter.ID).Return(shouter, nil)

	out, err := f.service.CreateShout(ctx, usecase.CreateShoutInput{
		ShouterID: shouter.ID,
		Location:  entity.NewGeoPoint(60.45, 22.28),
	})
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestShoutService_CreateShout_CooldownActive(t *testing.T) {
	f := createTestShoutService(t)
	ctx := context.Background()
	shouter := &entity.User{ID: uuid.New(), LastShoutAt: time.Now().Add(-time.Minute)}

	f.userRepo.EXPECT().FindByID(ctx, shouter.ID).Return(shouter, nil)

	out, err := f.service.CreateShout(ctx, usecase.CreateShoutInput{
		ShouterID: shouter.ID,
		Location:  entity.NewGeoPoint(60.45, 22.28),
	})
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrCooldownActive))
}

func TestShoutService_CreateShout_Forward(t *testing.T) {
	f := createTestShoutService(t)
	ctx := context.Background()
	shouter := restedUser()
	firstShouter := uuid.New()

	template := &entity.Template{
		ID:          uuid.New(),
		SenderID:    firstShouter,
		EndLocation: entity.NewGeoPoint(61.0, 23.0), // far away, no victory yet
		LastShoutAt: time.Now().Add(-10 * time.Minute),
	}
	source := &entity.Shout{
		ID:             uuid.New(),
		TemplateID:     template.ID,
		ParticipantIDs: []uuid.UUID{firstShouter},
		Origin:         entity.NewGeoPoint(60.45, 22.28),
		CreatedAt:      time.Now().Add(-10 * time.Minute),
	}

	f.userRepo.EXPECT().FindByID(ctx, shouter.ID).Return(shouter, nil)
	f.shoutRepo.EXPECT().FindByID(ctx, source.ID).Return(source, nil)
	f.templateRepo.EXPECT().FindByID(ctx, template.ID).Return(template, nil)
	f.expectWriteTx(t)
	f.shoutRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Shout")).Return(nil)
	f.templateRepo.EXPECT().Update(ctx, template).Return(nil)
	f.userRepo.EXPECT().Update(ctx, shouter).Return(nil)

	out, err := f.service.CreateShout(ctx, usecase.CreateShoutInput{
		ShouterID:     shouter.ID,
		Location:      entity.NewGeoPoint(60.46, 22.29),
		SourceShoutID: &source.ID,
	})
	require.NoError(t, err)
	assert.Nil(t, out.Victory)
	assert.Equal(t, []uuid.UUID{firstShouter, shouter.ID}, out.Shout.ParticipantIDs)
	assert.WithinDuration(t, time.Now(), template.LastShoutAt, time.Minute)
}

func TestShoutService_CreateShout_ForwardAlreadyInChain(t *testing.T) {
	f := createTestShoutService(t)
	ctx := context.Background()
	shouter := restedUser()

	source := &entity.Shout{
		ID:             uuid.New(),
		TemplateID:     uuid.New(),
		ParticipantIDs: []uuid.UUID{shouter.ID},
		CreatedAt:      time.Now().Add(-10 * time.Minute),
	}

	f.userRepo.EXPECT().FindByID(ctx, shouter.ID).Return(shouter, nil)
	f.shoutRepo.EXPECT().FindByID(ctx, source.ID).Return(source, nil)

	out, err := f.service.CreateShout(ctx, usecase.CreateShoutInput{
		ShouterID:     shouter.ID,
		Location:      entity.NewGeoPoint(60.45, 22.28),
		SourceShoutID: &source.ID,
	})
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyInChain))
}

func TestShoutService_CreateShout_ForwardExpiredChain(t *testing.T) {
	f := createTestShoutService(t)
	ctx := context.Background()
	shouter := restedUser()

	source := &entity.Shout{
		ID:             uuid.New(),
		TemplateID:     uuid.New(),
		ParticipantIDs: []uuid.UUID{uuid.New()},
		CreatedAt:      time.Now().Add(-entity.ReshoutWindow - time.Minute),
	}

	f.userRepo.EXPECT().FindByID(ctx, shouter.ID).Return(shouter, nil)
	f.shoutRepo.EXPECT().FindByID(ctx, source.ID).Return(source, nil)

	out, err := f.service.CreateShout(ctx, usecase.CreateShoutInput{
		ShouterID:     shouter.ID,
		Location:      entity.NewGeoPoint(60.45, 22.28),
		SourceShoutID: &source.ID,
	})
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrChainExpired))
}

func TestShoutService_CreateShout_ForwardCompletedTemplate(t *testing.T) {
	f := createTestShoutService(t)
	ctx := context.Background()
	shouter := restedUser()

	template := &entity.Template{
		ID:          uuid.New(),
		Completed:   true,
		LastShoutAt: time.Now().Add(-time.Minute),
	}
	source := &entity.Shout{
		ID:             uuid.New(),
		TemplateID:     template.ID,
		ParticipantIDs: []uuid.UUID{uuid.New()},
		CreatedAt:      time.Now().Add(-time.Minute),
	}

	f.userRepo.EXPECT().FindByID(ctx, shouter.ID).Return(shouter, nil)
	f.shoutRepo.EXPECT().FindByID(ctx, source.ID).Return(source, nil)
	f.templateRepo.EXPECT().FindByID(ctx, template.ID).Return(template, nil)

	out, err := f.service.CreateShout(ctx, usecase.CreateShoutInput{
		ShouterID:     shouter.ID,
		Location:      entity.NewGeoPoint(60.45, 22.28),
		SourceShoutID: &source.ID,
	})
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrTemplateCompleted))
}

func TestShoutService_CreateShout_ForwardIntoVictory(t *testing.T) {
	f := createTestShoutService(t)
	ctx := context.Background()
	shouter := restedUser()
	firstShouter := uuid.New()
	goal := entity.NewGeoPoint(60.4605, 22.29)

	template := &entity.Template{
		ID:          uuid.New(),
		SenderID:    firstShouter,
		EndLocation: goal,
		LastShoutAt: time.Now().Add(-10 * time.Minute),
	}
	source := &entity.Shout{
		ID:             uuid.New(),
		TemplateID:     template.ID,
		ParticipantIDs: []uuid.UUID{firstShouter},
		Origin:         entity.NewGeoPoint(60.45, 22.28),
		CreatedAt:      time.Now().Add(-10 * time.Minute),
	}
	settled := &entity.Victory{ID: uuid.New(), TemplateID: template.ID, PointsAwarded: 20}

	f.userRepo.EXPECT().FindByID(ctx, shouter.ID).Return(shouter, nil)
	f.shoutRepo.EXPECT().FindByID(ctx, source.ID).Return(source, nil)
	f.templateRepo.EXPECT().FindByID(ctx, template.ID).Return(template, nil)
	f.expectWriteTx(t)
	f.shoutRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Shout")).Return(nil)
	f.templateRepo.EXPECT().Update(ctx, template).Return(nil)
	f.userRepo.EXPECT().Update(ctx, shouter).Return(nil)
	f.victoryUsecase.EXPECT().
		Complete(ctx, mock.AnythingOfType("usecase.CompleteVictoryInput")).
		Run(func(_ context.Context, input usecase.CompleteVictoryInput) {
			assert.Equal(t, template.ID, input.TemplateID)
			assert.Equal(t, []uuid.UUID{firstShouter, shouter.ID}, input.ReceiverIDs)
		}).
		Return(settled, nil)

	// Shouted from ~60 meters away from the goal, well within reach.
	out, err := f.service.CreateShout(ctx, usecase.CreateShoutInput{
		ShouterID:     shouter.ID,
		Location:      entity.NewGeoPoint(60.46, 22.29),
		SourceShoutID: &source.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, out.Victory)
	assert.Equal(t, settled.ID, out.Victory.ID)
}

func TestShoutService_GetShout_NotFound(t *testing.T) {
	f := createTestShoutService(t)
	ctx := context.Background()
	id := uuid.New()

	f.shoutRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrShoutNotFound)

	shout, err := f.service.GetShout(ctx, id)
	assert.Nil(t, shout)
	assert.True(t, errors.Is(err, domainerrors.ErrShoutNotFound))
}
