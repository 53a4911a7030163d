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
	"relay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type victoryServiceFixtures struct {
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	shoutRepo    *mockRepo.MockShoutRepository
	templateRepo *mockRepo.MockTemplateRepository
	victoryRepo  *mockRepo.MockVictoryRepository
	service      usecase.VictoryUsecase
}

func createTestVictoryService(t *testing.T) *victoryServiceFixtures {
	f := &victoryServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		shoutRepo:    mockRepo.NewMockShoutRepository(t),
		templateRepo: mockRepo.NewMockTemplateRepository(t),
		victoryRepo:  mockRepo.NewMockVictoryRepository(t),
	}

	f.service = NewVictoryService(VictoryServiceParams{
		TxManager:   f.txManager,
		VictoryRepo: f.victoryRepo,
		Points:      service.NewParticipantPointsPolicy(10),
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return f
}

func (f *victoryServiceFixtures) expectWriteTx(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewUserRepository().Return(f.userRepo).Maybe()
	factory.EXPECT().NewShoutRepository().Return(f.shoutRepo).Maybe()
	factory.EXPECT().NewTemplateRepository().Return(f.templateRepo).Maybe()
	factory.EXPECT().NewVictoryRepository().Return(f.victoryRepo).Maybe()
	expectPassthroughTx(f.txManager, factory)
}

func TestVictoryService_Complete(t *testing.T) {
	f := createTestVictoryService(t)
	ctx := context.Background()

	template := &entity.Template{ID: uuid.New(), LastShoutAt: time.Now()}
	alice := &entity.User{ID: uuid.New(), UserName: "alice", Points: 5}
	bob := &entity.User{ID: uuid.New(), UserName: "bob"}

	f.expectWriteTx(t)
	f.templateRepo.EXPECT().FindByID(ctx, template.ID).Return(template, nil)
	f.templateRepo.EXPECT().Update(ctx, template).Return(nil)
	f.victoryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Victory")).Return(nil)
	f.userRepo.EXPECT().FindByID(ctx, alice.ID).Return(alice, nil)
	f.userRepo.EXPECT().Update(ctx, alice).Return(nil)
	f.userRepo.EXPECT().FindByID(ctx, bob.ID).Return(bob, nil)
	f.userRepo.EXPECT().Update(ctx, bob).Return(nil)

	victory, err := f.service.Complete(ctx, usecase.CompleteVictoryInput{
		TemplateID:  template.ID,
		ReceiverIDs: []uuid.UUID{alice.ID, bob.ID},
	})
	require.NoError(t, err)

	// Two participants at 10 points each.
	assert.Equal(t, 20, victory.PointsAwarded)
	assert.True(t, template.Completed)
	assert.Equal(t, 25, alice.Points)
	assert.Equal(t, 20, bob.Points)
	assert.Equal(t, []uuid.UUID{alice.ID, bob.ID}, victory.ReceiverIDs)
}

func TestVictoryService_Complete_AlreadySettled(t *testing.T) {
	f := createTestVictoryService(t)
	ctx := context.Background()

	template := &entity.Template{ID: uuid.New(), Completed: true}

	f.expectWriteTx(t)
	f.templateRepo.EXPECT().FindByID(ctx, template.ID).Return(template, nil)

	victory, err := f.service.Complete(ctx, usecase.CompleteVictoryInput{
		TemplateID:  template.ID,
		ReceiverIDs: []uuid.UUID{uuid.New()},
	})
	assert.Nil(t, victory)
	assert.True(t, errors.Is(err, domainerrors.ErrTemplateCompleted))
}

func TestVictoryService_Complete_CreditFailureAborts(t *testing.T) {
	f := createTestVictoryService(t)
	ctx := context.Background()

	template := &entity.Template{ID: uuid.New()}
	ghost := uuid.New()

	f.expectWriteTx(t)
	f.templateRepo.EXPECT().FindByID(ctx, template.ID).Return(template, nil)
	f.templateRepo.EXPECT().Update(ctx, template).Return(nil)
	f.victoryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Victory")).Return(nil)
	f.userRepo.EXPECT().FindByID(ctx, ghost).Return(nil, repository.ErrUserNotFound)

	victory, err := f.service.Complete(ctx, usecase.CompleteVictoryInput{
		TemplateID:  template.ID,
		ReceiverIDs: []uuid.UUID{ghost},
	})
	assert.Nil(t, victory)
	assert.Error(t, err)
}

func TestVictoryService_Delete_Cascades(t *testing.T) {
	f := createTestVictoryService(t)
	ctx := context.Background()

	victory := &entity.Victory{ID: uuid.New(), TemplateID: uuid.New()}

	f.expectWriteTx(t)
	f.victoryRepo.EXPECT().FindByID(ctx, victory.ID).Return(victory, nil)
	f.shoutRepo.EXPECT().DeleteByTemplateID(ctx, victory.TemplateID).Return(nil)
	f.templateRepo.EXPECT().Delete(ctx, victory.TemplateID).Return(nil)
	f.victoryRepo.EXPECT().Delete(ctx, victory.ID).Return(nil)

	err := f.service.Delete(ctx, victory.ID)
	require.NoError(t, err)
}

func TestVictoryService_Delete_NotFound(t *testing.T) {
	f := createTestVictoryService(t)
	ctx := context.Background()
	id := uuid.New()

	f.expectWriteTx(t)
	f.victoryRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrVictoryNotFound)

	err := f.service.Delete(ctx, id)
	assert.True(t, errors.Is(err, domainerrors.ErrVictoryNotFound))
}

func TestVictoryService_GetVictory_NotFound(t *testing.T) {
	f := createTestVictoryService(t)
	ctx := context.Background()
	id := uuid.New()

	f.victoryRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrVictoryNotFound)

	victory, err := f.service.GetVictory(ctx, id)
	assert.Nil(t, victory)
	assert.True(t, errors.Is(err, domainerrors.ErrVictoryNotFound))
}
