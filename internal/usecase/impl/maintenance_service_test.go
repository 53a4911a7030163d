package impl

import (
	"context"
	"testing"
	"time"

	"relay/internal/domain/entity"
	mockRepo "relay/internal/mocks/repository"
	mockUsecase "relay/internal/mocks/usecase"
	"relay/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type maintenanceServiceFixtures struct {
	txManager    *mockRepo.MockTransactionManager
	shoutRepo    *mockRepo.MockShoutRepository
	templateRepo *mockRepo.MockTemplateRepository
	victoryRepo  *mockRepo.MockVictoryRepository
	victoryUC    *mockUsecase.MockVictoryUsecase
	loginKeyRepo *mockRepo.MockLoginKeyRepository
	service      usecase.MaintenanceUsecase
}

func createTestMaintenanceService(t *testing.T) *maintenanceServiceFixtures {
	f := &maintenanceServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		shoutRepo:    mockRepo.NewMockShoutRepository(t),
		templateRepo: mockRepo.NewMockTemplateRepository(t),
		victoryRepo:  mockRepo.NewMockVictoryRepository(t),
		victoryUC:    mockUsecase.NewMockVictoryUsecase(t),
		loginKeyRepo: mockRepo.NewMockLoginKeyRepository(t),
	}

	f.service = NewMaintenanceService(MaintenanceServiceParams{
		TxManager:      f.txManager,
		TemplateRepo:   f.templateRepo,
		VictoryRepo:    f.victoryRepo,
		VictoryUsecase: f.victoryUC,
		LoginKeyRepo:   f.loginKeyRepo,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})

	return f
}

func (f *maintenanceServiceFixtures) expectSweepTx(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewShoutRepository().Return(f.shoutRepo).Maybe()
	factory.EXPECT().NewTemplateRepository().Return(f.templateRepo).Maybe()
	expectPassthroughTx(f.txManager, factory)
}

func TestMaintenanceService_CleanupTemplates(t *testing.T) {
	f := createTestMaintenanceService(t)
	ctx := context.Background()
	now := time.Now()

	expired := &entity.Template{ID: uuid.New(), LastShoutAt: now.Add(-2 * entity.ReshoutWindow)}
	active := &entity.Template{ID: uuid.New(), LastShoutAt: now.Add(-time.Minute)}
	completed := &entity.Template{ID: uuid.New(), LastShoutAt: now.Add(-2 * entity.ReshoutWindow), Completed: true}

	f.expectSweepTx(t)
	f.templateRepo.EXPECT().ListAll(ctx).
		Return([]*entity.Template{expired, active, completed}, nil)
	f.shoutRepo.EXPECT().DeleteByTemplateID(ctx, expired.ID).Return(nil)
	f.templateRepo.EXPECT().Delete(ctx, expired.ID).Return(nil)

	removed, err := f.service.CleanupTemplates(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}

func TestMaintenanceService_CleanupTemplates_ContinuesPastFailure(t *testing.T) {
	f := createTestMaintenanceService(t)
	ctx := context.Background()
	now := time.Now()

	stuck := &entity.Template{ID: uuid.New(), LastShoutAt: now.Add(-2 * entity.ReshoutWindow)}
	expired := &entity.Template{ID: uuid.New(), LastShoutAt: now.Add(-2 * entity.ReshoutWindow)}

	f.expectSweepTx(t)
	f.templateRepo.EXPECT().ListAll(ctx).
		Return([]*entity.Template{stuck, expired}, nil)
	f.shoutRepo.EXPECT().DeleteByTemplateID(ctx, stuck.ID).Return(errors.New("deadlock"))
	f.shoutRepo.EXPECT().DeleteByTemplateID(ctx, expired.ID).Return(nil)
	f.templateRepo.EXPECT().Delete(ctx, expired.ID).Return(nil)

	removed, err := f.service.CleanupTemplates(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}

func TestMaintenanceService_CleanupVictories(t *testing.T) {
	f := createTestMaintenanceService(t)
	ctx := context.Background()
	now := time.Now()

	stale := &entity.Victory{ID: uuid.New(), TemplateID: uuid.New(), CreatedAt: now.Add(-8 * 24 * time.Hour)}
	fresh := &entity.Victory{ID: uuid.New(), TemplateID: uuid.New(), CreatedAt: now.Add(-time.Hour)}

	f.victoryRepo.EXPECT().ListAll(ctx).
		Return([]*entity.Victory{stale, fresh}, nil)
	f.victoryUC.EXPECT().Delete(ctx, stale.ID).Return(nil)

	removed, err := f.service.CleanupVictories(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}

func TestMaintenanceService_CleanupVictories_ContinuesPastFailure(t *testing.T) {
	f := createTestMaintenanceService(t)
	ctx := context.Background()
	now := time.Now()

	stuck := &entity.Victory{ID: uuid.New(), TemplateID: uuid.New(), CreatedAt: now.Add(-8 * 24 * time.Hour)}
	stale := &entity.Victory{ID: uuid.New(), TemplateID: uuid.New(), CreatedAt: now.Add(-8 * 24 * time.Hour)}

	f.victoryRepo.EXPECT().ListAll(ctx).
		Return([]*entity.Victory{stuck, stale}, nil)
	f.victoryUC.EXPECT().Delete(ctx, stuck.ID).Return(errors.New("deadlock"))
	f.victoryUC.EXPECT().Delete(ctx, stale.ID).Return(nil)

	removed, err := f.service.CleanupVictories(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}

func TestMaintenanceService_CleanupLoginKeys(t *testing.T) {
	f := createTestMaintenanceService(t)
	ctx := context.Background()
	now := time.Now()

	f.loginKeyRepo.EXPECT().DeleteExpired(ctx, now).Return(int64(4), nil)

	removed, err := f.service.CleanupLoginKeys(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(4), removed)
}
