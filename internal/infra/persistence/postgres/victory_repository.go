package postgres

import (
	"context"

	"relay/internal/domain/entity"
	domainerrors "relay/internal/domain/errors"
	"relay/internal/domain/repository"
	"relay/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// victoryRepository implements the repository.VictoryRepository interface.
type victoryRepository struct {
	db *gorm.DB
}

// NewVictoryRepository is the constructor for victoryRepository.
func NewVictoryRepository(db *gorm.DB) repository.VictoryRepository {
	return &victoryRepository{
		db: db,
	}
}

// FindByID retrieves a victory by its unique ID.
func (repo *victoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Victory, error) {
	var victoryM model.VictoryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&victoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVictoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find victory by ID")
	}

	return toVictoryDomain(&victoryM)
}

// ListAll retrieves every stored victory, newest first.
func (repo *victoryRepository) ListAll(ctx context.Context) ([]*entity.Victory, error) {
	var victoryModels []*model.VictoryModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&victoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list victories")
	}

	victories := make([]*entity.Victory, 0, len(victoryModels))
	for _, victoryM := range victoryModels {
		victory, err := toVictoryDomain(victoryM)
		if err != nil {
			return nil, err
		}

		victories = append(victories, victory)
	}

	return victories, nil
}

// Create persists a new victory. The unique index on template_id guarantees
// at most one victory per template even under concurrent settlement.
func (repo *victoryRepository) Create(ctx context.Context, victory *entity.Victory) error {
	victoryM := fromVictoryDomain(victory)

	if err := repo.db.WithContext(ctx).Create(victoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrTemplateCompleted.WrapMessage("template already settled")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required victory information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create victory")
	}

	// Update the entity with generated values
	victory.ID = victoryM.ID
	victory.CreatedAt = victoryM.CreatedAt

	return nil
}

// Delete removes a victory by its ID.
func (repo *victoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.VictoryModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete victory")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVictoryNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toVictoryDomain converts a GORM VictoryModel to a domain Victory entity.
func toVictoryDomain(data *model.VictoryModel) (*entity.Victory, error) {
	if data == nil {
		return nil, nil
	}

	receiverIDs, err := splitIDList(data.ReceiverIDs)
	if err != nil {
		return nil, errors.Wrapf(err, "corrupt receiver list for victory %s", data.ID)
	}

	return &entity.Victory{
		ID:            data.ID,
		TemplateID:    data.TemplateID,
		ReceiverIDs:   receiverIDs,
		PointsAwarded: data.PointsAwarded,
		CreatedAt:     data.CreatedAt,
	}, nil
}

// fromVictoryDomain converts a domain Victory entity to a GORM VictoryModel.
func fromVictoryDomain(data *entity.Victory) *model.VictoryModel {
	if data == nil {
		return nil
	}

	return &model.VictoryModel{
		ID:            data.ID,
		TemplateID:    data.TemplateID,
		ReceiverIDs:   joinIDList(data.ReceiverIDs),
		PointsAwarded: data.PointsAwarded,
		CreatedAt:     data.CreatedAt,
	}
}
