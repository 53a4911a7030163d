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

// shoutRepository implements the repository.ShoutRepository interface.
type shoutRepository struct {
	db *gorm.DB
}

// NewShoutRepository is the constructor for shoutRepository.
func NewShoutRepository(db *gorm.DB) repository.ShoutRepository {
	return &shoutRepository{
		db: db,
	}
}

// FindByID retrieves a shout by its unique ID.
func (repo *shoutRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shout, error) {
	var shoutM model.ShoutModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&shoutM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShoutNotFound
		}

		return nil, errors.Wrap(err, "failed to find shout by ID")
	}

	return toShoutDomain(&shoutM)
}

// ListAll retrieves every stored shout, newest first.
func (repo *shoutRepository) ListAll(ctx context.Context) ([]*entity.Shout, error) {
	var shoutModels []*model.ShoutModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&shoutModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list shouts")
	}

	shouts := make([]*entity.Shout, 0, len(shoutModels))
	for _, shoutM := range shoutModels {
		shout, err := toShoutDomain(shoutM)
		if err != nil {
			return nil, err
		}

		shouts = append(shouts, shout)
	}

	return shouts, nil
}

// Create persists a new shout. Shouts are immutable once stored.
func (repo *shoutRepository) Create(ctx context.Context, shout *entity.Shout) error {
	shoutM := fromShoutDomain(shout)

	if err := repo.db.WithContext(ctx).Create(shoutM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required shout information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shout")
	}

	// Update the entity with generated values
	shout.ID = shoutM.ID
	shout.CreatedAt = shoutM.CreatedAt

	return nil
}

// DeleteByTemplateID removes every shout belonging to a template's chain.
func (repo *shoutRepository) DeleteByTemplateID(ctx context.Context, templateID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("template_id = ?", templateID).
		Delete(&model.ShoutModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete shouts by template ID")
	}

	return nil
}

// --- Mapper Functions ---

// toShoutDomain converts a GORM ShoutModel to a domain Shout entity.
func toShoutDomain(data *model.ShoutModel) (*entity.Shout, error) {
	if data == nil {
		return nil, nil
	}

	participantIDs, err := splitIDList(data.ParticipantIDs)
	if err != nil {
		return nil, errors.Wrapf(err, "corrupt participant list for shout %s", data.ID)
	}

	return &entity.Shout{
		ID:             data.ID,
		TemplateID:     data.TemplateID,
		ParticipantIDs: participantIDs,
		Origin:         entity.NewGeoPoint(data.Latitude, data.Longitude),
		CreatedAt:      data.CreatedAt,
	}, nil
}

// fromShoutDomain converts a domain Shout entity to a GORM ShoutModel.
func fromShoutDomain(data *entity.Shout) *model.ShoutModel {
	if data == nil {
		return nil
	}

	return &model.ShoutModel{
		ID:             data.ID,
		TemplateID:     data.TemplateID,
		ParticipantIDs: joinIDList(data.ParticipantIDs),
		Latitude:       data.Origin.Lat(),
		Longitude:      data.Origin.Lon(),
		CreatedAt:      data.CreatedAt,
	}
}
