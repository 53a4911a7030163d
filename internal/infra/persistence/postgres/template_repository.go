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

// templateRepository implements the repository.TemplateRepository interface.
type templateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository is the constructor for templateRepository.
func NewTemplateRepository(db *gorm.DB) repository.TemplateRepository {
	return &templateRepository{
		db: db,
	}
}

// FindByID retrieves a template by its unique ID.
func (repo *templateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Template, error) {
	var templateM model.TemplateModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&templateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTemplateNotFound
		}

		return nil, errors.Wrap(err, "failed to find template by ID")
	}

	return toTemplateDomain(&templateM), nil
}

// ListAll retrieves every stored template.
func (repo *templateRepository) ListAll(ctx context.Context) ([]*entity.Template, error) {
	var templateModels []*model.TemplateModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&templateModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list templates")
	}

	templates := make([]*entity.Template, 0, len(templateModels))
	for _, templateM := range templateModels {
		templates = append(templates, toTemplateDomain(templateM))
	}

	return templates, nil
}

// Create persists a new template.
func (repo *templateRepository) Create(ctx context.Context, template *entity.Template) error {
	templateM := fromTemplateDomain(template)

	if err := repo.db.WithContext(ctx).Create(templateM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required template information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create template")
	}

	// Update the entity with generated values
	template.ID = templateM.ID
	template.CreatedAt = templateM.CreatedAt

	return nil
}

// Update persists changes to an existing template. Only the fields that can
// legally change after creation are written.
func (repo *templateRepository) Update(ctx context.Context, template *entity.Template) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TemplateModel{}).
		Where("id = ?", template.ID).
		Updates(map[string]any{
			"last_shout_at": template.LastShoutAt,
			"completed":     template.Completed,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update template")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTemplateNotFound
	}

	return nil
}

// Delete removes a template by its ID.
func (repo *templateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TemplateModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete template")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTemplateNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toTemplateDomain converts a GORM TemplateModel to a domain Template entity.
func toTemplateDomain(data *model.TemplateModel) *entity.Template {
	if data == nil {
		return nil
	}

	return &entity.Template{
		ID:            data.ID,
		SenderID:      data.SenderID,
		ReceiverID:    data.ReceiverID,
		StartLocation: entity.NewGeoPoint(data.StartLatitude, data.StartLongitude),
		EndLocation:   entity.NewGeoPoint(data.EndLatitude, data.EndLongitude),
		LastShoutAt:   data.LastShoutAt,
		Completed:     data.Completed,
		CreatedAt:     data.CreatedAt,
	}
}

// fromTemplateDomain converts a domain Template entity to a GORM TemplateModel.
func fromTemplateDomain(data *entity.Template) *model.TemplateModel {
	if data == nil {
		return nil
	}

	return &model.TemplateModel{
		ID:             data.ID,
		SenderID:       data.SenderID,
		ReceiverID:     data.ReceiverID,
		StartLatitude:  data.StartLocation.Lat(),
		StartLongitude: data.StartLocation.Lon(),
		EndLatitude:    data.EndLocation.Lat(),
		EndLongitude:   data.EndLocation.Lon(),
		LastShoutAt:    data.LastShoutAt,
		Completed:      data.Completed,
		CreatedAt:      data.CreatedAt,
	}
}
