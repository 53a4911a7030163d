package postgres

import (
	"context"
	"time"

	"relay/internal/domain/entity"
	domainerrors "relay/internal/domain/errors"
	"relay/internal/domain/repository"
	"relay/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// loginKeyRepository implements the repository.LoginKeyRepository interface.
type loginKeyRepository struct {
	db *gorm.DB
}

// NewLoginKeyRepository is the constructor for loginKeyRepository.
func NewLoginKeyRepository(db *gorm.DB) repository.LoginKeyRepository {
	return &loginKeyRepository{
		db: db,
	}
}

// Create persists a new login key, representing a persisted session.
func (repo *loginKeyRepository) Create(ctx context.Context, key *entity.LoginKey) error {
	keyM := fromLoginKeyDomain(key)

	if err := repo.db.WithContext(ctx).Create(keyM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrInvalidKey.WrapMessage("login key already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required login key information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create login key")
	}

	// Update the entity with generated values
	key.ID = keyM.ID
	key.CreatedAt = keyM.CreatedAt

	return nil
}

// FindByHash retrieves a login key record by its securely stored hash.
func (repo *loginKeyRepository) FindByHash(ctx context.Context, keyHash string) (*entity.LoginKey, error) {
	var keyM model.LoginKeyModel

	if err := repo.db.WithContext(ctx).
		Where("key_hash = ?", keyHash).
		First(&keyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLoginKeyNotFound
		}

		return nil, errors.Wrap(err, "failed to find login key by hash")
	}

	return toLoginKeyDomain(&keyM), nil
}

// DeleteByUserID removes all login keys for a specific user.
func (repo *loginKeyRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.LoginKeyModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete login keys by user ID")
	}

	return nil
}

// DeleteExpired removes all login keys that expired before the given moment
// and reports how many were removed.
func (repo *loginKeyRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ?", before).
		Delete(&model.LoginKeyModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired login keys")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toLoginKeyDomain converts a GORM LoginKeyModel to a domain LoginKey entity.
func toLoginKeyDomain(data *model.LoginKeyModel) *entity.LoginKey {
	if data == nil {
		return nil
	}

	return &entity.LoginKey{
		ID:        data.ID,
		UserID:    data.UserID,
		KeyHash:   data.KeyHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

// fromLoginKeyDomain converts a domain LoginKey entity to a GORM LoginKeyModel.
func fromLoginKeyDomain(data *entity.LoginKey) *model.LoginKeyModel {
	if data == nil {
		return nil
	}

	return &model.LoginKeyModel{
		ID:        data.ID,
		UserID:    data.UserID,
		KeyHash:   data.KeyHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}
