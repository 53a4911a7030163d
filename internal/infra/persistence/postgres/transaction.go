package postgres

import (
	"context"
	"fmt"

	"relay/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object *gorm.Tx is also a *gorm.DB
}

// NewUserRepository creates a new user repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

// NewShoutRepository creates a new shout repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewShoutRepository() repository.ShoutRepository {
	return NewShoutRepository(f.tx)
}

// NewTemplateRepository creates a new template repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewTemplateRepository() repository.TemplateRepository {
	return NewTemplateRepository(f.tx)
}

// NewVictoryRepository creates a new victory repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewVictoryRepository() repository.VictoryRepository {
	return NewVictoryRepository(f.tx)
}

// NewLoginKeyRepository creates a new login key repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewLoginKeyRepository() repository.LoginKeyRepository {
	return NewLoginKeyRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// If a panic occurs within the callback function the transaction is
	// always rolled back before the panic continues upward.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	err := fn(factory)
	if err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Return the original, more meaningful business error.
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
