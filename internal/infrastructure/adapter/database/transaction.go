package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	coreport "github.com/amirhossein-jamali/account-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// Context keys
const txKey contextKey = "tx"

// ErrNoTransaction is returned by Commit and Rollback when ctx carries no transaction
var ErrNoTransaction = errors.New("no transaction found in context")

// UnitOfWork implements the unit of work pattern for database transactions.
// The open transaction travels in the context returned by Begin.
type UnitOfWork struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) persistence.UnitOfWork {
	return &UnitOfWork{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Begin starts a new database transaction.
// PostgreSQL runs it SERIALIZABLE; SQLite transactions are serializable already.
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	if u.db.Dialector.Name() == DriverPostgres {
		if err := tx.Exec("SET TRANSACTION ISOLATION LEVEL SERIALIZABLE").Error; err != nil {
			tx.Rollback()
			u.logger.Error("Failed to set transaction isolation level", map[string]any{"error": err.Error()})
			return ctx, fmt.Errorf("failed to set transaction isolation level: %w", err)
		}
	}

	u.logger.Debug("Database transaction started", nil)
	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the current transaction
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return ErrNoTransaction
	}

	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	u.logger.Debug("Database transaction committed", nil)
	return nil
}

// Rollback rolls back the current transaction.
// Rolling back a finished transaction is logged and ignored.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if !ok || tx == nil {
		return ErrNoTransaction
	}

	err := tx.Rollback().Error
	if errors.Is(err, gorm.ErrInvalidTransaction) || isAlreadyDone(err) {
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}
	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	u.logger.Debug("Database transaction rolled back", nil)
	return nil
}

// GetAccountRepository returns an account repository bound to the current transaction
func (u *UnitOfWork) GetAccountRepository(ctx context.Context) persistence.AccountRepository {
	return repository.NewAccountRepository(u.getDbFromContext(ctx), u.logger)
}

// GetTransactionUserRepository returns a user repository bound to the current transaction
func (u *UnitOfWork) GetTransactionUserRepository(ctx context.Context) persistence.TransactionUserRepository {
	return repository.NewTransactionUserRepository(u.getDbFromContext(ctx), u.timeProvider, u.logger)
}

// GetTransactionRecordRepository returns a record repository bound to the current transaction
func (u *UnitOfWork) GetTransactionRecordRepository(ctx context.Context) persistence.TransactionRecordRepository {
	return repository.NewTransactionRecordRepository(u.getDbFromContext(ctx), u.logger)
}

// getDbFromContext retrieves the transaction from context, or the pool when there is none
func (u *UnitOfWork) getDbFromContext(ctx context.Context) *gorm.DB {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	if ok && tx != nil {
		return tx.WithContext(ctx)
	}
	return u.db.WithContext(ctx)
}

func isAlreadyDone(err error) bool {
	return err != nil && errors.Is(err, sql.ErrTxDone)
}
