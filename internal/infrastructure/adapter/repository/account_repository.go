package repository

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/account-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/account-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/account-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// AccountRepository implements persistence.AccountRepository using GORM.
// Writes cascade to the account's transaction records.
type AccountRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewAccountRepository creates a new AccountRepository instance
func NewAccountRepository(db *gorm.DB, logger coreport.Logger) *AccountRepository {
	return &AccountRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// handleDatabaseError standardizes database error handling
func (r *AccountRepository) handleDatabaseError(operation string, err error, accountID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, errs.ErrAccountNotFound) {
		r.logger.Warn("Account not found", map[string]any{
			"account_id": accountID,
			"operation":  operation,
		})
		return errs.ErrAccountNotFound
	}

	r.logger.Error("Database error on account", map[string]any{
		"account_id": accountID,
		"operation":  operation,
		"error":      err.Error(),
	})
	return r.errorClassifier.ToDomain(err, errs.ErrAccountNotFound)
}

// Create inserts the account and every record it holds in one statement group.
// The generated ids are written back onto the entity.
func (r *AccountRepository) Create(ctx context.Context, account *entity.Account) error {
	r.logger.Debug("Creating account", map[string]any{
		"user_id":      account.TransactionUserID(),
		"account_name": account.AccountName(),
		"records":      len(account.TransactionRecords()),
	})

	accountModel := accountToModel(account)
	result := r.db.WithContext(ctx).Create(&accountModel)
	if result.Error != nil {
		if r.errorClassifier.IsForeignKeyError(result.Error) {
			r.logger.Warn("Owner not found while creating account", map[string]any{
				"user_id": account.TransactionUserID(),
			})
			return errs.ErrTransactionUserNotFound
		}
		return r.handleDatabaseError("create", result.Error, 0)
	}

	account.SetID(accountModel.ID)
	for i, record := range account.TransactionRecords() {
		record.ID = accountModel.TransactionRecords[i].ID
		record.CreatedAt = accountModel.TransactionRecords[i].CreatedAt
	}
	account.SetTransactionRecords(account.TransactionRecords())

	r.logger.Info("Account created successfully", map[string]any{
		"account_id": account.ID(),
		"user_id":    account.TransactionUserID(),
	})
	return nil
}

// GetByID retrieves an account with its records ordered by id
func (r *AccountRepository) GetByID(ctx context.Context, id uint64) (*entity.Account, error) {
	var accountModel model.Account
	result := r.db.WithContext(ctx).
		Preload("TransactionRecords", func(db *gorm.DB) *gorm.DB {
			return db.Order("id")
		}).
		First(&accountModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("get", result.Error, id)
	}

	return accountToEntity(&accountModel), nil
}

// ListByUser returns the owner's accounts without their records
func (r *AccountRepository) ListByUser(ctx context.Context, userID uint64) ([]*entity.Account, error) {
	var accountModels []model.Account
	result := r.db.WithContext(ctx).
		Where("transaction_user_id = ?", userID).
		Order("id").
		Find(&accountModels)
	if result.Error != nil {
		r.logger.Error("Failed to list accounts", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, r.errorClassifier.ToDomain(result.Error, errs.ErrNotFound)
	}

	accounts := make([]*entity.Account, 0, len(accountModels))
	for i := range accountModels {
		accounts = append(accounts, accountToEntity(&accountModels[i]))
	}
	return accounts, nil
}

// Update writes name and balance, then saves each held record.
// Records without an id are inserted; records not held are left alone.
func (r *AccountRepository) Update(ctx context.Context, account *entity.Account) error {
	r.logger.Debug("Updating account", map[string]any{
		"account_id": account.ID(),
		"balance":    account.Balance(),
		"records":    len(account.TransactionRecords()),
	})

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Account{}).
			Where("id = ?", account.ID()).
			Updates(map[string]interface{}{
				"account_name": account.AccountName(),
				"balance":      account.Balance(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.ErrAccountNotFound
		}

		for _, record := range account.TransactionRecords() {
			record.AccountID = account.ID()
			recordModel := recordToModel(record)
			if err := tx.Save(&recordModel).Error; err != nil {
				return err
			}
			record.ID = recordModel.ID
		}
		return nil
	})
	if err != nil {
		return r.handleDatabaseError("update", err, account.ID())
	}

	r.logger.Debug("Account updated successfully", map[string]any{
		"account_id": account.ID(),
		"balance":    account.Balance(),
	})
	return nil
}

// Delete removes the records and then the account in one database transaction
func (r *AccountRepository) Delete(ctx context.Context, id uint64) error {
	var removedRecords int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("account_id = ?", id).Delete(&model.TransactionRecord{})
		if result.Error != nil {
			return result.Error
		}
		removedRecords = result.RowsAffected

		result = tx.Delete(&model.Account{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.ErrAccountNotFound
		}
		return nil
	})
	if err != nil {
		return r.handleDatabaseError("delete", err, id)
	}

	r.logger.Info("Account deleted successfully", map[string]any{
		"account_id":      id,
		"records_removed": removedRecords,
	})
	return nil
}

// Exists checks whether an account with the given id is stored
func (r *AccountRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Account{}).Where("id = ?", id).Count(&count)
	if result.Error != nil {
		return false, r.handleDatabaseError("exists", result.Error, id)
	}
	return count > 0, nil
}
