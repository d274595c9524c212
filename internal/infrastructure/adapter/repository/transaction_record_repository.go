package repository

import (
	"context"

	"github.com/amirhossein-jamali/account-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/account-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/account-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransactionRecordRepository implements persistence.TransactionRecordRepository using GORM
type TransactionRecordRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRecordRepository creates a new TransactionRecordRepository instance
func NewTransactionRecordRepository(db *gorm.DB, logger coreport.Logger) *TransactionRecordRepository {
	return &TransactionRecordRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Create appends a record to its account
func (r *TransactionRecordRepository) Create(ctx context.Context, record *entity.TransactionRecord) error {
	recordModel := recordToModel(record)
	result := r.db.WithContext(ctx).Create(&recordModel)
	if result.Error != nil {
		if r.errorClassifier.IsForeignKeyError(result.Error) {
			r.logger.Warn("Account not found while creating record", map[string]any{
				"account_id": record.AccountID,
			})
			return errs.ErrAccountNotFound
		}
		r.logger.Error("Failed to create transaction record", map[string]any{
			"account_id": record.AccountID,
			"error":      result.Error.Error(),
		})
		return r.errorClassifier.ToDomain(result.Error, errs.ErrAccountNotFound)
	}

	record.ID = recordModel.ID
	record.CreatedAt = recordModel.CreatedAt
	return nil
}

// GetByID retrieves a record by ID
func (r *TransactionRecordRepository) GetByID(ctx context.Context, id uint64) (*entity.TransactionRecord, error) {
	var recordModel model.TransactionRecord
	if err := r.db.WithContext(ctx).First(&recordModel, id).Error; err != nil {
		return nil, r.errorClassifier.ToDomain(err, errs.ErrTransactionRecordNotFound)
	}
	return recordToEntity(&recordModel), nil
}

// ListByAccount returns the account's records ordered by id
func (r *TransactionRecordRepository) ListByAccount(ctx context.Context, accountID uint64) ([]*entity.TransactionRecord, error) {
	var recordModels []model.TransactionRecord
	result := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("id").
		Find(&recordModels)
	if result.Error != nil {
		r.logger.Error("Failed to list transaction records", map[string]any{
			"account_id": accountID,
			"error":      result.Error.Error(),
		})
		return nil, r.errorClassifier.ToDomain(result.Error, errs.ErrNotFound)
	}

	records := make([]*entity.TransactionRecord, 0, len(recordModels))
	for i := range recordModels {
		records = append(records, recordToEntity(&recordModels[i]))
	}
	return records, nil
}

// CountByAccount returns how many records the account owns
func (r *TransactionRecordRepository) CountByAccount(ctx context.Context, accountID uint64) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.TransactionRecord{}).Where("account_id = ?", accountID).Count(&count)
	if result.Error != nil {
		return 0, r.errorClassifier.ToDomain(result.Error, errs.ErrNotFound)
	}
	return count, nil
}
