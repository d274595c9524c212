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

// TransactionUserRepository implements persistence.TransactionUserRepository using GORM
type TransactionUserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionUserRepository creates a new TransactionUserRepository instance
func NewTransactionUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *TransactionUserRepository {
	return &TransactionUserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Create creates a new user
func (r *TransactionUserRepository) Create(ctx context.Context, user *entity.TransactionUser) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = r.timeProvider.Now()
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = user.CreatedAt
	}

	userModel := userToModel(user)
	result := r.db.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate username", map[string]any{
				"username": user.Username,
			})
			return errs.ErrDuplicateUser
		}
		r.logger.Error("Failed to create user", map[string]any{
			"username": user.Username,
			"error":    result.Error.Error(),
		})
		return r.errorClassifier.ToDomain(result.Error, errs.ErrTransactionUserNotFound)
	}

	user.ID = userModel.ID
	r.logger.Info("User created successfully", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return nil
}

// GetByID retrieves a user by ID
func (r *TransactionUserRepository) GetByID(ctx context.Context, id uint64) (*entity.TransactionUser, error) {
	var userModel model.TransactionUser
	if err := r.db.WithContext(ctx).First(&userModel, id).Error; err != nil {
		return nil, r.handleLookupError(err, map[string]any{"user_id": id})
	}
	return userToEntity(&userModel), nil
}

// GetByUsername retrieves a user by its username
func (r *TransactionUserRepository) GetByUsername(ctx context.Context, username string) (*entity.TransactionUser, error) {
	var userModel model.TransactionUser
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&userModel).Error; err != nil {
		return nil, r.handleLookupError(err, map[string]any{"username": username})
	}
	return userToEntity(&userModel), nil
}

// Exists checks whether a user with the given id is stored
func (r *TransactionUserRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.TransactionUser{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, r.handleLookupError(err, map[string]any{"user_id": id})
	}
	return count > 0, nil
}

func (r *TransactionUserRepository) handleLookupError(err error, fields map[string]any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Debug("User not found", fields)
		return errs.ErrTransactionUserNotFound
	}
	fields["error"] = err.Error()
	r.logger.Error("Database error when reading user", fields)
	return r.errorClassifier.ToDomain(err, errs.ErrTransactionUserNotFound)
}
