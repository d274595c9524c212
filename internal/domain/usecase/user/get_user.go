package user

import (
	"context"

	"github.com/amirhossein-jamali/account-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/account-service/internal/domain/error"
)

// GetUser retrieves an owner by id
func (u *UserUseCase) GetUser(ctx context.Context, userID uint64) (*entity.TransactionUser, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		u.logger.Error("Failed to get user", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return nil, err
	}

	return user, nil
}

// GetUserAccounts resolves the inverse side of the ownership relation.
// Accounts are fetched by owner id, the user itself holds no references.
func (u *UserUseCase) GetUserAccounts(ctx context.Context, userID uint64) (*entity.UserAccounts, error) {
	user, err := u.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	accounts, err := u.accountRepo.ListByUser(ctx, userID)
	if err != nil {
		u.logger.Error("Failed to list user accounts", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return nil, err
	}

	u.logger.Debug("User accounts retrieved", map[string]any{
		"userId":       userID,
		"accountCount": len(accounts),
	})

	return entity.NewUserAccounts(user, accounts), nil
}
