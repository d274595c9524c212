package account

import (
	"context"

	"github.com/amirhossein-jamali/account-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/account-service/internal/domain/error"
)

// CreateAccount opens an account for an existing owner
func (s *Service) CreateAccount(ctx context.Context, userID uint64, accountName string, balance float64) (*entity.Account, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	name, err := s.validator.ValidateAccountName(accountName)
	if err != nil {
		return nil, err
	}
	if err := s.validator.ValidateBalance(balance); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.ErrTransactionUserNotFound
	}

	account := entity.NewAccount(userID, name, balance)
	if err := s.accountRepo.Create(ctx, account); err != nil {
		s.logFailure("Failed to create account", err, map[string]any{
			"user_id":      userID,
			"account_name": name,
		})
		return nil, err
	}

	s.logger.Info("Account created", map[string]any{
		"account_id": account.ID(),
		"user_id":    userID,
		"balance":    balance,
	})

	return account, nil
}
