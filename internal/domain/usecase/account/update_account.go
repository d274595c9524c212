package account

import (
	"context"

	"github.com/amirhossein-jamali/account-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/account-service/internal/domain/error"
	"github.com/amirhossein-jamali/account-service/internal/domain/port/usecase"
)

// UpdateAccount applies a partial update. An empty update returns the stored account.
func (s *Service) UpdateAccount(ctx context.Context, accountID uint64, update usecase.AccountUpdate) (*entity.Account, error) {
	if err := s.validator.ValidateAccountID(accountID); err != nil {
		return nil, err
	}

	var name string
	if update.AccountName != nil {
		validated, err := s.validator.ValidateAccountName(*update.AccountName)
		if err != nil {
			return nil, err
		}
		name = validated
	}
	if update.Balance != nil {
		if err := s.validator.ValidateBalance(*update.Balance); err != nil {
			return nil, err
		}
	}

	var account *entity.Account
	err := s.queue.Submit(ctx, accountID, func(ctx context.Context) error {
		current, err := s.accountRepo.GetByID(ctx, accountID)
		if err != nil {
			return err
		}
		if update.AccountName == nil && update.Balance == nil {
			account = current
			return nil
		}

		if update.AccountName != nil {
			current.SetAccountName(name)
		}
		if update.Balance != nil {
			current.SetBalance(*update.Balance)
		}
		if err := s.accountRepo.Update(ctx, current); err != nil {
			return errs.NewAccountError(accountID, "update", err)
		}
		account = current
		return nil
	})
	if err != nil {
		s.logFailure("Failed to update account", err, map[string]any{"account_id": accountID})
		return nil, err
	}

	s.logger.Info("Account updated", map[string]any{
		"account_id":   accountID,
		"account_name": account.AccountName(),
		"balance":      account.Balance(),
	})

	return account, nil
}
