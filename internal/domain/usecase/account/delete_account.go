package account

import (
	"context"

	errs "github.com/amirhossein-jamali/account-service/internal/domain/error"
)

// DeleteAccount removes the account. Its records are deleted with it.
func (s *Service) DeleteAccount(ctx context.Context, accountID uint64) error {
	if err := s.validator.ValidateAccountID(accountID); err != nil {
		return err
	}

	err := s.queue.Submit(ctx, accountID, func(ctx context.Context) error {
		if err := s.accountRepo.Delete(ctx, accountID); err != nil {
			return errs.NewAccountError(accountID, "delete", err)
		}
		return nil
	})
	if err != nil {
		s.logFailure("Failed to delete account", err, map[string]any{"account_id": accountID})
		return err
	}

	s.logger.Info("Account deleted", map[string]any{"account_id": accountID})
	return nil
}
