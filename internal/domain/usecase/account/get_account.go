package account

import (
	"context"

	"github.com/amirhossein-jamali/account-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/account-service/internal/domain/error"
)

// GetAccount returns the account with its records
func (s *Service) GetAccount(ctx context.Context, accountID uint64) (*entity.Account, error) {
	if err := s.validator.ValidateAccountID(accountID); err != nil {
		return nil, err
	}
	return s.accountRepo.GetByID(ctx, accountID)
}

// ListAccounts returns the owner's accounts. An unknown owner is an error, not an empty list.
func (s *Service) ListAccounts(ctx context.Context, userID uint64) ([]*entity.Account, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.ErrTransactionUserNotFound
	}

	return s.accountRepo.ListByUser(ctx, userID)
}

// ListRecords returns the account's ledger ordered by id
func (s *Service) ListRecords(ctx context.Context, accountID uint64) ([]*entity.TransactionRecord, error) {
	if err := s.validator.ValidateAccountID(accountID); err != nil {
		return nil, err
	}

	exists, err := s.accountRepo.Exists(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.ErrAccountNotFound
	}

	return s.recordRepo.ListByAccount(ctx, accountID)
}
