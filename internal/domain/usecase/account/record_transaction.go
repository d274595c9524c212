package account

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/account-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/account-service/internal/domain/error"
	"github.com/amirhossein-jamali/account-service/internal/domain/port/usecase"
)

// RecordTransaction posts a ledger entry and moves the balance. Both writes
// commit together or not at all.
func (s *Service) RecordTransaction(
	ctx context.Context,
	accountID uint64,
	req usecase.RecordRequest,
) (*entity.Account, *entity.TransactionRecord, error) {
	if err := s.validator.ValidateAccountID(accountID); err != nil {
		return nil, nil, err
	}
	recordType := strings.ToLower(strings.TrimSpace(req.Type))
	if err := s.validator.ValidateRecord(recordType, req.Amount); err != nil {
		return nil, nil, errs.NewRecordError(accountID, req.Type, req.Amount, err)
	}

	var (
		account *entity.Account
		record  *entity.TransactionRecord
	)
	err := s.queue.Submit(ctx, accountID, func(ctx context.Context) error {
		var err error
		account, record, err = s.recordInUnitOfWork(ctx, accountID, entity.RecordType(recordType), req)
		return err
	})
	if err != nil {
		s.logFailure("Failed to record transaction", err, map[string]any{"account_id": accountID})
		return nil, nil, err
	}

	s.logger.Info("Transaction recorded", map[string]any{
		"account_id": accountID,
		"record_id":  record.ID,
		"type":       recordType,
		"amount":     req.Amount,
		"balance":    account.Balance(),
	})

	return account, record, nil
}

func (s *Service) recordInUnitOfWork(
	ctx context.Context,
	accountID uint64,
	recordType entity.RecordType,
	req usecase.RecordRequest,
) (account *entity.Account, record *entity.TransactionRecord, err error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to roll back record transaction", map[string]any{
				"account_id": accountID,
				"error":      rbErr.Error(),
			})
		}
	}()

	accountRepo := s.uow.GetAccountRepository(txCtx)

	account, err = accountRepo.GetByID(txCtx, accountID)
	if err != nil {
		return nil, nil, err
	}

	record = entity.NewTransactionRecord(recordType, req.Amount, strings.TrimSpace(req.Description), s.timeProvider.Now())
	account.ApplyRecord(record)

	// Update cascades to the new record
	if err := accountRepo.Update(txCtx, account); err != nil {
		return nil, nil, errs.NewRecordError(accountID, string(recordType), req.Amount, err)
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, nil, err
	}
	committed = true

	return account, record, nil
}
