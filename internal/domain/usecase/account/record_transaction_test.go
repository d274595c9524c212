package account

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/account-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/account-service/internal/domain/error"
	"github.com/amirhossein-jamali/account-service/internal/domain/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type txKey struct{}

func TestRecordTransaction(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(ctx, txKey{}, "tx")
	fixedTime := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)

	stored := func() *entity.Account {
		a := entity.NewAccount(1, "Checking", 100)
		a.SetID(5)
		return a
	}

	t.Run("Deposit commits balance and record together", func(t *testing.T) {
		s, m := newTestService(t)

		m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetAccountRepository(txCtx).Return(m.accountRepo).Once()
		m.accountRepo.EXPECT().GetByID(txCtx, uint64(5)).Return(stored(), nil).Once()
		m.time.EXPECT().Now().Return(fixedTime).Once()
		m.accountRepo.EXPECT().Update(txCtx, mock.MatchedBy(func(a *entity.Account) bool {
			return a.Balance() == 125 && len(a.TransactionRecords()) == 1
		})).RunAndReturn(func(_ context.Context, a *entity.Account) error {
			a.TransactionRecords()[0].ID = 77
			return nil
		}).Once()
		m.uow.EXPECT().Commit(txCtx).Return(nil).Once()

		account, record, err := s.RecordTransaction(ctx, 5, usecase.RecordRequest{
			Type:        "Deposit",
			Amount:      25,
			Description: " paycheck ",
		})

		require.NoError(t, err)
		assert.Equal(t, 125.0, account.Balance())
		assert.Equal(t, uint64(77), record.ID)
		assert.Equal(t, uint64(5), record.AccountID)
		assert.Equal(t, entity.RecordDeposit, record.Type)
		assert.Equal(t, "paycheck", record.Description)
		assert.Equal(t, fixedTime, record.CreatedAt)
	})

	t.Run("Withdrawal may overdraw", func(t *testing.T) {
		s, m := newTestService(t)

		m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetAccountRepository(txCtx).Return(m.accountRepo).Once()
		m.accountRepo.EXPECT().GetByID(txCtx, uint64(5)).Return(stored(), nil).Once()
		m.time.EXPECT().Now().Return(fixedTime).Once()
		m.accountRepo.EXPECT().Update(txCtx, mock.Anything).Return(nil).Once()
		m.uow.EXPECT().Commit(txCtx).Return(nil).Once()

		account, _, err := s.RecordTransaction(ctx, 5, usecase.RecordRequest{Type: "withdrawal", Amount: 150})

		require.NoError(t, err)
		assert.Equal(t, -50.0, account.Balance())
	})

	t.Run("Invalid type never opens a unit of work", func(t *testing.T) {
		s, _ := newTestService(t)

		_, _, err := s.RecordTransaction(ctx, 5, usecase.RecordRequest{Type: "refund", Amount: 1})

		var recErr *errs.RecordError
		require.ErrorAs(t, err, &recErr)
		assert.Equal(t, uint64(5), recErr.AccountID)
		assert.ErrorIs(t, err, errs.ErrInvalidRecordType)
	})

	t.Run("Non-positive amount", func(t *testing.T) {
		s, _ := newTestService(t)

		_, _, err := s.RecordTransaction(ctx, 5, usecase.RecordRequest{Type: "deposit", Amount: 0})

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Missing account rolls back", func(t *testing.T) {
		s, m := newTestService(t)

		m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetAccountRepository(txCtx).Return(m.accountRepo).Once()
		m.accountRepo.EXPECT().GetByID(txCtx, uint64(5)).Return(nil, errs.ErrAccountNotFound).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		account, record, err := s.RecordTransaction(ctx, 5, usecase.RecordRequest{Type: "deposit", Amount: 1})

		assert.Nil(t, account)
		assert.Nil(t, record)
		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})

	t.Run("Write failure rolls back", func(t *testing.T) {
		s, m := newTestService(t)

		m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetAccountRepository(txCtx).Return(m.accountRepo).Once()
		m.accountRepo.EXPECT().GetByID(txCtx, uint64(5)).Return(stored(), nil).Once()
		m.time.EXPECT().Now().Return(fixedTime).Once()
		m.accountRepo.EXPECT().Update(txCtx, mock.Anything).Return(errs.ErrDatabaseConnection).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		_, _, err := s.RecordTransaction(ctx, 5, usecase.RecordRequest{Type: "deposit", Amount: 1})

		var recErr *errs.RecordError
		require.ErrorAs(t, err, &recErr)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})

	t.Run("Begin failure", func(t *testing.T) {
		s, m := newTestService(t)

		m.uow.EXPECT().Begin(mock.Anything).Return(nil, errs.ErrDatabaseConnection).Once()

		_, _, err := s.RecordTransaction(ctx, 5, usecase.RecordRequest{Type: "deposit", Amount: 1})

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}
