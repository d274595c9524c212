package repository

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/account-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/account-service/internal/domain/error"
	"github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionRecordRepository_SQLite(t *testing.T) {
	db := newSQLiteDB(t)
	log := logger.NewNoopLogger()
	users := NewTransactionUserRepository(db, fixedClock{}, log)
	accounts := NewAccountRepository(db, log)
	repo := NewTransactionRecordRepository(db, log)
	ctx := context.Background()

	owner := seedUser(t, users, "frank")
	account := entity.NewAccount(owner.ID, "Ledger", 0)
	require.NoError(t, accounts.Create(ctx, account))

	first := entity.NewTransactionRecord(entity.RecordDeposit, 40, "first", fixedClock{}.Now())
	first.AccountID = account.ID()
	require.NoError(t, repo.Create(ctx, first))
	second := entity.NewTransactionRecord(entity.RecordWithdrawal, 15, "second", fixedClock{}.Now())
	second.AccountID = account.ID()
	require.NoError(t, repo.Create(ctx, second))

	assert.NotEqual(t, first.ID, second.ID)

	got, err := repo.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "second", got.Description)
	assert.Equal(t, -15.0, got.SignedAmount())

	listed, err := repo.ListByAccount(ctx, account.ID())
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, first.ID, listed[0].ID)

	count, err := repo.CountByAccount(ctx, account.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	_, err = repo.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, errs.ErrTransactionRecordNotFound)
}

func TestTransactionRecordRepository_SQLite_UnknownAccount(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewTransactionRecordRepository(db, logger.NewNoopLogger())

	record := entity.NewTransactionRecord(entity.RecordDeposit, 1, "", fixedClock{}.Now())
	record.AccountID = 12345

	assert.ErrorIs(t, repo.Create(context.Background(), record), errs.ErrAccountNotFound)
}
