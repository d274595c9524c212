package account

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/account-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/account-service/internal/domain/error"
	"github.com/amirhossein-jamali/account-service/internal/domain/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateAccount(t *testing.T) {
	ctx := context.Background()

	stored := func() *entity.Account {
		a := entity.NewAccount(1, "Checking", 100)
		a.SetID(4)
		return a
	}

	t.Run("Rename only", func(t *testing.T) {
		s, m := newTestService(t)

		m.accountRepo.EXPECT().GetByID(mock.Anything, uint64(4)).Return(stored(), nil).Once()
		m.accountRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(a *entity.Account) bool {
			return a.AccountName() == "Main" && a.Balance() == 100
		})).Return(nil).Once()

		account, err := s.UpdateAccount(ctx, 4, usecase.AccountUpdate{AccountName: ptr("Main")})

		require.NoError(t, err)
		assert.Equal(t, "Main", account.AccountName())
	})

	t.Run("Overwrite balance", func(t *testing.T) {
		s, m := newTestService(t)

		m.accountRepo.EXPECT().GetByID(mock.Anything, uint64(4)).Return(stored(), nil).Once()
		m.accountRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()

		account, err := s.UpdateAccount(ctx, 4, usecase.AccountUpdate{Balance: ptr(-20.5)})

		require.NoError(t, err)
		assert.Equal(t, "Checking", account.AccountName())
		assert.Equal(t, -20.5, account.Balance())
	})

	t.Run("Empty update skips write", func(t *testing.T) {
		s, m := newTestService(t)

		m.accountRepo.EXPECT().GetByID(mock.Anything, uint64(4)).Return(stored(), nil).Once()

		account, err := s.UpdateAccount(ctx, 4, usecase.AccountUpdate{})

		require.NoError(t, err)
		assert.Equal(t, 100.0, account.Balance())
	})

	t.Run("Blank name rejected before lookup", func(t *testing.T) {
		s, _ := newTestService(t)

		_, err := s.UpdateAccount(ctx, 4, usecase.AccountUpdate{AccountName: ptr(" ")})

		assert.ErrorIs(t, err, errs.ErrInvalidAccountName)
	})

	t.Run("Missing account", func(t *testing.T) {
		s, m := newTestService(t)

		m.accountRepo.EXPECT().GetByID(mock.Anything, uint64(4)).Return(nil, errs.ErrAccountNotFound).Once()

		_, err := s.UpdateAccount(ctx, 4, usecase.AccountUpdate{Balance: ptr(1.0)})

		assert.ErrorIs(t, err, errs.ErrAccountNotFound)
	})

	t.Run("Write failure is wrapped", func(t *testing.T) {
		s, m := newTestService(t)

		m.accountRepo.EXPECT().GetByID(mock.Anything, uint64(4)).Return(stored(), nil).Once()
		m.accountRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(errs.ErrConcurrentModification).Once()

		_, err := s.UpdateAccount(ctx, 4, usecase.AccountUpdate{Balance: ptr(1.0)})

		var accErr *errs.AccountError
		require.ErrorAs(t, err, &accErr)
		assert.Equal(t, "update", accErr.Operation)
		assert.ErrorIs(t, err, errs.ErrConcurrentModification)
	})
}

func TestDeleteAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful delete", func(t *testing.T) {
		s, m := newTestService(t)

		m.accountRepo.EXPECT().Delete(mock.Anything, uint64(4)).Return(nil).Once()

		assert.NoError(t, s.DeleteAccount(ctx, 4))
	})

	t.Run("Missing account", func(t *testing.T) {
		s, m := newTestService(t)

		m.accountRepo.EXPECT().Delete(mock.Anything, uint64(4)).Return(errs.ErrAccountNotFound).Once()

		err := s.DeleteAccount(ctx, 4)

		assert.True(t, errs.IsAccountNotFoundError(err))
	})

	t.Run("Zero id", func(t *testing.T) {
		s, _ := newTestService(t)

		assert.ErrorIs(t, s.DeleteAccount(ctx, 0), errs.ErrInvalidAccountID)
	})
}
