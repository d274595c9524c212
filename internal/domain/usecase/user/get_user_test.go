package user

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/account-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/account-service/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/account-service/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/account-service/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Invalid user ID", func(t *testing.T) {
		userUseCase := NewUserUseCase(
			persistencemocks.NewMockTransactionUserRepository(t),
			persistencemocks.NewMockAccountRepository(t),
			coremocks.NewMockTimeProvider(t),
			coremocks.NewMockLogger(t),
		)

		user, err := userUseCase.GetUser(ctx, 0)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("User not found", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockTransactionUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUserRepo.EXPECT().GetByID(mock.Anything, uint64(5)).Return(nil, errs.ErrTransactionUserNotFound).Once()
		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		userUseCase := NewUserUseCase(mockUserRepo, persistencemocks.NewMockAccountRepository(t),
			coremocks.NewMockTimeProvider(t), mockLogger)

		user, err := userUseCase.GetUser(ctx, 5)

		assert.Nil(t, user)
		assert.True(t, errs.IsUserNotFoundError(err))
	})

	t.Run("User found", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockTransactionUserRepository(t)
		mockUserRepo.EXPECT().GetByID(mock.Anything, uint64(5)).
			Return(&entity.TransactionUser{ID: 5, Username: "bob"}, nil).Once()

		userUseCase := NewUserUseCase(mockUserRepo, persistencemocks.NewMockAccountRepository(t),
			coremocks.NewMockTimeProvider(t), coremocks.NewMockLogger(t))

		user, err := userUseCase.GetUser(ctx, 5)

		require.NoError(t, err)
		assert.Equal(t, "bob", user.Username)
	})
}

func TestGetUserAccounts(t *testing.T) {
	ctx := context.Background()

	t.Run("Accounts are resolved by owner id", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockTransactionUserRepository(t)
		mockAccountRepo := persistencemocks.NewMockAccountRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		checking := entity.NewAccount(3, "Checking", 100)
		checking.SetID(1)
		savings := entity.NewAccount(3, "Savings", 20)
		savings.SetID(2)

		mockUserRepo.EXPECT().GetByID(mock.Anything, uint64(3)).
			Return(&entity.TransactionUser{ID: 3, Username: "carol"}, nil).Once()
		mockAccountRepo.EXPECT().ListByUser(mock.Anything, uint64(3)).
			Return([]*entity.Account{checking, savings}, nil).Once()
		mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Once()

		userUseCase := NewUserUseCase(mockUserRepo, mockAccountRepo, coremocks.NewMockTimeProvider(t), mockLogger)

		view, err := userUseCase.GetUserAccounts(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, uint64(3), view.ID)
		assert.Equal(t, "carol", view.Username)
		assert.Len(t, view.Accounts, 2)
		assert.InDelta(t, 120.0, view.TotalBalance(), 1e-9)
	})

	t.Run("Unknown user skips account lookup", func(t *testing.T) {
		mockUserRepo := persistencemocks.NewMockTransactionUserRepository(t)
		mockAccountRepo := persistencemocks.NewMockAccountRepository(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUserRepo.EXPECT().GetByID(mock.Anything, uint64(9)).Return(nil, errs.ErrTransactionUserNotFound).Once()
		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		userUseCase := NewUserUseCase(mockUserRepo, mockAccountRepo, coremocks.NewMockTimeProvider(t), mockLogger)

		view, err := userUseCase.GetUserAccounts(ctx, 9)

		assert.Nil(t, view)
		assert.ErrorIs(t, err, errs.ErrTransactionUserNotFound)
	})
}
