package account

import (
	"testing"

	coremocks "github.com/amirhossein-jamali/account-service/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/account-service/mocks/port/persistence"
	"github.com/stretchr/testify/mock"
)

type serviceMocks struct {
	uow         *persistencemocks.MockUnitOfWork
	accountRepo *persistencemocks.MockAccountRepository
	userRepo    *persistencemocks.MockTransactionUserRepository
	recordRepo  *persistencemocks.MockTransactionRecordRepository
	time        *coremocks.MockTimeProvider
	logger      *coremocks.MockLogger
}

func newQuietLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func newTestService(t *testing.T) (*Service, *serviceMocks) {
	m := &serviceMocks{
		uow:         persistencemocks.NewMockUnitOfWork(t),
		accountRepo: persistencemocks.NewMockAccountRepository(t),
		userRepo:    persistencemocks.NewMockTransactionUserRepository(t),
		recordRepo:  persistencemocks.NewMockTransactionRecordRepository(t),
		time:        coremocks.NewMockTimeProvider(t),
		logger:      newQuietLogger(t),
	}
	s := NewAccountService(m.uow, m.accountRepo, m.userRepo, m.recordRepo, m.time, m.logger)
	t.Cleanup(s.Shutdown)
	return s, m
}

func ptr[T any](v T) *T {
	return &v
}
