package user

import (
	coreport "github.com/amirhossein-jamali/account-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/account-service/internal/domain/port/usecase"
)

// UserUseCase implements the business logic for account owners
type UserUseCase struct {
	userRepo     persistence.TransactionUserRepository
	accountRepo  persistence.AccountRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUserUseCase creates a new user use case instance
func NewUserUseCase(
	userRepo persistence.TransactionUserRepository,
	accountRepo persistence.AccountRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		accountRepo:  accountRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}
