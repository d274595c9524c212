package account

import (
	"errors"

	errs "github.com/amirhossein-jamali/account-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/account-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/account-service/internal/domain/port/usecase"
)

var _ usecase.AccountUseCase = (*Service)(nil)

// Service implements the account business logic. Mutations of a single account
// are serialized through an AccountQueue.
type Service struct {
	uow          persistence.UnitOfWork
	accountRepo  persistence.AccountRepository
	userRepo     persistence.TransactionUserRepository
	recordRepo   persistence.TransactionRecordRepository
	queue        *AccountQueue
	validator    *AccountValidator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewAccountService creates a new account service
func NewAccountService(
	uow persistence.UnitOfWork,
	accountRepo persistence.AccountRepository,
	userRepo persistence.TransactionUserRepository,
	recordRepo persistence.TransactionRecordRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		accountRepo:  accountRepo,
		userRepo:     userRepo,
		recordRepo:   recordRepo,
		queue:        NewAccountQueue(logger),
		validator:    NewAccountValidator(),
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Shutdown drains pending account jobs. Used for graceful shutdown.
func (s *Service) Shutdown() {
	s.queue.Shutdown()
}

// logFailure logs err with its structured fields when it carries any
func (s *Service) logFailure(message string, err error, fields map[string]any) {
	var accErr *errs.AccountError
	var recErr *errs.RecordError
	switch {
	case errors.As(err, &recErr):
		fields = merge(fields, recErr.LogFields())
	case errors.As(err, &accErr):
		fields = merge(fields, accErr.LogFields())
	default:
		fields = merge(fields, map[string]any{"error": err.Error()})
	}

	if errs.IsValidationError(err) || errs.IsNotFoundError(err) {
		s.logger.Warn(message, fields)
		return
	}
	s.logger.Error(message, fields)
}

func merge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
