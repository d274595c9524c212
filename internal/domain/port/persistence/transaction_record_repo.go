package persistence

import (
	"context"

	"github.com/amirhossein-jamali/account-service/internal/domain/entity"
)

// TransactionRecordRepository defines read and append access to ledger records
type TransactionRecordRepository interface {
	// Create appends a record to its account
	//
	// Possible errors:
	// - ErrAccountNotFound: If the referenced account doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, record *entity.TransactionRecord) error

	// GetByID retrieves a record by ID
	//
	// Possible errors:
	// - ErrTransactionRecordNotFound: If record doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.TransactionRecord, error)

	// ListByAccount returns the account's records ordered by id
	ListByAccount(ctx context.Context, accountID uint64) ([]*entity.TransactionRecord, error)

	// CountByAccount returns how many records the account owns
	CountByAccount(ctx context.Context, accountID uint64) (int64, error)
}
