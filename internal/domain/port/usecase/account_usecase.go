package usecase

import (
	"context"

	"github.com/amirhossein-jamali/account-service/internal/domain/entity"
)

// AccountUpdate carries a partial update. Nil fields are left unchanged.
type AccountUpdate struct {
	AccountName *string
	Balance     *float64
}

// RecordRequest describes a ledger entry to post against an account
type RecordRequest struct {
	Type        string
	Amount      float64
	Description string
}

// AccountUseCase defines methods for account-related business operations
type AccountUseCase interface {
	// CreateAccount opens an account for an existing owner
	CreateAccount(ctx context.Context, userID uint64, accountName string, balance float64) (*entity.Account, error)

	// GetAccount returns the account with its records
	GetAccount(ctx context.Context, accountID uint64) (*entity.Account, error)

	// ListAccounts returns every account owned by the user
	ListAccounts(ctx context.Context, userID uint64) ([]*entity.Account, error)

	// UpdateAccount applies a partial update to name and balance
	UpdateAccount(ctx context.Context, accountID uint64, update AccountUpdate) (*entity.Account, error)

	// DeleteAccount removes the account and cascades to its records
	DeleteAccount(ctx context.Context, accountID uint64) error

	// RecordTransaction posts a record and moves the balance in one unit of work
	RecordTransaction(ctx context.Context, accountID uint64, req RecordRequest) (*entity.Account, *entity.TransactionRecord, error)

	// ListRecords returns the account's records ordered by id
	ListRecords(ctx context.Context, accountID uint64) ([]*entity.TransactionRecord, error)
}
