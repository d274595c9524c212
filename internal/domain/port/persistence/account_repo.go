package persistence

import (
	"context"

	"github.com/amirhossein-jamali/account-service/internal/domain/entity"
)

// AccountRepository defines the methods to interact with account data.
// Every write cascades to the account's transaction records.
type AccountRepository interface {
	// Create saves a new account together with any records it already holds.
	// The generated id is written back onto the account and its records.
	//
	// Possible errors:
	// - ErrTransactionUserNotFound: If the owning user doesn't exist
	// - ErrConstraintViolation: If another constraint fails
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, account *entity.Account) error

	// GetByID retrieves an account with its records ordered by id
	//
	// Possible errors:
	// - ErrAccountNotFound: If account with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Account, error)

	// ListByUser returns every account owned by the user, ordered by id.
	// Records are not loaded.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Account, error)

	// Update writes the scalar fields and saves every record held by the account.
	// New records are inserted; records not held are left untouched.
	//
	// Possible errors:
	// - ErrAccountNotFound: If account doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes the account and all of its records
	//
	// Possible errors:
	// - ErrAccountNotFound: If account doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Delete(ctx context.Context, id uint64) error

	// Exists checks whether an account with the given id is stored
	Exists(ctx context.Context, id uint64) (bool, error)
}
