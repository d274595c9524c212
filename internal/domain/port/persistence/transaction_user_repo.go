package persistence

import (
	"context"

	"github.com/amirhossein-jamali/account-service/internal/domain/entity"
)

// TransactionUserRepository defines the methods to interact with account owners
type TransactionUserRepository interface {
	// Create saves a new user and writes back the generated id
	//
	// Possible errors:
	// - ErrDuplicateUser: If the username is taken
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.TransactionUser) error

	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrTransactionUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.TransactionUser, error)

	// GetByUsername retrieves a user by its unique username
	//
	// Possible errors:
	// - ErrTransactionUserNotFound: If no user has that username
	// - ErrDatabaseConnection: If database connection fails
	GetByUsername(ctx context.Context, username string) (*entity.TransactionUser, error)

	// Exists checks whether a user with the given id is stored
	Exists(ctx context.Context, id uint64) (bool, error)
}
