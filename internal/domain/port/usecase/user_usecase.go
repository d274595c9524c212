package usecase

import (
	"context"

	"github.com/amirhossein-jamali/account-service/internal/domain/entity"
)

// UserUseCase defines methods for managing account owners
type UserUseCase interface {
	// CreateUser registers a new owner with a unique, non-blank username
	CreateUser(ctx context.Context, username string) (*entity.TransactionUser, error)

	// GetUser retrieves an owner by id
	GetUser(ctx context.Context, userID uint64) (*entity.TransactionUser, error)

	// GetUserAccounts returns the owner together with every account it owns
	GetUserAccounts(ctx context.Context, userID uint64) (*entity.UserAccounts, error)
}
