package user

import (
	"context"
	"errors"
	"strings"

	"github.com/amirhossein-jamali/account-service/internal/domain/entity"
	errs "github.com/amirhossein-jamali/account-service/internal/domain/error"
)

// CreateUser registers a new owner. Usernames are trimmed and must be unique.
func (u *UserUseCase) CreateUser(ctx context.Context, username string) (*entity.TransactionUser, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errs.ErrInvalidUsername
	}

	// Check if the username is taken
	existing, err := u.userRepo.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, errs.ErrTransactionUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, errs.ErrDuplicateUser
	}

	user := entity.NewTransactionUser(username, u.timeProvider)

	if err := u.userRepo.Create(ctx, user); err != nil {
		u.logger.Error("Failed to create user", map[string]any{
			"username": username,
			"error":    err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User created", map[string]any{
		"userId":   user.ID,
		"username": username,
	})

	return user, nil
}
