package migration

import (
	"context"
	"errors"
	"fmt"

	errs "github.com/amirhossein-jamali/account-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/account-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-service/internal/domain/port/usecase"
)

// DemoAccount is an account created for the demo user
type DemoAccount struct {
	Name    string
	Balance float64
}

// DemoAccounts are the accounts the browser UI shows out of the box
var DemoAccounts = []DemoAccount{
	{Name: "Personal Checking", Balance: 1250.75},
	{Name: "Vacation Fund", Balance: 3400},
	{Name: "Emergency Fund", Balance: 10000},
}

// SeedDemoData creates the demo user and its accounts through the use cases.
// If the user already exists nothing is created, so restarts do not duplicate accounts.
func SeedDemoData(
	ctx context.Context,
	username string,
	users usecase.UserUseCase,
	accounts usecase.AccountUseCase,
	logger coreport.Logger,
) error {
	user, err := users.CreateUser(ctx, username)
	if errors.Is(err, errs.ErrDuplicateUser) {
		logger.Info("Demo data already present", map[string]any{"username": username})
		return nil
	}
	if err != nil {
		return fmt.Errorf("seed demo user: %w", err)
	}

	for _, demo := range DemoAccounts {
		if _, err := accounts.CreateAccount(ctx, user.ID, demo.Name, demo.Balance); err != nil {
			return fmt.Errorf("seed demo account %q: %w", demo.Name, err)
		}
	}

	logger.Info("Demo data seeded", map[string]any{
		"user_id":  user.ID,
		"username": username,
		"accounts": len(DemoAccounts),
	})
	return nil
}
