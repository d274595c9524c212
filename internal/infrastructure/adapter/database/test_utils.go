package database

import (
	"context"
	"strings"
	"testing"

	coreport "github.com/amirhossein-jamali/account-service/internal/domain/port/core"
	timeprovider "github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/time"
)

// NewTestManager connects a Manager to a private in-memory SQLite database,
// migrates it and closes it when the test ends.
func NewTestManager(t *testing.T, logger coreport.Logger) *Manager {
	t.Helper()

	config := DefaultConfig()
	config.Driver = DriverSQLite
	config.SQLitePath = "file:" + strings.NewReplacer("/", "_", " ", "_").Replace(t.Name()) + "?mode=memory&cache=shared"
	config.LogLevel = "silent"
	config.RetryAttempts = 1

	manager := NewManager(config, logger, timeprovider.NewRealTimeProvider())
	if _, err := manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return manager
}
