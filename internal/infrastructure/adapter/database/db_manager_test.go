package database

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_ConnectSQLite(t *testing.T) {
	manager := NewTestManager(t, logger.NewNoopLogger())

	require.NotNil(t, manager.DB())
	assert.Equal(t, DriverSQLite, manager.DB().Dialector.Name())
	assert.NoError(t, manager.Ping(context.Background()))

	metrics := manager.PoolMetrics()
	assert.Equal(t, 1, metrics.MaxOpenConnections)
}

func TestManager_UnsupportedDriver(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Driver = "oracle"
	manager := NewManager(cfg, logger.NewNoopLogger(), timeprovider.NewRealTimeProvider())

	_, err := manager.Connect(context.Background())

	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestManager_PingBeforeConnect(t *testing.T) {
	manager := NewManager(DefaultConfig(), logger.NewNoopLogger(), timeprovider.NewRealTimeProvider())

	assert.Error(t, manager.Ping(context.Background()))
	assert.Equal(t, ConnectionPoolMetrics{}, manager.PoolMetrics())
	assert.NoError(t, manager.Close())
}

func TestManager_MigrateIsRepeatable(t *testing.T) {
	manager := NewTestManager(t, logger.NewNoopLogger())

	assert.NoError(t, manager.Migrate(context.Background()))
}
