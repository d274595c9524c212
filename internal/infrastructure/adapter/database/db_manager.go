package database

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/account-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/account-service/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/repository"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// poolMonitorInterval is how often pool statistics are sampled
const poolMonitorInterval = 30 * time.Second

// Manager owns the connection pool and everything bound to it
type Manager struct {
	config            *Config
	db                *gorm.DB
	logger            coreport.Logger
	classifier        *repository.ErrorClassifier
	connectionMonitor *ConnectionPoolMonitor
	timeProvider      coreport.TimeProvider
}

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		classifier:   repository.NewErrorClassifier(),
		timeProvider: timeProvider,
	}
}

// Connect opens the pool, retrying transient failures with backoff
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"target": m.config.SafeString(),
	})

	dialector, err := m.dialector()
	if err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{
		Logger: NewDatabaseLogger(m.logger, m.timeProvider, m.config.LogLevel, m.config.SlowThreshold),
		NowFunc: func() time.Time {
			return m.timeProvider.Now()
		},
		PrepareStmt: m.config.Driver == DriverPostgres,
	}

	retryConfig := RetryConfig{
		MaxRetries:    m.config.RetryAttempts,
		RetryInterval: m.config.RetryDelay,
		MaxInterval:   8 * m.config.RetryDelay,
		JitterFactor:  0.2,
	}

	var gormDB *gorm.DB
	err = RetryOnTransientError(ctx, retryConfig, func() error {
		var openErr error
		gormDB, openErr = gorm.Open(dialector, gormConfig)
		return openErr
	}, m.classifier, m.logger)
	if err != nil {
		m.logger.Error("Failed to connect to database", map[string]any{
			"error":    err.Error(),
			"attempts": m.config.RetryAttempts,
		})
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}

	maxOpen, maxIdle := m.config.MaxOpenConns, m.config.MaxIdleConns
	if m.config.Driver == DriverSQLite {
		// SQLite allows one writer; a single connection avoids "database is locked"
		maxOpen, maxIdle = 1, 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	m.db = gormDB
	m.connectionMonitor = NewConnectionPoolMonitor(gormDB, m.logger)
	if err := m.connectionMonitor.Start(poolMonitorInterval); err != nil {
		m.logger.Warn("Failed to start connection pool monitoring", map[string]any{"error": err.Error()})
	}

	m.logger.Info("Successfully connected to database", map[string]any{
		"driver":         m.config.Driver,
		"target":         m.config.SafeString(),
		"max_open_conns": maxOpen,
		"max_idle_conns": maxIdle,
		"query_timeout":  m.config.QueryTimeout.String(),
	})
	return m.db, nil
}

func (m *Manager) dialector() (gorm.Dialector, error) {
	switch m.config.Driver {
	case DriverPostgres:
		return postgres.Open(m.config.DSN()), nil
	case DriverSQLite:
		return sqlite.Open(m.config.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", m.config.Driver)
	}
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Migrate brings the schema to the current version
func (m *Manager) Migrate(ctx context.Context) error {
	return migration.NewMigrationManager(m.db, m.logger, m.timeProvider).MigrateAll(ctx)
}

// Ping checks that the database answers within the query timeout
func (m *Manager) Ping(ctx context.Context) error {
	if m.db == nil {
		return fmt.Errorf("database is not connected")
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}

	ctx, cancel := m.WithTimeout(ctx)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// PoolMetrics returns the last sampled pool statistics
func (m *Manager) PoolMetrics() ConnectionPoolMetrics {
	if m.connectionMonitor == nil {
		return ConnectionPoolMetrics{}
	}
	return m.connectionMonitor.GetMetrics()
}

// Close stops monitoring and closes the pool
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	if m.connectionMonitor != nil {
		m.connectionMonitor.Stop()
	}
	if m.db == nil {
		return nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}

// WithTimeout returns a context with timeout for database operations
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return m.timeProvider.WithTimeout(ctx, m.config.QueryTimeout)
}

// CreateUnitOfWork creates a new UnitOfWork instance
func (m *Manager) CreateUnitOfWork() persistence.UnitOfWork {
	return NewUnitOfWork(m.db, m.logger, m.timeProvider)
}

// AccountRepository returns a repository on the pool, outside any unit of work
func (m *Manager) AccountRepository() persistence.AccountRepository {
	return repository.NewAccountRepository(m.db, m.logger)
}

// TransactionUserRepository returns a repository on the pool, outside any unit of work
func (m *Manager) TransactionUserRepository() persistence.TransactionUserRepository {
	return repository.NewTransactionUserRepository(m.db, m.timeProvider, m.logger)
}

// TransactionRecordRepository returns a repository on the pool, outside any unit of work
func (m *Manager) TransactionRecordRepository() persistence.TransactionRecordRepository {
	return repository.NewTransactionRecordRepository(m.db, m.logger)
}
