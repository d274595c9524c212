package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/account-service/internal/domain/port/core"
	"gorm.io/gorm"
)

// recordsAccountFK is the name gorm gives the records-to-account foreign key
const recordsAccountFK = "fk_accounts_transaction_records"

// IndexManager creates indexes and constraints that AutoMigrate cannot express
type IndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewIndexManager creates a new index manager
func NewIndexManager(db *gorm.DB, logger coreport.Logger) *IndexManager {
	return &IndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateIndexes creates the composite indexes behind the ordered listings
func (m *IndexManager) CreateIndexes(ctx context.Context) error {
	m.logger.Info("Creating composite indexes", nil)

	indexes := []struct {
		name    string
		table   string
		columns string
	}{
		{"idx_transaction_records_account_order", "transaction_records", "account_id, id"},
		{"idx_accounts_owner_order", "accounts", "transaction_user_id, id"},
	}

	for _, idx := range indexes {
		stmt := "CREATE INDEX IF NOT EXISTS " + idx.name + " ON " + idx.table + " (" + idx.columns + ")"
		if err := m.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}
	return nil
}

// EnsureCascadeConstraint re-creates the records foreign key with ON DELETE CASCADE
// on PostgreSQL, so databases created by older schemas also cascade.
// SQLite gets the constraint from AutoMigrate and cannot alter it in place.
func (m *IndexManager) EnsureCascadeConstraint(ctx context.Context) error {
	if m.db.Dialector.Name() != "postgres" {
		m.logger.Debug("Skipping cascade constraint check", map[string]any{
			"dialect": m.db.Dialector.Name(),
		})
		return nil
	}

	m.logger.Info("Ensuring transaction records cascade with their account", map[string]any{
		"constraint": recordsAccountFK,
	})

	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`ALTER TABLE transaction_records DROP CONSTRAINT IF EXISTS ` + recordsAccountFK).Error; err != nil {
			return err
		}
		return tx.Exec(`ALTER TABLE transaction_records ADD CONSTRAINT ` + recordsAccountFK + `
			FOREIGN KEY (account_id) REFERENCES accounts (id)
			ON UPDATE CASCADE ON DELETE CASCADE`).Error
	})
}
