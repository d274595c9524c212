package migration

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/model"
	coremocks "github.com/amirhossein-jamali/account-service/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func fixedTime(t *testing.T) *coremocks.MockTimeProvider {
	tp := coremocks.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)).Maybe()
	return tp
}

func TestMigrateAll_CreatesSchema(t *testing.T) {
	db := openSQLite(t)
	mgr := NewMigrationManager(db, logger.NewNoopLogger(), fixedTime(t))
	ctx := context.Background()

	version, err := mgr.GetCurrentVersion(ctx)
	require.Error(t, err, "version table does not exist yet")
	assert.Empty(t, version)

	require.NoError(t, mgr.MigrateAll(ctx))

	for _, table := range []any{&model.MigrationVersion{}, &model.TransactionUser{}, &model.Account{}, &model.TransactionRecord{}} {
		assert.True(t, db.Migrator().HasTable(table))
	}
	assert.True(t, db.Migrator().HasIndex(&model.TransactionRecord{}, "idx_transaction_records_account_order"))
	assert.True(t, db.Migrator().HasIndex(&model.Account{}, "idx_accounts_owner_order"))

	version, err = mgr.GetCurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, CurrentSchemaVersion, version)
}

func TestMigrateAll_Idempotent(t *testing.T) {
	db := openSQLite(t)
	mgr := NewMigrationManager(db, logger.NewNoopLogger(), fixedTime(t))
	ctx := context.Background()

	require.NoError(t, mgr.MigrateAll(ctx))
	require.NoError(t, mgr.MigrateAll(ctx))

	var versions int64
	require.NoError(t, db.Model(&model.MigrationVersion{}).Count(&versions).Error)
	assert.Equal(t, int64(1), versions)
}

func TestMigrateAll_RecordsCascadeOnAccountDelete(t *testing.T) {
	db := openSQLite(t)
	mgr := NewMigrationManager(db, logger.NewNoopLogger(), fixedTime(t))
	require.NoError(t, mgr.MigrateAll(context.Background()))

	now := time.Now().UTC()
	user := model.TransactionUser{Username: "cascade", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, db.Create(&user).Error)
	account := model.Account{AccountName: "A", TransactionUserID: user.ID, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, db.Create(&account).Error)
	record := model.TransactionRecord{AccountID: account.ID, Type: "deposit", Amount: 5, CreatedAt: now}
	require.NoError(t, db.Create(&record).Error)

	// Delete at the SQL level so only the schema constraint can remove the record
	require.NoError(t, db.Exec("DELETE FROM accounts WHERE id = ?", account.ID).Error)

	var remaining int64
	require.NoError(t, db.Model(&model.TransactionRecord{}).Where("account_id = ?", account.ID).Count(&remaining).Error)
	assert.Zero(t, remaining)
}

func TestEnsureCascadeConstraint_SkipsSQLite(t *testing.T) {
	db := openSQLite(t)
	idx := NewIndexManager(db, logger.NewNoopLogger())

	assert.NoError(t, idx.EnsureCascadeConstraint(context.Background()))
}
