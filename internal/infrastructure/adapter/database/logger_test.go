package database

import (
	"context"
	"errors"
	"testing"
	"time"

	applogger "github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/account-service/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newObservedDatabaseLogger(t *testing.T, level string, elapsed time.Duration) (logger.Interface, *observer.ObservedLogs) {
	t.Helper()
	atom := zap.NewAtomicLevelAt(zap.DebugLevel)
	zc, logs := observer.New(atom)

	tp := coremocks.NewMockTimeProvider(t)
	tp.EXPECT().Since(mock.Anything).Return(elapsed).Maybe()

	return NewDatabaseLogger(applogger.NewZapLoggerFromCore(zc, atom), tp, level, 100*time.Millisecond), logs
}

func traceSQL(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestDatabaseLogger_TraceError(t *testing.T) {
	dbLogger, logs := newObservedDatabaseLogger(t, "warn", time.Millisecond)
	ctx := applogger.WithRequestID(context.Background(), "req-1")

	dbLogger.Trace(ctx, time.Now(), traceSQL(`INSERT INTO "accounts" ("account_name") VALUES ('x')`, 0), errors.New("boom"))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "SQL Error", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "database", fields["source"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "INSERT", fields["type"])
	assert.Equal(t, "accounts", fields["table"])
	assert.Equal(t, "boom", fields["error"])
}

func TestDatabaseLogger_RecordNotFoundIsNotAnError(t *testing.T) {
	dbLogger, logs := newObservedDatabaseLogger(t, "warn", time.Millisecond)

	dbLogger.Trace(context.Background(), time.Now(), traceSQL(`SELECT * FROM "accounts" WHERE id = 1`, 0), gorm.ErrRecordNotFound)

	assert.Equal(t, 0, logs.Len())
}

func TestDatabaseLogger_SlowQuery(t *testing.T) {
	dbLogger, logs := newObservedDatabaseLogger(t, "warn", 250*time.Millisecond)

	dbLogger.Trace(context.Background(), time.Now(), traceSQL(`UPDATE "accounts" SET balance = 1`, 1), nil)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Slow SQL Query", entry.Message)
	assert.Equal(t, int64(250), entry.ContextMap()["elapsed_ms"])
	assert.Equal(t, "accounts", entry.ContextMap()["table"])
}

func TestDatabaseLogger_SilentAndInfo(t *testing.T) {
	silent, silentLogs := newObservedDatabaseLogger(t, "silent", time.Second)
	silent.Trace(context.Background(), time.Now(), traceSQL("SELECT 1", 1), errors.New("ignored"))
	assert.Equal(t, 0, silentLogs.Len())

	info, infoLogs := newObservedDatabaseLogger(t, "info", time.Millisecond)
	info.Trace(context.Background(), time.Now(), traceSQL(`SELECT * FROM "transaction_records"`, 3), nil)
	require.Equal(t, 1, infoLogs.Len())
	assert.Equal(t, "SQL Query", infoLogs.All()[0].Message)
	assert.Equal(t, zap.DebugLevel, infoLogs.All()[0].Level)

	quiet := info.LogMode(logger.Silent)
	quiet.Trace(context.Background(), time.Now(), traceSQL("SELECT 1", 1), nil)
	assert.Equal(t, 1, infoLogs.Len())
}

func TestExtractTableName(t *testing.T) {
	assert.Equal(t, "accounts", extractTableName(`SELECT * FROM "accounts" WHERE id = 1`))
	assert.Equal(t, "transaction_records", extractTableName(`INSERT INTO "transaction_records" ("account_id") VALUES (1)`))
	assert.Equal(t, "accounts", extractTableName(`UPDATE "accounts" SET "balance"=1`))
	assert.Equal(t, "", extractTableName("BEGIN"))
	assert.Equal(t, "", extractQueryType("BEGIN"))
	assert.Equal(t, "DELETE", extractQueryType(" delete from accounts"))
}
