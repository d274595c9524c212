package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	errs "github.com/amirhossein-jamali/account-service/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestErrorClassifier_Classify(t *testing.T) {
	c := NewErrorClassifier()

	testCases := []struct {
		name     string
		err      error
		expected ErrorType
	}{
		{"Nil", nil, ""},
		{"PostgresDuplicate", errors.New(`ERROR: duplicate key value violates unique constraint "idx_transaction_users_username" (SQLSTATE 23505)`), DuplicateKeyError},
		{"SQLiteDuplicate", errors.New("UNIQUE constraint failed: transaction_users.username"), DuplicateKeyError},
		{"GormDuplicate", gorm.ErrDuplicatedKey, DuplicateKeyError},
		{"PostgresForeignKey", errors.New(`ERROR: insert or update on table "accounts" violates foreign key constraint "fk_accounts_transaction_user"`), ForeignKeyError},
		{"SQLiteForeignKey", errors.New("FOREIGN KEY constraint failed"), ForeignKeyError},
		{"Deadlock", errors.New("ERROR: deadlock detected (SQLSTATE 40P01)"), LockError},
		{"SQLiteBusy", errors.New("database is locked"), LockError},
		{"Reset", errors.New("read tcp: connection reset by peer"), TransientError},
		{"Dial", errors.New("dial tcp 127.0.0.1:5432: connect: no route"), ConnectionError},
		{"NotNull", errors.New("NOT NULL constraint failed: accounts.account_name"), ConstraintError},
		{"Unknown", errors.New("something odd"), ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, c.Classify(tc.err))
		})
	}
}

func TestErrorClassifier_ToDomain(t *testing.T) {
	c := NewErrorClassifier()

	assert.NoError(t, c.ToDomain(nil, errs.ErrAccountNotFound))
	assert.Equal(t, errs.ErrAccountNotFound, c.ToDomain(gorm.ErrRecordNotFound, errs.ErrAccountNotFound))
	assert.Equal(t, errs.ErrTransactionUserNotFound,
		c.ToDomain(fmt.Errorf("first: %w", gorm.ErrRecordNotFound), errs.ErrTransactionUserNotFound))

	assert.ErrorIs(t, c.ToDomain(errors.New("UNIQUE constraint failed: x"), errs.ErrNotFound), errs.ErrConstraintViolation)
	assert.ErrorIs(t, c.ToDomain(errors.New("could not serialize access"), errs.ErrNotFound), errs.ErrConcurrentModification)
	assert.ErrorIs(t, c.ToDomain(errors.New("server closed the connection"), errs.ErrNotFound), errs.ErrDatabaseConnection)

	err := c.ToDomain(errors.New("weird failure"), errs.ErrNotFound)
	assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	assert.Contains(t, err.Error(), "weird failure")

	canceled := c.ToDomain(fmt.Errorf("query: %w", context.Canceled), errs.ErrNotFound)
	assert.ErrorIs(t, canceled, context.Canceled)
	assert.NotErrorIs(t, canceled, errs.ErrDatabaseConnection)

	timedOut := c.ToDomain(context.DeadlineExceeded, errs.ErrNotFound)
	assert.ErrorIs(t, timedOut, context.DeadlineExceeded)
	assert.NotErrorIs(t, timedOut, errs.ErrDatabaseConnection)
}
