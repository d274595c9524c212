package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/account-service/internal/infrastructure/adapter/repository"
	"github.com/stretchr/testify/assert"
)

func fastRetryConfig(retries int) RetryConfig {
	return RetryConfig{
		MaxRetries:    retries,
		RetryInterval: time.Millisecond,
		MaxInterval:   5 * time.Millisecond,
	}
}

func TestRetryOnTransientError_SucceedsAfterTransientFailures(t *testing.T) {
	calls := 0
	err := RetryOnTransientError(context.Background(), fastRetryConfig(5), func() error {
		calls++
		if calls < 3 {
			return errors.New("dial tcp: connection refused")
		}
		return nil
	}, repository.NewErrorClassifier(), logger.NewNoopLogger())

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryOnTransientError_StopsOnPermanentError(t *testing.T) {
	calls := 0
	permanent := errors.New(`password authentication failed for user "accounts"`)
	err := RetryOnTransientError(context.Background(), fastRetryConfig(5), func() error {
		calls++
		return permanent
	}, repository.NewErrorClassifier(), logger.NewNoopLogger())

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestRetryOnTransientError_GivesUp(t *testing.T) {
	calls := 0
	err := RetryOnTransientError(context.Background(), fastRetryConfig(3), func() error {
		calls++
		return errors.New("database is locked")
	}, repository.NewErrorClassifier(), logger.NewNoopLogger())

	assert.ErrorContains(t, err, "database is locked")
	assert.Equal(t, 3, calls)
}

func TestRetryOnTransientError_ZeroRetriesStillRunsOnce(t *testing.T) {
	calls := 0
	err := RetryOnTransientError(context.Background(), fastRetryConfig(0), func() error {
		calls++
		return nil
	}, repository.NewErrorClassifier(), logger.NewNoopLogger())

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryOnTransientError_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := RetryConfig{MaxRetries: 3, RetryInterval: time.Hour, MaxInterval: time.Hour}
	err := RetryOnTransientError(ctx, cfg, func() error {
		return errors.New("i/o timeout")
	}, repository.NewErrorClassifier(), logger.NewNoopLogger())

	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	cfg := RetryConfig{RetryInterval: 100 * time.Millisecond, MaxInterval: time.Second}

	assert.Equal(t, 100*time.Millisecond, calculateBackoffWithJitter(0, cfg))
	assert.Equal(t, 400*time.Millisecond, calculateBackoffWithJitter(2, cfg))
	assert.Equal(t, time.Second, calculateBackoffWithJitter(6, cfg))

	cfg.JitterFactor = 0.5
	for i := 0; i < 20; i++ {
		b := calculateBackoffWithJitter(1, cfg)
		assert.GreaterOrEqual(t, b, 200*time.Millisecond)
		assert.LessOrEqual(t, b, 300*time.Millisecond)
	}
}
