package time

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealTimeProvider_Now(t *testing.T) {
	p := NewRealTimeProvider()

	before := time.Now()
	now := p.Now()
	after := time.Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.False(t, now.Before(before.Add(-time.Second)))
	assert.False(t, now.After(after.Add(time.Second)))
}

func TestRealTimeProvider_Since(t *testing.T) {
	p := NewRealTimeProvider()

	elapsed := p.Since(time.Now().Add(-time.Minute))

	assert.GreaterOrEqual(t, elapsed, time.Minute)
}

func TestRealTimeProvider_WithTimeout(t *testing.T) {
	p := NewRealTimeProvider()

	ctx, cancel := p.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(10*time.Millisecond), deadline, time.Second)

	select {
	case <-ctx.Done():
		assert.ErrorIs(t, ctx.Err(), context.DeadlineExceeded)
	case <-time.After(time.Second):
		t.Fatal("context was not canceled after timeout")
	}
}
