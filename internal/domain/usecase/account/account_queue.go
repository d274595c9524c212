package account

import (
	"context"
	"sync"

	errs "github.com/amirhossein-jamali/account-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/account-service/internal/domain/port/core"
)

// AccountJob is a unit of work that mutates a single account
type AccountJob func(ctx context.Context) error

// AccountQueue runs jobs for the same account one after another, in arrival order.
// Jobs for different accounts run concurrently. A job runs on the submitting
// goroutine; an account's slot lives only while jobs for it are pending, so
// unknown or deleted account ids leave nothing behind.
type AccountQueue struct {
	logger coreport.Logger

	mu       sync.Mutex // guards closed and slots
	closed   bool
	slots    map[uint64]*accountSlot
	inFlight sync.WaitGroup
}

// accountSlot serializes one account. turn holds a token while a job runs;
// pending counts submitters holding a reference to the slot.
type accountSlot struct {
	turn    chan struct{}
	pending int
}

// NewAccountQueue creates an empty queue set
func NewAccountQueue(logger coreport.Logger) *AccountQueue {
	return &AccountQueue{
		logger: logger,
		slots:  make(map[uint64]*accountSlot),
	}
}

// Submit waits behind any pending jobs for the account, runs the job and returns its result
func (q *AccountQueue) Submit(ctx context.Context, accountID uint64, job AccountJob) error {
	slot, ok := q.acquireSlot(accountID)
	if !ok {
		q.logger.Warn("Account queue is shut down, rejecting job", map[string]any{
			"account_id": accountID,
		})
		return errs.ErrInternalServer
	}
	defer q.releaseSlot(accountID, slot)

	select {
	case slot.turn <- struct{}{}:
	case <-ctx.Done():
		q.logger.Warn("Context canceled while waiting for account job", map[string]any{
			"account_id": accountID,
			"error":      ctx.Err().Error(),
		})
		return ctx.Err()
	}
	defer func() { <-slot.turn }()

	if err := ctx.Err(); err != nil {
		return err
	}
	return job(ctx)
}

// acquireSlot returns the account's slot, creating it on first use, and
// registers the caller as pending. It fails once Shutdown has started.
func (q *AccountQueue) acquireSlot(accountID uint64) (*accountSlot, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil, false
	}
	slot, found := q.slots[accountID]
	if !found {
		slot = &accountSlot{turn: make(chan struct{}, 1)}
		q.slots[accountID] = slot
	}
	slot.pending++
	q.inFlight.Add(1)
	return slot, true
}

// releaseSlot drops the caller's reference and forgets the slot when it was the last one
func (q *AccountQueue) releaseSlot(accountID uint64, slot *accountSlot) {
	q.mu.Lock()
	slot.pending--
	if slot.pending == 0 {
		delete(q.slots, accountID)
	}
	q.mu.Unlock()
	q.inFlight.Done()
}

// activeAccounts reports how many accounts currently have pending jobs
func (q *AccountQueue) activeAccounts() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.slots)
}

// Shutdown stops accepting jobs and waits for pending ones to finish
func (q *AccountQueue) Shutdown() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()

	q.inFlight.Wait()
	q.logger.Info("Account queue shut down", nil)
}
