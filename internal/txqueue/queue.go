// Package txqueue serializes all outgoing write operations against the
// network. At most one operation is in flight at any time; transient
// failures are retried with exponential backoff without caller involvement.
package txqueue

import (
	"container/list"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"cosmossdk.io/log"
	"github.com/google/uuid"
)

const (
	// DefaultMaxRetries bounds per-item retry attempts for transient failures.
	DefaultMaxRetries = 3

	// baseBackoff is the delay before the first retry; subsequent retries
	// double it (1s, 2s, 4s).
	baseBackoff = time.Second
)

// transientMarkers are the error-text substrings that mark a failure as
// retryable by the queue. Detection is message-based on purpose: provider
// errors arrive as opaque text.
var transientMarkers = []string{
	"failed to fetch",
	"timeout",
	"congested",
}

// Operation is a queued write. It submits a transaction and returns its hash.
type Operation func(ctx context.Context) (string, error)

// Result carries the terminal outcome of a queued operation.
type Result struct {
	Hash string
	Err  error
}

// item is a single queue entry.
type item struct {
	id      string
	op      Operation
	retries int
	done    chan Result
}

// Queue is a single-lane FIFO transaction queue. A retried item is
// re-inserted at the head so it runs again ahead of later-enqueued items.
type Queue struct {
	mu         sync.Mutex
	items      *list.List
	processing bool
	maxRetries int
	backoff    time.Duration
	logger     log.Logger
}

// Option configures a Queue.
type Option func(*Queue)

// WithMaxRetries overrides the per-item retry bound.
func WithMaxRetries(n int) Option {
	return func(q *Queue) { q.maxRetries = n }
}

// WithBackoff overrides the base backoff delay. Used by tests to avoid
// real sleeps.
func WithBackoff(d time.Duration) Option {
	return func(q *Queue) { q.backoff = d }
}

// New creates a new transaction queue.
func New(logger log.Logger, opts ...Option) *Queue {
	q := &Queue{
		items:      list.New(),
		maxRetries: DefaultMaxRetries,
		backoff:    baseBackoff,
		logger:     logger.With("component", "txqueue"),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Enqueue appends an operation and starts processing if the queue is idle.
// The returned channel receives exactly one Result when the operation
// reaches a terminal state.
func (q *Queue) Enqueue(ctx context.Context, op Operation) <-chan Result {
	it := &item{
		id:   fmt.Sprintf("tx-%s", uuid.NewString()),
		op:   op,
		done: make(chan Result, 1),
	}

	q.mu.Lock()
	q.items.PushBack(it)
	start := !q.processing
	if start {
		q.processing = true
	}
	q.mu.Unlock()

	q.logger.Debug("enqueued operation", "id", it.id)

	if start {
		go q.process(ctx)
	}
	return it.done
}

// Submit enqueues an operation and blocks until it resolves or the context
// is cancelled. Convenience wrapper over Enqueue.
func (q *Queue) Submit(ctx context.Context, op Operation) (string, error) {
	select {
	case res := <-q.Enqueue(ctx, op):
		return res.Hash, res.Err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// process drains the queue serially. Only one process goroutine runs at a
// time; the processing flag is the gate.
func (q *Queue) process(ctx context.Context) {
	for {
		q.mu.Lock()
		front := q.items.Front()
		if front == nil {
			q.processing = false
			q.mu.Unlock()
			return
		}
		q.items.Remove(front)
		q.mu.Unlock()

		it := front.Value.(*item)
		hash, err := q.run(ctx, it)
		if err == nil {
			q.logger.Debug("operation resolved", "id", it.id, "hash", hash)
			it.done <- Result{Hash: hash}
			continue
		}

		if q.shouldRetry(it, err) {
			it.retries++
			delay := q.backoff * (1 << (it.retries - 1))
			q.logger.Info("transient failure, retrying",
				"id", it.id, "attempt", it.retries, "max", q.maxRetries, "delay", delay)

			// Head re-insertion: the retried item keeps its place ahead of
			// later-enqueued items.
			q.mu.Lock()
			q.items.PushFront(it)
			q.mu.Unlock()

			select {
			case <-time.After(delay):
			case <-ctx.Done():
			}
			continue
		}

		q.logger.Error("operation failed", "id", it.id, "retries", it.retries, "err", err)
		it.done <- Result{Err: err}
	}
}

// run executes one attempt, converting a panic in the operation into an
// error so a crashing operation cannot take the queue down with it.
func (q *Queue) run(ctx context.Context, it *item) (hash string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("operation panicked: %v", r)
		}
	}()
	return it.op(ctx)
}

func (q *Queue) shouldRetry(it *item, err error) bool {
	if it.retries >= q.maxRetries {
		return false
	}
	lower := strings.ToLower(err.Error())
	for _, marker := range transientMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// Len returns the number of pending items (excluding the one in flight).
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Len()
}

// Clear drops all pending items, failing their promises. The in-flight
// operation, if any, is unaffected.
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	for e := q.items.Front(); e != nil; e = e.Next() {
		it := e.Value.(*item)
		it.done <- Result{Err: fmt.Errorf("queue cleared")}
	}
	q.items.Init()
}
