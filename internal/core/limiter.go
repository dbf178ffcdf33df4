package core

// limiter.go implements concurrency control for spreadsheet parsing.
//
// Parsing a workbook materializes the whole grid in memory, so the limiter
// uses a semaphore pattern to restrict parallel parses to a configurable
// maximum. When all slots are occupied, new requests wait up to maxWait
// before failing with ErrTooManyUploads.

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrTooManyUploads is returned when all parse slots are occupied and the
// wait timeout expires. Clients should retry after a short delay.
var ErrTooManyUploads = errors.New("too many concurrent uploads, please try again later")

// DefaultMaxConcurrentParses is the default limit for parallel parses.
const DefaultMaxConcurrentParses = 4

// DefaultMaxWaitTime is how long to wait for a slot before rejecting.
const DefaultMaxWaitTime = 10 * time.Second

// ParseLimiter controls concurrent spreadsheet parsing using a semaphore.
type ParseLimiter struct {
	semaphore chan struct{}
	maxWait   time.Duration

	mu     sync.RWMutex
	active int
}

// NewParseLimiter creates a limiter that allows at most maxConcurrent
// simultaneous parses. Requests that cannot acquire a slot within maxWait
// receive ErrTooManyUploads.
func NewParseLimiter(maxConcurrent int, maxWait time.Duration) *ParseLimiter {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrentParses
	}
	if maxWait <= 0 {
		maxWait = DefaultMaxWaitTime
	}

	return &ParseLimiter{
		semaphore: make(chan struct{}, maxConcurrent),
		maxWait:   maxWait,
	}
}

// Acquire attempts to acquire a parse slot.
// Returns nil on success, ErrTooManyUploads if the timeout expires.
// The caller MUST call Release() when parsing completes (use defer).
func (l *ParseLimiter) Acquire(ctx context.Context) error {
	waitCtx, cancel := context.WithTimeout(ctx, l.maxWait)
	defer cancel()

	select {
	case l.semaphore <- struct{}{}:
		l.mu.Lock()
		l.active++
		l.mu.Unlock()
		return nil

	case <-waitCtx.Done():
		// Distinguish caller cancellation from slot-wait timeout
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return ErrTooManyUploads
	}
}

// Release frees a parse slot.
func (l *ParseLimiter) Release() {
	select {
	case <-l.semaphore:
		l.mu.Lock()
		if l.active > 0 {
			l.active--
		}
		l.mu.Unlock()
	default:
		// Release without Acquire; nothing to free
	}
}

// Active returns the number of parses currently holding a slot.
func (l *ParseLimiter) Active() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.active
}
