package service

import (
	"context"
	"sync"
	"time"
)

type sessionKeepAlive struct {
	engine SessionEngine

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSessionKeepAlive creates a keep-alive job that re-validates the session
// on a ticker. The job is idle until Start is called.
func NewSessionKeepAlive(engine SessionEngine) SessionKeepAlive {
	return &sessionKeepAlive{engine: engine}
}

// Start implements SessionKeepAlive. It stops any previously running job,
// then launches a background goroutine that refreshes the identity every
// interval while a session exists. If interval is zero or negative it
// defaults to 5 minutes. The goroutine exits when ctx is cancelled or Stop is
// called.
func (k *sessionKeepAlive) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	k.Stop()

	k.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	k.cancel = cancel
	k.wg.Add(1)
	k.mu.Unlock()

	go func() {
		defer k.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if !k.engine.State().IsAuthenticated {
					continue
				}
				// A revoked session resets the engine to anonymous inside
				// RefreshIdentity; transient failures just wait for the next
				// tick.
				_ = k.engine.RefreshIdentity(jobCtx)
			}
		}
	}()
}

// Stop implements SessionKeepAlive. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (k *sessionKeepAlive) Stop() {
	k.mu.Lock()
	cancel := k.cancel
	k.cancel = nil
	k.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	k.wg.Wait()
}
