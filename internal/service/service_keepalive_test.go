package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionKeepAlive_RefreshesWhileAuthenticated(t *testing.T) {
	engine := &stubEngine{authed: true}
	job := NewSessionKeepAlive(engine)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, engine.refreshCalls(), 3)
}

func TestSessionKeepAlive_SkipsTicksWhileAnonymous(t *testing.T) {
	engine := &stubEngine{}
	job := NewSessionKeepAlive(engine)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	assert.Zero(t, engine.refreshCalls())
}

func TestSessionKeepAlive_RevocationIsNoticed(t *testing.T) {
	engine := &stubEngine{authed: true}
	engine.refresh = func(context.Context) error {
		// The first refresh discovers the revoked session; a real engine
		// settles into anonymous exactly like this.
		engine.setAuthed(false)
		return ErrSessionExpired
	}
	job := NewSessionKeepAlive(engine)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.Equal(t, 1, engine.refreshCalls(), "once anonymous, no further refreshes happen")
	assert.False(t, engine.State().IsAuthenticated)
}

func TestSessionKeepAlive_StopStopsGoroutine(t *testing.T) {
	engine := &stubEngine{authed: true}
	job := NewSessionKeepAlive(engine)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := engine.refreshCalls()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterStop, engine.refreshCalls())
}

func TestSessionKeepAlive_StopBeforeStartNoPanic(t *testing.T) {
	job := NewSessionKeepAlive(&stubEngine{})
	assert.NotPanics(t, func() { job.Stop() })
}

func TestSessionKeepAlive_DefaultInterval(t *testing.T) {
	engine := &stubEngine{authed: true}
	job := NewSessionKeepAlive(engine)
	ctx, cancel := context.WithCancel(context.Background())

	// interval <= 0 defaults to 5 minutes, so nothing fires within 20ms.
	job.Start(ctx, 0)
	time.Sleep(20 * time.Millisecond)
	cancel()
	job.Stop()

	assert.Zero(t, engine.refreshCalls())
}

func TestSessionKeepAlive_RestartStopsPrevious(t *testing.T) {
	engine := &stubEngine{authed: true}
	job := NewSessionKeepAlive(engine)
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	callsBefore := engine.refreshCalls()
	require.Greater(t, callsBefore, 0)

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, engine.refreshCalls(), callsBefore)
}

func TestSessionKeepAlive_ContextCancelStopsJob(t *testing.T) {
	engine := &stubEngine{authed: true}
	job := NewSessionKeepAlive(engine)
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung after context cancellation")
	}
}
