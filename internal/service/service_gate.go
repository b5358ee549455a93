// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package service

import (
	"context"
	"sync"

	"github.com/okulikov/campushub/internal/logger"
)

type pendingAction struct {
	description string
	action      DeferredAction
}

type authGate struct {
	engine SessionEngine
	logger *logger.Logger

	mu      sync.Mutex
	pending *pendingAction
}

func NewAuthGate(engine SessionEngine, log *logger.Logger) AuthGate {
	return &authGate{engine: engine, logger: log.GetChildLogger("auth-gate")}
}

func (g *authGate) RequireAuth(ctx context.Context, description string, action DeferredAction) (bool, error) {
	if g.engine.State().IsAuthenticated {
		return true, action(ctx)
	}

	g.mu.Lock()
	if g.pending != nil {
		g.logger.Debug().
			Str("replaced", g.pending.description).
			Str("with", description).
			Msg("pending action replaced")
	}
	g.pending = &pendingAction{description: description, action: action}
	g.mu.Unlock()

	return false, nil
}

func (g *authGate) Pending() (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.pending == nil {
		return "", false
	}
	return g.pending.description, true
}

func (g *authGate) Resume(ctx context.Context) error {
	if !g.engine.State().IsAuthenticated {
		return ErrNotAuthenticated
	}

	g.mu.Lock()
	p := g.pending
	g.pending = nil
	g.mu.Unlock()

	if p == nil {
		return ErrNoPendingAction
	}
	return p.action(ctx)
}

func (g *authGate) Dismiss() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending = nil
}
