// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package service

import (
	"context"
	"errors"
	"sync"

	"github.com/okulikov/campushub/internal/adapter"
	"github.com/okulikov/campushub/internal/logger"
	"github.com/okulikov/campushub/internal/store"
	"github.com/okulikov/campushub/internal/validators"
	"github.com/okulikov/campushub/models"
)

type sessionEngine struct {
	adapter   adapter.ServerAdapter
	sessions  store.SessionRepository
	validator *validators.AuthValidator
	logger    *logger.Logger

	mu    sync.RWMutex
	gen   uint64
	state SessionState
}

func NewSessionEngine(serverAdapter adapter.ServerAdapter, sessions store.SessionRepository, validator *validators.AuthValidator, log *logger.Logger) SessionEngine {
	return &sessionEngine{
		adapter:   serverAdapter,
		sessions:  sessions,
		validator: validator,
		logger:    log.GetChildLogger("session-engine"),
	}
}

func (e *sessionEngine) State() SessionState {
	e.mu.RLock()
	defer e.mu.RUnlock()

	st := e.state
	if st.Identity != nil {
		id := *st.Identity
		st.Identity = &id
	}
	return st
}

func (e *sessionEngine) ClearError() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = reduce(e.state, actionErrorCleared{})
}

// begin marks a new operation: it bumps the generation counter, so any
// still-in-flight older operation can no longer settle, and flips the state
// into loading.
func (e *sessionEngine) begin() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.gen++
	e.state = reduce(e.state, actionLoadStarted{})
	return e.gen
}

// settle applies the actions iff gen is still the current generation. A false
// return means a newer operation started in the meantime and this result was
// discarded.
func (e *sessionEngine) settle(gen uint64, actions ...sessionAction) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if gen != e.gen {
		return false
	}
	for _, a := range actions {
		e.state = reduce(e.state, a)
	}
	return true
}

func (e *sessionEngine) StartupCheck(ctx context.Context) error {
	gen := e.begin()

	token, err := e.sessions.Token(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		e.settle(gen, actionSignedOut{})
		return nil
	}
	if err != nil {
		e.logger.Error().Err(err).Msg("startup check: reading stored session failed")
		e.settle(gen, actionFailed{err}, actionSignedOut{})
		return err
	}

	e.adapter.SetToken(token)

	identity, err := e.adapter.GetProfile(ctx)
	if errors.Is(err, adapter.ErrUnauthorized) {
		// The server no longer recognises the stored credential. Drop it and
		// start anonymous, but leave ErrSessionExpired in the state so the UI
		// can tell the user why they were signed out.
		e.adapter.SetToken("")
		if delErr := e.sessions.Delete(ctx); delErr != nil {
			e.logger.Warn().Err(delErr).Msg("startup check: deleting rejected session failed")
		}
		e.settle(gen, actionFailed{ErrSessionExpired}, actionSignedOut{})
		return nil
	}
	if err != nil {
		// Transport failure: keep the token so a later retry can restore the
		// session, but settle anonymous so the UI is never stuck loading.
		mapped := mapServerError(err)
		e.settle(gen, actionFailed{mapped}, actionSignedOut{})
		return mapped
	}

	e.settle(gen, actionAuthenticated{identity})
	return nil
}

func (e *sessionEngine) Login(ctx context.Context, email, code string) error {
	gen := e.begin()

	if err := e.validator.ValidateOTP(code); err != nil {
		e.settle(gen, actionFailed{err})
		return err
	}

	session, err := e.adapter.Login(ctx, models.LoginRequest{Email: email, OTP: code})
	if err != nil {
		mapped := mapServerError(err)
		e.settle(gen, actionFailed{mapped})
		return mapped
	}

	e.persistToken(ctx, session.SessionToken)
	e.settle(gen, actionAuthenticated{session.Identity})
	return nil
}

func (e *sessionEngine) SignupBegin(ctx context.Context, req models.SignupRequest) error {
	gen := e.begin()

	if err := e.validator.ValidateSignup(req); err != nil {
		e.settle(gen, actionFailed{err})
		return err
	}

	if err := e.adapter.Signup(ctx, req); err != nil {
		mapped := mapServerError(err)
		e.settle(gen, actionFailed{mapped})
		return mapped
	}

	e.settle(gen, actionIdle{})
	return nil
}

func (e *sessionEngine) CompleteSignupBegin(ctx context.Context, req models.CompleteSignupRequest) error {
	gen := e.begin()

	if err := e.validator.ValidateCompleteSignup(req); err != nil {
		e.settle(gen, actionFailed{err})
		return err
	}

	if err := e.adapter.CompleteSignup(ctx, req); err != nil {
		mapped := mapServerError(err)
		e.settle(gen, actionFailed{mapped})
		return mapped
	}

	e.settle(gen, actionIdle{})
	return nil
}

func (e *sessionEngine) SignupVerify(ctx context.Context, email, code string) error {
	gen := e.begin()

	if err := e.validator.ValidateOTP(code); err != nil {
		e.settle(gen, actionFailed{err})
		return err
	}

	session, err := e.adapter.VerifySignup(ctx, models.VerifyOTPRequest{Email: email, OTP: code})
	if err != nil {
		mapped := mapServerError(err)
		e.settle(gen, actionFailed{mapped})
		return mapped
	}

	e.persistToken(ctx, session.SessionToken)

	// The verify payload carries a minimal identity; the profile endpoint is
	// the authoritative one. Fall back to the payload if the re-fetch fails.
	identity, err := e.adapter.GetProfile(ctx)
	if err != nil {
		e.logger.Warn().Err(err).Msg("signup verify: profile re-fetch failed, using verify payload")
		identity = session.Identity
	}

	e.settle(gen, actionAuthenticated{identity})
	return nil
}

func (e *sessionEngine) Logout(ctx context.Context) error {
	gen := e.begin()

	// Best-effort: the local session dies regardless of what the server says.
	if err := e.adapter.Logout(ctx); err != nil {
		e.logger.Warn().Err(err).Msg("logout: server call failed, clearing local session anyway")
	}

	e.adapter.SetToken("")
	if err := e.sessions.Delete(ctx); err != nil {
		e.logger.Error().Err(err).Msg("logout: deleting stored session failed")
	}

	e.settle(gen, actionSignedOut{})
	return nil
}

func (e *sessionEngine) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	gen := e.begin()

	if !e.isAuthenticated() {
		e.settle(gen, actionFailed{ErrNotAuthenticated})
		return ErrNotAuthenticated
	}
	if err := e.validator.ValidatePassword(req.NewPassword, req.ConfirmNewPassword); err != nil {
		e.settle(gen, actionFailed{err})
		return err
	}

	if err := e.adapter.ChangePassword(ctx, req); err != nil {
		mapped := mapAuthedError(err)
		e.settle(gen, actionFailed{mapped})
		return mapped
	}

	e.settle(gen, actionIdle{})
	return nil
}

func (e *sessionEngine) RefreshIdentity(ctx context.Context) error {
	e.mu.RLock()
	gen := e.gen
	authed := e.state.IsAuthenticated
	e.mu.RUnlock()

	if !authed {
		return ErrNotAuthenticated
	}

	identity, err := e.adapter.GetProfile(ctx)
	if errors.Is(err, adapter.ErrUnauthorized) {
		e.adapter.SetToken("")
		if delErr := e.sessions.Delete(ctx); delErr != nil {
			e.logger.Warn().Err(delErr).Msg("refresh: deleting revoked session failed")
		}
		e.settle(gen, actionSignedOut{})
		return ErrSessionExpired
	}
	if err != nil {
		// Transient failure, keep the current identity.
		return mapServerError(err)
	}

	e.settle(gen, actionIdentityRefreshed{identity})
	return nil
}

func (e *sessionEngine) isAuthenticated() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.IsAuthenticated
}

// persistToken writes the credential to the local store and attaches it to
// the gateway. A store failure is logged but does not fail the sign-in: the
// in-memory session is still good for this run.
func (e *sessionEngine) persistToken(ctx context.Context, token string) {
	if err := e.sessions.Save(ctx, token); err != nil {
		e.logger.Error().Err(err).Msg("persisting session token failed")
	}
	e.adapter.SetToken(token)
}
