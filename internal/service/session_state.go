// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package service

import "github.com/okulikov/campushub/models"

// SessionState is the single source of truth for "who is signed in". The
// invariant is structural: IsAuthenticated is true exactly when Identity is
// non-nil, and reduce is the only place either field changes.
type SessionState struct {
	Identity        *models.Identity
	IsAuthenticated bool
	IsLoading       bool
	Err             error
}

type sessionAction interface {
	isSessionAction()
}

type (
	// actionLoadStarted marks the beginning of a server operation and drops
	// any stale error.
	actionLoadStarted struct{}

	// actionAuthenticated settles a successful login or session restore.
	actionAuthenticated struct{ identity models.Identity }

	// actionIdentityRefreshed swaps in a newer profile without touching the
	// loading flag (background refreshes must not flicker the UI).
	actionIdentityRefreshed struct{ identity models.Identity }

	// actionSignedOut settles into the anonymous state, keeping whatever
	// error was recorded before it.
	actionSignedOut struct{}

	// actionIdle settles an operation that changed nothing (e.g. a signup
	// submission that only triggered an email).
	actionIdle struct{}

	// actionFailed settles an operation with a sticky error.
	actionFailed struct{ err error }

	actionErrorCleared struct{}
)

func (actionLoadStarted) isSessionAction()       {}
func (actionAuthenticated) isSessionAction()     {}
func (actionIdentityRefreshed) isSessionAction() {}
func (actionSignedOut) isSessionAction()         {}
func (actionIdle) isSessionAction()              {}
func (actionFailed) isSessionAction()            {}
func (actionErrorCleared) isSessionAction()      {}

// reduce maps (state, action) to the next state. It is pure: no locks, no IO,
// no mutation of the input.
func reduce(s SessionState, a sessionAction) SessionState {
	switch a := a.(type) {
	case actionLoadStarted:
		s.IsLoading = true
		s.Err = nil
	case actionAuthenticated:
		id := a.identity
		s.Identity = &id
		s.IsAuthenticated = true
		s.IsLoading = false
		s.Err = nil
	case actionIdentityRefreshed:
		id := a.identity
		s.Identity = &id
		s.IsAuthenticated = true
	case actionSignedOut:
		s.Identity = nil
		s.IsAuthenticated = false
		s.IsLoading = false
	case actionIdle:
		s.IsLoading = false
	case actionFailed:
		s.IsLoading = false
		s.Err = a.err
	case actionErrorCleared:
		s.Err = nil
	}
	return s
}
