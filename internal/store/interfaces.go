// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionRepository persists the bearer session credential across client
// restarts. At most one credential exists at a time.
//
// Only the session engine writes through this interface: it saves on
// successful login/verify, deletes on logout and on failed revalidation, and
// reads once at process start.
type SessionRepository interface {
	// Save stores token as the current session credential, replacing any
	// previous one.
	Save(ctx context.Context, token string) error

	// Token returns the persisted session credential. Returns
	// [ErrSessionNotFound] when no credential is stored.
	Token(ctx context.Context) (string, error)

	// Delete erases the persisted credential. Deleting when nothing is
	// stored is not an error.
	Delete(ctx context.Context) error
}
