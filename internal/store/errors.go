package store

import "errors"

// ErrSessionNotFound is returned by [SessionRepository.Token] when no session
// credential has been persisted. Callers treat it as "anonymous", never as a
// failure.
var ErrSessionNotFound = errors.New("local session not found")
