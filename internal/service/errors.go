package service

import "errors"

var (
	ErrNotAuthenticated  = errors.New("not signed in")
	ErrSessionExpired    = errors.New("session expired, please sign in again")
	ErrServerUnavailable = errors.New("server unavailable")

	ErrNoPendingAction = errors.New("no pending action")
	ErrStepNotReached  = errors.New("step not reached yet")
	ErrCodeNotSent     = errors.New("request a code first")
)
