package service

import (
	"errors"
	"fmt"

	"github.com/okulikov/campushub/internal/adapter"
)

// mapServerError normalises a gateway error for the state's error slot. A
// business rejection already carries the server's message verbatim and is
// passed through; anything that never produced a response is a transport
// failure.
func mapServerError(err error) error {
	if err == nil {
		return nil
	}

	var reqErr *adapter.RequestError
	if errors.As(err, &reqErr) {
		return err
	}

	return fmt.Errorf("%w: %v", ErrServerUnavailable, err)
}

// mapAuthedError is mapServerError for calls made with a bearer token: a 401
// there means the stored credential is no longer valid, not bad user input.
func mapAuthedError(err error) error {
	if errors.Is(err, adapter.ErrUnauthorized) {
		return ErrSessionExpired
	}
	return mapServerError(err)
}
