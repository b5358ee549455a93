// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package service

import (
	"context"
	"sync"

	"github.com/okulikov/campushub/internal/adapter"
	"github.com/okulikov/campushub/internal/validators"
	"github.com/okulikov/campushub/models"
)

// DefaultOTPExpiryMinutes is assumed when the server omits the expiry from
// the send-code response.
const DefaultOTPExpiryMinutes = 10

// OTPState is a snapshot of one send/verify cycle.
type OTPState struct {
	Email         string
	Purpose       models.OTPPurpose
	IsLoading     bool
	IsSent        bool
	IsVerified    bool
	ExpiryMinutes int
	Err           error
}

type otpFlow struct {
	adapter   adapter.ServerAdapter
	validator *validators.AuthValidator

	mu    sync.RWMutex
	state OTPState
}

func NewOTPFlow(serverAdapter adapter.ServerAdapter, validator *validators.AuthValidator) OTPFlow {
	return &otpFlow{adapter: serverAdapter, validator: validator}
}

func (f *otpFlow) State() OTPState {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state
}

func (f *otpFlow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = OTPState{}
}

func (f *otpFlow) Send(ctx context.Context, email, userName string, purpose models.OTPPurpose) error {
	if err := f.validator.ValidateEmail(email); err != nil {
		f.fail(err)
		return err
	}

	// A new code supersedes the old one, so any earlier verification is void
	// from this point on, whether the send succeeds or not.
	f.mu.Lock()
	f.state.Email = email
	f.state.Purpose = purpose
	f.state.IsLoading = true
	f.state.IsVerified = false
	f.state.Err = nil
	f.mu.Unlock()

	delivery, err := f.adapter.SendOTP(ctx, models.SendOTPRequest{Email: email, UserName: userName, Purpose: purpose})
	if err != nil {
		mapped := mapServerError(err)
		f.fail(mapped)
		return mapped
	}

	expiry := delivery.ExpiryMinutes
	if expiry <= 0 {
		expiry = DefaultOTPExpiryMinutes
	}

	f.mu.Lock()
	f.state.IsLoading = false
	f.state.IsSent = true
	f.state.ExpiryMinutes = expiry
	f.mu.Unlock()
	return nil
}

func (f *otpFlow) Verify(ctx context.Context, code string) error {
	f.mu.RLock()
	email, purpose, sent := f.state.Email, f.state.Purpose, f.state.IsSent
	f.mu.RUnlock()

	if !sent {
		f.fail(ErrCodeNotSent)
		return ErrCodeNotSent
	}
	if err := f.validator.ValidateOTP(code); err != nil {
		f.fail(err)
		return err
	}

	f.mu.Lock()
	f.state.IsLoading = true
	f.state.Err = nil
	f.mu.Unlock()

	err := f.adapter.VerifyOTP(ctx, models.VerifyOTPRequest{Email: email, OTP: code, Purpose: purpose})
	if err != nil {
		mapped := mapServerError(err)
		f.fail(mapped)
		return mapped
	}

	f.mu.Lock()
	f.state.IsLoading = false
	f.state.IsVerified = true
	f.mu.Unlock()
	return nil
}

func (f *otpFlow) fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.IsLoading = false
	f.state.Err = err
}
