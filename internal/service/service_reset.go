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

// ResetStep enumerates the password-reset steps in order.
type ResetStep int

const (
	StepEmail ResetStep = iota + 1
	StepCode
	StepPassword
	StepDone
)

// ResetState is a snapshot of the reset machine.
type ResetState struct {
	Step      ResetStep
	Email     string
	IsLoading bool
	Err       error
}

type passwordResetFlow struct {
	adapter   adapter.ServerAdapter
	validator *validators.AuthValidator
	otp       OTPFlow

	mu    sync.RWMutex
	state ResetState
	code  string // the code confirmed at StepCode, consumed at StepPassword
}

func NewPasswordResetFlow(serverAdapter adapter.ServerAdapter, validator *validators.AuthValidator) PasswordResetFlow {
	return &passwordResetFlow{
		adapter:   serverAdapter,
		validator: validator,
		otp:       NewOTPFlow(serverAdapter, validator),
		state:     ResetState{Step: StepEmail},
	}
}

func (r *passwordResetFlow) State() ResetState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

func (r *passwordResetFlow) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.otp.Reset()
	r.state = ResetState{Step: StepEmail}
	r.code = ""
}

func (r *passwordResetFlow) SubmitEmail(ctx context.Context, email string) error {
	// A completed flow is terminal; only Reset() leaves it.
	if r.State().Step == StepDone {
		return ErrStepNotReached
	}
	r.setLoading(true)

	if err := r.otp.Send(ctx, email, "", models.PurposePasswordReset); err != nil {
		r.fail(err)
		return err
	}

	r.mu.Lock()
	r.state.Email = email
	r.state.Step = StepCode
	r.state.IsLoading = false
	r.code = ""
	r.mu.Unlock()
	return nil
}

func (r *passwordResetFlow) SubmitCode(ctx context.Context, code string) error {
	if step := r.State().Step; step != StepCode {
		return ErrStepNotReached
	}
	r.setLoading(true)

	if err := r.otp.Verify(ctx, code); err != nil {
		r.fail(err)
		return err
	}

	r.mu.Lock()
	r.state.Step = StepPassword
	r.state.IsLoading = false
	r.code = code
	r.mu.Unlock()
	return nil
}

func (r *passwordResetFlow) SubmitPassword(ctx context.Context, password, confirm string) error {
	r.mu.RLock()
	step, email, code := r.state.Step, r.state.Email, r.code
	r.mu.RUnlock()

	if step != StepPassword {
		return ErrStepNotReached
	}

	// Fast local feedback only; the server re-checks everything, including
	// that the code is still the verified one.
	if err := r.validator.ValidatePassword(password, confirm); err != nil {
		r.fail(err)
		return err
	}
	r.setLoading(true)

	err := r.adapter.ResetPassword(ctx, models.ResetPasswordRequest{
		Email:              email,
		OTP:                code,
		NewPassword:        password,
		ConfirmNewPassword: confirm,
	})
	if err != nil {
		mapped := mapServerError(err)
		r.fail(mapped)
		return mapped
	}

	r.mu.Lock()
	r.state.Step = StepDone
	r.state.IsLoading = false
	r.mu.Unlock()
	return nil
}

func (r *passwordResetFlow) GoToStep(step ResetStep) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if step > r.state.Step {
		return ErrStepNotReached
	}
	if step < StepEmail {
		step = StepEmail
	}

	// Backing out before the password step discards the verified code; the
	// email survives so the user does not retype it.
	if step < StepPassword {
		r.code = ""
	}
	r.state.Step = step
	r.state.Err = nil
	return nil
}

func (r *passwordResetFlow) setLoading(v bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.IsLoading = v
	r.state.Err = nil
}

func (r *passwordResetFlow) fail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.IsLoading = false
	r.state.Err = err
}
