// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package service

import (
	"context"
	"time"

	"github.com/okulikov/campushub/models"
)

// SessionEngine owns the single authoritative authentication state of the
// client. All mutations go through it; screens only ever read State().
//
// Every operation that talks to the server is generation-tagged: if a newer
// operation starts while an older one is in flight, the older result is
// discarded instead of overwriting fresher state.
type SessionEngine interface {
	// State returns a snapshot of the current session state. The returned
	// value is a copy and safe to hold across frames.
	State() SessionState

	// StartupCheck restores the session from the local store: it loads the
	// persisted token, attaches it to the gateway, and validates it with a
	// profile fetch. A missing token settles the engine into the anonymous
	// state cleanly; a rejected token is deleted and leaves ErrSessionExpired
	// in the state. Only transport failures are returned to the caller (and
	// the token is kept for a later retry).
	StartupCheck(ctx context.Context) error

	// Login exchanges a verified authentication code for a session. On
	// success the token is persisted, attached to the gateway, and the
	// engine becomes authenticated with the returned identity.
	Login(ctx context.Context, email, code string) error

	// SignupBegin submits the simple registration variant. No session is
	// created; on success the engine returns to a non-loading, error-free
	// idle state and the caller moves on to code entry.
	SignupBegin(ctx context.Context, req models.SignupRequest) error

	// CompleteSignupBegin submits the profile-complete registration variant,
	// optionally carrying a profile picture. Like SignupBegin it creates no
	// session.
	CompleteSignupBegin(ctx context.Context, req models.CompleteSignupRequest) error

	// SignupVerify confirms the emailed signup code. On success the fresh
	// session token is persisted and attached, the full profile is
	// re-fetched, and the engine becomes authenticated.
	SignupVerify(ctx context.Context, email, code string) error

	// Logout ends the session. The server call is best-effort: the local
	// token and in-memory state are cleared even when it fails.
	Logout(ctx context.Context) error

	// ChangePassword rotates the authenticated user's password.
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error

	// RefreshIdentity re-fetches the profile for the current session without
	// toggling the loading flag. A rejected token resets the engine to
	// anonymous and returns ErrSessionExpired.
	RefreshIdentity(ctx context.Context) error

	// ClearError drops the sticky error from the state.
	ClearError()
}

// OTPFlow drives one send/verify cycle of a one-time code. Each screen that
// needs a code owns its own instance; instances never share state.
type OTPFlow interface {
	// Send asks the server to email a code bound to (email, purpose) and
	// remembers both for the matching Verify call. Sending again always
	// clears a previous verification: a re-sent code invalidates whatever
	// was verified before it.
	Send(ctx context.Context, email, userName string, purpose models.OTPPurpose) error

	// Verify checks the code against the email and purpose captured by the
	// preceding Send.
	Verify(ctx context.Context, code string) error

	// Reset returns the flow to its initial state.
	Reset()

	// State returns a snapshot of the flow state.
	State() OTPState
}

// PasswordResetFlow is the linear four-step reset machine:
// email → code → new password → done. A step advances only after the server
// confirmed the corresponding call; navigation backwards is allowed, jumping
// ahead is not.
type PasswordResetFlow interface {
	// SubmitEmail sends the reset code and advances to the code step.
	SubmitEmail(ctx context.Context, email string) error

	// SubmitCode verifies the reset code and advances to the password step.
	SubmitCode(ctx context.Context, code string) error

	// SubmitPassword finalises the reset with the verified code and advances
	// to the done step.
	SubmitPassword(ctx context.Context, password, confirm string) error

	// GoToStep navigates back to an earlier step, keeping the entered email.
	// Moving forward past the current step returns ErrStepNotReached.
	GoToStep(step ResetStep) error

	// Reset returns the machine to the email step with all progress cleared.
	Reset()

	// State returns a snapshot of the machine state.
	State() ResetState
}

// DeferredAction is a session-requiring operation captured by the gate for
// execution once the user has signed in.
type DeferredAction func(ctx context.Context) error

// AuthGate defers session-requiring actions for anonymous users. At most one
// action is pending at a time; a newer RequireAuth replaces an older pending
// record. Pending actions live in memory only and do not survive a restart.
type AuthGate interface {
	// RequireAuth runs action immediately and returns (true, its error) when
	// a session exists. Otherwise it records (description, action) as
	// pending and returns (false, nil); the caller shows the sign-in prompt.
	RequireAuth(ctx context.Context, description string, action DeferredAction) (bool, error)

	// Pending reports the description of the pending action, if any.
	Pending() (description string, ok bool)

	// Resume runs the pending action if the user is now authenticated. The
	// pending record is cleared whether the action succeeds or fails.
	Resume(ctx context.Context) error

	// Dismiss drops the pending action without running it.
	Dismiss()
}

// ProfileService performs profile mutations. The three operations carry
// independent loading flags so a slow upload never blocks a field save, but
// they share one error slot the way the session engine does.
type ProfileService interface {
	// UpdateProfile submits partial field updates and refreshes the engine's
	// identity on success.
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) error

	// UploadPicture validates and uploads a new avatar, then refreshes the
	// engine's identity.
	UploadPicture(ctx context.Context, filename string, data []byte) error

	// DeletePicture removes the avatar and refreshes the engine's identity.
	DeletePicture(ctx context.Context) error

	// State returns a snapshot of the mutation flags and the shared error.
	State() ProfileState

	// ClearError drops the shared error.
	ClearError()
}

// SessionKeepAlive periodically re-validates the session in the background so
// a server-side revocation is noticed without user interaction.
type SessionKeepAlive interface {
	// Start launches the background goroutine. It refreshes every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
