// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package adapter

import (
	"context"

	"github.com/okulikov/campushub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the CampusHub
// backend for authentication, session, and profile operations. Implementations
// are responsible for serialisation, bearer-header management, and mapping
// transport-level errors to [*RequestError].
//
// The adapter never touches the local session store: the session engine sets
// the credential via SetToken after persisting it.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. An empty string clears it.
	SetToken(token string)

	// Token returns the bearer token currently held by the adapter, or an
	// empty string if none has been set.
	Token() string

	// SendOTP asks the backend to email a one-time code bound to
	// (req.Email, req.Purpose). Returns the delivery metadata, which may
	// carry the code's expiry in minutes.
	SendOTP(ctx context.Context, req models.SendOTPRequest) (models.OTPDelivery, error)

	// VerifyOTP checks a previously issued code. The purpose must be the one
	// the code was sent with.
	VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) error

	// Login exchanges an authentication code for a session credential plus
	// the user's identity.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthSession, error)

	// Signup submits the simple registration variant. No session is created;
	// the backend emails a signup code.
	Signup(ctx context.Context, req models.SignupRequest) error

	// CompleteSignup submits the profile-complete registration variant as
	// multipart form data, optionally including a profile picture part.
	CompleteSignup(ctx context.Context, req models.CompleteSignupRequest) error

	// VerifySignup confirms the signup code and returns the freshly created
	// session credential plus identity.
	VerifySignup(ctx context.Context, req models.VerifyOTPRequest) (models.AuthSession, error)

	// ResetPassword finalises a password reset using a verified reset code.
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error

	// ChangePassword rotates the authenticated user's password.
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error

	// Logout invalidates the session server-side. Requires a bearer token.
	Logout(ctx context.Context) error

	// GetProfile fetches the authenticated user's identity. Requires a
	// bearer token; a 401 means the stored credential is no longer valid.
	GetProfile(ctx context.Context) (models.Identity, error)

	// UpdateProfile submits partial profile-field updates.
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) error

	// UploadProfilePicture uploads an avatar as a multipart request with a
	// single "profile_picture" file part.
	UploadProfilePicture(ctx context.Context, filename string, data []byte) error

	// DeleteProfilePicture removes the current avatar.
	DeleteProfilePicture(ctx context.Context) error
}

// ResourceAdapter is the read-mostly campus feed surface consumed by the home
// screen. Listing works anonymously; joining and liking require a session and
// are the operations the deferred-action gate defers.
type ResourceAdapter interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
	JoinEvent(ctx context.Context, eventID string) error
	ListPosts(ctx context.Context) ([]models.Post, error)
	LikePost(ctx context.Context, postID string) error
}
