// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package models

import "strings"

// Identity is the authenticated user's profile record as known to the client.
//
// Email is the only field guaranteed to be present once an Identity exists:
// it is the OTP delivery target and the uniqueness key on the server. Every
// other field is optional and consumers must tolerate its absence.
type Identity struct {
	// UserID is the opaque server-side identifier of the user.
	UserID string `json:"user_id"`

	// Email is the campus email address. Immutable after signup.
	Email string `json:"email"`

	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	FullName  string `json:"full_name,omitempty"`

	// Bio is a free-form self description, server-bounded at 500 characters.
	Bio   string `json:"bio,omitempty"`
	Phone string `json:"phone,omitempty"`

	Major       string `json:"major,omitempty"`
	YearOfStudy string `json:"year_of_study,omitempty"`

	// UserRole is a free-form role tag such as "student" or "teacher".
	UserRole string `json:"user_role,omitempty"`

	// ProfilePicture is the URL of the uploaded avatar, empty when none is set.
	ProfilePicture string `json:"profile_picture,omitempty"`

	IsActive   bool `json:"is_active,omitempty"`
	IsVerified bool `json:"is_verified,omitempty"`

	CreatedAt string `json:"created_at,omitempty"`
	LastLogin string `json:"last_login,omitempty"`
}

// DisplayName returns the best available human-readable name: the full name,
// then first+last, then the local part of the email address.
func (i Identity) DisplayName() string {
	if name := strings.TrimSpace(i.FullName); name != "" {
		return name
	}
	if name := strings.TrimSpace(strings.TrimSpace(i.FirstName) + " " + strings.TrimSpace(i.LastName)); name != "" {
		return name
	}
	if at := strings.IndexByte(i.Email, '@'); at > 0 {
		return i.Email[:at]
	}
	return i.Email
}
