// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

// Package validators provides client-side input validation for the
// authentication and profile flows.
//
// The server remains the sole arbiter of every rule enforced here; these
// checks exist only so that obviously bad input is rejected before a network
// call is spent on it. Validation failures short-circuit into the same error
// slot the services use for server-reported failures, so the UI never needs
// to distinguish their origin.
package validators

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/okulikov/campushub/models"
)

const (
	MinNameLength     = 2
	MinPasswordLength = 8
	MaxBioLength      = 500
	OTPLength         = 6
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]{7,20}$`)
	otpPattern   = regexp.MustCompile(`^\d{6}$`)
)

// AuthValidator validates signup, login, and password inputs against the
// configured campus email domain allow-list.
type AuthValidator struct {
	allowedDomains []string
}

func NewAuthValidator(allowedDomains []string) *AuthValidator {
	return &AuthValidator{allowedDomains: allowedDomains}
}

// ValidateEmail checks basic shape and the campus domain allow-list. A domain
// entry starting with "." matches any subdomain suffix (".edu" matches
// "cs.university.edu"); other entries must match the domain exactly.
func (v *AuthValidator) ValidateEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !emailPattern.MatchString(email) {
		return ErrEmailRequired
	}

	domain := email[strings.LastIndexByte(email, '@')+1:]
	for _, allowed := range v.allowedDomains {
		allowed = strings.ToLower(allowed)
		if strings.HasPrefix(allowed, ".") {
			if strings.HasSuffix(domain, allowed) || domain == allowed[1:] {
				return nil
			}
			continue
		}
		if domain == allowed {
			return nil
		}
	}

	return ErrEmailDomainNotAllowed
}

// ValidatePassword mirrors the server's strength rule for fast feedback:
// at least 8 characters with at least one letter and one digit.
func (v *AuthValidator) ValidatePassword(password, confirm string) error {
	if len(password) < MinPasswordLength || !containsLetter(password) || !containsDigit(password) {
		return ErrWeakPassword
	}
	if password != confirm {
		return ErrPasswordMismatch
	}
	return nil
}

// ValidateOTP checks the 6-digit code shape.
func (v *AuthValidator) ValidateOTP(code string) error {
	if !otpPattern.MatchString(strings.TrimSpace(code)) {
		return ErrInvalidOTP
	}
	return nil
}

// ValidateSignup checks the simple registration variant.
func (v *AuthValidator) ValidateSignup(req models.SignupRequest) error {
	if err := v.ValidateEmail(req.Email); err != nil {
		return err
	}
	if len(strings.TrimSpace(req.FullName)) < MinNameLength {
		return ErrNameTooShort
	}
	if err := v.ValidatePassword(req.Password, req.ConfirmPassword); err != nil {
		return err
	}
	if !req.TermsAccepted {
		return ErrTermsNotAccepted
	}
	return nil
}

// ValidateCompleteSignup checks the profile-complete registration variant,
// including the optional picture part.
func (v *AuthValidator) ValidateCompleteSignup(req models.CompleteSignupRequest) error {
	if err := v.ValidateEmail(req.Email); err != nil {
		return err
	}
	if len(strings.TrimSpace(req.FirstName)) < MinNameLength || len(strings.TrimSpace(req.LastName)) < MinNameLength {
		return ErrNameTooShort
	}
	if err := v.ValidatePassword(req.Password, req.Password); err != nil {
		return err
	}
	if req.Phone != "" && !phonePattern.MatchString(req.Phone) {
		return ErrInvalidPhone
	}
	if len(req.Bio) > MaxBioLength {
		return ErrBioTooLong
	}
	if len(req.Picture) > 0 {
		return ValidatePicture(req.PictureName, req.Picture)
	}
	return nil
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
