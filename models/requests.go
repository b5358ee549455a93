package models

// SendOTPRequest asks the server to email a one-time code to an existing
// user. UserName, when present, personalises the email greeting.
type SendOTPRequest struct {
	Email    string     `json:"email"`
	UserName string     `json:"user_name,omitempty"`
	Purpose  OTPPurpose `json:"purpose"`
}

// VerifyOTPRequest checks a previously issued code. Purpose must match the
// purpose the code was sent with, the server rejects cross-flow replays.
type VerifyOTPRequest struct {
	Email   string     `json:"email"`
	OTP     string     `json:"otp"`
	Purpose OTPPurpose `json:"purpose"`
}

// LoginRequest exchanges a verified authentication code for a session.
type LoginRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// SignupRequest is the simple registration variant: account fields only, no
// profile data. A signup OTP is emailed on success; no session is created yet.
type SignupRequest struct {
	Email           string `json:"email"`
	FullName        string `json:"full_name"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	TermsAccepted   bool   `json:"terms_accepted"`
}

// CompleteSignupRequest is the profile-complete registration variant. It is
// sent as multipart form data because it may carry a profile picture.
type CompleteSignupRequest struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	Phone       string
	Major       string
	YearOfStudy string
	UserRole    string
	Bio         string

	// PictureName and Picture hold the optional profile picture part.
	// An empty Picture means no file part is attached.
	PictureName string
	Picture     []byte
}

// ResetPasswordRequest finalises a password reset. The server re-checks the
// code and is the sole arbiter of confirmation matching and strength.
type ResetPasswordRequest struct {
	Email              string `json:"email"`
	OTP                string `json:"otp"`
	NewPassword        string `json:"new_password"`
	ConfirmNewPassword string `json:"confirm_new_password"`
}

// ChangePasswordRequest rotates the password of the authenticated user.
type ChangePasswordRequest struct {
	CurrentPassword    string `json:"current_password"`
	NewPassword        string `json:"new_password"`
	ConfirmNewPassword string `json:"confirm_new_password"`
}

// UpdateProfileRequest carries the mutable profile fields. Zero-valued fields
// are omitted so the server treats them as "unchanged".
type UpdateProfileRequest struct {
	FullName    string `json:"full_name,omitempty"`
	Bio         string `json:"bio,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Major       string `json:"major,omitempty"`
	YearOfStudy string `json:"year_of_study,omitempty"`
}
