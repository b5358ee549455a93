package models

// AuthSession is the payload returned by login and verify-signup: the bearer
// session token plus the identity fields, flattened into one JSON object by
// the server.
type AuthSession struct {
	Identity

	// SessionToken is the opaque bearer credential for all authenticated calls.
	SessionToken string `json:"session_token"`
}

// OTPPurpose scopes a one-time code to a single use case so codes cannot be
// replayed across flows. The server binds each issued code to an
// (email, purpose) pair.
type OTPPurpose string

const (
	PurposeAuthentication OTPPurpose = "authentication"
	PurposePasswordReset  OTPPurpose = "password_reset"
	PurposeSignup         OTPPurpose = "signup"
)
