package models

import "encoding/json"

// APIEnvelope is the uniform wrapper around every CampusHub server response:
// {"success": bool, "message": string, "data": ...}. Data is kept raw so the
// transport layer can decode it into the call-specific payload type.
type APIEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// OTPDelivery is the data payload of a successful send-OTP call.
type OTPDelivery struct {
	// ExpiryMinutes is how long the emailed code stays valid. Zero when the
	// server did not report an expiry.
	ExpiryMinutes int `json:"expiry_minutes,omitempty"`
}
