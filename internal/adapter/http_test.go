// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/okulikov/campushub/internal/config"
	"github.com/okulikov/campushub/internal/logger"
	"github.com/okulikov/campushub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: config.DefaultRequestTimeout}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a
}

func writeEnvelope(w http.ResponseWriter, status int, success bool, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	envelope := map[string]any{"success": success, "message": message}
	if data != nil {
		envelope["data"] = data
	}
	_ = json.NewEncoder(w).Encode(envelope)
}

// ── SendOTP ──────────────────────────────────────────────────────────────────

func TestSendOTP_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/send-otp", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		var req models.SendOTPRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@b.edu", req.Email)
		assert.Equal(t, models.PurposeAuthentication, req.Purpose)

		writeEnvelope(w, http.StatusOK, true, "Authentication code sent to your email",
			map[string]any{"expiry_minutes": 10})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	delivery, err := a.SendOTP(context.Background(), models.SendOTPRequest{
		Email:   "a@b.edu",
		Purpose: models.PurposeAuthentication,
	})

	require.NoError(t, err)
	assert.Equal(t, 10, delivery.ExpiryMinutes)
}

func TestSendOTP_BusinessRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, false, "User not found", nil)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SendOTP(context.Background(), models.SendOTPRequest{Email: "x@y.edu", Purpose: models.PurposeAuthentication})

	require.Error(t, err)
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "User not found", reqErr.Message)
	assert.Equal(t, http.StatusOK, reqErr.Status)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)

		writeEnvelope(w, http.StatusOK, true, "Login successful", map[string]any{
			"user_id":       "u1",
			"email":         "a@b.edu",
			"full_name":     "Alice Doe",
			"session_token": "tok-123",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	session, err := a.Login(context.Background(), models.LoginRequest{Email: "a@b.edu", OTP: "123456"})

	require.NoError(t, err)
	assert.Equal(t, "tok-123", session.SessionToken)
	assert.Equal(t, "u1", session.UserID)
	assert.Equal(t, "a@b.edu", session.Email)
	assert.Equal(t, "Alice Doe", session.FullName)
}

func TestLogin_MissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, true, "Login successful", map[string]any{"user_id": "u1"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "a@b.edu", OTP: "123456"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing session token")
}

func TestLogin_InvalidCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, false, "Invalid or expired code", nil)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "a@b.edu", OTP: "000000"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid or expired code")
}

// ── Error mapping ────────────────────────────────────────────────────────────

func TestUnwrapEnvelope_NonJSONBodyFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>boom</html>"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.VerifyOTP(context.Background(), models.VerifyOTPRequest{Email: "a@b.edu", OTP: "1", Purpose: models.PurposeAuthentication})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Contains(t, err.Error(), "HTTP 500: Internal Server Error")
}

// ── Authenticated requests ───────────────────────────────────────────────────

func TestGetProfile_AttachesBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/auth/profile", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		writeEnvelope(w, http.StatusOK, true, "", map[string]any{
			"user_id": "u1",
			"email":   "a@b.edu",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("  tok-123  ")

	identity, err := a.GetProfile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "a@b.edu", identity.Email)
}

func TestGetProfile_ExpiredToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, false, "Invalid or expired token", nil)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stale")

	_, err := a.GetProfile(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── Multipart ────────────────────────────────────────────────────────────────

func TestUploadProfilePicture_MultipartBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/profile/picture", r.URL.Path)
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"),
			"expected multipart content type with boundary, got %q", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseMultipartForm(10<<20))
		file, header, err := r.FormFile("profile_picture")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "avatar.png", header.Filename)
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, content)

		writeEnvelope(w, http.StatusOK, true, "Profile picture updated", nil)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	err := a.UploadProfilePicture(context.Background(), "avatar.png", []byte{0x89, 'P', 'N', 'G'})
	require.NoError(t, err)
}

func TestCompleteSignup_MultipartFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/complete-signup", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(10<<20))

		assert.Equal(t, "a@b.edu", r.FormValue("email"))
		assert.Equal(t, "Alice", r.FormValue("first_name"))
		assert.Equal(t, "student", r.FormValue("user_role"))
		// optional fields left empty are not sent at all
		_, hasPhone := r.MultipartForm.Value["phone"]
		assert.False(t, hasPhone)

		writeEnvelope(w, http.StatusCreated, true, "Signup accepted", nil)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.CompleteSignup(context.Background(), models.CompleteSignupRequest{
		Email:       "a@b.edu",
		Password:    "hunter22",
		FirstName:   "Alice",
		LastName:    "Doe",
		Major:       "CS",
		YearOfStudy: "2",
		UserRole:    "student",
	})

	require.NoError(t, err)
}

// ── Resources ────────────────────────────────────────────────────────────────

func TestListEvents_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events", r.URL.Path)
		writeEnvelope(w, http.StatusOK, true, "", []map[string]any{
			{"id": "e1", "title": "Hack Night", "attendees": 12},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	events, err := a.ListEvents(context.Background())

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Hack Night", events[0].Title)
}

func TestJoinEvent_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events/e1/join", r.URL.Path)
		writeEnvelope(w, http.StatusUnauthorized, false, "Authorization token is required", nil)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.JoinEvent(context.Background(), "e1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── Base URL normalisation ───────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "scheme added", in: "localhost:5000", want: "http://localhost:5000"},
		{name: "trailing slash trimmed", in: "https://api.campushub.example/", want: "https://api.campushub.example"},
		{name: "empty", in: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
