package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/okulikov/campushub/internal/config"
	"github.com/okulikov/campushub/internal/logger"
	"github.com/okulikov/campushub/models"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of both
// [ServerAdapter] and [ResourceAdapter]. It normalises and validates the base
// URL from adapterCfg.HTTPAddress and configures the underlying resty client
// with the resolved base URL, the request timeout, and an X-Request-Id
// middleware that tags every outbound call with a fresh UUID for log
// correlation.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (*httpServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			req.SetHeader("X-Request-Id", uuid.NewString())
			return nil
		})

	return &httpServerAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// SendOTP implements [ServerAdapter]. It POSTs to /auth/send-otp and decodes
// the optional expiry metadata from the envelope's data payload.
func (h *httpServerAdapter) SendOTP(ctx context.Context, req models.SendOTPRequest) (models.OTPDelivery, error) {
	resp, err := h.jsonRequest(ctx).
		SetBody(req).
		Post("/auth/send-otp")
	if err != nil {
		return models.OTPDelivery{}, fmt.Errorf("send otp request: %w", err)
	}

	data, err := unwrapEnvelope(resp)
	if err != nil {
		return models.OTPDelivery{}, err
	}

	var delivery models.OTPDelivery
	if len(data) > 0 {
		if err = json.Unmarshal(data, &delivery); err != nil {
			return models.OTPDelivery{}, fmt.Errorf("decode send otp response: %w", err)
		}
	}

	return delivery, nil
}

// VerifyOTP implements [ServerAdapter]. It POSTs to /auth/verify-otp.
func (h *httpServerAdapter) VerifyOTP(ctx context.Context, req models.VerifyOTPRequest) error {
	resp, err := h.jsonRequest(ctx).
		SetBody(req).
		Post("/auth/verify-otp")
	if err != nil {
		return fmt.Errorf("verify otp request: %w", err)
	}

	_, err = unwrapEnvelope(resp)
	return err
}

// Login implements [ServerAdapter]. It POSTs to /auth/login and decodes the
// flattened session payload (session_token plus identity fields).
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthSession, error) {
	resp, err := h.jsonRequest(ctx).
		SetBody(req).
		Post("/auth/login")
	if err != nil {
		return models.AuthSession{}, fmt.Errorf("login request: %w", err)
	}

	return decodeAuthSession(resp)
}

// Signup implements [ServerAdapter]. It POSTs the simple registration payload
// to /auth/signup. No credential is issued; the backend mails a signup code.
func (h *httpServerAdapter) Signup(ctx context.Context, req models.SignupRequest) error {
	resp, err := h.jsonRequest(ctx).
		SetBody(req).
		Post("/auth/signup")
	if err != nil {
		return fmt.Errorf("signup request: %w", err)
	}

	_, err = unwrapEnvelope(resp)
	return err
}

// CompleteSignup implements [ServerAdapter]. It POSTs the profile-complete
// registration variant to /auth/complete-signup as multipart form data. The
// Content-Type header is deliberately not set here: the transport generates
// the multipart boundary itself.
func (h *httpServerAdapter) CompleteSignup(ctx context.Context, req models.CompleteSignupRequest) error {
	fields := map[string]string{
		"email":         req.Email,
		"password":      req.Password,
		"first_name":    req.FirstName,
		"last_name":     req.LastName,
		"major":         req.Major,
		"year_of_study": req.YearOfStudy,
		"user_role":     req.UserRole,
	}
	if req.Phone != "" {
		fields["phone"] = req.Phone
	}
	if req.Bio != "" {
		fields["bio"] = req.Bio
	}

	r := h.client.R().
		SetContext(ctx).
		SetMultipartFormData(fields)

	if len(req.Picture) > 0 {
		r.SetMultipartField("profile_picture", req.PictureName, "", bytes.NewReader(req.Picture))
	}

	resp, err := r.Post("/auth/complete-signup")
	if err != nil {
		return fmt.Errorf("complete signup request: %w", err)
	}

	_, err = unwrapEnvelope(resp)
	return err
}

// VerifySignup implements [ServerAdapter]. It POSTs to /auth/verify-signup
// and decodes the freshly created session payload.
func (h *httpServerAdapter) VerifySignup(ctx context.Context, req models.VerifyOTPRequest) (models.AuthSession, error) {
	req.Purpose = models.PurposeSignup

	resp, err := h.jsonRequest(ctx).
		SetBody(req).
		Post("/auth/verify-signup")
	if err != nil {
		return models.AuthSession{}, fmt.Errorf("verify signup request: %w", err)
	}

	return decodeAuthSession(resp)
}

// ResetPassword implements [ServerAdapter]. It POSTs to /auth/reset-password.
func (h *httpServerAdapter) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	resp, err := h.jsonRequest(ctx).
		SetBody(req).
		Post("/auth/reset-password")
	if err != nil {
		return fmt.Errorf("reset password request: %w", err)
	}

	_, err = unwrapEnvelope(resp)
	return err
}

// ChangePassword implements [ServerAdapter]. It POSTs to
// /auth/change-password. Requires a valid bearer token.
func (h *httpServerAdapter) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	resp, err := h.authedJSONRequest(ctx).
		SetBody(req).
		Post("/auth/change-password")
	if err != nil {
		return fmt.Errorf("change password request: %w", err)
	}

	_, err = unwrapEnvelope(resp)
	return err
}

// Logout implements [ServerAdapter]. It POSTs to /auth/logout. Requires a
// valid bearer token; callers treat failures as best-effort.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	_, err = unwrapEnvelope(resp)
	return err
}

// GetProfile implements [ServerAdapter]. It GETs /auth/profile and decodes
// the identity payload. Requires a valid bearer token.
func (h *httpServerAdapter) GetProfile(ctx context.Context) (models.Identity, error) {
	resp, err := h.authedRequest(ctx).Get("/auth/profile")
	if err != nil {
		return models.Identity{}, fmt.Errorf("get profile request: %w", err)
	}

	data, err := unwrapEnvelope(resp)
	if err != nil {
		return models.Identity{}, err
	}

	var identity models.Identity
	if err = json.Unmarshal(data, &identity); err != nil {
		return models.Identity{}, fmt.Errorf("decode profile response: %w", err)
	}

	return identity, nil
}

// UpdateProfile implements [ServerAdapter]. It PUTs the changed fields to
// /auth/profile. Requires a valid bearer token.
func (h *httpServerAdapter) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) error {
	resp, err := h.authedJSONRequest(ctx).
		SetBody(req).
		Put("/auth/profile")
	if err != nil {
		return fmt.Errorf("update profile request: %w", err)
	}

	_, err = unwrapEnvelope(resp)
	return err
}

// UploadProfilePicture implements [ServerAdapter]. It POSTs the picture to
// /auth/profile/picture as a single multipart file part; the transport sets
// the multipart boundary Content-Type. Requires a valid bearer token.
func (h *httpServerAdapter) UploadProfilePicture(ctx context.Context, filename string, data []byte) error {
	resp, err := h.authedRequest(ctx).
		SetMultipartField("profile_picture", filename, "", bytes.NewReader(data)).
		Post("/auth/profile/picture")
	if err != nil {
		return fmt.Errorf("upload profile picture request: %w", err)
	}

	_, err = unwrapEnvelope(resp)
	return err
}

// DeleteProfilePicture implements [ServerAdapter]. It sends a DELETE to
// /auth/profile/picture. Requires a valid bearer token.
func (h *httpServerAdapter) DeleteProfilePicture(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Delete("/auth/profile/picture")
	if err != nil {
		return fmt.Errorf("delete profile picture request: %w", err)
	}

	_, err = unwrapEnvelope(resp)
	return err
}

// ListEvents implements [ResourceAdapter]. Listing works without a session;
// the bearer header is attached when present so the server can mark joined
// events.
func (h *httpServerAdapter) ListEvents(ctx context.Context) ([]models.Event, error) {
	resp, err := h.authedRequest(ctx).Get("/events")
	if err != nil {
		return nil, fmt.Errorf("list events request: %w", err)
	}

	data, err := unwrapEnvelope(resp)
	if err != nil {
		return nil, err
	}

	var events []models.Event
	if err = json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("decode events response: %w", err)
	}

	return events, nil
}

// JoinEvent implements [ResourceAdapter]. Requires a valid bearer token.
func (h *httpServerAdapter) JoinEvent(ctx context.Context, eventID string) error {
	resp, err := h.authedRequest(ctx).Post("/events/" + url.PathEscape(eventID) + "/join")
	if err != nil {
		return fmt.Errorf("join event request: %w", err)
	}

	_, err = unwrapEnvelope(resp)
	return err
}

// ListPosts implements [ResourceAdapter].
func (h *httpServerAdapter) ListPosts(ctx context.Context) ([]models.Post, error) {
	resp, err := h.authedRequest(ctx).Get("/posts")
	if err != nil {
		return nil, fmt.Errorf("list posts request: %w", err)
	}

	data, err := unwrapEnvelope(resp)
	if err != nil {
		return nil, err
	}

	var posts []models.Post
	if err = json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("decode posts response: %w", err)
	}

	return posts, nil
}

// LikePost implements [ResourceAdapter]. Requires a valid bearer token.
func (h *httpServerAdapter) LikePost(ctx context.Context, postID string) error {
	resp, err := h.authedRequest(ctx).Post("/posts/" + url.PathEscape(postID) + "/like")
	if err != nil {
		return fmt.Errorf("like post request: %w", err)
	}

	_, err = unwrapEnvelope(resp)
	return err
}

func (h *httpServerAdapter) jsonRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpServerAdapter) authedJSONRequest(ctx context.Context) *resty.Request {
	return h.authedRequest(ctx).SetHeader("Content-Type", "application/json")
}

func decodeAuthSession(resp *resty.Response) (models.AuthSession, error) {
	data, err := unwrapEnvelope(resp)
	if err != nil {
		return models.AuthSession{}, err
	}

	var session models.AuthSession
	if err = json.Unmarshal(data, &session); err != nil {
		return models.AuthSession{}, fmt.Errorf("decode session response: %w", err)
	}
	if session.SessionToken == "" {
		return models.AuthSession{}, newRequestError(resp.StatusCode(), "server response missing session token")
	}

	return session, nil
}
