package accountsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the Solara accounts service. It provides access
// to unauthenticated operations and creates authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new accounts service client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates a new account and returns an authenticated session for
// it. The server logs the new account straight in.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/register", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var authResp AuthResponse
	if err := decodeJSON(resp, &authResp, http.StatusCreated); err != nil {
		return nil, err
	}

	return newSession(c, &authResp), nil
}

// Login authenticates with an email/password pair and returns a session.
// Any failure surfaces as *APIError with code "invalid_credentials"; the
// server does not reveal whether the email exists.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	body, err := json.Marshal(LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/login", bytes.NewReader(body), jsonHeaders)
	if err != nil {
		return nil, err
	}

	var authResp AuthResponse
	if err := decodeJSON(resp, &authResp, http.StatusOK); err != nil {
		return nil, err
	}

	return newSession(c, &authResp), nil
}

// NewSessionFromToken rebuilds a session from a previously issued token,
// e.g. one restored from browser storage. The profile is not populated until
// the first Me call.
func (c *SDKClient) NewSessionFromToken(token string) *Session {
	return &Session{
		client: c,
		token:  token,
	}
}

// GetLiveness fetches the /livez endpoint.
func (c *SDKClient) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/livez", nil, nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetReadiness fetches the /readyz endpoint. A degraded service returns an
// *APIError alongside a nil response.
func (c *SDKClient) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/readyz", nil, nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}
