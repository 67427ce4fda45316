package portalapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a client for the JESS credentials portal.
// It provides access to unauthenticated operations and can create
// authenticated Sessions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new portal client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Login authenticates with an email address or username and a password,
// returning an authenticated Session on success.
func (c *Client) Login(ctx context.Context, identifier, password string) (*Session, error) {
	body, err := json.Marshal(LoginRequest{
		Identifier: identifier,
		Password:   password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode login request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/auth/login",
		bytes.NewReader(body),
		map[string]string{"Content-Type": "application/json"},
	)
	if err != nil {
		return nil, err
	}

	var loginResp LoginResponse
	if err := decodeJSON(resp, &loginResp, http.StatusOK); err != nil {
		return nil, err
	}

	return newSession(c, loginResp), nil
}

// NewSessionFromToken creates an authenticated session from an existing
// access token, e.g. one stored from a previous login.
func (c *Client) NewSessionFromToken(accessToken string) *Session {
	return &Session{
		client:      c,
		accessToken: accessToken,
	}
}

// Verify looks up a credential by ID and last name. This is the public
// verification endpoint and requires no authentication.
//
// On failure the returned *APIError's Description carries the
// user-facing message (missing input, unknown ID, or name mismatch).
func (c *Client) Verify(ctx context.Context, credentialID, lastName string) (*Credential, error) {
	q := url.Values{}
	q.Set("credential_id", credentialID)
	q.Set("last_name", lastName)

	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/verify?"+q.Encode(), nil, nil)
	if err != nil {
		return nil, err
	}

	var cred Credential
	if err := decodeJSON(resp, &cred, http.StatusOK); err != nil {
		return nil, err
	}

	return &cred, nil
}

// Livez checks whether the service process is up.
func (c *Client) Livez(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodGet, "/livez", nil, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("liveness check failed: HTTP %d", resp.StatusCode)
	}
	return nil
}

// Readyz checks whether the service can reach its backing store.
func (c *Client) Readyz(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodGet, "/readyz", nil, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("readiness check failed: HTTP %d", resp.StatusCode)
	}
	return nil
}
