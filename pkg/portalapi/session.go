package portalapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Session is an authenticated client for the portal's admin API. Create one
// with Client.Login or Client.NewSessionFromToken.
type Session struct {
	client      *Client
	accessToken string
}

func newSession(c *Client, resp LoginResponse) *Session {
	return &Session{
		client:      c,
		accessToken: resp.AccessToken,
	}
}

// AccessToken returns the session's raw access token, e.g. for persisting
// across processes.
func (s *Session) AccessToken() string {
	return s.accessToken
}

// UserInfo returns the authenticated user's profile.
func (s *Session) UserInfo(ctx context.Context) (*UserInfo, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/userinfo", nil, nil)
	if err != nil {
		return nil, err
	}

	var info UserInfo
	if err := decodeJSON(resp, &info, http.StatusOK); err != nil {
		return nil, err
	}
	return &info, nil
}

// postJSON marshals body and POSTs it to path, decoding the response into
// target with the expected status.
func (s *Session) postJSON(ctx context.Context, path string, body, target any, expectedStatus int) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, path,
		bytes.NewReader(raw),
		map[string]string{"Content-Type": "application/json"},
	)
	if err != nil {
		return err
	}

	return decodeJSON(resp, target, expectedStatus)
}

func (s *Session) getJSON(ctx context.Context, path string, target any) error {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, target, http.StatusOK)
}

func (s *Session) delete(ctx context.Context, path string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ============================================================================
// Credentials
// ============================================================================

// CreateCredential generates and persists a new credential.
func (s *Session) CreateCredential(ctx context.Context, req CredentialCreateRequest) (*Credential, error) {
	var cred Credential
	if err := s.postJSON(ctx, "/v1/credentials", req, &cred, http.StatusCreated); err != nil {
		return nil, err
	}
	return &cred, nil
}

// ListCredentials returns all issued credentials.
func (s *Session) ListCredentials(ctx context.Context) ([]Credential, error) {
	var creds []Credential
	if err := s.getJSON(ctx, "/v1/credentials", &creds); err != nil {
		return nil, err
	}
	return creds, nil
}

// GetCredential fetches a single credential by ID.
func (s *Session) GetCredential(ctx context.Context, id string) (*Credential, error) {
	var cred Credential
	if err := s.getJSON(ctx, "/v1/credentials/"+url.PathEscape(id), &cred); err != nil {
		return nil, err
	}
	return &cred, nil
}

// DeleteCredential removes a credential by ID.
func (s *Session) DeleteCredential(ctx context.Context, id string) error {
	return s.delete(ctx, "/v1/credentials/"+url.PathEscape(id))
}

// ============================================================================
// Users
// ============================================================================

// ListUsers returns all portal users. Admin only.
func (s *Session) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := s.getJSON(ctx, "/v1/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser adds a portal user. Admin only.
func (s *Session) CreateUser(ctx context.Context, req UserCreateRequest) (*User, error) {
	var user User
	if err := s.postJSON(ctx, "/v1/users", req, &user, http.StatusCreated); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser modifies a portal user. Admin only.
func (s *Session) UpdateUser(ctx context.Context, id string, req UserUpdateRequest) (*User, error) {
	raw, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/v1/users/"+url.PathEscape(id),
		bytes.NewReader(raw),
		map[string]string{"Content-Type": "application/json"},
	)
	if err != nil {
		return nil, err
	}

	var user User
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a portal user. Admin only; deleting the account the
// session belongs to is rejected by the server.
func (s *Session) DeleteUser(ctx context.Context, id string) error {
	return s.delete(ctx, "/v1/users/"+url.PathEscape(id))
}

// ============================================================================
// Organizations
// ============================================================================

// ListOrganizations returns the issuing-organizations list.
func (s *Session) ListOrganizations(ctx context.Context) ([]Organization, error) {
	var orgs []Organization
	if err := s.getJSON(ctx, "/v1/organizations", &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

// CreateOrganization adds an organization to the list.
func (s *Session) CreateOrganization(ctx context.Context, name string) (*Organization, error) {
	var org Organization
	err := s.postJSON(ctx, "/v1/organizations", OrganizationCreateRequest{Name: name}, &org, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// DeleteOrganization removes an organization by ID.
func (s *Session) DeleteOrganization(ctx context.Context, id string) error {
	return s.delete(ctx, "/v1/organizations/"+url.PathEscape(id))
}

// ============================================================================
// Role Titles
// ============================================================================

// ListRoleTitles returns the role/position titles list.
func (s *Session) ListRoleTitles(ctx context.Context) ([]RoleTitle, error) {
	var roles []RoleTitle
	if err := s.getJSON(ctx, "/v1/roles", &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// CreateRoleTitle adds a role title to the list.
func (s *Session) CreateRoleTitle(ctx context.Context, title string) (*RoleTitle, error) {
	var role RoleTitle
	err := s.postJSON(ctx, "/v1/roles", RoleTitleCreateRequest{Title: title}, &role, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// DeleteRoleTitle removes a role title by ID.
func (s *Session) DeleteRoleTitle(ctx context.Context, id string) error {
	return s.delete(ctx, "/v1/roles/"+url.PathEscape(id))
}
