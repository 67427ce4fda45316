// Package supabase implements the credentials repository against a hosted
// Supabase (PostgREST) table. Only credentials live remotely; users and the
// picklists stay in the local store. The driver degrades instead of
// retrying: list failures come back as an empty collection and write
// failures surface a single error for the caller to report.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SPMA4P97/jess-credentials/internal/portal/domain"
	"github.com/SPMA4P97/jess-credentials/internal/portal/store"
	"github.com/SPMA4P97/jess-credentials/pkg/credid"
	"github.com/SPMA4P97/jess-credentials/pkg/slogx"
)

const defaultTable = "credentials"

type Config struct {
	// BaseURL is the Supabase project URL, e.g. https://xyz.supabase.co
	BaseURL string

	// APIKey is sent as both the apikey header and the bearer token.
	APIKey string

	// Table overrides the table name. Defaults to "credentials".
	Table string

	// PublicBaseURL is the portal's public origin, used to derive the
	// public_credential_url column on insert.
	PublicBaseURL string
}

type Credentials struct {
	cfg    Config
	client *http.Client
}

var _ store.Credentials = (*Credentials)(nil)

func New(cfg Config) *Credentials {
	if cfg.Table == "" {
		cfg.Table = defaultTable
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")

	return &Credentials{
		cfg: cfg,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// credentialRow mirrors the remote table's columns. Volumes collapse to a
// single ", "-joined string on the wire.
type credentialRow struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	OrganizationName    string `json:"organization_name"`
	Role                string `json:"role"`
	IssueDate           string `json:"issue_date"`
	Info                string `json:"info,omitempty"`
	ExpiryDate          string `json:"expiry_date,omitempty"`
	Volumes             string `json:"volumes,omitempty"`
	HideVolumes         bool   `json:"hide_volumes,omitempty"`
	PublicCredentialURL string `json:"public_credential_url,omitempty"`
	CreatedAt           string `json:"created_at,omitempty"`
}

func (c *Credentials) toRow(cred domain.Credential) credentialRow {
	row := credentialRow{
		ID:               string(cred.ID),
		Name:             cred.Name,
		OrganizationName: cred.Organization,
		Role:             cred.Role,
		IssueDate:        cred.Date,
		Info:             cred.Issue,
		ExpiryDate:       cred.Expiry,
		Volumes:          strings.Join(cred.Volumes, ", "),
		HideVolumes:      cred.HideVolumes,
	}
	if c.cfg.PublicBaseURL != "" {
		row.PublicCredentialURL = fmt.Sprintf("%s/credential/%s",
			strings.TrimSuffix(c.cfg.PublicBaseURL, "/"), cred.ID)
	}
	if !cred.CreatedAt.IsZero() {
		row.CreatedAt = cred.CreatedAt.UTC().Format(time.RFC3339)
	}
	return row
}

func fromRow(row credentialRow) domain.Credential {
	cred := domain.Credential{
		ID:           credid.ID(row.ID),
		Name:         row.Name,
		Organization: row.OrganizationName,
		Role:         row.Role,
		Date:         row.IssueDate,
		Issue:        row.Info,
		Expiry:       row.ExpiryDate,
		HideVolumes:  row.HideVolumes,
	}
	// Stray separators in legacy rows would otherwise surface blank labels.
	for _, v := range strings.Split(row.Volumes, ", ") {
		if v = strings.TrimSpace(v); v != "" {
			cred.Volumes = append(cred.Volumes, v)
		}
	}
	if row.CreatedAt != "" {
		if t, err := time.Parse(time.RFC3339, row.CreatedAt); err == nil {
			cred.CreatedAt = t
		}
	}
	return cred
}

func (c *Credentials) newRequest(ctx context.Context, method, query string, body io.Reader) (*http.Request, error) {
	endpoint := fmt.Sprintf("%s/rest/v1/%s%s", c.cfg.BaseURL, c.cfg.Table, query)

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("apikey", c.cfg.APIKey)
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

func (c *Credentials) Create(ctx context.Context, cred domain.Credential) error {
	raw, err := json.Marshal(c.toRow(cred))
	if err != nil {
		return fmt.Errorf("failed to encode credential: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "", bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Prefer", "return=minimal")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to store credential remotely: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated, http.StatusOK:
		return nil
	case http.StatusConflict:
		return store.ErrAlreadyExists
	default:
		return fmt.Errorf("remote store rejected credential: HTTP %d", resp.StatusCode)
	}
}

func (c *Credentials) GetByID(ctx context.Context, id string) (domain.Credential, error) {
	query := "?select=*&id=eq." + url.QueryEscape(id)

	req, err := c.newRequest(ctx, http.MethodGet, query, nil)
	if err != nil {
		return domain.Credential{}, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.Credential{}, fmt.Errorf("failed to fetch credential: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Credential{}, fmt.Errorf("failed to fetch credential: HTTP %d", resp.StatusCode)
	}

	var rows []credentialRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return domain.Credential{}, fmt.Errorf("failed to decode credential: %w", err)
	}
	if len(rows) == 0 {
		return domain.Credential{}, store.ErrNotFound
	}
	return fromRow(rows[0]), nil
}

// ListAll degrades to an empty collection when the remote is unreachable so
// the admin screens render instead of erroring.
func (c *Credentials) ListAll(ctx context.Context) ([]domain.Credential, error) {
	log := slogx.FromContext(ctx)

	req, err := c.newRequest(ctx, http.MethodGet, "?select=*&order=created_at.desc", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		log.Warn("remote credential list unavailable", "error", err)
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn("remote credential list unavailable", "status", resp.StatusCode)
		return nil, nil
	}

	var rows []credentialRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		log.Warn("remote credential list unreadable", "error", err)
		return nil, nil
	}

	creds := make([]domain.Credential, 0, len(rows))
	for _, row := range rows {
		creds = append(creds, fromRow(row))
	}
	return creds, nil
}

func (c *Credentials) Delete(ctx context.Context, id string) error {
	query := "?id=eq." + url.QueryEscape(id)

	req, err := c.newRequest(ctx, http.MethodDelete, query, nil)
	if err != nil {
		return err
	}
	// return=representation lets us distinguish "deleted" from "no such row"
	req.Header.Set("Prefer", "return=representation")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("failed to delete credential: HTTP %d", resp.StatusCode)
	}

	if resp.StatusCode == http.StatusOK {
		var rows []credentialRow
		if err := json.NewDecoder(resp.Body).Decode(&rows); err == nil && len(rows) == 0 {
			return store.ErrNotFound
		}
	}
	return nil
}
