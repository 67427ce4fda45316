package localkv

import (
	"context"
	"time"

	"github.com/SPMA4P97/jess-credentials/internal/portal/domain"
	"github.com/SPMA4P97/jess-credentials/internal/portal/store"
	"github.com/SPMA4P97/jess-credentials/pkg/credid"
)

type credentialsRepo struct {
	s *Store
}

// credentialRecord is the on-disk shape. Field names match the records the
// portal's earlier single-page deployments kept in browser storage, so an
// exported file can be dropped straight into the data dir.
type credentialRecord struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Organization string   `json:"organization"`
	Role         string   `json:"role"`
	Date         string   `json:"date"`
	Issue        string   `json:"issue,omitempty"`
	Expiry       string   `json:"expiry,omitempty"`
	Volumes      []string `json:"volumes,omitempty"`
	HideVolumes  bool     `json:"hideVolumes,omitempty"`
	CreatedAt    string   `json:"createdAt,omitempty"`
}

func toCredentialRecord(c domain.Credential) credentialRecord {
	rec := credentialRecord{
		ID:           string(c.ID),
		Name:         c.Name,
		Organization: c.Organization,
		Role:         c.Role,
		Date:         c.Date,
		Issue:        c.Issue,
		Expiry:       c.Expiry,
		Volumes:      c.Volumes,
		HideVolumes:  c.HideVolumes,
	}
	if !c.CreatedAt.IsZero() {
		rec.CreatedAt = c.CreatedAt.UTC().Format(time.RFC3339)
	}
	return rec
}

func fromCredentialRecord(rec credentialRecord) domain.Credential {
	c := domain.Credential{
		ID:           credid.ID(rec.ID),
		Name:         rec.Name,
		Organization: rec.Organization,
		Role:         rec.Role,
		Date:         rec.Date,
		Issue:        rec.Issue,
		Expiry:       rec.Expiry,
		Volumes:      rec.Volumes,
		HideVolumes:  rec.HideVolumes,
	}
	if rec.CreatedAt != "" {
		if t, err := time.Parse(time.RFC3339, rec.CreatedAt); err == nil {
			c.CreatedAt = t
		}
	}
	return c
}

func (r *credentialsRepo) Create(ctx context.Context, c domain.Credential) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	records, err := readAll[credentialRecord](r.s, credentialsFile)
	if err != nil {
		return err
	}

	for _, rec := range records {
		if rec.ID == string(c.ID) {
			return store.ErrAlreadyExists
		}
	}

	// Newest first, matching the list order the admin screens expect.
	records = append([]credentialRecord{toCredentialRecord(c)}, records...)
	return writeAll(r.s, credentialsFile, records)
}

func (r *credentialsRepo) GetByID(ctx context.Context, id string) (domain.Credential, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	records, err := readAll[credentialRecord](r.s, credentialsFile)
	if err != nil {
		return domain.Credential{}, err
	}

	for _, rec := range records {
		if rec.ID == id {
			return fromCredentialRecord(rec), nil
		}
	}
	return domain.Credential{}, store.ErrNotFound
}

func (r *credentialsRepo) ListAll(ctx context.Context) ([]domain.Credential, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	records, err := readAll[credentialRecord](r.s, credentialsFile)
	if err != nil {
		return nil, err
	}

	creds := make([]domain.Credential, 0, len(records))
	for _, rec := range records {
		creds = append(creds, fromCredentialRecord(rec))
	}
	return creds, nil
}

func (r *credentialsRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	records, err := readAll[credentialRecord](r.s, credentialsFile)
	if err != nil {
		return err
	}

	kept := records[:0]
	found := false
	for _, rec := range records {
		if rec.ID == id {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return store.ErrNotFound
	}
	return writeAll(r.s, credentialsFile, kept)
}
