package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SPMA4P97/jess-credentials/internal/portal/domain"
	"github.com/SPMA4P97/jess-credentials/internal/portal/store"
	"github.com/SPMA4P97/jess-credentials/pkg/credid"
	"github.com/SPMA4P97/jess-credentials/pkg/slogx"
)

var (
	// ErrMissingFields is returned when a required generation field is empty.
	ErrMissingFields = errors.New("missing_required_fields")
)

// CredentialService issues and manages credentials. The repo may be local
// (sqlite, localkv) or remote (supabase) depending on deployment.
type CredentialService struct {
	Credentials store.Credentials
}

// GenerateInput carries the issuer's form values. Volumes is the raw
// comma-separated entry; it gets normalised during generation.
type GenerateInput struct {
	Name         string
	Organization string
	Role         string
	Date         string
	Issue        string
	Expiry       string
	Volumes      string
	HideVolumes  bool
}

// Generate mints a credential ID, fills defaults, and persists the record.
//
// IDs are the first segment of a random UUID (8 hex chars, uppercased).
// That keeps them short enough to type from a printed certificate; the
// reduced keyspace is an accepted tradeoff and collisions surface as
// store.ErrAlreadyExists rather than silent retries.
func (s *CredentialService) Generate(ctx context.Context, in GenerateInput) (domain.Credential, error) {
	l := slogx.FromContext(ctx)

	in.Name = strings.TrimSpace(in.Name)
	in.Organization = strings.TrimSpace(in.Organization)
	in.Role = strings.TrimSpace(in.Role)

	if in.Name == "" || in.Organization == "" || in.Role == "" {
		return domain.Credential{}, ErrMissingFields
	}

	if in.Date == "" {
		in.Date = time.Now().Format("2006-01-02")
	}

	cred := domain.Credential{
		ID:           credid.New(),
		Name:         in.Name,
		Organization: in.Organization,
		Role:         in.Role,
		Date:         in.Date,
		Issue:        strings.TrimSpace(in.Issue),
		Expiry:       strings.TrimSpace(in.Expiry),
		Volumes:      ParseVolumes(in.Volumes),
		HideVolumes:  in.HideVolumes,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Credentials.Create(ctx, cred); err != nil {
		return domain.Credential{}, err
	}

	l.Info("credential issued",
		slog.String("credential_id", cred.ID.String()),
		slog.String("organization", cred.Organization),
		slog.String("role", cred.Role),
	)
	return cred, nil
}

// List returns all issued credentials.
func (s *CredentialService) List(ctx context.Context) ([]domain.Credential, error) {
	return s.Credentials.ListAll(ctx)
}

// Get fetches a credential by its short ID.
func (s *CredentialService) Get(ctx context.Context, id string) (domain.Credential, error) {
	return s.Credentials.GetByID(ctx, id)
}

// Delete removes a credential by ID.
func (s *CredentialService) Delete(ctx context.Context, id string) error {
	return s.Credentials.Delete(ctx, id)
}

// ParseVolumes normalises a comma-separated volumes entry into display
// labels: "1, 2, Volume 3" becomes ["Volume 1", "Volume 2", "Volume 3"].
// Pure digits get the "Volume " prefix, entries already starting with
// "volume" (any case) pass through unchanged, and anything else is treated
// as a bare volume name and prefixed too. Empty entries are dropped.
func ParseVolumes(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var volumes []string
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		switch {
		case isDigits(entry):
			volumes = append(volumes, "Volume "+entry)
		case strings.HasPrefix(strings.ToLower(entry), "volume"):
			volumes = append(volumes, entry)
		default:
			volumes = append(volumes, "Volume "+entry)
		}
	}
	return volumes
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
