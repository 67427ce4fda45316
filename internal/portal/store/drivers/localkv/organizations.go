package localkv

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/SPMA4P97/jess-credentials/internal/portal/domain"
	"github.com/SPMA4P97/jess-credentials/internal/portal/store"
)

type organizationsRepo struct {
	s *Store
}

type organizationRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt,omitempty"`
}

func (r *organizationsRepo) Create(ctx context.Context, o domain.Organization) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	records, err := readAll[organizationRecord](r.s, organizationsFile)
	if err != nil {
		return err
	}

	for _, rec := range records {
		if strings.EqualFold(rec.Name, o.Name) {
			return store.ErrAlreadyExists
		}
	}

	records = append(records, organizationRecord{
		ID:        o.ID,
		Name:      o.Name,
		CreatedAt: o.CreatedAt.UTC().Format(time.RFC3339),
	})
	return writeAll(r.s, organizationsFile, records)
}

func (r *organizationsRepo) ListAll(ctx context.Context) ([]domain.Organization, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	records, err := readAll[organizationRecord](r.s, organizationsFile)
	if err != nil {
		return nil, err
	}

	orgs := make([]domain.Organization, 0, len(records))
	for _, rec := range records {
		o := domain.Organization{ID: rec.ID, Name: rec.Name}
		if t, err := time.Parse(time.RFC3339, rec.CreatedAt); err == nil {
			o.CreatedAt = t
		}
		orgs = append(orgs, o)
	}
	sort.Slice(orgs, func(i, j int) bool { return orgs[i].Name < orgs[j].Name })
	return orgs, nil
}

func (r *organizationsRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	records, err := readAll[organizationRecord](r.s, organizationsFile)
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
	return writeAll(r.s, organizationsFile, kept)
}
