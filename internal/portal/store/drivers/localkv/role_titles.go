package localkv

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/SPMA4P97/jess-credentials/internal/portal/domain"
	"github.com/SPMA4P97/jess-credentials/internal/portal/store"
)

type roleTitlesRepo struct {
	s *Store
}

type roleTitleRecord struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"createdAt,omitempty"`
}

func (r *roleTitlesRepo) Create(ctx context.Context, rt domain.RoleTitle) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	records, err := readAll[roleTitleRecord](r.s, rolesFile)
	if err != nil {
		return err
	}

	for _, rec := range records {
		if strings.EqualFold(rec.Title, rt.Title) {
			return store.ErrAlreadyExists
		}
	}

	records = append(records, roleTitleRecord{
		ID:        rt.ID,
		Title:     rt.Title,
		CreatedAt: rt.CreatedAt.UTC().Format(time.RFC3339),
	})
	return writeAll(r.s, rolesFile, records)
}

func (r *roleTitlesRepo) ListAll(ctx context.Context) ([]domain.RoleTitle, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	records, err := readAll[roleTitleRecord](r.s, rolesFile)
	if err != nil {
		return nil, err
	}

	titles := make([]domain.RoleTitle, 0, len(records))
	for _, rec := range records {
		rt := domain.RoleTitle{ID: rec.ID, Title: rec.Title}
		if t, err := time.Parse(time.RFC3339, rec.CreatedAt); err == nil {
			rt.CreatedAt = t
		}
		titles = append(titles, rt)
	}
	sort.Slice(titles, func(i, j int) bool { return titles[i].Title < titles[j].Title })
	return titles, nil
}

func (r *roleTitlesRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	records, err := readAll[roleTitleRecord](r.s, rolesFile)
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
	return writeAll(r.s, rolesFile, kept)
}
