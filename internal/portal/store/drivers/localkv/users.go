package localkv

import (
	"context"
	"strings"
	"time"

	"github.com/SPMA4P97/jess-credentials/internal/portal/domain"
	"github.com/SPMA4P97/jess-credentials/internal/portal/store"
)

type usersRepo struct {
	s *Store
}

type userRecord struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
	Role         string `json:"role"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

func toUserRecord(u domain.User) userRecord {
	return userRecord{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    u.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func fromUserRecord(rec userRecord) domain.User {
	u := domain.User{
		ID:           rec.ID,
		Email:        rec.Email,
		Username:     rec.Username,
		PasswordHash: rec.PasswordHash,
		Role:         rec.Role,
	}
	if t, err := time.Parse(time.RFC3339, rec.CreatedAt); err == nil {
		u.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, rec.UpdatedAt); err == nil {
		u.UpdatedAt = t
	}
	return u
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	records, err := readAll[userRecord](r.s, usersFile)
	if err != nil {
		return domain.User{}, err
	}

	for _, rec := range records {
		if rec.ID == id {
			return fromUserRecord(rec), nil
		}
	}
	return domain.User{}, store.ErrNotFound
}

func (r *usersRepo) GetByEmailOrUsername(ctx context.Context, identifier string) (domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	records, err := readAll[userRecord](r.s, usersFile)
	if err != nil {
		return domain.User{}, err
	}

	for _, rec := range records {
		if strings.EqualFold(rec.Email, identifier) || strings.EqualFold(rec.Username, identifier) {
			return fromUserRecord(rec), nil
		}
	}
	return domain.User{}, store.ErrNotFound
}

func (r *usersRepo) ListAll(ctx context.Context) ([]domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	records, err := readAll[userRecord](r.s, usersFile)
	if err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(records))
	for _, rec := range records {
		users = append(users, fromUserRecord(rec))
	}
	return users, nil
}

func (r *usersRepo) Create(ctx context.Context, u domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	records, err := readAll[userRecord](r.s, usersFile)
	if err != nil {
		return err
	}

	for _, rec := range records {
		if rec.ID == u.ID ||
			strings.EqualFold(rec.Email, u.Email) ||
			strings.EqualFold(rec.Username, u.Username) {
			return store.ErrAlreadyExists
		}
	}

	records = append(records, toUserRecord(u))
	return writeAll(r.s, usersFile, records)
}

func (r *usersRepo) Update(ctx context.Context, u domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	records, err := readAll[userRecord](r.s, usersFile)
	if err != nil {
		return err
	}

	idx := -1
	for i, rec := range records {
		if rec.ID == u.ID {
			idx = i
			continue
		}
		// The new identifiers must stay unique across the others.
		if strings.EqualFold(rec.Email, u.Email) || strings.EqualFold(rec.Username, u.Username) {
			return store.ErrAlreadyExists
		}
	}
	if idx == -1 {
		return store.ErrNotFound
	}

	u.UpdatedAt = time.Now().UTC()
	updated := toUserRecord(u)
	updated.CreatedAt = records[idx].CreatedAt
	records[idx] = updated
	return writeAll(r.s, usersFile, records)
}

func (r *usersRepo) Delete(ctx context.Context, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	records, err := readAll[userRecord](r.s, usersFile)
	if err != nil {
		return err
	}

	kept := records[:0]
	found := false
	for _, rec := range records {
		if rec.ID == userID {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return store.ErrNotFound
	}
	return writeAll(r.s, usersFile, kept)
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	records, err := readAll[userRecord](r.s, usersFile)
	if err != nil {
		return false, err
	}
	return len(records) == 0, nil
}
