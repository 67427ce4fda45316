package localkv

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SPMA4P97/jess-credentials/internal/portal/domain"
	"github.com/SPMA4P97/jess-credentials/internal/portal/store"
	"github.com/SPMA4P97/jess-credentials/pkg/credid"
	"github.com/SPMA4P97/jess-credentials/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	dir := t.TempDir()
	st, err := NewStore(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st, dir
}

func TestMissingFilesReadEmpty(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)

	creds, err := st.Credentials().ListAll(ctx)
	require.NoError(t, err)
	require.Empty(t, creds)

	empty, err := st.Users().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	require.NoError(t, st.ApplyMigrations())
	require.NoError(t, st.Ping(ctx))
}

func TestCredentialsRoundTrip(t *testing.T) {
	ctx := context.Background()
	st, dir := newTestStore(t)
	repo := st.Credentials()

	cred := domain.Credential{
		ID:           credid.New(),
		Name:         "Jane Doe",
		Organization: "Journal of Emerging Sport Studies",
		Role:         "Peer Reviewer",
		Date:         "2026-02-01",
		Issue:        "Annual cycle",
		Expiry:       "2027-02-01",
		Volumes:      []string{"Volume 11", "Volume 12"},
		HideVolumes:  true,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, repo.Create(ctx, cred))

	got, err := repo.GetByID(ctx, cred.ID.String())
	require.NoError(t, err)
	require.Equal(t, cred.Name, got.Name)
	require.Equal(t, cred.Volumes, got.Volumes)
	require.True(t, got.HideVolumes)
	require.True(t, cred.CreatedAt.Equal(got.CreatedAt))

	t.Run("duplicate id rejected", func(t *testing.T) {
		require.ErrorIs(t, repo.Create(ctx, cred), store.ErrAlreadyExists)
	})

	t.Run("file uses the legacy export shape", func(t *testing.T) {
		raw, err := os.ReadFile(filepath.Join(dir, "credentials.json"))
		require.NoError(t, err)

		var records []map[string]any
		require.NoError(t, json.Unmarshal(raw, &records))
		require.Len(t, records, 1)
		require.Equal(t, cred.ID.String(), records[0]["id"])
		require.Equal(t, "Jane Doe", records[0]["name"])
		require.Contains(t, records[0], "organization")
		require.Contains(t, records[0], "createdAt")
		require.Equal(t, true, records[0]["hideVolumes"])
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, cred.ID.String()))
		_, err := repo.GetByID(ctx, cred.ID.String())
		require.ErrorIs(t, err, store.ErrNotFound)
		require.ErrorIs(t, repo.Delete(ctx, cred.ID.String()), store.ErrNotFound)
	})
}

func TestCredentialsLegacyExportDropIn(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	// A verbatim record as exported from the portal's earlier browser-storage
	// deployments, written before the store opens the directory.
	legacy := `[
  {
    "id": "9F0A1B2C",
    "name": "Maria Santos",
    "organization": "Journal of Emerging Sport Studies",
    "role": "Guest Editor",
    "date": "2024-09-01",
    "issue": "Special issue on esports",
    "expiry": "2025-09-01",
    "volumes": ["Volume 9"],
    "hideVolumes": true,
    "createdAt": "2024-09-01T12:00:00Z"
  }
]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "credentials.json"), []byte(legacy), 0o644))

	st, err := NewStore(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	got, err := st.Credentials().GetByID(ctx, "9F0A1B2C")
	require.NoError(t, err)
	require.Equal(t, "Maria Santos", got.Name)
	require.Equal(t, "Guest Editor", got.Role)
	require.Equal(t, []string{"Volume 9"}, got.Volumes)
	require.True(t, got.HideVolumes)
	require.Equal(t, "2024-09-01", got.Date)
	require.True(t, got.CreatedAt.Equal(time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)))
}

func TestCredentialsNewestFirst(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)
	repo := st.Credentials()

	first := domain.Credential{ID: credid.New(), Name: "First", Organization: "JESS", Role: "Reviewer", Date: "2026-01-01"}
	second := domain.Credential{ID: credid.New(), Name: "Second", Organization: "JESS", Role: "Reviewer", Date: "2026-01-02"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	creds, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, creds, 2)
	require.Equal(t, second.ID, creds[0].ID)
	require.Equal(t, first.ID, creds[1].ID)
}

func testUser(email, username string) domain.User {
	now := time.Now().UTC().Truncate(time.Second)
	return domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Username:     username,
		PasswordHash: "$argon2id$v=19$placeholder",
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestUsersRepo(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)
	repo := st.Users()

	user := testUser("jane@jess.local", "jane")
	require.NoError(t, repo.Create(ctx, user))

	t.Run("identifier matching is case-insensitive", func(t *testing.T) {
		got, err := repo.GetByEmailOrUsername(ctx, "JANE@JESS.LOCAL")
		require.NoError(t, err)
		require.Equal(t, user.ID, got.ID)

		got, err = repo.GetByEmailOrUsername(ctx, "Jane")
		require.NoError(t, err)
		require.Equal(t, user.ID, got.ID)
	})

	t.Run("duplicates rejected case-insensitively", func(t *testing.T) {
		require.ErrorIs(t, repo.Create(ctx, testUser("Jane@jess.local", "other")), store.ErrAlreadyExists)
		require.ErrorIs(t, repo.Create(ctx, testUser("other@jess.local", "JANE")), store.ErrAlreadyExists)
	})

	t.Run("update preserves created_at and bumps updated_at", func(t *testing.T) {
		changed := user
		changed.Username = "jane-doe"
		require.NoError(t, repo.Update(ctx, changed))

		got, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		require.Equal(t, "jane-doe", got.Username)
		require.True(t, user.CreatedAt.Equal(got.CreatedAt))
		require.False(t, got.UpdatedAt.Before(user.UpdatedAt))
	})

	t.Run("update to a taken identifier conflicts", func(t *testing.T) {
		second := testUser("second@jess.local", "second")
		require.NoError(t, repo.Create(ctx, second))

		second.Email = "jane@jess.local"
		require.ErrorIs(t, repo.Update(ctx, second), store.ErrAlreadyExists)
	})

	t.Run("update of a missing user", func(t *testing.T) {
		ghost := testUser("ghost@jess.local", "ghost")
		require.ErrorIs(t, repo.Update(ctx, ghost), store.ErrNotFound)
	})
}

func TestPicklistRepos(t *testing.T) {
	ctx := context.Background()
	st, _ := newTestStore(t)

	t.Run("organizations sorted and unique", func(t *testing.T) {
		repo := st.Organizations()

		require.NoError(t, repo.Create(ctx, domain.Organization{ID: idx.New().String(), Name: "Zeta"}))
		require.NoError(t, repo.Create(ctx, domain.Organization{ID: idx.New().String(), Name: "Alpha"}))
		require.ErrorIs(t,
			repo.Create(ctx, domain.Organization{ID: idx.New().String(), Name: "alpha"}),
			store.ErrAlreadyExists)

		orgs, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, orgs, 2)
		require.Equal(t, "Alpha", orgs[0].Name)
	})

	t.Run("role titles sorted and unique", func(t *testing.T) {
		repo := st.RoleTitles()

		rt := domain.RoleTitle{ID: idx.New().String(), Title: "Peer Reviewer"}
		require.NoError(t, repo.Create(ctx, rt))
		require.ErrorIs(t,
			repo.Create(ctx, domain.RoleTitle{ID: idx.New().String(), Title: "peer reviewer"}),
			store.ErrAlreadyExists)

		require.NoError(t, repo.Delete(ctx, rt.ID))
		require.ErrorIs(t, repo.Delete(ctx, rt.ID), store.ErrNotFound)
	})
}
