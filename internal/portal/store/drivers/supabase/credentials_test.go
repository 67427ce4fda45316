package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SPMA4P97/jess-credentials/internal/portal/domain"
	"github.com/SPMA4P97/jess-credentials/internal/portal/store"
	"github.com/SPMA4P97/jess-credentials/pkg/credid"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-service-key"

func requireAuthHeaders(t *testing.T, r *http.Request) {
	t.Helper()
	require.Equal(t, testAPIKey, r.Header.Get("apikey"))
	require.Equal(t, "Bearer "+testAPIKey, r.Header.Get("Authorization"))
}

func TestCreateMapsColumns(t *testing.T) {
	ctx := context.Background()

	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requireAuthHeaders(t, r)
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/rest/v1/credentials", r.URL.Path)
		require.Equal(t, "return=minimal", r.Header.Get("Prefer"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	repo := New(Config{
		BaseURL:       srv.URL,
		APIKey:        testAPIKey,
		PublicBaseURL: "https://credentials.jess.example",
	})

	err := repo.Create(ctx, domain.Credential{
		ID:           credid.ID("A1B2C3D4"),
		Name:         "Jane Doe",
		Organization: "Journal of Emerging Sport Studies",
		Role:         "Peer Reviewer",
		Date:         "2026-02-01",
		Issue:        "Annual cycle",
		Expiry:       "2027-02-01",
		Volumes:      []string{"Volume 11", "Volume 12"},
		HideVolumes:  true,
	})
	require.NoError(t, err)

	require.Equal(t, "A1B2C3D4", captured["id"])
	require.Equal(t, "Journal of Emerging Sport Studies", captured["organization_name"])
	require.Equal(t, "2026-02-01", captured["issue_date"])
	require.Equal(t, "Annual cycle", captured["info"])
	require.Equal(t, "2027-02-01", captured["expiry_date"])
	require.Equal(t, "Volume 11, Volume 12", captured["volumes"])
	require.Equal(t, true, captured["hide_volumes"])
	require.Equal(t,
		"https://credentials.jess.example/credential/A1B2C3D4",
		captured["public_credential_url"])
}

func TestCreateConflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	repo := New(Config{BaseURL: srv.URL, APIKey: testAPIKey})
	err := repo.Create(context.Background(), domain.Credential{ID: credid.ID("A1B2C3D4")})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requireAuthHeaders(t, r)
		require.Equal(t, "/rest/v1/credentials", r.URL.Path)
		require.Equal(t, "eq.A1B2C3D4", r.URL.Query().Get("id"))

		_ = json.NewEncoder(w).Encode([]credentialRow{{
			ID:               "A1B2C3D4",
			Name:             "Jane Doe",
			OrganizationName: "Journal of Emerging Sport Studies",
			Role:             "Peer Reviewer",
			IssueDate:        "2026-02-01",
			Volumes:          "Volume 11, Volume 12",
			HideVolumes:      true,
		}})
	}))
	defer srv.Close()

	repo := New(Config{BaseURL: srv.URL, APIKey: testAPIKey})

	cred, err := repo.GetByID(ctx, "A1B2C3D4")
	require.NoError(t, err)
	require.Equal(t, credid.ID("A1B2C3D4"), cred.ID)
	require.Equal(t, "Journal of Emerging Sport Studies", cred.Organization)
	require.Equal(t, []string{"Volume 11", "Volume 12"}, cred.Volumes)
	require.True(t, cred.HideVolumes)
}

func TestGetByIDFiltersStraySeparators(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]credentialRow{{
			ID:      "A1B2C3D4",
			Name:    "Jane Doe",
			Volumes: "Volume 1, , Volume 2",
		}})
	}))
	defer srv.Close()

	repo := New(Config{BaseURL: srv.URL, APIKey: testAPIKey})

	cred, err := repo.GetByID(context.Background(), "A1B2C3D4")
	require.NoError(t, err)
	require.Equal(t, []string{"Volume 1", "Volume 2"}, cred.Volumes)
}

func TestGetByIDNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	repo := New(Config{BaseURL: srv.URL, APIKey: testAPIKey})
	_, err := repo.GetByID(context.Background(), "00000000")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestListAllDegradesToEmpty(t *testing.T) {
	ctx := context.Background()

	t.Run("remote error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		repo := New(Config{BaseURL: srv.URL, APIKey: testAPIKey})
		creds, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Empty(t, creds)
	})

	t.Run("unreachable host", func(t *testing.T) {
		repo := New(Config{BaseURL: "http://127.0.0.1:1", APIKey: testAPIKey})
		creds, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Empty(t, creds)
	})
}

func TestListAllOrdersNewestFirst(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "created_at.desc", r.URL.Query().Get("order"))
		_ = json.NewEncoder(w).Encode([]credentialRow{
			{ID: "AAAA1111", Name: "Newer"},
			{ID: "BBBB2222", Name: "Older"},
		})
	}))
	defer srv.Close()

	repo := New(Config{BaseURL: srv.URL, APIKey: testAPIKey})
	creds, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, creds, 2)
	require.Equal(t, "Newer", creds[0].Name)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an existing row", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requireAuthHeaders(t, r)
			require.Equal(t, http.MethodDelete, r.Method)
			require.Equal(t, "eq.A1B2C3D4", r.URL.Query().Get("id"))
			require.Equal(t, "return=representation", r.Header.Get("Prefer"))

			_, _ = w.Write([]byte(`[{"id":"A1B2C3D4"}]`))
		}))
		defer srv.Close()

		repo := New(Config{BaseURL: srv.URL, APIKey: testAPIKey})
		require.NoError(t, repo.Delete(ctx, "A1B2C3D4"))
	})

	t.Run("missing row", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("[]"))
		}))
		defer srv.Close()

		repo := New(Config{BaseURL: srv.URL, APIKey: testAPIKey})
		require.ErrorIs(t, repo.Delete(ctx, "00000000"), store.ErrNotFound)
	})
}

func TestTableOverride(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rest/v1/legacy_credentials", r.URL.Path)
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	repo := New(Config{BaseURL: srv.URL, APIKey: testAPIKey, Table: "legacy_credentials"})
	_, err := repo.GetByID(context.Background(), "A1B2C3D4")
	require.ErrorIs(t, err, store.ErrNotFound)
}
