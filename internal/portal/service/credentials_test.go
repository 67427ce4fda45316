package service

import (
	"context"
	"testing"
	"time"

	"github.com/SPMA4P97/jess-credentials/internal/portal/store"
	"github.com/SPMA4P97/jess-credentials/internal/portal/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestParseVolumes(t *testing.T) {
	t.Parallel()

	t.Run("empty input yields nil", func(t *testing.T) {
		require.Nil(t, ParseVolumes(""))
		require.Nil(t, ParseVolumes("   "))
	})

	t.Run("digits get the Volume prefix", func(t *testing.T) {
		require.Equal(t, []string{"Volume 1", "Volume 12"}, ParseVolumes("1, 12"))
	})

	t.Run("entries already named volume pass through", func(t *testing.T) {
		require.Equal(t,
			[]string{"Volume 3", "volume 4", "VOLUME 5"},
			ParseVolumes("Volume 3, volume 4, VOLUME 5"),
		)
	})

	t.Run("bare names get prefixed", func(t *testing.T) {
		require.Equal(t, []string{"Volume Special Issue"}, ParseVolumes("Special Issue"))
	})

	t.Run("mixed entries and stray commas", func(t *testing.T) {
		require.Equal(t,
			[]string{"Volume 7", "Volume 8", "Volume 9"},
			ParseVolumes(" 7 ,, Volume 8 , 9 "),
		)
	})
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &CredentialService{Credentials: st.Credentials()}

	t.Run("requires name, organization, and role", func(t *testing.T) {
		for _, in := range []GenerateInput{
			{Organization: "JESS", Role: "Peer Reviewer"},
			{Name: "Jane Doe", Role: "Peer Reviewer"},
			{Name: "Jane Doe", Organization: "JESS"},
			{Name: "   ", Organization: "JESS", Role: "Peer Reviewer"},
		} {
			_, err := svc.Generate(ctx, in)
			require.ErrorIs(t, err, ErrMissingFields)
		}
	})

	t.Run("issues and persists a credential", func(t *testing.T) {
		cred, err := svc.Generate(ctx, GenerateInput{
			Name:         "  Jane Doe ",
			Organization: "Journal of Emerging Sport Studies",
			Role:         "Peer Reviewer",
			Date:         "2026-01-15",
			Issue:        "Annual review cycle",
			Expiry:       "2027-01-15",
			Volumes:      "11, 12",
		})
		require.NoError(t, err)

		require.Len(t, cred.ID.String(), 8)
		require.Equal(t, "Jane Doe", cred.Name)
		require.Equal(t, []string{"Volume 11", "Volume 12"}, cred.Volumes)

		stored, err := svc.Get(ctx, cred.ID.String())
		require.NoError(t, err)
		require.Equal(t, cred.Name, stored.Name)
		require.Equal(t, cred.Volumes, stored.Volumes)
		require.Equal(t, "2026-01-15", stored.Date)
		require.Equal(t, "2027-01-15", stored.Expiry)
		require.Equal(t, "Annual review cycle", stored.Issue)
		require.False(t, stored.HideVolumes)
	})

	t.Run("carries the issuer's hide-volumes choice", func(t *testing.T) {
		cred, err := svc.Generate(ctx, GenerateInput{
			Name:         "Jane Doe",
			Organization: "JESS",
			Role:         "Peer Reviewer",
			Volumes:      "11, 12",
			HideVolumes:  true,
		})
		require.NoError(t, err)
		require.True(t, cred.HideVolumes)

		stored, err := svc.Get(ctx, cred.ID.String())
		require.NoError(t, err)
		require.True(t, stored.HideVolumes)
		require.Equal(t, []string{"Volume 11", "Volume 12"}, stored.Volumes)
	})

	t.Run("defaults the issue date to today", func(t *testing.T) {
		cred, err := svc.Generate(ctx, GenerateInput{
			Name:         "John Smith",
			Organization: "JESS",
			Role:         "Editor",
		})
		require.NoError(t, err)
		require.Equal(t, time.Now().Format("2006-01-02"), cred.Date)
		require.Empty(t, cred.Expiry)
		require.Nil(t, cred.Volumes)
	})
}

func TestCredentialList(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &CredentialService{Credentials: st.Credentials()}

	first, err := svc.Generate(ctx, GenerateInput{Name: "First Holder", Organization: "JESS", Role: "Reviewer"})
	require.NoError(t, err)
	second, err := svc.Generate(ctx, GenerateInput{Name: "Second Holder", Organization: "JESS", Role: "Reviewer"})
	require.NoError(t, err)

	creds, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, creds, 2)

	ids := []string{creds[0].ID.String(), creds[1].ID.String()}
	require.Contains(t, ids, first.ID.String())
	require.Contains(t, ids, second.ID.String())
}

func TestCredentialDelete(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &CredentialService{Credentials: st.Credentials()}

	cred, err := svc.Generate(ctx, GenerateInput{Name: "Jane Doe", Organization: "JESS", Role: "Reviewer"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, cred.ID.String()))

	_, err = svc.Get(ctx, cred.ID.String())
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, svc.Delete(ctx, cred.ID.String()), store.ErrNotFound)
}
