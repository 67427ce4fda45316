package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupSearch(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	creds := &CredentialService{Credentials: st.Credentials()}
	lookup := &LookupService{Credentials: st.Credentials()}

	issued, err := creds.Generate(ctx, GenerateInput{
		Name:         "Jane Doe",
		Organization: "Journal of Emerging Sport Studies",
		Role:         "Peer Reviewer",
	})
	require.NoError(t, err)

	t.Run("requires both fields", func(t *testing.T) {
		_, err := lookup.Search(ctx, "", "Doe")
		require.ErrorIs(t, err, ErrMissingInput)

		_, err = lookup.Search(ctx, issued.ID.String(), "  ")
		require.ErrorIs(t, err, ErrMissingInput)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := lookup.Search(ctx, "DEADBEEF", "Doe")
		require.ErrorIs(t, err, ErrCredentialNotFound)
	})

	t.Run("name fragment must appear in the holder's name", func(t *testing.T) {
		_, err := lookup.Search(ctx, issued.ID.String(), "Smith")
		require.ErrorIs(t, err, ErrNameMismatch)
	})

	t.Run("matches by last name, case-insensitive", func(t *testing.T) {
		found, err := lookup.Search(ctx, issued.ID.String(), "doe")
		require.NoError(t, err)
		require.Equal(t, issued.ID, found.ID)

		found, err = lookup.Search(ctx, issued.ID.String(), "DOE")
		require.NoError(t, err)
		require.Equal(t, "Jane Doe", found.Name)
	})

	t.Run("canonicalises lowercase ids", func(t *testing.T) {
		found, err := lookup.Search(ctx, strings.ToLower(issued.ID.String()), "Doe")
		require.NoError(t, err)
		require.Equal(t, issued.ID, found.ID)
	})

	t.Run("trims whitespace from both fields", func(t *testing.T) {
		found, err := lookup.Search(ctx, "  "+issued.ID.String()+" ", " Doe ")
		require.NoError(t, err)
		require.Equal(t, issued.ID, found.ID)
	})
}
