package service

import (
	"context"
	"testing"

	"github.com/SPMA4P97/jess-credentials/internal/portal/store"
	"github.com/stretchr/testify/require"
)

func TestOrganizationService(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &OrganizationService{Organizations: st.Organizations()}

	t.Run("rejects empty names", func(t *testing.T) {
		_, err := svc.Create(ctx, "   ")
		require.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("creates and lists sorted by name", func(t *testing.T) {
		_, err := svc.Create(ctx, "Zeta Sport Institute")
		require.NoError(t, err)
		_, err = svc.Create(ctx, "  Journal of Emerging Sport Studies ")
		require.NoError(t, err)

		orgs, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, orgs, 2)
		require.Equal(t, "Journal of Emerging Sport Studies", orgs[0].Name)
		require.Equal(t, "Zeta Sport Institute", orgs[1].Name)
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		_, err := svc.Create(ctx, "Journal of Emerging Sport Studies")
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("deletes by id", func(t *testing.T) {
		org, err := svc.Create(ctx, "Short Lived")
		require.NoError(t, err)
		require.NoError(t, svc.Delete(ctx, org.ID))
		require.ErrorIs(t, svc.Delete(ctx, org.ID), store.ErrNotFound)
	})
}

func TestRoleTitleService(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &RoleTitleService{RoleTitles: st.RoleTitles()}

	t.Run("rejects empty titles", func(t *testing.T) {
		_, err := svc.Create(ctx, "")
		require.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("creates and lists sorted by title", func(t *testing.T) {
		_, err := svc.Create(ctx, "Peer Reviewer")
		require.NoError(t, err)
		_, err = svc.Create(ctx, "Editor")
		require.NoError(t, err)

		titles, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, titles, 2)
		require.Equal(t, "Editor", titles[0].Title)
		require.Equal(t, "Peer Reviewer", titles[1].Title)
	})

	t.Run("rejects duplicate titles", func(t *testing.T) {
		_, err := svc.Create(ctx, "Editor")
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})
}
