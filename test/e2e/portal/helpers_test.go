package portal_test

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	portalhttp "github.com/SPMA4P97/jess-credentials/internal/portal/http"
	"github.com/SPMA4P97/jess-credentials/internal/portal/service"
	"github.com/SPMA4P97/jess-credentials/internal/portal/store/drivers/sqlite"
	"github.com/SPMA4P97/jess-credentials/pkg/cryptox"
	"github.com/SPMA4P97/jess-credentials/pkg/jwtx"
	"github.com/SPMA4P97/jess-credentials/pkg/portalapi"
	"github.com/stretchr/testify/require"
)

/*
 * End-to-end tests for the credentials portal. The full HTTP stack runs
 * in-process against a file-backed sqlite store, and everything goes through
 * the portalapi client the way an external integration would.
 */

const (
	adminEmail    = "admin@jess.local"
	adminUsername = "admin"
	adminPassword = "Admin123!"

	testIssuer = "jess-credentials-e2e"
)

// setupPortal starts a fully wired portal server and returns a client
// pointed at it. The admin account is seeded the same way a fresh
// deployment seeds it.
func setupPortal(t *testing.T) *portalapi.Client {
	t.Helper()

	dir := t.TempDir()
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	st, err := sqlite.NewStore(filepath.Join(dir, "portal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	signer, err := jwtx.NewSignerEdDSA("e2e-key-001", pemKey)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := portalhttp.NewRouter(
		jwtx.VerifierFor(signer, testIssuer), testIssuer, "", "e2e", st, logger)
	router.AuthService = &service.AuthService{
		Store: st, Signer: signer, Issuer: testIssuer, TokenTTL: time.Hour,
	}
	router.CredentialService = &service.CredentialService{Credentials: st.Credentials()}
	router.LookupService = &service.LookupService{Credentials: st.Credentials()}
	router.UserService = &service.UserService{Store: st}
	router.OrganizationService = &service.OrganizationService{Organizations: st.Organizations()}
	router.RoleTitleService = &service.RoleTitleService{RoleTitles: st.RoleTitles()}
	router.ApplyRoutes()

	require.NoError(t,
		router.UserService.EnsureAdmin(context.Background(), adminEmail, adminUsername, adminPassword))

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return portalapi.NewClient(server.URL)
}

// loginAdmin authenticates the seeded admin account.
func loginAdmin(t *testing.T, client *portalapi.Client) *portalapi.Session {
	t.Helper()

	session, err := client.Login(context.Background(), adminUsername, adminPassword)
	require.NoError(t, err)
	return session
}

// requireAPIError asserts err is an *portalapi.APIError with the given
// status and user-facing description.
func requireAPIError(t *testing.T, err error, status int, description string) {
	t.Helper()

	var apiErr *portalapi.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, description, apiErr.Description)
}
