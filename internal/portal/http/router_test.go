package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/SPMA4P97/jess-credentials/internal/portal/domain"
	"github.com/SPMA4P97/jess-credentials/internal/portal/service"
	"github.com/SPMA4P97/jess-credentials/internal/portal/store/drivers/sqlite"
	"github.com/SPMA4P97/jess-credentials/pkg/cryptox"
	"github.com/SPMA4P97/jess-credentials/pkg/jwtx"
	"github.com/SPMA4P97/jess-credentials/pkg/portalapi"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer        = "jess-credentials-test"
	testAdminPassword = "Admin123!"
	testUserPassword  = "User1234!"
)

// testPortal bundles a fully wired router with handles the tests need.
type testPortal struct {
	router *Router
	server *httptest.Server
	signer *jwtx.EdDSASigner

	admin domain.User
	user  domain.User
}

func newTestPortal(t *testing.T) *testPortal {
	t.Helper()
	dir := t.TempDir()
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	// A file-backed database: the server handles requests on pooled
	// connections, and an in-memory DSN is per-connection.
	st, err := sqlite.NewStore(filepath.Join(dir, "portal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	signer, err := jwtx.NewSignerEdDSA("test-key-001", pemKey)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := NewRouter(jwtx.VerifierFor(signer, testIssuer), testIssuer, "", "test", st, logger)
	router.AuthService = &service.AuthService{
		Store: st, Signer: signer, Issuer: testIssuer, TokenTTL: time.Hour,
	}
	router.CredentialService = &service.CredentialService{Credentials: st.Credentials()}
	router.LookupService = &service.LookupService{Credentials: st.Credentials()}
	router.UserService = &service.UserService{Store: st}
	router.OrganizationService = &service.OrganizationService{Organizations: st.Organizations()}
	router.RoleTitleService = &service.RoleTitleService{RoleTitles: st.RoleTitles()}
	router.ApplyRoutes()

	ctx := context.Background()
	admin, err := router.UserService.Create(ctx, service.CreateUserInput{
		Email: "admin@jess.local", Username: "admin", Password: testAdminPassword, Role: domain.RoleAdmin,
	})
	require.NoError(t, err)
	user, err := router.UserService.Create(ctx, service.CreateUserInput{
		Email: "user@jess.local", Username: "user", Password: testUserPassword, Role: domain.RoleUser,
	})
	require.NoError(t, err)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testPortal{
		router: router,
		server: server,
		signer: signer,
		admin:  admin,
		user:   user,
	}
}

// tokenFor mints a session token directly, skipping the login endpoint so
// tests don't eat into its rate limit.
func (p *testPortal) tokenFor(t *testing.T, u domain.User) string {
	t.Helper()
	token, err := p.signer.Sign(
		jwtx.NewSessionClaims(u.ID, u.Username, u.Role, testIssuer, time.Hour, time.Now()))
	require.NoError(t, err)
	return token
}

func (p *testPortal) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, p.server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := p.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestLoginEndpoint(t *testing.T) {
	p := newTestPortal(t)

	t.Run("succeeds with valid credentials", func(t *testing.T) {
		resp := p.do(t, http.MethodPost, "/v1/auth/login", "",
			portalapi.LoginRequest{Identifier: "admin", Password: testAdminPassword})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody[portalapi.LoginResponse](t, resp)
		require.NotEmpty(t, body.AccessToken)
		require.Equal(t, "Bearer", body.TokenType)
		require.Equal(t, 3600, body.ExpiresIn)
	})

	t.Run("rejects a bad password", func(t *testing.T) {
		resp := p.do(t, http.MethodPost, "/v1/auth/login", "",
			portalapi.LoginRequest{Identifier: "admin", Password: "wrong"})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		body := decodeBody[portalapi.ErrorResponse](t, resp)
		require.Equal(t, "invalid_credentials", body.Error)
		require.Equal(t, "Invalid email/username or password", body.ErrorDescription)
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPost, p.server.URL+"/v1/auth/login",
			bytes.NewReader([]byte("{not json")))
		require.NoError(t, err)

		resp, err := p.server.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestUserinfoEndpoint(t *testing.T) {
	p := newTestPortal(t)

	t.Run("returns the authenticated user", func(t *testing.T) {
		resp := p.do(t, http.MethodGet, "/v1/userinfo", p.tokenFor(t, p.admin), nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		info := decodeBody[portalapi.UserInfo](t, resp)
		require.Equal(t, p.admin.ID, info.ID)
		require.Equal(t, "admin", info.Username)
		require.Equal(t, domain.RoleAdmin, info.Role)
	})

	t.Run("rejects a missing token", func(t *testing.T) {
		resp := p.do(t, http.MethodGet, "/v1/userinfo", "", nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("rejects a garbage token", func(t *testing.T) {
		resp := p.do(t, http.MethodGet, "/v1/userinfo", "not-a-jwt", nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestCredentialEndpoints(t *testing.T) {
	p := newTestPortal(t)
	token := p.tokenFor(t, p.user)

	var issued portalapi.Credential

	t.Run("issues a credential", func(t *testing.T) {
		resp := p.do(t, http.MethodPost, "/v1/credentials", token, portalapi.CredentialCreateRequest{
			Name:         "Jane Doe",
			Organization: "Journal of Emerging Sport Studies",
			Role:         "Peer Reviewer",
			Date:         "2026-02-01",
			Volumes:      "11, 12",
			HideVolumes:  true,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		issued = decodeBody[portalapi.Credential](t, resp)
		require.Len(t, issued.ID, 8)
		require.Equal(t, []string{"Volume 11", "Volume 12"}, issued.Volumes)
		require.True(t, issued.HideVolumes)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		resp := p.do(t, http.MethodPost, "/v1/credentials", token,
			portalapi.CredentialCreateRequest{Name: "Jane Doe"})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("requires authentication", func(t *testing.T) {
		resp := p.do(t, http.MethodGet, "/v1/credentials", "", nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("lists and fetches", func(t *testing.T) {
		resp := p.do(t, http.MethodGet, "/v1/credentials", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, decodeBody[[]portalapi.Credential](t, resp), 1)

		resp = p.do(t, http.MethodGet, "/v1/credentials/"+issued.ID, token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		fetched := decodeBody[portalapi.Credential](t, resp)
		require.Equal(t, "Jane Doe", fetched.Name)
		require.True(t, fetched.HideVolumes)
	})

	t.Run("deletes", func(t *testing.T) {
		resp := p.do(t, http.MethodDelete, "/v1/credentials/"+issued.ID, token, nil)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp = p.do(t, http.MethodGet, "/v1/credentials/"+issued.ID, token, nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestVerifyEndpoint(t *testing.T) {
	p := newTestPortal(t)

	issued, err := p.router.CredentialService.Generate(context.Background(), service.GenerateInput{
		Name: "Jane Doe", Organization: "JESS", Role: "Peer Reviewer",
	})
	require.NoError(t, err)

	t.Run("verifies with id and last name", func(t *testing.T) {
		resp := p.do(t, http.MethodGet,
			fmt.Sprintf("/v1/verify?credential_id=%s&last_name=doe", issued.ID), "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "Jane Doe", decodeBody[portalapi.Credential](t, resp).Name)
	})

	t.Run("missing input", func(t *testing.T) {
		resp := p.do(t, http.MethodGet, "/v1/verify?credential_id="+issued.ID.String(), "", nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeBody[portalapi.ErrorResponse](t, resp)
		require.Equal(t, "Please enter both credential ID and last name.", body.ErrorDescription)
	})

	t.Run("unknown id", func(t *testing.T) {
		resp := p.do(t, http.MethodGet, "/v1/verify?credential_id=00000000&last_name=doe", "", nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)

		body := decodeBody[portalapi.ErrorResponse](t, resp)
		require.Equal(t, "not_found", body.Error)
		require.Equal(t, "Credential not found. Please check your ID and last name.", body.ErrorDescription)
	})

	t.Run("name mismatch", func(t *testing.T) {
		resp := p.do(t, http.MethodGet,
			fmt.Sprintf("/v1/verify?credential_id=%s&last_name=smith", issued.ID), "", nil)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)

		body := decodeBody[portalapi.ErrorResponse](t, resp)
		require.Equal(t, "name_mismatch", body.Error)
		require.Equal(t, "Credential ID found but last name doesn't match.", body.ErrorDescription)
	})
}

func TestUserEndpointsRequireAdmin(t *testing.T) {
	p := newTestPortal(t)
	adminToken := p.tokenFor(t, p.admin)
	userToken := p.tokenFor(t, p.user)

	t.Run("non-admins get 403", func(t *testing.T) {
		resp := p.do(t, http.MethodGet, "/v1/users", userToken, nil)
		require.Equal(t, http.StatusForbidden, resp.StatusCode)

		body := decodeBody[portalapi.ErrorResponse](t, resp)
		require.Equal(t, "insufficient_role", body.Error)
	})

	t.Run("admin lists users without hashes", func(t *testing.T) {
		resp := p.do(t, http.MethodGet, "/v1/users", adminToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		users := decodeBody[[]map[string]any](t, resp)
		require.Len(t, users, 2)
		for _, u := range users {
			require.NotContains(t, u, "password_hash")
			require.NotContains(t, u, "passwordHash")
		}
	})

	t.Run("admin creates, updates, deletes", func(t *testing.T) {
		resp := p.do(t, http.MethodPost, "/v1/users", adminToken, portalapi.UserCreateRequest{
			Email: "third@jess.local", Username: "third", Password: "Third123!", Role: domain.RoleUser,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		created := decodeBody[portalapi.User](t, resp)

		resp = p.do(t, http.MethodPut, "/v1/users/"+created.ID, adminToken,
			portalapi.UserUpdateRequest{Role: domain.RoleAdmin})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, domain.RoleAdmin, decodeBody[portalapi.User](t, resp).Role)

		resp = p.do(t, http.MethodDelete, "/v1/users/"+created.ID, adminToken, nil)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("duplicate identifiers conflict", func(t *testing.T) {
		resp := p.do(t, http.MethodPost, "/v1/users", adminToken, portalapi.UserCreateRequest{
			Email: "user@jess.local", Username: "another", Password: "Another1!", Role: domain.RoleUser,
		})
		require.Equal(t, http.StatusConflict, resp.StatusCode)

		body := decodeBody[portalapi.ErrorResponse](t, resp)
		require.Equal(t, "email or username already taken", body.ErrorDescription)
	})

	t.Run("self-delete is rejected", func(t *testing.T) {
		resp := p.do(t, http.MethodDelete, "/v1/users/"+p.admin.ID, adminToken, nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeBody[portalapi.ErrorResponse](t, resp)
		require.Equal(t, "you cannot delete your own account", body.ErrorDescription)
	})
}

func TestPicklistEndpoints(t *testing.T) {
	p := newTestPortal(t)
	token := p.tokenFor(t, p.user)

	t.Run("organizations", func(t *testing.T) {
		resp := p.do(t, http.MethodPost, "/v1/organizations", token,
			portalapi.OrganizationCreateRequest{Name: "Journal of Emerging Sport Studies"})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		org := decodeBody[portalapi.Organization](t, resp)

		resp = p.do(t, http.MethodPost, "/v1/organizations", token,
			portalapi.OrganizationCreateRequest{Name: "Journal of Emerging Sport Studies"})
		require.Equal(t, http.StatusConflict, resp.StatusCode)

		resp = p.do(t, http.MethodGet, "/v1/organizations", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, decodeBody[[]portalapi.Organization](t, resp), 1)

		resp = p.do(t, http.MethodDelete, "/v1/organizations/"+org.ID, token, nil)
		require.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("role titles", func(t *testing.T) {
		resp := p.do(t, http.MethodPost, "/v1/roles", token,
			portalapi.RoleTitleCreateRequest{Title: "Peer Reviewer"})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		resp = p.do(t, http.MethodPost, "/v1/roles", token,
			portalapi.RoleTitleCreateRequest{Title: ""})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		resp = p.do(t, http.MethodGet, "/v1/roles", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Len(t, decodeBody[[]portalapi.RoleTitle](t, resp), 1)
	})
}

func TestHealthEndpoints(t *testing.T) {
	p := newTestPortal(t)

	resp := p.do(t, http.MethodGet, "/livez", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ok", decodeBody[portalapi.HealthResponse](t, resp).Status)

	resp = p.do(t, http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	health := decodeBody[portalapi.HealthResponse](t, resp)
	require.Equal(t, "ok", health.Status)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Store)
}
