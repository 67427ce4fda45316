package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SPMA4P97/jess-credentials/internal/portal/service"
	"github.com/SPMA4P97/jess-credentials/internal/portal/store"
	"github.com/SPMA4P97/jess-credentials/pkg/httpx"
	"github.com/SPMA4P97/jess-credentials/pkg/jwtx"
	"github.com/SPMA4P97/jess-credentials/pkg/slogx"

	_ "github.com/SPMA4P97/jess-credentials/api/portal" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier      jwtx.Verifier
	issuer        string
	publicBaseURL string
	buildVersion  string
	startTime     time.Time
	logger        *slog.Logger

	store               store.Store
	AuthService         *service.AuthService
	CredentialService   *service.CredentialService
	LookupService       *service.LookupService
	UserService         *service.UserService
	OrganizationService *service.OrganizationService
	RoleTitleService    *service.RoleTitleService
}

func NewRouter(
	verifier jwtx.Verifier,
	issuer, publicBaseURL, buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:           http.NewServeMux(),
		verifier:      verifier,
		issuer:        issuer,
		publicBaseURL: publicBaseURL,
		buildVersion:  buildVersion,
		startTime:     time.Now(),
		store:         st,
		logger:        logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerCredentials()
	r.registerVerification()
	r.registerUsers()
	r.registerPicklists()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			JESS Credentials Portal API
//	@version		0.1.0
//	@description	Credential issuance and verification for the Journal of Emerging Sport Studies.
//	@description
//	@description				Admin endpoints require a Bearer session token from /v1/auth/login.
//	@description				Verification endpoints are public.
//
//	@contact.name				JESS Editorial Team
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	loginHandler := &LoginHandler{AuthService: r.AuthService}

	// POST /login - strict rate limit (authentication attempts)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	userinfoHandler := &UserInfoHandler{UserService: r.UserService}
	r.Mux.Handle("GET /v1/userinfo",
		httpx.Chain(userinfoHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerCredentials() {
	h := &CredentialsHandler{CredentialService: r.CredentialService}

	// Any authenticated user can issue and browse credentials.
	authn := func(handler http.Handler, limit httpx.RateLimitConfig) http.Handler {
		return httpx.Chain(handler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(limit),
		)
	}

	r.Mux.Handle("POST /v1/credentials", authn(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/credentials", authn(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/credentials/{id}", authn(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("DELETE /v1/credentials/{id}", authn(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerVerification() {
	verifyHandler := &VerifyHandler{LookupService: r.LookupService}
	pages := &PagesHandler{
		LookupService:     r.LookupService,
		CredentialService: r.CredentialService,
		PublicBaseURL:     r.publicBaseURL,
	}

	// Public endpoints, deliberately unlimited: certificate holders and
	// employers verify without accounts, and lookups need both the ID and
	// a matching name fragment.
	r.Mux.Handle("GET /v1/verify", verifyHandler)
	r.Mux.Handle("GET /credential/{id}", http.HandlerFunc(pages.HandleCertificate))
	r.Mux.Handle("GET /{$}", http.HandlerFunc(pages.HandleHome))
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	// User management is admin-only.
	admin := func(handler http.Handler, limit httpx.RateLimitConfig) http.Handler {
		return httpx.Chain(handler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole("admin"),
			httpx.RateLimitByUser(limit),
		)
	}

	r.Mux.Handle("GET /v1/users", admin(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/users", admin(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("PUT /v1/users/{id}", admin(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/users/{id}", admin(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerPicklists() {
	orgs := &OrganizationsHandler{OrganizationService: r.OrganizationService}
	roles := &RoleTitlesHandler{RoleTitleService: r.RoleTitleService}

	authn := func(handler http.Handler, limit httpx.RateLimitConfig) http.Handler {
		return httpx.Chain(handler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(limit),
		)
	}

	r.Mux.Handle("GET /v1/organizations", authn(http.HandlerFunc(orgs.HandleList), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/organizations", authn(http.HandlerFunc(orgs.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/organizations/{id}", authn(http.HandlerFunc(orgs.HandleDelete), httpx.ModerateLimit))

	r.Mux.Handle("GET /v1/roles", authn(http.HandlerFunc(roles.HandleList), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/roles", authn(http.HandlerFunc(roles.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/roles/{id}", authn(http.HandlerFunc(roles.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
