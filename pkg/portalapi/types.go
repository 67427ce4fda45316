package portalapi

// ============================================================================
// Internal Response Types (used for JSON unmarshaling)
// ============================================================================

// ErrorResponse represents a standard error envelope.
// This is used internally for parsing HTTP error responses.
// Client code should use the APIError type from errors.go instead.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g., "invalid_request")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// ============================================================================
// Auth Types
// ============================================================================

// LoginRequest is the body for POST /v1/auth/login. Identifier accepts
// either an email address or a username.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// LoginResponse is returned from a successful login.
type LoginResponse struct {
	// AccessToken is the JWT used to authenticate subsequent API requests
	AccessToken string `json:"access_token"`

	// TokenType is always "Bearer"
	TokenType string `json:"token_type"`

	// ExpiresIn is the lifetime in seconds of the access token
	ExpiresIn int `json:"expires_in"`
}

// UserInfo is returned from GET /v1/userinfo for the authenticated user.
type UserInfo struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// HealthResponse is returned from the /livez and /readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of critical dependencies on /readyz.
type HealthChecks struct {
	Store string `json:"store"`
}

// ============================================================================
// Credential Types
// ============================================================================

// Credential is the wire representation of an issued credential.
type Credential struct {
	// ID is the short uppercase credential identifier (8 hex chars)
	ID string `json:"id"`

	// Name is the credential holder's full name
	Name string `json:"name"`

	// Organization is the issuing organization's display name
	Organization string `json:"organization"`

	// Role is the position or title the credential certifies
	Role string `json:"role"`

	// Date is the issue date in YYYY-MM-DD form
	Date string `json:"date"`

	// Issue is optional free-form context shown on the certificate
	Issue string `json:"issue,omitempty"`

	// Expiry is the optional expiration date in YYYY-MM-DD form
	Expiry string `json:"expiry,omitempty"`

	// Volumes lists the normalised volume labels (e.g., "Volume 12")
	Volumes []string `json:"volumes,omitempty"`

	// HideVolumes marks the volumes as omitted from the certificate
	HideVolumes bool `json:"hideVolumes,omitempty"`
}

// CredentialCreateRequest is the body for POST /v1/credentials.
// Volumes is the raw comma-separated input; the server normalises it.
type CredentialCreateRequest struct {
	Name         string `json:"name"`
	Organization string `json:"organization"`
	Role         string `json:"role"`
	Date         string `json:"date,omitempty"`
	Issue        string `json:"issue,omitempty"`
	Expiry       string `json:"expiry,omitempty"`
	Volumes      string `json:"volumes,omitempty"`
	HideVolumes  bool   `json:"hideVolumes,omitempty"`
}

// ============================================================================
// Admin List Types
// ============================================================================

// User is the wire representation of a portal user. Password hashes are
// never serialised.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// UserCreateRequest is the body for POST /v1/users.
type UserCreateRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UserUpdateRequest is the body for PUT /v1/users/{id}. Empty fields are
// left unchanged.
type UserUpdateRequest struct {
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty"`
}

// Organization is an entry in the issuing-organizations list.
type Organization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// OrganizationCreateRequest is the body for POST /v1/organizations.
type OrganizationCreateRequest struct {
	Name string `json:"name"`
}

// RoleTitle is an entry in the role/position titles list.
type RoleTitle struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// RoleTitleCreateRequest is the body for POST /v1/roles.
type RoleTitleCreateRequest struct {
	Title string `json:"title"`
}
