package store

import (
	"context"
	"errors"

	"github.com/SPMA4P97/jess-credentials/internal/portal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, localkv)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Credentials() Credentials
	Users() Users
	Organizations() Organizations
	RoleTitles() RoleTitles

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the backing store is still reachable.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// Credentials is the repository for issued credentials. The app may swap in
// a remote implementation while the rest of the Store stays local.
type Credentials interface {
	// Create inserts a new credential. A reused ID returns ErrAlreadyExists.
	Create(ctx context.Context, c domain.Credential) error

	// GetByID returns a credential by its short ID.
	GetByID(ctx context.Context, id string) (domain.Credential, error)

	// ListAll returns all credentials ordered by creation date (newest first).
	ListAll(ctx context.Context) ([]domain.Credential, error)

	// Delete removes a credential. Missing IDs return ErrNotFound.
	Delete(ctx context.Context, id string) error
}

type Users interface {
	// GetByID returns a user by id.
	GetByID(ctx context.Context, id string) (domain.User, error)

	// GetByEmailOrUsername resolves a login identifier. The same column set
	// serves both forms; callers don't need to know which one they hold.
	GetByEmailOrUsername(ctx context.Context, identifier string) (domain.User, error)

	// ListAll returns all users ordered by creation date.
	ListAll(ctx context.Context) ([]domain.User, error)

	// Create inserts a new user (id is provided by app via ULID).
	// Duplicate email or username returns ErrAlreadyExists.
	Create(ctx context.Context, u domain.User) error

	// Update replaces the mutable fields and bumps updated_at.
	Update(ctx context.Context, u domain.User) error

	// Delete removes a user.
	Delete(ctx context.Context, userID string) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type Organizations interface {
	// Create inserts an organization. Duplicate names return ErrAlreadyExists.
	Create(ctx context.Context, o domain.Organization) error

	// ListAll returns all organizations ordered by name.
	ListAll(ctx context.Context) ([]domain.Organization, error)

	// Delete removes an organization by id.
	Delete(ctx context.Context, id string) error
}

type RoleTitles interface {
	// Create inserts a role title. Duplicate titles return ErrAlreadyExists.
	Create(ctx context.Context, r domain.RoleTitle) error

	// ListAll returns all role titles ordered by title.
	ListAll(ctx context.Context) ([]domain.RoleTitle, error)

	// Delete removes a role title by id.
	Delete(ctx context.Context, id string) error
}
