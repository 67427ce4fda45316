// Package localkv is a file-backed store driver. Each collection lives in a
// single JSON file holding the whole array; every write re-reads and then
// replaces the file. Concurrent writers within the process are serialised by
// a mutex, but there is no cross-process coordination: the last writer wins.
// That contract is deliberate, so treat this driver as single-instance only.
package localkv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/SPMA4P97/jess-credentials/internal/portal/store"
)

const (
	credentialsFile   = "credentials.json"
	usersFile         = "users.json"
	organizationsFile = "organizations.json"
	rolesFile         = "roles.json"
)

type Store struct {
	dir string
	mu  sync.Mutex
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Close() error { return nil }

// Ping verifies the data directory is still accessible.
func (s *Store) Ping(ctx context.Context) error {
	_, err := os.Stat(s.dir)
	return err
}

// ApplyMigrations is a no-op: the JSON files are created lazily on first
// write and missing files read as empty collections.
func (s *Store) ApplyMigrations() error { return nil }

// Tx returns a pass-through transaction. This driver has no atomicity across
// files; Commit and Rollback are no-ops and writes inside the "transaction"
// land immediately.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	return &txStore{s: s}, nil
}

func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Credentials() store.Credentials     { return &credentialsRepo{s: s} }
func (s *Store) Users() store.Users                 { return &usersRepo{s: s} }
func (s *Store) Organizations() store.Organizations { return &organizationsRepo{s: s} }
func (s *Store) RoleTitles() store.RoleTitles       { return &roleTitlesRepo{s: s} }

type txStore struct {
	s *Store
}

func (t *txStore) Commit() error   { return nil }
func (t *txStore) Rollback() error { return nil }

func (t *txStore) Close() error                       { return nil }
func (t *txStore) Ping(ctx context.Context) error     { return t.s.Ping(ctx) }
func (t *txStore) ApplyMigrations() error             { return nil }
func (t *txStore) Credentials() store.Credentials     { return t.s.Credentials() }
func (t *txStore) Users() store.Users                 { return t.s.Users() }
func (t *txStore) Organizations() store.Organizations { return t.s.Organizations() }
func (t *txStore) RoleTitles() store.RoleTitles       { return t.s.RoleTitles() }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	return nil, errors.New("localkv: nested transactions not supported")
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return errors.New("localkv: nested transactions not supported")
}

// readAll unmarshals the whole collection from file. A missing file is an
// empty collection, not an error.
func readAll[T any](s *Store, file string) ([]T, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, file))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", file, err)
	}
	return items, nil
}

// writeAll replaces the whole collection file. Last write wins.
func writeAll[T any](s *Store, file string, items []T) error {
	if items == nil {
		items = []T{}
	}

	raw, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", file, err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, file), raw, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", file, err)
	}
	return nil
}
