package sqlite

import (
	"context"
	"strings"

	"github.com/SPMA4P97/jess-credentials/internal/portal/domain"
	"github.com/SPMA4P97/jess-credentials/internal/portal/store"
	"github.com/SPMA4P97/jess-credentials/pkg/credid"
)

type credentialsRepo struct {
	db dbtx
}

const createCredential = `
INSERT INTO credentials (id, name, organization, role, issue_date, info, expiry_date, volumes, hide_volumes, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

func (r *credentialsRepo) Create(ctx context.Context, c domain.Credential) error {
	_, err := r.db.ExecContext(ctx, createCredential,
		string(c.ID),
		c.Name,
		c.Organization,
		c.Role,
		c.Date,
		c.Issue,
		c.Expiry,
		joinVolumes(c.Volumes),
		c.HideVolumes,
		c.CreatedAt,
	)
	return mapConflict(err)
}

const getCredentialByID = `
SELECT id, name, organization, role, issue_date, info, expiry_date, volumes, hide_volumes, created_at
FROM credentials
WHERE id = ?
`

func (r *credentialsRepo) GetByID(ctx context.Context, id string) (domain.Credential, error) {
	row := r.db.QueryRowContext(ctx, getCredentialByID, id)

	c, err := scanCredential(row)
	if err != nil {
		return domain.Credential{}, mapNotFound(err)
	}
	return c, nil
}

const listCredentials = `
SELECT id, name, organization, role, issue_date, info, expiry_date, volumes, hide_volumes, created_at
FROM credentials
ORDER BY created_at DESC
`

func (r *credentialsRepo) ListAll(ctx context.Context) ([]domain.Credential, error) {
	rows, err := r.db.QueryContext(ctx, listCredentials)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var creds []domain.Credential
	for rows.Next() {
		c, err := scanCredential(rows)
		if err != nil {
			return nil, err
		}
		creds = append(creds, c)
	}
	return creds, rows.Err()
}

const deleteCredential = `DELETE FROM credentials WHERE id = ?`

func (r *credentialsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteCredential, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanCredential(row scanner) (domain.Credential, error) {
	var (
		c       domain.Credential
		id      string
		volumes string
	)
	err := row.Scan(
		&id,
		&c.Name,
		&c.Organization,
		&c.Role,
		&c.Date,
		&c.Issue,
		&c.Expiry,
		&volumes,
		&c.HideVolumes,
		&c.CreatedAt,
	)
	if err != nil {
		return domain.Credential{}, err
	}

	c.ID = credid.ID(id)
	c.Volumes = splitVolumes(volumes)
	return c, nil
}

// Volumes are stored as a single ", "-joined column. A label containing the
// separator itself would not round-trip, which is accepted for these short
// human-entered values.
func joinVolumes(volumes []string) string {
	return strings.Join(volumes, ", ")
}

// splitVolumes drops empty segments so legacy rows with stray separators
// don't surface blank labels.
func splitVolumes(s string) []string {
	var volumes []string
	for _, v := range strings.Split(s, ", ") {
		if v = strings.TrimSpace(v); v != "" {
			volumes = append(volumes, v)
		}
	}
	return volumes
}
