package sqlite

import (
	"context"

	"github.com/SPMA4P97/jess-credentials/internal/portal/domain"
	"github.com/SPMA4P97/jess-credentials/internal/portal/store"
)

type organizationsRepo struct {
	db dbtx
}

const createOrganization = `
INSERT INTO organizations (id, name, created_at)
VALUES (?, ?, ?)
`

func (r *organizationsRepo) Create(ctx context.Context, o domain.Organization) error {
	_, err := r.db.ExecContext(ctx, createOrganization, o.ID, o.Name, o.CreatedAt)
	return mapConflict(err)
}

const listOrganizations = `
SELECT id, name, created_at FROM organizations ORDER BY name ASC
`

func (r *organizationsRepo) ListAll(ctx context.Context) ([]domain.Organization, error) {
	rows, err := r.db.QueryContext(ctx, listOrganizations)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []domain.Organization
	for rows.Next() {
		var o domain.Organization
		if err := rows.Scan(&o.ID, &o.Name, &o.CreatedAt); err != nil {
			return nil, err
		}
		orgs = append(orgs, o)
	}
	return orgs, rows.Err()
}

func (r *organizationsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM organizations WHERE id = ?`, id)
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
