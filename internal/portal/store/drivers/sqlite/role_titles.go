package sqlite

import (
	"context"

	"github.com/SPMA4P97/jess-credentials/internal/portal/domain"
	"github.com/SPMA4P97/jess-credentials/internal/portal/store"
)

type roleTitlesRepo struct {
	db dbtx
}

const createRoleTitle = `
INSERT INTO role_titles (id, title, created_at)
VALUES (?, ?, ?)
`

func (r *roleTitlesRepo) Create(ctx context.Context, rt domain.RoleTitle) error {
	_, err := r.db.ExecContext(ctx, createRoleTitle, rt.ID, rt.Title, rt.CreatedAt)
	return mapConflict(err)
}

const listRoleTitles = `
SELECT id, title, created_at FROM role_titles ORDER BY title ASC
`

func (r *roleTitlesRepo) ListAll(ctx context.Context) ([]domain.RoleTitle, error) {
	rows, err := r.db.QueryContext(ctx, listRoleTitles)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var titles []domain.RoleTitle
	for rows.Next() {
		var rt domain.RoleTitle
		if err := rows.Scan(&rt.ID, &rt.Title, &rt.CreatedAt); err != nil {
			return nil, err
		}
		titles = append(titles, rt)
	}
	return titles, rows.Err()
}

func (r *roleTitlesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM role_titles WHERE id = ?`, id)
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
