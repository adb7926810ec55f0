package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/retailcore/staffd/internal/admin/domain"
	"github.com/retailcore/staffd/internal/admin/store"
)

type rolesRepo struct {
	db querier
}

const roleColumns = `id, name, permissions, is_active, created_at, updated_at`

func scanRole(row interface{ Scan(dest ...any) error }) (domain.Role, error) {
	var (
		r      domain.Role
		perms  string
		active int
	)
	if err := row.Scan(&r.ID, &r.Name, &perms, &active, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return domain.Role{}, err
	}
	r.Permissions = splitPermissions(perms)
	r.State = activeToState(active)
	return r, nil
}

func (r *rolesRepo) GetRoleByID(ctx context.Context, id int64) (domain.Role, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+roleColumns+` FROM roles WHERE id = ?`, id)

	role, err := scanRole(row)
	if err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	return role, nil
}

func (r *rolesRepo) GetRoleByIDState(ctx context.Context, id int64, state domain.State) (domain.Role, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+roleColumns+` FROM roles WHERE id = ? AND is_active = ?`,
		id, stateToActive(state))

	role, err := scanRole(row)
	if err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	return role, nil
}

func (r *rolesRepo) GetRoleByNameState(ctx context.Context, name string, state domain.State) (domain.Role, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+roleColumns+` FROM roles WHERE name = ? AND is_active = ?`,
		name, stateToActive(state))

	role, err := scanRole(row)
	if err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	return role, nil
}

func (r *rolesRepo) ListAllRoles(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+roleColumns+` FROM roles ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRoles(rows)
}

func (r *rolesRepo) ListRolesByState(ctx context.Context, state domain.State) ([]domain.Role, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+roleColumns+` FROM roles WHERE is_active = ? ORDER BY id`,
		stateToActive(state))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRoles(rows)
}

func collectRoles(rows *sql.Rows) ([]domain.Role, error) {
	var roles []domain.Role
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *rolesRepo) CreateRole(ctx context.Context, role domain.Role) (domain.Role, error) {
	now := time.Now().UTC()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO roles (name, permissions, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		role.Name, joinPermissions(role.Permissions), stateToActive(role.State), now, now)
	if err != nil {
		return domain.Role{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Role{}, err
	}

	role.ID = id
	role.CreatedAt = now
	role.UpdatedAt = now
	return role, nil
}

func (r *rolesRepo) UpdateRole(ctx context.Context, role domain.Role) error {
	now := time.Now().UTC()

	res, err := r.db.ExecContext(ctx,
		`UPDATE roles SET name = ?, permissions = ?, is_active = ?, updated_at = ? WHERE id = ?`,
		role.Name, joinPermissions(role.Permissions), stateToActive(role.State), now, role.ID)
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
