package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/retailcore/staffd/internal/admin/domain"
	"github.com/retailcore/staffd/internal/admin/store"
)

type usersRepo struct {
	db querier
}

// Every user read joins the role so callers get the assigned role (any
// state) without a second round trip.
const userSelect = `
SELECT u.id, u.first_name, u.last_name, u.email, u.password_hash,
       u.store_id, u.is_active, u.role_id, u.created_at, u.updated_at,
       r.id, r.name, r.permissions, r.is_active, r.created_at, r.updated_at
FROM users u
LEFT JOIN roles r ON r.id = u.role_id`

func scanUser(row interface{ Scan(dest ...any) error }) (domain.User, error) {
	var (
		u      domain.User
		active int
		roleID sql.NullInt64

		rID      sql.NullInt64
		rName    sql.NullString
		rPerms   sql.NullString
		rActive  sql.NullInt64
		rCreated sql.NullTime
		rUpdated sql.NullTime
	)

	err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash,
		&u.StoreID, &active, &roleID, &u.CreatedAt, &u.UpdatedAt,
		&rID, &rName, &rPerms, &rActive, &rCreated, &rUpdated,
	)
	if err != nil {
		return domain.User{}, err
	}

	u.State = activeToState(active)
	u.RoleID = mapNullInt64Ptr(roleID)

	if rID.Valid {
		u.Role = &domain.Role{
			ID:          rID.Int64,
			Name:        rName.String,
			Permissions: splitPermissions(rPerms.String),
			State:       activeToState(int(rActive.Int64)),
			CreatedAt:   rCreated.Time,
			UpdatedAt:   rUpdated.Time,
		}
	}
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, userSelect+` WHERE u.id = ?`, id)

	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByIDState(ctx context.Context, id int64, state domain.State) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		userSelect+` WHERE u.id = ? AND u.is_active = ?`, id, stateToActive(state))

	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByEmailState(ctx context.Context, email string, state domain.State) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		userSelect+` WHERE u.email = ? AND u.is_active = ?`, email, stateToActive(state))

	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) ListAllUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, userSelect+` ORDER BY u.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectUsers(rows)
}

func (r *usersRepo) ListUsersByState(ctx context.Context, state domain.State) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		userSelect+` WHERE u.is_active = ? ORDER BY u.id`, stateToActive(state))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectUsers(rows)
}

func (r *usersRepo) ListUsersByStoreState(ctx context.Context, storeID int64, state domain.State) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		userSelect+` WHERE u.store_id = ? AND u.is_active = ? ORDER BY u.id`,
		storeID, stateToActive(state))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectUsers(rows)
}

func collectUsers(rows *sql.Rows) ([]domain.User, error) {
	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *usersRepo) CountActiveUsersByRole(ctx context.Context, roleID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE role_id = ? AND is_active = 1`, roleID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (domain.User, error) {
	now := time.Now().UTC()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (first_name, last_name, email, password_hash, store_id, is_active, role_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.FirstName, u.LastName, u.Email, u.PasswordHash, u.StoreID,
		stateToActive(u.State), mapOptionalInt64(u.RoleID), now, now)
	if err != nil {
		return domain.User{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}

	u.ID = id
	u.CreatedAt = now
	u.UpdatedAt = now
	return u, nil
}

func (r *usersRepo) UpdateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()

	res, err := r.db.ExecContext(ctx,
		`UPDATE users
		 SET first_name = ?, last_name = ?, email = ?, password_hash = ?,
		     store_id = ?, is_active = ?, role_id = ?, updated_at = ?
		 WHERE id = ?`,
		u.FirstName, u.LastName, u.Email, u.PasswordHash, u.StoreID,
		stateToActive(u.State), mapOptionalInt64(u.RoleID), now, u.ID)
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
