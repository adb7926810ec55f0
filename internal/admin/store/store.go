package store

import (
	"context"
	"errors"

	"github.com/retailcore/staffd/internal/admin/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and to stop callers from accidentally nesting transactions.
type Store interface {
	Roles() Roles
	Users() Users

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// This is the recommended way to handle transactions as it automatically
	// handles commit/rollback logic.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Roles interface {
	// GetRoleByID fetches a role by id regardless of state.
	GetRoleByID(ctx context.Context, id int64) (domain.Role, error)

	// GetRoleByIDState fetches a role by id constrained to a state.
	GetRoleByIDState(ctx context.Context, id int64, state domain.State) (domain.Role, error)

	// GetRoleByNameState fetches a role by name constrained to a state.
	// Uniqueness only holds among active roles, so callers always pass a state.
	GetRoleByNameState(ctx context.Context, name string, state domain.State) (domain.Role, error)

	// ListAllRoles returns every role regardless of state.
	ListAllRoles(ctx context.Context) ([]domain.Role, error)

	// ListRolesByState returns roles in the given state.
	ListRolesByState(ctx context.Context, state domain.State) ([]domain.Role, error)

	// CreateRole inserts a new role and returns it with its assigned id.
	CreateRole(ctx context.Context, r domain.Role) (domain.Role, error)

	// UpdateRole persists the full record of r and bumps updated_at.
	UpdateRole(ctx context.Context, r domain.Role) error
}

type Users interface {
	// GetUserByID fetches a user by id regardless of state.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByIDState fetches a user by id constrained to a state.
	GetUserByIDState(ctx context.Context, id int64, state domain.State) (domain.User, error)

	// GetUserByEmailState fetches a user by email constrained to a state.
	// Email uniqueness only holds among active users.
	GetUserByEmailState(ctx context.Context, email string, state domain.State) (domain.User, error)

	// ListAllUsers returns every user regardless of state.
	ListAllUsers(ctx context.Context) ([]domain.User, error)

	// ListUsersByState returns users in the given state.
	ListUsersByState(ctx context.Context, state domain.State) ([]domain.User, error)

	// ListUsersByStoreState returns users assigned to a store in the given state.
	ListUsersByStoreState(ctx context.Context, storeID int64, state domain.State) ([]domain.User, error)

	// CountActiveUsersByRole returns how many active users reference a role.
	// Used as the guard before a role may be deactivated.
	CountActiveUsersByRole(ctx context.Context, roleID int64) (int, error)

	// CreateUser inserts a new user and returns it with its assigned id.
	CreateUser(ctx context.Context, u domain.User) (domain.User, error)

	// UpdateUser persists the full record of u and bumps updated_at.
	UpdateUser(ctx context.Context, u domain.User) error
}
