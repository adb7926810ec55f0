package domain

import "time"

type Role struct {
	ID          int64
	Name        string
	Permissions []Permission // Parsed from space-delimited storage
	State       State
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive reports whether the role is in the active state.
func (r *Role) IsActive() bool { return r.State == StateActive }

// RolePatch carries partial updates for a role. Nil fields are left untouched.
type RolePatch struct {
	Name        *string
	Permissions *[]Permission
	State       *State
}

// IsZero reports whether the patch carries no changes at all.
func (p RolePatch) IsZero() bool {
	return p.Name == nil && p.Permissions == nil && p.State == nil
}
