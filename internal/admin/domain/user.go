package domain

import "time"

type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	StoreID      int64
	State        State
	RoleID       *int64
	Role         *Role // Populated on reads, nil if no role assigned
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive reports whether the user is in the active state.
func (u *User) IsActive() bool { return u.State == StateActive }

// Permissions returns the permission tags of the user's role, or nil when no
// role is assigned.
func (u *User) Permissions() []Permission {
	if u.Role == nil {
		return nil
	}
	return u.Role.Permissions
}

// UserPatch carries partial updates for a user. Nil fields are left untouched.
// Password is plaintext here; it is hashed before it reaches storage.
type UserPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
	StoreID   *int64
	RoleID    *int64
	State     *State
}

// IsZero reports whether the patch carries no changes at all.
func (p UserPatch) IsZero() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil &&
		p.Password == nil && p.StoreID == nil && p.RoleID == nil && p.State == nil
}
