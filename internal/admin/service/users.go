package service

import (
	"context"
	"errors"
	"strings"

	"github.com/retailcore/staffd/internal/admin/domain"
	"github.com/retailcore/staffd/internal/admin/store"
	"github.com/retailcore/staffd/pkg/cryptox"
	"github.com/retailcore/staffd/pkg/slogx"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailTaken       = errors.New("an active user with that email already exists")
	ErrRoleRequired     = errors.New("a role is required to create a user")
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
)

type UserService struct {
	Store store.Store
}

// CreateUserInput carries everything needed to register a new user. Password
// arrives in plaintext and is hashed before storage.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	StoreID   int64
	RoleID    *int64
}

// CreateUser registers a new active user. A role reference is mandatory and
// is resolved before anything touches storage; the role itself may be in
// either state. Email uniqueness only holds among active users.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (domain.User, error) {
	l := slogx.FromContext(ctx)

	// The role requirement is checked before any storage access so the
	// caller gets the same answer whether or not the database is reachable.
	if in.RoleID == nil {
		return domain.User{}, ErrRoleRequired
	}

	in.Email = strings.TrimSpace(in.Email)
	if in.Email == "" {
		return domain.User{}, ErrEmailRequired
	}
	if in.Password == "" {
		return domain.User{}, ErrPasswordRequired
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		l.Error("failed to hash password", "error", err)
		return domain.User{}, err
	}

	var created domain.User
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// The referenced role must exist but may be inactive
		role, err := tx.Roles().GetRoleByID(ctx, *in.RoleID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrRoleNotFound
			}
			return err
		}

		_, err = tx.Users().GetUserByEmailState(ctx, in.Email, domain.StateActive)
		if err == nil {
			return ErrEmailTaken
		}
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		created, err = tx.Users().CreateUser(ctx, domain.User{
			FirstName:    in.FirstName,
			LastName:     in.LastName,
			Email:        in.Email,
			PasswordHash: hash,
			StoreID:      in.StoreID,
			State:        domain.StateActive,
			RoleID:       &role.ID,
		})
		if err != nil {
			return err
		}
		created.Role = &role
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	l.Info("user created", "user_id", created.ID, "email", created.Email)
	return created, nil
}

// GetUserByID fetches an active user by id. Inactive users surface only
// through ListAllUsers.
func (s *UserService) GetUserByID(ctx context.Context, userID int64) (domain.User, error) {
	u, err := s.Store.Users().GetUserByIDState(ctx, userID, domain.StateActive)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return u, err
}

// ListActiveUsers returns the users currently in the active state.
func (s *UserService) ListActiveUsers(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsersByState(ctx, domain.StateActive)
}

// ListAllUsers returns every user, active and inactive.
func (s *UserService) ListAllUsers(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListAllUsers(ctx)
}

// ListUsersByStore returns the active users assigned to a store.
func (s *UserService) ListUsersByStore(ctx context.Context, storeID int64) ([]domain.User, error) {
	return s.Store.Users().ListUsersByStoreState(ctx, storeID, domain.StateActive)
}

// ListUserPermissions returns the permission tags granted to a user through
// their role. A user without a role has no permissions, which is not an error.
func (s *UserService) ListUserPermissions(ctx context.Context, userID int64) ([]domain.Permission, error) {
	u, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	perms := u.Permissions()
	if perms == nil {
		return []domain.Permission{}, nil
	}
	return perms, nil
}

// UpdateUser applies a partial update to a user. Nil patch fields are left
// untouched. Changing the email checks active-email uniqueness only when the
// value actually changes; a new password is hashed before storage.
func (s *UserService) UpdateUser(ctx context.Context, userID int64, patch domain.UserPatch) (domain.User, error) {
	l := slogx.FromContext(ctx)

	if patch.IsZero() {
		return domain.User{}, ErrEmptyPatch
	}
	if patch.State != nil && !patch.State.IsValid() {
		return domain.User{}, ErrInvalidState
	}

	// Hash outside the transaction; argon2 is deliberately slow
	var newHash string
	if patch.Password != nil {
		if *patch.Password == "" {
			return domain.User{}, ErrPasswordRequired
		}
		var err error
		newHash, err = cryptox.HashPassword(*patch.Password)
		if err != nil {
			l.Error("failed to hash password", "error", err)
			return domain.User{}, err
		}
	}

	var updated domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		u, err := tx.Users().GetUserByID(ctx, userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if patch.FirstName != nil {
			u.FirstName = *patch.FirstName
		}
		if patch.LastName != nil {
			u.LastName = *patch.LastName
		}
		if patch.Email != nil {
			email := strings.TrimSpace(*patch.Email)
			if email == "" {
				return ErrEmailRequired
			}
			u.Email = email
		}
		if newHash != "" {
			u.PasswordHash = newHash
		}
		if patch.StoreID != nil {
			u.StoreID = *patch.StoreID
		}
		if patch.RoleID != nil {
			role, err := tx.Roles().GetRoleByID(ctx, *patch.RoleID)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return ErrRoleNotFound
				}
				return err
			}
			u.RoleID = &role.ID
			u.Role = &role
		}
		if patch.State != nil {
			u.State = *patch.State
		}

		// If the user ends up active, the email must be free among the
		// other active users.
		if u.IsActive() {
			existing, err := tx.Users().GetUserByEmailState(ctx, u.Email, domain.StateActive)
			if err == nil && existing.ID != u.ID {
				return ErrEmailTaken
			}
			if err != nil && !errors.Is(err, store.ErrNotFound) {
				return err
			}
		}

		if err := tx.Users().UpdateUser(ctx, u); err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	l.Info("user updated", "user_id", updated.ID)
	return updated, nil
}

// DeactivateUser flips an active user to inactive. Deactivated users release
// their email for reuse by new active users.
func (s *UserService) DeactivateUser(ctx context.Context, userID int64) (domain.User, error) {
	l := slogx.FromContext(ctx)

	var updated domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		u, err := tx.Users().GetUserByIDState(ctx, userID, domain.StateActive)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		u.State = domain.StateInactive
		if err := tx.Users().UpdateUser(ctx, u); err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	l.Info("user deactivated", "user_id", updated.ID)
	return updated, nil
}

// ReactivateUser flips an inactive user back to active, provided no other
// active user has since claimed their email.
func (s *UserService) ReactivateUser(ctx context.Context, userID int64) (domain.User, error) {
	l := slogx.FromContext(ctx)

	var updated domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		u, err := tx.Users().GetUserByIDState(ctx, userID, domain.StateInactive)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		_, err = tx.Users().GetUserByEmailState(ctx, u.Email, domain.StateActive)
		if err == nil {
			return ErrEmailTaken
		}
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		u.State = domain.StateActive
		if err := tx.Users().UpdateUser(ctx, u); err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	l.Info("user reactivated", "user_id", updated.ID)
	return updated, nil
}

// AssignRole points an active user at a role. The role may be in either
// state, matching how creation resolves roles.
func (s *UserService) AssignRole(ctx context.Context, userID, roleID int64) (domain.User, error) {
	l := slogx.FromContext(ctx)

	var updated domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		u, err := tx.Users().GetUserByIDState(ctx, userID, domain.StateActive)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		role, err := tx.Roles().GetRoleByID(ctx, roleID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrRoleNotFound
			}
			return err
		}

		u.RoleID = &role.ID
		u.Role = &role
		if err := tx.Users().UpdateUser(ctx, u); err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	l.Info("role assigned", "user_id", updated.ID, "role_id", roleID)
	return updated, nil
}

// UnassignRole clears an active user's role reference.
func (s *UserService) UnassignRole(ctx context.Context, userID int64) (domain.User, error) {
	l := slogx.FromContext(ctx)

	var updated domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		u, err := tx.Users().GetUserByIDState(ctx, userID, domain.StateActive)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		u.RoleID = nil
		u.Role = nil
		if err := tx.Users().UpdateUser(ctx, u); err != nil {
			return err
		}
		updated = u
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	l.Info("role unassigned", "user_id", updated.ID)
	return updated, nil
}
