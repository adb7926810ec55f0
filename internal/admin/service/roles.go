package service

import (
	"context"
	"errors"
	"strings"

	"github.com/retailcore/staffd/internal/admin/domain"
	"github.com/retailcore/staffd/internal/admin/store"
	"github.com/retailcore/staffd/pkg/slogx"
)

var (
	ErrRoleNotFound      = errors.New("role not found")
	ErrRoleNameTaken     = errors.New("an active role with that name already exists")
	ErrRoleInUse         = errors.New("role is referenced by active users")
	ErrRoleNameRequired  = errors.New("role name is required")
	ErrUnknownPermission = errors.New("unknown permission")
	ErrInvalidState      = errors.New("invalid state")
	ErrEmptyPatch        = errors.New("no fields to update")
)

type RolesService struct {
	Store store.Store
}

// CreateRole creates a new active role. The name must not collide with any
// other active role; inactive roles may share it.
func (s *RolesService) CreateRole(ctx context.Context, name string, permissions []domain.Permission) (domain.Role, error) {
	l := slogx.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Role{}, ErrRoleNameRequired
	}
	if err := validatePermissions(permissions); err != nil {
		return domain.Role{}, err
	}

	var created domain.Role
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// Uniqueness only matters among active roles
		_, err := tx.Roles().GetRoleByNameState(ctx, name, domain.StateActive)
		if err == nil {
			return ErrRoleNameTaken
		}
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		// New roles always start active, regardless of what the caller sent
		created, err = tx.Roles().CreateRole(ctx, domain.Role{
			Name:        name,
			Permissions: permissions,
			State:       domain.StateActive,
		})
		return err
	})
	if err != nil {
		return domain.Role{}, err
	}

	l.Info("role created", "role_id", created.ID, "name", created.Name)
	return created, nil
}

// GetRoleByID fetches an active role by its ID. Inactive roles surface only
// through ListAllRoles.
func (s *RolesService) GetRoleByID(ctx context.Context, roleID int64) (domain.Role, error) {
	role, err := s.Store.Roles().GetRoleByIDState(ctx, roleID, domain.StateActive)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Role{}, ErrRoleNotFound
	}
	return role, err
}

// ListActiveRoles returns the roles currently in the active state.
func (s *RolesService) ListActiveRoles(ctx context.Context) ([]domain.Role, error) {
	return s.Store.Roles().ListRolesByState(ctx, domain.StateActive)
}

// ListAllRoles returns every role, active and inactive.
func (s *RolesService) ListAllRoles(ctx context.Context) ([]domain.Role, error) {
	return s.Store.Roles().ListAllRoles(ctx)
}

// ListRolePermissions returns the permission tags of a role. A role without
// permissions yields an empty slice, not an error.
func (s *RolesService) ListRolePermissions(ctx context.Context, roleID int64) ([]domain.Permission, error) {
	role, err := s.GetRoleByID(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if role.Permissions == nil {
		return []domain.Permission{}, nil
	}
	return role.Permissions, nil
}

// UpdateRole applies a partial update to a role. Nil patch fields are left
// untouched. Renaming checks active-name uniqueness only when the name
// actually changes, and flipping an active role inactive runs the same
// dependent-user guard as DeactivateRole.
func (s *RolesService) UpdateRole(ctx context.Context, roleID int64, patch domain.RolePatch) (domain.Role, error) {
	l := slogx.FromContext(ctx)

	if patch.IsZero() {
		return domain.Role{}, ErrEmptyPatch
	}
	if patch.State != nil && !patch.State.IsValid() {
		return domain.Role{}, ErrInvalidState
	}
	if patch.Permissions != nil {
		if err := validatePermissions(*patch.Permissions); err != nil {
			return domain.Role{}, err
		}
	}

	var updated domain.Role
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		role, err := tx.Roles().GetRoleByID(ctx, roleID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrRoleNotFound
			}
			return err
		}

		wasActive := role.IsActive()

		if patch.Name != nil {
			name := strings.TrimSpace(*patch.Name)
			if name == "" {
				return ErrRoleNameRequired
			}
			role.Name = name
		}
		if patch.Permissions != nil {
			role.Permissions = *patch.Permissions
		}
		if patch.State != nil {
			role.State = *patch.State
		}

		// Deactivating through update is subject to the same guard as the
		// dedicated deactivate operation.
		if wasActive && !role.IsActive() {
			count, err := tx.Users().CountActiveUsersByRole(ctx, role.ID)
			if err != nil {
				return err
			}
			if count > 0 {
				return ErrRoleInUse
			}
		}

		// If the role ends up active, its name must be free among the other
		// active roles.
		if role.IsActive() {
			existing, err := tx.Roles().GetRoleByNameState(ctx, role.Name, domain.StateActive)
			if err == nil && existing.ID != role.ID {
				return ErrRoleNameTaken
			}
			if err != nil && !errors.Is(err, store.ErrNotFound) {
				return err
			}
		}

		if err := tx.Roles().UpdateRole(ctx, role); err != nil {
			return err
		}
		updated = role
		return nil
	})
	if err != nil {
		return domain.Role{}, err
	}

	l.Info("role updated", "role_id", updated.ID)
	return updated, nil
}

// DeactivateRole flips an active role to inactive. It refuses with
// ErrRoleInUse while any active user still references the role.
func (s *RolesService) DeactivateRole(ctx context.Context, roleID int64) (domain.Role, error) {
	l := slogx.FromContext(ctx)

	var updated domain.Role
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		role, err := tx.Roles().GetRoleByIDState(ctx, roleID, domain.StateActive)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrRoleNotFound
			}
			return err
		}

		count, err := tx.Users().CountActiveUsersByRole(ctx, role.ID)
		if err != nil {
			return err
		}
		if count > 0 {
			l.Warn("refusing to deactivate role with active users",
				"role_id", role.ID, "active_users", count)
			return ErrRoleInUse
		}

		role.State = domain.StateInactive
		if err := tx.Roles().UpdateRole(ctx, role); err != nil {
			return err
		}
		updated = role
		return nil
	})
	if err != nil {
		return domain.Role{}, err
	}

	l.Info("role deactivated", "role_id", updated.ID)
	return updated, nil
}

// ReactivateRole flips an inactive role back to active, provided no other
// active role has since claimed its name.
func (s *RolesService) ReactivateRole(ctx context.Context, roleID int64) (domain.Role, error) {
	l := slogx.FromContext(ctx)

	var updated domain.Role
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		role, err := tx.Roles().GetRoleByIDState(ctx, roleID, domain.StateInactive)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrRoleNotFound
			}
			return err
		}

		_, err = tx.Roles().GetRoleByNameState(ctx, role.Name, domain.StateActive)
		if err == nil {
			return ErrRoleNameTaken
		}
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		role.State = domain.StateActive
		if err := tx.Roles().UpdateRole(ctx, role); err != nil {
			return err
		}
		updated = role
		return nil
	})
	if err != nil {
		return domain.Role{}, err
	}

	l.Info("role reactivated", "role_id", updated.ID)
	return updated, nil
}

func validatePermissions(perms []domain.Permission) error {
	for _, p := range perms {
		if !p.IsKnown() {
			return ErrUnknownPermission
		}
	}
	return nil
}
