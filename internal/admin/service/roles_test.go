package service

import (
	"context"
	"testing"

	"github.com/retailcore/staffd/internal/admin/domain"
	"github.com/retailcore/staffd/internal/admin/store"
	"github.com/retailcore/staffd/internal/admin/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func ptr[T any](v T) *T { return &v }

func TestCreateRole(t *testing.T) {
	ctx := context.Background()
	svc := &RolesService{Store: newTestStore(t)}

	t.Run("creates an active role", func(t *testing.T) {
		role, err := svc.CreateRole(ctx, "manager", []domain.Permission{domain.PermManageRoles, domain.PermViewReports})
		require.NoError(t, err)
		require.NotZero(t, role.ID)
		require.Equal(t, domain.StateActive, role.State)
		require.Equal(t, []domain.Permission{domain.PermManageRoles, domain.PermViewReports}, role.Permissions)
	})

	t.Run("rejects duplicate active name", func(t *testing.T) {
		_, err := svc.CreateRole(ctx, "manager", nil)
		require.ErrorIs(t, err, ErrRoleNameTaken)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		_, err := svc.CreateRole(ctx, "   ", nil)
		require.ErrorIs(t, err, ErrRoleNameRequired)
	})

	t.Run("rejects unknown permissions", func(t *testing.T) {
		_, err := svc.CreateRole(ctx, "weird", []domain.Permission{"LAUNCH_MISSILES"})
		require.ErrorIs(t, err, ErrUnknownPermission)
	})
}

func TestRoleNameReusableAfterDeactivation(t *testing.T) {
	ctx := context.Background()
	svc := &RolesService{Store: newTestStore(t)}

	original, err := svc.CreateRole(ctx, "cashier", []domain.Permission{domain.PermViewUser})
	require.NoError(t, err)

	_, err = svc.DeactivateRole(ctx, original.ID)
	require.NoError(t, err)

	// The name is free again because uniqueness only covers active roles
	replacement, err := svc.CreateRole(ctx, "cashier", nil)
	require.NoError(t, err)
	require.NotEqual(t, original.ID, replacement.ID)

	// The original cannot come back while the replacement holds the name
	_, err = svc.ReactivateRole(ctx, original.ID)
	require.ErrorIs(t, err, ErrRoleNameTaken)

	// Once the replacement steps aside, reactivation succeeds
	_, err = svc.DeactivateRole(ctx, replacement.ID)
	require.NoError(t, err)

	revived, err := svc.ReactivateRole(ctx, original.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StateActive, revived.State)
	require.Equal(t, []domain.Permission{domain.PermViewUser}, revived.Permissions)
}

func TestDeactivateRoleGuard(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	roles := &RolesService{Store: st}
	users := &UserService{Store: st}

	role, err := roles.CreateRole(ctx, "supervisor", nil)
	require.NoError(t, err)

	user, err := users.CreateUser(ctx, CreateUserInput{
		FirstName: "Maria",
		LastName:  "Lopez",
		Email:     "maria@example.com",
		Password:  "s3cret-pass",
		StoreID:   1,
		RoleID:    &role.ID,
	})
	require.NoError(t, err)

	t.Run("blocked while an active user references the role", func(t *testing.T) {
		_, err := roles.DeactivateRole(ctx, role.ID)
		require.ErrorIs(t, err, ErrRoleInUse)

		got, err := roles.GetRoleByID(ctx, role.ID)
		require.NoError(t, err)
		require.Equal(t, domain.StateActive, got.State)
	})

	t.Run("update flipping the role inactive hits the same guard", func(t *testing.T) {
		_, err := roles.UpdateRole(ctx, role.ID, domain.RolePatch{State: ptr(domain.StateInactive)})
		require.ErrorIs(t, err, ErrRoleInUse)
	})

	t.Run("allowed once the referencing user is inactive", func(t *testing.T) {
		_, err := users.DeactivateUser(ctx, user.ID)
		require.NoError(t, err)

		deactivated, err := roles.DeactivateRole(ctx, role.ID)
		require.NoError(t, err)
		require.Equal(t, domain.StateInactive, deactivated.State)
	})
}

func TestDeactivateRole(t *testing.T) {
	ctx := context.Background()
	svc := &RolesService{Store: newTestStore(t)}

	role, err := svc.CreateRole(ctx, "auditor", nil)
	require.NoError(t, err)

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.DeactivateRole(ctx, 9999)
		require.ErrorIs(t, err, ErrRoleNotFound)
	})

	t.Run("deactivates an active role", func(t *testing.T) {
		got, err := svc.DeactivateRole(ctx, role.ID)
		require.NoError(t, err)
		require.Equal(t, domain.StateInactive, got.State)
	})

	t.Run("already inactive looks like not found", func(t *testing.T) {
		_, err := svc.DeactivateRole(ctx, role.ID)
		require.ErrorIs(t, err, ErrRoleNotFound)
	})

	t.Run("reactivate only sees inactive roles", func(t *testing.T) {
		revived, err := svc.ReactivateRole(ctx, role.ID)
		require.NoError(t, err)
		require.Equal(t, domain.StateActive, revived.State)

		_, err = svc.ReactivateRole(ctx, role.ID)
		require.ErrorIs(t, err, ErrRoleNotFound)
	})
}

func TestUpdateRole(t *testing.T) {
	ctx := context.Background()
	svc := &RolesService{Store: newTestStore(t)}

	role, err := svc.CreateRole(ctx, "stocker", []domain.Permission{domain.PermViewUser})
	require.NoError(t, err)

	other, err := svc.CreateRole(ctx, "driver", nil)
	require.NoError(t, err)

	t.Run("empty patch is rejected", func(t *testing.T) {
		_, err := svc.UpdateRole(ctx, role.ID, domain.RolePatch{})
		require.ErrorIs(t, err, ErrEmptyPatch)
	})

	t.Run("renames when the new name is free", func(t *testing.T) {
		updated, err := svc.UpdateRole(ctx, role.ID, domain.RolePatch{Name: ptr("warehouse")})
		require.NoError(t, err)
		require.Equal(t, "warehouse", updated.Name)
		// Untouched fields survive
		require.Equal(t, []domain.Permission{domain.PermViewUser}, updated.Permissions)
	})

	t.Run("rejects a name held by another active role", func(t *testing.T) {
		_, err := svc.UpdateRole(ctx, role.ID, domain.RolePatch{Name: &other.Name})
		require.ErrorIs(t, err, ErrRoleNameTaken)
	})

	t.Run("keeping its own name is not a conflict", func(t *testing.T) {
		updated, err := svc.UpdateRole(ctx, role.ID, domain.RolePatch{
			Name:        ptr("warehouse"),
			Permissions: ptr([]domain.Permission{domain.PermViewReports}),
		})
		require.NoError(t, err)
		require.Equal(t, "warehouse", updated.Name)
		require.Equal(t, []domain.Permission{domain.PermViewReports}, updated.Permissions)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.UpdateRole(ctx, 12345, domain.RolePatch{Name: ptr("ghost")})
		require.ErrorIs(t, err, ErrRoleNotFound)
	})

	t.Run("state can be driven through update", func(t *testing.T) {
		updated, err := svc.UpdateRole(ctx, role.ID, domain.RolePatch{State: ptr(domain.StateInactive)})
		require.NoError(t, err)
		require.Equal(t, domain.StateInactive, updated.State)

		updated, err = svc.UpdateRole(ctx, role.ID, domain.RolePatch{State: ptr(domain.StateActive)})
		require.NoError(t, err)
		require.Equal(t, domain.StateActive, updated.State)
	})
}

func TestListRoles(t *testing.T) {
	ctx := context.Background()
	svc := &RolesService{Store: newTestStore(t)}

	a, err := svc.CreateRole(ctx, "alpha", nil)
	require.NoError(t, err)
	b, err := svc.CreateRole(ctx, "beta", nil)
	require.NoError(t, err)

	_, err = svc.DeactivateRole(ctx, b.ID)
	require.NoError(t, err)

	active, err := svc.ListActiveRoles(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, a.ID, active[0].ID)

	all, err := svc.ListAllRoles(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestListRolePermissions(t *testing.T) {
	ctx := context.Background()
	svc := &RolesService{Store: newTestStore(t)}

	withPerms, err := svc.CreateRole(ctx, "analyst", []domain.Permission{domain.PermViewReports})
	require.NoError(t, err)

	bare, err := svc.CreateRole(ctx, "trainee", nil)
	require.NoError(t, err)

	perms, err := svc.ListRolePermissions(ctx, withPerms.ID)
	require.NoError(t, err)
	require.Equal(t, []domain.Permission{domain.PermViewReports}, perms)

	perms, err = svc.ListRolePermissions(ctx, bare.ID)
	require.NoError(t, err)
	require.Empty(t, perms)

	_, err = svc.ListRolePermissions(ctx, 404)
	require.ErrorIs(t, err, ErrRoleNotFound)
}
