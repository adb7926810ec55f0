package service

import (
	"context"
	"testing"

	"github.com/retailcore/staffd/internal/admin/domain"
	"github.com/retailcore/staffd/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func seedRole(t *testing.T, svc *RolesService, name string, perms []domain.Permission) domain.Role {
	t.Helper()
	role, err := svc.CreateRole(context.Background(), name, perms)
	require.NoError(t, err)
	return role
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	roles := &RolesService{Store: st}
	users := &UserService{Store: st}

	role := seedRole(t, roles, "clerk", []domain.Permission{domain.PermViewUser})

	t.Run("creates an active user with hashed password", func(t *testing.T) {
		u, err := users.CreateUser(ctx, CreateUserInput{
			FirstName: "Ana",
			LastName:  "Reyes",
			Email:     "ana@example.com",
			Password:  "plaintext-pass",
			StoreID:   7,
			RoleID:    &role.ID,
		})
		require.NoError(t, err)
		require.NotZero(t, u.ID)
		require.Equal(t, domain.StateActive, u.State)
		require.Equal(t, int64(7), u.StoreID)
		require.NotNil(t, u.Role)
		require.Equal(t, role.ID, u.Role.ID)

		// Stored as an argon2 hash, never plaintext
		require.NotEqual(t, "plaintext-pass", u.PasswordHash)
		require.NoError(t, cryptox.VerifyPassword("plaintext-pass", u.PasswordHash))
	})

	t.Run("role is mandatory", func(t *testing.T) {
		_, err := users.CreateUser(ctx, CreateUserInput{
			FirstName: "Ben",
			Email:     "ben@example.com",
			Password:  "pw",
			StoreID:   7,
		})
		require.ErrorIs(t, err, ErrRoleRequired)
	})

	t.Run("role must exist", func(t *testing.T) {
		missing := int64(9999)
		_, err := users.CreateUser(ctx, CreateUserInput{
			FirstName: "Ben",
			Email:     "ben@example.com",
			Password:  "pw",
			StoreID:   7,
			RoleID:    &missing,
		})
		require.ErrorIs(t, err, ErrRoleNotFound)
	})

	t.Run("an inactive role is still assignable", func(t *testing.T) {
		parked := seedRole(t, roles, "seasonal", nil)
		_, err := roles.DeactivateRole(ctx, parked.ID)
		require.NoError(t, err)

		u, err := users.CreateUser(ctx, CreateUserInput{
			FirstName: "Sam",
			LastName:  "Ng",
			Email:     "sam@example.com",
			Password:  "pw",
			StoreID:   7,
			RoleID:    &parked.ID,
		})
		require.NoError(t, err)
		require.NotNil(t, u.Role)
		require.Equal(t, domain.StateInactive, u.Role.State)
	})

	t.Run("rejects duplicate active email", func(t *testing.T) {
		_, err := users.CreateUser(ctx, CreateUserInput{
			FirstName: "Ana II",
			Email:     "ana@example.com",
			Password:  "pw",
			StoreID:   7,
			RoleID:    &role.ID,
		})
		require.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestEmailReusableAfterDeactivation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	roles := &RolesService{Store: st}
	users := &UserService{Store: st}

	role := seedRole(t, roles, "clerk", nil)

	original, err := users.CreateUser(ctx, CreateUserInput{
		FirstName: "Ana",
		Email:     "ana@example.com",
		Password:  "pw",
		StoreID:   1,
		RoleID:    &role.ID,
	})
	require.NoError(t, err)

	_, err = users.DeactivateUser(ctx, original.ID)
	require.NoError(t, err)

	// The email is free again because uniqueness only covers active users
	replacement, err := users.CreateUser(ctx, CreateUserInput{
		FirstName: "Ana B",
		Email:     "ana@example.com",
		Password:  "pw",
		StoreID:   1,
		RoleID:    &role.ID,
	})
	require.NoError(t, err)
	require.NotEqual(t, original.ID, replacement.ID)

	// The original cannot come back while the replacement holds the email
	_, err = users.ReactivateUser(ctx, original.ID)
	require.ErrorIs(t, err, ErrEmailTaken)

	// Once the replacement steps aside, reactivation succeeds
	_, err = users.DeactivateUser(ctx, replacement.ID)
	require.NoError(t, err)

	revived, err := users.ReactivateUser(ctx, original.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StateActive, revived.State)
}

func TestDeactivateUser(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	roles := &RolesService{Store: st}
	users := &UserService{Store: st}

	role := seedRole(t, roles, "clerk", nil)
	u, err := users.CreateUser(ctx, CreateUserInput{
		FirstName: "Ana",
		Email:     "ana@example.com",
		Password:  "pw",
		StoreID:   1,
		RoleID:    &role.ID,
	})
	require.NoError(t, err)

	t.Run("unknown id", func(t *testing.T) {
		_, err := users.DeactivateUser(ctx, 9999)
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("deactivates then refuses a second time", func(t *testing.T) {
		got, err := users.DeactivateUser(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, domain.StateInactive, got.State)

		_, err = users.DeactivateUser(ctx, u.ID)
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("record survives, hidden from the active-only getter", func(t *testing.T) {
		_, err := users.GetUserByID(ctx, u.ID)
		require.ErrorIs(t, err, ErrUserNotFound)

		all, err := users.ListAllUsers(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		require.Equal(t, domain.StateInactive, all[0].State)
		require.Equal(t, "ana@example.com", all[0].Email)
	})
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	roles := &RolesService{Store: st}
	users := &UserService{Store: st}

	role := seedRole(t, roles, "clerk", nil)
	other := seedRole(t, roles, "manager", nil)

	u, err := users.CreateUser(ctx, CreateUserInput{
		FirstName: "Ana",
		LastName:  "Reyes",
		Email:     "ana@example.com",
		Password:  "pw",
		StoreID:   1,
		RoleID:    &role.ID,
	})
	require.NoError(t, err)

	neighbour, err := users.CreateUser(ctx, CreateUserInput{
		FirstName: "Ben",
		Email:     "ben@example.com",
		Password:  "pw",
		StoreID:   1,
		RoleID:    &role.ID,
	})
	require.NoError(t, err)

	t.Run("empty patch is rejected", func(t *testing.T) {
		_, err := users.UpdateUser(ctx, u.ID, domain.UserPatch{})
		require.ErrorIs(t, err, ErrEmptyPatch)
	})

	t.Run("patches only the provided fields", func(t *testing.T) {
		updated, err := users.UpdateUser(ctx, u.ID, domain.UserPatch{
			FirstName: ptr("Anita"),
			StoreID:   ptr(int64(3)),
		})
		require.NoError(t, err)
		require.Equal(t, "Anita", updated.FirstName)
		require.Equal(t, int64(3), updated.StoreID)
		require.Equal(t, "Reyes", updated.LastName)
		require.Equal(t, "ana@example.com", updated.Email)
	})

	t.Run("rejects an email held by another active user", func(t *testing.T) {
		_, err := users.UpdateUser(ctx, u.ID, domain.UserPatch{Email: ptr("ben@example.com")})
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("keeping their own email is not a conflict", func(t *testing.T) {
		updated, err := users.UpdateUser(ctx, u.ID, domain.UserPatch{
			Email:    ptr("ana@example.com"),
			LastName: ptr("Reyes-Cruz"),
		})
		require.NoError(t, err)
		require.Equal(t, "Reyes-Cruz", updated.LastName)
	})

	t.Run("changing role resolves the new role", func(t *testing.T) {
		updated, err := users.UpdateUser(ctx, u.ID, domain.UserPatch{RoleID: &other.ID})
		require.NoError(t, err)
		require.NotNil(t, updated.Role)
		require.Equal(t, other.ID, updated.Role.ID)

		missing := int64(9999)
		_, err = users.UpdateUser(ctx, u.ID, domain.UserPatch{RoleID: &missing})
		require.ErrorIs(t, err, ErrRoleNotFound)
	})

	t.Run("password change rehashes", func(t *testing.T) {
		updated, err := users.UpdateUser(ctx, u.ID, domain.UserPatch{Password: ptr("new-pass")})
		require.NoError(t, err)
		require.NoError(t, cryptox.VerifyPassword("new-pass", updated.PasswordHash))
		require.Error(t, cryptox.VerifyPassword("pw", updated.PasswordHash))
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := users.UpdateUser(ctx, 8888, domain.UserPatch{FirstName: ptr("Ghost")})
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	_ = neighbour
}

func TestListUsers(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	roles := &RolesService{Store: st}
	users := &UserService{Store: st}

	role := seedRole(t, roles, "clerk", nil)

	mk := func(email string, storeID int64) domain.User {
		u, err := users.CreateUser(ctx, CreateUserInput{
			FirstName: "U",
			Email:     email,
			Password:  "pw",
			StoreID:   storeID,
			RoleID:    &role.ID,
		})
		require.NoError(t, err)
		return u
	}

	a := mk("a@example.com", 1)
	b := mk("b@example.com", 1)
	c := mk("c@example.com", 2)

	_, err := users.DeactivateUser(ctx, b.ID)
	require.NoError(t, err)

	t.Run("active only", func(t *testing.T) {
		got, err := users.ListActiveUsers(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
	})

	t.Run("all states", func(t *testing.T) {
		got, err := users.ListAllUsers(ctx)
		require.NoError(t, err)
		require.Len(t, got, 3)
	})

	t.Run("by store filters to active members", func(t *testing.T) {
		got, err := users.ListUsersByStore(ctx, 1)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, a.ID, got[0].ID)

		got, err = users.ListUsersByStore(ctx, 2)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, c.ID, got[0].ID)

		got, err = users.ListUsersByStore(ctx, 42)
		require.NoError(t, err)
		require.Empty(t, got)
	})
}

func TestUserPermissionsAndRoleAssignment(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	roles := &RolesService{Store: st}
	users := &UserService{Store: st}

	role := seedRole(t, roles, "analyst", []domain.Permission{domain.PermViewReports, domain.PermViewUser})
	bare := seedRole(t, roles, "trainee", nil)

	u, err := users.CreateUser(ctx, CreateUserInput{
		FirstName: "Ana",
		Email:     "ana@example.com",
		Password:  "pw",
		StoreID:   1,
		RoleID:    &role.ID,
	})
	require.NoError(t, err)

	t.Run("permissions flow through the role", func(t *testing.T) {
		perms, err := users.ListUserPermissions(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, []domain.Permission{domain.PermViewReports, domain.PermViewUser}, perms)
	})

	t.Run("assigning a different role changes permissions", func(t *testing.T) {
		updated, err := users.AssignRole(ctx, u.ID, bare.ID)
		require.NoError(t, err)
		require.Equal(t, bare.ID, *updated.RoleID)

		perms, err := users.ListUserPermissions(ctx, u.ID)
		require.NoError(t, err)
		require.Empty(t, perms)
	})

	t.Run("assigning requires an existing role", func(t *testing.T) {
		_, err := users.AssignRole(ctx, u.ID, 9999)
		require.ErrorIs(t, err, ErrRoleNotFound)
	})

	t.Run("assigning requires an active user", func(t *testing.T) {
		_, err := users.DeactivateUser(ctx, u.ID)
		require.NoError(t, err)

		_, err = users.AssignRole(ctx, u.ID, role.ID)
		require.ErrorIs(t, err, ErrUserNotFound)

		_, err = users.ReactivateUser(ctx, u.ID)
		require.NoError(t, err)
	})

	t.Run("unassigning clears the role and the permissions", func(t *testing.T) {
		updated, err := users.UnassignRole(ctx, u.ID)
		require.NoError(t, err)
		require.Nil(t, updated.RoleID)
		require.Nil(t, updated.Role)

		perms, err := users.ListUserPermissions(ctx, u.ID)
		require.NoError(t, err)
		require.Empty(t, perms)
	})
}
