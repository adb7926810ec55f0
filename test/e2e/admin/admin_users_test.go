package admin_test

import (
	"net/http"
	"testing"

	"github.com/retailcore/staffd/pkg/adminsdk"
	"github.com/stretchr/testify/require"
)

// TestUserLifecycle walks a user through create, update, deactivate and
// reactivate over the wire.
func TestUserLifecycle(t *testing.T) {
	baseURL, cleanup := setupAdminContainer(t)
	defer cleanup()

	client := adminsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	role := createRole(t, client, "Clerk", []string{"VIEW_USER"})
	user := createUser(t, client, "jo@example.com", role.ID)
	require.NotNil(t, user.Role)
	require.Equal(t, role.ID, user.Role.ID)

	// Duplicate active email is refused
	_, err := client.CreateUser(ctx, adminsdk.CreateUserRequest{
		FirstName: "Other",
		LastName:  "Person",
		Email:     "jo@example.com",
		Password:  "An0therSecret!",
		StoreID:   testStoreID,
		RoleID:    &role.ID,
	})
	assertAdminError(t, err, http.StatusConflict, adminsdk.ErrorCodeConflictingState)

	// Patch a couple of fields, the rest stay put
	updated, err := client.UpdateUser(ctx, user.ID, adminsdk.UpdateUserRequest{
		FirstName: ptr("Joanna"),
		Email:     ptr("joanna@example.com"),
	})
	require.NoError(t, err)
	require.Equal(t, "Joanna", updated.FirstName)
	require.Equal(t, "joanna@example.com", updated.Email)
	require.Equal(t, user.LastName, updated.LastName)

	// Deactivate frees the email, reactivation then conflicts
	_, err = client.DeactivateUser(ctx, user.ID)
	require.NoError(t, err)

	replacement := createUser(t, client, "joanna@example.com", role.ID)

	_, err = client.ReactivateUser(ctx, user.ID)
	assertAdminError(t, err, http.StatusConflict, adminsdk.ErrorCodeConflictingState)

	_, err = client.DeactivateUser(ctx, replacement.ID)
	require.NoError(t, err)

	reactivated, err := client.ReactivateUser(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "active", reactivated.State)
}

// TestUserRoleAssignment verifies role assignment and removal over the wire.
func TestUserRoleAssignment(t *testing.T) {
	baseURL, cleanup := setupAdminContainer(t)
	defer cleanup()

	client := adminsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	cashier := createRole(t, client, "Cashier", []string{"VIEW_USER"})
	manager := createRole(t, client, "Manager", []string{"VIEW_USER", "MANAGE_ROLES", "VIEW_REPORTS"})
	user := createUser(t, client, "sam@example.com", cashier.ID)

	perms, err := client.ListUserPermissions(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"VIEW_USER"}, perms)

	// Promote
	promoted, err := client.AssignRole(ctx, user.ID, manager.ID)
	require.NoError(t, err)
	require.NotNil(t, promoted.RoleID)
	require.Equal(t, manager.ID, *promoted.RoleID)

	perms, err = client.ListUserPermissions(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, perms, 3)

	// Strip the role entirely
	stripped, err := client.UnassignRole(ctx, user.ID)
	require.NoError(t, err)
	require.Nil(t, stripped.RoleID)

	perms, err = client.ListUserPermissions(ctx, user.ID)
	require.NoError(t, err)
	require.Empty(t, perms)

	// Assigning an unknown role is a not_found
	_, err = client.AssignRole(ctx, user.ID, 9999)
	assertAdminError(t, err, http.StatusNotFound, adminsdk.ErrorCodeNotFound)
}

// TestUserListings verifies active, all and per-store listings.
func TestUserListings(t *testing.T) {
	baseURL, cleanup := setupAdminContainer(t)
	defer cleanup()

	client := adminsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	role := createRole(t, client, "Clerk", nil)

	here := createUser(t, client, "here@example.com", role.ID)
	gone := createUser(t, client, "gone@example.com", role.ID)

	elsewhere, err := client.CreateUser(ctx, adminsdk.CreateUserRequest{
		FirstName: "Far",
		LastName:  "Away",
		Email:     "far@example.com",
		Password:  "Sup3rSecret!",
		StoreID:   testStoreID + 1,
		RoleID:    &role.ID,
	})
	require.NoError(t, err)

	_, err = client.DeactivateUser(ctx, gone.ID)
	require.NoError(t, err)

	active, err := client.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)

	all, err := client.ListAllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	atStore, err := client.ListStoreUsers(ctx, testStoreID)
	require.NoError(t, err)
	require.Len(t, atStore, 1)
	require.Equal(t, here.ID, atStore[0].ID)

	otherStore, err := client.ListStoreUsers(ctx, testStoreID+1)
	require.NoError(t, err)
	require.Len(t, otherStore, 1)
	require.Equal(t, elsewhere.ID, otherStore[0].ID)
}

// TestUserValidation verifies the service rejects malformed user requests.
func TestUserValidation(t *testing.T) {
	baseURL, cleanup := setupAdminContainer(t)
	defer cleanup()

	client := adminsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	role := createRole(t, client, "Clerk", nil)

	// Role is mandatory at creation
	_, err := client.CreateUser(ctx, adminsdk.CreateUserRequest{
		FirstName: "No",
		LastName:  "Role",
		Email:     "norole@example.com",
		Password:  "Sup3rSecret!",
		StoreID:   testStoreID,
	})
	assertAdminError(t, err, http.StatusBadRequest, adminsdk.ErrorCodeInvalidArgument)

	user := createUser(t, client, "valid@example.com", role.ID)
	other := createUser(t, client, "taken@example.com", role.ID)

	// Empty patch is refused
	_, err = client.UpdateUser(ctx, user.ID, adminsdk.UpdateUserRequest{})
	assertAdminError(t, err, http.StatusBadRequest, adminsdk.ErrorCodeInvalidArgument)

	// Taking another active user's email fails as a validation error on update
	_, err = client.UpdateUser(ctx, user.ID, adminsdk.UpdateUserRequest{Email: ptr(other.Email)})
	assertAdminError(t, err, http.StatusBadRequest, adminsdk.ErrorCodeInvalidArgument)

	// Unknown ids surface as not_found
	_, err = client.GetUser(ctx, 9999)
	assertAdminError(t, err, http.StatusNotFound, adminsdk.ErrorCodeNotFound)
}
