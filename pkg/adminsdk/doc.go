/*
Package adminsdk provides a client SDK for the staffd administration service.

# Overview

The SDK wraps the service's REST API: user and role administration with a
soft-delete lifecycle. Records are never hard-deleted; DELETE endpoints flip
them to the inactive state and dedicated reactivate endpoints bring them back.

Create a client and call the typed methods:

	client := adminsdk.NewSDKClient("https://staff.example.com")

	role, err := client.CreateRole(ctx, adminsdk.CreateRoleRequest{
		Name:        "manager",
		Permissions: []string{"MANAGE_ROLES", "VIEW_REPORTS"},
	})

	user, err := client.CreateUser(ctx, adminsdk.CreateUserRequest{
		FirstName: "Ana",
		LastName:  "Reyes",
		Email:     "ana@example.com",
		Password:  "initial-password",
		StoreID:   7,
		RoleID:    &role.ID,
	})

# Lifecycle

Deactivation is reversible:

	_, err = client.DeactivateUser(ctx, user.ID)
	_, err = client.ReactivateUser(ctx, user.ID)

Uniqueness (role names, user emails) only holds among active records, so a
reactivation can fail with a conflict if another active record has claimed
the value in the meantime.

# Error Handling

Failed requests return *AdminError carrying the HTTP status, a machine
readable code, and a description:

	_, err := client.DeactivateRole(ctx, role.ID)
	var adminErr *adminsdk.AdminError
	if errors.As(err, &adminErr) && adminErr.Code == adminsdk.ErrorCodeConflictingState {
		// role still has active users
	}
*/
package adminsdk
