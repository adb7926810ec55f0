package adminsdk

import (
	"context"
	"fmt"
	"net/http"
)

// CreateUser registers a new active user.
func (c *SDKClient) CreateUser(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/users", req)
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusCreated); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUser fetches an active user by id.
func (c *SDKClient) GetUser(ctx context.Context, id int64) (*UserResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/v1/users/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers returns the active users.
func (c *SDKClient) ListUsers(ctx context.Context) ([]UserResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/users", nil, nil)
	if err != nil {
		return nil, err
	}

	var users []UserResponse
	if err := decodeJSON(resp, &users, http.StatusOK); err != nil {
		return nil, err
	}
	return users, nil
}

// ListAllUsers returns every user, active and inactive.
func (c *SDKClient) ListAllUsers(ctx context.Context) ([]UserResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/users/all", nil, nil)
	if err != nil {
		return nil, err
	}

	var users []UserResponse
	if err := decodeJSON(resp, &users, http.StatusOK); err != nil {
		return nil, err
	}
	return users, nil
}

// ListStoreUsers returns the active users assigned to a store.
func (c *SDKClient) ListStoreUsers(ctx context.Context, storeID int64) ([]UserResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/v1/stores/%d/users", storeID), nil, nil)
	if err != nil {
		return nil, err
	}

	var users []UserResponse
	if err := decodeJSON(resp, &users, http.StatusOK); err != nil {
		return nil, err
	}
	return users, nil
}

// ListUserPermissions returns the permission tags a user holds through their role.
func (c *SDKClient) ListUserPermissions(ctx context.Context, id int64) ([]string, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/v1/users/%d/permissions", id), nil, nil)
	if err != nil {
		return nil, err
	}

	var perms PermissionsResponse
	if err := decodeJSON(resp, &perms, http.StatusOK); err != nil {
		return nil, err
	}
	return perms.Permissions, nil
}

// UpdateUser applies a partial update to a user.
func (c *SDKClient) UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) (*UserResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/v1/users/%d", id), req)
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeactivateUser soft-deletes a user, releasing their email for reuse.
func (c *SDKClient) DeactivateUser(ctx context.Context, id int64) (*UserResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/v1/users/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

// ReactivateUser brings an inactive user back to active.
func (c *SDKClient) ReactivateUser(ctx context.Context, id int64) (*UserResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, fmt.Sprintf("/v1/users/%d/reactivate", id), nil, nil)
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

// AssignRole points an active user at a role.
func (c *SDKClient) AssignRole(ctx context.Context, userID, roleID int64) (*UserResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/v1/users/%d/role", userID), AssignRoleRequest{RoleID: roleID})
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

// UnassignRole clears an active user's role.
func (c *SDKClient) UnassignRole(ctx context.Context, userID int64) (*UserResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/v1/users/%d/role", userID), nil, nil)
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}
