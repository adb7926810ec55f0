package adminsdk

import (
	"context"
	"fmt"
	"net/http"
)

// CreateRole creates a new active role.
func (c *SDKClient) CreateRole(ctx context.Context, req CreateRoleRequest) (*RoleResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/roles", req)
	if err != nil {
		return nil, err
	}

	var role RoleResponse
	if err := decodeJSON(resp, &role, http.StatusCreated); err != nil {
		return nil, err
	}
	return &role, nil
}

// GetRole fetches an active role by id.
func (c *SDKClient) GetRole(ctx context.Context, id int64) (*RoleResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/v1/roles/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}

	var role RoleResponse
	if err := decodeJSON(resp, &role, http.StatusOK); err != nil {
		return nil, err
	}
	return &role, nil
}

// ListRoles returns the active roles.
func (c *SDKClient) ListRoles(ctx context.Context) ([]RoleResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/roles", nil, nil)
	if err != nil {
		return nil, err
	}

	var roles []RoleResponse
	if err := decodeJSON(resp, &roles, http.StatusOK); err != nil {
		return nil, err
	}
	return roles, nil
}

// ListAllRoles returns every role, active and inactive.
func (c *SDKClient) ListAllRoles(ctx context.Context) ([]RoleResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/roles/all", nil, nil)
	if err != nil {
		return nil, err
	}

	var roles []RoleResponse
	if err := decodeJSON(resp, &roles, http.StatusOK); err != nil {
		return nil, err
	}
	return roles, nil
}

// ListRolePermissions returns the permission tags of a role.
func (c *SDKClient) ListRolePermissions(ctx context.Context, id int64) ([]string, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/v1/roles/%d/permissions", id), nil, nil)
	if err != nil {
		return nil, err
	}

	var perms PermissionsResponse
	if err := decodeJSON(resp, &perms, http.StatusOK); err != nil {
		return nil, err
	}
	return perms.Permissions, nil
}

// UpdateRole applies a partial update to a role.
func (c *SDKClient) UpdateRole(ctx context.Context, id int64, req UpdateRoleRequest) (*RoleResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/v1/roles/%d", id), req)
	if err != nil {
		return nil, err
	}

	var role RoleResponse
	if err := decodeJSON(resp, &role, http.StatusOK); err != nil {
		return nil, err
	}
	return &role, nil
}

// DeactivateRole soft-deletes a role. Fails with a conflicting_state error
// while active users still reference it.
func (c *SDKClient) DeactivateRole(ctx context.Context, id int64) (*RoleResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/v1/roles/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}

	var role RoleResponse
	if err := decodeJSON(resp, &role, http.StatusOK); err != nil {
		return nil, err
	}
	return &role, nil
}

// ReactivateRole brings an inactive role back to active.
func (c *SDKClient) ReactivateRole(ctx context.Context, id int64) (*RoleResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, fmt.Sprintf("/v1/roles/%d/reactivate", id), nil, nil)
	if err != nil {
		return nil, err
	}

	var role RoleResponse
	if err := decodeJSON(resp, &role, http.StatusOK); err != nil {
		return nil, err
	}
	return &role, nil
}
