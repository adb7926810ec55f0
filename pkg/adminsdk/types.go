package adminsdk

import "time"

// ErrorResponse is the wire shape of every error payload the service emits.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	Timestamp        string `json:"timestamp"`
}

// RoleResponse is the wire representation of a role.
type RoleResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Permissions []string  `json:"permissions"`
	State       string    `json:"state"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateRoleRequest creates a new role. New roles always start active.
type CreateRoleRequest struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions,omitempty"`
}

// UpdateRoleRequest is a partial update; omitted fields are left untouched.
type UpdateRoleRequest struct {
	Name        *string   `json:"name,omitempty"`
	Permissions *[]string `json:"permissions,omitempty"`
	State       *string   `json:"state,omitempty"`
}

// UserResponse is the wire representation of a user. The password hash never
// leaves the service.
type UserResponse struct {
	ID        int64         `json:"id"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	Email     string        `json:"email"`
	StoreID   int64         `json:"store_id"`
	State     string        `json:"state"`
	RoleID    *int64        `json:"role_id,omitempty"`
	Role      *RoleResponse `json:"role,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// CreateUserRequest registers a new user. RoleID is mandatory; the password
// arrives in plaintext over TLS and is hashed by the service.
type CreateUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	StoreID   int64  `json:"store_id"`
	RoleID    *int64 `json:"role_id"`
}

// UpdateUserRequest is a partial update; omitted fields are left untouched.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Password  *string `json:"password,omitempty"`
	StoreID   *int64  `json:"store_id,omitempty"`
	RoleID    *int64  `json:"role_id,omitempty"`
	State     *string `json:"state,omitempty"`
}

// AssignRoleRequest points a user at a role.
type AssignRoleRequest struct {
	RoleID int64 `json:"role_id"`
}

// PermissionsResponse lists the permission tags of a role or user.
type PermissionsResponse struct {
	Permissions []string `json:"permissions"`
}

// HealthResponse is returned by the liveness and readiness endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}
