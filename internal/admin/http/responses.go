package http

import (
	"net/http"
	"strconv"

	"github.com/retailcore/staffd/internal/admin/domain"
	"github.com/retailcore/staffd/pkg/adminsdk"
)

// pathID parses the {id} path segment. Returns false after writing a 400 if
// the segment is not a positive integer.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		adminsdk.NewAdminError(http.StatusBadRequest, adminsdk.ErrorCodeInvalidArgument,
			"path parameter "+name+" must be a positive integer").WriteError(w)
		return 0, false
	}
	return id, true
}

func permissionStrings(perms []domain.Permission) []string {
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = p.String()
	}
	return out
}

func parsePermissions(raw []string) []domain.Permission {
	out := make([]domain.Permission, len(raw))
	for i, s := range raw {
		out[i] = domain.Permission(s)
	}
	return out
}

func toRoleResponse(role domain.Role) adminsdk.RoleResponse {
	return adminsdk.RoleResponse{
		ID:          role.ID,
		Name:        role.Name,
		Permissions: permissionStrings(role.Permissions),
		State:       role.State.String(),
		CreatedAt:   role.CreatedAt,
		UpdatedAt:   role.UpdatedAt,
	}
}

func toRoleResponses(roles []domain.Role) []adminsdk.RoleResponse {
	out := make([]adminsdk.RoleResponse, len(roles))
	for i, role := range roles {
		out[i] = toRoleResponse(role)
	}
	return out
}

func toUserResponse(u domain.User) adminsdk.UserResponse {
	resp := adminsdk.UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		StoreID:   u.StoreID,
		State:     u.State.String(),
		RoleID:    u.RoleID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.Role != nil {
		role := toRoleResponse(*u.Role)
		resp.Role = &role
	}
	return resp
}

func toUserResponses(users []domain.User) []adminsdk.UserResponse {
	out := make([]adminsdk.UserResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	return out
}
