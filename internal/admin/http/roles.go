package http

import (
	"encoding/json"
	"net/http"

	"github.com/retailcore/staffd/internal/admin/domain"
	"github.com/retailcore/staffd/internal/admin/service"
	"github.com/retailcore/staffd/pkg/adminsdk"
	"github.com/retailcore/staffd/pkg/httpx"
	"github.com/retailcore/staffd/pkg/slogx"
)

type RolesHandler struct {
	RolesService *service.RolesService
}

// HandleCreate handles role creation
//
//	@Summary		Create a role
//	@Description	Creates a new active role. The name must be unique among active roles;
//	@Description	inactive roles may share it.
//	@Tags			Roles
//	@Accept			json
//	@Produce		json
//	@Param			request	body		adminsdk.CreateRoleRequest	true	"Role definition"
//	@Success		201		{object}	adminsdk.RoleResponse		"Created role"
//	@Failure		400		{object}	adminsdk.ErrorResponse		"Invalid request"
//	@Failure		409		{object}	adminsdk.ErrorResponse		"Name held by another active role"
//	@Failure		500		{object}	adminsdk.ErrorResponse		"Internal server error"
//	@Router			/v1/roles [post].
func (h *RolesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req adminsdk.CreateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		adminsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	role, err := h.RolesService.CreateRole(ctx, req.Name, parsePermissions(req.Permissions))
	if err != nil {
		log.Warn("role creation failed", "error", err)
		mapServiceError(err, http.StatusConflict).WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toRoleResponse(role))
}

// HandleGet handles fetching a single role
//
//	@Summary		Get a role
//	@Description	Returns an active role by id. Inactive roles are only visible
//	@Description	through the all-states listing.
//	@Tags			Roles
//	@Produce		json
//	@Param			id	path		int						true	"Role ID"
//	@Success		200	{object}	adminsdk.RoleResponse	"Role"
//	@Failure		404	{object}	adminsdk.ErrorResponse	"Role not found"
//	@Failure		500	{object}	adminsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/roles/{id} [get].
func (h *RolesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	role, err := h.RolesService.GetRoleByID(ctx, id)
	if err != nil {
		mapServiceError(err, http.StatusConflict).WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toRoleResponse(role))
}

// HandleListActive handles listing active roles
//
//	@Summary		List active roles
//	@Description	Returns the roles currently in the active state.
//	@Tags			Roles
//	@Produce		json
//	@Success		200	{array}		adminsdk.RoleResponse	"Active roles"
//	@Failure		500	{object}	adminsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/roles [get].
func (h *RolesHandler) HandleListActive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	roles, err := h.RolesService.ListActiveRoles(ctx)
	if err != nil {
		log.Error("failed to list roles", "error", err)
		adminsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toRoleResponses(roles))
}

// HandleListAll handles listing every role
//
//	@Summary		List all roles
//	@Description	Returns every role in the system, active and inactive.
//	@Tags			Roles
//	@Produce		json
//	@Success		200	{array}		adminsdk.RoleResponse	"All roles"
//	@Failure		500	{object}	adminsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/roles/all [get].
func (h *RolesHandler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	roles, err := h.RolesService.ListAllRoles(ctx)
	if err != nil {
		log.Error("failed to list roles", "error", err)
		adminsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toRoleResponses(roles))
}

// HandleListPermissions handles listing a role's permissions
//
//	@Summary		List role permissions
//	@Description	Returns the permission tags carried by a role. A role without
//	@Description	permissions yields an empty list.
//	@Tags			Roles
//	@Produce		json
//	@Param			id	path		int								true	"Role ID"
//	@Success		200	{object}	adminsdk.PermissionsResponse	"Permissions"
//	@Failure		404	{object}	adminsdk.ErrorResponse			"Role not found"
//	@Failure		500	{object}	adminsdk.ErrorResponse			"Internal server error"
//	@Router			/v1/roles/{id}/permissions [get].
func (h *RolesHandler) HandleListPermissions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	perms, err := h.RolesService.ListRolePermissions(ctx, id)
	if err != nil {
		mapServiceError(err, http.StatusConflict).WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, adminsdk.PermissionsResponse{
		Permissions: permissionStrings(perms),
	})
}

// HandleUpdate handles partial role updates
//
//	@Summary		Update a role
//	@Description	Applies a partial update. Omitted fields are left untouched. Renaming
//	@Description	to a name held by another active role fails, as does deactivating a
//	@Description	role that active users still reference.
//	@Tags			Roles
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Role ID"
//	@Param			request	body		adminsdk.UpdateRoleRequest	true	"Fields to change"
//	@Success		200		{object}	adminsdk.RoleResponse		"Updated role"
//	@Failure		400		{object}	adminsdk.ErrorResponse		"Invalid request or duplicate name"
//	@Failure		404		{object}	adminsdk.ErrorResponse		"Role not found"
//	@Failure		409		{object}	adminsdk.ErrorResponse		"Role still referenced by active users"
//	@Failure		500		{object}	adminsdk.ErrorResponse		"Internal server error"
//	@Router			/v1/roles/{id} [put].
func (h *RolesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req adminsdk.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		adminsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	patch := domain.RolePatch{Name: req.Name}
	if req.Permissions != nil {
		perms := parsePermissions(*req.Permissions)
		patch.Permissions = &perms
	}
	if req.State != nil {
		state := domain.State(*req.State)
		patch.State = &state
	}

	role, err := h.RolesService.UpdateRole(ctx, id, patch)
	if err != nil {
		log.Warn("role update failed", "role_id", id, "error", err)
		mapServiceError(err, http.StatusBadRequest).WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toRoleResponse(role))
}

// HandleDeactivate handles role soft-deletion
//
//	@Summary		Deactivate a role
//	@Description	Flips an active role to inactive. Refused while active users still
//	@Description	reference the role.
//	@Tags			Roles
//	@Produce		json
//	@Param			id	path		int						true	"Role ID"
//	@Success		200	{object}	adminsdk.RoleResponse	"Deactivated role"
//	@Failure		404	{object}	adminsdk.ErrorResponse	"No active role with that id"
//	@Failure		409	{object}	adminsdk.ErrorResponse	"Role still referenced by active users"
//	@Failure		500	{object}	adminsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/roles/{id} [delete].
func (h *RolesHandler) HandleDeactivate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	role, err := h.RolesService.DeactivateRole(ctx, id)
	if err != nil {
		log.Warn("role deactivation failed", "role_id", id, "error", err)
		mapServiceError(err, http.StatusConflict).WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toRoleResponse(role))
}

// HandleReactivate handles bringing a role back
//
//	@Summary		Reactivate a role
//	@Description	Flips an inactive role back to active, provided no other active role
//	@Description	has claimed its name in the meantime.
//	@Tags			Roles
//	@Produce		json
//	@Param			id	path		int						true	"Role ID"
//	@Success		200	{object}	adminsdk.RoleResponse	"Reactivated role"
//	@Failure		404	{object}	adminsdk.ErrorResponse	"No inactive role with that id"
//	@Failure		409	{object}	adminsdk.ErrorResponse	"Name claimed by another active role"
//	@Failure		500	{object}	adminsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/roles/{id}/reactivate [post].
func (h *RolesHandler) HandleReactivate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	role, err := h.RolesService.ReactivateRole(ctx, id)
	if err != nil {
		log.Warn("role reactivation failed", "role_id", id, "error", err)
		mapServiceError(err, http.StatusConflict).WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toRoleResponse(role))
}
