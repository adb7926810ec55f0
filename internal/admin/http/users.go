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

type UserHandler struct {
	UserService *service.UserService
}

// HandleCreate handles user registration
//
//	@Summary		Create a user
//	@Description	Registers a new active user. The email must be unique among active
//	@Description	users and a role id is mandatory, though the role itself may be
//	@Description	inactive.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		adminsdk.CreateUserRequest	true	"User details"
//	@Success		201		{object}	adminsdk.UserResponse		"Created user"
//	@Failure		400		{object}	adminsdk.ErrorResponse		"Invalid request"
//	@Failure		409		{object}	adminsdk.ErrorResponse		"Email held by another active user"
//	@Failure		500		{object}	adminsdk.ErrorResponse		"Internal server error"
//	@Router			/v1/users [post].
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req adminsdk.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		adminsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.UserService.CreateUser(ctx, service.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		StoreID:   req.StoreID,
		RoleID:    req.RoleID,
	})
	if err != nil {
		log.Warn("user creation failed", "error", err)
		mapServiceError(err, http.StatusConflict).WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(user))
}

// HandleGet handles fetching a single user
//
//	@Summary		Get a user
//	@Description	Returns an active user by id, with the referenced role embedded
//	@Description	when one is assigned. Inactive users are only visible through the
//	@Description	all-states listing.
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		int						true	"User ID"
//	@Success		200	{object}	adminsdk.UserResponse	"User"
//	@Failure		404	{object}	adminsdk.ErrorResponse	"User not found"
//	@Failure		500	{object}	adminsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/users/{id} [get].
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.UserService.GetUserByID(ctx, id)
	if err != nil {
		mapServiceError(err, http.StatusConflict).WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// HandleListActive handles listing active users
//
//	@Summary		List active users
//	@Description	Returns the users currently in the active state.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{array}		adminsdk.UserResponse	"Active users"
//	@Failure		500	{object}	adminsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/users [get].
func (h *UserHandler) HandleListActive(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	users, err := h.UserService.ListActiveUsers(ctx)
	if err != nil {
		log.Error("failed to list users", "error", err)
		adminsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponses(users))
}

// HandleListAll handles listing every user
//
//	@Summary		List all users
//	@Description	Returns every user in the system, active and inactive.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{array}		adminsdk.UserResponse	"All users"
//	@Failure		500	{object}	adminsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/users/all [get].
func (h *UserHandler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	users, err := h.UserService.ListAllUsers(ctx)
	if err != nil {
		log.Error("failed to list users", "error", err)
		adminsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponses(users))
}

// HandleListByStore handles listing a store's active users
//
//	@Summary		List store users
//	@Description	Returns the active users assigned to a store.
//	@Tags			Users
//	@Produce		json
//	@Param			storeID	path		int						true	"Store ID"
//	@Success		200		{array}		adminsdk.UserResponse	"Active users at the store"
//	@Failure		500		{object}	adminsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/stores/{storeID}/users [get].
func (h *UserHandler) HandleListByStore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	storeID, ok := pathID(w, r, "storeID")
	if !ok {
		return
	}

	users, err := h.UserService.ListUsersByStore(ctx, storeID)
	if err != nil {
		log.Error("failed to list store users", "store_id", storeID, "error", err)
		adminsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponses(users))
}

// HandleListPermissions handles listing a user's effective permissions
//
//	@Summary		List user permissions
//	@Description	Returns the permission tags the user holds through their role. A user
//	@Description	without a role yields an empty list.
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		int								true	"User ID"
//	@Success		200	{object}	adminsdk.PermissionsResponse	"Permissions"
//	@Failure		404	{object}	adminsdk.ErrorResponse			"User not found"
//	@Failure		500	{object}	adminsdk.ErrorResponse			"Internal server error"
//	@Router			/v1/users/{id}/permissions [get].
func (h *UserHandler) HandleListPermissions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	perms, err := h.UserService.ListUserPermissions(ctx, id)
	if err != nil {
		mapServiceError(err, http.StatusConflict).WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, adminsdk.PermissionsResponse{
		Permissions: permissionStrings(perms),
	})
}

// HandleUpdate handles partial user updates
//
//	@Summary		Update a user
//	@Description	Applies a partial update. Omitted fields are left untouched. Changing
//	@Description	the email to one held by another active user fails. A new password is
//	@Description	re-hashed before storage.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"User ID"
//	@Param			request	body		adminsdk.UpdateUserRequest	true	"Fields to change"
//	@Success		200		{object}	adminsdk.UserResponse		"Updated user"
//	@Failure		400		{object}	adminsdk.ErrorResponse		"Invalid request or duplicate email"
//	@Failure		404		{object}	adminsdk.ErrorResponse		"User not found"
//	@Failure		500		{object}	adminsdk.ErrorResponse		"Internal server error"
//	@Router			/v1/users/{id} [put].
func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req adminsdk.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		adminsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	patch := domain.UserPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		StoreID:   req.StoreID,
		RoleID:    req.RoleID,
	}
	if req.State != nil {
		state := domain.State(*req.State)
		patch.State = &state
	}

	user, err := h.UserService.UpdateUser(ctx, id, patch)
	if err != nil {
		log.Warn("user update failed", "user_id", id, "error", err)
		mapServiceError(err, http.StatusBadRequest).WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// HandleDeactivate handles user soft-deletion
//
//	@Summary		Deactivate a user
//	@Description	Flips an active user to inactive. The record is retained and the
//	@Description	email becomes reusable by new active users.
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		int						true	"User ID"
//	@Success		200	{object}	adminsdk.UserResponse	"Deactivated user"
//	@Failure		404	{object}	adminsdk.ErrorResponse	"No active user with that id"
//	@Failure		500	{object}	adminsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/users/{id} [delete].
func (h *UserHandler) HandleDeactivate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.UserService.DeactivateUser(ctx, id)
	if err != nil {
		log.Warn("user deactivation failed", "user_id", id, "error", err)
		mapServiceError(err, http.StatusConflict).WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// HandleReactivate handles bringing a user back
//
//	@Summary		Reactivate a user
//	@Description	Flips an inactive user back to active, provided no other active user
//	@Description	has claimed their email in the meantime.
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		int						true	"User ID"
//	@Success		200	{object}	adminsdk.UserResponse	"Reactivated user"
//	@Failure		404	{object}	adminsdk.ErrorResponse	"No inactive user with that id"
//	@Failure		409	{object}	adminsdk.ErrorResponse	"Email claimed by another active user"
//	@Failure		500	{object}	adminsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/users/{id}/reactivate [post].
func (h *UserHandler) HandleReactivate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.UserService.ReactivateUser(ctx, id)
	if err != nil {
		log.Warn("user reactivation failed", "user_id", id, "error", err)
		mapServiceError(err, http.StatusConflict).WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// HandleAssignRole handles pointing a user at a role
//
//	@Summary		Assign a role
//	@Description	Points an active user at a role. The role may be inactive; only the
//	@Description	user must be active.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"User ID"
//	@Param			request	body		adminsdk.AssignRoleRequest	true	"Role to assign"
//	@Success		200		{object}	adminsdk.UserResponse		"User with the new role"
//	@Failure		400		{object}	adminsdk.ErrorResponse		"Invalid request"
//	@Failure		404		{object}	adminsdk.ErrorResponse		"User or role not found"
//	@Failure		500		{object}	adminsdk.ErrorResponse		"Internal server error"
//	@Router			/v1/users/{id}/role [put].
func (h *UserHandler) HandleAssignRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req adminsdk.AssignRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		adminsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.UserService.AssignRole(ctx, id, req.RoleID)
	if err != nil {
		log.Warn("role assignment failed", "user_id", id, "role_id", req.RoleID, "error", err)
		mapServiceError(err, http.StatusConflict).WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// HandleUnassignRole handles clearing a user's role
//
//	@Summary		Unassign the role
//	@Description	Clears the role reference from an active user, leaving them with no
//	@Description	permissions.
//	@Tags			Users
//	@Produce		json
//	@Param			id	path		int						true	"User ID"
//	@Success		200	{object}	adminsdk.UserResponse	"User without a role"
//	@Failure		404	{object}	adminsdk.ErrorResponse	"No active user with that id"
//	@Failure		500	{object}	adminsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/users/{id}/role [delete].
func (h *UserHandler) HandleUnassignRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.UserService.UnassignRole(ctx, id)
	if err != nil {
		log.Warn("role unassignment failed", "user_id", id, "error", err)
		mapServiceError(err, http.StatusConflict).WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}
