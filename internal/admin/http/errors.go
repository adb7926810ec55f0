package http

import (
	"errors"
	"net/http"

	"github.com/retailcore/staffd/internal/admin/service"
	"github.com/retailcore/staffd/pkg/adminsdk"
)

// mapServiceError translates service sentinel errors into typed HTTP errors.
// Duplicate-value errors are ambiguous: on create and the state transitions
// they are a state conflict (409), while on update the caller supplied a bad
// value (400). The caller picks via duplicateStatus.
func mapServiceError(err error, duplicateStatus int) *adminsdk.AdminError {
	switch {
	case errors.Is(err, service.ErrRoleNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return adminsdk.NewAdminError(http.StatusNotFound, adminsdk.ErrorCodeNotFound, err.Error())

	case errors.Is(err, service.ErrRoleNameTaken),
		errors.Is(err, service.ErrEmailTaken):
		code := adminsdk.ErrorCodeConflictingState
		if duplicateStatus == http.StatusBadRequest {
			code = adminsdk.ErrorCodeInvalidArgument
		}
		return adminsdk.NewAdminError(duplicateStatus, code, err.Error())

	case errors.Is(err, service.ErrRoleInUse):
		return adminsdk.NewAdminError(http.StatusConflict, adminsdk.ErrorCodeConflictingState, err.Error())

	case errors.Is(err, service.ErrRoleRequired),
		errors.Is(err, service.ErrRoleNameRequired),
		errors.Is(err, service.ErrEmailRequired),
		errors.Is(err, service.ErrPasswordRequired),
		errors.Is(err, service.ErrUnknownPermission),
		errors.Is(err, service.ErrInvalidState),
		errors.Is(err, service.ErrEmptyPatch):
		return adminsdk.NewAdminError(http.StatusBadRequest, adminsdk.ErrorCodeInvalidArgument, err.Error())

	default:
		return adminsdk.ErrServerError
	}
}
