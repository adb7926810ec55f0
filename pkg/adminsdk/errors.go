package adminsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/retailcore/staffd/pkg/httpx"
)

// Error codes used in HTTP error payloads. They mirror the service's error
// taxonomy: a missing record, a malformed request, a request that is valid
// but conflicts with current state, and everything else.
const (
	ErrorCodeNotFound         = "not_found"
	ErrorCodeInvalidArgument  = "invalid_argument"
	ErrorCodeConflictingState = "conflicting_state"
	ErrorCodeServerError      = "server_error"
)

// AdminError represents an error response from the admin service. It
// implements the error interface and is used both by the server (to write
// HTTP responses) and by the SDK client (to represent errors).
type AdminError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code (e.g., "not_found")
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *AdminError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this AdminError to an HTTP response writer.
func (e *AdminError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:            e.Code,
		ErrorDescription: e.Description,
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
	})
}

var (
	// ErrInvalidRequest is returned when the request is malformed or missing
	// required parameters.
	ErrInvalidRequest = &AdminError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidArgument,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrNotFound is returned when the addressed record does not exist in
	// the expected state.
	ErrNotFound = &AdminError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "the requested record was not found",
	}

	// ErrServerError is returned when the service encountered an unexpected
	// condition that prevented it from fulfilling the request.
	ErrServerError = &AdminError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// NewAdminError creates a new AdminError with the given status code, error
// code, and description. Useful for custom messages while keeping the
// response shape consistent.
func NewAdminError(statusCode int, code, description string) *AdminError {
	return &AdminError{
		StatusCode:  statusCode,
		Code:        code,
		Description: description,
	}
}

// parseErrorResponse attempts to parse an HTTP error response into a typed
// error. Returns nil if the response indicates success (2xx status code).
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &AdminError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	// Fallback: create generic error from status code
	return &AdminError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
