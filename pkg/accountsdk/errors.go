package accountsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/solara-app/accounts/pkg/httpx"
)

const (
	ErrorCodeValidation        = "validation_error"
	ErrorCodeDuplicateAccount  = "duplicate_account"
	ErrorCodeInvalidCredential = "invalid_credentials"
	ErrorCodeInvalidToken      = "invalid_token"
	ErrorCodeServerError       = "server_error"
	ErrorCodeRateLimited       = "rate_limit_exceeded"
)

// APIError is the wire error for all non-2xx responses. It implements the
// error interface and is used both by the server (to write responses) and by
// the SDK client (to represent failures). Callers branch on Code, never on
// the description text.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code (e.g., "invalid_credentials")
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer. Unauthorized
// responses carry the RFC 6750 bearer challenge header.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	if e.StatusCode == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate",
			fmt.Sprintf("Bearer error=%q, error_description=%q", e.Code, e.Description))
	}
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

var (
	// ErrValidation is returned when a request field is missing or malformed.
	ErrValidation = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeValidation,
		Description: "a request field is missing or malformed",
	}

	// ErrDuplicateAccount is returned when the email is already registered.
	ErrDuplicateAccount = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeDuplicateAccount,
		Description: "an account with this email already exists",
	}

	// ErrInvalidCredentials is returned for any login failure. The description
	// is identical for unknown emails and wrong passwords.
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredential,
		Description: "invalid email or password",
	}

	// ErrInvalidToken is returned when the session token is missing, invalid,
	// expired or refers to a deleted account.
	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "the session token is missing, invalid or expired",
	}

	// ErrServerError is returned when an unexpected condition prevented the
	// request from being fulfilled.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}

	// ErrInvalidJSONBody is returned when the request body cannot be parsed.
	ErrInvalidJSONBody = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeValidation,
		Description: "invalid JSON body",
	}
)

// NewAPIError creates an APIError with a custom description, keeping the
// status and code of a predefined error.
func NewAPIError(statusCode int, code, description string) *APIError {
	return &APIError{
		StatusCode:  statusCode,
		Code:        code,
		Description: description,
	}
}

// parseErrorResponse turns a non-2xx HTTP response into a typed *APIError.
// Returns nil for 2xx responses.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	// Fallback: generic error from the status code
	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}

// IsInvalidToken reports whether err is an APIError carrying the
// invalid_token code. The session uses this to force a logout.
func IsInvalidToken(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == ErrorCodeInvalidToken
}
