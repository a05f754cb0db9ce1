package dashsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error codes the API uses in its {"error": ...} responses.
const (
	ErrorCodeInvalidRequest    = "invalid_request"
	ErrorCodeInvalidToken      = "invalid_token"
	ErrorCodeInvalidInvite     = "invalid_invite"
	ErrorCodeForbidden         = "forbidden"
	ErrorCodeNotFound          = "not_found"
	ErrorCodeRateLimitExceeded = "rate_limit_exceeded"
	ErrorCodeServerError       = "server_error"
)

// APIError represents an error response from the dashboard API. Any
// non-success status the SDK receives is surfaced as one of these.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code (e.g. "invalid_invite")
	Code string `json:"error"`

	// Details is a human-readable description, when the API provides one
	Details string `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Details == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Details)
}

// parseErrorResponse turns a non-success HTTP response into an APIError.
// Malformed error bodies still produce a usable error from the status.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       errResp.Error,
			Details:    errResp.Details,
		}
	}

	// Fallback: generic error from the status code
	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       ErrorCodeServerError,
		Details:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
