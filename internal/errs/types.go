package errs

import "strings"

// FieldErrors maps a submitted field name to a human-readable problem.
//
// Example:
//
//	{ "email": "is empty", "message": "is empty" }
type FieldErrors map[string]string

// HTTPError is the custom error type for relay responses.
//
// It implements the `error` interface via Error() and serializes
// directly to the response body. Only Message and Errors reach the
// client; Code and Status drive the status line and the logs.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST"), logs only.
//   - Message: human-friendly message, rendered as the `error` key.
//   - Status: HTTP status code.
//   - Errors: per-field validation errors, rendered as the `errors` key.
type HTTPError struct {
	Code    string      `json:"-"`
	Message string      `json:"error,omitempty"`
	Status  int         `json:"-"`
	Errors  FieldErrors `json:"errors,omitempty"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
//
// Field-level errors carry no Message, so the code is used instead.
func (e *HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Method Not Allowed" -> "METHOD_NOT_ALLOWED"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
