package errs

import (
	"net/http"
)

// Messages the relay sends back to clients. They are part of the public
// contract, so frontends may match on them.
const (
	MessageOriginNotAllowed = "Access denied. Origin not allowed."
	MessageMethodNotAllowed = "Method Not Allowed"
	MessageInvalidEmail     = "Invalid email address"
	MessageSendFailed       = "Failed to send email"
)

func newHTTPError(status int, message string, fields FieldErrors) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(status)),
		Message: message,
		Status:  status,
		Errors:  fields,
	}
}

// NewForbiddenError creates a 403 Forbidden HTTPError.
func NewForbiddenError(message string) *HTTPError {
	return newHTTPError(http.StatusForbidden, message, nil)
}

// NewMethodNotAllowedError creates a 405 Method Not Allowed HTTPError.
func NewMethodNotAllowedError(message string) *HTTPError {
	return newHTTPError(http.StatusMethodNotAllowed, message, nil)
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// Pass either a message (single `error` key) or field errors
// (`errors` map). Passing both renders both keys, which the relay
// itself never does.
func NewBadRequestError(message string, fields FieldErrors) *HTTPError {
	return newHTTPError(http.StatusBadRequest, message, fields)
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// The message is what the client sees; the underlying cause should be
// logged by the caller and never attached here.
func NewInternalServerError(message string) *HTTPError {
	return newHTTPError(http.StatusInternalServerError, message, nil)
}

// ValidationError converts failed field rules into a 400 Bad Request HTTPError.
func ValidationError(fields FieldErrors) *HTTPError {
	return NewBadRequestError("", fields)
}
