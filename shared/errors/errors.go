package errors

import (
	"errors"
	"net/http"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// Invariant reports malformed input.
func Invariant(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusBadRequest}
}

// Authentication reports a missing or invalid identity.
func Authentication(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusUnauthorized}
}

// Authorization reports a valid identity without rights on the resource.
func Authorization(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusForbidden}
}

// NotFound reports a referenced entity that does not exist.
func NotFound(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound}
}

func hasStatus(err error, status int) bool {
	var e *ErrorWithStatusCode
	return errors.As(err, &e) && e.StatusCode == status
}

func IsInvariant(err error) bool      { return hasStatus(err, http.StatusBadRequest) }
func IsAuthentication(err error) bool { return hasStatus(err, http.StatusUnauthorized) }
func IsAuthorization(err error) bool  { return hasStatus(err, http.StatusForbidden) }
func IsNotFound(err error) bool       { return hasStatus(err, http.StatusNotFound) }

// IsClientError is true for every error that carries its own status code.
func IsClientError(err error) bool {
	var e *ErrorWithStatusCode
	return errors.As(err, &e)
}
