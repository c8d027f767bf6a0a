// Package apperr defines the error taxonomy shared by the auth and expense
// packages and its mapping onto HTTP responses.
package apperr

import (
	"errors"
	"net/http"
	"strings"
)

// Sentinel errors for use with errors.Is(). Domain code wraps them with
// fmt.Errorf("%w: detail", ...) where a more specific message helps the client.
var (
	ErrValidation             = errors.New("validation failed")
	ErrDuplicateEmail         = errors.New("user with this email already exists")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrUnauthenticated        = errors.New("authentication required")
	ErrInvalidToken           = errors.New("invalid or expired token")
	ErrTokenExpired           = errors.New("token has expired")
	ErrInvalidCurrentPassword = errors.New("current password is incorrect")
	ErrNotFound               = errors.New("not found")
)

// HTTPStatus maps an error onto the status code returned to the client.
// Anything outside the taxonomy is an internal error.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidCurrentPassword):
		return http.StatusBadRequest
	case errors.Is(err, ErrDuplicateEmail):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrTokenExpired):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// publicSentinels are reported to the client by their own text, dropping any
// wrapped detail.
var publicSentinels = []error{
	ErrDuplicateEmail,
	ErrInvalidCredentials,
	ErrUnauthenticated,
	ErrInvalidCurrentPassword,
}

// Message returns the text safe to send to the client. Validation and not-found
// errors keep their detail; credential and token failures never say which
// check failed.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		msg := err.Error()
		if prefix := ErrValidation.Error() + ": "; strings.HasPrefix(msg, prefix) {
			return strings.TrimPrefix(msg, prefix)
		}
		return msg
	case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrTokenExpired):
		return ErrInvalidToken.Error()
	case errors.Is(err, ErrNotFound):
		return err.Error()
	}
	for _, s := range publicSentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "Server error"
}
