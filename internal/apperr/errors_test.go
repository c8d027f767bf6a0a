package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"validation", fmt.Errorf("%w: amount is required", ErrValidation), http.StatusBadRequest},
		{"current password", ErrInvalidCurrentPassword, http.StatusBadRequest},
		{"duplicate email", ErrDuplicateEmail, http.StatusConflict},
		{"invalid credentials", ErrInvalidCredentials, http.StatusUnauthorized},
		{"missing token", ErrUnauthenticated, http.StatusUnauthorized},
		{"invalid token", ErrInvalidToken, http.StatusForbidden},
		{"expired token", fmt.Errorf("verify: %w", ErrTokenExpired), http.StatusForbidden},
		{"not found", fmt.Errorf("expense %w", ErrNotFound), http.StatusNotFound},
		{"internal", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "amount is required", Message(fmt.Errorf("%w: amount is required", ErrValidation)))
	assert.Equal(t, "validation failed", Message(ErrValidation))
	assert.Equal(t, "expense not found", Message(fmt.Errorf("expense %w", ErrNotFound)))
	assert.Equal(t, "invalid email or password", Message(fmt.Errorf("lookup alice: %w", ErrInvalidCredentials)))
	assert.Equal(t, "invalid or expired token", Message(ErrTokenExpired))
	assert.Equal(t, "Server error", Message(errors.New("select users: connection refused")))
}
