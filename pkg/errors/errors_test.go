package errors

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
		{"validation", NewValidationError("name", "name is required"), http.StatusUnprocessableEntity},
		{"conflict", NewConflictError("user", "email already registered"), http.StatusUnprocessableEntity},
		{"not found", NewNotFoundError("user", "user not found"), http.StatusNotFound},
		{"authentication", NewAuthenticationError("invalid password"), http.StatusUnprocessableEntity},
		{"access denied", NewAccessDeniedError("access denied"), http.StatusUnauthorized},
		{"invalid token", NewInvalidTokenError("invalid token", nil), http.StatusBadRequest},
		{"internal", NewInternalError("boom", nil), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("handling request: %w", NewNotFoundError("user", "")), http.StatusNotFound},
		{"unknown", errors.New("plain"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "email already registered", NewConflictError("user", "email already registered").Error())
	assert.Equal(t, "user already exists", NewConflictError("user", "").Error())
	assert.Equal(t, "user not found", NewNotFoundError("user", "").Error())

	cause := errors.New("connection refused")
	internal := NewInternalError("db unavailable", cause)
	assert.Contains(t, internal.Error(), "connection refused")
	assert.ErrorIs(t, internal, cause)
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsConflict(NewConflictError("user", "")))
	assert.True(t, IsNotFound(NewNotFoundError("user", "")))
	assert.True(t, IsValidation(NewValidationError("name", "")))
	assert.True(t, IsAuthentication(NewAuthenticationError("")))

	assert.False(t, IsConflict(NewNotFoundError("user", "")))
	assert.False(t, IsNotFound(errors.New("plain")))
}
