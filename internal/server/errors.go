// Package server provides the HTTP REST API for the career compass service.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jordan/career-compass/internal/recommend"
)

// ErrUsernameTaken indicates the username is already registered.
type ErrUsernameTaken struct {
	Username string
}

func (e *ErrUsernameTaken) Error() string {
	return fmt.Sprintf("username already registered: %s", e.Username)
}

// ErrInvalidCredentials indicates invalid login credentials.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid username or password"
}

// ErrUserNotFound indicates the user was not found.
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrNotFound indicates a resource other than a user was not found.
type ErrNotFound struct {
	Resource string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrUsernameTaken:
		return http.StatusConflict
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrUserNotFound, *ErrNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	}

	switch {
	case errors.Is(err, recommend.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, recommend.ErrNoAnswers):
		return http.StatusBadRequest
	case errors.Is(err, recommend.ErrUnavailable):
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
