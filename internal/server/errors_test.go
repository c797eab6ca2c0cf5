package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jordan/career-compass/internal/recommend"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"username taken", &ErrUsernameTaken{Username: "ada"}, http.StatusConflict},
		{"invalid credentials", &ErrInvalidCredentials{}, http.StatusUnauthorized},
		{"user not found", &ErrUserNotFound{UserID: uuid.New()}, http.StatusNotFound},
		{"resource not found", &ErrNotFound{Resource: "question"}, http.StatusNotFound},
		{"validation", &ErrValidation{Field: "username", Message: "required"}, http.StatusBadRequest},
		{"pipeline user missing", recommend.ErrUserNotFound, http.StatusNotFound},
		{"pipeline no answers", recommend.ErrNoAnswers, http.StatusBadRequest},
		{"pipeline unavailable", fmt.Errorf("%w: model call failed", recommend.ErrUnavailable), http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Contains(t, (&ErrUsernameTaken{Username: "ada"}).Error(), "ada")
	assert.Contains(t, (&ErrNotFound{Resource: "question"}).Error(), "question")
	assert.Equal(t, "invalid username or password", (&ErrInvalidCredentials{}).Error())
}
