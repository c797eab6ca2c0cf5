// Package types provides type definitions for structured data used throughout the career-compass system.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RegisterRequest represents the request to register a new user.
type RegisterRequest struct {
	Forename   string `json:"forename" validate:"required,min=1"`
	FamilyName string `json:"family_name" validate:"required,min=1"`
	Username   string `json:"username" validate:"required,min=3"`
	Password   string `json:"password" validate:"required,min=8"`
}

// LoginRequest represents the login request.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// User represents a user for API responses (avoids import cycle with db package).
type User struct {
	ID         uuid.UUID `json:"id"`
	Forename   string    `json:"forename"`
	FamilyName string    `json:"family_name"`
	Username   string    `json:"username"`
	CreatedAt  time.Time `json:"created_at"`
}

// LoginResponse represents the login/register response with user data and authentication token.
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Validate validates the RegisterRequest using the validator.
func (r *RegisterRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
