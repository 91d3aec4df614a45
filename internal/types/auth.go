// Package types provides type definitions for the wire model shared between
// the CLI and the CV Didacticiel REST API.
package types

import (
	"github.com/go-playground/validator/v10"
)

// User represents the authenticated account as returned by /users/me/.
type User struct {
	ID                  int    `json:"id"`
	Email               string `json:"email"`
	FirstName           string `json:"first_name"`
	LastName            string `json:"last_name"`
	IsPremiumSubscriber bool   `json:"is_premium_subscriber"`
}

// AuthTokens is the token pair returned by the login and social-login endpoints.
type AuthTokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// LoginRequest represents the credentials posted to /auth/login/.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest represents the payload posted to /users/register/.
// PasswordConfirm must match Password; the check happens locally before
// any network call is made.
type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email"`
	FirstName       string `json:"first_name" validate:"required,min=2"`
	LastName        string `json:"last_name" validate:"required,min=2"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
}

// RegisterResponse is the registration response: the created user plus a
// freshly minted token pair.
type RegisterResponse struct {
	User
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// GoogleLoginRequest carries a Google ID token to /users/google-auth/.
type GoogleLoginRequest struct {
	Token string `json:"token" validate:"required"`
}

// GoogleLoginResponse mirrors RegisterResponse for the social-login path.
type GoogleLoginResponse struct {
	User
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RefreshRequest is the body of /auth/token/refresh/.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// RefreshResponse carries the replacement access token.
type RefreshResponse struct {
	Access string `json:"access"`
}

// LogoutRequest posts the refresh token for server-side revocation.
type LogoutRequest struct {
	Refresh string `json:"refresh"`
}

var validate = validator.New()

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the RegisterRequest using the validator.
func (r *RegisterRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the GoogleLoginRequest using the validator.
func (r *GoogleLoginRequest) Validate() error {
	return validate.Struct(r)
}
