//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// validate is shared by the request Validate methods; a validator
// instance caches struct metadata and is safe for concurrent use.
var validate = validator.New()

// CreateUserRequest is the body of POST /auth/register. Candidates
// sign up with an email and a password of at least eight characters;
// phone is optional.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone,omitempty"`
}

// Validate checks the registration payload against its field rules.
func (r *CreateUserRequest) Validate() error {
	return validate.Struct(r)
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Validate checks the login payload against its field rules.
func (r *LoginRequest) Validate() error {
	return validate.Struct(r)
}

// UpdatePasswordRequest is the body of PUT /auth/password. The current
// password is re-verified before the new one is accepted.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// Validate checks the password-change payload against its field rules.
func (r *UpdatePasswordRequest) Validate() error {
	return validate.Struct(r)
}

// User is the public view of a candidate account. The password hash
// stays in the db layer and is never serialized here.
type User struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	PasswordSet bool      `json:"password_set"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LoginResponse is returned by register and login: the account plus a
// fresh session token.
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
