package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonathan/interview-coach/internal/types"
)

// AuthHandler exposes the account endpoints: register, login and
// password change.
type AuthHandler struct {
	users     *UserService
	tokens    *JWTService
	validator *validator.Validate
}

// NewAuthHandler creates an AuthHandler over the given services.
func NewAuthHandler(users *UserService, tokens *JWTService) *AuthHandler {
	return &AuthHandler{
		users:     users,
		tokens:    tokens,
		validator: validator.New(),
	}
}

// Register creates a candidate account and returns it with a session
// token.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req types.CreateUserRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	user, err := h.users.Register(r.Context(), &req)
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	h.respondWithToken(w, http.StatusCreated, user)
}

// Login verifies credentials and returns the account with a fresh
// session token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	user, err := h.users.Login(r.Context(), &req)
	if err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	h.respondWithToken(w, http.StatusOK, user)
}

// UpdatePasswordWithUserID changes the password for an already
// authenticated user.
func (h *AuthHandler) UpdatePasswordWithUserID(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	var req types.UpdatePasswordRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	if err := h.users.UpdatePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		writeError(w, HTTPStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}

// decode unmarshals and validates a request body. Failures come back
// as *ErrValidation so HTTPStatus maps them to 400.
func (h *AuthHandler) decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &ErrValidation{Field: "body", Message: "malformed JSON"}
	}

	if err := h.validator.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return &ErrValidation{Field: fieldErrs[0].Field(), Message: fieldErrs[0].Tag()}
		}
		return &ErrValidation{Field: "body", Message: "invalid request"}
	}
	return nil
}

// respondWithToken issues a session token for the user and writes the
// login response envelope.
func (h *AuthHandler) respondWithToken(w http.ResponseWriter, status int, user *types.User) {
	token, err := h.tokens.GenerateToken(user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate session token")
		return
	}
	writeJSON(w, status, types.LoginResponse{User: user, Token: token})
}
