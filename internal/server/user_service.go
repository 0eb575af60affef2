package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/interview-coach/internal/config"
	"github.com/jonathan/interview-coach/internal/db"
	"github.com/jonathan/interview-coach/internal/types"
)

// UserStore is the slice of the database layer the account flows need.
// db.DB implements it; tests substitute an in-memory store.
type UserStore interface {
	CreateUser(ctx context.Context, name, email, phone string) (uuid.UUID, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
}

// UserService implements candidate account management: registration,
// login and password changes.
type UserService struct {
	store     UserStore
	passwords *config.PasswordConfig
}

// NewUserService creates a UserService over the given store.
func NewUserService(store UserStore, passwords *config.PasswordConfig) *UserService {
	return &UserService{store: store, passwords: passwords}
}

// Register creates an account. The password is hashed before anything
// is written; the plaintext never reaches the store.
func (s *UserService) Register(ctx context.Context, req *types.CreateUserRequest) (*types.User, error) {
	taken, err := s.store.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if taken {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	hash, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// The store separates account creation from credential setup, so a
	// register is a create followed by a password set.
	userID, err := s.store.CreateUser(ctx, req.Name, req.Email, req.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	if err := s.store.UpdatePassword(ctx, userID, hash); err != nil {
		return nil, fmt.Errorf("failed to set password: %w", err)
	}

	return s.profile(ctx, userID)
}

// Login checks credentials. Every failure mode maps to the same
// ErrInvalidCredentials so responses do not reveal whether an email is
// registered.
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	stored, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if stored == nil || !stored.PasswordSet {
		return nil, &ErrInvalidCredentials{}
	}
	if !s.passwords.VerifyPassword(req.Password, stored.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return publicUser(stored), nil
}

// UpdatePassword replaces a user's password after re-verifying the
// current one.
func (s *UserService) UpdatePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	stored, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}
	if stored == nil {
		return &ErrUserNotFound{UserID: userID}
	}
	if !s.passwords.VerifyPassword(currentPassword, stored.PasswordHash) {
		return &ErrPasswordMismatch{}
	}

	hash, err := s.passwords.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}
	if err := s.store.UpdatePassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// profile loads a stored user and returns the public view.
func (s *UserService) profile(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	stored, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if stored == nil {
		return nil, &ErrUserNotFound{UserID: userID}
	}
	return publicUser(stored), nil
}

// publicUser converts a stored user to the API view, dropping the
// password hash.
func publicUser(stored *db.User) *types.User {
	if stored == nil {
		return nil
	}
	return &types.User{
		ID:          stored.ID,
		Name:        stored.Name,
		Email:       stored.Email,
		Phone:       stored.Phone,
		PasswordSet: stored.PasswordSet,
		CreatedAt:   stored.CreatedAt,
		UpdatedAt:   stored.UpdatedAt,
	}
}
