package server

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/interview-coach/internal/config"
	"github.com/jonathan/interview-coach/internal/db"
	"github.com/jonathan/interview-coach/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDB is an in-memory UserStore for unit tests.
type fakeDB struct {
	users map[uuid.UUID]*db.User
}

func newFakeDB() *fakeDB {
	return &fakeDB{users: make(map[uuid.UUID]*db.User)}
}

func (f *fakeDB) CreateUser(_ context.Context, name, email, phone string) (uuid.UUID, error) {
	id := uuid.New()
	now := time.Now()
	f.users[id] = &db.User{
		ID:        id,
		Name:      name,
		Email:     strings.ToLower(email),
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return id, nil
}

func (f *fakeDB) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (f *fakeDB) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	for _, u := range f.users {
		if u.Email == strings.ToLower(email) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeDB) CheckEmailExists(_ context.Context, email string) (bool, error) {
	u, _ := f.GetUserByEmail(context.Background(), email)
	return u != nil, nil
}

func (f *fakeDB) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	u, ok := f.users[userID]
	if !ok {
		return fmt.Errorf("user not found: %s", userID)
	}
	u.PasswordHash = passwordHash
	u.PasswordSet = true
	u.UpdatedAt = time.Now()
	return nil
}

func testPasswordConfig(t *testing.T) *config.PasswordConfig {
	t.Helper()
	// Lowest allowed cost keeps the bcrypt work in tests small.
	return &config.PasswordConfig{BcryptCost: 10}
}

func testUserService(t *testing.T) (*UserService, *fakeDB) {
	t.Helper()
	store := newFakeDB()
	return NewUserService(store, testPasswordConfig(t)), store
}

func TestUserService_Register(t *testing.T) {
	service, store := testUserService(t)
	ctx := context.Background()

	req := &types.CreateUserRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "correct-horse-battery",
	}

	user, err := service.Register(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Ada", user.Name)
	assert.True(t, user.PasswordSet)

	// The stored hash must not be the plaintext password.
	stored := store.users[user.ID]
	assert.NotEqual(t, req.Password, stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	service, _ := testUserService(t)
	ctx := context.Background()

	req := &types.CreateUserRequest{Name: "Ada", Email: "ada@example.com", Password: "password123"}
	_, err := service.Register(ctx, req)
	require.NoError(t, err)

	_, err = service.Register(ctx, req)
	require.Error(t, err)
	var dup *ErrEmailAlreadyExists
	assert.ErrorAs(t, err, &dup)
}

func TestUserService_Login(t *testing.T) {
	service, _ := testUserService(t)
	ctx := context.Background()

	registered, err := service.Register(ctx, &types.CreateUserRequest{
		Name:     "Grace",
		Email:    "grace@example.com",
		Password: "s3cure-password",
	})
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		user, err := service.Login(ctx, &types.LoginRequest{
			Email:    "grace@example.com",
			Password: "s3cure-password",
		})
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Login(ctx, &types.LoginRequest{
			Email:    "grace@example.com",
			Password: "wrong-password",
		})
		var invalid *ErrInvalidCredentials
		assert.ErrorAs(t, err, &invalid)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := service.Login(ctx, &types.LoginRequest{
			Email:    "nobody@example.com",
			Password: "whatever",
		})
		var invalid *ErrInvalidCredentials
		assert.ErrorAs(t, err, &invalid)
	})
}

func TestUserService_UpdatePassword(t *testing.T) {
	service, _ := testUserService(t)
	ctx := context.Background()

	user, err := service.Register(ctx, &types.CreateUserRequest{
		Name:     "Alan",
		Email:    "alan@example.com",
		Password: "original-pass",
	})
	require.NoError(t, err)

	t.Run("wrong current password", func(t *testing.T) {
		err := service.UpdatePassword(ctx, user.ID, "not-the-password", "new-password-1")
		var mismatch *ErrPasswordMismatch
		assert.ErrorAs(t, err, &mismatch)
	})

	t.Run("unknown user", func(t *testing.T) {
		err := service.UpdatePassword(ctx, uuid.New(), "original-pass", "new-password-1")
		var notFound *ErrUserNotFound
		assert.ErrorAs(t, err, &notFound)
	})

	t.Run("success", func(t *testing.T) {
		require.NoError(t, service.UpdatePassword(ctx, user.ID, "original-pass", "new-password-1"))

		// Old password no longer works, new one does.
		_, err := service.Login(ctx, &types.LoginRequest{Email: "alan@example.com", Password: "original-pass"})
		assert.Error(t, err)

		_, err = service.Login(ctx, &types.LoginRequest{Email: "alan@example.com", Password: "new-password-1"})
		assert.NoError(t, err)
	})
}

func TestPublicUser(t *testing.T) {
	t.Run("drops the password hash", func(t *testing.T) {
		now := time.Now()
		stored := &db.User{
			ID:           uuid.New(),
			Name:         "John Doe",
			Email:        "john@example.com",
			Phone:        "555-0100",
			PasswordHash: "hashed-password",
			PasswordSet:  true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		view := publicUser(stored)
		require.NotNil(t, view)
		assert.Equal(t, stored.ID, view.ID)
		assert.Equal(t, stored.Email, view.Email)
		assert.Equal(t, stored.PasswordSet, view.PasswordSet)
	})

	t.Run("nil user", func(t *testing.T) {
		assert.Nil(t, publicUser(nil))
	})
}
