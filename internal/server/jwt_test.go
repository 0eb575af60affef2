package server

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/interview-coach/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{
		Secret:          "unit-test-secret",
		Issuer:          "interview-coach",
		ExpirationHours: 1,
	})
}

func TestJWTService_RoundTrip(t *testing.T) {
	service := testJWTService()
	candidateID := uuid.New()

	token, err := service.GenerateToken(candidateID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, candidateID, claims.UserID)
	assert.Equal(t, "interview-coach", claims.Issuer)
	assert.Equal(t, candidateID.String(), claims.Subject)
}

func TestJWTService_RejectsForeignIssuer(t *testing.T) {
	service := testJWTService()

	// Same secret, different issuer: another service sharing the secret
	// must not produce tokens this API accepts.
	foreign := NewJWTService(&config.JWTConfig{
		Secret:          "unit-test-secret",
		Issuer:          "some-other-service",
		ExpirationHours: 1,
	})
	token, err := foreign.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Errors(t *testing.T) {
	service := testJWTService()

	t.Run("empty token", func(t *testing.T) {
		_, err := service.ValidateToken("")
		assert.Error(t, err)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := service.ValidateToken("not.a.jwt")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService(&config.JWTConfig{
			Secret:          "a-different-secret",
			Issuer:          "interview-coach",
			ExpirationHours: 1,
		})
		token, err := other.GenerateToken(uuid.New())
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.Error(t, err)
	})
}

func TestJWTService_VerifyToken(t *testing.T) {
	service := testJWTService()
	candidateID := uuid.New()

	token, err := service.GenerateToken(candidateID)
	require.NoError(t, err)

	got, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, candidateID, got)

	_, err = service.VerifyToken("garbage")
	assert.Error(t, err)
}
