package jwtmanager

import (
	"postcare-service/internal/app/config"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestManager(t *testing.T, secret string) *JWTManager {
	t.Helper()
	manager, err := NewJWTManager(&config.InternalConfig{
		JWT: config.JWT{Secret: secret},
	}, zap.NewNop())
	require.NoError(t, err)
	return manager
}

func TestNewJWTManager_EmptySecret(t *testing.T) {
	_, err := NewJWTManager(&config.InternalConfig{}, zap.NewNop())
	assert.Error(t, err)
}

func TestJWTManager_CreateAndVerifyToken(t *testing.T) {
	manager := newTestManager(t, "test-secret")

	token, err := manager.CreateToken("64f1b2a3c4d5e6f7a8b9c0d1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := manager.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "64f1b2a3c4d5e6f7a8b9c0d1", userID)
}

func TestJWTManager_VerifyToken_WrongSecret(t *testing.T) {
	manager := newTestManager(t, "test-secret")
	other := newTestManager(t, "other-secret")

	token, err := manager.CreateToken("64f1b2a3c4d5e6f7a8b9c0d1")
	require.NoError(t, err)

	_, err = other.VerifyToken(token)
	assert.Error(t, err)
}

func TestJWTManager_VerifyToken_Malformed(t *testing.T) {
	manager := newTestManager(t, "test-secret")

	_, err := manager.VerifyToken("not-a-jwt")
	assert.Error(t, err)
}

func TestJWTManager_VerifyToken_Expired(t *testing.T) {
	manager := newTestManager(t, "test-secret")

	claims := jwt.MapClaims{
		"id":  "64f1b2a3c4d5e6f7a8b9c0d1",
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = manager.VerifyToken(expired)
	assert.Error(t, err)
}

func TestJWTManager_VerifyToken_MissingIDClaim(t *testing.T) {
	manager := newTestManager(t, "test-secret")

	claims := jwt.MapClaims{
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = manager.VerifyToken(token)
	assert.Error(t, err)
}
