package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workforge-hr/workforge-backend-go/internal/domain/user"
)

func newTestService() Service {
	return NewJWTService("test-secret", "15m", "168h")
}

func TestGenerateAccessToken(t *testing.T) {
	svc := newTestService()

	token, expiresAt, err := svc.GenerateAccessToken("user-1", "jdoe", user.RoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	userID, _ := decoded.Get("user_id")
	assert.Equal(t, "user-1", userID)
	role, _ := decoded.Get("role")
	assert.Equal(t, "admin", role)
	tokenType, _ := decoded.Get("type")
	assert.Equal(t, "access", tokenType)
	jti, _ := decoded.Get("jti")
	assert.NotEmpty(t, jti)
}

func TestValidateRefreshToken(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	userID, err := svc.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestValidateRefreshTokenRejectsAccessToken(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateAccessToken("user-1", "jdoe", user.RoleUser)
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(token)
	assert.Error(t, err)
}

func TestValidateRefreshTokenRejectsRevoked(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	svc.RevokeToken(token)

	assert.True(t, svc.IsTokenRevoked(token))
	_, err = svc.ValidateRefreshToken(token)
	assert.Error(t, err)
}

func TestRevokeTokenSweepsExpiredEntries(t *testing.T) {
	svc := newTestService().(*JWTService)

	svc.revokedTokens["long-gone"] = time.Now().Add(-time.Hour)

	token, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	svc.RevokeToken(token)

	assert.True(t, svc.IsTokenRevoked(token))
	assert.False(t, svc.IsTokenRevoked("long-gone"))
}

func TestRevokeTokenKeepsEntryUntilTokenExpiry(t *testing.T) {
	svc := newTestService().(*JWTService)

	token, expiresAt, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	svc.RevokeToken(token)

	stored, ok := svc.revokedTokens[token]
	require.True(t, ok)
	assert.Equal(t, expiresAt, stored.Unix())
}

func TestRefreshTokensAreDistinct(t *testing.T) {
	svc := newTestService()

	first, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	second, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	svc.RevokeToken(first)

	_, err = svc.ValidateRefreshToken(second)
	assert.NoError(t, err)
}
