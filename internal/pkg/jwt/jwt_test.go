package jwt

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func newTestService() Service {
	return NewJWTService(testSecret, "1h", "24h")
}

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc := newTestService()

	token, expiresAt, err := svc.GenerateAccessToken("user-1", "alice", "acme1", RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "alice", claims["username"])
	assert.Equal(t, "acme1", claims["tenant"])
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateRefreshToken_Claims(t *testing.T) {
	svc := newTestService()

	token, expiresAt, err := svc.GenerateRefreshToken("worker-9", "bob", "acme1", RoleWorker)
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Add(23*time.Hour).Unix())

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "worker-9", claims["user_id"])
	assert.Equal(t, "bob", claims["username"])
	assert.Equal(t, "acme1", claims["tenant"])
	assert.Equal(t, "worker", claims["role"])
	assert.Equal(t, "refresh", claims["type"])
}

func TestParseToken_WrongSecret(t *testing.T) {
	svc := newTestService()
	other := NewJWTService("a-different-secret", "1h", "24h")

	token, _, err := svc.GenerateAccessToken("user-1", "alice", "acme1", RoleAdmin)
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	svc := newTestService()
	_, err := svc.ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestGenerateAccessToken_BadExpiration(t *testing.T) {
	svc := NewJWTService(testSecret, "not-a-duration", "24h")
	_, _, err := svc.GenerateAccessToken("user-1", "alice", "acme1", RoleAdmin)
	assert.Error(t, err)
}

func TestRevokeToken(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateRefreshToken("user-1", "alice", "acme1", RoleAdmin)
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token))
	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := newTestService()
	expiresAt := time.Now().Add(24 * time.Hour).Unix()

	cookie := svc.RefreshTokenCookie("some-token", expiresAt)
	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "some-token", cookie.Value)
	assert.Equal(t, "/api/v1/auth", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, time.Unix(expiresAt, 0), cookie.Expires)
}
