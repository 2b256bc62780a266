package jwt

import (
	"testing"
	"time"

	"github.com/gsh-hris/roster-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() Service {
	return NewJWTService("test-secret-key-for-jwt", "1h", "24h")
}

func TestGenerateAccessToken(t *testing.T) {
	svc := newTestService()
	employeeID := "emp-1"

	tokenString, expiresAt, err := svc.GenerateAccessToken("user-1", "nurse@gsh.ph", &employeeID, user.RoleEmployee)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	userID, _ := token.Get("user_id")
	assert.Equal(t, "user-1", userID)
	role, _ := token.Get("role")
	assert.Equal(t, "employee", role)
	tokenType, _ := token.Get("type")
	assert.Equal(t, "access", tokenType)
	empClaim, _ := token.Get("employee_id")
	assert.Equal(t, "emp-1", empClaim)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	userID, err := svc.ParseRefreshToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestParseRefreshTokenRejectsAccessToken(t *testing.T) {
	svc := newTestService()

	accessToken, _, err := svc.GenerateAccessToken("user-1", "nurse@gsh.ph", nil, user.RoleAdmin)
	require.NoError(t, err)

	_, err = svc.ParseRefreshToken(accessToken)
	assert.Error(t, err)
}

func TestTokenRevocation(t *testing.T) {
	svc := newTestService()

	tokenString, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(tokenString))
	svc.RevokeToken(tokenString)
	assert.True(t, svc.IsTokenRevoked(tokenString))
}
