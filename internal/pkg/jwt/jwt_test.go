package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timeflow-hr/timeflow-backend-go/internal/domain/user"
	"github.com/timeflow-hr/timeflow-backend-go/internal/pkg/ident"
)

func TestAccessTokenClaims(t *testing.T) {
	svc := NewJWTService("test-secret-key", "1h", "24h")

	tokenString, expiresAt, err := svc.GenerateAccessToken(ident.ID(42), ident.ID(7), user.RoleManager)
	require.NoError(t, err)
	assert.Greater(t, expiresAt, int64(0))

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	userID, _ := token.Get("user_id")
	employeeID, _ := token.Get("employee_id")
	role, _ := token.Get("role")
	tokenType, _ := token.Get("type")

	assert.Equal(t, "42", userID)
	assert.Equal(t, "7", employeeID)
	assert.Equal(t, "manager", role)
	assert.Equal(t, "access", tokenType)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret-key", "1h", "24h")

	tokenString, jti, _, err := svc.GenerateRefreshToken(ident.ID(42))
	require.NoError(t, err)
	require.NotEmpty(t, jti)

	userID, parsedJTI, err := svc.ParseRefreshToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, ident.ID(42), userID)
	assert.Equal(t, jti, parsedJTI)
}

func TestParseRefreshToken_RejectsAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret-key", "1h", "24h")

	tokenString, _, err := svc.GenerateAccessToken(ident.ID(42), ident.ID(7), user.RoleEmployee)
	require.NoError(t, err)

	_, _, err = svc.ParseRefreshToken(tokenString)
	assert.Error(t, err)
}
