package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portico/internal/shared/identity"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	pair, err := svc.Generate(42, identity.RoleGuard)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(15*60), pair.ExpiresIn)

	t.Run("access token carries identity", func(t *testing.T) {
		claims, err := svc.Verify(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, uint(42), claims.UserID)
		assert.Equal(t, identity.RoleGuard, claims.Role)
		assert.Equal(t, TokenTypeAccess, claims.TokenType)
	})

	t.Run("refresh token is typed refresh", func(t *testing.T) {
		claims, err := svc.Verify(pair.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, TokenTypeRefresh, claims.TokenType)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		other := NewJWTService("other-secret", 15, 7)
		_, err := other.Verify(pair.AccessToken)
		assert.Error(t, err)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := svc.Verify("not.a.token")
		assert.Error(t, err)
	})
}

func TestJWTService_Verify_ExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", -1, 7)

	pair, err := svc.Generate(7, identity.RoleAdmin)
	require.NoError(t, err)

	_, err = svc.Verify(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTService_Refresh(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	pair, err := svc.Generate(9, identity.RoleResident)
	require.NoError(t, err)

	t.Run("valid refresh token yields a new pair", func(t *testing.T) {
		rotated, err := svc.Refresh(pair.RefreshToken)
		require.NoError(t, err)
		require.NotEmpty(t, rotated.AccessToken)
		require.NotEmpty(t, rotated.RefreshToken)

		claims, err := svc.Verify(rotated.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, uint(9), claims.UserID)
		assert.Equal(t, identity.RoleResident, claims.Role)
	})

	t.Run("access token is not accepted for refresh", func(t *testing.T) {
		_, err := svc.Refresh(pair.AccessToken)
		assert.Error(t, err)
	})
}
