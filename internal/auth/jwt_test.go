package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken("u-1", "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, "u-1", claims.UserID)
	require.Equal(t, "alice@example.com", claims.Email)
}

func TestValidateToken_Invalid(t *testing.T) {
	_, err := ValidateToken("invalid.token")
	require.Error(t, err)
}

func TestToken_UsesSecretFromEnvironment(t *testing.T) {
	// The secret set after process start (e.g. via a .env file loaded by
	// config.Load) must be the one tokens are signed with.
	t.Setenv("JWT_SECRET", "secret-set-after-startup")

	token, err := GenerateToken("u-1", "alice@example.com")
	require.NoError(t, err)

	_, err = ValidateToken(token)
	require.NoError(t, err)

	// The built-in development fallback must not verify this token.
	_, err = jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return []byte("development-insecure-secret-change-me"), nil
	})
	require.Error(t, err)
}

func TestValidateToken_SecretMismatch(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := GenerateToken("u-1", "alice@example.com")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "rotated-secret")
	_, err = ValidateToken(token)
	require.Error(t, err)
}
