package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims *Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestSessionParsesClaimsWithoutVerification(t *testing.T) {
	token := signedToken(t, &Claims{Fullname: "Juan Dela Cruz", Role: "Approver"})
	session := NewSession(token)

	require.Equal(t, token, session.Token())
	require.Equal(t, "Bearer "+token, session.BearerHeader())
	require.Equal(t, "Juan Dela Cruz", session.Fullname())
	require.Equal(t, "Approver", session.Role())
}

func TestSessionExpiry(t *testing.T) {
	now := time.Now()
	expired := signedToken(t, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	})
	require.True(t, NewSession(expired).Expired(now))

	valid := signedToken(t, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})
	require.False(t, NewSession(valid).Expired(now))
}

func TestSessionEmptyToken(t *testing.T) {
	session := NewSession("  ")
	require.Empty(t, session.Token())
	require.Empty(t, session.BearerHeader())
	require.Empty(t, session.Fullname())
	require.False(t, session.Expired(time.Now()))
}

func TestSessionOpaqueToken(t *testing.T) {
	// A non-JWT token is still usable as a credential.
	session := NewSession("opaque-api-key")
	require.Equal(t, "Bearer opaque-api-key", session.BearerHeader())
	require.Empty(t, session.Fullname())
	require.False(t, session.Expired(time.Now()))
}
