package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Parallel()

	access, err := NewAccessToken("test-secret", 42, 15)
	require.NoError(t, err)
	require.NotEmpty(t, access.Token)
	require.WithinDuration(t, time.Now().UTC().Add(15*time.Minute), access.Exp, time.Minute)

	tok, err := jwt.Parse(access.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, tok.Valid)

	claims, ok := tok.Claims.(jwt.MapClaims)
	require.True(t, ok)
	require.EqualValues(t, 42, claims["sub"])
}

func TestAccessTokenWrongSecret(t *testing.T) {
	t.Parallel()

	access, err := NewAccessToken("test-secret", 42, 15)
	require.NoError(t, err)

	_, err = jwt.Parse(access.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	require.Error(t, err)
}

func TestRefreshTokenHashing(t *testing.T) {
	t.Parallel()

	first, err := NewRefreshToken(30)
	require.NoError(t, err)
	second, err := NewRefreshToken(30)
	require.NoError(t, err)

	require.Len(t, first.Raw, 96)
	require.NotEqual(t, first.Raw, second.Raw)

	// The stored hash is deterministic and never equals the raw token.
	require.Equal(t, HashRefreshRaw(first.Raw), HashRefreshRaw(first.Raw))
	require.NotEqual(t, first.Raw, HashRefreshRaw(first.Raw))
}

func TestPasswordHashing(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("hunter2", 4)
	require.NoError(t, err)
	require.True(t, VerifyPassword(hash, "hunter2"))
	require.False(t, VerifyPassword(hash, "hunter3"))
}
