package tokens

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessToken_RoundTrip(t *testing.T) {
	t.Parallel()

	secret := []byte("test-secret")
	exp := time.Now().Add(time.Hour).UTC()

	token, err := NewAccessToken(secret, "Karas", "admin", exp)
	require.NoError(t, err)

	claims, err := AccessClaimsFromToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "Karas", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, exp, claims.ExpiresAt.Time, time.Second)
}

func TestAccessToken_Rejected(t *testing.T) {
	t.Parallel()

	secret := []byte("test-secret")

	expired, err := NewAccessToken(secret, "Karas", "admin", time.Now().Add(-time.Minute))
	require.NoError(t, err)
	_, err = AccessClaimsFromToken(expired, secret)
	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))

	valid, err := NewAccessToken(secret, "Karas", "admin", time.Now().Add(time.Minute))
	require.NoError(t, err)
	_, err = AccessClaimsFromToken(valid, []byte("other"))
	require.Error(t, err)

	_, err = AccessClaimsFromToken("garbage", secret)
	require.Error(t, err)
}

func TestCookies(t *testing.T) {
	t.Parallel()

	exp := time.Now().Add(time.Hour)
	c := CreateCookie(AccessCookieName, "v", "/", exp)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, "v", c.Value)

	d := DeleteCookie(AccessCookieName, "/")
	assert.Equal(t, -1, d.MaxAge)
	assert.Empty(t, d.Value)
}
