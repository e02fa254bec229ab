package auth

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery staple", hash)

	require.NoError(t, CheckPasswordHash(hash, "correct horse battery staple"))
	require.ErrorIs(t, CheckPasswordHash(hash, "wrong password"), ErrInvalidCredentials)
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := MakeJWT("user-123", "secret", time.Hour)
	require.NoError(t, err)

	userId, err := ValidateJWT(token, "secret")
	require.NoError(t, err)
	require.Equal(t, "user-123", userId)
}

func TestValidateJWTWrongSecret(t *testing.T) {
	token, err := MakeJWT("user-123", "secret", time.Hour)
	require.NoError(t, err)

	_, err = ValidateJWT(token, "other-secret")
	require.Error(t, err)
}

func TestValidateJWTExpired(t *testing.T) {
	token, err := MakeJWT("user-123", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateJWT(token, "secret")
	require.Error(t, err)
}

func TestGetBearerToken(t *testing.T) {
	t.Run("valid header", func(t *testing.T) {
		headers := http.Header{}
		headers.Set("Authorization", "Bearer some-token")

		token, err := GetBearerToken(headers)
		require.NoError(t, err)
		require.Equal(t, "some-token", token)
	})

	t.Run("missing header", func(t *testing.T) {
		_, err := GetBearerToken(http.Header{})
		require.ErrorIs(t, err, ErrNoAuthorizationHeader)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		headers := http.Header{}
		headers.Set("Authorization", "Basic abc123")

		_, err := GetBearerToken(headers)
		require.ErrorIs(t, err, ErrMalformedAuthHeader)
	})

	t.Run("empty token", func(t *testing.T) {
		headers := http.Header{}
		headers.Set("Authorization", "Bearer   ")

		_, err := GetBearerToken(headers)
		require.ErrorIs(t, err, ErrNoTokenInAuthHeader)
	})
}

func TestNewResetToken(t *testing.T) {
	token, expires := NewResetToken()

	require.NotEmpty(t, token)
	require.True(t, expires.After(time.Now()))

	otherToken, _ := NewResetToken()
	require.NotEqual(t, token, otherToken)
}
