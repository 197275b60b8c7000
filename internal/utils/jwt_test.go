package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	tok, err := NewAccessToken("s3cret", 42, "chef@example.com", "superadmin", 15)
	require.NoError(t, err)
	require.NotEmpty(t, tok.Token)

	claims, err := VerifyAccessToken(tok.Token, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.AdminID)
	assert.Equal(t, "chef@example.com", claims.Email)
	assert.Equal(t, "superadmin", claims.Role)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	tok, err := NewAccessToken("s3cret", 1, "a@b.fr", "admin", 15)
	require.NoError(t, err)

	_, err = VerifyAccessToken(tok.Token, "other-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	tok, err := NewAccessToken("s3cret", 1, "a@b.fr", "admin", -1)
	require.NoError(t, err)

	_, err = VerifyAccessToken(tok.Token, "s3cret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := VerifyAccessToken("not.a.jwt", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("hunter2", 4)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(hash, "hunter2"))
	assert.False(t, VerifyPassword(hash, "hunter3"))
}
