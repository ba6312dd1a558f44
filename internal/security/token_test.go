package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 15, 60)
	token, err := tm.GenerateAccessToken(10, "gardener@example.com")
	require.NoError(t, err)

	claims, err := tm.ValidateToken(token, TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, int32(10), claims.UserID)
	assert.Equal(t, "gardener@example.com", claims.Email)
	assert.Equal(t, TokenTypeAccess, claims.Type)
}

func TestRefreshTokenIsNotAnAccessToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 15, 60)
	refresh, err := tm.GenerateRefreshToken(10, "gardener@example.com")
	require.NoError(t, err)

	_, err = tm.ValidateToken(refresh, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	_, err = tm.ValidateToken(refresh, TokenTypeRefresh)
	assert.NoError(t, err)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager("test-secret", 15, 60)
	other := NewTokenManager("other-secret", 15, 60)

	token, err := tm.GenerateAccessToken(10, "gardener@example.com")
	require.NoError(t, err)

	_, err = other.ValidateToken(token, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	tm := NewTokenManager("test-secret", -1, 60) // already expired

	token, err := tm.GenerateAccessToken(10, "gardener@example.com")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = tm.ValidateToken(token, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", 15, 60)
	_, err := tm.ValidateToken("not.a.jwt", TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
