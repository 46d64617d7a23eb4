package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestSignAndVerifyToken(t *testing.T) {
	token, err := SignToken(testSecret, "editor@shabab.gov.eg", "news", time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "editor@shabab.gov.eg", claims.Email)
	assert.Equal(t, "news", claims.Role)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, err := SignToken(testSecret, "a@b.c", "centers", time.Now())
	require.NoError(t, err)

	_, err = VerifyToken("another-secret", token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyTokenExpired(t *testing.T) {
	issued := time.Now().Add(-TokenTTL - time.Hour)
	token, err := SignToken(testSecret, "a@b.c", "activities", issued)
	require.NoError(t, err)

	_, err = VerifyToken(testSecret, token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyTokenGarbage(t *testing.T) {
	_, err := VerifyToken(testSecret, "not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenExpiryIsSevenDays(t *testing.T) {
	now := time.Now()
	token, err := SignToken(testSecret, "a@b.c", "news", now)
	require.NoError(t, err)

	claims, err := VerifyToken(testSecret, token)
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, now.Add(TokenTTL), claims.ExpiresAt.Time, 2*time.Second)
}
