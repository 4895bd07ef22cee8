package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("vendor@example.com", "access-secret", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token, "access-secret")
	require.NoError(t, err)
	assert.Equal(t, "vendor@example.com", claims.Email)
	assert.Equal(t, "vendor@example.com", claims.Subject)
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("vendor@example.com", "access-secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseJWT(token, "refresh-secret")
	assert.Error(t, err)
}

func TestParseJWTExpired(t *testing.T) {
	token, err := GenerateJWT("vendor@example.com", "access-secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT(token, "access-secret")
	assert.Error(t, err)
}

func TestParseJWTMalformed(t *testing.T) {
	_, err := ParseJWT("not-a-token", "access-secret")
	assert.Error(t, err)
}
