package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewAuthService(nil, "test-secret")

	token, err := svc.GenerateToken(42)
	require.NoError(t, err)

	hostID, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), hostID)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewAuthService(nil, "secret-one").GenerateToken(7)
	require.NoError(t, err)

	_, err = NewAuthService(nil, "secret-two").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := NewAuthService(nil, "test-secret").ValidateToken("not.a.token")
	assert.Error(t, err)
}
