package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	token, err := NewSessionToken("test-secret", "oid-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	openID, err := ParseSessionToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, "oid-123", openID)
}

func TestParseSessionToken_WrongSecret(t *testing.T) {
	token, err := NewSessionToken("test-secret", "oid-123")
	require.NoError(t, err)

	_, err = ParseSessionToken("other-secret", token)
	assert.Error(t, err)
}

func TestParseSessionToken_Garbage(t *testing.T) {
	_, err := ParseSessionToken("test-secret", "not-a-jwt")
	assert.Error(t, err)
}
