package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	payload := &Payload{Name: "alice", Password: "secret"}

	token, err := GenerateToken(payload, "key", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token, "key")
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Name)
	assert.Equal(t, "secret", claims.Password)
	assert.Equal(t, TokenIssuer, claims.Issuer)
	assert.Greater(t, claims.ExpiresAt, time.Now().Unix())
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(&Payload{Name: "alice"}, "key", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "other-key")
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken(&Payload{Name: "alice"}, "key", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, "key")
	assert.Error(t, err)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := ParseToken("not.a.token", "key")
	assert.Error(t, err)
}
