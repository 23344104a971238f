package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartTokenRoundTrip(t *testing.T) {
	tokens := NewCartTokens("test-secret")

	signed, err := tokens.Generate("cart-abc")
	require.NoError(t, err)

	key, err := tokens.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, "cart-abc", key)
}

func TestCartTokenWrongSecret(t *testing.T) {
	signed, err := NewCartTokens("secret-a").Generate("cart-abc")
	require.NoError(t, err)

	_, err = NewCartTokens("secret-b").Validate(signed)
	assert.Error(t, err)
}

func TestCartTokenGarbage(t *testing.T) {
	_, err := NewCartTokens("secret").Validate("not.a.token")
	assert.Error(t, err)
}
