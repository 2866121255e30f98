package keyring_test

import (
	"testing"

	"github.com/alkime/recap/internal/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gokeyring "github.com/zalando/go-keyring"
)

func TestSetGet(t *testing.T) {
	gokeyring.MockInit()

	assert.False(t, keyring.IsSet(keyring.Gemini))
	require.NoError(t, keyring.Set(keyring.Gemini, "g-123"))
	assert.True(t, keyring.IsSet(keyring.Gemini))

	v, err := keyring.Get(keyring.Gemini)
	require.NoError(t, err)
	assert.Equal(t, "g-123", v)
}

func TestResolve_Precedence(t *testing.T) {
	gokeyring.MockInit()
	t.Setenv("OPENAI_API_KEY", "")

	_, err := keyring.Resolve(keyring.OpenAI, "")
	require.ErrorIs(t, err, keyring.ErrNotFound)

	require.NoError(t, keyring.Set(keyring.OpenAI, "from-keychain"))
	v, err := keyring.Resolve(keyring.OpenAI, "")
	require.NoError(t, err)
	assert.Equal(t, "from-keychain", v)

	t.Setenv("OPENAI_API_KEY", "from-env")
	v, err = keyring.Resolve(keyring.OpenAI, "")
	require.NoError(t, err)
	assert.Equal(t, "from-env", v)

	v, err = keyring.Resolve(keyring.OpenAI, "explicit")
	require.NoError(t, err)
	assert.Equal(t, "explicit", v)
}

func TestAPIKeyFromServiceName(t *testing.T) {
	k, err := keyring.APIKeyFromServiceName("postmark")
	require.NoError(t, err)
	assert.Equal(t, keyring.Postmark, k)

	_, err = keyring.APIKeyFromServiceName("slack")
	assert.Error(t, err)
}
