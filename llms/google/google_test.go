package google

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptcmd/promptcmd/config/builder"
)

func TestNew_ValidatesRequiredAPIKey(t *testing.T) {
	_, err := New(&builder.BuilderContract{Model: "gemini-2.5-pro", Extras: map[string]string{}})
	assert.Error(t, err)
}

func TestNew_ReturnsPopulatedChat(t *testing.T) {
	contract := &builder.BuilderContract{
		Model:       "gemini-2.5-pro",
		Temperature: 0.3,
		MaxTokens:   128,
		Extras:      map[string]string{"api_key": "test-key"},
	}

	chat, err := New(contract)
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-pro", chat.Model)
	assert.Equal(t, float32(0.3), chat.Temperature)
	assert.Equal(t, uint32(128), chat.MaxTokens)
}

func TestInvoke_AlwaysFails(t *testing.T) {
	chat, err := New(&builder.BuilderContract{Model: "gemini-2.5-pro", Extras: map[string]string{"api_key": "k"}})
	require.NoError(t, err)

	assert.Error(t, chat.Invoke())
}
