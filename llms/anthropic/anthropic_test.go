package anthropic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptcmd/promptcmd/config/builder"
)

func TestNew_BuildsClientFromContract(t *testing.T) {
	contract := &builder.BuilderContract{
		Model:       "claude-sonnet-4-5",
		Temperature: 0.5,
		System:      "be terse",
		MaxTokens:   512,
		Extras:      map[string]string{"api_key": "sk-ant-test"},
	}

	chat, err := New(contract)
	require.NoError(t, err)
	assert.NotNil(t, chat.Client)
	assert.Equal(t, "claude-sonnet-4-5", chat.Model)
	assert.Equal(t, float32(0.5), chat.Temperature)
	assert.Equal(t, "be terse", chat.System)
	assert.Equal(t, uint32(512), chat.MaxTokens)
}

func TestNew_MissingAPIKeyErrors(t *testing.T) {
	contract := &builder.BuilderContract{Model: "claude-sonnet-4-5", Extras: map[string]string{}}

	_, err := New(contract)
	assert.Error(t, err)
}

func TestNew_RespectsCustomEndpoint(t *testing.T) {
	contract := &builder.BuilderContract{
		Model:  "claude-sonnet-4-5",
		Extras: map[string]string{"api_key": "sk-ant-test", "endpoint": "https://proxy.example.com"},
	}

	chat, err := New(contract)
	require.NoError(t, err)
	assert.NotNil(t, chat.Client)
}
