package openai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptcmd/promptcmd/config/builder"
)

func TestNew_BuildsClientFromContract(t *testing.T) {
	contract := &builder.BuilderContract{
		Model:       "gpt-5",
		Temperature: 0.2,
		MaxTokens:   256,
		Extras:      map[string]string{"api_key": "sk-test"},
	}

	chat, err := New(contract)
	require.NoError(t, err)
	assert.NotNil(t, chat.Client)
	assert.Equal(t, "gpt-5", chat.Model)
	assert.Equal(t, uint32(256), chat.MaxTokens)
}

func TestNew_MissingAPIKeyErrors(t *testing.T) {
	_, err := New(&builder.BuilderContract{Model: "gpt-5", Extras: map[string]string{}})
	assert.Error(t, err)
}

func TestNew_CustomEndpointOverridesBaseURL(t *testing.T) {
	contract := &builder.BuilderContract{
		Model:  "gpt-5",
		Extras: map[string]string{"api_key": "sk-test", "endpoint": "https://my-proxy.internal/v1"},
	}

	chat, err := New(contract)
	require.NoError(t, err)
	assert.NotNil(t, chat.Client)
}
