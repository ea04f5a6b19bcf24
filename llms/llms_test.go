package llms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptcmd/promptcmd/config/builder"
	"github.com/promptcmd/promptcmd/config/providers"
)

func TestBuild_DispatchesToMatchingAdapter(t *testing.T) {
	cases := []struct {
		kind   providers.Kind
		extras map[string]string
	}{
		{providers.Anthropic, map[string]string{"api_key": "sk-ant-test"}},
		{providers.OpenAI, map[string]string{"api_key": "sk-test"}},
		{providers.Ollama, map[string]string{}},
		{providers.OpenRouter, map[string]string{"api_key": "sk-or-test"}},
		{providers.Google, map[string]string{"api_key": "goog-test"}},
	}

	for _, c := range cases {
		t.Run(string(c.kind), func(t *testing.T) {
			contract := &builder.BuilderContract{Kind: c.kind, Model: "m", Extras: c.extras}
			chat, err := Build(contract)
			require.NoError(t, err)
			assert.Equal(t, "m", chat.ChatModelName())
		})
	}
}

func TestBuild_UnrecognizedKindErrors(t *testing.T) {
	contract := &builder.BuilderContract{Kind: providers.Kind("bogus"), Model: "m"}
	chat, err := Build(contract)
	assert.Error(t, err)
	assert.Nil(t, chat)
}

func TestBuild_PropagatesAdapterConstructionError(t *testing.T) {
	contract := &builder.BuilderContract{Kind: providers.Anthropic, Model: "m", Extras: map[string]string{}}
	chat, err := Build(contract)
	assert.Error(t, err)
	assert.Nil(t, chat)
}
