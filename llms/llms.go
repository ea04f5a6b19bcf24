// Package llms dispatches a resolved BuilderContract to the per-kind
// transport adapter that matches it (§4.11, the Builder Bridge's client
// construction step). It depends on config/builder and each llms/<kind>
// adapter; none of those import this package back.
package llms

import (
	"github.com/promptcmd/promptcmd/config/builder"
	"github.com/promptcmd/promptcmd/config/providers"
	"github.com/promptcmd/promptcmd/core"
	"github.com/promptcmd/promptcmd/llms/anthropic"
	"github.com/promptcmd/promptcmd/llms/google"
	"github.com/promptcmd/promptcmd/llms/ollama"
	"github.com/promptcmd/promptcmd/llms/openai"
	"github.com/promptcmd/promptcmd/llms/openrouter"
)

// ChatModel is the common surface every Builder Bridge adapter's
// constructed client satisfies. LLM invocation is out of scope, so this
// only proves a client (or, for kinds without a wired SDK, a validated
// contract) was actually built for the resolved model.
type ChatModel interface {
	ChatModelName() string
}

// Build dispatches contract to the adapter matching its Kind, constructing
// the live client a `run` invocation would call. Each branch's error case
// is returned explicitly (rather than as `return adapter.New(contract)`)
// so a failed construction yields a true nil ChatModel, not an interface
// wrapping a nil *adapter.Chat.
func Build(contract *builder.BuilderContract) (ChatModel, error) {
	switch contract.Kind {
	case providers.Anthropic:
		chat, err := anthropic.New(contract)
		if err != nil {
			return nil, err
		}
		return chat, nil
	case providers.OpenAI:
		chat, err := openai.New(contract)
		if err != nil {
			return nil, err
		}
		return chat, nil
	case providers.Ollama:
		chat, err := ollama.New(contract)
		if err != nil {
			return nil, err
		}
		return chat, nil
	case providers.OpenRouter:
		chat, err := openrouter.New(contract)
		if err != nil {
			return nil, err
		}
		return chat, nil
	case providers.Google:
		chat, err := google.New(contract)
		if err != nil {
			return nil, err
		}
		return chat, nil
	default:
		return nil, core.NewError("llms.build", core.ErrInvalidInput,
			"unrecognized provider kind '"+string(contract.Kind)+"'", nil)
	}
}
