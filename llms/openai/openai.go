// Package openai builds an OpenAI API client from a resolved Configuration
// Resolver contract (§4.11, the Builder Bridge's OpenAI adapter). LLM
// invocation itself is out of scope; this package proves the contract is
// sufficient to construct a live, ready-to-call client.
package openai

import (
	openai "github.com/sashabaranov/go-openai"

	"github.com/promptcmd/promptcmd/config/builder"
	"github.com/promptcmd/promptcmd/core"
)

// Chat wraps a constructed OpenAI client together with the resolved call
// parameters the Builder Bridge handed off.
type Chat struct {
	Client      *openai.Client
	Model       string
	Temperature float32
	System      string
	MaxTokens   uint32
}

// ChatModelName satisfies llms.ChatModel, reporting the resolved model
// this client was constructed for.
func (c *Chat) ChatModelName() string { return c.Model }

// New constructs a Chat from a resolved BuilderContract. It fails with
// core.ErrRequiredConfiguration if api_key was never resolved.
func New(contract *builder.BuilderContract) (*Chat, error) {
	apiKey, ok := contract.Extras["api_key"]
	if !ok {
		return nil, core.NewError("llms.openai.new", core.ErrRequiredConfiguration,
			"'api_key' is required but not configured", nil)
	}

	cfg := openai.DefaultConfig(apiKey)
	if endpoint, ok := contract.Extras["endpoint"]; ok && endpoint != "" {
		cfg.BaseURL = endpoint
	}

	return &Chat{
		Client:      openai.NewClientWithConfig(cfg),
		Model:       contract.Model,
		Temperature: contract.Temperature,
		System:      contract.System,
		MaxTokens:   contract.MaxTokens,
	}, nil
}
