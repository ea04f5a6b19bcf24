// Package google is the Builder Bridge's Google adapter (§4.11). No Google
// Generative AI Go SDK is present anywhere in this module's dependency
// pool, so this adapter validates the resolved contract and surfaces
// ModelInfo without constructing a live transport (see DESIGN.md).
package google

import (
	"github.com/promptcmd/promptcmd/config/builder"
	"github.com/promptcmd/promptcmd/core"
)

// Chat carries the validated call parameters for a Google-backed
// invocation. It has no client field: no live transport is available.
type Chat struct {
	Model       string
	Temperature float32
	System      string
	MaxTokens   uint32
}

// ChatModelName satisfies llms.ChatModel, reporting the resolved model
// this Chat was validated for.
func (c *Chat) ChatModelName() string { return c.Model }

// New validates contract against the Google schema (api_key required) and
// returns a Chat describing the invocation that would be made. It never
// constructs a live client; calling Invoke always fails.
func New(contract *builder.BuilderContract) (*Chat, error) {
	if _, ok := contract.Extras["api_key"]; !ok {
		return nil, core.NewError("llms.google.new", core.ErrRequiredConfiguration,
			"'api_key' is required but not configured", nil)
	}
	return &Chat{
		Model:       contract.Model,
		Temperature: contract.Temperature,
		System:      contract.System,
		MaxTokens:   contract.MaxTokens,
	}, nil
}

// Invoke always fails: no Google Generative AI Go SDK is wired into this
// module, so a Chat built by New can be inspected (ModelInfo, resolved
// parameters) but never actually called.
func (c *Chat) Invoke() error {
	return core.NewError("llms.google.invoke", core.ErrProviderDown,
		"google transport is not available in this build: no Google Generative AI Go SDK is wired", nil)
}
