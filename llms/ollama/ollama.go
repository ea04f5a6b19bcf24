// Package ollama builds a local Ollama client from a resolved
// Configuration Resolver contract (§4.11, the Builder Bridge's Ollama
// adapter). LLM invocation itself is out of scope; this package proves the
// contract is sufficient to construct a live, ready-to-call client.
package ollama

import (
	"net/http"
	"net/url"

	"github.com/ollama/ollama/api"

	"github.com/promptcmd/promptcmd/config/builder"
	"github.com/promptcmd/promptcmd/core"
)

// DefaultHost is used when the resolved configuration's "endpoint" extra
// is absent.
const DefaultHost = "http://127.0.0.1:11434"

// Chat wraps a constructed Ollama client together with the resolved call
// parameters the Builder Bridge handed off.
type Chat struct {
	Client      *api.Client
	Model       string
	Temperature float32
	System      string
	MaxTokens   uint32
}

// ChatModelName satisfies llms.ChatModel, reporting the resolved model
// this client was constructed for.
func (c *Chat) ChatModelName() string { return c.Model }

// New constructs a Chat from a resolved BuilderContract. An absent or empty
// endpoint falls back to DefaultHost; New fails with core.ErrInvalidInput
// only if the endpoint cannot be parsed as a URL.
func New(contract *builder.BuilderContract) (*Chat, error) {
	endpoint, ok := contract.Extras["endpoint"]
	if !ok || endpoint == "" {
		endpoint = DefaultHost
	}

	host, err := url.Parse(endpoint)
	if err != nil {
		return nil, core.NewError("llms.ollama.new", core.ErrInvalidInput,
			"invalid ollama endpoint "+endpoint, err)
	}

	return &Chat{
		Client:      api.NewClient(host, http.DefaultClient),
		Model:       contract.Model,
		Temperature: contract.Temperature,
		System:      contract.System,
		MaxTokens:   contract.MaxTokens,
	}, nil
}
