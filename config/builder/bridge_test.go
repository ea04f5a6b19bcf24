package builder

import (
	"testing"

	"github.com/promptcmd/promptcmd/config"
	"github.com/promptcmd/promptcmd/config/providers"
	"github.com/promptcmd/promptcmd/config/resolver"
	"github.com/promptcmd/promptcmd/core"
)

func TestToBuilderContract_BaseFillsAllFields(t *testing.T) {
	base := &resolver.Base{
		Name: "openai",
		Kind: providers.OpenAI,
		Globals: config.GlobalProperties{
			Model:       config.Some("gpt4", config.SourceBase("openai")),
			Temperature: config.Some[float32](0.7, config.SourceDefault()),
			MaxTokens:   config.Some[uint32](1000, config.SourceDefault()),
		},
		Extras: providers.SourcedExtras{
			"api_key": config.Some("K", config.SourceBase("openai")),
		},
	}

	contract, err := ToBuilderContract(base)
	if err != nil {
		t.Fatalf("ToBuilderContract: %v", err)
	}
	if contract.Model != "gpt4" || contract.Temperature != 0.7 || contract.MaxTokens != 1000 {
		t.Fatalf("unexpected contract: %+v", contract)
	}
	if contract.Extras["api_key"] != "K" {
		t.Fatalf("expected api_key K, got %+v", contract.Extras)
	}
}

func TestToBuilderContract_MissingRequiredExtraErrors(t *testing.T) {
	base := &resolver.Base{
		Name: "anthropic",
		Kind: providers.Anthropic,
		Globals: config.GlobalProperties{
			Model: config.Some("claude", config.SourceBase("anthropic")),
		},
		Extras: providers.SourcedExtras{},
	}

	_, err := ToBuilderContract(base)
	if core.CodeOf(err) != core.ErrRequiredConfiguration {
		t.Fatalf("expected ErrRequiredConfiguration, got %v", err)
	}
}

func TestToBuilderContract_NoModelErrors(t *testing.T) {
	base := &resolver.Base{Name: "openai", Kind: providers.OpenAI, Extras: providers.SourcedExtras{}}

	_, err := ToBuilderContract(base)
	if core.CodeOf(err) != core.ErrNoName {
		t.Fatalf("expected ErrNoName, got %v", err)
	}
}

func TestToBuilderContract_GroupRejected(t *testing.T) {
	_, err := ToBuilderContract(&resolver.Group{Name: "g"})
	if core.CodeOf(err) != core.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for a group, got %v", err)
	}
}

func TestToBuilderContract_OutOfRangeTemperatureFailsValidation(t *testing.T) {
	base := &resolver.Base{
		Name: "openai",
		Kind: providers.OpenAI,
		Globals: config.GlobalProperties{
			Model:       config.Some("gpt4", config.SourceBase("openai")),
			Temperature: config.Some[float32](9.9, config.SourceDotprompt("p")),
		},
		Extras: providers.SourcedExtras{"api_key": config.Some("K", config.SourceBase("openai"))},
	}

	_, err := ToBuilderContract(base)
	if core.CodeOf(err) != core.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for out-of-range temperature, got %v", err)
	}
}
