package resolver

import (
	"strings"
	"testing"

	"github.com/promptcmd/promptcmd/config"
	"github.com/promptcmd/promptcmd/config/providers"
)

// P8 — redaction: an api_key must never appear verbatim in diagnostic output.
func TestDisplay_P8_RedactsAPIKey(t *testing.T) {
	secret := "sk-ant-REDACTED"
	base := &Base{
		Name: "anthropic",
		Kind: providers.Anthropic,
		Globals: config.GlobalProperties{
			Model: config.Some("claude", config.SourceBase("anthropic")),
		},
		Extras: providers.SourcedExtras{
			"api_key": config.Some(secret, config.SourceBase("anthropic")),
		},
	}

	out := Display(base)
	if !strings.Contains(out, "redacted") {
		t.Fatalf("expected redacted marker in output, got %q", out)
	}
	if strings.Contains(out, secret) {
		t.Fatalf("expected api_key bytes not present, got %q", out)
	}
}

// P8 — a short api_key is redacted too, not merely ones over some length.
func TestDisplay_P8_RedactsShortAPIKey(t *testing.T) {
	base := &Base{
		Name: "openai",
		Kind: providers.OpenAI,
		Globals: config.GlobalProperties{
			Model: config.Some("gpt4", config.SourceBase("openai")),
		},
		Extras: providers.SourcedExtras{
			"api_key": config.Some("short", config.SourceBase("openai")),
		},
	}

	out := Display(base)
	if !strings.Contains(out, "redacted") {
		t.Fatalf("expected redacted marker in output, got %q", out)
	}
	if strings.Contains(out, "short") {
		t.Fatalf("expected api_key bytes not present, got %q", out)
	}
}

func TestDisplay_GroupListsMembersIndented(t *testing.T) {
	group := &Group{
		Name: "mixed",
		Members: []GroupMember{
			{Base: &Base{Name: "openai", Kind: providers.OpenAI, Globals: config.GlobalProperties{
				Model: config.Some("gpt4", config.SourceBase("openai")),
			}}, Weight: 1},
		},
	}
	out := Display(group)
	if !strings.HasPrefix(out, "Group: mixed =>\n") {
		t.Fatalf("expected group header, got %q", out)
	}
	if !strings.Contains(out, "- openai:") {
		t.Fatalf("expected indented member listing, got %q", out)
	}
}
