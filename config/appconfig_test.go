package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/promptcmd/promptcmd/config/providers"
)

func fromTOML(t *testing.T, toml string) *AppConfig {
	t.Helper()
	v := viper.New()
	v.SetConfigType("toml")
	if err := v.ReadConfig(strings.NewReader(toml)); err != nil {
		t.Fatalf("reading toml: %v", err)
	}
	cfg, err := FromViper(v)
	if err != nil {
		t.Fatalf("FromViper: %v", err)
	}
	return cfg
}

func TestFromViper_ParsesBaseAndVariantAndExtras(t *testing.T) {
	cfg := fromTOML(t, `
[providers.openai]
api_key = "K"
model = "gpt4"
temperature = 0.5

[providers.openai.fast]
model = "gpt4-mini"
`)

	section := cfg.Providers["openai"]
	if section.Config.Model == nil || *section.Config.Model != "gpt4" {
		t.Fatalf("expected base model gpt4, got %+v", section.Config.Model)
	}
	if section.Extras["api_key"] != "K" {
		t.Fatalf("expected api_key extra K, got %+v", section.Extras)
	}
	named, ok := section.Named["fast"]
	if !ok || named.Model == nil || *named.Model != "gpt4-mini" {
		t.Fatalf("expected variant fast with model gpt4-mini, got %+v ok=%v", named, ok)
	}
}

func TestFromViper_ParsesGroupsWithWeights(t *testing.T) {
	cfg := fromTOML(t, `
[[groups.mixed.providers]]
name = "openai"
weight = 1

[[groups.mixed.providers]]
name = "anthropic"
weight = 3
`)

	group, ok := cfg.Groups["mixed"]
	if !ok || len(group.Providers) != 2 {
		t.Fatalf("expected 2-member group, got %+v ok=%v", group, ok)
	}
	if group.Providers[0].Name != "openai" || group.Providers[0].Weight != 1 {
		t.Fatalf("unexpected first member: %+v", group.Providers[0])
	}
	if group.Providers[1].Name != "anthropic" || group.Providers[1].Weight != 3 {
		t.Fatalf("unexpected second member: %+v", group.Providers[1])
	}
}

func TestFromViper_MissingTablesAreEmpty(t *testing.T) {
	cfg := fromTOML(t, ``)
	if len(cfg.Groups) != 0 {
		t.Fatalf("expected no groups, got %+v", cfg.Groups)
	}
	for _, kind := range providers.Order {
		if _, ok := cfg.Providers[kind]; !ok {
			t.Errorf("expected an empty ProviderSection for %s", kind)
		}
	}
}

func TestMergeChain_HigherTierWinsPerField(t *testing.T) {
	low := GlobalProperties{
		Temperature: Some[float32](0.2, SourceDefault()),
		Model:       Some("gpt4", SourceBase("openai")),
	}
	high := GlobalProperties{
		Temperature: Some[float32](0.9, SourceDotprompt("p")),
	}

	merged := MergeChain(low, high)
	if merged.Temperature.Value != 0.9 {
		t.Fatalf("expected high tier temperature to win, got %v", merged.Temperature.Value)
	}
	if merged.Model.Value != "gpt4" {
		t.Fatalf("expected low tier model to survive untouched, got %v", merged.Model.Value)
	}
}
