package loadbalancer

import (
	"context"
	"testing"

	"github.com/promptcmd/promptcmd/config"
	"github.com/promptcmd/promptcmd/config/providers"
	"github.com/promptcmd/promptcmd/config/resolver"
	"github.com/promptcmd/promptcmd/stats"
)

func baseMember(name, model string, weight uint32) resolver.GroupMember {
	return resolver.GroupMember{
		Base: &resolver.Base{
			Name: name,
			Kind: providers.Kind(name),
			Globals: config.GlobalProperties{
				Model: config.Some(model, config.SourceBase(name)),
			},
		},
		Weight: weight,
	}
}

func TestChoose_ZeroTokensSelectsHighestWeight(t *testing.T) {
	group := &resolver.Group{
		Name: "g",
		Members: []resolver.GroupMember{
			baseMember("openai", "gpt-4", 1),
			baseMember("anthropic", "claude", 3),
			baseMember("google", "gemini", 2),
		},
	}
	lb := &LoadBalancer{Stats: stats.NewMemory()}
	choice, err := lb.Choose(context.Background(), group, ScopeGlobal, LevelModel)
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if choice.ModelInfo.Provider != "anthropic" {
		t.Fatalf("want anthropic (highest weight), got %s", choice.ModelInfo.Provider)
	}
}

func TestChoose_EqualWeightsSelectsUnderutilized(t *testing.T) {
	store := stats.NewMemory()
	ctx := context.Background()
	store.Log(ctx, stats.Record{Provider: "openai", Model: "gpt-4", PromptTokens: 100, CompletionTokens: 100, Success: true})
	store.Log(ctx, stats.Record{Provider: "anthropic", Model: "claude", PromptTokens: 50, CompletionTokens: 50, Success: true})

	group := &resolver.Group{
		Name: "g",
		Members: []resolver.GroupMember{
			baseMember("openai", "gpt-4", 1),
			baseMember("anthropic", "claude", 1),
		},
	}
	lb := &LoadBalancer{Stats: store}
	choice, err := lb.Choose(ctx, group, ScopeGlobal, LevelModel)
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if choice.ModelInfo.Provider != "anthropic" {
		t.Fatalf("want underutilized anthropic, got %s", choice.ModelInfo.Provider)
	}
}

func TestChoose_HeavilyOverusedModelLosesToLightlyUsed(t *testing.T) {
	store := stats.NewMemory()
	ctx := context.Background()
	store.Log(ctx, stats.Record{Provider: "openai", Model: "gpt-4", PromptTokens: 800, CompletionTokens: 100, Success: true})
	store.Log(ctx, stats.Record{Provider: "anthropic", Model: "claude", PromptTokens: 50, CompletionTokens: 50, Success: true})

	group := &resolver.Group{
		Name: "g",
		Members: []resolver.GroupMember{
			baseMember("openai", "gpt-4", 1),
			baseMember("anthropic", "claude", 1),
		},
	}
	lb := &LoadBalancer{Stats: store}
	choice, err := lb.Choose(ctx, group, ScopeGlobal, LevelModel)
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if choice.ModelInfo.Provider != "anthropic" {
		t.Fatalf("want anthropic, got %s", choice.ModelInfo.Provider)
	}
}

func TestChoose_EmptyGroupErrors(t *testing.T) {
	lb := &LoadBalancer{Stats: stats.NewMemory()}
	_, err := lb.Choose(context.Background(), &resolver.Group{Name: "g"}, ScopeGlobal, LevelModel)
	if err == nil {
		t.Fatal("want error for empty group")
	}
}

// P6 / Scenario D — zero total usage: ties broken by list order among
// equal-weight members.
func TestChoose_ZeroTokensTiesBrokenByListOrder(t *testing.T) {
	group := &resolver.Group{
		Name: "mixed",
		Members: []resolver.GroupMember{
			baseMember("openai", "gpt4", 1),
			baseMember("anthropic", "claude", 1),
		},
	}
	lb := &LoadBalancer{Stats: stats.NewMemory()}
	choice, err := lb.Choose(context.Background(), group, ScopeGroup, LevelVariant)
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if choice.ModelInfo.Provider != "openai" {
		t.Fatalf("want first member openai on tie, got %s", choice.ModelInfo.Provider)
	}
}

// P6 / Scenario E — deficit(openai)=1/3-1/2=-1/6, deficit(coder)=2/3-1/2=1/6,
// coder wins.
func TestChoose_ScenarioE_DeficitPicksHigherShareMember(t *testing.T) {
	store := stats.NewMemory()
	ctx := context.Background()
	store.Log(ctx, stats.Record{Provider: "openai", Model: "gpt4", PromptTokens: 60, CompletionTokens: 40, Success: true})
	store.Log(ctx, stats.Record{Provider: "anthropic", Model: "claude-haiku", Variant: "coder", PromptTokens: 60, CompletionTokens: 40, Success: true})

	group := &resolver.Group{
		Name: "mixed",
		Members: []resolver.GroupMember{
			baseMember("openai", "gpt4", 1),
			{
				Variant: &resolver.Variant{Name: "coder", BaseName: "anthropic", Globals: config.GlobalProperties{
					Model: config.Some("claude-haiku", config.SourceVariant("coder")),
				}},
				Weight: 2,
			},
		},
	}
	lb := &LoadBalancer{Stats: store}
	choice, err := lb.Choose(ctx, group, ScopeGlobal, LevelVariant)
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if choice.Member.Variant == nil || choice.Member.Variant.Name != "coder" {
		t.Fatalf("expected coder to win on deficit, got %+v", choice.Member)
	}
}
