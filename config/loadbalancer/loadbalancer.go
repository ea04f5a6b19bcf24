// Package loadbalancer implements the weighted-deficit Load Balancer (§4.4):
// choosing which member of a resolved Group to dispatch an invocation to,
// biased toward members that are under their configured weight share of
// recent token usage.
package loadbalancer

import (
	"context"

	"github.com/promptcmd/promptcmd/config/resolver"
	"github.com/promptcmd/promptcmd/core"
	"github.com/promptcmd/promptcmd/stats"
)

// BalanceLevel selects which dimension of usage is treated as the shared
// resource being balanced (§4.4).
type BalanceLevel int

const (
	// LevelModel balances over all usage of the same (provider, model)
	// pair; a different model under the same provider does not count
	// against it.
	LevelModel BalanceLevel = iota
	// LevelProvider balances over all usage of the same provider,
	// regardless of model.
	LevelProvider
	// LevelVariant balances over usage of the same named variant only.
	LevelVariant
)

// BalanceScope selects whether usage is aggregated across the whole
// statistics store (Global) or only within this group's own invocations
// (Group).
type BalanceScope int

const (
	ScopeGlobal BalanceScope = iota
	ScopeGroup
)

// Choice is the selected group member and the ModelInfo it resolved to.
type Choice struct {
	Member    resolver.GroupMember
	ModelInfo resolver.ModelInfo
}

// LoadBalancer selects a Group member weighted by its configured share of
// recent token usage.
type LoadBalancer struct {
	Stats stats.Store
}

// Choose implements §4.4: aggregate each member's recent usage per scope
// and level, then pick the member with the greatest deficit (configured
// weight share minus actual token share), falling back to the member with
// the greatest weight when no member has any recorded tokens yet.
func (lb *LoadBalancer) Choose(ctx context.Context, group *resolver.Group, scope BalanceScope, level BalanceLevel) (Choice, error) {
	if len(group.Members) == 0 {
		return Choice{}, core.NewError("loadbalancer.choose", core.ErrNoGroups, "group has no members", nil)
	}

	modelInfos := make([]resolver.ModelInfo, len(group.Members))
	for i, m := range group.Members {
		mi, err := m.ModelInfo()
		if err != nil {
			return Choice{}, err
		}
		modelInfos[i] = mi
	}

	usage := make([]uint64, len(group.Members))
	var totalWeight uint64
	var totalTokens uint64

	for i, m := range group.Members {
		filter := stats.Filter{Provider: strp(modelInfos[i].Provider)}
		if level == LevelModel || level == LevelVariant {
			filter.Model = strp(modelInfos[i].Model)
		}
		if level == LevelVariant && m.Variant != nil {
			filter.Variant = strp(m.Variant.Name)
		}
		if scope == ScopeGroup {
			filter.Group = strp(group.Name)
		}
		success := true
		filter.Success = &success

		summaries, err := lb.Stats.Summary(ctx, filter)
		if err != nil {
			return Choice{}, core.NewError("loadbalancer.choose", core.ErrProviderDown, "fetching usage summary", err)
		}

		var tokens uint64
		for _, s := range summaries {
			tokens += uint64(s.PromptTokens) + uint64(s.CompletionTokens)
		}
		usage[i] = tokens
		totalTokens += tokens
		totalWeight += uint64(m.Weight)
	}

	if totalTokens == 0 {
		best := maxWeightIndex(group.Members)
		return Choice{Member: group.Members[best], ModelInfo: modelInfos[best]}, nil
	}

	best := maxDeficitIndex(group.Members, usage, totalWeight, totalTokens)
	return Choice{Member: group.Members[best], ModelInfo: modelInfos[best]}, nil
}

// maxWeightIndex returns the index of the highest-weight member, ties
// broken by list order (the first of equal-weight members wins).
func maxWeightIndex(members []resolver.GroupMember) int {
	best := 0
	for i := 1; i < len(members); i++ {
		if members[i].Weight > members[best].Weight {
			best = i
		}
	}
	return best
}

// maxDeficitIndex returns the index of the member with the greatest
// deficit = weight/totalWeight - tokens/totalTokens, ties broken by list
// order.
func maxDeficitIndex(members []resolver.GroupMember, usage []uint64, totalWeight, totalTokens uint64) int {
	best := 0
	bestDeficit := deficit(members[0].Weight, usage[0], totalWeight, totalTokens)
	for i := 1; i < len(members); i++ {
		d := deficit(members[i].Weight, usage[i], totalWeight, totalTokens)
		if d > bestDeficit {
			best = i
			bestDeficit = d
		}
	}
	return best
}

func deficit(weight uint32, tokens uint64, totalWeight, totalTokens uint64) float64 {
	targetRatio := float64(weight) / float64(totalWeight)
	actualRatio := float64(tokens) / float64(totalTokens)
	return targetRatio - actualRatio
}

func strp(s string) *string { return &s }
