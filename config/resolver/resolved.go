package resolver

import (
	"github.com/promptcmd/promptcmd/config"
	"github.com/promptcmd/promptcmd/config/providers"
	"github.com/promptcmd/promptcmd/core"
)

// ResolvedConfig is the sealed result of Resolve: exactly one of Base,
// Variant, or Group (§3).
type ResolvedConfig interface {
	resolvedConfig()
	// DisplayName returns the name under which this config was resolved.
	DisplayName() string
}

// ModelInfo is Ok when a model string was ultimately resolved (I4).
type ModelInfo struct {
	Provider string
	Model    string
}

// Base is a provider's default configuration, keyed by its kind tag.
type Base struct {
	Name     string
	Kind     providers.Kind
	Globals  config.GlobalProperties
	Extras   providers.SourcedExtras
}

func (*Base) resolvedConfig()       {}
func (b *Base) DisplayName() string { return b.Name }

// ModelInfo returns the resolved (provider, model) pair, or an error if no
// model was resolved (I4, I5).
func (b *Base) ModelInfo() (ModelInfo, error) {
	if b.Globals.Model == nil {
		return ModelInfo{}, core.NewError("resolver.model_info", core.ErrNoName, "model required", nil)
	}
	return ModelInfo{Provider: string(b.Kind), Model: b.Globals.Model.Value}, nil
}

// Variant is a named override sitting under a provider kind, inheriting
// from the Base.
type Variant struct {
	Name     string
	BaseName string // the kind's string tag, I2
	Kind     providers.Kind
	Globals  config.GlobalProperties
	Extras   providers.SourcedExtras
}

func (*Variant) resolvedConfig()       {}
func (v *Variant) DisplayName() string { return v.Name }

// ModelInfo returns the resolved (provider, model) pair, or an error if no
// model was resolved (I4, I5).
func (v *Variant) ModelInfo() (ModelInfo, error) {
	if v.Globals.Model == nil {
		return ModelInfo{}, core.NewError("resolver.model_info", core.ErrNoName, "model required", nil)
	}
	return ModelInfo{Provider: v.BaseName, Model: v.Globals.Model.Value}, nil
}

// GroupMember is one weighted member of a resolved Group: either a *Base or
// a *Variant.
type GroupMember struct {
	// Base is set when this member resolved as a Base; mutually exclusive
	// with Variant.
	Base *Base
	// Variant is set when this member resolved as a Variant.
	Variant *Variant
	Weight  uint32
}

// Member returns the underlying ResolvedConfig (either the Base or Variant).
func (m GroupMember) Member() ResolvedConfig {
	if m.Base != nil {
		return m.Base
	}
	return m.Variant
}

// ModelInfo delegates to whichever of Base/Variant is set.
func (m GroupMember) ModelInfo() (ModelInfo, error) {
	if m.Base != nil {
		return m.Base.ModelInfo()
	}
	return m.Variant.ModelInfo()
}

// Name returns the member's resolved name.
func (m GroupMember) Name() string { return m.Member().DisplayName() }

// Group is an ordered, weighted list of members the Load Balancer selects
// from (I3: preserves TOML list order).
type Group struct {
	Name    string
	Members []GroupMember
}

func (*Group) resolvedConfig()       {}
func (g *Group) DisplayName() string { return g.Name }
