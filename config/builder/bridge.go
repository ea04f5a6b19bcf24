// Package builder implements the Builder Bridge (§4.5): turning a resolved
// Base or Variant into the plain-data contract the llms/* adapters use to
// construct a live provider client.
package builder

import (
	"github.com/go-playground/validator/v10"

	"github.com/promptcmd/promptcmd/config"
	"github.com/promptcmd/promptcmd/config/providers"
	"github.com/promptcmd/promptcmd/config/resolver"
	"github.com/promptcmd/promptcmd/core"
)

// ModelInfo is the resolved (provider, model) pair a caller needs before it
// can even look up which adapter to invoke.
type ModelInfo = resolver.ModelInfo

// BuilderContract is the plain-data handoff from the resolver to an llms/*
// adapter: everything an adapter needs to construct a client, with no
// knowledge of how the values were sourced.
type BuilderContract struct {
	Kind        providers.Kind
	Model       string  `validate:"required"`
	Temperature float32 `validate:"gte=0,lte=2"`
	System      string
	Stream      bool
	MaxTokens   uint32 `validate:"gte=0"`
	// Extras holds the provider's kind-specific fields (api_key, endpoint,
	// ...) by name, already required-checked against providers.Schema.
	Extras map[string]string
}

var contractValidator = validator.New()

// Validate reports whether the contract's resolved values are sane (model
// non-empty, temperature within the range every wired provider accepts).
// ToBuilderContract already enforces the required-extras rule; Validate
// catches out-of-range numeric fields a TOML/env/frontmatter source may
// have supplied.
func (c *BuilderContract) Validate() error {
	if err := contractValidator.Struct(c); err != nil {
		return core.NewError("builder.validate", core.ErrInvalidInput, err.Error(), err)
	}
	return nil
}

// ToBuilderContract builds a BuilderContract from any leaf ResolvedConfig
// (a *resolver.Base or *resolver.Variant). It fails with
// core.ErrRequiredConfiguration if the kind's schema names a required extra
// field that was never resolved, and with core.ErrNoName if no model was
// ever resolved (I4).
func ToBuilderContract(cfg resolver.ResolvedConfig) (*BuilderContract, error) {
	var (
		kind    providers.Kind
		globals config.GlobalProperties
		extras  providers.SourcedExtras
	)

	switch c := cfg.(type) {
	case *resolver.Base:
		kind, globals, extras = c.Kind, c.Globals, c.Extras
	case *resolver.Variant:
		kind, globals, extras = c.Kind, c.Globals, c.Extras
	default:
		return nil, core.NewError("builder.to_contract", core.ErrInvalidInput,
			"a group is not a buildable leaf; select a member first", nil)
	}

	if globals.Model == nil {
		return nil, core.NewError("builder.to_contract", core.ErrNoName, "model required", nil)
	}

	contract := &BuilderContract{
		Kind:   kind,
		Model:  globals.Model.Value,
		Extras: map[string]string{},
	}
	if globals.Temperature != nil {
		contract.Temperature = globals.Temperature.Value
	}
	if globals.System != nil {
		contract.System = globals.System.Value
	}
	if globals.Stream != nil {
		contract.Stream = globals.Stream.Value
	}
	if globals.MaxTokens != nil {
		contract.MaxTokens = globals.MaxTokens.Value
	}

	for _, field := range providers.Schema[kind] {
		value, ok := extras.Get(field.Name)
		if !ok {
			if field.Required {
				return nil, core.NewError("builder.to_contract", core.ErrRequiredConfiguration,
					"'"+field.Name+"' is required but not configured", nil)
			}
			continue
		}
		contract.Extras[field.Name] = value
	}

	if err := contract.Validate(); err != nil {
		return nil, err
	}

	return contract, nil
}
