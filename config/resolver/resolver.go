// Package resolver implements the Configuration Resolver (§4.2, §4.3): it
// turns a requested name plus a parsed AppConfig into exactly one of a
// Base, Variant, or Group, with every field tagged by the source that won
// it.
package resolver

import (
	"github.com/promptcmd/promptcmd/config"
	"github.com/promptcmd/promptcmd/config/providers"
)

// Resolver holds the per-invocation inputs that sit above the AppConfig in
// priority: an explicit name (from CLI input or a dotprompt's own request),
// direct overrides (e.g. CLI flags), and a dotprompt's frontmatter
// properties. All are optional; a Resolver zero value resolves using only
// the AppConfig and environment.
type Resolver struct {
	Env EnvReader

	// InputName is the highest-priority name source (§4.2 step 1).
	InputName *string

	// Overrides/OverridesExtras are direct overrides (§4.1 step 8, the
	// highest-priority tier short of the model field's own name-resolution
	// precedence).
	Overrides       *config.GlobalProperties
	OverridesExtras providers.SourcedExtras

	// FMProperties/FMExtras are a dotprompt's frontmatter-derived
	// properties (§4.1 step 6 for Base, step 7 for Variant).
	FMProperties *config.GlobalProperties
	FMExtras     providers.SourcedExtras

	appGlobals config.GlobalProperties
}

// EnvReader is a local alias so callers of this package don't need to import
// config for the common case of supplying a MapEnv in tests.
type EnvReader = config.EnvReader

// Resolve is the Configuration Resolver's entrypoint (§4.2): it determines
// the requested name, then tries Base, then Variant, then Group, in that
// order, returning the first match.
func (r *Resolver) Resolve(appconfig *config.AppConfig) (ResolvedConfig, error) {
	r.appGlobals = config.FromRaw(appconfig.Globals, config.SourceGlobals())

	nameProp, err := r.resolveName(appconfig)
	if err != nil {
		return nil, err
	}

	base, err := r.resolveBase(appconfig, nameProp)
	if err == nil {
		return base, nil
	}
	if !IsNotFound(err) {
		return nil, err
	}

	variant, err := r.resolveVariant(appconfig, nameProp)
	if err == nil {
		return variant, nil
	}
	if !IsNotFound(err) {
		return nil, err
	}

	group, err := r.resolveGroup(appconfig, nameProp)
	if err != nil {
		return nil, err
	}
	return group, nil
}

// resolveName determines the requested name token, highest to lowest
// priority: explicit input, direct overrides' model field, frontmatter's
// model field, the top-level [providers] globals.model, globals.default,
// then the PROMPTCMD_MODEL environment variable (§4.2).
func (r *Resolver) resolveName(appconfig *config.AppConfig) (config.P[string], error) {
	if r.InputName != nil {
		return config.New(*r.InputName, config.SourceInputs()), nil
	}
	if r.Overrides != nil && r.Overrides.Model != nil {
		return *r.Overrides.Model, nil
	}
	if r.FMProperties != nil && r.FMProperties.Model != nil {
		return *r.FMProperties.Model, nil
	}
	if appconfig.Globals.Model != nil {
		return config.New(*appconfig.Globals.Model, config.SourceGlobals()), nil
	}
	if appconfig.Globals.Default != nil {
		return config.New(*appconfig.Globals.Default, config.SourceGlobals()), nil
	}
	if v, ok := r.env().Lookup(config.EnvModelVar); ok {
		return config.New(v, config.SourceEnv(config.EnvModelVar)), nil
	}
	return config.P[string]{}, noNameToResolve()
}
