package resolver

import (
	"github.com/promptcmd/promptcmd/config"
	"github.com/promptcmd/promptcmd/config/providers"
)

// resolveBase attempts to resolve nameProp as a provider kind's Base
// configuration (§4.3 Base). It returns a *ResolveError wrapping
// core.ErrNotFound when nameProp's provider part is not a known Kind, so
// Resolve can fall through to resolveVariant.
func (r *Resolver) resolveBase(appconfig *config.AppConfig, nameProp config.P[string]) (*Base, error) {
	providerTag, modelPart, hasModel := splitName(nameProp.Value)

	kind, ok := providers.Valid(providerTag)
	if !ok {
		return nil, notFound(nameProp.Value)
	}

	section := appconfig.Providers[kind]

	var modelOverride config.Opt[string]
	if hasModel {
		modelOverride = config.Some(modelPart, nameProp.Source)
	}

	fm := suppressShortformModel(r.FMProperties, nameProp.Source)

	globals := r.stackGlobals(providerTag, config.FromRaw(section.Config, config.SourceBase(providerTag)), fm)
	if modelOverride != nil {
		globals.Model = modelOverride
	}

	extras := r.stackExtras(providers.FromMap(section.Extras), config.SourceBase(providerTag))

	base := &Base{
		Name:    providerTag,
		Kind:    kind,
		Globals: globals,
		Extras:  extras,
	}
	if base.Globals.Model == nil {
		return nil, noNameToResolve()
	}
	return base, nil
}

// stackGlobals builds the low-to-high priority chain common to Base and
// Variant resolution: hard defaults, global-scope env, the top-level
// [providers] table, provider-scoped env, the structural tier passed by the
// caller (a provider's base section, or a variant's base+variant sections),
// frontmatter, and finally direct overrides (§4.1).
func (r *Resolver) stackGlobals(kindTag string, structural config.GlobalProperties, fm *config.GlobalProperties) config.GlobalProperties {
	tiers := []config.GlobalProperties{
		config.Defaults(),
		config.EnvGlobals(r.env()),
		r.appGlobals,
		config.EnvProvider(r.env(), kindTag),
		structural,
	}
	if fm != nil {
		tiers = append(tiers, *fm)
	}
	if r.Overrides != nil {
		tiers = append(tiers, *r.Overrides)
	}
	return config.MergeChain(tiers...)
}

func (r *Resolver) stackExtras(structural providers.RawExtras, source config.PropertySource) providers.SourcedExtras {
	tiers := []providers.SourcedExtras{providers.Lift(structural, source)}
	if r.FMExtras != nil {
		tiers = append(tiers, r.FMExtras)
	}
	if r.OverridesExtras != nil {
		tiers = append(tiers, r.OverridesExtras)
	}
	return providers.MergeChain(tiers...)
}

func (r *Resolver) env() config.EnvReader {
	if r.Env != nil {
		return r.Env
	}
	return config.OSEnv{}
}
