package resolver

import (
	"github.com/promptcmd/promptcmd/config"
	"github.com/promptcmd/promptcmd/config/providers"
)

// resolveVariant attempts to resolve nameProp as a named variant nested
// under one of the fixed-order provider kinds (§4.3 Variant, §5). The first
// kind whose Named map contains the name wins (I2).
func (r *Resolver) resolveVariant(appconfig *config.AppConfig, nameProp config.P[string]) (*Variant, error) {
	variantTag, modelPart, hasModel := splitName(nameProp.Value)

	for _, kind := range providers.Order {
		section := appconfig.Providers[kind]
		named, ok := section.Named[variantTag]
		if !ok {
			continue
		}
		namedExtras := section.NamedExtras[variantTag]

		var modelOverride config.Opt[string]
		if hasModel {
			modelOverride = config.Some(modelPart, nameProp.Source)
		}

		fm := suppressShortformModel(r.FMProperties, nameProp.Source)

		baseTier := config.FromRaw(section.Config, config.SourceBase(string(kind)))
		variantTier := config.FromRaw(named, config.SourceVariant(variantTag))
		variantEnv := config.EnvProvider(r.env(), string(kind)+"_"+variantTag)

		globals := r.stackVariantGlobals(string(kind), baseTier, fm, variantEnv, variantTier)
		if modelOverride != nil {
			globals.Model = modelOverride
		}

		extras := r.stackVariantExtras(
			providers.FromMap(section.Extras),
			providers.FromMap(namedExtras),
			config.SourceBase(string(kind)),
			config.SourceVariant(variantTag),
		)

		variant := &Variant{
			Name:     variantTag,
			BaseName: string(kind),
			Kind:     kind,
			Globals:  globals,
			Extras:   extras,
		}
		if variant.Globals.Model == nil {
			return nil, noNameToResolve()
		}
		return variant, nil
	}
	return nil, notFound(nameProp.Value)
}

// stackVariantGlobals extends stackGlobals with the variant-scoped env and
// variant section tiers, which sit above the base section and frontmatter
// but below direct overrides (§4.1).
func (r *Resolver) stackVariantGlobals(
	kindTag string,
	baseTier config.GlobalProperties,
	fm *config.GlobalProperties,
	variantEnv config.GlobalProperties,
	variantTier config.GlobalProperties,
) config.GlobalProperties {
	tiers := []config.GlobalProperties{
		config.Defaults(),
		config.EnvGlobals(r.env()),
		r.appGlobals,
		config.EnvProvider(r.env(), kindTag),
		baseTier,
	}
	if fm != nil {
		tiers = append(tiers, *fm)
	}
	tiers = append(tiers, variantEnv, variantTier)
	if r.Overrides != nil {
		tiers = append(tiers, *r.Overrides)
	}
	return config.MergeChain(tiers...)
}

func (r *Resolver) stackVariantExtras(baseExtras, variantExtras providers.RawExtras, baseSource, variantSource config.PropertySource) providers.SourcedExtras {
	tiers := []providers.SourcedExtras{
		providers.Lift(baseExtras, baseSource),
		providers.Lift(variantExtras, variantSource),
	}
	if r.FMExtras != nil {
		tiers = append(tiers, r.FMExtras)
	}
	if r.OverridesExtras != nil {
		tiers = append(tiers, r.OverridesExtras)
	}
	return providers.MergeChain(tiers...)
}
