package config

// RawGlobals is the unsourced shape of the five common tunables plus the
// carried-through cache_ttl, as they appear literally in a TOML table
// (top-level [providers], a provider's [providers.<kind>] base, or a
// [providers.<kind>.<variant>] section). Every field is optional; a nil
// pointer means "not set in this table".
type RawGlobals struct {
	Temperature *float32
	MaxTokens   *uint32
	Stream      *bool
	System      *string
	Model       *string
	CacheTTL    *uint32

	// Default is only meaningful on the top-level [providers] table; it is
	// the fallback "requested name" used in name resolution (§4.2).
	Default *string

	// Extra is not filled by the TOML loader (rawGlobalsFromMap); a
	// provider/variant table's unknown keys are kept in
	// ProviderSection.Extras and ProviderSection.NamedExtras instead.
	Extra map[string]any
}

// GlobalProperties holds the five sourced tunables common to every provider
// kind, plus the carried-through cache_ttl. A nil field means no source
// supplied a value for it.
type GlobalProperties struct {
	Temperature Opt[float32]
	MaxTokens   Opt[uint32]
	Stream      Opt[bool]
	System      Opt[string]
	Model       Opt[string]
	CacheTTL    Opt[uint32]
}

// FromRaw lifts a RawGlobals into GlobalProperties, tagging every set field
// with source.
func FromRaw(raw RawGlobals, source PropertySource) GlobalProperties {
	var g GlobalProperties
	if raw.Temperature != nil {
		g.Temperature = Some(*raw.Temperature, source)
	}
	if raw.MaxTokens != nil {
		g.MaxTokens = Some(*raw.MaxTokens, source)
	}
	if raw.Stream != nil {
		g.Stream = Some(*raw.Stream, source)
	}
	if raw.System != nil {
		g.System = Some(*raw.System, source)
	}
	if raw.Model != nil {
		g.Model = Some(*raw.Model, source)
	}
	if raw.CacheTTL != nil {
		g.CacheTTL = Some(*raw.CacheTTL, source)
	}
	return g
}

// Defaults returns the hard-coded fallback GlobalProperties from §4.1 step 7.
// Model has no default.
func Defaults() GlobalProperties {
	return GlobalProperties{
		Temperature: Some[float32](0.7, SourceDefault()),
		MaxTokens:   Some[uint32](1000, SourceDefault()),
		Stream:      Some(false, SourceDefault()),
		System: Some(
			"You are useful AI assistant. Give me brief answers. Do not use special formatting like markdown.",
			SourceDefault(),
		),
	}
}

// pick returns hi if non-nil, else lo. It implements the "first non-nil
// source wins" merge used throughout the resolver's priority stacking.
func pick[T comparable](hi, lo Opt[T]) Opt[T] {
	if hi != nil {
		return hi
	}
	return lo
}

// Merge stacks override (higher priority) on top of base (lower priority),
// field by field, keeping whichever value for each field is set at the
// higher tier.
func Merge(override, base GlobalProperties) GlobalProperties {
	return GlobalProperties{
		Temperature: pick(override.Temperature, base.Temperature),
		MaxTokens:   pick(override.MaxTokens, base.MaxTokens),
		Stream:      pick(override.Stream, base.Stream),
		System:      pick(override.System, base.System),
		Model:       pick(override.Model, base.Model),
		CacheTTL:    pick(override.CacheTTL, base.CacheTTL),
	}
}

// MergeChain folds Merge across tiers in low-to-high priority order (the
// first argument is lowest priority, the last is highest).
func MergeChain(tiers ...GlobalProperties) GlobalProperties {
	var result GlobalProperties
	for _, tier := range tiers {
		result = Merge(tier, result)
	}
	return result
}
