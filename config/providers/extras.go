package providers

import (
	"fmt"

	"github.com/promptcmd/promptcmd/config/prop"
)

// RawExtras is the unsourced shape of a kind's extra fields plus whatever
// unknown keys the TOML table carried (so variants may introduce fields the
// schema table doesn't declare). Values are stored as strings; TOML ints,
// floats, and bools are stringified at parse time.
type RawExtras map[string]string

// FromMap converts a generic TOML table (as decoded by viper/mapstructure)
// into RawExtras, keeping only keys that are not one of the GlobalProperties
// fields (the five tunables plus cache_ttl) or "default".
func FromMap(m map[string]any) RawExtras {
	reserved := map[string]bool{
		"temperature": true, "max_tokens": true, "stream": true,
		"system": true, "model": true, "cache_ttl": true, "default": true,
	}
	out := RawExtras{}
	for k, v := range m {
		if reserved[k] {
			continue
		}
		out[k] = fmt.Sprintf("%v", v)
	}
	return out
}

// SourcedExtras maps an extra field name to its sourced string value.
type SourcedExtras map[string]prop.Opt[string]

// Lift tags every entry in raw with source.
func Lift(raw RawExtras, source prop.PropertySource) SourcedExtras {
	out := SourcedExtras{}
	for k, v := range raw {
		out[k] = prop.Some(v, source)
	}
	return out
}

// Merge stacks override on top of base, per key, preferring override's value
// where present.
func Merge(override, base SourcedExtras) SourcedExtras {
	out := SourcedExtras{}
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		if v != nil {
			out[k] = v
		}
	}
	return out
}

// MergeChain folds Merge across tiers in low-to-high priority order.
func MergeChain(tiers ...SourcedExtras) SourcedExtras {
	result := SourcedExtras{}
	for _, tier := range tiers {
		result = Merge(tier, result)
	}
	return result
}

// Get returns the string value for key, or "" with ok=false if unset.
func (e SourcedExtras) Get(key string) (string, bool) {
	p, ok := e[key]
	if !ok || p == nil {
		return "", false
	}
	return p.Value, true
}
