package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/promptcmd/promptcmd/config/providers"
)

// ProviderSection is one [providers.<kind>] table: its base config plus any
// named variants nested under it.
type ProviderSection struct {
	Config RawGlobals
	Extras RawExtrasMap
	Named  map[string]RawGlobals
	NamedExtras map[string]RawExtrasMap
}

// RawExtrasMap is a plain string-keyed map decoded from a TOML table's
// unknown keys, kept untyped until providers.FromMap lifts it.
type RawExtrasMap = map[string]any

// GroupMemberRef is one entry of a [groups.<name>].providers list: either a
// bare string (weight defaults to 1) or {name, weight}.
type GroupMemberRef struct {
	Name   string
	Weight uint32
}

// GroupConfig is one [groups.<name>] table.
type GroupConfig struct {
	Providers []GroupMemberRef
}

// AppConfig is the parsed, typed form of the TOML configuration file (§3,
// §6). It is loaded once per process and treated as immutable thereafter.
type AppConfig struct {
	Globals   RawGlobals
	Providers map[providers.Kind]ProviderSection
	Groups    map[string]GroupConfig
}

// Load reads and parses the TOML file at path into an AppConfig. Missing
// tables are equivalent to empty ones (§6).
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return FromViper(v)
}

// FromViper builds an AppConfig from an already-configured viper instance,
// letting callers (and tests) supply configuration without touching disk.
func FromViper(v *viper.Viper) (*AppConfig, error) {
	cfg := &AppConfig{
		Providers: map[providers.Kind]ProviderSection{},
		Groups:    map[string]GroupConfig{},
	}

	globalsRaw := v.GetStringMap("providers")
	cfg.Globals = rawGlobalsFromMap(globalsRaw)

	for _, kind := range providers.Order {
		section := v.GetStringMap("providers." + string(kind))
		cfg.Providers[kind] = parseProviderSection(section)
	}

	groupsRaw := v.GetStringMap("groups")
	for name, raw := range groupsRaw {
		m, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		cfg.Groups[name] = parseGroupConfig(m)
	}

	return cfg, nil
}

func parseProviderSection(section map[string]any) ProviderSection {
	ps := ProviderSection{
		Named:       map[string]RawGlobals{},
		NamedExtras: map[string]RawExtrasMap{},
	}
	ps.Config = rawGlobalsFromMap(section)
	ps.Extras = extrasOnly(section)

	for key, val := range section {
		if isReservedKey(key) {
			continue
		}
		sub, ok := val.(map[string]any)
		if !ok {
			continue
		}
		ps.Named[key] = rawGlobalsFromMap(sub)
		ps.NamedExtras[key] = extrasOnly(sub)
	}
	return ps
}

func parseGroupConfig(m map[string]any) GroupConfig {
	var gc GroupConfig
	rawList, _ := m["providers"].([]any)
	for _, entry := range rawList {
		switch v := entry.(type) {
		case string:
			gc.Providers = append(gc.Providers, GroupMemberRef{Name: v, Weight: 1})
		case map[string]any:
			ref := GroupMemberRef{Weight: 1}
			if name, ok := v["name"].(string); ok {
				ref.Name = name
			}
			if w, ok := asUint32(v["weight"]); ok {
				ref.Weight = w
			}
			gc.Providers = append(gc.Providers, ref)
		}
	}
	return gc
}

var reservedGlobalKeys = []string{"temperature", "max_tokens", "stream", "system", "model", "cache_ttl", "default"}

func isReservedKey(key string) bool {
	for _, k := range reservedGlobalKeys {
		if strings.EqualFold(k, key) {
			return true
		}
	}
	return false
}

// extrasOnly returns the subset of m that is not a reserved global/variant
// key and not itself a nested table (those are variants, handled
// separately).
func extrasOnly(m map[string]any) RawExtrasMap {
	out := RawExtrasMap{}
	for k, v := range m {
		if isReservedKey(k) {
			continue
		}
		if _, isTable := v.(map[string]any); isTable {
			continue
		}
		out[k] = v
	}
	return out
}

func rawGlobalsFromMap(m map[string]any) RawGlobals {
	var rg RawGlobals
	if v, ok := asFloat32(m["temperature"]); ok {
		rg.Temperature = &v
	}
	if v, ok := asUint32(m["max_tokens"]); ok {
		rg.MaxTokens = &v
	}
	if v, ok := m["stream"].(bool); ok {
		rg.Stream = &v
	}
	if v, ok := m["system"].(string); ok {
		rg.System = &v
	}
	if v, ok := m["model"].(string); ok {
		rg.Model = &v
	}
	if v, ok := asUint32(m["cache_ttl"]); ok {
		rg.CacheTTL = &v
	}
	if v, ok := m["default"].(string); ok {
		rg.Default = &v
	}
	return rg
}

func asFloat32(v any) (float32, bool) {
	switch n := v.(type) {
	case float64:
		return float32(n), true
	case float32:
		return n, true
	case int:
		return float32(n), true
	case int64:
		return float32(n), true
	default:
		return 0, false
	}
}

func asUint32(v any) (uint32, bool) {
	switch n := v.(type) {
	case int:
		return uint32(n), true
	case int64:
		return uint32(n), true
	case float64:
		return uint32(n), true
	case uint32:
		return n, true
	default:
		return 0, false
	}
}
