package config

import (
	"os"
	"strings"
)

// EnvReader abstracts process-environment lookups so the resolver can be
// exercised deterministically in tests without mutating real environment
// variables (Design Notes, §9: "pass an env reader to the resolver for
// testability").
type EnvReader interface {
	// Lookup returns the value of name and whether it was set.
	Lookup(name string) (string, bool)
}

// OSEnv reads from the real process environment via os.LookupEnv.
type OSEnv struct{}

// Lookup implements EnvReader.
func (OSEnv) Lookup(name string) (string, bool) { return os.LookupEnv(name) }

// MapEnv is a fixed map-backed EnvReader, used by tests.
type MapEnv map[string]string

// Lookup implements EnvReader.
func (m MapEnv) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

const envPrefix = "PROMPTCMD"

// EnvGlobalVar returns the global-scope environment variable name for a
// GlobalProperties field, e.g. EnvGlobalVar("model") -> "PROMPTCMD_MODEL".
func EnvGlobalVar(field string) string {
	return envPrefix + "_" + strings.ToUpper(field)
}

// EnvProviderVar returns the provider-scoped environment variable name for a
// field under a given provider kind, e.g.
// EnvProviderVar("openai", "max_tokens") -> "PROMPTCMD_OPENAI_MAX_TOKENS".
func EnvProviderVar(kind, field string) string {
	return envPrefix + "_" + strings.ToUpper(kind) + "_" + strings.ToUpper(field)
}

// EnvModelVar is the global model-name fallback variable, PROMPTCMD_MODEL.
const EnvModelVar = envPrefix + "_MODEL"

// envGlobals reads the five common fields (provider-scoped if kind is
// non-empty, else global-scoped) from env, returning a GlobalProperties with
// each set field sourced as Env(varname).
func envGlobals(env EnvReader, kind string) GlobalProperties {
	var g GlobalProperties
	varName := func(field string) string {
		if kind == "" {
			return EnvGlobalVar(field)
		}
		return EnvProviderVar(kind, field)
	}

	if v, ok := env.Lookup(varName("temperature")); ok {
		if f, err := parseFloat32(v); err == nil {
			g.Temperature = Some(f, SourceEnv(varName("temperature")))
		}
	}
	if v, ok := env.Lookup(varName("max_tokens")); ok {
		if u, err := parseUint32(v); err == nil {
			g.MaxTokens = Some(u, SourceEnv(varName("max_tokens")))
		}
	}
	if v, ok := env.Lookup(varName("stream")); ok {
		if b, err := parseBool(v); err == nil {
			g.Stream = Some(b, SourceEnv(varName("stream")))
		}
	}
	if v, ok := env.Lookup(varName("system")); ok {
		g.System = Some(v, SourceEnv(varName("system")))
	}
	if v, ok := env.Lookup(varName("model")); ok {
		g.Model = Some(v, SourceEnv(varName("model")))
	}
	if v, ok := env.Lookup(varName("cache_ttl")); ok {
		if u, err := parseUint32(v); err == nil {
			g.CacheTTL = Some(u, SourceEnv(varName("cache_ttl")))
		}
	}
	return g
}

// EnvGlobals reads the global-scope PROMPTCMD_<FIELD> variables (§4.1 step
// 6).
func EnvGlobals(env EnvReader) GlobalProperties { return envGlobals(env, "") }

// EnvProvider reads the provider-scoped PROMPTCMD_<KIND>_<FIELD> variables
// (§6, participates in §4.1 step as Env(var)).
func EnvProvider(env EnvReader, kind string) GlobalProperties { return envGlobals(env, kind) }
