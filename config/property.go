// Package config implements the promptcmd Configuration Resolver: parsing a
// TOML AppConfig, bridging a dotprompt's frontmatter, and resolving a
// logical model name into a fully materialized, source-tagged provider
// configuration (see the config/resolver and config/loadbalancer
// subpackages for the resolution and load-balancing logic itself).
package config

import "github.com/promptcmd/promptcmd/config/prop"

// PropertySource, P and Opt live in config/prop so that config/providers can
// build SourcedExtras values without importing this package back.
type PropertySource = prop.PropertySource

// P is a sourced value: a pair of (Value, Source).
type P[T comparable] = prop.P[T]

// Opt is a convenience alias for an optional sourced property.
type Opt[T comparable] = prop.Opt[T]

// New constructs a sourced property.
func New[T comparable](value T, source PropertySource) P[T] { return prop.New(value, source) }

// Some wraps value/source as an Opt.
func Some[T comparable](value T, source PropertySource) Opt[T] { return prop.Some(value, source) }

// SourceInput is a command-line override; name is the user-supplied token.
func SourceInput(name string) PropertySource { return prop.SourceInput(name) }

// SourceInputs is a command-line override at the group "name" level
// (provider/model token supplied on the CLI).
func SourceInputs() PropertySource { return prop.SourceInputs() }

// SourceDotprompt marks a value as coming from the named prompt's frontmatter.
func SourceDotprompt(promptname string) PropertySource { return prop.SourceDotprompt(promptname) }

// SourceVariant marks a value as coming from a named variant's section.
func SourceVariant(variantName string) PropertySource { return prop.SourceVariant(variantName) }

// SourceBase marks a value as coming from a provider's base section.
func SourceBase(providerName string) PropertySource { return prop.SourceBase(providerName) }

// SourceGroup marks a value as coming from group-member text.
func SourceGroup(groupName, memberName string) PropertySource {
	return prop.SourceGroup(groupName, memberName)
}

// SourceEnv marks a value as coming from an environment variable.
func SourceEnv(varName string) PropertySource { return prop.SourceEnv(varName) }

// SourceGlobals marks a value as coming from the top-level [providers]
// section.
func SourceGlobals() PropertySource { return prop.SourceGlobals() }

// SourceDefault marks a value as a hard-coded fallback.
func SourceDefault() PropertySource { return prop.SourceDefault() }

// SourceOther is free-form provenance, used for tests and diagnostics.
func SourceOther(text string) PropertySource { return prop.SourceOther(text) }
