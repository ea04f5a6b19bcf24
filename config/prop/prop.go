// Package prop implements the sourced-value primitives shared by the
// Configuration Resolver (package config) and the provider schema table
// (config/providers): a Property tags its Value with the PropertySource it
// came from, so the diagnostic formatter (§7) and the priority-lattice
// merge (§8) can explain and order values without re-deriving provenance.
// It is split out of package config so config/providers can use sourced
// values without importing config back (config imports providers for the
// Kind type, so providers importing config would be a cycle).
package prop

import "fmt"

// PropertySource tags the origin of a resolved value. The zero value is not
// a valid source; every sourced Property must carry one of the constructors
// below.
type PropertySource struct {
	kind string
	a, b string
}

func (s PropertySource) String() string {
	switch s.kind {
	case "input":
		return fmt.Sprintf("Input(%s)", s.a)
	case "inputs":
		return "Inputs"
	case "dotprompt":
		return fmt.Sprintf("Dotprompt(%s)", s.a)
	case "variant":
		return fmt.Sprintf("Variant(%s)", s.a)
	case "base":
		return fmt.Sprintf("Base(%s)", s.a)
	case "group":
		return fmt.Sprintf("Group(%s, %s)", s.a, s.b)
	case "env":
		return fmt.Sprintf("Env(%s)", s.a)
	case "globals":
		return "Globals"
	case "default":
		return "Default"
	case "other":
		return fmt.Sprintf("Other(%s)", s.a)
	default:
		return "Unknown"
	}
}

// SourceInput is a command-line override; name is the user-supplied token.
func SourceInput(name string) PropertySource { return PropertySource{kind: "input", a: name} }

// SourceInputs is a command-line override at the group "name" level
// (provider/model token supplied on the CLI).
func SourceInputs() PropertySource { return PropertySource{kind: "inputs"} }

// SourceDotprompt marks a value as coming from the named prompt's frontmatter.
func SourceDotprompt(promptname string) PropertySource {
	return PropertySource{kind: "dotprompt", a: promptname}
}

// SourceVariant marks a value as coming from a named variant's section.
func SourceVariant(variantName string) PropertySource {
	return PropertySource{kind: "variant", a: variantName}
}

// SourceBase marks a value as coming from a provider's base section.
func SourceBase(providerName string) PropertySource {
	return PropertySource{kind: "base", a: providerName}
}

// SourceGroup marks a value as coming from group-member text.
func SourceGroup(groupName, memberName string) PropertySource {
	return PropertySource{kind: "group", a: groupName, b: memberName}
}

// SourceEnv marks a value as coming from an environment variable.
func SourceEnv(varName string) PropertySource { return PropertySource{kind: "env", a: varName} }

// SourceGlobals marks a value as coming from the top-level [providers]
// section.
func SourceGlobals() PropertySource { return PropertySource{kind: "globals"} }

// SourceDefault marks a value as a hard-coded fallback.
func SourceDefault() PropertySource { return PropertySource{kind: "default"} }

// SourceOther is free-form provenance, used for tests and diagnostics.
func SourceOther(text string) PropertySource { return PropertySource{kind: "other", a: text} }

// IsInputs reports whether source is Inputs.
func (s PropertySource) IsInputs() bool { return s.kind == "inputs" }

// IsGroup reports whether source is Group(...), and if so its group and
// member name.
func (s PropertySource) IsGroup() (group, member string, ok bool) {
	if s.kind != "group" {
		return "", "", false
	}
	return s.a, s.b, true
}

// P is a sourced value: a pair of (Value, Source). Two P[T] are equal iff
// both fields are equal (comparable T only).
type P[T comparable] struct {
	Value  T
	Source PropertySource
}

// New constructs a sourced property.
func New[T comparable](value T, source PropertySource) P[T] {
	return P[T]{Value: value, Source: source}
}

// Opt is a convenience alias for an optional sourced property.
type Opt[T comparable] = *P[T]

// Some wraps value/source as an Opt.
func Some[T comparable](value T, source PropertySource) Opt[T] {
	p := New(value, source)
	return &p
}
