// Package providers describes the per-provider-kind shape: which extra
// fields (beyond the five common GlobalProperties) each ProviderKind
// declares, and which of those extras the Builder Bridge requires. A single
// data-driven schema table replaces what would otherwise be one hand-written
// record type per kind (Design Notes, §9).
package providers

// Kind is one of the fixed set of LLM provider backends. Extending this set
// is a structural change, not a configuration change.
type Kind string

const (
	Ollama     Kind = "ollama"
	Anthropic  Kind = "anthropic"
	OpenAI     Kind = "openai"
	Google     Kind = "google"
	OpenRouter Kind = "openrouter"
)

// Order is the fixed precedence used for Variant lookup (§4.3, §5): the
// first kind under which a variant name is found wins.
var Order = []Kind{Ollama, Anthropic, OpenAI, Google, OpenRouter}

// ExtraField describes one provider-specific configuration field beyond the
// five GlobalProperties.
type ExtraField struct {
	// Name is the TOML/extras key, e.g. "api_key" or "endpoint".
	Name string
	// Required, when true, means the Builder Bridge fails with
	// RequiredConfiguration if this field is absent from the resolved
	// config.
	Required bool
}

// Schema is the compile-time table of each kind's extra fields.
var Schema = map[Kind][]ExtraField{
	Ollama:     {{Name: "endpoint", Required: true}},
	Anthropic:  {{Name: "api_key", Required: true}},
	OpenAI:     {{Name: "api_key", Required: true}, {Name: "endpoint", Required: false}},
	Google:     {{Name: "api_key", Required: true}},
	OpenRouter: {{Name: "api_key", Required: true}},
}

// Valid reports whether s names a known ProviderKind tag.
func Valid(s string) (Kind, bool) {
	k := Kind(s)
	if _, ok := Schema[k]; ok {
		return k, true
	}
	return "", false
}

// SecretFields names the extras that the diagnostic formatter must redact
// (§7).
var SecretFields = map[string]bool{
	"api_key": true,
}
