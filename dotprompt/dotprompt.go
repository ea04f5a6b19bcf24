// Package dotprompt implements the Frontmatter Bridge (§4.7): parsing a
// dotprompt file's YAML frontmatter and Handlebars-style template body, and
// extracting the subset of properties that feed the Configuration
// Resolver.
package dotprompt

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/promptcmd/promptcmd/config"
	"github.com/promptcmd/promptcmd/config/providers"
)

// InputSchemaElement describes one declared template input (§1, "input/
// output schemas").
type InputSchemaElement struct {
	Key         string
	DataType    string
	Description string
	Required    bool
}

// Frontmatter is the YAML-decoded header block of a dotprompt file.
type Frontmatter struct {
	Model       string            `yaml:"model"`
	Temperature *float32          `yaml:"temperature"`
	MaxTokens   *uint32           `yaml:"max_tokens"`
	Stream      *bool             `yaml:"stream"`
	System      *string           `yaml:"system"`
	CacheTTL    *uint32           `yaml:"cache_ttl"`
	Input       *InputSection     `yaml:"input"`
	Output      *OutputSection    `yaml:"output"`
	Extra       map[string]string `yaml:",inline"`
}

// InputSection declares the named inputs a template accepts.
type InputSection struct {
	Schema map[string]string `yaml:"schema"`
}

// OutputSection declares the expected shape of a model's reply.
type OutputSection struct {
	Format string            `yaml:"format"`
	Schema map[string]string `yaml:"schema"`
}

// Dotprompt is a fully parsed prompt file: its frontmatter plus the raw
// Handlebars-style template body.
type Dotprompt struct {
	Name        string
	Frontmatter Frontmatter
	Template    string
}

// ParseError reports a malformed dotprompt file.
type ParseError struct {
	Name   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dotprompt %q: %s", e.Name, e.Reason)
}

// Parse splits r's contents on the leading "---"-delimited YAML frontmatter
// block and decodes it, leaving the remainder as the template body.
func Parse(name string, r io.Reader) (*Dotprompt, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("dotprompt: reading %q: %w", name, err)
	}

	s := strings.TrimLeft(string(raw), " \t\r\n")
	if !strings.HasPrefix(s, "---") {
		return nil, &ParseError{Name: name, Reason: "input must start with frontmatter delimiter `---`"}
	}

	parts := strings.SplitN(s, "---", 3)
	if len(parts) < 3 {
		return nil, &ParseError{Name: name, Reason: "missing template after frontmatter"}
	}

	var fm Frontmatter
	if err := yaml.Unmarshal([]byte(parts[1]), &fm); err != nil {
		return nil, &ParseError{Name: name, Reason: "invalid YAML frontmatter: " + err.Error()}
	}

	return &Dotprompt{
		Name:        name,
		Frontmatter: fm,
		Template:    strings.TrimSpace(parts[2]),
	}, nil
}

// NeedsStdin reports whether the template references the {{STDIN}} helper.
func (d *Dotprompt) NeedsStdin() bool {
	return strings.Contains(d.Template, "{{STDIN}}")
}

// ModelInfo splits the frontmatter's model field into (provider, model),
// erroring if it is not the long form.
func (d *Dotprompt) ModelInfo() (providers.Kind, string, error) {
	idx := strings.IndexByte(d.Frontmatter.Model, '/')
	if idx < 0 {
		return "", "", &ParseError{Name: d.Name, Reason: "frontmatter model is not of the form provider/model"}
	}
	kind, ok := providers.Valid(d.Frontmatter.Model[:idx])
	if !ok {
		return "", "", &ParseError{Name: d.Name, Reason: "frontmatter model names an unknown provider"}
	}
	return kind, d.Frontmatter.Model[idx+1:], nil
}

// InputSchema decodes the input.schema map into sanitized
// InputSchemaElements: a trailing "?" on a key marks it optional, and a
// value of "type,description" splits into DataType/Description.
func (d *Dotprompt) InputSchema() map[string]InputSchemaElement {
	out := map[string]InputSchemaElement{}
	if d.Frontmatter.Input == nil {
		return out
	}
	for key, value := range d.Frontmatter.Input.Schema {
		sanitized := key
		required := true
		if strings.HasSuffix(key, "?") {
			sanitized = strings.TrimSuffix(key, "?")
			required = false
		}
		dataType, description, _ := strings.Cut(value, ",")
		out[sanitized] = InputSchemaElement{
			Key:         sanitized,
			DataType:    dataType,
			Description: description,
			Required:    required,
		}
	}
	return out
}

// ToProperties extracts the GlobalProperties subset of the frontmatter,
// tagging every set field with Dotprompt(d.Name) (§4.7).
func (d *Dotprompt) ToProperties() config.GlobalProperties {
	source := config.SourceDotprompt(d.Name)
	var g config.GlobalProperties
	if d.Frontmatter.Temperature != nil {
		g.Temperature = config.Some(*d.Frontmatter.Temperature, source)
	}
	if d.Frontmatter.MaxTokens != nil {
		g.MaxTokens = config.Some(*d.Frontmatter.MaxTokens, source)
	}
	if d.Frontmatter.Stream != nil {
		g.Stream = config.Some(*d.Frontmatter.Stream, source)
	}
	if d.Frontmatter.System != nil {
		g.System = config.Some(*d.Frontmatter.System, source)
	}
	if d.Frontmatter.Model != "" {
		g.Model = config.Some(d.Frontmatter.Model, source)
	}
	if d.Frontmatter.CacheTTL != nil {
		g.CacheTTL = config.Some(*d.Frontmatter.CacheTTL, source)
	}
	return g
}

// ToExtras lifts any unknown frontmatter keys (e.g. a variant-only field
// like api_key set directly in a prompt's header) into SourcedExtras.
func (d *Dotprompt) ToExtras() providers.SourcedExtras {
	return providers.Lift(providers.RawExtras(d.Frontmatter.Extra), config.SourceDotprompt(d.Name))
}
