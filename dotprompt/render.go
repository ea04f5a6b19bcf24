package dotprompt

import (
	"regexp"
	"strings"
)

// Helper names the bridge recognizes in a template body without executing
// their full semantics (§1 Non-goals: the Handlebars-style helper runtime
// itself is out of scope; only naming what a template references is
// needed to prove the bridge's extraction is complete).
type Helper string

const (
	HelperAsk    Helper = "ask"
	HelperExec   Helper = "exec"
	HelperStdin  Helper = "stdin"
	HelperConcat Helper = "concat"
)

var helperPattern = regexp.MustCompile(`\{\{\s*(ask|exec|stdin|concat)\b[^}]*\}\}`)
var varPattern = regexp.MustCompile(`\{\{\s*([a-zA-Z_][a-zA-Z0-9_.]*)\s*\}\}`)

// Helpers returns the set of helper names referenced anywhere in the
// template body.
func (d *Dotprompt) Helpers() []Helper {
	seen := map[Helper]bool{}
	var out []Helper
	for _, m := range helperPattern.FindAllStringSubmatch(d.Template, -1) {
		h := Helper(m[1])
		if !seen[h] {
			seen[h] = true
			out = append(out, h)
		}
	}
	return out
}

// Render substitutes every {{name}} / {{input.name}} placeholder with its
// value from inputs, leaving helper invocations ({{ask ...}}, {{exec ...}},
// etc.) untouched. This is the minimal rendering the Builder Bridge needs
// to produce a usable prompt body; it does not implement the full
// Handlebars-style helper runtime.
func (d *Dotprompt) Render(inputs map[string]string) string {
	return varPattern.ReplaceAllStringFunc(d.Template, func(match string) string {
		sub := varPattern.FindStringSubmatch(match)
		name := strings.TrimPrefix(sub[1], "input.")
		if v, ok := inputs[name]; ok {
			return v
		}
		return match
	})
}
