package resolver

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/promptcmd/promptcmd/config"
	"github.com/promptcmd/promptcmd/config/providers"
)

// Display renders cfg as the human-facing diagnostic format (§7): each
// field on its own line as "name: value [source: ...]", system truncated to
// 50 characters, and the value of any extras field in
// providers.SecretFields replaced entirely by "xxxxx...redacted".
func Display(cfg ResolvedConfig) string {
	switch c := cfg.(type) {
	case *Base:
		return displayLeaf(c.Name, c.Globals, c.Extras)
	case *Variant:
		return displayLeaf(c.Name, c.Globals, c.Extras)
	case *Group:
		var b strings.Builder
		fmt.Fprintf(&b, "Group: %s =>\n", c.Name)
		for i, m := range c.Members {
			if i > 0 {
				b.WriteString("\n")
			}
			memberStr := Display(m.Member())
			for lineno, line := range strings.Split(memberStr, "\n") {
				if lineno == 0 {
					fmt.Fprintf(&b, "- %s", line)
				} else {
					fmt.Fprintf(&b, "\n  %s", line)
				}
			}
		}
		return b.String()
	default:
		return ""
	}
}

func displayLeaf(name string, g config.GlobalProperties, extras providers.SourcedExtras) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", name)

	writeStr(&b, "temperature", optString(g.Temperature, func(v float32) string { return strconv.FormatFloat(float64(v), 'g', -1, 32) }))
	writeStr(&b, "system", optSystem(g.System))
	writeStr(&b, "model", optString(g.Model, func(v string) string { return v }))
	writeStr(&b, "stream", optString(g.Stream, func(v bool) string { return strconv.FormatBool(v) }))
	writeStr(&b, "max_tokens", optString(g.MaxTokens, func(v uint32) string { return strconv.FormatUint(uint64(v), 10) }))
	writeStr(&b, "cache_ttl", optString(g.CacheTTL, func(v uint32) string { return strconv.FormatUint(uint64(v), 10) }))

	keys := make([]string, 0, len(extras))
	for k := range extras {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := extras[k]
		if v == nil {
			continue
		}
		value := v.Value
		if providers.SecretFields[k] {
			value = "xxxxx...redacted"
		}
		fmt.Fprintf(&b, "%s: %s [source: %s]\n", k, value, v.Source)
	}
	return strings.TrimRight(b.String(), "\n")
}

type strField struct {
	set    bool
	value  string
	source config.PropertySource
}

func optString[T comparable](p config.Opt[T], render func(T) string) strField {
	if p == nil {
		return strField{}
	}
	return strField{set: true, value: render(p.Value), source: p.Source}
}

func optSystem(p config.Opt[string]) strField {
	f := optString(p, func(v string) string { return v })
	if f.set && len(f.value) > 50 {
		f.value = f.value[:50] + "..."
	}
	return f
}

func writeStr(b *strings.Builder, name string, f strField) {
	if !f.set {
		fmt.Fprintf(b, "%s: \n", name)
		return
	}
	fmt.Fprintf(b, "%s: %s [source: %s]\n", name, f.value, f.source)
}
