package resolver

import (
	"strings"

	"github.com/promptcmd/promptcmd/config"
)

// splitName divides a resolved name token into its provider/variant part and
// an optional model part: "openai/gpt-5" -> ("openai", "gpt-5", true);
// "openai" -> ("openai", "", false) (§4.2, the "short form" vs "long form"
// distinction).
func splitName(name string) (provider string, model string, hasModel bool) {
	if idx := strings.IndexByte(name, '/'); idx >= 0 {
		return name[:idx], name[idx+1:], true
	}
	return name, "", false
}

// suppressShortformModel drops a frontmatter-sourced model value that either
// belongs to a different resolution (the requested name came from Inputs or
// a Group member, where frontmatter model opinions are irrelevant) or is
// itself only a short form (no "/"), which was already consumed while
// resolving the provider/variant/group name and carries no model info of its
// own (§4.1, "the FM has only a shortform").
func suppressShortformModel(fm *config.GlobalProperties, nameSource config.PropertySource) *config.GlobalProperties {
	if fm == nil {
		return nil
	}
	cp := *fm
	if nameSource.IsInputs() {
		cp.Model = nil
		return &cp
	}
	if _, _, isGroup := nameSource.IsGroup(); isGroup {
		cp.Model = nil
		return &cp
	}
	if cp.Model != nil && !strings.Contains(cp.Model.Value, "/") {
		cp.Model = nil
	}
	return &cp
}
