package render

import (
	"fmt"
	"strings"

	"github.com/jamesindeed/ai-vibexml-eval/internal/domain"
)

// renderVibeXML formats the payload as tagged markup: every key becomes a
// tag, nesting is explicit, and list items carry indexed tags. The task and
// closing instructions are wrapped the same way so the whole prompt is one
// consistent document.
func renderVibeXML(tc domain.TestCase) string {
	var b strings.Builder
	// Fixed top-level order: task first, then data, then instructions.
	writeTag(&b, "task", tc.Task, 0)
	writeTag(&b, "data", tc.Data, 0)
	writeTag(&b, "instructions", instructions, 0)
	return strings.TrimRight(b.String(), "\n")
}

func writeTag(b *strings.Builder, key string, value any, indent int) {
	spaces := strings.Repeat("  ", indent)
	tag := sanitizeTag(key)

	switch v := value.(type) {
	case map[string]any:
		fmt.Fprintf(b, "%s<%s>\n", spaces, tag)
		for _, k := range sortedKeys(v) {
			writeTag(b, k, v[k], indent+1)
		}
		fmt.Fprintf(b, "%s</%s>\n", spaces, tag)
	case []any:
		fmt.Fprintf(b, "%s<%s>\n", spaces, tag)
		for i, item := range v {
			writeTag(b, fmt.Sprintf("%s-%d", tag, i+1), item, indent+1)
		}
		fmt.Fprintf(b, "%s</%s>\n", spaces, tag)
	default:
		fmt.Fprintf(b, "%s<%s>%v</%s>\n", spaces, tag, v, tag)
	}
}

// sanitizeTag keeps tag names well-formed when payload keys contain spaces
// or other separators.
func sanitizeTag(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		case r == ' ':
			return '_'
		default:
			return -1
		}
	}, key)
}
