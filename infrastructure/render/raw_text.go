package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jamesindeed/ai-vibexml-eval/internal/domain"
)

// renderRawText formats the payload as indented key/value text with no
// markup: hierarchy is conveyed only through indentation. This is the
// unstructured baseline the tagged rendering is compared against.
func renderRawText(tc domain.TestCase) string {
	var b strings.Builder
	b.WriteString("Task: ")
	b.WriteString(tc.Task)
	b.WriteString("\n\nData:\n")
	writeTextValue(&b, tc.Data, 0)
	b.WriteString("\n")
	b.WriteString(instructions)
	return b.String()
}

func writeTextValue(b *strings.Builder, value any, indent int) {
	spaces := strings.Repeat("  ", indent)

	switch v := value.(type) {
	case map[string]any:
		for _, key := range sortedKeys(v) {
			child := v[key]
			switch child.(type) {
			case map[string]any, []any:
				fmt.Fprintf(b, "%s%s:\n", spaces, key)
				writeTextValue(b, child, indent+1)
			default:
				fmt.Fprintf(b, "%s%s: %v\n", spaces, key, child)
			}
		}
	case []any:
		for i, item := range v {
			switch item.(type) {
			case map[string]any, []any:
				fmt.Fprintf(b, "%s%d.\n", spaces, i+1)
				writeTextValue(b, item, indent+1)
			default:
				fmt.Fprintf(b, "%s- %v\n", spaces, item)
			}
		}
	default:
		fmt.Fprintf(b, "%s%v\n", spaces, v)
	}
}

// sortedKeys returns map keys in a stable order. Go map iteration is
// randomized, so sorting is what makes rendering deterministic.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
