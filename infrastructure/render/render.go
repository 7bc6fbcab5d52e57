// Package render derives prompt strings from test-case payloads. Two
// renderings exist for every case: a flat indented-text form and a
// tagged-markup ("VibeXML") form. Both are deterministic functions of the
// payload so that repeated runs compare identical prompts.
package render

import (
	"fmt"

	"github.com/jamesindeed/ai-vibexml-eval/internal/domain"
	"github.com/jamesindeed/ai-vibexml-eval/internal/ports"
)

// instructions is appended to both renderings so the only difference between
// the two prompts is the data formatting itself.
const instructions = "Please analyze this information and provide a detailed response."

var _ ports.Renderer = (*FormatRenderer)(nil)

// FormatRenderer renders a test case into either supported prompt format.
type FormatRenderer struct{}

// NewFormatRenderer returns a renderer covering both format kinds.
func NewFormatRenderer() *FormatRenderer { return &FormatRenderer{} }

// Render derives the prompt for the given format kind.
func (r *FormatRenderer) Render(tc domain.TestCase, kind domain.FormatKind) (string, error) {
	switch kind {
	case domain.FormatRawText:
		return renderRawText(tc), nil
	case domain.FormatVibeXML:
		return renderVibeXML(tc), nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidFormat, kind)
	}
}
