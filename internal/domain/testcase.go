// Package domain contains the core value types of the evaluation pipeline:
// test cases, response pairs, blind assignments, judgments, and the derived
// analysis. Types in this package are plain data with no I/O; everything
// here is safe to construct in tests without external dependencies.
package domain

import "fmt"

// FormatKind identifies which prompt rendering produced a response.
type FormatKind string

const (
	// FormatRawText is the flat, concatenated text rendering.
	FormatRawText FormatKind = "raw_text"

	// FormatVibeXML is the tagged-markup rendering.
	FormatVibeXML FormatKind = "vibexml"
)

// Category groups test cases by the kind of advantage (or disadvantage)
// structured formatting is expected to show.
type Category string

const (
	CategoryStructuredAdvantage Category = "structured_advantage"
	CategoryNeutral             Category = "neutral"
	CategoryComputational       Category = "computational"
	CategoryCreative            Category = "creative"
	CategoryAdversarial         Category = "adversarial"
)

// TestCase pairs a structured payload with a task the model must perform on
// it. A case is defined once at configuration time and never mutated; both
// prompt renderings are derived from the same Data tree so the comparison
// isolates formatting as the only variable.
type TestCase struct {
	// Name uniquely identifies the case within a run.
	Name string `yaml:"name" json:"name" validate:"required"`

	// Description is a human-readable summary of the scenario.
	Description string `yaml:"description" json:"description"`

	// Data is the structured payload, an arbitrary tree of key-value data.
	Data map[string]any `yaml:"data" json:"data" validate:"required"`

	// Task describes what the model must do with the payload.
	Task string `yaml:"task" json:"task" validate:"required"`

	// Category classifies the case for per-category analysis.
	Category Category `yaml:"category" json:"category"`

	// WhyStructureHelps records the rationale for including the case.
	WhyStructureHelps string `yaml:"why_structure_helps" json:"why_structure_helps"`

	// ExpectedAdvantages lists the qualitative improvements the structured
	// rendering is expected to produce. They are surfaced to the judge as
	// evaluation factors.
	ExpectedAdvantages []string `yaml:"expected_advantages" json:"expected_advantages"`
}

// Validate reports whether the case carries the minimum fields the pipeline
// needs. Payload content is not inspected.
func (tc TestCase) Validate() error {
	if tc.Name == "" {
		return fmt.Errorf("test case: %w: name", ErrEmptyValue)
	}
	if tc.Task == "" {
		return fmt.Errorf("test case %s: %w: task", tc.Name, ErrEmptyValue)
	}
	if len(tc.Data) == 0 {
		return fmt.Errorf("test case %s: %w: data", tc.Name, ErrEmptyValue)
	}
	return nil
}

// ResponsePair holds the two generated responses for one test case along
// with the prompts that produced them. It is created by the response
// generator and read-only thereafter.
type ResponsePair struct {
	// TestCaseName links the pair back to its test case.
	TestCaseName string `json:"test_case_name"`

	// RawTextPrompt is the rendered unstructured prompt.
	RawTextPrompt string `json:"raw_text_prompt"`

	// VibeXMLPrompt is the rendered structured prompt.
	VibeXMLPrompt string `json:"vibexml_prompt"`

	// RawTextResponse is the model output for the raw-text prompt.
	RawTextResponse string `json:"raw_text_response"`

	// VibeXMLResponse is the model output for the VibeXML prompt.
	VibeXMLResponse string `json:"vibexml_response"`

	// RawTextLength is the character count of the raw-text prompt.
	RawTextLength int `json:"raw_text_length"`

	// VibeXMLLength is the character count of the VibeXML prompt.
	VibeXMLLength int `json:"vibexml_length"`

	// ResponseSimilarity is the normalized edit-distance similarity of the
	// two responses in [0,1]. A value near 1.0 suggests the formatting made
	// little difference to the model output.
	ResponseSimilarity float64 `json:"response_similarity"`
}

// Response returns the response text generated for the given format.
func (rp ResponsePair) Response(kind FormatKind) (string, error) {
	switch kind {
	case FormatRawText:
		return rp.RawTextResponse, nil
	case FormatVibeXML:
		return rp.VibeXMLResponse, nil
	default:
		return "", fmt.Errorf("%w: unknown format kind %q", ErrInvalidFormat, kind)
	}
}
