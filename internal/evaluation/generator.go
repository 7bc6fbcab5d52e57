// Package evaluation implements the A/B evaluation pipeline: paired response
// generation, blind label assignment, rubric judging, and orchestration. The
// aggregation step is pure and lives in internal/domain.
package evaluation

import (
	"context"
	"strings"

	"github.com/chainguard-dev/clog"

	"github.com/jamesindeed/ai-vibexml-eval/internal/domain"
	"github.com/jamesindeed/ai-vibexml-eval/internal/ports"
)

// defaultSystemPrompt primes the model-under-test identically for both
// renderings so the system prompt cannot favor either format.
const defaultSystemPrompt = "You are an expert AI assistant designed for research evaluation. " +
	"Follow instructions precisely and provide detailed, accurate responses. " +
	"When analyzing structured data, pay careful attention to hierarchical " +
	"relationships, dependencies, and organizational patterns."

// ResponseGenerator produces one ResponsePair per test case by invoking the
// model-under-test once per format. The two calls share no conversation
// state; each response is independent.
type ResponseGenerator struct {
	client   ports.LLMClient
	renderer ports.Renderer
}

// NewResponseGenerator wires a generation capability to a prompt renderer.
func NewResponseGenerator(client ports.LLMClient, renderer ports.Renderer) *ResponseGenerator {
	return &ResponseGenerator{client: client, renderer: renderer}
}

// Model returns the model identifier of the underlying client.
func (g *ResponseGenerator) Model() string { return g.client.GetModel() }

// Generate renders both prompts for the case and obtains a response for
// each. If either call fails or returns empty output, the whole case fails
// with a GenerationError; partial pairs are never scored.
func (g *ResponseGenerator) Generate(ctx context.Context, tc domain.TestCase) (domain.ResponsePair, error) {
	log := clog.FromContext(ctx).With("test_case", tc.Name)

	rawPrompt, err := g.renderer.Render(tc, domain.FormatRawText)
	if err != nil {
		return domain.ResponsePair{}, &domain.GenerationError{TestCaseName: tc.Name, Format: domain.FormatRawText, Err: err}
	}
	vibePrompt, err := g.renderer.Render(tc, domain.FormatVibeXML)
	if err != nil {
		return domain.ResponsePair{}, &domain.GenerationError{TestCaseName: tc.Name, Format: domain.FormatVibeXML, Err: err}
	}

	log.Infof("generating responses (raw_text prompt: %d chars, vibexml prompt: %d chars)",
		len(rawPrompt), len(vibePrompt))

	rawResponse, err := g.complete(ctx, rawPrompt)
	if err != nil {
		return domain.ResponsePair{}, &domain.GenerationError{TestCaseName: tc.Name, Format: domain.FormatRawText, Err: err}
	}
	vibeResponse, err := g.complete(ctx, vibePrompt)
	if err != nil {
		return domain.ResponsePair{}, &domain.GenerationError{TestCaseName: tc.Name, Format: domain.FormatVibeXML, Err: err}
	}

	return domain.ResponsePair{
		TestCaseName:       tc.Name,
		RawTextPrompt:      rawPrompt,
		VibeXMLPrompt:      vibePrompt,
		RawTextResponse:    rawResponse,
		VibeXMLResponse:    vibeResponse,
		RawTextLength:      len(rawPrompt),
		VibeXMLLength:      len(vibePrompt),
		ResponseSimilarity: responseSimilarity(rawResponse, vibeResponse),
	}, nil
}

func (g *ResponseGenerator) complete(ctx context.Context, prompt string) (string, error) {
	response, err := g.client.Complete(ctx, prompt, map[string]any{
		"system": defaultSystemPrompt,
	})
	if err != nil {
		return "", err
	}
	response = strings.TrimSpace(response)
	if response == "" {
		return "", domain.ErrEmptyValue
	}
	return response, nil
}
