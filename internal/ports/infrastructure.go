// Package ports defines the interfaces between the evaluation pipeline and
// its collaborators: language-model providers, prompt renderers, and metrics
// sinks. The pipeline depends only on these interfaces; concrete
// implementations live under infrastructure/.
package ports

import (
	"context"
	"time"

	"github.com/jamesindeed/ai-vibexml-eval/internal/domain"
)

// LLMClient is the opaque generation capability. Implementations handle
// provider-specific details like authentication, request formatting, and
// response parsing.
type LLMClient interface {
	// Complete sends a completion request and returns the generated text.
	// The options map allows provider-specific settings without changing
	// the interface; common options are "temperature" (float64),
	// "max_tokens" (int), and "system" (string).
	Complete(ctx context.Context, prompt string, options map[string]any) (string, error)

	// EstimateTokens returns an approximate token count for the given text,
	// used for cost estimation before a request is made.
	EstimateTokens(text string) (int, error)

	// GetModel returns the model identifier this client targets.
	GetModel() string
}

// Renderer derives a prompt string from a test case for a given format
// kind. Rendering is deterministic: the same case and kind always produce
// the same prompt.
type Renderer interface {
	Render(tc domain.TestCase, kind domain.FormatKind) (string, error)
}

// MetricsCollector records operational metrics for the pipeline and the LLM
// layer. Implementations integrate with Prometheus or equivalent systems; a
// nil collector is valid everywhere and disables collection.
type MetricsCollector interface {
	// RecordLatency records the execution time of an operation.
	RecordLatency(operation string, duration time.Duration, labels map[string]string)

	// RecordCounter increments a counter metric.
	RecordCounter(metric string, value float64, labels map[string]string)

	// RecordHistogram records a value in a histogram distribution.
	RecordHistogram(metric string, value float64, labels map[string]string)
}
