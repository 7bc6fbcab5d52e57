// Package application wires configuration, LLM clients, and the evaluation
// pipeline into runnable commands, and persists run results.
package application

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/jamesindeed/ai-vibexml-eval/internal/domain"
)

// Config holds everything a run needs, sourced from the environment and
// optionally overridden by CLI flags. Invalid configuration is fatal before
// any generation starts.
type Config struct {
	// Provider generates the responses under test.
	Provider string `env:"EVAL_PROVIDER,default=anthropic"`
	// Model overrides the provider's default response model.
	Model string `env:"EVAL_MODEL"`

	// JudgeProvider evaluates the blinded responses. Empty reuses Provider.
	JudgeProvider string `env:"EVAL_JUDGE_PROVIDER"`
	// JudgeModel overrides the judge provider's default model.
	JudgeModel string `env:"EVAL_JUDGE_MODEL"`

	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	GoogleAPIKey    string `env:"GOOGLE_API_KEY"`

	// RequestTimeout bounds each provider request.
	RequestTimeout time.Duration `env:"EVAL_REQUEST_TIMEOUT,default=120s"`
	// RequestsPerSecond paces provider traffic.
	RequestsPerSecond float64 `env:"EVAL_REQUESTS_PER_SECOND,default=2"`
	// Burst allows short spikes above the sustained rate.
	Burst int `env:"EVAL_BURST,default=4"`
	// MaxRetries caps retry attempts for transient failures.
	MaxRetries int `env:"EVAL_MAX_RETRIES,default=3"`

	// Concurrency is the number of scenarios evaluated in parallel.
	Concurrency int `env:"EVAL_CONCURRENCY,default=1"`

	// Seed makes blind label assignment reproducible when set.
	Seed *int64 `env:"EVAL_SEED"`

	// OutputDir receives the results JSON when no explicit path is given.
	OutputDir string `env:"EVAL_OUTPUT_DIR,default=."`
}

var knownProviders = map[string]struct{}{
	"anthropic": {},
	"openai":    {},
	"google":    {},
}

// LoadConfig reads configuration from the environment.
func LoadConfig(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, &domain.ConfigurationError{Field: "env", Err: err}
	}
	return &cfg, nil
}

// Validate checks that providers are known and their API keys are present.
func (c *Config) Validate() error {
	for field, provider := range map[string]string{
		"provider":       c.Provider,
		"judge_provider": c.EffectiveJudgeProvider(),
	} {
		if _, ok := knownProviders[provider]; !ok {
			return &domain.ConfigurationError{
				Field: field,
				Err:   fmt.Errorf("unknown provider %q", provider),
			}
		}
		if c.APIKeyFor(provider) == "" {
			return &domain.ConfigurationError{
				Field: field,
				Err:   fmt.Errorf("no API key configured for provider %q", provider),
			}
		}
	}

	if c.RequestTimeout <= 0 {
		return &domain.ConfigurationError{
			Field: "request_timeout",
			Err:   fmt.Errorf("must be positive, got %s", c.RequestTimeout),
		}
	}
	if c.RequestsPerSecond <= 0 {
		return &domain.ConfigurationError{
			Field: "requests_per_second",
			Err:   fmt.Errorf("must be positive, got %g", c.RequestsPerSecond),
		}
	}
	if c.Concurrency < 1 {
		return &domain.ConfigurationError{
			Field: "concurrency",
			Err:   fmt.Errorf("must be at least 1, got %d", c.Concurrency),
		}
	}
	return nil
}

// EffectiveJudgeProvider returns the judge provider, defaulting to the
// response provider.
func (c *Config) EffectiveJudgeProvider() string {
	if c.JudgeProvider != "" {
		return c.JudgeProvider
	}
	return c.Provider
}

// APIKeyFor returns the configured key for a provider, or empty.
func (c *Config) APIKeyFor(provider string) string {
	switch provider {
	case "anthropic":
		return c.AnthropicAPIKey
	case "openai":
		return c.OpenAIAPIKey
	case "google":
		return c.GoogleAPIKey
	default:
		return ""
	}
}
