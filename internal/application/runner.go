package application

import (
	"context"
	"time"

	"github.com/chainguard-dev/clog"
	"golang.org/x/time/rate"

	"github.com/jamesindeed/ai-vibexml-eval/infrastructure/llm"
	"github.com/jamesindeed/ai-vibexml-eval/infrastructure/render"
	"github.com/jamesindeed/ai-vibexml-eval/internal/domain"
	"github.com/jamesindeed/ai-vibexml-eval/internal/evaluation"
	"github.com/jamesindeed/ai-vibexml-eval/internal/ports"
)

// Runner assembles the pipeline from configuration and executes evaluation
// runs.
type Runner struct {
	cfg     *Config
	metrics ports.MetricsCollector
}

// NewRunner validates the configuration and returns a Runner. Configuration
// problems are fatal here, before any provider traffic.
func NewRunner(cfg *Config, metrics ports.MetricsCollector) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Runner{cfg: cfg, metrics: metrics}, nil
}

// Run evaluates the given cases end to end and returns the complete run
// document.
func (r *Runner) Run(ctx context.Context, cases []domain.TestCase) (*domain.EvaluationRun, error) {
	responseClient, err := r.buildClient(r.cfg.Provider, r.cfg.Model)
	if err != nil {
		return nil, err
	}
	judgeClient, err := r.buildClient(r.cfg.EffectiveJudgeProvider(), r.cfg.JudgeModel)
	if err != nil {
		return nil, err
	}

	generator := evaluation.NewResponseGenerator(responseClient, render.NewFormatRenderer())
	blinder := evaluation.NewBlinder(r.cfg.Seed)
	judge, err := evaluation.NewJudge(judgeClient, evaluation.DefaultJudgeConfig())
	if err != nil {
		return nil, err
	}

	pipeline, err := evaluation.NewPipeline(generator, blinder, judge,
		evaluation.WithMetrics(r.metrics),
		evaluation.WithConcurrency(r.cfg.Concurrency),
	)
	if err != nil {
		return nil, err
	}

	clog.FromContext(ctx).Infof("starting evaluation: cases=%d model=%s judge=%s",
		len(cases), responseClient.GetModel(), judgeClient.GetModel())

	return pipeline.Run(ctx, cases)
}

// buildClient constructs a provider client with the standard middleware
// chain: tracing and metrics outermost, retry around rate limiting and the
// per-request timeout.
func (r *Runner) buildClient(provider, model string) (ports.LLMClient, error) {
	client, err := llm.NewClient(provider, llm.ClientConfig{
		APIKey: r.cfg.APIKeyFor(provider),
		Model:  model,
		Middleware: []llm.Middleware{
			llm.TracingMiddleware("vibexml-eval"),
			llm.MetricsMiddleware(r.metrics),
			llm.RetryMiddleware(r.cfg.MaxRetries, time.Second, 30*time.Second),
			llm.RateLimitMiddleware(rate.Limit(r.cfg.RequestsPerSecond), r.cfg.Burst),
			llm.TimeoutMiddleware(r.cfg.RequestTimeout),
		},
	})
	if err != nil {
		return nil, &domain.ConfigurationError{Field: "provider", Err: err}
	}
	return client, nil
}
