package evaluation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/chainguard-dev/clog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/jamesindeed/ai-vibexml-eval/internal/domain"
	"github.com/jamesindeed/ai-vibexml-eval/internal/ports"
)

// FrameworkVersion is recorded in run metadata.
const FrameworkVersion = "1.0.0"

// testType identifies the experiment design in run metadata.
const testType = "vibexml_structured_vs_unstructured"

// Pipeline runs test cases through generation, blinding, and judging, then
// reduces the collected judgments to an Analysis. Scenarios are independent:
// a failure in one is recorded and never affects its siblings.
type Pipeline struct {
	generator *ResponseGenerator
	blinder   *Blinder
	judge     *Judge
	metrics   ports.MetricsCollector

	// concurrency bounds simultaneous scenario processing. 1 (the default)
	// means strictly sequential execution.
	concurrency int
}

// PipelineOption customizes pipeline behavior.
type PipelineOption func(*Pipeline)

// WithMetrics attaches a metrics collector. A nil collector disables
// collection.
func WithMetrics(collector ports.MetricsCollector) PipelineOption {
	return func(p *Pipeline) { p.metrics = collector }
}

// WithConcurrency allows up to n scenarios to be processed at once. The
// judgment list remains append-only in test-case order regardless of n.
func WithConcurrency(n int) PipelineOption {
	return func(p *Pipeline) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// NewPipeline assembles the evaluation pipeline from its three stages.
func NewPipeline(generator *ResponseGenerator, blinder *Blinder, judge *Judge, opts ...PipelineOption) (*Pipeline, error) {
	if generator == nil || blinder == nil || judge == nil {
		return nil, fmt.Errorf("pipeline: %w: all stages are required", domain.ErrEmptyValue)
	}
	p := &Pipeline{
		generator:   generator,
		blinder:     blinder,
		judge:       judge,
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// scenarioResult keeps per-case outcomes indexed so the final lists preserve
// test-case order even under concurrent execution.
type scenarioResult struct {
	pair       *domain.ResponsePair
	assignment *domain.BlindAssignment
	judgment   *domain.Judgment
	skipped    *domain.SkippedCase
}

// Run evaluates every test case and returns the completed run. Scenario
// failures are collected in Skipped; only configuration-level problems (an
// empty or invalid case list) return an error. Cancelling the context stops
// new scenarios while retaining everything already judged.
func (p *Pipeline) Run(ctx context.Context, cases []domain.TestCase) (*domain.EvaluationRun, error) {
	if len(cases) == 0 {
		return nil, domain.ErrNoTestCases
	}
	names := make([]string, len(cases))
	for i, tc := range cases {
		if err := tc.Validate(); err != nil {
			return nil, &domain.ConfigurationError{Field: "test_cases", Err: err}
		}
		names[i] = tc.Name
	}

	log := clog.FromContext(ctx)
	log.Infof("evaluating %d test cases (response model: %s, judge model: %s)",
		len(cases), p.generator.Model(), p.judge.Model())

	results := make([]scenarioResult, len(cases))

	if p.concurrency <= 1 {
		for i, tc := range cases {
			if ctx.Err() != nil {
				results[i] = cancelledResult(tc.Name)
				continue
			}
			results[i] = p.runScenario(ctx, tc)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(p.concurrency)
		var mu sync.Mutex
		for i, tc := range cases {
			g.Go(func() error {
				var res scenarioResult
				if gctx.Err() != nil {
					res = cancelledResult(tc.Name)
				} else {
					res = p.runScenario(gctx, tc)
				}
				mu.Lock()
				results[i] = res
				mu.Unlock()
				return nil
			})
		}
		// Scenario errors are captured in results, never returned, so the
		// group can only surface a nil error here.
		_ = g.Wait()
	}

	run := &domain.EvaluationRun{
		Metadata: domain.RunMetadata{
			TestType:           testType,
			FrameworkVersion:   FrameworkVersion,
			ResponseModel:      p.generator.Model(),
			JudgeModel:         p.judge.Model(),
			TestCasesEvaluated: names,
			EvaluationTime:     time.Now().UTC(),
			Seed:               p.blinder.Seed(),
		},
	}
	for _, res := range results {
		if res.pair != nil {
			run.ResponsePairs = append(run.ResponsePairs, *res.pair)
		}
		if res.assignment != nil {
			run.Assignments = append(run.Assignments, *res.assignment)
		}
		if res.judgment != nil {
			run.Judgments = append(run.Judgments, *res.judgment)
		}
		if res.skipped != nil {
			run.Skipped = append(run.Skipped, *res.skipped)
		}
	}
	run.Analysis = domain.Analyze(run.Judgments, cases)

	log.Infof("run complete: %d judged, %d skipped", len(run.Judgments), len(run.Skipped))
	return run, nil
}

// runScenario carries one test case through generation, blinding, and
// judging. Failures are folded into a skip record with the failing stage.
func (p *Pipeline) runScenario(ctx context.Context, tc domain.TestCase) scenarioResult {
	tracer := otel.Tracer("vibexml-eval/pipeline")
	ctx, span := tracer.Start(ctx, "Pipeline.runScenario")
	span.SetAttributes(
		attribute.String("test_case.name", tc.Name),
		attribute.String("test_case.category", string(tc.Category)),
	)
	defer span.End()

	log := clog.FromContext(ctx).With("test_case", tc.Name)
	start := time.Now()

	pair, err := p.generator.Generate(ctx, tc)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		log.Errorf("generation failed: %v", err)
		p.recordScenario(tc, domain.StageGeneration, start, false)
		return skipResult(tc.Name, domain.StageGeneration, err)
	}

	assignment, blinded, err := p.blinder.Assign(pair)
	if err != nil {
		// Assignment can only fail on an internal invariant violation;
		// treat it as a judgment-stage failure for auditing purposes.
		span.SetStatus(codes.Error, err.Error())
		log.Errorf("blind assignment failed: %v", err)
		p.recordScenario(tc, domain.StageJudgment, start, false)
		return scenarioResult{pair: &pair, skipped: &domain.SkippedCase{
			TestCaseName: tc.Name, Stage: domain.StageJudgment, Reason: err.Error(),
		}}
	}
	span.AddEvent("blinded", trace.WithAttributes(
		attribute.Bool("seeded", assignment.Seeded),
	))

	judgment, err := p.judge.Judge(ctx, tc, assignment, blinded)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		log.Errorf("judgment failed: %v", err)
		p.recordScenario(tc, domain.StageJudgment, start, false)
		return scenarioResult{pair: &pair, assignment: &assignment, skipped: &domain.SkippedCase{
			TestCaseName: tc.Name, Stage: domain.StageJudgment, Reason: err.Error(),
		}}
	}

	span.SetStatus(codes.Ok, "scenario judged")
	log.Infof("judged: winner=%s raw_text=%.1f vibexml=%.1f confidence=%.0f",
		judgment.Winner, judgment.RawTextScore, judgment.VibeXMLScore, judgment.Confidence)
	p.recordScenario(tc, domain.StageJudgment, start, true)

	return scenarioResult{pair: &pair, assignment: &assignment, judgment: &judgment}
}

func (p *Pipeline) recordScenario(tc domain.TestCase, stage string, start time.Time, ok bool) {
	if p.metrics == nil {
		return
	}
	status := "success"
	if !ok {
		status = "failed"
	}
	labels := map[string]string{
		"category": string(tc.Category),
		"stage":    stage,
		"status":   status,
	}
	p.metrics.RecordCounter("eval_scenarios_total", 1, labels)
	p.metrics.RecordLatency("scenario", time.Since(start), labels)
}

func skipResult(name, stage string, err error) scenarioResult {
	return scenarioResult{skipped: &domain.SkippedCase{
		TestCaseName: name,
		Stage:        stage,
		Reason:       err.Error(),
	}}
}

func cancelledResult(name string) scenarioResult {
	return skipResult(name, domain.StageGeneration, errors.New("cancelled before evaluation"))
}
