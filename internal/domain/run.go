package domain

import "time"

// Pipeline stage names used in skip records and metrics labels.
const (
	StageGeneration = "generation"
	StageJudgment   = "judgment"
)

// SkippedCase records a scenario that was excluded from the analysis and
// why, so partial runs remain auditable.
type SkippedCase struct {
	// TestCaseName identifies the excluded scenario.
	TestCaseName string `json:"test_case_name"`

	// Stage is the pipeline stage that failed (generation or judgment).
	Stage string `json:"stage"`

	// Reason is the underlying error message.
	Reason string `json:"reason"`
}

// RunMetadata describes how a run was produced.
type RunMetadata struct {
	TestType           string    `json:"test_type"`
	FrameworkVersion   string    `json:"framework_version"`
	ResponseModel      string    `json:"response_model"`
	JudgeModel         string    `json:"judge_model"`
	TestCasesEvaluated []string  `json:"test_cases_evaluated"`
	EvaluationTime     time.Time `json:"evaluation_timestamp"`

	// Seed is the reproducibility seed used for blind assignments, or nil
	// when entropy was used.
	Seed *int64 `json:"seed,omitempty"`
}

// EvaluationRun is the root aggregate of one invocation. It owns all child
// entities, is created once per run, and is never mutated after it is
// serialized. The JSON field names form a stable schema that downstream
// tooling depends on.
type EvaluationRun struct {
	Metadata RunMetadata `json:"metadata"`

	// ResponsePairs lists generation results in test-case order.
	ResponsePairs []ResponsePair `json:"ab_test_results"`

	// Assignments records the blind label mapping for each judged case.
	Assignments []BlindAssignment `json:"blind_assignments"`

	// Judgments lists unblinded verdicts in test-case order. The list is
	// append-only while the run is in progress.
	Judgments []Judgment `json:"judgments"`

	// Skipped records scenarios excluded from the analysis, with reasons.
	Skipped []SkippedCase `json:"skipped_cases,omitempty"`

	// Analysis is the derived reduction of Judgments.
	Analysis Analysis `json:"analysis"`
}
