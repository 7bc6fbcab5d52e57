package domain

import (
	"errors"
	"fmt"
)

// Common domain errors returned by pipeline operations.
var (
	// ErrEmptyValue indicates that a required value is empty or nil.
	ErrEmptyValue = errors.New("empty value")

	// ErrInvalidFormat indicates an unknown format kind or label.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidAssignment indicates a blind assignment that violates the
	// one-label-per-format invariant.
	ErrInvalidAssignment = errors.New("invalid blind assignment")

	// ErrNoTestCases indicates that a run was requested with no scenarios.
	ErrNoTestCases = errors.New("no test cases selected")
)

// GenerationError is a scenario-local failure of the model-under-test: a
// provider error, timeout, or empty output while generating either response.
// The scenario is excluded from the analysis; the run continues.
type GenerationError struct {
	// TestCaseName identifies the failed scenario.
	TestCaseName string

	// Format is the rendering whose generation failed.
	Format FormatKind

	// Err is the underlying provider error.
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed for %s (%s format): %v", e.TestCaseName, e.Format, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// JudgmentParseError is a scenario-local failure to decode the evaluator's
// output into the verdict schema. Malformed judgments are never partially
// filled or silently defaulted; the scenario is excluded instead.
type JudgmentParseError struct {
	// TestCaseName identifies the failed scenario.
	TestCaseName string

	// Err describes what part of the verdict failed to decode or validate.
	Err error
}

func (e *JudgmentParseError) Error() string {
	return fmt.Sprintf("judgment parse failed for %s: %v", e.TestCaseName, e.Err)
}

func (e *JudgmentParseError) Unwrap() error { return e.Err }

// ConfigurationError is fatal to the whole run and must surface before any
// generation call is made: unknown case names, missing credentials, invalid
// settings.
type ConfigurationError struct {
	// Field names the offending setting.
	Field string

	// Err is the underlying validation failure.
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
