package application

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamesindeed/ai-vibexml-eval/internal/domain"
)

func TestResultsFilename(t *testing.T) {
	now := time.Date(2026, time.March, 14, 9, 30, 5, 0, time.UTC)

	assert.Equal(t,
		"vibexml_evaluation_claude_3_5_sonnet_20241022_20260314_093005.json",
		ResultsFilename("claude-3-5-sonnet-20241022", "claude-3-5-sonnet-20241022", now))

	assert.Equal(t,
		"vibexml_evaluation_gpt_4o_judge_claude_3_5_sonnet_20241022_20260314_093005.json",
		ResultsFilename("gpt-4o", "claude-3-5-sonnet-20241022", now))

	got := ResultsFilename("models/gemini-2.0:exp", "models/gemini-2.0:exp", now)
	assert.NotContains(t, got, "/")
	assert.NotContains(t, got, ":")
}

func TestSaveResults(t *testing.T) {
	run := &domain.EvaluationRun{
		Metadata: domain.RunMetadata{
			TestType:           "vibexml_ab_evaluation",
			ResponseModel:      "claude-3-5-sonnet-20241022",
			JudgeModel:         "claude-3-5-sonnet-20241022",
			TestCasesEvaluated: []string{"simple_calculation"},
			EvaluationTime:     time.Now().UTC(),
		},
	}

	dir := t.TempDir()
	path, err := SaveResults(run, dir, "")
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded domain.EvaluationRun
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, run.Metadata.ResponseModel, decoded.Metadata.ResponseModel)
	assert.Equal(t, run.Metadata.TestCasesEvaluated, decoded.Metadata.TestCasesEvaluated)
}

func TestSaveResults_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")

	got, err := SaveResults(&domain.EvaluationRun{}, "ignored-dir", path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestSaveResults_UnwritableDir(t *testing.T) {
	_, err := SaveResults(&domain.EvaluationRun{}, filepath.Join(t.TempDir(), "missing"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "writing results")
}
