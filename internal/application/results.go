package application

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jamesindeed/ai-vibexml-eval/internal/domain"
)

// SaveResults writes the run document as indented JSON. When path is empty,
// a filename derived from the models and timestamp is created under dir.
// Returns the path written.
func SaveResults(run *domain.EvaluationRun, dir, path string) (string, error) {
	if path == "" {
		path = filepath.Join(dir, ResultsFilename(
			run.Metadata.ResponseModel, run.Metadata.JudgeModel, time.Now()))
	}

	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing results: %w", err)
	}
	return path, nil
}

// ResultsFilename builds a filesystem-safe results name from the model
// names. The judge model is included only when it differs from the response
// model.
func ResultsFilename(responseModel, judgeModel string, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	safeResponse := sanitizeModelName(responseModel)
	safeJudge := sanitizeModelName(judgeModel)

	if safeResponse == safeJudge {
		return fmt.Sprintf("vibexml_evaluation_%s_%s.json", safeResponse, timestamp)
	}
	return fmt.Sprintf("vibexml_evaluation_%s_judge_%s_%s.json", safeResponse, safeJudge, timestamp)
}

func sanitizeModelName(model string) string {
	return strings.NewReplacer("/", "_", "-", "_", ":", "_").Replace(model)
}
