package evaluation

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamesindeed/ai-vibexml-eval/infrastructure/render"
	"github.com/jamesindeed/ai-vibexml-eval/internal/domain"
	"github.com/jamesindeed/ai-vibexml-eval/internal/testutils"
)

func pipelineCases() []domain.TestCase {
	return []domain.TestCase{
		{
			Name:     "alpha_case",
			Data:     map[string]any{"key": "value"},
			Task:     "Analyze the alpha payload.",
			Category: domain.CategoryStructuredAdvantage,
		},
		{
			Name:     "beta_case",
			Data:     map[string]any{"key": "value"},
			Task:     "Analyze the beta payload.",
			Category: domain.CategoryNeutral,
		},
	}
}

// newTestPipeline assembles a pipeline over two mock clients. The judge
// always scores Response A at 90 and Response B at 70, so the expected
// winner for each case follows from its blind assignment.
func newTestPipeline(t *testing.T, seed *int64, judgeClient *testutils.MockLLMClient, opts ...PipelineOption) *Pipeline {
	t.Helper()

	genClient := testutils.NewMockLLMClient("response-model")
	genClient.AddResponse(testutils.MockResponse{Pattern: "Data:", Response: "answer from raw text prompt"})
	genClient.AddResponse(testutils.MockResponse{Pattern: "<task>", Response: "answer from vibexml prompt"})

	generator := NewResponseGenerator(genClient, render.NewFormatRenderer())
	judge, err := NewJudge(judgeClient, DefaultJudgeConfig())
	require.NoError(t, err)

	pipeline, err := NewPipeline(generator, NewBlinder(seed), judge, opts...)
	require.NoError(t, err)
	return pipeline
}

func defaultJudgeClient() *testutils.MockLLMClient {
	client := testutils.NewMockLLMClient("judge-model")
	client.AddResponse(testutils.MockResponse{
		Response: testutils.VerdictJSON("A", 90, 70, 85),
	})
	return client
}

func TestPipeline_Run(t *testing.T) {
	seed := int64(42)
	pipeline := newTestPipeline(t, &seed, defaultJudgeClient())

	cases := pipelineCases()
	run, err := pipeline.Run(context.Background(), cases)
	require.NoError(t, err)

	assert.Equal(t, "vibexml_structured_vs_unstructured", run.Metadata.TestType)
	assert.Equal(t, FrameworkVersion, run.Metadata.FrameworkVersion)
	assert.Equal(t, "response-model", run.Metadata.ResponseModel)
	assert.Equal(t, "judge-model", run.Metadata.JudgeModel)
	assert.Equal(t, []string{"alpha_case", "beta_case"}, run.Metadata.TestCasesEvaluated)
	require.NotNil(t, run.Metadata.Seed)
	assert.Equal(t, seed, *run.Metadata.Seed)

	require.Len(t, run.ResponsePairs, 2)
	require.Len(t, run.Assignments, 2)
	require.Len(t, run.Judgments, 2)
	assert.Empty(t, run.Skipped)

	// Response A always scores 90, so whichever format sat behind label A
	// must be the winner for each case.
	for i, tc := range cases {
		expected := domain.NewBlindAssignment(tc.Name, &seed)
		assert.Equal(t, expected, run.Assignments[i], "assignment must be reproducible from the seed")

		want := domain.WinnerRawText
		if expected.LabelA == domain.FormatVibeXML {
			want = domain.WinnerVibeXML
		}
		assert.Equal(t, want, run.Judgments[i].Winner, "case %s", tc.Name)
		assert.Equal(t, tc.Name, run.Judgments[i].TestCaseName)
	}

	assert.Equal(t, 2, run.Analysis.Summary.TotalTests)
	assert.Equal(t, 2, run.Analysis.Summary.VibeXMLWins+run.Analysis.Summary.RawTextWins)
	assert.Contains(t, run.Analysis.CategoryAnalysis, string(domain.CategoryStructuredAdvantage))
}

func TestPipeline_EmptyCases(t *testing.T) {
	pipeline := newTestPipeline(t, nil, defaultJudgeClient())

	_, err := pipeline.Run(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrNoTestCases)
}

func TestPipeline_InvalidCaseIsFatal(t *testing.T) {
	pipeline := newTestPipeline(t, nil, defaultJudgeClient())

	cases := pipelineCases()
	cases[1].Task = ""
	_, err := pipeline.Run(context.Background(), cases)
	require.Error(t, err)

	var cfgErr *domain.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr, "an invalid case must abort before any generation")
}

func TestPipeline_GenerationFailureSkipsCase(t *testing.T) {
	seed := int64(7)

	// Failing only the beta prompt leaves alpha unaffected.
	genClient := testutils.NewMockLLMClient("response-model")
	genClient.AddResponse(testutils.MockResponse{Pattern: "Data:", Response: "raw answer"})
	genClient.AddResponse(testutils.MockResponse{Pattern: "<task>", Response: "vibe answer"})
	genClient.FailOn("beta payload", errors.New("provider unavailable"))

	generator := NewResponseGenerator(genClient, render.NewFormatRenderer())
	judge, err := NewJudge(defaultJudgeClient(), DefaultJudgeConfig())
	require.NoError(t, err)
	pipeline, err := NewPipeline(generator, NewBlinder(&seed), judge)
	require.NoError(t, err)

	run, err := pipeline.Run(context.Background(), pipelineCases())
	require.NoError(t, err)

	require.Len(t, run.Judgments, 1)
	assert.Equal(t, "alpha_case", run.Judgments[0].TestCaseName)

	require.Len(t, run.Skipped, 1)
	assert.Equal(t, "beta_case", run.Skipped[0].TestCaseName)
	assert.Equal(t, domain.StageGeneration, run.Skipped[0].Stage)
	assert.Contains(t, run.Skipped[0].Reason, "provider unavailable")

	assert.Equal(t, 1, run.Analysis.Summary.TotalTests)
}

func TestPipeline_ParseFailureSkipsCase(t *testing.T) {
	seed := int64(7)
	judgeClient := testutils.NewMockLLMClient("judge-model")
	judgeClient.AddResponse(testutils.MockResponse{
		Response: testutils.VerdictJSON("A", 90, 70, 85),
	})
	// The judge prompt embeds the case name, so beta's verdict can be made
	// unparseable without touching alpha.
	judgeClient.AddResponse(testutils.MockResponse{
		Pattern:  `Test case "beta_case"`,
		Response: "Response A seemed nicer to me.",
	})

	pipeline := newTestPipeline(t, &seed, judgeClient)

	run, err := pipeline.Run(context.Background(), pipelineCases())
	require.NoError(t, err)

	require.Len(t, run.Judgments, 1)
	assert.Equal(t, "alpha_case", run.Judgments[0].TestCaseName)

	require.Len(t, run.Skipped, 1)
	assert.Equal(t, "beta_case", run.Skipped[0].TestCaseName)
	assert.Equal(t, domain.StageJudgment, run.Skipped[0].Stage)

	// The failed case still contributes its generation artifacts.
	assert.Len(t, run.ResponsePairs, 2)
	assert.Len(t, run.Assignments, 2)
}

func TestPipeline_CancelledContext(t *testing.T) {
	pipeline := newTestPipeline(t, nil, defaultJudgeClient())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	run, err := pipeline.Run(ctx, pipelineCases())
	require.NoError(t, err)

	assert.Empty(t, run.Judgments)
	require.Len(t, run.Skipped, 2)
	for _, sk := range run.Skipped {
		assert.Contains(t, sk.Reason, "cancelled before evaluation")
	}
	assert.Equal(t, 0, run.Analysis.Summary.TotalTests)
}

func TestPipeline_ConcurrentRunPreservesOrder(t *testing.T) {
	seed := int64(42)
	pipeline := newTestPipeline(t, &seed, defaultJudgeClient(), WithConcurrency(4))

	var cases []domain.TestCase
	for i := 0; i < 8; i++ {
		cases = append(cases, domain.TestCase{
			Name:     fmt.Sprintf("case_%02d", i),
			Data:     map[string]any{"index": i},
			Task:     fmt.Sprintf("Analyze payload %d.", i),
			Category: domain.CategoryNeutral,
		})
	}

	run, err := pipeline.Run(context.Background(), cases)
	require.NoError(t, err)

	require.Len(t, run.Judgments, len(cases))
	for i, tc := range cases {
		assert.Equal(t, tc.Name, run.Judgments[i].TestCaseName, "judgments must stay in test-case order")
	}

	// Concurrent execution must match the sequential result case for case.
	sequential := newTestPipeline(t, &seed, defaultJudgeClient())
	seqRun, err := sequential.Run(context.Background(), cases)
	require.NoError(t, err)
	assert.Equal(t, seqRun.Judgments, run.Judgments)
}
