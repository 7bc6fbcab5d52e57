package evaluation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/chainguard-dev/clog"
	"github.com/go-playground/validator/v10"

	"github.com/jamesindeed/ai-vibexml-eval/internal/domain"
	"github.com/jamesindeed/ai-vibexml-eval/internal/ports"
)

// Default judge request parameters. Temperature zero keeps scoring as
// consistent as the evaluator model allows.
const (
	DefaultJudgeTemperature = 0.0
	DefaultJudgeMaxTokens   = 1024
)

// judgePromptTemplate is the fixed rubric shown to the evaluator model. It
// only ever speaks in terms of Response A and Response B; the label-to-format
// mapping is never disclosed.
const judgePromptTemplate = `You are an expert evaluator assessing AI response quality. Compare two responses to the same task and determine which demonstrates better understanding and utilization of the provided information.

EVALUATION CONTEXT: Test case "{{.TestCaseName}}"
TASK: {{.Task}}

KEY EVALUATION FACTORS:
{{- range .Advantages}}
- {{.}}
{{- end}}

Response A:
{{.ResponseA}}

Response B:
{{.ResponseB}}

EVALUATION CRITERIA:
Score both responses on each criterion (0-100 scale):

1. **Accuracy & Completeness**: How well each addresses all aspects of the task
2. **Structured Data Utilization**: How well each demonstrates understanding of complex relationships
3. **Precision & Specificity**: Which references specific values/parameters more effectively
4. **Logical Flow & Organization**: Which is better organized with clearer reasoning
5. **Contextual Understanding**: Which shows better awareness of interconnected contexts

SCORING GUIDANCE:
- Use realistic score ranges (most scores 70-90, exceptional cases outside that band)
- Focus on concrete, observable differences between responses
- Confidence should reflect how clear the differences are (50-100)
- Provide specific examples from the responses in your reasoning

IMPORTANT: You must respond with valid JSON in exactly this format:
{"winner": "A"|"B"|"TIE", "confidence": <50-100>, "response_a_overall": <0-100>, "response_b_overall": <0-100>, "response_a_scores": {"accuracy_completeness": <0-100>, "structured_data_utilization": <0-100>, "precision_specificity": <0-100>, "logical_flow_organization": <0-100>, "contextual_understanding": <0-100>}, "response_b_scores": {...same fields...}, "reasoning": "<detailed explanation>", "main_advantages": ["<advantage>", ...]}`

// verdictCriteria is the wire form of one side's criterion sub-scores.
type verdictCriteria struct {
	AccuracyCompleteness      float64 `json:"accuracy_completeness" validate:"min=0,max=100"`
	StructuredDataUtilization float64 `json:"structured_data_utilization" validate:"min=0,max=100"`
	PrecisionSpecificity      float64 `json:"precision_specificity" validate:"min=0,max=100"`
	LogicalFlowOrganization   float64 `json:"logical_flow_organization" validate:"min=0,max=100"`
	ContextualUnderstanding   float64 `json:"contextual_understanding" validate:"min=0,max=100"`
}

// judgeVerdict is the expected JSON structure of the evaluator output. The
// decode is strict: a verdict that fails schema validation fails the
// scenario rather than being partially filled.
type judgeVerdict struct {
	Winner           string          `json:"winner" validate:"required,oneof=A B TIE"`
	Confidence       float64         `json:"confidence" validate:"min=0,max=100"`
	ResponseAOverall float64         `json:"response_a_overall" validate:"min=0,max=100"`
	ResponseBOverall float64         `json:"response_b_overall" validate:"min=0,max=100"`
	ResponseAScores  verdictCriteria `json:"response_a_scores"`
	ResponseBScores  verdictCriteria `json:"response_b_scores"`
	Reasoning        string          `json:"reasoning" validate:"required,min=10"`
	MainAdvantages   []string        `json:"main_advantages" validate:"max=3"`
}

func (c verdictCriteria) byName() map[string]float64 {
	return map[string]float64{
		domain.CriterionAccuracyCompleteness:      c.AccuracyCompleteness,
		domain.CriterionStructuredDataUtilization: c.StructuredDataUtilization,
		domain.CriterionPrecisionSpecificity:      c.PrecisionSpecificity,
		domain.CriterionLogicalFlowOrganization:   c.LogicalFlowOrganization,
		domain.CriterionContextualUnderstanding:   c.ContextualUnderstanding,
	}
}

// JudgeConfig holds the evaluator request parameters.
type JudgeConfig struct {
	// Temperature controls randomness of the evaluator (0.0-1.0).
	Temperature float64 `validate:"min=0,max=1"`

	// MaxTokens bounds the verdict length. Must leave room for the
	// reasoning field.
	MaxTokens int `validate:"required,min=256,max=4000"`
}

// DefaultJudgeConfig returns the standard evaluator parameters.
func DefaultJudgeConfig() JudgeConfig {
	return JudgeConfig{
		Temperature: DefaultJudgeTemperature,
		MaxTokens:   DefaultJudgeMaxTokens,
	}
}

// Judge obtains a structured verdict for a blinded response pair from an
// evaluator model and reverses the blinding before anything is stored. It is
// stateless and safe for concurrent use.
type Judge struct {
	client   ports.LLMClient
	config   JudgeConfig
	validate *validator.Validate
	prompt   *template.Template
}

// NewJudge creates a Judge bound to an evaluator client. Returns an error if
// the configuration is invalid.
func NewJudge(client ports.LLMClient, config JudgeConfig) (*Judge, error) {
	if client == nil {
		return nil, fmt.Errorf("judge: %w: llm client", domain.ErrEmptyValue)
	}

	v := validator.New()
	if err := v.Struct(config); err != nil {
		return nil, fmt.Errorf("judge: configuration validation failed: %w", err)
	}

	tmpl, err := template.New("judgePrompt").Parse(judgePromptTemplate)
	if err != nil {
		return nil, fmt.Errorf("judge: failed to parse rubric template: %w", err)
	}

	return &Judge{client: client, config: config, validate: v, prompt: tmpl}, nil
}

// Model returns the model identifier of the evaluator client.
func (j *Judge) Model() string { return j.client.GetModel() }

// Judge evaluates the blinded pair against the rubric and returns the
// unblinded judgment. Any evaluator failure or schema violation fails the
// scenario with a JudgmentParseError or the provider error; nothing is
// defaulted.
func (j *Judge) Judge(
	ctx context.Context,
	tc domain.TestCase,
	assignment domain.BlindAssignment,
	pair BlindedPair,
) (domain.Judgment, error) {
	var promptBuf bytes.Buffer
	data := struct {
		TestCaseName string
		Task         string
		Advantages   []string
		ResponseA    string
		ResponseB    string
	}{tc.Name, tc.Task, tc.ExpectedAdvantages, pair.ResponseA, pair.ResponseB}
	if err := j.prompt.Execute(&promptBuf, data); err != nil {
		return domain.Judgment{}, fmt.Errorf("judge: rubric template execution failed for %s: %w", tc.Name, err)
	}

	response, err := j.client.Complete(ctx, promptBuf.String(), map[string]any{
		"temperature": j.config.Temperature,
		"max_tokens":  j.config.MaxTokens,
	})
	if err != nil {
		return domain.Judgment{}, &domain.GenerationError{TestCaseName: tc.Name, Format: "judge", Err: err}
	}

	verdict, err := j.parseVerdict(response)
	if err != nil {
		return domain.Judgment{}, &domain.JudgmentParseError{TestCaseName: tc.Name, Err: err}
	}

	return j.unblind(ctx, tc.Name, assignment, verdict)
}

// parseVerdict decodes the raw evaluator output into the verdict schema.
func (j *Judge) parseVerdict(response string) (judgeVerdict, error) {
	jsonStr := extractJSON(response)
	if jsonStr == "" {
		return judgeVerdict{}, fmt.Errorf("no JSON object found in evaluator response (%d chars)", len(response))
	}

	var verdict judgeVerdict
	if err := json.Unmarshal([]byte(jsonStr), &verdict); err != nil {
		return judgeVerdict{}, fmt.Errorf("malformed verdict JSON: %w", err)
	}
	if err := j.validate.Struct(verdict); err != nil {
		return judgeVerdict{}, fmt.Errorf("verdict failed schema validation: %w", err)
	}
	return verdict, nil
}

// unblind reverses the label assignment and derives the winner from the
// overall scores. The evaluator's categorical winner is only used as a
// consistency check: when it conflicts with the numbers, the numbers win and
// the discrepancy is logged.
func (j *Judge) unblind(
	ctx context.Context,
	testCaseName string,
	assignment domain.BlindAssignment,
	verdict judgeVerdict,
) (domain.Judgment, error) {
	var rawOverall, vibeOverall float64
	var rawCriteria, vibeCriteria map[string]float64

	switch assignment.LabelA {
	case domain.FormatRawText:
		rawOverall, vibeOverall = verdict.ResponseAOverall, verdict.ResponseBOverall
		rawCriteria, vibeCriteria = verdict.ResponseAScores.byName(), verdict.ResponseBScores.byName()
	case domain.FormatVibeXML:
		rawOverall, vibeOverall = verdict.ResponseBOverall, verdict.ResponseAOverall
		rawCriteria, vibeCriteria = verdict.ResponseBScores.byName(), verdict.ResponseAScores.byName()
	default:
		return domain.Judgment{}, fmt.Errorf("%w: label A maps to %q", domain.ErrInvalidAssignment, assignment.LabelA)
	}

	winner := domain.ResolveWinner(rawOverall, vibeOverall)
	if claimed := claimedWinner(verdict.Winner, assignment); claimed != winner {
		clog.FromContext(ctx).With("test_case", testCaseName).
			Warnf("evaluator label %q disagrees with scores (raw_text=%.1f vibexml=%.1f); scores are authoritative",
				verdict.Winner, rawOverall, vibeOverall)
	}

	criteria := make(map[string]domain.CriterionScore, len(domain.RubricCriteria))
	for _, name := range domain.RubricCriteria {
		criteria[name] = domain.CriterionScore{
			RawText: rawCriteria[name],
			VibeXML: vibeCriteria[name],
		}
	}

	return domain.Judgment{
		TestCaseName:   testCaseName,
		Winner:         winner,
		Confidence:     verdict.Confidence,
		RawTextScore:   rawOverall,
		VibeXMLScore:   vibeOverall,
		Reasoning:      verdict.Reasoning,
		MainAdvantages: verdict.MainAdvantages,
		CriteriaScores: criteria,
	}, nil
}

// claimedWinner translates the evaluator's A/B/TIE claim back to a format
// through the assignment, for comparison against the numeric winner.
func claimedWinner(label string, assignment domain.BlindAssignment) domain.Winner {
	switch label {
	case "A":
		return formatToWinner(assignment.LabelA)
	case "B":
		return formatToWinner(assignment.LabelB)
	default:
		return domain.WinnerTie
	}
}

func formatToWinner(kind domain.FormatKind) domain.Winner {
	if kind == domain.FormatVibeXML {
		return domain.WinnerVibeXML
	}
	return domain.WinnerRawText
}
