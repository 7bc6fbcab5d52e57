package testutils

import "fmt"

// VerdictJSON builds a well-formed judge verdict document for tests. Both
// responses get uniform criterion scores equal to their overall score.
func VerdictJSON(winner string, aScore, bScore, confidence float64) string {
	return fmt.Sprintf(`{
  "winner": %q,
  "confidence": %g,
  "response_a_overall": %g,
  "response_b_overall": %g,
  "response_a_scores": %s,
  "response_b_scores": %s,
  "reasoning": "Response comparison based on accuracy and structure utilization.",
  "main_advantages": ["more precise figures", "clearer organization"]
}`, winner, confidence, aScore, bScore, criteriaJSON(aScore), criteriaJSON(bScore))
}

// FencedVerdictJSON wraps a verdict in a markdown code fence, mimicking
// models that ignore the bare-JSON instruction.
func FencedVerdictJSON(winner string, aScore, bScore, confidence float64) string {
	return "```json\n" + VerdictJSON(winner, aScore, bScore, confidence) + "\n```"
}

func criteriaJSON(score float64) string {
	return fmt.Sprintf(`{
    "accuracy_completeness": %[1]g,
    "structured_data_utilization": %[1]g,
    "precision_specificity": %[1]g,
    "logical_flow_organization": %[1]g,
    "contextual_understanding": %[1]g
  }`, score)
}
