package domain

import "math"

// Winner identifies which format a judgment favored.
type Winner string

const (
	WinnerRawText Winner = "raw_text"
	WinnerVibeXML Winner = "vibexml"
	WinnerTie     Winner = "tie"
)

// ScoreTieTolerance is the band within which two overall scores are treated
// as equal. The rubric requests integer-valued scores, so this is effectively
// exact equality while staying safe against float decode noise.
const ScoreTieTolerance = 1e-6

// Rubric criterion names. Every judgment carries a sub-score pair for each.
const (
	CriterionAccuracyCompleteness      = "accuracy_completeness"
	CriterionStructuredDataUtilization = "structured_data_utilization"
	CriterionPrecisionSpecificity      = "precision_specificity"
	CriterionLogicalFlowOrganization   = "logical_flow_organization"
	CriterionContextualUnderstanding   = "contextual_understanding"
)

// RubricCriteria lists the criteria in presentation order.
var RubricCriteria = []string{
	CriterionAccuracyCompleteness,
	CriterionStructuredDataUtilization,
	CriterionPrecisionSpecificity,
	CriterionLogicalFlowOrganization,
	CriterionContextualUnderstanding,
}

// CriterionScore holds one criterion's sub-scores for both formats.
type CriterionScore struct {
	RawText float64 `json:"raw_text"`
	VibeXML float64 `json:"vibexml"`
}

// Judgment is the judge's verdict for one test case after the blind
// assignment has been reversed. Labels A/B never appear here; judge-facing
// labels are ephemeral and never leak into stored results.
type Judgment struct {
	// TestCaseName links the judgment back to its test case.
	TestCaseName string `json:"test_case_name"`

	// Winner is derived from the overall scores, not from the evaluator's
	// categorical claim. See ResolveWinner.
	Winner Winner `json:"winner"`

	// Confidence is the judge's confidence in the verdict, 0-100.
	Confidence float64 `json:"confidence"`

	// RawTextScore is the overall 0-100 score for the raw-text response.
	RawTextScore float64 `json:"raw_text_score"`

	// VibeXMLScore is the overall 0-100 score for the VibeXML response.
	VibeXMLScore float64 `json:"vibexml_score"`

	// Reasoning is the judge's free-text explanation.
	Reasoning string `json:"reasoning"`

	// MainAdvantages lists the top advantages the judge observed in the
	// winning response.
	MainAdvantages []string `json:"main_advantages,omitempty"`

	// CriteriaScores maps criterion name to per-format sub-scores.
	CriteriaScores map[string]CriterionScore `json:"criteria_scores"`
}

// ResolveWinner derives the winner from the two overall scores. Numeric
// scores are authoritative over the evaluator's categorical label: scores
// within ScoreTieTolerance of each other are a tie regardless of what the
// free-text winner field claims.
func ResolveWinner(rawTextScore, vibexmlScore float64) Winner {
	if math.Abs(rawTextScore-vibexmlScore) <= ScoreTieTolerance {
		return WinnerTie
	}
	if vibexmlScore > rawTextScore {
		return WinnerVibeXML
	}
	return WinnerRawText
}

// ScoreDifference returns the VibeXML score minus the raw-text score.
func (j Judgment) ScoreDifference() float64 {
	return j.VibeXMLScore - j.RawTextScore
}

// Consistent reports whether the recorded winner agrees with the overall
// scores. Judgments constructed through ResolveWinner always satisfy this.
func (j Judgment) Consistent() bool {
	return j.Winner == ResolveWinner(j.RawTextScore, j.VibeXMLScore)
}
