package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func judgmentFixture(name string, raw, vibe, confidence float64) Judgment {
	criteria := make(map[string]CriterionScore, len(RubricCriteria))
	for _, c := range RubricCriteria {
		criteria[c] = CriterionScore{RawText: raw, VibeXML: vibe}
	}
	return Judgment{
		TestCaseName:   name,
		Winner:         ResolveWinner(raw, vibe),
		Confidence:     confidence,
		RawTextScore:   raw,
		VibeXMLScore:   vibe,
		Reasoning:      "fixture reasoning",
		CriteriaScores: criteria,
	}
}

func TestAnalyze_Empty(t *testing.T) {
	a := Analyze(nil, nil)

	assert.Equal(t, 0, a.Summary.TotalTests)
	assert.Zero(t, a.Summary.VibeXMLWinRate)
	assert.Zero(t, a.Summary.RawTextWinRate)
	assert.Zero(t, a.AverageScores.VibeXMLAdvantage)
	assert.Empty(t, a.DetailedResults)
}

func TestAnalyze_SingleJudgment(t *testing.T) {
	judgments := []Judgment{judgmentFixture("solo", 70, 90, 85)}

	a := Analyze(judgments, nil)

	assert.Equal(t, 1, a.Summary.TotalTests)
	assert.Equal(t, 1, a.Summary.VibeXMLWins)
	assert.Equal(t, 0, a.Summary.RawTextWins)
	assert.InDelta(t, 100.0, a.Summary.VibeXMLWinRate, 1e-9)
	assert.InDelta(t, 70.0, a.AverageScores.RawText, 1e-9)
	assert.InDelta(t, 90.0, a.AverageScores.VibeXML, 1e-9)
	assert.InDelta(t, 20.0, a.AverageScores.VibeXMLAdvantage, 1e-9)
	assert.InDelta(t, 85.0, a.AverageScores.AverageConfidence, 1e-9)

	require.Len(t, a.DetailedResults, 1)
	assert.Equal(t, "solo", a.DetailedResults[0].TestCase)
	assert.InDelta(t, 20.0, a.DetailedResults[0].ScoreDifference, 1e-9)
}

func TestAnalyze_MixedOutcomes(t *testing.T) {
	judgments := []Judgment{
		judgmentFixture("one", 70, 90, 80),   // vibexml win
		judgmentFixture("two", 85, 75, 70),   // raw text win
		judgmentFixture("three", 80, 80, 60), // tie
		judgmentFixture("four", 60, 100, 90), // vibexml win
	}

	a := Analyze(judgments, nil)

	assert.Equal(t, 4, a.Summary.TotalTests)
	assert.Equal(t, 2, a.Summary.VibeXMLWins)
	assert.Equal(t, 1, a.Summary.RawTextWins)
	assert.Equal(t, 1, a.Summary.Ties)
	assert.InDelta(t, 50.0, a.Summary.VibeXMLWinRate, 1e-9)
	assert.InDelta(t, 25.0, a.Summary.RawTextWinRate, 1e-9)

	// (90+75+80+100)/4 - (70+85+80+60)/4 = 86.25 - 73.75
	assert.InDelta(t, 12.5, a.AverageScores.VibeXMLAdvantage, 1e-9)

	require.Contains(t, a.CriteriaAnalysis, CriterionAccuracyCompleteness)
	c := a.CriteriaAnalysis[CriterionAccuracyCompleteness]
	assert.InDelta(t, 73.75, c.RawTextAvg, 1e-9)
	assert.InDelta(t, 86.25, c.VibeXMLAvg, 1e-9)
	assert.InDelta(t, 12.5, c.VibeXMLAdvantage, 1e-9)
}

func TestAnalyze_CategoryBreakdown(t *testing.T) {
	cases := []TestCase{
		{Name: "structured_one", Category: CategoryStructuredAdvantage},
		{Name: "structured_two", Category: CategoryStructuredAdvantage},
		{Name: "control", Category: CategoryNeutral},
	}
	judgments := []Judgment{
		judgmentFixture("structured_one", 70, 90, 85),
		judgmentFixture("structured_two", 75, 85, 80),
		judgmentFixture("control", 80, 80, 70),
	}

	a := Analyze(judgments, cases)

	require.Contains(t, a.CategoryAnalysis, string(CategoryStructuredAdvantage))
	sa := a.CategoryAnalysis[string(CategoryStructuredAdvantage)]
	assert.Equal(t, 2, sa.TotalTests)
	assert.Equal(t, 2, sa.VibeXMLWins)
	assert.InDelta(t, 100.0, sa.VibeXMLWinRate, 1e-9)
	assert.InDelta(t, 15.0, sa.VibeXMLAdvantage, 1e-9)
	assert.ElementsMatch(t, []string{"structured_one", "structured_two"}, sa.TestCases)

	require.Contains(t, a.CategoryAnalysis, string(CategoryNeutral))
	neutral := a.CategoryAnalysis[string(CategoryNeutral)]
	assert.Equal(t, 1, neutral.Ties)
}

func TestAnalyze_NoCategoryWithoutCases(t *testing.T) {
	a := Analyze([]Judgment{judgmentFixture("solo", 70, 90, 85)}, nil)
	assert.Empty(t, a.CategoryAnalysis)
}

func TestAnalyze_UnknownCaseCategory(t *testing.T) {
	cases := []TestCase{{Name: "known", Category: CategoryNeutral}}
	judgments := []Judgment{
		judgmentFixture("known", 80, 80, 70),
		judgmentFixture("mystery", 70, 90, 85),
	}

	a := Analyze(judgments, cases)
	require.Contains(t, a.CategoryAnalysis, "unknown")
	assert.Equal(t, 1, a.CategoryAnalysis["unknown"].TotalTests)
}
