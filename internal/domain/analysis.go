package domain

// Summary holds the categorical outcomes of a run.
type Summary struct {
	TotalTests     int     `json:"total_tests"`
	VibeXMLWins    int     `json:"vibexml_wins"`
	RawTextWins    int     `json:"raw_text_wins"`
	Ties           int     `json:"ties"`
	VibeXMLWinRate float64 `json:"vibexml_win_rate"`
	RawTextWinRate float64 `json:"raw_text_win_rate"`
}

// AverageScores holds the mean overall scores across all judgments.
type AverageScores struct {
	RawText           float64 `json:"raw_text"`
	VibeXML           float64 `json:"vibexml"`
	VibeXMLAdvantage  float64 `json:"vibexml_advantage"`
	AverageConfidence float64 `json:"average_confidence"`
}

// CriterionAdvantage holds the mean sub-scores for one rubric criterion.
type CriterionAdvantage struct {
	RawTextAvg       float64 `json:"raw_text_avg"`
	VibeXMLAvg       float64 `json:"vibexml_avg"`
	VibeXMLAdvantage float64 `json:"vibexml_advantage"`
}

// CategoryAdvantage aggregates outcomes for one test-case category.
type CategoryAdvantage struct {
	TotalTests       int      `json:"total_tests"`
	VibeXMLWins      int      `json:"vibexml_wins"`
	RawTextWins      int      `json:"raw_text_wins"`
	Ties             int      `json:"ties"`
	VibeXMLWinRate   float64  `json:"vibexml_win_rate"`
	AvgRawTextScore  float64  `json:"avg_raw_text_score"`
	AvgVibeXMLScore  float64  `json:"avg_vibexml_score"`
	VibeXMLAdvantage float64  `json:"vibexml_advantage"`
	TestCases        []string `json:"test_cases"`
}

// DetailedResult is the per-case line item included in the analysis.
type DetailedResult struct {
	TestCase        string  `json:"test_case"`
	Winner          Winner  `json:"winner"`
	Confidence      float64 `json:"confidence"`
	ScoreDifference float64 `json:"score_difference"`
	Reasoning       string  `json:"reasoning"`
}

// Analysis is derived state: a pure function of the judgment list,
// recomputable at any time and never independently persisted.
type Analysis struct {
	Summary          Summary                       `json:"summary"`
	AverageScores    AverageScores                 `json:"average_scores"`
	CriteriaAnalysis map[string]CriterionAdvantage `json:"criteria_analysis"`
	CategoryAnalysis map[string]CategoryAdvantage  `json:"category_analysis,omitempty"`
	DetailedResults  []DetailedResult              `json:"detailed_results"`
}

// Analyze reduces an ordered judgment list to comparative statistics. An
// empty list yields zero counts and zero rates rather than an error, and a
// single judgment is a valid sample. Category breakdown is included only
// when the caller supplies the test cases the judgments came from.
func Analyze(judgments []Judgment, cases []TestCase) Analysis {
	a := Analysis{
		CriteriaAnalysis: make(map[string]CriterionAdvantage),
		DetailedResults:  make([]DetailedResult, 0, len(judgments)),
	}

	total := len(judgments)
	a.Summary.TotalTests = total
	if total == 0 {
		return a
	}

	var sumRaw, sumVibe, sumConf float64
	for _, j := range judgments {
		switch j.Winner {
		case WinnerVibeXML:
			a.Summary.VibeXMLWins++
		case WinnerRawText:
			a.Summary.RawTextWins++
		case WinnerTie:
			a.Summary.Ties++
		}
		sumRaw += j.RawTextScore
		sumVibe += j.VibeXMLScore
		sumConf += j.Confidence

		a.DetailedResults = append(a.DetailedResults, DetailedResult{
			TestCase:        j.TestCaseName,
			Winner:          j.Winner,
			Confidence:      j.Confidence,
			ScoreDifference: j.ScoreDifference(),
			Reasoning:       j.Reasoning,
		})
	}

	n := float64(total)
	a.Summary.VibeXMLWinRate = float64(a.Summary.VibeXMLWins) / n * 100
	a.Summary.RawTextWinRate = float64(a.Summary.RawTextWins) / n * 100
	a.AverageScores = AverageScores{
		RawText:           sumRaw / n,
		VibeXML:           sumVibe / n,
		VibeXMLAdvantage:  (sumVibe - sumRaw) / n,
		AverageConfidence: sumConf / n,
	}

	a.CriteriaAnalysis = analyzeCriteria(judgments)
	if len(cases) > 0 {
		a.CategoryAnalysis = analyzeCategories(judgments, cases)
	}
	return a
}

// analyzeCriteria computes mean per-criterion sub-scores across judgments.
// Criteria missing from some judgments are averaged over the judgments that
// carry them.
func analyzeCriteria(judgments []Judgment) map[string]CriterionAdvantage {
	type acc struct {
		raw, vibe float64
		n         int
	}
	accs := make(map[string]*acc)
	for _, j := range judgments {
		for name, cs := range j.CriteriaScores {
			c, ok := accs[name]
			if !ok {
				c = &acc{}
				accs[name] = c
			}
			c.raw += cs.RawText
			c.vibe += cs.VibeXML
			c.n++
		}
	}

	out := make(map[string]CriterionAdvantage, len(accs))
	for name, c := range accs {
		n := float64(c.n)
		out[name] = CriterionAdvantage{
			RawTextAvg:       c.raw / n,
			VibeXMLAvg:       c.vibe / n,
			VibeXMLAdvantage: (c.vibe - c.raw) / n,
		}
	}
	return out
}

func analyzeCategories(judgments []Judgment, cases []TestCase) map[string]CategoryAdvantage {
	categories := make(map[string]Category, len(cases))
	for _, tc := range cases {
		categories[tc.Name] = tc.Category
	}

	out := make(map[string]CategoryAdvantage)
	for _, j := range judgments {
		category, ok := categories[j.TestCaseName]
		if !ok || category == "" {
			category = "unknown"
		}
		ca := out[string(category)]
		ca.TotalTests++
		switch j.Winner {
		case WinnerVibeXML:
			ca.VibeXMLWins++
		case WinnerRawText:
			ca.RawTextWins++
		case WinnerTie:
			ca.Ties++
		}
		ca.AvgRawTextScore += j.RawTextScore
		ca.AvgVibeXMLScore += j.VibeXMLScore
		ca.TestCases = append(ca.TestCases, j.TestCaseName)
		out[string(category)] = ca
	}

	for name, ca := range out {
		n := float64(ca.TotalTests)
		ca.VibeXMLWinRate = float64(ca.VibeXMLWins) / n * 100
		ca.AvgRawTextScore /= n
		ca.AvgVibeXMLScore /= n
		ca.VibeXMLAdvantage = ca.AvgVibeXMLScore - ca.AvgRawTextScore
		out[name] = ca
	}
	return out
}
