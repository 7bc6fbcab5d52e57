package cli

import (
	"fmt"
	"sort"

	"github.com/fatih/color"

	"github.com/jamesindeed/ai-vibexml-eval/internal/domain"
)

// printReport renders the run summary to stdout: overall win counts, average
// scores, per-criterion and per-category breakdowns, skipped cases, and a
// final verdict.
func printReport(run *domain.EvaluationRun) {
	heading := color.New(color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	a := run.Analysis
	s := a.Summary

	fmt.Println()
	fmt.Println(heading("EVALUATION SUMMARY"))
	fmt.Println("============================================================")
	fmt.Printf("Response model: %s\n", run.Metadata.ResponseModel)
	fmt.Printf("Judge model:    %s\n", run.Metadata.JudgeModel)
	fmt.Printf("Cases judged:   %d\n", s.TotalTests)
	fmt.Println()

	fmt.Printf("Wins:  VibeXML %d  |  Raw text %d  |  Ties %d\n",
		s.VibeXMLWins, s.RawTextWins, s.Ties)
	fmt.Printf("Win rate: VibeXML %.1f%%, raw text %.1f%%\n",
		s.VibeXMLWinRate, s.RawTextWinRate)
	fmt.Printf("Average scores: VibeXML %.1f, raw text %.1f (advantage %+.1f)\n",
		a.AverageScores.VibeXML, a.AverageScores.RawText, a.AverageScores.VibeXMLAdvantage)
	fmt.Printf("Average judge confidence: %.1f\n", a.AverageScores.AverageConfidence)

	if len(a.CriteriaAnalysis) > 0 {
		fmt.Println()
		fmt.Println(heading("Per-criterion advantage (VibeXML - raw text):"))
		for _, name := range sortedKeys(a.CriteriaAnalysis) {
			c := a.CriteriaAnalysis[name]
			fmt.Printf("  %-30s %+.1f\n", name, c.VibeXMLAdvantage)
		}
	}

	if len(a.CategoryAnalysis) > 0 {
		fmt.Println()
		fmt.Println(heading("Per-category results:"))
		for _, name := range sortedKeys(a.CategoryAnalysis) {
			c := a.CategoryAnalysis[name]
			fmt.Printf("  %-22s %d/%d VibeXML wins (%.0f%%), advantage %+.1f\n",
				name, c.VibeXMLWins, c.TotalTests, c.VibeXMLWinRate, c.VibeXMLAdvantage)
		}
	}

	if len(run.Skipped) > 0 {
		fmt.Println()
		fmt.Println(yellow(fmt.Sprintf("Skipped cases (%d):", len(run.Skipped))))
		for _, sk := range run.Skipped {
			fmt.Printf("  %s [%s]: %s\n", sk.TestCaseName, sk.Stage, sk.Reason)
		}
	}

	fmt.Println()
	fmt.Println(heading("FINAL VERDICT:"))
	switch {
	case s.TotalTests == 0:
		fmt.Println(yellow("No cases were judged."))
	case float64(s.VibeXMLWins) > float64(s.TotalTests)/2:
		fmt.Println(green(fmt.Sprintf("VibeXML (structured) wins! (%d/%d wins, %+.1f avg score advantage)",
			s.VibeXMLWins, s.TotalTests, a.AverageScores.VibeXMLAdvantage)))
	case float64(s.RawTextWins) > float64(s.TotalTests)/2:
		fmt.Println(red(fmt.Sprintf("Raw text (unstructured) wins! (%d/%d wins)",
			s.RawTextWins, s.TotalTests)))
	default:
		fmt.Println(yellow(fmt.Sprintf("Inconclusive: VibeXML %d, raw text %d, ties %d",
			s.VibeXMLWins, s.RawTextWins, s.Ties)))
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
