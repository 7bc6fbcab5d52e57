// Package cli defines the vibexml-eval command tree.
package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vibexml-eval",
	Short: "Blind A/B evaluation of VibeXML versus raw text prompts",
	Long: `vibexml-eval measures whether hierarchical VibeXML formatting improves
LLM response quality over flat raw-text prompts. Each test case is rendered
in both formats, two responses are generated, blinded behind neutral A/B
labels, and scored by an LLM judge against a fixed rubric. Results are
unblinded, aggregated, and written as a single JSON document.`,
	SilenceUsage: true,
}

// ExecuteContext runs the root command with the given context, which
// carries the logger and cancellation signal.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
