package cli

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jamesindeed/ai-vibexml-eval/infrastructure/llm"
)

var defaultModels = map[string]string{
	"anthropic": llm.AnthropicDefaultModel,
	"openai":    llm.OpenAIDefaultModel,
	"google":    llm.GoogleDefaultModel,
}

var listProvidersCmd = &cobra.Command{
	Use:   "list-providers",
	Short: "List supported providers and their default models",
	RunE: func(cmd *cobra.Command, args []string) error {
		providers := llm.Providers()
		sort.Strings(providers)

		heading := color.New(color.Bold).SprintFunc()
		fmt.Printf("%s\n\n", heading("Supported Providers:"))
		for _, p := range providers {
			fmt.Printf("  %-12s default model: %s\n", p, defaultModels[p])
		}
		fmt.Println()
		fmt.Println("For research-grade evaluation, use different model families for")
		fmt.Println("generation and judging to reduce self-preference bias, e.g.:")
		fmt.Println("  vibexml-eval run --provider anthropic --judge-provider openai")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listProvidersCmd)
}
