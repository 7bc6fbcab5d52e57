package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jamesindeed/ai-vibexml-eval/internal/dataset"
)

var listCasesCmd = &cobra.Command{
	Use:   "list-cases",
	Short: "List the built-in test cases",
	RunE: func(cmd *cobra.Command, args []string) error {
		cases := dataset.Builtin()

		heading := color.New(color.Bold).SprintFunc()
		category := color.New(color.FgCyan).SprintFunc()

		fmt.Printf("%s\n\n", heading("Available Test Cases:"))
		for i, tc := range cases {
			fmt.Printf("%d. %s [%s]\n", i+1, heading(tc.Name), category(tc.Category))
			fmt.Printf("   %s\n", tc.Description)
			fmt.Printf("   Why structure helps: %s\n", tc.WhyStructureHelps)
			fmt.Printf("   Expected advantages: %d criteria\n\n", len(tc.ExpectedAdvantages))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCasesCmd)
}
