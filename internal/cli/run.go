package cli

import (
	"fmt"

	"github.com/chainguard-dev/clog"
	"github.com/spf13/cobra"

	"github.com/jamesindeed/ai-vibexml-eval/infrastructure/middleware"
	"github.com/jamesindeed/ai-vibexml-eval/internal/application"
	"github.com/jamesindeed/ai-vibexml-eval/internal/dataset"
	"github.com/jamesindeed/ai-vibexml-eval/internal/domain"
)

var (
	providerFlag      string
	modelFlag         string
	judgeProviderFlag string
	judgeModelFlag    string
	casesFlag         []string
	singleFlag        string
	categoryFlag      string
	limitFlag         int
	suiteFlag         string
	seedFlag          int64
	outputFlag        string
	concurrencyFlag   int
	noMetricsFlag     bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the evaluation suite",
	Long: `Runs the blind A/B evaluation over the built-in suite or a custom YAML
suite. Scenario failures (generation or judgment parse) skip the affected
case and are listed in the output; configuration problems abort before any
generation.`,
	Example: `  # Full built-in suite with defaults
  vibexml-eval run

  # Different judge model family to reduce self-preference bias
  vibexml-eval run --provider anthropic --judge-provider openai --judge-model gpt-4o

  # Single case, reproducible blinding
  vibexml-eval run --single nested_conditional_logic --seed 42

  # Custom suite, three scenarios in flight
  vibexml-eval run --suite ./my_cases.yaml --concurrency 3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		log := clog.FromContext(ctx)

		cfg, err := application.LoadConfig(ctx)
		if err != nil {
			return err
		}
		applyFlagOverrides(cmd, cfg)

		cases, err := selectCases()
		if err != nil {
			return err
		}

		var runner *application.Runner
		if noMetricsFlag {
			runner, err = application.NewRunner(cfg, nil)
		} else {
			runner, err = application.NewRunner(cfg, middleware.NewPrometheusMetrics())
		}
		if err != nil {
			return err
		}

		run, err := runner.Run(ctx, cases)
		if err != nil {
			return err
		}

		printReport(run)

		path, err := application.SaveResults(run, cfg.OutputDir, outputFlag)
		if err != nil {
			return err
		}
		log.Infof("results saved to %s", path)
		fmt.Printf("\nDetailed results saved to: %s\n", path)
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&providerFlag, "provider", "", "response provider (anthropic, openai, google)")
	runCmd.Flags().StringVar(&modelFlag, "model", "", "response model override")
	runCmd.Flags().StringVar(&judgeProviderFlag, "judge-provider", "", "judge provider (defaults to --provider)")
	runCmd.Flags().StringVar(&judgeModelFlag, "judge-model", "", "judge model override")
	runCmd.Flags().StringSliceVar(&casesFlag, "cases", nil, "comma-separated test case names to run")
	runCmd.Flags().StringVar(&singleFlag, "single", "", "run a single named test case")
	runCmd.Flags().StringVar(&categoryFlag, "category", "", "run only cases in this category")
	runCmd.Flags().IntVar(&limitFlag, "limit", 0, "cap the number of cases (0 = all)")
	runCmd.Flags().StringVar(&suiteFlag, "suite", "", "YAML suite file (defaults to the built-in suite)")
	runCmd.Flags().Int64Var(&seedFlag, "seed", 0, "seed for reproducible blind assignment")
	runCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "results file path (default: auto-generated)")
	runCmd.Flags().IntVar(&concurrencyFlag, "concurrency", 0, "scenarios evaluated in parallel")
	runCmd.Flags().BoolVar(&noMetricsFlag, "no-metrics", false, "disable Prometheus metrics collection")

	rootCmd.AddCommand(runCmd)
}

// applyFlagOverrides layers explicit flags over environment configuration.
func applyFlagOverrides(cmd *cobra.Command, cfg *application.Config) {
	if providerFlag != "" {
		cfg.Provider = providerFlag
	}
	if modelFlag != "" {
		cfg.Model = modelFlag
	}
	if judgeProviderFlag != "" {
		cfg.JudgeProvider = judgeProviderFlag
	}
	if judgeModelFlag != "" {
		cfg.JudgeModel = judgeModelFlag
	}
	if cmd.Flags().Changed("seed") {
		seed := seedFlag
		cfg.Seed = &seed
	}
	if concurrencyFlag > 0 {
		cfg.Concurrency = concurrencyFlag
	}
}

func selectCases() ([]domain.TestCase, error) {
	cases := dataset.Builtin()
	if suiteFlag != "" {
		loaded, err := dataset.LoadSuite(suiteFlag)
		if err != nil {
			return nil, err
		}
		cases = loaded
	}

	if singleFlag != "" {
		return dataset.Select(cases, []string{singleFlag})
	}
	if len(casesFlag) > 0 {
		return dataset.Select(cases, casesFlag)
	}
	if categoryFlag != "" {
		cases = dataset.ByCategory(cases, domain.Category(categoryFlag))
		if len(cases) == 0 {
			return nil, &domain.ConfigurationError{
				Field: "category",
				Err:   fmt.Errorf("no test cases in category %q", categoryFlag),
			}
		}
	}
	return dataset.Limit(cases, limitFlag), nil
}
