// Package dataset provides the curated built-in evaluation suite and a YAML
// loader for external suites.
package dataset

import (
	"fmt"

	"github.com/jamesindeed/ai-vibexml-eval/internal/domain"
)

// Categories lists the categories present in the built-in suite, in report
// order.
func Categories() []domain.Category {
	return []domain.Category{
		domain.CategoryStructuredAdvantage,
		domain.CategoryNeutral,
		domain.CategoryComputational,
		domain.CategoryCreative,
		domain.CategoryAdversarial,
	}
}

// ByCategory filters cases to a single category.
func ByCategory(cases []domain.TestCase, category domain.Category) []domain.TestCase {
	var out []domain.TestCase
	for _, tc := range cases {
		if tc.Category == category {
			out = append(out, tc)
		}
	}
	return out
}

// Select returns the named cases in the order requested. Unknown names are a
// configuration error so a typo fails the run before any generation happens.
func Select(cases []domain.TestCase, names []string) ([]domain.TestCase, error) {
	byName := make(map[string]domain.TestCase, len(cases))
	for _, tc := range cases {
		byName[tc.Name] = tc
	}

	selected := make([]domain.TestCase, 0, len(names))
	for _, name := range names {
		tc, ok := byName[name]
		if !ok {
			return nil, &domain.ConfigurationError{
				Field: "cases",
				Err:   fmt.Errorf("unknown test case %q", name),
			}
		}
		selected = append(selected, tc)
	}
	return selected, nil
}

// Limit truncates cases to at most n. Non-positive n means no limit.
func Limit(cases []domain.TestCase, n int) []domain.TestCase {
	if n <= 0 || n >= len(cases) {
		return cases
	}
	return cases[:n]
}
