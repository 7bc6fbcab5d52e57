package dataset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jamesindeed/ai-vibexml-eval/internal/domain"
)

// suiteFile is the YAML document shape for external suites.
type suiteFile struct {
	Cases []domain.TestCase `yaml:"cases"`
}

// LoadSuite reads test cases from a YAML file. Every case is validated;
// duplicate names are rejected since results are keyed by case name.
func LoadSuite(path string) ([]domain.TestCase, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.ConfigurationError{
			Field: "suite",
			Err:   fmt.Errorf("reading suite file: %w", err),
		}
	}
	return ParseSuite(raw)
}

// ParseSuite decodes and validates a YAML suite document.
func ParseSuite(raw []byte) ([]domain.TestCase, error) {
	var suite suiteFile
	if err := yaml.Unmarshal(raw, &suite); err != nil {
		return nil, &domain.ConfigurationError{
			Field: "suite",
			Err:   fmt.Errorf("parsing suite file: %w", err),
		}
	}
	if len(suite.Cases) == 0 {
		return nil, &domain.ConfigurationError{
			Field: "suite",
			Err:   fmt.Errorf("suite contains no test cases"),
		}
	}

	seen := make(map[string]struct{}, len(suite.Cases))
	for i, tc := range suite.Cases {
		if err := tc.Validate(); err != nil {
			return nil, &domain.ConfigurationError{
				Field: "suite",
				Err:   fmt.Errorf("case %d (%s): %w", i, tc.Name, err),
			}
		}
		if _, dup := seen[tc.Name]; dup {
			return nil, &domain.ConfigurationError{
				Field: "suite",
				Err:   fmt.Errorf("duplicate test case name %q", tc.Name),
			}
		}
		seen[tc.Name] = struct{}{}
	}

	return suite.Cases, nil
}
