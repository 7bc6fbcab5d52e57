package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamesindeed/ai-vibexml-eval/internal/domain"
)

func TestBuiltin(t *testing.T) {
	cases := Builtin()
	require.Len(t, cases, 10)

	seen := make(map[string]struct{}, len(cases))
	perCategory := make(map[domain.Category]int)
	for _, tc := range cases {
		assert.NoError(t, tc.Validate(), "case %s", tc.Name)
		_, dup := seen[tc.Name]
		assert.False(t, dup, "duplicate case name %s", tc.Name)
		seen[tc.Name] = struct{}{}
		perCategory[tc.Category]++
	}

	for _, category := range Categories() {
		assert.Positive(t, perCategory[category], "no cases in category %s", category)
	}
}

func TestBuiltin_ReturnsFreshSlice(t *testing.T) {
	first := Builtin()
	first[0].Name = "mutated"
	assert.NotEqual(t, "mutated", Builtin()[0].Name)
}

func TestByCategory(t *testing.T) {
	cases := Builtin()

	creative := ByCategory(cases, domain.CategoryCreative)
	require.NotEmpty(t, creative)
	for _, tc := range creative {
		assert.Equal(t, domain.CategoryCreative, tc.Category)
	}

	assert.Empty(t, ByCategory(cases, domain.Category("nonexistent")))
}

func TestSelect(t *testing.T) {
	cases := Builtin()

	selected, err := Select(cases, []string{"simple_calculation", "workflow_dependencies"})
	require.NoError(t, err)
	require.Len(t, selected, 2)
	assert.Equal(t, "simple_calculation", selected[0].Name, "requested order is preserved")
	assert.Equal(t, "workflow_dependencies", selected[1].Name)
}

func TestSelect_UnknownName(t *testing.T) {
	_, err := Select(Builtin(), []string{"no_such_case"})
	require.Error(t, err)

	var cfgErr *domain.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "cases", cfgErr.Field)
	assert.Contains(t, err.Error(), "no_such_case")
}

func TestLimit(t *testing.T) {
	cases := Builtin()

	assert.Len(t, Limit(cases, 3), 3)
	assert.Len(t, Limit(cases, 0), len(cases))
	assert.Len(t, Limit(cases, -1), len(cases))
	assert.Len(t, Limit(cases, 100), len(cases))
}
