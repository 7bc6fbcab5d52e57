package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamesindeed/ai-vibexml-eval/internal/domain"
)

func responsePairFixture() domain.ResponsePair {
	return domain.ResponsePair{
		TestCaseName:    "workflow_dependencies",
		RawTextResponse: "  raw text answer \n",
		VibeXMLResponse: "\n vibexml answer  ",
	}
}

func TestBlinder_AssignSeeded(t *testing.T) {
	seed := int64(42)
	blinder := NewBlinder(&seed)

	assignment, blinded, err := blinder.Assign(responsePairFixture())
	require.NoError(t, err)
	require.NoError(t, assignment.Validate())
	assert.True(t, assignment.Seeded)

	// The blinded responses must sit behind the labels the assignment says
	// they do, trimmed of surrounding whitespace.
	wantByFormat := map[domain.FormatKind]string{
		domain.FormatRawText: "raw text answer",
		domain.FormatVibeXML: "vibexml answer",
	}
	assert.Equal(t, wantByFormat[assignment.LabelA], blinded.ResponseA)
	assert.Equal(t, wantByFormat[assignment.LabelB], blinded.ResponseB)

	// Re-running with the same seed reproduces the assignment exactly.
	again, blindedAgain, err := NewBlinder(&seed).Assign(responsePairFixture())
	require.NoError(t, err)
	assert.Equal(t, assignment, again)
	assert.Equal(t, blinded, blindedAgain)
}

func TestBlinder_AssignUnseeded(t *testing.T) {
	blinder := NewBlinder(nil)
	assert.Nil(t, blinder.Seed())

	assignment, _, err := blinder.Assign(responsePairFixture())
	require.NoError(t, err)
	assert.False(t, assignment.Seeded)
	require.NoError(t, assignment.Validate())
}
