package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBlindAssignment_SeededDeterminism(t *testing.T) {
	seed := int64(42)

	first := NewBlindAssignment("nested_conditional_logic", &seed)
	second := NewBlindAssignment("nested_conditional_logic", &seed)

	assert.Equal(t, first, second, "same seed and case name must produce identical assignments")
	assert.True(t, first.Seeded)
	require.NoError(t, first.Validate())
}

func TestNewBlindAssignment_SeedChangesMapping(t *testing.T) {
	seedA := int64(42)
	seedB := int64(43)

	// Different seeds may or may not flip a single case, but across a batch
	// of cases at least one mapping must differ, otherwise the seed is not
	// actually feeding the draw.
	names := []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta"}
	differs := false
	for _, name := range names {
		a := NewBlindAssignment(name, &seedA)
		b := NewBlindAssignment(name, &seedB)
		if a.LabelA != b.LabelA {
			differs = true
		}
	}
	assert.True(t, differs, "changing the seed should change at least one assignment")
}

func TestNewBlindAssignment_PerCaseIndependence(t *testing.T) {
	seed := int64(7)

	// With one shared seed, different case names should still produce a mix
	// of mappings rather than all cases landing on the same side.
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	rawFirst := 0
	for _, name := range names {
		a := NewBlindAssignment(name, &seed)
		require.NoError(t, a.Validate())
		if a.LabelA == FormatRawText {
			rawFirst++
		}
	}
	assert.Greater(t, rawFirst, 0, "at least one case should present raw text as A")
	assert.Less(t, rawFirst, len(names), "at least one case should present vibexml as A")
}

func TestNewBlindAssignment_Unseeded(t *testing.T) {
	a := NewBlindAssignment("weather_report", nil)

	assert.False(t, a.Seeded)
	require.NoError(t, a.Validate())
	// The draw is recorded so unseeded runs stay auditable.
	assert.Equal(t, a.Draw%2 == 0, a.LabelA == FormatRawText)
}

func TestBlindAssignment_FormatAndLabel(t *testing.T) {
	seed := int64(1)
	a := NewBlindAssignment("case", &seed)

	formatA, err := a.Format(LabelA)
	require.NoError(t, err)
	formatB, err := a.Format(LabelB)
	require.NoError(t, err)
	assert.NotEqual(t, formatA, formatB)

	labelRaw, err := a.Label(FormatRawText)
	require.NoError(t, err)
	labelVibe, err := a.Label(FormatVibeXML)
	require.NoError(t, err)
	assert.NotEqual(t, labelRaw, labelVibe)

	// Round trip: label -> format -> label.
	back, err := a.Label(formatA)
	require.NoError(t, err)
	assert.Equal(t, LabelA, back)

	_, err = a.Format(Label("C"))
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestBlindAssignment_Validate(t *testing.T) {
	tests := []struct {
		name       string
		assignment BlindAssignment
		wantErr    error
	}{
		{
			name:       "valid",
			assignment: BlindAssignment{TestCaseName: "c", LabelA: FormatRawText, LabelB: FormatVibeXML},
		},
		{
			name:       "both labels same format",
			assignment: BlindAssignment{TestCaseName: "c", LabelA: FormatVibeXML, LabelB: FormatVibeXML},
			wantErr:    ErrInvalidAssignment,
		},
		{
			name:       "unknown format",
			assignment: BlindAssignment{TestCaseName: "c", LabelA: FormatKind("markdown"), LabelB: FormatVibeXML},
			wantErr:    ErrInvalidAssignment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.assignment.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
