package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveWinner(t *testing.T) {
	tests := []struct {
		name    string
		rawText float64
		vibexml float64
		want    Winner
	}{
		{"vibexml higher", 70, 90, WinnerVibeXML},
		{"raw text higher", 88, 72.5, WinnerRawText},
		{"exactly equal", 80, 80, WinnerTie},
		{"within tolerance", 80, 80 + ScoreTieTolerance/2, WinnerTie},
		{"just outside tolerance", 80, 80.001, WinnerVibeXML},
		{"both zero", 0, 0, WinnerTie},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveWinner(tt.rawText, tt.vibexml))
		})
	}
}

func TestJudgment_ScoreDifference(t *testing.T) {
	j := Judgment{RawTextScore: 70, VibeXMLScore: 90}
	assert.InDelta(t, 20, j.ScoreDifference(), 1e-9)

	j = Judgment{RawTextScore: 90, VibeXMLScore: 70}
	assert.InDelta(t, -20, j.ScoreDifference(), 1e-9)
}

func TestJudgment_Consistent(t *testing.T) {
	consistent := Judgment{Winner: WinnerVibeXML, RawTextScore: 70, VibeXMLScore: 90}
	assert.True(t, consistent.Consistent())

	inconsistent := Judgment{Winner: WinnerRawText, RawTextScore: 70, VibeXMLScore: 90}
	assert.False(t, inconsistent.Consistent())
}
