package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionConstants(t *testing.T) {
	assert.Len(t, Positions, 12)
	for _, pos := range Positions {
		assert.NotEmpty(t, pos)
		assert.True(t, IsValidPosition(pos))
	}
}

func TestIsValidPosition_Rejects(t *testing.T) {
	for _, pos := range []string{"", "qb", "OT", "CB", "SAF", "unknown"} {
		assert.False(t, IsValidPosition(pos), "position %q should be invalid", pos)
	}
}

func TestProspectType(t *testing.T) {
	p := Prospect{
		Name:     "Patrick Mahomes",
		Position: PositionQB,
		College:  "Texas Tech",
		Status:   StatusActive,
	}

	assert.Equal(t, "Patrick Mahomes", p.Name)
	assert.Equal(t, "QB", p.Position)
	assert.Nil(t, p.HeightFt)
	assert.Nil(t, p.Grade)
}

func TestGradeRecordType(t *testing.T) {
	norm := 9.0
	g := GradeRecord{
		Source:          "pff",
		RawGrade:        92,
		NormalizedGrade: &norm,
		SourcePosition:  "QB",
		Confidence:      100,
	}

	assert.Equal(t, 92.0, g.RawGrade)
	assert.Equal(t, 9.0, *g.NormalizedGrade)
	assert.Equal(t, 100, g.Confidence)
}
