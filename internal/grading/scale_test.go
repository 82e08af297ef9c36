package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/draft-board/internal/config"
)

func linearSource() config.SourceConfig {
	return config.SourceConfig{Name: "pff", NativeMin: 60, NativeMax: 100}
}

func TestConvert_LinearMapping(t *testing.T) {
	src := linearSource()

	got, clamped := Convert(92, src)
	assert.False(t, clamped)
	assert.InDelta(t, 9.0, got, 0.0001, "92 on a 60-100 scale maps to 9.0")

	got, _ = Convert(80, src)
	assert.InDelta(t, 7.5, got, 0.0001)
}

func TestConvert_BoundariesAreExact(t *testing.T) {
	src := linearSource()

	lo, clamped := Convert(60, src)
	assert.False(t, clamped)
	assert.Equal(t, 5.0, lo)

	hi, clamped := Convert(100, src)
	assert.False(t, clamped)
	assert.Equal(t, 10.0, hi)
}

func TestConvert_OutOfRangeClamps(t *testing.T) {
	src := linearSource()

	got, clamped := Convert(40, src)
	assert.True(t, clamped)
	assert.Equal(t, 5.0, got)

	got, clamped = Convert(110, src)
	assert.True(t, clamped)
	assert.Equal(t, 10.0, got)
}

func TestConvert_RangeProperty(t *testing.T) {
	src := linearSource()
	for native := src.NativeMin; native <= src.NativeMax; native += 0.5 {
		got, clamped := Convert(native, src)
		assert.False(t, clamped)
		assert.GreaterOrEqual(t, got, ScaleMin)
		assert.LessOrEqual(t, got, ScaleMax)
	}
}

func TestConvert_PiecewiseLinear(t *testing.T) {
	src := config.SourceConfig{
		Name:      "espn",
		NativeMin: 0,
		NativeMax: 100,
		Scale: []config.ScaleBreakpoint{
			{Native: 0, Normalized: 5.0},
			{Native: 50, Normalized: 6.0},
			{Native: 100, Normalized: 10.0},
		},
	}

	got, _ := Convert(0, src)
	assert.Equal(t, 5.0, got)

	got, _ = Convert(50, src)
	assert.Equal(t, 6.0, got)

	got, _ = Convert(75, src)
	assert.InDelta(t, 8.0, got, 0.0001, "midpoint of the upper segment")

	got, _ = Convert(100, src)
	assert.Equal(t, 10.0, got)
}

func TestConvert_Deterministic(t *testing.T) {
	src := linearSource()
	first, _ := Convert(87.5, src)
	for i := 0; i < 3; i++ {
		again, _ := Convert(87.5, src)
		assert.Equal(t, first, again)
	}
}
