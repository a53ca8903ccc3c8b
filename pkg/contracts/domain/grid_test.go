package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridBounds(t *testing.T) {
	g := Grid{{"a", "b", "c"}, {"d"}}

	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())

	assert.True(t, g.InBounds(0, 2))
	assert.False(t, g.InBounds(1, 1)) // ragged row
	assert.False(t, g.InBounds(-1, 0))
	assert.False(t, g.InBounds(2, 0))

	v, ok := g.Cell(1, 0)
	require.True(t, ok)
	assert.Equal(t, "d", v)
	_, ok = g.Cell(1, 2)
	assert.False(t, ok)
}

func TestGridClone(t *testing.T) {
	g := Grid{{"1", "2"}, {"3"}}
	c := g.Clone()

	c[0][0] = "changed"
	assert.Equal(t, "1", g[0][0])
	assert.Equal(t, g[1], c[1])

	assert.Nil(t, Grid(nil).Clone())
}

func TestMask(t *testing.T) {
	tests := []struct {
		name      string
		mask      Mask
		row, col  int
		contained bool
	}{
		{"no mask includes origin", Mask{}, 0, 0, true},
		{"skip row excludes row 0", Mask{SkipFirstRow: true}, 0, 5, false},
		{"skip row includes row 1", Mask{SkipFirstRow: true}, 1, 0, true},
		{"skip col excludes col 0", Mask{SkipFirstCol: true}, 5, 0, false},
		{"both exclude corner", Mask{SkipFirstRow: true, SkipFirstCol: true}, 1, 0, false},
		{"both include interior", Mask{SkipFirstRow: true, SkipFirstCol: true}, 1, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.contained, tt.mask.Contains(tt.row, tt.col))
		})
	}
}

func TestRGBHexAndLuma(t *testing.T) {
	assert.Equal(t, "#000000", RGB{}.Hex())
	assert.Equal(t, "#ffffff", RGB{R: 255, G: 255, B: 255}.Hex())
	assert.Equal(t, "#ff8000", RGB{R: 255, G: 128, B: 0}.Hex())

	assert.Equal(t, 0.0, RGB{}.Luma())
	assert.InDelta(t, 255.0, RGB{R: 255, G: 255, B: 255}.Luma(), 1e-9)
	// Green dominates perceived brightness.
	assert.Greater(t, RGB{G: 255}.Luma(), RGB{R: 255}.Luma())
	assert.Greater(t, RGB{R: 255}.Luma(), RGB{B: 255}.Luma())
}

func TestParseSchemeName(t *testing.T) {
	got, err := ParseSchemeName("thermal")
	require.NoError(t, err)
	assert.Equal(t, SchemeThermal, got)

	got, err = ParseSchemeName("  VIRIDIS ")
	require.NoError(t, err)
	assert.Equal(t, SchemeViridis, got)

	_, err = ParseSchemeName("plasma")
	assert.Error(t, err)
}

func TestParseSmoothingMethod(t *testing.T) {
	got, err := ParseSmoothingMethod("Moving_Average")
	require.NoError(t, err)
	assert.Equal(t, MethodMovingAverage, got)

	_, err = ParseSmoothingMethod("median")
	assert.Error(t, err)
}
