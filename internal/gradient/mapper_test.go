package gradient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calibgrid/pkg/contracts/domain"
)

func TestByName(t *testing.T) {
	for _, name := range domain.SchemeNames() {
		t.Run(string(name), func(t *testing.T) {
			s, err := ByName(name)
			require.NoError(t, err)
			assert.Equal(t, name, s.Name)
			require.GreaterOrEqual(t, len(s.Stops), 2)
			assert.Equal(t, 0.0, s.Stops[0].Position)
			assert.Equal(t, 1.0, s.Stops[len(s.Stops)-1].Position)
		})
	}

	_, err := ByName(domain.SchemeName("LAVA"))
	assert.Error(t, err)
}

func TestColorForEndpoints(t *testing.T) {
	for _, name := range domain.SchemeNames() {
		s, err := ByName(name)
		require.NoError(t, err)

		assert.Equal(t, s.Stops[0].Color, ColorFor(0, s), "scheme %s at 0", name)
		assert.Equal(t, s.Stops[len(s.Stops)-1].Color, ColorFor(1, s), "scheme %s at 1", name)

		// Out-of-range values clamp to the endpoints.
		assert.Equal(t, ColorFor(0, s), ColorFor(-0.5, s))
		assert.Equal(t, ColorFor(1, s), ColorFor(1.5, s))
	}
}

func TestColorForChannelsInRange(t *testing.T) {
	const steps = 257
	for _, name := range domain.SchemeNames() {
		s, err := ByName(name)
		require.NoError(t, err)
		for i := 0; i < steps; i++ {
			v := float64(i) / float64(steps-1)
			c := ColorFor(v, s)
			for _, ch := range []int{c.R, c.G, c.B} {
				require.GreaterOrEqual(t, ch, 0, "scheme %s at %v", name, v)
				require.LessOrEqual(t, ch, 255, "scheme %s at %v", name, v)
			}
		}
	}
}

func TestColorForInterpolation(t *testing.T) {
	s, err := ByName(domain.SchemeGrayscale)
	require.NoError(t, err)

	// Halfway between white and black.
	assert.Equal(t, domain.RGB{R: 128, G: 128, B: 128}, ColorFor(0.5, s))

	// Landing exactly on an interior stop returns that stop's color.
	th, err := ByName(domain.SchemeThermal)
	require.NoError(t, err)
	assert.Equal(t, domain.RGB{G: 255}, ColorFor(0.5, th))
}

func TestCellColorsTextContrast(t *testing.T) {
	const steps = 101
	for _, name := range domain.SchemeNames() {
		s, err := ByName(name)
		require.NoError(t, err)
		for i := 0; i < steps; i++ {
			v := float64(i) / float64(steps-1)
			cc := CellColors(v, 0, 1, s)
			if cc.Background.Luma() > 128 {
				require.Equal(t, "#000000", cc.Text.Hex())
			} else {
				require.Equal(t, "#ffffff", cc.Text.Hex())
			}
		}
	}
}

func TestCellColorsFlatDataset(t *testing.T) {
	s, err := ByName(domain.SchemeThermal)
	require.NoError(t, err)

	// max == min renders the scheme midpoint, not a division by zero.
	cc := CellColors(5, 5, 5, s)
	assert.Equal(t, ColorFor(0.5, s), cc.Background)

	grid := domain.Grid{{"5", "5"}, {"5", "5"}}
	vr := Range(grid, domain.Mask{})
	require.True(t, vr.HasValues)
	assert.Equal(t, cc, CellColors(5, vr.Min, vr.Max, s))
}

func TestRange(t *testing.T) {
	tests := []struct {
		name string
		grid domain.Grid
		mask domain.Mask
		want ValueRange
	}{
		{
			name: "labels ignored",
			grid: domain.Grid{{"10"}, {"20"}, {"label"}},
			want: ValueRange{Min: 10, Max: 20, HasValues: true},
		},
		{
			name: "no numeric cells",
			grid: domain.Grid{{"a", "b"}, {"", "c"}},
			want: ValueRange{Min: 0, Max: 1, HasValues: false},
		},
		{
			name: "empty grid",
			grid: domain.Grid{},
			want: ValueRange{Min: 0, Max: 1, HasValues: false},
		},
		{
			name: "single value",
			grid: domain.Grid{{"7.5"}},
			want: ValueRange{Min: 7.5, Max: 7.5, HasValues: true},
		},
		{
			name: "negative values",
			grid: domain.Grid{{"-4", "3"}},
			want: ValueRange{Min: -4, Max: 3, HasValues: true},
		},
		{
			name: "heading row and column skipped",
			grid: domain.Grid{
				{"RPM", "1000", "2000"},
				{"500", "99", "1"},
				{"900", "2", "3"},
			},
			mask: domain.Mask{SkipFirstRow: true, SkipFirstCol: true},
			want: ValueRange{Min: 1, Max: 99, HasValues: true},
		},
		{
			name: "ragged rows tolerated",
			grid: domain.Grid{{"1", "2", "3"}, {"4"}},
			want: ValueRange{Min: 1, Max: 4, HasValues: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Range(tt.grid, tt.mask))
		})
	}
}
