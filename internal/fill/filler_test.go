package fill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calibgrid/pkg/contracts/domain"
)

func TestFillSingleRow(t *testing.T) {
	f := NewFiller(nil)
	in := domain.Grid{{"10", "", "30"}}

	out := f.Fill(in, domain.Mask{})

	// (10/1 + 30/1) / (1 + 1) = 20, one decimal place minimum.
	assert.Equal(t, domain.Grid{{"10", "20.0", "30"}}, out)
	assert.Equal(t, domain.Grid{{"10", "", "30"}}, in)
}

func TestFillInverseDistanceWeighting(t *testing.T) {
	f := NewFiller(nil)
	in := domain.Grid{{"10", "", "", "40"}}

	out := f.Fill(in, domain.Mask{})

	// Cell 1: 10 at distance 1, 40 at distance 2 -> (10 + 20)/(1 + 0.5) = 20.
	assert.Equal(t, "20.0", out[0][1])
	// Cell 2 mirrors it: (10*0.5 + 40)/(0.5 + 1) = 30.
	assert.Equal(t, "30.0", out[0][2])
}

func TestFillUsesAllFourDirections(t *testing.T) {
	f := NewFiller(nil)
	in := domain.Grid{
		{"x", "2", "x"},
		{"4", "", "6"},
		{"x", "8", "x"},
	}

	out := f.Fill(in, domain.Mask{})

	// All four neighbors at distance 1: (2+4+6+8)/4 = 5.
	assert.Equal(t, "5.0", out[1][1])
}

func TestFillPrecisionFromSources(t *testing.T) {
	f := NewFiller(nil)
	in := domain.Grid{{"10.25", "", "30"}}

	out := f.Fill(in, domain.Mask{})

	// max(decimal places across contributors, 1) = 2.
	assert.Equal(t, "20.12", out[0][1])
}

func TestFillLabelBlocksDirection(t *testing.T) {
	f := NewFiller(nil)

	// The label blocks the leftward search; it is not skipped over.
	in := domain.Grid{{"10", "idle", "", "30"}}
	out := f.Fill(in, domain.Mask{})
	assert.Equal(t, "30.0", out[0][2])

	// A label is non-blank, so it is never overwritten.
	assert.Equal(t, "idle", out[0][1])
}

func TestFillUnreachableStaysBlank(t *testing.T) {
	f := NewFiller(nil)

	tests := []struct {
		name string
		grid domain.Grid
	}{
		{"all blank", domain.Grid{{"", ""}, {"", ""}}},
		{"walled in by labels", domain.Grid{{"x", "a", "x"}, {"b", "", "c"}, {"x", "d", "x"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := f.Fill(tt.grid, domain.Mask{})
			assert.Equal(t, tt.grid, out)
		})
	}
}

func TestFillRespectsMask(t *testing.T) {
	f := NewFiller(nil)
	in := domain.Grid{
		{"", "1000", "2000"},
		{"500", "10", ""},
		{"900", "", "40"},
	}
	mask := domain.Mask{SkipFirstRow: true, SkipFirstCol: true}

	out := f.Fill(in, mask)

	// The blank heading cell is outside the mask and stays blank.
	assert.Equal(t, "", out[0][0])
	// In-mask blanks only read in-mask sources: (1,2) sees 10 left and 40
	// below, never the 2000 heading above. (10+40)/2 = 25.
	assert.Equal(t, "25.0", out[1][2])
	assert.Equal(t, "25.0", out[2][1])
}

func TestFillSourcesAreOriginalCellsOnly(t *testing.T) {
	f := NewFiller(nil)
	in := domain.Grid{{"10", "", "", ""}}

	out := f.Fill(in, domain.Mask{})

	// Each blank searches the original grid, so fills never cascade: every
	// blank sees only the 10, not previously filled neighbors.
	assert.Equal(t, domain.Grid{{"10", "10.0", "10.0", "10.0"}}, out)
}

func TestFillIdempotent(t *testing.T) {
	f := NewFiller(nil)
	in := domain.Grid{
		{"10", "", "30"},
		{"", "55", ""},
		{"50", "", "70"},
	}

	once := f.Fill(in, domain.Mask{})
	twice := f.Fill(once, domain.Mask{})
	assert.Equal(t, once, twice)
}

func TestFillRaggedRows(t *testing.T) {
	f := NewFiller(nil)
	in := domain.Grid{
		{"1", "2", "3"},
		{"", "5"},
	}

	require.NotPanics(t, func() {
		out := f.Fill(in, domain.Mask{})
		// Up 1 at distance 1, right 5 at distance 1: (1+5)/2 = 3.
		assert.Equal(t, "3.0", out[1][0])
	})
}
