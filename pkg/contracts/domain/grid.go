package domain

// Grid is a calibration table as received from the host: ordered rows of raw
// cell text. Cell text may embed inline markup, which every numeric operation
// treats as zero-width noise. Rows may be ragged; a missing column is
// out-of-bounds, not an error.
type Grid [][]string

// Rows returns the number of rows in the grid.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the width of the widest row.
func (g Grid) Cols() int {
	max := 0
	for _, row := range g {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// InBounds reports whether (row, col) addresses an existing cell, accounting
// for ragged rows.
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < len(g) && col >= 0 && col < len(g[row])
}

// Cell returns the raw text at (row, col), or "" and false when out of bounds.
func (g Grid) Cell(row, col int) (string, bool) {
	if !g.InBounds(row, col) {
		return "", false
	}
	return g[row][col], true
}

// Clone returns a deep copy of the grid. Algorithms write results into a
// clone so the input grid is never aliased or mutated.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	out := make(Grid, len(g))
	for i, row := range g {
		out[i] = make([]string, len(row))
		copy(out[i], row)
	}
	return out
}

// Mask restricts reads and writes to the data region of a grid, excluding an
// optional heading row and column. Cells outside the mask are never read as
// data and never overwritten.
type Mask struct {
	SkipFirstRow bool `json:"skip_first_row"`
	SkipFirstCol bool `json:"skip_first_col"`
}

// StartRow returns the first row index inside the mask.
func (m Mask) StartRow() int {
	if m.SkipFirstRow {
		return 1
	}
	return 0
}

// StartCol returns the first column index inside the mask.
func (m Mask) StartCol() int {
	if m.SkipFirstCol {
		return 1
	}
	return 0
}

// Contains reports whether (row, col) lies inside the mask.
func (m Mask) Contains(row, col int) bool {
	return row >= m.StartRow() && col >= m.StartCol()
}
