package motion

import "github.com/lowrez/vi-sector/grid"

// Word boundaries are determined by adjacent-tile whitespace
// classification: a word is a maximal run of non-blank tiles on a row.

// nextWordStart returns the first column of the next word strictly after
// x on row y. ok is false when no further word exists on the row.
func nextWordStart(g *grid.Grid, x, y int) (int, bool) {
	col := x
	// Skip the remainder of the current run, then the gap after it.
	for col < g.Width && !g.BlankAt(col, y) {
		col++
	}
	for col < g.Width && g.BlankAt(col, y) {
		col++
	}
	if col >= g.Width || col == x {
		return x, false
	}
	return col, true
}

// nextWordEnd returns the last column of the word the cursor is in when
// the cursor is before that end, otherwise the end of the next word.
func nextWordEnd(g *grid.Grid, x, y int) (int, bool) {
	col := x + 1
	for col < g.Width && g.BlankAt(col, y) {
		col++
	}
	if col >= g.Width {
		return x, false
	}
	for col+1 < g.Width && !g.BlankAt(col+1, y) {
		col++
	}
	return col, true
}

// wordRunStart returns the first column of the run containing x. When x
// is blank it scans left to the previous run's start; with no previous
// run it returns column 0 (line-start fallback). moved is false when the
// cursor is already at a run start.
func wordRunStart(g *grid.Grid, x, y int) (int, bool) {
	col := x
	if g.BlankAt(col, y) {
		for col > 0 && g.BlankAt(col-1, y) {
			col--
		}
		if col == 0 {
			return 0, x != 0
		}
		col-- // step onto the previous run
	}
	for col > 0 && !g.BlankAt(col-1, y) {
		col--
	}
	return col, col != x
}
