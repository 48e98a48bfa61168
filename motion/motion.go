// Package motion resolves symbolic motions into grid coordinates.
// All resolvers are pure: they read the grid, never mutate it, and are
// deterministic for a given grid and starting position.
package motion

import (
	"github.com/lowrez/vi-sector/grid"
	"github.com/lowrez/vi-sector/input"
)

// Result is a resolved motion. Start is the cursor position the motion
// was computed from; End is the target. Valid is false when the motion
// did not move.
type Result struct {
	StartX, StartY int
	EndX, EndY     int
	Linewise       bool
	Exclusive      bool // operator span stops one short of End
	Valid          bool
}

// Func is the shared resolver signature.
type Func func(g *grid.Grid, x, y, count int) Result

// Resolve dispatches a motion op to its resolver. Unknown ops return an
// invalid result rather than an error; the caller treats it as a no-op.
func Resolve(g *grid.Grid, op input.MotionOp, x, y, count int) Result {
	if f, ok := table[op]; ok {
		return f(g, x, y, count)
	}
	return Result{StartX: x, StartY: y, EndX: x, EndY: y}
}

var table map[input.MotionOp]Func

func init() {
	table = map[input.MotionOp]Func{
		input.MotionLeft:          Left,
		input.MotionRight:         Right,
		input.MotionUp:            Up,
		input.MotionDown:          Down,
		input.MotionWordForward:   WordForward,
		input.MotionWordBackward:  WordBackward,
		input.MotionWordEnd:       WordEnd,
		input.MotionLineStart:     LineStart,
		input.MotionLineEnd:       LineEnd,
		input.MotionFirstNonBlank: FirstNonBlank,
	}
}

// Left implements 'h'. Clamps at column 0, never wraps.
func Left(g *grid.Grid, x, y, count int) Result {
	endX := x - count
	if endX < 0 {
		endX = 0
	}
	return charResult(x, y, endX, y)
}

// Right implements 'l'. Clamps at the last column, never wraps.
func Right(g *grid.Grid, x, y, count int) Result {
	endX := x + count
	if endX > g.Width-1 {
		endX = g.Width - 1
	}
	return charResult(x, y, endX, y)
}

// Up implements 'k'.
func Up(g *grid.Grid, x, y, count int) Result {
	endY := y - count
	if endY < 0 {
		endY = 0
	}
	return lineResult(x, y, x, endY)
}

// Down implements 'j'.
func Down(g *grid.Grid, x, y, count int) Result {
	endY := y + count
	if endY > g.Height-1 {
		endY = g.Height - 1
	}
	return lineResult(x, y, x, endY)
}

// WordForward implements 'w': start of the count-th next word on the row.
// Running off the row falls back to line end rather than failing.
func WordForward(g *grid.Grid, x, y, count int) Result {
	endX := x
	fellBack := false
	for i := 0; i < count; i++ {
		next, ok := nextWordStart(g, endX, y)
		if !ok {
			endX = g.Width - 1
			fellBack = true
			break
		}
		endX = next
	}
	r := charResult(x, y, endX, y)
	r.Exclusive = !fellBack
	return r
}

// WordBackward implements 'b': start of the word under the cursor, or the
// previous word's start when the cursor sits on whitespace. A cursor
// already on a word start does not move, so operator spans built from it
// are empty. Falls back to line start when no word precedes the cursor.
func WordBackward(g *grid.Grid, x, y, count int) Result {
	endX := x
	for i := 0; i < count; i++ {
		prev, moved := wordRunStart(g, endX, y)
		if !moved {
			break
		}
		endX = prev
	}
	return charResult(x, y, endX, y)
}

// WordEnd implements 'e': end of the count-th word from the cursor.
// Falls back to line end when no further word exists.
func WordEnd(g *grid.Grid, x, y, count int) Result {
	endX := x
	for i := 0; i < count; i++ {
		next, ok := nextWordEnd(g, endX, y)
		if !ok {
			endX = g.Width - 1
			break
		}
		endX = next
	}
	return charResult(x, y, endX, y)
}

// LineStart implements '0'.
func LineStart(g *grid.Grid, x, y, count int) Result {
	return charResult(x, y, 0, y)
}

// LineEnd implements '$'.
func LineEnd(g *grid.Grid, x, y, count int) Result {
	return charResult(x, y, g.Width-1, y)
}

// FirstNonBlank implements '^': first non-whitespace column on the row,
// column 0 when the row is empty.
func FirstNonBlank(g *grid.Grid, x, y, count int) Result {
	endX := 0
	for col := 0; col < g.Width; col++ {
		if !g.BlankAt(col, y) {
			endX = col
			break
		}
	}
	return charResult(x, y, endX, y)
}

func charResult(x, y, endX, endY int) Result {
	return Result{
		StartX: x, StartY: y,
		EndX: endX, EndY: endY,
		Valid: endX != x || endY != y,
	}
}

func lineResult(x, y, endX, endY int) Result {
	return Result{
		StartX: x, StartY: y,
		EndX: endX, EndY: endY,
		Linewise: true,
		Valid:    endX != x || endY != y,
	}
}
