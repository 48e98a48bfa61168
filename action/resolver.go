package action

import (
	"github.com/lowrez/vi-sector/constants"
	"github.com/lowrez/vi-sector/grid"
	"github.com/lowrez/vi-sector/input"
	"github.com/lowrez/vi-sector/motion"
)

// Resolve converts a range-requiring command at cursor (x,y) into an
// Action. A nil return means the span is empty; the caller treats it as
// a no-op, not an error.
func Resolve(g *grid.Grid, x, y int, cmd input.Command) *Action {
	if !g.InBounds(x, y) {
		return nil
	}

	switch cmd.Type {
	case input.CommandDeleteChar:
		return resolveDeleteChar(g, x, y, cmd.Count)
	case input.CommandReplaceExecute:
		return resolveReplace(g, x, y, cmd.Char)
	case input.CommandOperatorMotion:
		return resolveOperatorMotion(g, x, y, cmd)
	}
	return nil
}

// resolveDeleteChar handles 'x': count tiles from the cursor rightward,
// clamped to the row.
func resolveDeleteChar(g *grid.Grid, x, y, count int) *Action {
	endX := x + count - 1
	if endX > g.Width-1 {
		endX = g.Width - 1
	}
	r := normalize(x, y, endX, y)
	return &Action{
		Kind:  KindDelete,
		Range: r,
		Cost:  constants.CostDeleteChar * r.Tiles(),
	}
}

// resolveReplace handles 'r<char>': a single tile at the cursor.
func resolveReplace(g *grid.Grid, x, y int, char rune) *Action {
	return &Action{
		Kind:  KindReplace,
		Range: normalize(x, y, x, y),
		Cost:  constants.CostReplace,
		Char:  char,
	}
}

func resolveOperatorMotion(g *grid.Grid, x, y int, cmd input.Command) *Action {
	kind := operatorKind(cmd.Operator)
	if kind == 0 {
		return nil
	}

	if cmd.Motion == input.MotionLine {
		return lineAction(g, kind, y, cmd.Count)
	}

	startX, endX, ok := charSpan(g, x, y, cmd)
	if !ok {
		return nil
	}
	r := normalize(startX, y, endX, y)
	return &Action{
		Kind:  kind,
		Range: r,
		Cost:  charCost(kind, r),
	}
}

// charSpan computes the raw column span for a character-wise motion.
// ok is false when the span is empty.
func charSpan(g *grid.Grid, x, y int, cmd input.Command) (int, int, bool) {
	switch cmd.Motion {
	case input.MotionLeft:
		// Tiles before the cursor, excluding the cursor tile
		if x == 0 {
			return 0, 0, false
		}
		startX := x - cmd.Count
		if startX < 0 {
			startX = 0
		}
		return startX, x - 1, true

	case input.MotionRight:
		// Tiles from the cursor inclusive
		endX := x + cmd.Count - 1
		if endX > g.Width-1 {
			endX = g.Width - 1
		}
		return x, endX, true

	case input.MotionLineStart:
		if x == 0 {
			return 0, 0, false
		}
		return 0, x - 1, true

	case input.MotionLineEnd:
		return x, g.Width - 1, true

	case input.MotionFirstNonBlank:
		res := motion.FirstNonBlank(g, x, y, 1)
		if res.EndX == x {
			return 0, 0, false
		}
		// Exclusive toward the right end of the span
		if res.EndX < x {
			return res.EndX, x - 1, true
		}
		return x, res.EndX - 1, true

	case input.MotionWordForward:
		res := motion.WordForward(g, x, y, cmd.Count)
		if !res.Valid {
			return 0, 0, false
		}
		endX := res.EndX
		if res.Exclusive {
			endX--
		}
		if endX < x {
			return 0, 0, false
		}
		return x, endX, true

	case input.MotionWordEnd:
		res := motion.WordEnd(g, x, y, cmd.Count)
		if !res.Valid {
			return 0, 0, false
		}
		return x, res.EndX, true

	case input.MotionWordBackward:
		res := motion.WordBackward(g, x, y, cmd.Count)
		if !res.Valid || res.EndX >= x {
			return 0, 0, false
		}
		return res.EndX, x - 1, true
	}
	return 0, 0, false
}

// lineAction spans count whole rows starting at the cursor row, clamped
// to the grid height.
func lineAction(g *grid.Grid, kind Kind, y, count int) *Action {
	endY := y + count - 1
	if endY > g.Height-1 {
		endY = g.Height - 1
	}
	r := normalize(0, y, g.Width-1, endY)
	cost := constants.CostPerRow * r.Rows()
	if kind == KindYank {
		cost /= constants.CostYankDiv
	}
	return &Action{
		Kind:     kind,
		Range:    r,
		Cost:     cost,
		Linewise: true,
	}
}

// charCost prices character-wise ranges per tile. Yank is cheaper; the
// weights are tunable but stay monotonic in span size.
func charCost(kind Kind, r Range) int {
	cost := constants.CostPerTile * r.Tiles()
	if kind == KindYank {
		cost /= constants.CostYankDiv
	}
	if cost < 1 {
		cost = 1
	}
	return cost
}

func operatorKind(op input.OperatorOp) Kind {
	switch op {
	case input.OperatorDelete:
		return KindDelete
	case input.OperatorChange:
		return KindChange
	case input.OperatorYank:
		return KindYank
	}
	return 0
}
