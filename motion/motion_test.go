package motion

import (
	"testing"

	"github.com/lowrez/vi-sector/grid"
	"github.com/lowrez/vi-sector/input"
)

// gridFromRows builds a test grid where non-space runes become corrupted
// tiles and spaces stay pathway.
func gridFromRows(t *testing.T, rows ...string) *grid.Grid {
	t.Helper()
	g, err := grid.New(len([]rune(rows[0])), len(rows), 1)
	if err != nil {
		t.Fatalf("grid.New failed: %v", err)
	}
	for y, row := range rows {
		for x, r := range []rune(row) {
			if r != ' ' {
				_ = g.Set(x, y, grid.Tile{Glyph: r, Kind: grid.KindCorrupted})
			}
		}
	}
	return g
}

func TestRightClampsAtEdge(t *testing.T) {
	g := gridFromRows(t, ".....")

	// Scenario: 5x1 grid, cursor at x=0, three rights land at x=3
	x := 0
	for i := 0; i < 3; i++ {
		r := Right(g, x, 0, 1)
		x = r.EndX
	}
	if x != 3 {
		t.Errorf("Three 'l' should land at x=3, got %d", x)
	}

	r := Right(g, x, 0, 1)
	if r.EndX != 4 {
		t.Errorf("Fourth 'l' should land at x=4, got %d", r.EndX)
	}
	r = Right(g, 4, 0, 1)
	if r.EndX != 4 || r.Valid {
		t.Errorf("'l' at right edge should clamp and be invalid, got %+v", r)
	}
}

func TestVerticalClamp(t *testing.T) {
	g := gridFromRows(t, "...", "...", "...")

	if r := Up(g, 1, 0, 5); r.EndY != 0 || r.Valid {
		t.Errorf("Up at top row should clamp, got %+v", r)
	}
	if r := Down(g, 1, 1, 10); r.EndY != 2 || !r.Linewise {
		t.Errorf("Down should clamp at bottom and be linewise, got %+v", r)
	}
	if r := Left(g, 0, 0, 3); r.EndX != 0 || r.Valid {
		t.Errorf("Left at column 0 should clamp, got %+v", r)
	}
}

func TestWordForward(t *testing.T) {
	//            0123456789
	g := gridFromRows(t, "ab  cd  ef")

	r := WordForward(g, 0, 0, 1)
	if r.EndX != 4 || !r.Exclusive {
		t.Errorf("w from x=0 should land at 4 exclusive, got %+v", r)
	}

	r = WordForward(g, 0, 0, 2)
	if r.EndX != 8 {
		t.Errorf("2w from x=0 should land at 8, got %d", r.EndX)
	}

	// No further word: fall back to line end
	r = WordForward(g, 8, 0, 1)
	if r.EndX != 9 || r.Exclusive {
		t.Errorf("w past last word should fall back to line end, got %+v", r)
	}
}

func TestWordBackward(t *testing.T) {
	g := gridFromRows(t, "ab  cd  ef")

	// Mid-word moves to the word start
	if r := WordBackward(g, 5, 0, 1); r.EndX != 4 || !r.Valid {
		t.Errorf("b from x=5 should land at 4, got %+v", r)
	}

	// At a word start the motion does not move
	if r := WordBackward(g, 4, 0, 1); r.Valid {
		t.Errorf("b at word start should not move, got %+v", r)
	}

	// On whitespace moves to previous word start
	if r := WordBackward(g, 3, 0, 1); r.EndX != 0 {
		t.Errorf("b from gap should land at 0, got %+v", r)
	}

	// Nothing before the cursor: line-start fallback
	g2 := gridFromRows(t, "   ab")
	if r := WordBackward(g2, 2, 0, 1); r.EndX != 0 {
		t.Errorf("b with no previous word should fall back to 0, got %+v", r)
	}
}

func TestWordEnd(t *testing.T) {
	g := gridFromRows(t, "ab  cd  ef")

	if r := WordEnd(g, 0, 0, 1); r.EndX != 1 {
		t.Errorf("e from x=0 should land at 1, got %d", r.EndX)
	}
	if r := WordEnd(g, 1, 0, 1); r.EndX != 5 {
		t.Errorf("e from word end should land at next word end 5, got %d", r.EndX)
	}
	if r := WordEnd(g, 0, 0, 3); r.EndX != 9 {
		t.Errorf("3e should land at 9, got %d", r.EndX)
	}
	if r := WordEnd(g, 9, 0, 1); r.EndX != 9 || r.Valid {
		t.Errorf("e at line end should not move, got %+v", r)
	}
}

func TestLineMotions(t *testing.T) {
	g := gridFromRows(t, "  abc ")

	if r := LineStart(g, 4, 0, 1); r.EndX != 0 {
		t.Errorf("0 should land at column 0, got %d", r.EndX)
	}
	if r := LineEnd(g, 1, 0, 1); r.EndX != 5 {
		t.Errorf("$ should land at last column, got %d", r.EndX)
	}
	if r := FirstNonBlank(g, 5, 0, 1); r.EndX != 2 {
		t.Errorf("^ should land at 2, got %d", r.EndX)
	}

	empty := gridFromRows(t, "      ")
	if r := FirstNonBlank(empty, 3, 0, 1); r.EndX != 0 {
		t.Errorf("^ on empty row should default to 0, got %d", r.EndX)
	}
}

func TestResolveDispatch(t *testing.T) {
	g := gridFromRows(t, "abc")

	r := Resolve(g, input.MotionRight, 0, 0, 2)
	if r.EndX != 2 {
		t.Errorf("Resolve right 2 should land at 2, got %d", r.EndX)
	}

	// Unknown op is a no-op, not an error
	r = Resolve(g, input.MotionNone, 1, 0, 1)
	if r.Valid {
		t.Errorf("Unknown motion should be invalid no-op, got %+v", r)
	}
}

func TestResolversDoNotMutate(t *testing.T) {
	g := gridFromRows(t, "ab cd")
	before := make([]grid.Tile, 0, 5)
	for x := 0; x < 5; x++ {
		tile, _ := g.At(x, 0)
		before = append(before, tile)
	}

	WordForward(g, 0, 0, 3)
	WordBackward(g, 4, 0, 2)
	WordEnd(g, 0, 0, 2)
	FirstNonBlank(g, 4, 0, 1)

	for x := 0; x < 5; x++ {
		tile, _ := g.At(x, 0)
		if tile != before[x] {
			t.Errorf("Tile %d mutated by motion resolver", x)
		}
	}
}
