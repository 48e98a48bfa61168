// Package action turns operator+motion commands into bounded, priced
// effects on the grid. Resolution never mutates anything; the active
// game mode applies the resulting Action.
package action

// Kind discriminates range effects.
type Kind uint8

const (
	KindDelete Kind = iota + 1
	KindChange
	KindYank
	KindReplace
)

func (k Kind) String() string {
	switch k {
	case KindDelete:
		return "delete"
	case KindChange:
		return "change"
	case KindYank:
		return "yank"
	case KindReplace:
		return "replace"
	}
	return "unknown"
}

// Range is a normalized rectangle of grid coordinates: Min <= Max on
// both axes regardless of the motion's direction.
type Range struct {
	MinX, MinY, MaxX, MaxY int
}

// Tiles returns the number of coordinates covered.
func (r Range) Tiles() int {
	return (r.MaxX - r.MinX + 1) * (r.MaxY - r.MinY + 1)
}

// Rows returns the number of rows covered.
func (r Range) Rows() int { return r.MaxY - r.MinY + 1 }

// Contains reports whether (x,y) falls inside the range.
func (r Range) Contains(x, y int) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// normalize builds a Range from two corners in any order.
func normalize(x1, y1, x2, y2 int) Range {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return Range{MinX: x1, MinY: y1, MaxX: x2, MaxY: y2}
}

// Action is a resolved range effect. Created here, consumed by the
// orchestrator within the same tick, never persisted.
type Action struct {
	Kind     Kind
	Range    Range
	Cost     int
	Linewise bool
	Char     rune // replacement glyph for KindReplace
}
