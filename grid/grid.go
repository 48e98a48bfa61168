package grid

import (
	"fmt"

	"github.com/pkg/errors"
)

// BoundsError reports a coordinate outside the grid. Out-of-range access
// is rejected outright, never clamped.
type BoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("position (%d,%d) outside %dx%d grid", e.X, e.Y, e.Width, e.Height)
}

// Grid is a rectangular tile field. Every coordinate in
// [0,Width) x [0,Height) holds exactly one tile.
type Grid struct {
	Width   int
	Height  int
	LevelID int

	tiles []Tile
}

// New creates an empty grid of pathway tiles.
func New(width, height, levelID int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("invalid grid dimensions %dx%d", width, height)
	}
	g := &Grid{
		Width:   width,
		Height:  height,
		LevelID: levelID,
		tiles:   make([]Tile, width*height),
	}
	for i := range g.tiles {
		g.tiles[i] = Tile{Glyph: ' ', Kind: KindPathway}
	}
	return g, nil
}

// InBounds reports whether (x,y) addresses a tile.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the tile at (x,y).
func (g *Grid) At(x, y int) (Tile, error) {
	if !g.InBounds(x, y) {
		return Tile{}, &BoundsError{X: x, Y: y, Width: g.Width, Height: g.Height}
	}
	return g.tiles[y*g.Width+x], nil
}

// Set replaces the tile at (x,y).
func (g *Grid) Set(x, y int, t Tile) error {
	if !g.InBounds(x, y) {
		return &BoundsError{X: x, Y: y, Width: g.Width, Height: g.Height}
	}
	g.tiles[y*g.Width+x] = t
	return nil
}

// Row returns the tiles of row y in column order. The slice aliases the
// grid's storage; callers must treat it as read-only.
func (g *Grid) Row(y int) ([]Tile, error) {
	if y < 0 || y >= g.Height {
		return nil, &BoundsError{X: 0, Y: y, Width: g.Width, Height: g.Height}
	}
	return g.tiles[y*g.Width : (y+1)*g.Width], nil
}

// BlankAt reports whether (x,y) is whitespace for word classification.
// Out-of-range positions classify as blank so motion scans terminate
// at the edge without special cases.
func (g *Grid) BlankAt(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.tiles[y*g.Width+x].Blank()
}
