package level

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/lowrez/vi-sector/core"
	"github.com/lowrez/vi-sector/grid"
)

// Map legend:
//
//	' '  pathway
//	'#'  barrier
//	'~'  corrupted (glyph kept as-is)
//	'.'  decoration
//	'X'  exit node
//	'@'  player start (pathway underneath)
//	'1'  patrol spawn, '2' chaser spawn, '3' sentinel spawn
//	a-z  data-node tiles; a contiguous run forms its required word
//
// Rows may be ragged; short rows pad with pathway.
func parse(id int, src string, nextID int) (*Level, error) {
	rows := strings.Split(strings.Trim(src, "\n"), "\n")
	if len(rows) == 0 {
		return nil, errors.Errorf("level %d: empty map", id)
	}
	width := 0
	for _, row := range rows {
		if n := len([]rune(row)); n > width {
			width = n
		}
	}

	g, err := grid.New(width, len(rows), id)
	if err != nil {
		return nil, errors.Wrapf(err, "level %d", id)
	}

	lvl := &Level{Grid: g, NextID: nextID, PlayerStart: core.Position{X: -1, Y: -1}}
	exits := 0

	for y, row := range rows {
		runes := []rune(row)
		for x := 0; x < len(runes); x++ {
			r := runes[x]
			var t grid.Tile
			switch {
			case r == ' ':
				continue // grid.New pre-filled pathway
			case r == '#':
				t = grid.Tile{Glyph: '#', Kind: grid.KindBarrier}
			case r == '~':
				t = grid.Tile{Glyph: '~', Kind: grid.KindCorrupted}
			case r == '.':
				t = grid.Tile{Glyph: '.', Kind: grid.KindDecoration}
			case r == 'X':
				t = grid.Tile{Glyph: 'X', Kind: grid.KindExitNode}
				exits++
			case r == '@':
				if lvl.PlayerStart.X >= 0 {
					return nil, errors.Errorf("level %d: duplicate player start at (%d,%d)", id, x, y)
				}
				lvl.PlayerStart = core.Position{X: x, Y: y}
				continue
			case r >= '1' && r <= '3':
				lvl.Spawns = append(lvl.Spawns, Spawn{
					Pos:  core.Position{X: x, Y: y},
					Kind: EnemyKind(r - '0'),
				})
				continue
			case r >= 'a' && r <= 'z':
				// Collected below as a word run
				t = grid.Tile{Glyph: r, Kind: grid.KindDataNode}
			default:
				return nil, errors.Errorf("level %d: unknown map glyph %q at (%d,%d)", id, r, x, y)
			}
			if err := g.Set(x, y, t); err != nil {
				return nil, errors.Wrapf(err, "level %d", id)
			}
		}
	}

	markWordRuns(g)

	if lvl.PlayerStart.X < 0 {
		return nil, errors.Errorf("level %d: no player start", id)
	}
	if exits == 0 {
		return nil, errors.Errorf("level %d: no exit node", id)
	}
	return lvl, nil
}

// markWordRuns walks each row and stamps contiguous data-node runs with
// their required word, flagging the first tile of each run.
func markWordRuns(g *grid.Grid) {
	for y := 0; y < g.Height; y++ {
		x := 0
		for x < g.Width {
			t, _ := g.At(x, y)
			if t.Kind != grid.KindDataNode {
				x++
				continue
			}
			start := x
			var word []rune
			for x < g.Width {
				t, _ = g.At(x, y)
				if t.Kind != grid.KindDataNode {
					break
				}
				word = append(word, t.Glyph)
				x++
			}
			first, _ := g.At(start, y)
			first.RequiredWord = string(word)
			first.WordStart = true
			_ = g.Set(start, y, first)
		}
	}
}
