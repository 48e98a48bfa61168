package game

import (
	"time"

	"github.com/pkg/errors"

	"github.com/lowrez/vi-sector/audio"
	"github.com/lowrez/vi-sector/core"
	"github.com/lowrez/vi-sector/grid"
	"github.com/lowrez/vi-sector/input"
	"github.com/lowrez/vi-sector/level"
	"github.com/lowrez/vi-sector/render"
)

type mockRenderer struct {
	gridDraws int
	entities  map[int]core.Position
	removed   []int
	cleared   int
}

func newMockRenderer() *mockRenderer {
	return &mockRenderer{entities: make(map[int]core.Position)}
}

func (m *mockRenderer) DrawGrid(*grid.Grid)                   { m.gridDraws++ }
func (m *mockRenderer) UpdateTile(core.Position, grid.Tile)   {}
func (m *mockRenderer) RemoveEntity(id int)                   { m.removed = append(m.removed, id) }
func (m *mockRenderer) ClearAll()                             { m.cleared++ }

func (m *mockRenderer) DrawEntity(id int, pos core.Position, glyph rune, flags render.EntityFlags) {
	m.entities[id] = pos
}

type mockUI struct {
	score     int
	integrity float64
	resource  float64
	message   string
	buffer    string
	cleared   int
}

func (m *mockUI) UpdateScore(s int)              { m.score = s }
func (m *mockUI) UpdateTimer(time.Duration)      {}
func (m *mockUI) UpdateIntegrity(p float64)      { m.integrity = p }
func (m *mockUI) UpdateResource(p float64)       { m.resource = p }
func (m *mockUI) ShowMessage(text string)        { m.message = text }
func (m *mockUI) ClearMessage()                  { m.message = ""; m.cleared++ }
func (m *mockUI) UpdateCommandBuffer(text string) { m.buffer = text }

type mockAudio struct {
	cues []audio.Cue
}

func (m *mockAudio) Play(c audio.Cue) { m.cues = append(m.cues, c) }

func (m *mockAudio) played(c audio.Cue) bool {
	for _, got := range m.cues {
		if got == c {
			return true
		}
	}
	return false
}

// stubSource serves in-memory levels keyed by id.
type stubSource struct {
	levels map[int]*level.Level
}

func (s *stubSource) Load(id int) (*level.Level, error) {
	lvl, ok := s.levels[id]
	if !ok {
		return nil, errors.Errorf("no level %d", id)
	}
	return lvl, nil
}

// testLevel builds a level from rows of glyphs using a minimal legend:
// '#' barrier, '~' corrupted, 'X' exit, anything else pathway. The
// player starts at (0, 0) unless moved by the test.
func testLevel(nextID int, rows ...string) *level.Level {
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	g, err := grid.New(width, len(rows), 0)
	if err != nil {
		panic(err)
	}
	for y, row := range rows {
		for x, ch := range row {
			t := grid.Tile{Glyph: ch, Kind: grid.KindPathway}
			switch ch {
			case '#':
				t.Kind = grid.KindBarrier
			case '~':
				t.Kind = grid.KindCorrupted
			case 'X':
				t.Kind = grid.KindExitNode
			case ' ':
				t.Glyph = ' '
			}
			if err := g.Set(x, y, t); err != nil {
				panic(err)
			}
		}
	}
	return &level.Level{Grid: g, NextID: nextID}
}

type fixture struct {
	ctx      *Context
	machine  *Machine
	renderer *mockRenderer
	ui       *mockUI
	sound    *mockAudio
	source   *stubSource
}

func newFixture(t interface{ Fatalf(string, ...interface{}) }, levels map[int]*level.Level) *fixture {
	f := &fixture{
		renderer: newMockRenderer(),
		ui:       &mockUI{},
		sound:    &mockAudio{},
		source:   &stubSource{levels: levels},
	}
	ctx, err := NewContext(f.renderer, f.ui, f.source, f.sound, input.NewMachine())
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	f.ctx = ctx
	f.machine = NewMachine(ctx)
	return f
}

// press runs keystrokes through the parser and one update tick so the
// resulting commands reach the active mode.
func (f *fixture) press(keys ...input.Key) {
	for _, k := range keys {
		f.machine.HandleKey(k)
	}
	f.machine.Update(time.Millisecond)
}

func runes(s string) []input.Key {
	keys := make([]input.Key, 0, len(s))
	for _, r := range s {
		keys = append(keys, input.RuneKey(r))
	}
	return keys
}
