package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lowrez/vi-sector/core"
	"github.com/lowrez/vi-sector/grid"
)

type drawnEntity struct {
	pos   core.Position
	glyph rune
	flags EntityFlags
}

// Screen renders grid, entities and HUD onto a tcell screen. It
// implements both Renderer and UI.
type Screen struct {
	s tcell.Screen

	entities   map[int]drawnEntity
	gridWidth  int
	gridHeight int

	// HUD state, redrawn every flush
	score     int
	elapsed   time.Duration
	integrity float64
	resource  float64
	message   string
	cmdBuffer string
}

// NewScreen wraps an initialized tcell screen.
func NewScreen(s tcell.Screen) *Screen {
	return &Screen{
		s:         s,
		entities:  make(map[int]drawnEntity),
		integrity: 1,
		resource:  1,
	}
}

func (sc *Screen) DrawGrid(g *grid.Grid) {
	sc.gridWidth, sc.gridHeight = g.Width, g.Height
	for y := 0; y < g.Height; y++ {
		row, err := g.Row(y)
		if err != nil {
			continue
		}
		for x, t := range row {
			sc.s.SetContent(x, y, t.Glyph, nil, tileStyle(t))
		}
	}
	sc.drawEntities()
}

func (sc *Screen) UpdateTile(pos core.Position, t grid.Tile) {
	sc.s.SetContent(pos.X, pos.Y, t.Glyph, nil, tileStyle(t))
}

func (sc *Screen) DrawEntity(id int, pos core.Position, glyph rune, flags EntityFlags) {
	sc.entities[id] = drawnEntity{pos: pos, glyph: glyph, flags: flags}
	sc.s.SetContent(pos.X, pos.Y, glyph, nil, entityStyle(flags))
}

func (sc *Screen) RemoveEntity(id int) {
	delete(sc.entities, id)
}

func (sc *Screen) ClearAll() {
	sc.entities = make(map[int]drawnEntity)
	sc.gridWidth, sc.gridHeight = 0, 0
	sc.message = ""
	sc.cmdBuffer = ""
	sc.s.Clear()
}

// Show composes the HUD rows below the grid and flushes the frame to
// the terminal. Called once per render tick by the frame driver. With
// no grid drawn the HUD sits at the top of the screen, which is where
// menu and loading messages appear.
func (sc *Screen) Show() {
	sc.drawHUD()
	sc.s.Show()
}

func (sc *Screen) drawEntities() {
	for _, e := range sc.entities {
		sc.s.SetContent(e.pos.X, e.pos.Y, e.glyph, nil, entityStyle(e.flags))
	}
}

func entityStyle(flags EntityFlags) tcell.Style {
	if flags&FlagHurt != 0 {
		return styleHurt
	}
	if flags&FlagPlayer != 0 {
		return stylePlayer
	}
	return styleEnemy
}

// === UI ===

func (sc *Screen) UpdateScore(score int)                 { sc.score = score }
func (sc *Screen) UpdateTimer(elapsed time.Duration)     { sc.elapsed = elapsed }
func (sc *Screen) UpdateIntegrity(percent float64)       { sc.integrity = percent }
func (sc *Screen) UpdateResource(percent float64)        { sc.resource = percent }
func (sc *Screen) ShowMessage(text string)               { sc.message = text }
func (sc *Screen) ClearMessage()                         { sc.message = "" }
func (sc *Screen) UpdateCommandBuffer(text string)       { sc.cmdBuffer = text }

func (sc *Screen) drawHUD() {
	width, _ := sc.s.Size()
	if width < sc.gridWidth {
		width = sc.gridWidth
	}
	statusY := sc.gridHeight
	msgY := sc.gridHeight + 1

	clearRow(sc.s, statusY, width)
	clearRow(sc.s, msgY, width)

	status := fmt.Sprintf("SCORE %06d  T %s  ", sc.score, formatElapsed(sc.elapsed))
	x := drawText(sc.s, 0, statusY, status, styleHUD)
	x = drawMeter(sc.s, x, statusY, "HP", sc.integrity)
	x = drawText(sc.s, x, statusY, " ", styleHUD)
	drawMeter(sc.s, x, statusY, "EN", sc.resource)

	// Pending command sequence, right-aligned
	if sc.cmdBuffer != "" {
		w := runewidth.StringWidth(sc.cmdBuffer)
		drawText(sc.s, width-w-1, statusY, sc.cmdBuffer, styleHUD.Bold(true))
	}

	if sc.message != "" {
		drawText(sc.s, 0, msgY, sc.message, styleMessage)
	}
}

const meterWidth = 10

func drawMeter(s tcell.Screen, x, y int, label string, percent float64) int {
	x = drawText(s, x, y, label+" ", styleHUD)
	filled := int(percent*meterWidth + 0.5)
	if filled > meterWidth {
		filled = meterWidth
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", meterWidth-filled)
	return drawText(s, x, y, bar, styleHUD.Foreground(meterColor(percent)))
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

func clearRow(s tcell.Screen, y, width int) {
	for x := 0; x < width; x++ {
		s.SetContent(x, y, ' ', nil, styleDefault)
	}
}

func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", m, s)
}
