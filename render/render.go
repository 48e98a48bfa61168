// Package render defines the presentation collaborators. The core calls
// these interfaces and never reads layout or pixel state back.
package render

import (
	"time"

	"github.com/lowrez/vi-sector/core"
	"github.com/lowrez/vi-sector/grid"
)

// EntityFlags carries presentation hints for a drawn entity.
type EntityFlags uint8

const (
	FlagNone    EntityFlags = 0
	FlagPlayer  EntityFlags = 1 << iota
	FlagHurt                // recently damaged
	FlagHostile             // enemy
)

// Renderer draws the grid and its occupants.
type Renderer interface {
	DrawGrid(g *grid.Grid)
	UpdateTile(pos core.Position, t grid.Tile)
	DrawEntity(id int, pos core.Position, glyph rune, flags EntityFlags)
	RemoveEntity(id int)
	ClearAll()
}

// UI drives the HUD widgets.
type UI interface {
	UpdateScore(score int)
	UpdateTimer(elapsed time.Duration)
	UpdateIntegrity(percent float64)
	UpdateResource(percent float64)
	ShowMessage(text string)
	ClearMessage()
	UpdateCommandBuffer(text string)
}
