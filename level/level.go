// Package level is the level source. Levels are authored as glyph maps
// and parsed into grids; the core treats the result as read-only input.
package level

import (
	"github.com/lowrez/vi-sector/core"
	"github.com/lowrez/vi-sector/grid"
)

// EnemyKind tags a spawn with its behavior.
type EnemyKind uint8

const (
	EnemyPatrol EnemyKind = iota + 1
	EnemyChaser
	EnemySentinel
)

// Spawn places one enemy at level entry.
type Spawn struct {
	Pos  core.Position
	Kind EnemyKind
}

// Level is the parsed form handed to the playing mode.
type Level struct {
	Grid        *grid.Grid
	PlayerStart core.Position
	Spawns      []Spawn
	NextID      int // 0 when this is the last level
}

// Source loads levels by id.
type Source interface {
	Load(id int) (*Level, error)
}
