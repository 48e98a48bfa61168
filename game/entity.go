package game

import (
	"time"

	"github.com/lowrez/vi-sector/constants"
	"github.com/lowrez/vi-sector/core"
	"github.com/lowrez/vi-sector/grid"
	"github.com/lowrez/vi-sector/level"
)

// Player is the cursor and its resource pools.
type Player struct {
	Pos       core.Position
	Integrity int
}

// Behavior tags enemy movement; behavior is data dispatched through
// stepEnemy, not a subtype hierarchy.
type Behavior uint8

const (
	BehaviorSentinel Behavior = iota
	BehaviorPatrol
	BehaviorChaser
)

// Enemy is one roaming hostile.
type Enemy struct {
	ID       int
	Pos      core.Position
	Health   int
	Behavior Behavior
	Glyph    rune
	Dir      int // patrol direction, +1 or -1

	Defeated bool

	stepAccum   time.Duration
	hurtFlash   time.Duration
	contactWait time.Duration
}

// Active reports whether the enemy still participates in the world.
func (e *Enemy) Active() bool { return !e.Defeated }

func newEnemy(id int, s level.Spawn) *Enemy {
	e := &Enemy{
		ID:     id,
		Pos:    s.Pos,
		Health: constants.EnemyHealth,
		Dir:    1,
	}
	switch s.Kind {
	case level.EnemyPatrol:
		e.Behavior = BehaviorPatrol
		e.Glyph = '&'
	case level.EnemyChaser:
		e.Behavior = BehaviorChaser
		e.Glyph = '%'
	default:
		e.Behavior = BehaviorSentinel
		e.Glyph = 'Ø'
	}
	return e
}

func (e *Enemy) stepInterval() time.Duration {
	switch e.Behavior {
	case BehaviorPatrol:
		return constants.PatrolStepInterval
	case BehaviorChaser:
		return constants.ChaserStepInterval
	}
	return 0 // sentinels never step
}

// stepEnemy resolves one movement step for the enemy's behavior tag.
// Returns the current position when the enemy does not move.
func stepEnemy(g *grid.Grid, e *Enemy, player core.Position) core.Position {
	switch e.Behavior {
	case BehaviorPatrol:
		next := core.Position{X: e.Pos.X + e.Dir, Y: e.Pos.Y}
		if !walkable(g, next) {
			e.Dir = -e.Dir
			next = core.Position{X: e.Pos.X + e.Dir, Y: e.Pos.Y}
			if !walkable(g, next) {
				return e.Pos
			}
		}
		return next

	case BehaviorChaser:
		dx, dy := player.X-e.Pos.X, player.Y-e.Pos.Y
		if dx == 0 && dy == 0 {
			return e.Pos
		}
		// Greedy: close the larger axis first, fall back to the other
		var first, second core.Position
		if abs(dx) >= abs(dy) {
			first = core.Position{X: e.Pos.X + sign(dx), Y: e.Pos.Y}
			second = core.Position{X: e.Pos.X, Y: e.Pos.Y + sign(dy)}
		} else {
			first = core.Position{X: e.Pos.X, Y: e.Pos.Y + sign(dy)}
			second = core.Position{X: e.Pos.X + sign(dx), Y: e.Pos.Y}
		}
		if walkable(g, first) && first != e.Pos {
			return first
		}
		if walkable(g, second) && second != e.Pos {
			return second
		}
		return e.Pos
	}
	return e.Pos
}

// walkable reports whether an enemy may occupy the tile.
func walkable(g *grid.Grid, p core.Position) bool {
	t, err := g.At(p.X, p.Y)
	if err != nil {
		return false
	}
	return t.Kind != grid.KindBarrier && t.Kind != grid.KindExitNode
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
