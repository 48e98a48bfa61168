package game

import (
	"fmt"
	"time"

	"github.com/lowrez/vi-sector/action"
	"github.com/lowrez/vi-sector/audio"
	"github.com/lowrez/vi-sector/constants"
	"github.com/lowrez/vi-sector/core"
	"github.com/lowrez/vi-sector/grid"
	"github.com/lowrez/vi-sector/input"
	"github.com/lowrez/vi-sector/motion"
	"github.com/lowrez/vi-sector/render"
)

const playerEntityID = 0

// savedTile remembers a blanked data-node tile for retype restoration.
type savedTile struct {
	pos  core.Position
	tile grid.Tile
}

// typingRun is an armed retype target.
type typingRun struct {
	word  string
	saved []savedTile
}

// playingMode owns the grid and entity roster while active. No other
// mode reads or mutates them.
type playingMode struct {
	ctx     *Context
	machine *Machine

	g           *grid.Grid
	levelID     int
	nextLevelID int

	player  Player
	enemies []*Enemy
	nextID  int

	score    int
	resource float64
	clock    Clock
	msg      messageTimer

	typing *typingRun
	yank   []rune
}

func newPlaying(ctx *Context, m *Machine) *playingMode {
	return &playingMode{ctx: ctx, machine: m}
}

func (p *playingMode) Enter(params Params) {
	if params.Resume {
		// Unpause: the in-progress roster, cursor and clock stay as-is
		return
	}

	p.g = params.Level.Grid
	p.levelID = params.LevelID
	p.nextLevelID = params.NextLevelID
	p.score = params.Score
	p.resource = constants.ResourceMax
	p.clock = Clock{}
	p.typing = nil
	p.yank = nil

	p.player = Player{
		Pos:       params.Level.PlayerStart,
		Integrity: constants.PlayerIntegrity,
	}

	p.enemies = p.enemies[:0]
	p.nextID = playerEntityID + 1
	for _, s := range params.Level.Spawns {
		p.enemies = append(p.enemies, newEnemy(p.nextID, s))
		p.nextID++
	}

	p.ctx.Renderer.ClearAll()
}

func (p *playingMode) Exit() {
	// Transient state only; the world survives a pause round-trip
	p.msg.cancel(p.ctx.UI)
	if p.typing != nil {
		p.ctx.Parser.StopTyping()
	}
}

func (p *playingMode) Update(dt time.Duration) {
	p.clock.Advance(dt)

	p.resource += constants.ResourceRegenSec * dt.Seconds()
	if p.resource > constants.ResourceMax {
		p.resource = constants.ResourceMax
	}

	p.updateEnemies(dt)
	p.msg.update(p.ctx.UI, &p.clock)
	p.syncHUD()

	if p.player.Integrity <= 0 {
		p.ctx.Audio.Play(audio.CueGameOver)
		p.machine.SwitchTo(core.ModeGameOver, Params{
			Score:   p.score,
			LevelID: p.levelID,
		})
		return
	}

	if tile, err := p.g.At(p.player.Pos.X, p.player.Pos.Y); err == nil && tile.Kind == grid.KindExitNode {
		p.ctx.Audio.Play(audio.CueLevelComplete)
		p.machine.SwitchTo(core.ModeLevelComplete, Params{
			Score:       p.score,
			LevelID:     p.levelID,
			NextLevelID: p.nextLevelID,
		})
	}
}

func (p *playingMode) Render() {
	p.ctx.Renderer.DrawGrid(p.g)

	for _, e := range p.enemies {
		if !e.Active() {
			continue
		}
		flags := render.FlagHostile
		if e.hurtFlash > 0 {
			flags |= render.FlagHurt
		}
		p.ctx.Renderer.DrawEntity(e.ID, e.Pos, e.Glyph, flags)
	}

	under, _ := p.g.At(p.player.Pos.X, p.player.Pos.Y)
	p.ctx.Renderer.DrawEntity(playerEntityID, p.player.Pos, under.Glyph, render.FlagPlayer)
}

func (p *playingMode) HandleCommand(cmd input.Command) {
	switch cmd.Type {
	case input.CommandMove:
		p.moveCursor(cmd)

	case input.CommandDeleteChar, input.CommandOperatorMotion, input.CommandReplaceExecute:
		p.executeAction(cmd)

	case input.CommandCancel:
		p.machine.SwitchTo(core.ModePaused, Params{})

	case input.CommandTypeKey:
		if p.typing != nil && !cmd.Correct {
			p.ctx.Audio.Play(audio.CueError)
		}

	case input.CommandTypeComplete:
		p.finishTyping()

	case input.CommandExitTyping:
		p.abortTyping()
	}
	// ClearBuffer, ReplaceStart, Confirm and typing backspaces need no
	// world effect; the HUD reads the parser buffer each tick.
}

// === Cursor movement ===

func (p *playingMode) moveCursor(cmd input.Command) {
	res := motion.Resolve(p.g, cmd.Motion, p.player.Pos.X, p.player.Pos.Y, cmd.Count)
	if !res.Valid {
		return
	}
	target := p.clampThroughBarriers(res.EndX, res.EndY)
	if target == p.player.Pos {
		return
	}
	p.player.Pos = target
	p.checkContact()
}

// clampThroughBarriers walks from the cursor toward the motion target
// one tile at a time and stops before the first barrier. Motions are
// single-axis, so the walk is a straight line.
func (p *playingMode) clampThroughBarriers(endX, endY int) core.Position {
	pos := p.player.Pos
	for pos.X != endX || pos.Y != endY {
		next := pos
		next.X += sign(endX - pos.X)
		next.Y += sign(endY - pos.Y)
		if !p.g.InBounds(next.X, next.Y) || p.barrierAt(next) {
			break
		}
		pos = next
	}
	return pos
}

func (p *playingMode) barrierAt(pos core.Position) bool {
	t, err := p.g.At(pos.X, pos.Y)
	return err == nil && t.Kind == grid.KindBarrier
}

// === Action execution ===

func (p *playingMode) executeAction(cmd input.Command) {
	a := action.Resolve(p.g, p.player.Pos.X, p.player.Pos.Y, cmd)
	if a == nil {
		return
	}
	if float64(a.Cost) > p.resource {
		p.msg.show(p.ctx.UI, &p.clock, "insufficient energy", constants.DefaultMessageDuration)
		p.ctx.Audio.Play(audio.CueError)
		return
	}
	p.resource -= float64(a.Cost)
	p.apply(a)
}

// apply walks the normalized range in row-major order. An active enemy
// on a tile shadows it for the pass: the enemy takes the hit and the
// tile is left unmodified.
func (p *playingMode) apply(a *action.Action) {
	if a.Kind == action.KindYank {
		p.applyYank(a)
		return
	}
	if a.Kind == action.KindReplace {
		p.applyReplace(a)
		return
	}

	var run *typingRun
	if a.Kind == action.KindChange {
		run = &typingRun{word: p.rangeWord(a.Range)}
	}

	purged := 0
	for y := a.Range.MinY; y <= a.Range.MaxY; y++ {
		for x := a.Range.MinX; x <= a.Range.MaxX; x++ {
			if e := p.activeEnemyAt(x, y); e != nil {
				p.damageEnemy(e)
				continue
			}
			tile, err := p.g.At(x, y)
			if err != nil {
				continue
			}
			switch tile.Kind {
			case grid.KindBarrier, grid.KindExitNode:
				// Never mutated by range actions

			case grid.KindCorrupted:
				_ = p.g.Set(x, y, grid.Tile{Glyph: ' ', Kind: grid.KindPathway})
				p.score += constants.PurgeScore
				purged++

			case grid.KindDataNode:
				if run != nil && run.word != "" {
					run.saved = append(run.saved, savedTile{
						pos:  core.Position{X: x, Y: y},
						tile: tile,
					})
					_ = p.g.Set(x, y, grid.Tile{Glyph: ' ', Kind: grid.KindPathway})
				}

			case grid.KindPathway, grid.KindDecoration:
				// Deletion targets corrupted and data tiles only
			}
		}
	}

	if purged > 0 {
		p.ctx.Audio.Play(audio.CuePurge)
	}

	if run != nil && run.word != "" {
		p.typing = run
		p.ctx.Parser.StartTyping(run.word)
		p.msg.show(p.ctx.UI, &p.clock, "retype: "+run.word, constants.DefaultMessageDuration)
	}
}

// applyReplace rewrites the glyph of a single tile. Barriers and exit
// nodes stay immune; an enemy on the tile shadows it as usual.
func (p *playingMode) applyReplace(a *action.Action) {
	x, y := a.Range.MinX, a.Range.MinY
	if e := p.activeEnemyAt(x, y); e != nil {
		p.damageEnemy(e)
		return
	}
	tile, err := p.g.At(x, y)
	if err != nil || tile.Kind == grid.KindBarrier || tile.Kind == grid.KindExitNode {
		return
	}
	tile.Glyph = a.Char
	_ = p.g.Set(x, y, tile)
}

func (p *playingMode) applyYank(a *action.Action) {
	p.yank = p.yank[:0]
	for y := a.Range.MinY; y <= a.Range.MaxY; y++ {
		for x := a.Range.MinX; x <= a.Range.MaxX; x++ {
			if tile, err := p.g.At(x, y); err == nil {
				p.yank = append(p.yank, tile.Glyph)
			}
		}
	}
	p.msg.show(p.ctx.UI, &p.clock,
		fmt.Sprintf("yanked %d tiles", a.Range.Tiles()), constants.DefaultMessageDuration)
}

// rangeWord returns the retype phrase for a change action: the required
// word of the first word-start data node in the range.
func (p *playingMode) rangeWord(r action.Range) string {
	for y := r.MinY; y <= r.MaxY; y++ {
		for x := r.MinX; x <= r.MaxX; x++ {
			tile, err := p.g.At(x, y)
			if err != nil {
				continue
			}
			if tile.Kind == grid.KindDataNode && tile.WordStart && tile.RequiredWord != "" {
				return tile.RequiredWord
			}
		}
	}
	return ""
}

// === Typing ===

func (p *playingMode) finishTyping() {
	if p.typing == nil {
		return
	}
	for _, s := range p.typing.saved {
		_ = p.g.Set(s.pos.X, s.pos.Y, s.tile)
	}
	p.score += constants.WordBonus
	p.ctx.Audio.Play(audio.CueWordBonus)
	p.msg.show(p.ctx.UI, &p.clock, "node restored", constants.DefaultMessageDuration)
	p.typing = nil
	p.ctx.Parser.StopTyping()
}

func (p *playingMode) abortTyping() {
	if p.typing == nil {
		return
	}
	// Aborting leaves the blanked nodes blank; the bonus is forfeit
	p.typing = nil
	p.ctx.Parser.StopTyping()
	p.msg.show(p.ctx.UI, &p.clock, "retype aborted", constants.DefaultMessageDuration)
}

// === Enemies ===

func (p *playingMode) activeEnemyAt(x, y int) *Enemy {
	for _, e := range p.enemies {
		if e.Active() && e.Pos.X == x && e.Pos.Y == y {
			return e
		}
	}
	return nil
}

func (p *playingMode) damageEnemy(e *Enemy) {
	e.Health -= constants.RangeHitDamage
	e.hurtFlash = constants.ErrorFlashDuration
	p.ctx.Audio.Play(audio.CueEnemyHit)
	if e.Health <= 0 {
		e.Defeated = true
		p.score += constants.EnemyKillScore
		p.ctx.Renderer.RemoveEntity(e.ID)
	}
}

func (p *playingMode) updateEnemies(dt time.Duration) {
	for _, e := range p.enemies {
		if !e.Active() {
			continue
		}
		if e.hurtFlash > 0 {
			e.hurtFlash -= dt
		}
		if e.contactWait > 0 {
			e.contactWait -= dt
		}

		interval := e.stepInterval()
		if interval == 0 {
			p.contactDamage(e)
			continue
		}
		e.stepAccum += dt
		for e.stepAccum >= interval {
			e.stepAccum -= interval
			e.Pos = stepEnemy(p.g, e, p.player.Pos)
		}
		p.contactDamage(e)
	}
}

// checkContact applies contact damage after a cursor move.
func (p *playingMode) checkContact() {
	for _, e := range p.enemies {
		if e.Active() {
			p.contactDamage(e)
		}
	}
}

func (p *playingMode) contactDamage(e *Enemy) {
	if e.Pos != p.player.Pos || e.contactWait > 0 {
		return
	}
	p.player.Integrity -= constants.ContactDamage
	e.contactWait = constants.ContactCooldownMs * time.Millisecond
	p.ctx.Audio.Play(audio.CueError)
	p.msg.show(p.ctx.UI, &p.clock, "integrity breach", constants.DefaultMessageDuration)
}

// === HUD ===

func (p *playingMode) syncHUD() {
	p.ctx.UI.UpdateScore(p.score)
	p.ctx.UI.UpdateTimer(p.clock.Elapsed())
	integ := float64(p.player.Integrity) / float64(constants.PlayerIntegrity)
	if integ < 0 {
		integ = 0
	}
	p.ctx.UI.UpdateIntegrity(integ)
	p.ctx.UI.UpdateResource(p.resource / constants.ResourceMax)
}
