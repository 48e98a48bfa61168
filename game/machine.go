package game

import (
	"log"
	"time"

	"github.com/lowrez/vi-sector/core"
	"github.com/lowrez/vi-sector/input"
	"github.com/lowrez/vi-sector/level"
)

// Params carries transition payloads between modes.
type Params struct {
	LevelID     int
	NextLevelID int
	Score       int
	Level       *level.Level // set by loading for the playing mode
	Resume      bool         // unpause: keep the playing instance as-is
}

// Handler is the per-mode contract. Exit side-effects of the old mode
// complete before Enter of the new mode begins.
type Handler interface {
	Enter(p Params)
	Exit()
	Update(dt time.Duration)
	Render()
	HandleCommand(cmd input.Command)
}

// Machine owns the active game mode and dispatches frames and commands
// to it through a handler table keyed by mode.
type Machine struct {
	ctx      *Context
	handlers map[core.Mode]Handler
	active   core.Mode
	current  Handler
}

// NewMachine builds the handler table and enters the menu.
func NewMachine(ctx *Context) *Machine {
	m := &Machine{
		ctx:      ctx,
		handlers: make(map[core.Mode]Handler),
	}

	playing := newPlaying(ctx, m)
	m.handlers[core.ModeMenu] = newMenu(ctx, m)
	m.handlers[core.ModeLoading] = newLoading(ctx, m)
	m.handlers[core.ModePlaying] = playing
	m.handlers[core.ModePaused] = newPaused(ctx, m)
	m.handlers[core.ModeGameOver] = newGameOver(ctx, m)
	m.handlers[core.ModeLevelComplete] = newLevelComplete(ctx, m)

	m.active = core.ModeMenu
	m.current = m.handlers[core.ModeMenu]
	m.current.Enter(Params{})
	return m
}

// Active returns the current mode.
func (m *Machine) Active() core.Mode { return m.active }

// SwitchTo transitions atomically to the named mode. An unknown target
// is a configuration fault; the machine logs it and falls back to the
// menu rather than leaving no mode active.
func (m *Machine) SwitchTo(mode core.Mode, p Params) {
	h, ok := m.handlers[mode]
	if !ok {
		log.Printf("game: transition to unknown mode %d, falling back to menu", mode)
		mode = core.ModeMenu
		h = m.handlers[mode]
		p = Params{}
	}
	m.current.Exit()
	m.active = mode
	m.current = h
	h.Enter(p)
}

// HandleKey feeds one keystroke to the parser. Commands are drained on
// the next Update, once per tick.
func (m *Machine) HandleKey(k input.Key) {
	m.ctx.Parser.HandleKey(k)
}

// Update drains parsed commands into the active mode, then advances it.
func (m *Machine) Update(dt time.Duration) {
	for _, cmd := range m.ctx.Parser.Drain() {
		m.current.HandleCommand(cmd)
	}
	m.current.Update(dt)
	m.ctx.UI.UpdateCommandBuffer(m.ctx.Parser.Pending())
}

// Render draws the active mode.
func (m *Machine) Render() {
	m.current.Render()
}

// CommandBufferDisplay exposes the pending keystroke sequence.
func (m *Machine) CommandBufferDisplay() string {
	return m.ctx.Parser.Pending()
}
