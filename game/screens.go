package game

import (
	"fmt"
	"log"
	"time"

	"github.com/lowrez/vi-sector/core"
	"github.com/lowrez/vi-sector/input"
)

// The non-playing modes are thin: a message, a confirm path, and a
// transition. They share the context/machine pair and ignore per-frame
// updates.

type menuMode struct {
	ctx     *Context
	machine *Machine
}

func newMenu(ctx *Context, m *Machine) *menuMode { return &menuMode{ctx: ctx, machine: m} }

func (md *menuMode) Enter(Params) {
	md.ctx.Renderer.ClearAll()
	md.ctx.UI.ShowMessage("VI-SECTOR  -  Enter to jack in")
}

func (md *menuMode) Exit()                  { md.ctx.UI.ClearMessage() }
func (md *menuMode) Update(time.Duration)   {}
func (md *menuMode) Render()                {}

func (md *menuMode) HandleCommand(cmd input.Command) {
	if cmd.Type == input.CommandConfirm {
		md.machine.SwitchTo(core.ModeLoading, Params{LevelID: 1})
	}
}

type loadingMode struct {
	ctx     *Context
	machine *Machine
	params  Params
}

func newLoading(ctx *Context, m *Machine) *loadingMode { return &loadingMode{ctx: ctx, machine: m} }

func (md *loadingMode) Enter(p Params) {
	md.params = p
	md.ctx.UI.ShowMessage(fmt.Sprintf("loading sector %d ...", p.LevelID))
}

func (md *loadingMode) Exit() { md.ctx.UI.ClearMessage() }

// Update performs the load; the playing transition fires in the tick
// after entry, once the level and its spawns are ready.
func (md *loadingMode) Update(time.Duration) {
	lvl, err := md.ctx.Levels.Load(md.params.LevelID)
	if err != nil {
		log.Printf("game: loading level %d: %v", md.params.LevelID, err)
		md.machine.SwitchTo(core.ModeMenu, Params{})
		return
	}
	md.machine.SwitchTo(core.ModePlaying, Params{
		LevelID:     md.params.LevelID,
		NextLevelID: lvl.NextID,
		Score:       md.params.Score,
		Level:       lvl,
	})
}

func (md *loadingMode) Render()                      {}
func (md *loadingMode) HandleCommand(input.Command)  {}

type pausedMode struct {
	ctx     *Context
	machine *Machine
}

func newPaused(ctx *Context, m *Machine) *pausedMode { return &pausedMode{ctx: ctx, machine: m} }

func (md *pausedMode) Enter(Params) {
	md.ctx.UI.ShowMessage("PAUSED  -  Esc to resume")
}

func (md *pausedMode) Exit()                { md.ctx.UI.ClearMessage() }
func (md *pausedMode) Update(time.Duration) {}
func (md *pausedMode) Render()              {}

func (md *pausedMode) HandleCommand(cmd input.Command) {
	switch cmd.Type {
	case input.CommandCancel, input.CommandConfirm:
		md.machine.SwitchTo(core.ModePlaying, Params{Resume: true})
	}
}

type gameOverMode struct {
	ctx     *Context
	machine *Machine
	params  Params
}

func newGameOver(ctx *Context, m *Machine) *gameOverMode { return &gameOverMode{ctx: ctx, machine: m} }

func (md *gameOverMode) Enter(p Params) {
	md.params = p
	md.ctx.UI.ShowMessage(fmt.Sprintf(
		"SYSTEM FAILURE  -  score %d  -  Enter to retry, Esc for menu", p.Score))
}

func (md *gameOverMode) Exit()                { md.ctx.UI.ClearMessage() }
func (md *gameOverMode) Update(time.Duration) {}
func (md *gameOverMode) Render()              {}

func (md *gameOverMode) HandleCommand(cmd input.Command) {
	switch cmd.Type {
	case input.CommandConfirm:
		md.machine.SwitchTo(core.ModeLoading, Params{LevelID: md.params.LevelID})
	case input.CommandCancel:
		md.machine.SwitchTo(core.ModeMenu, Params{})
	}
}

type levelCompleteMode struct {
	ctx     *Context
	machine *Machine
	params  Params
}

func newLevelComplete(ctx *Context, m *Machine) *levelCompleteMode {
	return &levelCompleteMode{ctx: ctx, machine: m}
}

func (md *levelCompleteMode) Enter(p Params) {
	md.params = p
	msg := fmt.Sprintf("SECTOR %d CLEAR  -  score %d  -  Enter to continue", p.LevelID, p.Score)
	if p.NextLevelID == 0 {
		msg = fmt.Sprintf("ALL SECTORS CLEAR  -  final score %d  -  Enter for menu", p.Score)
	}
	md.ctx.UI.ShowMessage(msg)
}

func (md *levelCompleteMode) Exit()                { md.ctx.UI.ClearMessage() }
func (md *levelCompleteMode) Update(time.Duration) {}
func (md *levelCompleteMode) Render()              {}

func (md *levelCompleteMode) HandleCommand(cmd input.Command) {
	switch cmd.Type {
	case input.CommandConfirm:
		if md.params.NextLevelID != 0 {
			md.machine.SwitchTo(core.ModeLoading, Params{
				LevelID: md.params.NextLevelID,
				Score:   md.params.Score,
			})
			return
		}
		md.machine.SwitchTo(core.ModeMenu, Params{})
	case input.CommandCancel:
		md.machine.SwitchTo(core.ModeMenu, Params{})
	}
}
