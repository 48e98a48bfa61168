package game

import (
	"testing"
	"time"

	"github.com/lowrez/vi-sector/core"
	"github.com/lowrez/vi-sector/input"
	"github.com/lowrez/vi-sector/level"
)

func singleLevel() map[int]*level.Level {
	return map[int]*level.Level{1: testLevel(0, "    ")}
}

func TestMachineStartsInMenu(t *testing.T) {
	f := newFixture(t, singleLevel())
	if f.machine.Active() != core.ModeMenu {
		t.Fatalf("Active() = %v, want menu", f.machine.Active())
	}
	if f.ui.message == "" {
		t.Error("menu should show a title message")
	}
}

func TestMenuConfirmReachesPlaying(t *testing.T) {
	f := newFixture(t, singleLevel())

	// Confirm switches to loading; loading's update performs the load
	// and lands in playing within the same tick.
	f.press(input.Enter)
	if f.machine.Active() != core.ModePlaying {
		t.Fatalf("Active() = %v, want playing", f.machine.Active())
	}
}

func TestLoadingFailureFallsBackToMenu(t *testing.T) {
	f := newFixture(t, map[int]*level.Level{})
	f.press(input.Enter)
	if f.machine.Active() != core.ModeMenu {
		t.Fatalf("Active() = %v, want menu after failed load", f.machine.Active())
	}
}

func TestUnknownModeFallsBackToMenu(t *testing.T) {
	f := newFixture(t, singleLevel())
	f.press(input.Enter)

	f.machine.SwitchTo(core.Mode(99), Params{})
	if f.machine.Active() != core.ModeMenu {
		t.Fatalf("Active() = %v, want menu fallback", f.machine.Active())
	}
}

func TestPauseRoundTripPreservesSession(t *testing.T) {
	f := newFixture(t, singleLevel())
	f.press(input.Enter)

	p := f.machine.handlers[core.ModePlaying].(*playingMode)
	p.score = 75
	f.machine.Update(100 * time.Millisecond)
	elapsed := p.clock.Elapsed()

	f.press(input.Esc)
	if f.machine.Active() != core.ModePaused {
		t.Fatalf("Active() = %v, want paused", f.machine.Active())
	}

	// Paused frames must not advance the session clock
	f.machine.Update(5 * time.Second)
	f.machine.Update(5 * time.Second)
	if p.clock.Elapsed() != elapsed {
		t.Errorf("clock advanced while paused: %v -> %v", elapsed, p.clock.Elapsed())
	}

	f.press(input.Esc)
	if f.machine.Active() != core.ModePlaying {
		t.Fatalf("Active() = %v, want playing after unpause", f.machine.Active())
	}
	if p.score != 75 {
		t.Errorf("score = %d after unpause, want 75", p.score)
	}
	// The unpause keystroke itself ticks one frame
	if p.clock.Elapsed() != elapsed+time.Millisecond {
		t.Errorf("clock = %v after unpause, want %v", p.clock.Elapsed(), elapsed+time.Millisecond)
	}
}

func TestGameOverCapturesScoreAndRetries(t *testing.T) {
	f := newFixture(t, singleLevel())
	f.press(input.Enter)

	p := f.machine.handlers[core.ModePlaying].(*playingMode)
	p.score = 125
	p.player.Integrity = 0
	f.machine.Update(time.Millisecond)

	if f.machine.Active() != core.ModeGameOver {
		t.Fatalf("Active() = %v, want game over", f.machine.Active())
	}

	// Retry reloads the same level with a fresh score
	f.press(input.Enter)
	if f.machine.Active() != core.ModePlaying {
		t.Fatalf("Active() = %v, want playing after retry", f.machine.Active())
	}
	if p.score != 0 {
		t.Errorf("score = %d after retry, want 0", p.score)
	}
	if p.player.Integrity <= 0 {
		t.Errorf("integrity = %d after retry, want full", p.player.Integrity)
	}
}

func TestGameOverCancelReturnsToMenu(t *testing.T) {
	f := newFixture(t, singleLevel())
	f.press(input.Enter)

	p := f.machine.handlers[core.ModePlaying].(*playingMode)
	p.player.Integrity = 0
	f.machine.Update(time.Millisecond)

	f.press(input.Esc)
	if f.machine.Active() != core.ModeMenu {
		t.Fatalf("Active() = %v, want menu", f.machine.Active())
	}
}

func TestLevelCompleteAdvancesChain(t *testing.T) {
	levels := map[int]*level.Level{
		1: testLevel(2, " X"),
		2: testLevel(0, "    "),
	}
	f := newFixture(t, levels)
	f.press(input.Enter)

	p := f.machine.handlers[core.ModePlaying].(*playingMode)
	p.score = 50
	f.press(runes("l")...) // step onto the exit node

	if f.machine.Active() != core.ModeLevelComplete {
		t.Fatalf("Active() = %v, want level complete", f.machine.Active())
	}

	f.press(input.Enter)
	if f.machine.Active() != core.ModePlaying {
		t.Fatalf("Active() = %v, want playing in next level", f.machine.Active())
	}
	if p.levelID != 2 {
		t.Errorf("levelID = %d, want 2", p.levelID)
	}
	if p.score != 50 {
		t.Errorf("score = %d, want 50 carried over", p.score)
	}
}

func TestFinalLevelCompleteReturnsToMenu(t *testing.T) {
	f := newFixture(t, map[int]*level.Level{1: testLevel(0, " X")})
	f.press(input.Enter)
	f.press(runes("l")...)

	if f.machine.Active() != core.ModeLevelComplete {
		t.Fatalf("Active() = %v, want level complete", f.machine.Active())
	}
	f.press(input.Enter)
	if f.machine.Active() != core.ModeMenu {
		t.Fatalf("Active() = %v, want menu after final level", f.machine.Active())
	}
}

func TestCommandBufferReachesHUD(t *testing.T) {
	f := newFixture(t, singleLevel())
	f.press(input.Enter)

	f.press(runes("2d")...)
	if f.ui.buffer != "2d" {
		t.Errorf("command buffer = %q, want %q", f.ui.buffer, "2d")
	}
}
