package game

import (
	"time"

	"github.com/lowrez/vi-sector/render"
)

// messageTimer is the single active slot for timed status messages.
// Showing a new message cancels any pending expiry; there is never more
// than one live timer.
type messageTimer struct {
	active   bool
	deadline time.Duration
}

func (t *messageTimer) show(ui render.UI, clock *Clock, text string, d time.Duration) {
	ui.ShowMessage(text)
	t.active = true
	t.deadline = clock.Elapsed() + d
}

func (t *messageTimer) update(ui render.UI, clock *Clock) {
	if t.active && clock.Elapsed() >= t.deadline {
		t.active = false
		ui.ClearMessage()
	}
}

func (t *messageTimer) cancel(ui render.UI) {
	if t.active {
		t.active = false
		ui.ClearMessage()
	}
}
