package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lowrez/vi-sector/audio"
	"github.com/lowrez/vi-sector/game"
	"github.com/lowrez/vi-sector/input"
	"github.com/lowrez/vi-sector/level"
	"github.com/lowrez/vi-sector/render"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

func main() {
	debugLog := flag.Bool("debug", false, "write debug log to logs/vi-sector.log")
	flag.Parse()

	setupLogging(*debugLog)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// The terminal must be restored before a panic reaches the user,
	// otherwise the trace is unreadable.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "panic: %v\n%s", r, debug.Stack())
			os.Exit(1)
		}
		screen.Fini()
	}()

	var snd audio.Player
	engine, err := audio.NewEngine()
	if err != nil {
		// Non-fatal, game can run without sound
		log.Printf("audio initialization failed: %v", err)
		snd = audio.Noop{}
	} else {
		snd = engine
		defer engine.Close()
	}

	display := render.NewScreen(screen)
	ctx, err := game.NewContext(display, display, level.Builtin(), snd, input.NewMachine())
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to assemble game: %v\n", err)
		os.Exit(1)
	}

	run(screen, display, game.NewMachine(ctx))
}

func setupLogging(enabled bool) {
	if !enabled {
		log.SetOutput(io.Discard)
		return
	}
	if err := os.MkdirAll("logs", 0o755); err != nil {
		log.SetOutput(io.Discard)
		return
	}
	f, err := os.OpenFile(filepath.Join("logs", "vi-sector.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}

func run(screen tcell.Screen, display *render.Screen, machine *game.Machine) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					return
				}
				if k, ok := translateKey(ev); ok {
					machine.HandleKey(k)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			machine.Update(now.Sub(last))
			last = now
			machine.Render()
			display.Show()
		}
	}
}

// translateKey maps a tcell key event into the parser's key vocabulary.
func translateKey(ev *tcell.EventKey) (input.Key, bool) {
	switch ev.Key() {
	case tcell.KeyEscape:
		return input.Esc, true
	case tcell.KeyEnter:
		return input.Enter, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return input.Backspace, true
	case tcell.KeyRune:
		return input.RuneKey(ev.Rune()), true
	}
	return input.Key{}, false
}
