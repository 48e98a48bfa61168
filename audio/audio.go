// Package audio plays short synthesized cues. It is a collaborator
// behind the Player interface; the game runs fine with the Noop player
// when audio initialization fails.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

// Cue identifies a gameplay sound.
type Cue uint8

const (
	CueError Cue = iota + 1
	CuePurge
	CueWordBonus
	CueEnemyHit
	CueLevelComplete
	CueGameOver
)

// Player receives gameplay cues.
type Player interface {
	Play(Cue)
}

// Noop discards all cues.
type Noop struct{}

func (Noop) Play(Cue) {}

// Engine synthesizes cues with beep sine tones.
type Engine struct {
	sampleRate beep.SampleRate
}

// NewEngine initializes the speaker. The returned error is not fatal to
// the game; callers fall back to Noop.
func NewEngine() (*Engine, error) {
	sampleRate := beep.SampleRate(44100)
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, errors.Wrap(err, "initializing speaker")
	}
	return &Engine{sampleRate: sampleRate}, nil
}

// Close shuts the speaker down.
func (e *Engine) Close() {
	speaker.Close()
}

func (e *Engine) Play(c Cue) {
	freq, dur := tone(c)
	sine, err := generators.SineTone(e.sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(e.sampleRate.N(dur), sine))
}

func tone(c Cue) (float64, time.Duration) {
	switch c {
	case CueError:
		return 220, 80 * time.Millisecond
	case CuePurge:
		return 880, 40 * time.Millisecond
	case CueWordBonus:
		return 1320, 120 * time.Millisecond
	case CueEnemyHit:
		return 440, 60 * time.Millisecond
	case CueLevelComplete:
		return 1760, 300 * time.Millisecond
	case CueGameOver:
		return 110, 500 * time.Millisecond
	}
	return 440, 50 * time.Millisecond
}
