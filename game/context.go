package game

import (
	"github.com/pkg/errors"

	"github.com/lowrez/vi-sector/audio"
	"github.com/lowrez/vi-sector/input"
	"github.com/lowrez/vi-sector/level"
	"github.com/lowrez/vi-sector/render"
)

// Context bundles the collaborators every mode needs. Construction
// fails fast on missing dependencies, before any frame runs.
type Context struct {
	Renderer render.Renderer
	UI       render.UI
	Levels   level.Source
	Audio    audio.Player
	Parser   *input.Machine
}

// NewContext validates and assembles the collaborator set. A nil audio
// player downgrades to the Noop engine; everything else is required.
func NewContext(r render.Renderer, ui render.UI, levels level.Source, snd audio.Player, parser *input.Machine) (*Context, error) {
	if r == nil {
		return nil, errors.New("game: renderer is required")
	}
	if ui == nil {
		return nil, errors.New("game: ui is required")
	}
	if levels == nil {
		return nil, errors.New("game: level source is required")
	}
	if parser == nil {
		return nil, errors.New("game: input parser is required")
	}
	if snd == nil {
		snd = audio.Noop{}
	}
	return &Context{
		Renderer: r,
		UI:       ui,
		Levels:   levels,
		Audio:    snd,
		Parser:   parser,
	}, nil
}
