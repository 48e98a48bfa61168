package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lowrez/vi-sector/grid"
)

var (
	styleDefault   = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	stylePathway   = styleDefault.Foreground(tcell.ColorGray)
	styleDataNode  = styleDefault.Foreground(tcell.ColorLightCyan)
	styleCorrupted = styleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleBarrier   = styleDefault.Foreground(tcell.ColorDarkGray)
	styleExit      = styleDefault.Foreground(tcell.ColorGreen).Bold(true).Blink(true)
	styleDecor     = styleDefault.Foreground(tcell.ColorDimGray)
	stylePlayer    = styleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	styleEnemy     = styleDefault.Foreground(tcell.ColorOrange).Bold(true)
	styleHurt      = styleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed)
	styleHUD       = styleDefault.Foreground(tcell.ColorWhite)
	styleMessage   = styleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

func tileStyle(t grid.Tile) tcell.Style {
	switch t.Kind {
	case grid.KindDataNode:
		return styleDataNode
	case grid.KindCorrupted:
		return styleCorrupted
	case grid.KindBarrier:
		return styleBarrier
	case grid.KindExitNode:
		return styleExit
	case grid.KindDecoration:
		return styleDecor
	}
	return stylePathway
}

// meterColor blends red through yellow to green across [0,1] for the
// integrity and resource bars.
func meterColor(percent float64) tcell.Color {
	if percent < 0 {
		percent = 0
	} else if percent > 1 {
		percent = 1
	}
	low := colorful.Hsv(10, 0.9, 0.9)   // red
	high := colorful.Hsv(120, 0.8, 0.8) // green
	c := low.BlendHsv(high, percent).Clamped()
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
