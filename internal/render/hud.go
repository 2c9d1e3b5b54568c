package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Status is the summary shown beneath the map.
type Status struct {
	SetName   string
	Algorithm string
	Seed      int64
	Painted   int // cells in the resolved group
	Placed    int // cells that received an asset
	Message   string
}

// Line formats the status bar text.
func (s Status) Line() string {
	return fmt.Sprintf("[%s/%s]  seed %d  placed %d/%d",
		s.SetName, s.Algorithm, s.Seed, s.Placed, s.Painted)
}

// DrawHUD renders the status bar at the bottom of the screen.
func (r *Renderer) DrawHUD(s Status) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, tcell.ColorGray)
	line := s.Line()
	if s.Message != "" {
		line += "  " + s.Message
	}
	r.drawText(0, hudY+1, line, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col++
	}
}
