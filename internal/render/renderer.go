// Package render previews auto-tiled layers in a terminal. Each committed
// asset is drawn as the glyph its palette assigns.
package render

import (
	"tilesmith/internal/gamemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the number of screen rows reserved for the status bar.
const hudRows = 2

// Renderer draws a layer onto a tcell screen.
type Renderer struct {
	screen  tcell.Screen
	camera  *Camera
	palette Palette
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen, palette Palette) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen:  screen,
		camera:  NewCamera(0, 0, w, max(h-hudRows, 0)),
		palette: palette,
	}
}

// CenterOn recenters the camera on world position (x, y).
func (r *Renderer) CenterOn(x, y int) { r.camera.Center(x, y) }

// Pan scrolls the view by (dx, dy) cells.
func (r *Renderer) Pan(dx, dy int) { r.camera.Pan(dx, dy) }

// Resize adapts the viewport after the terminal changes size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(h-hudRows, 0)
}

// WorldToScreen converts world coordinates to screen coordinates.
// visible is false when the position falls outside the viewport.
func (r *Renderer) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	return r.camera.WorldToScreen(wx, wy)
}

// DrawFrame renders the layer and the status bar, then shows the screen.
func (r *Renderer) DrawFrame(gmap *gamemap.GameMap, status Status) {
	r.screen.Clear()
	r.drawMap(gmap)
	r.DrawHUD(status)
}

// drawMap renders every on-screen cell.
func (r *Renderer) drawMap(gmap *gamemap.GameMap) {
	for y := 0; y < gmap.Height; y++ {
		for x := 0; x < gmap.Width; x++ {
			cell := gmap.At(x, y)
			if cell.Empty() {
				continue
			}
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			r.putGlyph(sx, sy, r.palette.Glyph(*cell), groupStyle(cell.Group))
		}
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
