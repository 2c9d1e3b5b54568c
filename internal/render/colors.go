package render

import (
	"tilesmith/internal/autotile"
	"tilesmith/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// Glyphs used when the palette has no entry.
const (
	MissingGlyph  = "?" // placed asset without a palette entry
	UnplacedGlyph = "." // painted cell the auto-tiler left empty
	EmptyGlyph    = " "
)

// Palette maps committed assets to the glyphs that stand in for their
// images, plus an optional glyph per group for cells with no asset yet.
type Palette struct {
	Assets map[autotile.AssetRef]string
	Groups map[int]string
}

// NewPalette returns an empty palette.
func NewPalette() Palette {
	return Palette{
		Assets: make(map[autotile.AssetRef]string),
		Groups: make(map[int]string),
	}
}

// Glyph returns the glyph for one cell.
func (p Palette) Glyph(c gamemap.Cell) string {
	if c.Placed {
		if g, ok := p.Assets[c.Asset]; ok && g != "" {
			return g
		}
		return MissingGlyph
	}
	if c.Empty() {
		return EmptyGlyph
	}
	if g, ok := p.Groups[c.Group]; ok && g != "" {
		return g
	}
	return UnplacedGlyph
}

// groupColors tints glyphs by group so neighbouring sets stay apart.
var groupColors = []tcell.Color{
	tcell.ColorWhite,
	tcell.ColorLightGreen,
	tcell.ColorLightSkyBlue,
	tcell.ColorSandyBrown,
	tcell.ColorPlum,
	tcell.ColorKhaki,
}

// groupStyle returns the drawing style for cells of group.
func groupStyle(group int) tcell.Style {
	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	if group == gamemap.NoGroup {
		return style
	}
	idx := group % len(groupColors)
	if idx < 0 {
		idx += len(groupColors)
	}
	return style.Foreground(groupColors[idx])
}
