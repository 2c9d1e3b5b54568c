package render

import (
	"bufio"
	"io"
	"strings"

	"tilesmith/internal/gamemap"

	"github.com/mattn/go-runewidth"
)

// WriteText writes the layer as plain text, one line per row and CellWidth
// columns per cell. Trailing blanks are trimmed from each line.
func WriteText(w io.Writer, gmap *gamemap.GameMap, palette Palette) error {
	bw := bufio.NewWriter(w)
	var line strings.Builder
	for y := 0; y < gmap.Height; y++ {
		line.Reset()
		for x := 0; x < gmap.Width; x++ {
			line.WriteString(runewidth.FillRight(palette.Glyph(*gmap.At(x, y)), CellWidth))
		}
		if _, err := bw.WriteString(strings.TrimRight(line.String(), " ")); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
