// Package halfblock composites a pixmap into a cell grid two pixel rows per
// cell row.
//
// For destination row r and column c, pixel (c, 2r) becomes the foreground
// and pixel (c, 2r+1) the background of an '▀' cell. Transparency is
// respected per half:
//
//   - both pixels transparent: the cell is left exactly as it was
//   - top transparent: only the background is set
//   - bottom transparent: only the foreground is set
//
// Cells outside the buffer are dropped silently.
package halfblock

import (
	"image"
	"image/color"
	"time"

	"github.com/matzehuels/whisker/pkg/grid"
	"github.com/matzehuels/whisker/pkg/observability"
)

// Glyph fills the upper half of a cell with the foreground color.
const Glyph = '▀'

// Source is a pixel buffer with straight alpha. *image.NRGBA and
// *raster.Pixmap both satisfy it.
type Source interface {
	Bounds() image.Rectangle
	NRGBAAt(x, y int) color.NRGBA
}

// Draw composites src into buf over area and returns the number of cells
// written. src is expected to be area.Width pixels wide and 2·area.Height
// pixels tall; pixels it does not have count as transparent.
func Draw(src Source, area grid.Rect, buf *grid.Buffer) int {
	if area.IsEmpty() {
		return 0
	}
	start := time.Now()
	b := src.Bounds()

	at := func(x, y int) color.NRGBA {
		p := image.Pt(b.Min.X+x, b.Min.Y+y)
		if !p.In(b) {
			return color.NRGBA{}
		}
		return src.NRGBAAt(p.X, p.Y)
	}

	written := 0
	for r := 0; r < area.Height; r++ {
		for c := 0; c < area.Width; c++ {
			top, bottom := at(c, 2*r), at(c, 2*r+1)
			if top.A == 0 && bottom.A == 0 {
				continue
			}

			cell := buf.Cell(area.Left()+c, area.Top()+r)
			if cell == nil {
				continue
			}

			cell.SetRune(Glyph)
			if top.A != 0 {
				cell.SetFG(grid.RGB(top.R, top.G, top.B))
			}
			if bottom.A != 0 {
				cell.SetBG(grid.RGB(bottom.R, bottom.G, bottom.B))
			}
			written++
		}
	}

	observability.Render().OnComposite(written, time.Since(start))
	return written
}

// Widget draws a fixed pixmap into whatever area it is given.
type Widget struct {
	Source Source
}

// New returns a widget for src.
func New(src Source) Widget {
	return Widget{Source: src}
}

// Render composites the widget into buf over area.
func (w Widget) Render(area grid.Rect, buf *grid.Buffer) {
	if w.Source == nil {
		return
	}
	Draw(w.Source, area, buf)
}
