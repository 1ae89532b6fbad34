package grid

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Blank is the rune of an untouched cell.
const Blank = ' '

// Cell is one terminal cell.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
}

// SetRune sets the glyph.
func (c *Cell) SetRune(r rune) { c.Rune = r }

// SetFG sets the foreground color.
func (c *Cell) SetFG(col Color) { c.FG = col }

// SetBG sets the background color.
func (c *Cell) SetBG(col Color) { c.BG = col }

// Reset returns the cell to a blank, uncolored state.
func (c *Cell) Reset() { *c = Cell{Rune: Blank} }

// Buffer is a rectangle of cells addressed by absolute terminal coordinates.
type Buffer struct {
	area  Rect
	cells []Cell
}

// NewBuffer returns a buffer of blank cells covering area.
func NewBuffer(area Rect) *Buffer {
	b := &Buffer{area: area, cells: make([]Cell, area.Area())}
	for i := range b.cells {
		b.cells[i].Rune = Blank
	}
	return b
}

// Area returns the rect covered by the buffer.
func (b *Buffer) Area() Rect { return b.area }

// Cell returns the cell at column x, row y, or nil when (x, y) lies
// outside the buffer.
func (b *Buffer) Cell(x, y int) *Cell {
	if !b.area.Contains(x, y) {
		return nil
	}
	return &b.cells[(y-b.area.Y)*b.area.Width+(x-b.area.X)]
}

// Fill sets the background of every cell.
func (b *Buffer) Fill(bg Color) {
	for i := range b.cells {
		b.cells[i].BG = bg
	}
}

// Reset blanks every cell.
func (b *Buffer) Reset() {
	for i := range b.cells {
		b.cells[i].Reset()
	}
}

// Row returns the runes of row y as a plain string, without styling.
func (b *Buffer) Row(y int) string {
	if y < b.area.Y || y >= b.area.Bottom() {
		return ""
	}
	start := (y - b.area.Y) * b.area.Width
	var sb strings.Builder
	for _, c := range b.cells[start : start+b.area.Width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// Render returns the buffer as newline-separated rows styled with the
// default lipgloss renderer.
func (b *Buffer) Render() string {
	return b.RenderWith(lipgloss.DefaultRenderer())
}

// RenderWith styles the buffer with r. Adjacent cells with equal colors are
// rendered as a single run. Rows are joined by "\n" with no trailing
// newline.
func (b *Buffer) RenderWith(r *lipgloss.Renderer) string {
	if b.area.IsEmpty() {
		return ""
	}

	var out strings.Builder
	var run strings.Builder
	for row := 0; row < b.area.Height; row++ {
		if row > 0 {
			out.WriteByte('\n')
		}
		line := b.cells[row*b.area.Width : (row+1)*b.area.Width]

		var fg, bg Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if !fg.set && !bg.set {
				out.WriteString(run.String())
			} else {
				style := r.NewStyle().Foreground(fg.lipgloss()).Background(bg.lipgloss())
				out.WriteString(style.Render(run.String()))
			}
			run.Reset()
		}

		for i, c := range line {
			if i == 0 || c.FG != fg || c.BG != bg {
				flush()
				fg, bg = c.FG, c.BG
			}
			run.WriteRune(c.Rune)
		}
		flush()
	}
	return out.String()
}
