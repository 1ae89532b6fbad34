package grid

import "fmt"

// Rect is an area of the terminal measured in cells. X and Y are the
// column and row of the top-left cell. Rects are comparable with ==.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect returns a rect anchored at the origin.
func NewRect(width, height int) Rect {
	return Rect{Width: width, Height: height}
}

// Left returns the first column.
func (r Rect) Left() int { return r.X }

// Top returns the first row.
func (r Rect) Top() int { return r.Y }

// Right returns the column just past the last one.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the row just past the last one.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Area returns the number of cells covered.
func (r Rect) Area() int {
	if r.IsEmpty() {
		return 0
	}
	return r.Width * r.Height
}

// IsEmpty reports whether r covers no cells.
func (r Rect) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}
