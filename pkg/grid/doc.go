// Package grid models a terminal as a rectangle of text cells.
//
// A [Buffer] stores one [Cell] per column/row inside its [Rect]. Each cell
// holds a rune plus optional foreground and background colors; an unset
// [Color] means "leave whatever the terminal shows". [Buffer.Render] turns
// the buffer into styled rows via lipgloss, coalescing runs of cells that
// share a style.
package grid
