// Package render draws rasterized faces into terminal cell grids.
//
// # Overview
//
// Terminal cells are roughly twice as tall as they are wide, so a pixmap
// with twice as many rows as the grid maps naturally onto it when each cell
// shows two pixels. The [halfblock] subpackage does exactly that: the upper
// pixel becomes the cell's foreground under an upper-half-block glyph, the
// lower pixel its background.
//
//	entry, ok := store.Get(face.Neutral, area)
//	if ok {
//	    halfblock.Draw(entry.Pixmap, area, buf)
//	}
//	fmt.Print(buf.Render())
//
// [halfblock]: github.com/matzehuels/whisker/pkg/render/halfblock
package render
