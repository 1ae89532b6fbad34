// Package pkg provides the libraries behind whisker, a terminal cat face.
//
// # Overview
//
// A frame flows through four stages:
//
//	[face] expression -> configuration -> SVG document
//	         ↓
//	[raster] document -> RGBA pixmap (cols × 2·rows pixels)
//	         ↓
//	[cache] recently rasterized pixmaps, keyed by expression and viewport
//	         ↓
//	[render/halfblock] pixmap -> half-block cells in a [grid] buffer
//
// Supporting packages:
//
//   - [config]: TOML settings and color parsing
//   - [server]: HTTP preview of rendered faces
//   - [httputil]: JSON error responses and ETag handling
//   - [observability]: hooks for render, cache and HTTP events
//   - [errors]: structured errors with codes
//   - [buildinfo]: version information set at link time
//
// # Quick Start
//
//	store, err := cache.NewStore()
//	if err != nil {
//	    return err
//	}
//	area := grid.NewRect(40, 20)
//	buf := grid.NewBuffer(area)
//	if entry, ok := store.Get(face.Angry, area); ok {
//	    halfblock.Draw(entry.Pixmap, area, buf)
//	}
//	fmt.Println(buf.Render())
package pkg
