// Package raster turns face documents into pixmaps.
//
// [Rasterize] parses an SVG document with oksvg and fills and strokes its
// paths with rasterx's anti-aliasing scanner. The document's logical canvas
// ([face.CanvasWidth] × [face.CanvasHeight]) is mapped onto the requested
// pixel size with independent X and Y scale factors, so the output is
// stretched rather than letterboxed:
//
//	pix, err := raster.Rasterize(docs.Get(face.Neutral), 40, 40)
//
// Pixmaps store un-premultiplied RGBA; a pixel with alpha 0 is fully
// transparent.
//
// Failures are reported as *errors.Error with code INVALID_DOCUMENT (the
// markup cannot be parsed) or ALLOCATION_FAILED (the requested size is zero
// or too large). Neither is fatal to a render loop.
//
// [EncodePNG] writes a pixmap as PNG via imaging, optionally upscaled and
// composited onto a solid backdrop.
package raster
