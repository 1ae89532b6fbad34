package raster

import (
	"image"
	"image/color"
)

// Pixmap is an RGBA pixel buffer with straight (un-premultiplied) alpha.
// A Pixmap is never modified after rasterization and may be shared.
type Pixmap struct {
	img *image.NRGBA
}

// NewPixmap wraps img. The image must not be modified afterwards.
func NewPixmap(img *image.NRGBA) *Pixmap {
	return &Pixmap{img: img}
}

// Width returns the width in pixels.
func (p *Pixmap) Width() int { return p.img.Rect.Dx() }

// Height returns the height in pixels.
func (p *Pixmap) Height() int { return p.img.Rect.Dy() }

// Len returns the pixel count.
func (p *Pixmap) Len() int { return p.Width() * p.Height() }

// At returns the pixel at (x, y) relative to the top-left corner.
// Coordinates outside the pixmap are transparent.
func (p *Pixmap) At(x, y int) color.NRGBA {
	b := p.img.Rect
	return p.img.NRGBAAt(b.Min.X+x, b.Min.Y+y)
}

// Image exposes the underlying image for read-only use.
func (p *Pixmap) Image() *image.NRGBA { return p.img }

// Bounds implements image.Image.
func (p *Pixmap) Bounds() image.Rectangle { return p.img.Rect }

// NRGBAAt returns the pixel at absolute image coordinates.
func (p *Pixmap) NRGBAAt(x, y int) color.NRGBA { return p.img.NRGBAAt(x, y) }

// Coverage sums alpha over all pixels, in units of fully opaque pixels.
// Anti-aliased edges contribute fractionally.
func (p *Pixmap) Coverage() float64 {
	var sum int
	for i := 3; i < len(p.img.Pix); i += 4 {
		sum += int(p.img.Pix[i])
	}
	return float64(sum) / 255
}

// Opaque counts pixels whose alpha is non-zero.
func (p *Pixmap) Opaque() int {
	n := 0
	for i := 3; i < len(p.img.Pix); i += 4 {
		if p.img.Pix[i] != 0 {
			n++
		}
	}
	return n
}
