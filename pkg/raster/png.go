package raster

import (
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/whisker/pkg/errors"
)

// PNGOption configures PNG encoding.
type PNGOption func(*pngEncoder)

type pngEncoder struct {
	scale      int
	background color.Color
}

// WithScale upscales the pixmap by an integer factor using nearest-neighbor
// sampling, so each pixel stays a crisp square (default 1).
func WithScale(s int) PNGOption {
	return func(e *pngEncoder) { e.scale = s }
}

// WithBackground composites the pixmap over a solid color instead of
// leaving transparent pixels transparent.
func WithBackground(c color.Color) PNGOption {
	return func(e *pngEncoder) { e.background = c }
}

// EncodePNG writes pix to w as PNG.
func EncodePNG(w io.Writer, pix *Pixmap, opts ...PNGOption) error {
	e := pngEncoder{scale: 1}
	for _, opt := range opts {
		opt(&e)
	}
	if err := errors.ValidateScale(e.scale); err != nil {
		return err
	}

	var img image.Image = pix.Image()
	if e.scale > 1 {
		img = imaging.Resize(img, pix.Width()*e.scale, pix.Height()*e.scale, imaging.NearestNeighbor)
	}
	if e.background != nil {
		b := img.Bounds()
		img = imaging.Overlay(imaging.New(b.Dx(), b.Dy(), e.background), img, image.Pt(0, 0), 1.0)
	}

	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return nil
}
