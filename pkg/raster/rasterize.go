package raster

import (
	"encoding/xml"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"

	"github.com/matzehuels/whisker/pkg/errors"
	"github.com/matzehuels/whisker/pkg/face"
)

// MaxPixels caps the size of a single pixmap.
const MaxPixels = 1 << 24

// Rasterizer renders documents to pixmaps of a given size.
type Rasterizer interface {
	Rasterize(doc face.Document, width, height int) (*Pixmap, error)
}

// Engine is the default Rasterizer backed by oksvg and rasterx.
type Engine struct{}

// Rasterize implements Rasterizer.
func (Engine) Rasterize(doc face.Document, width, height int) (*Pixmap, error) {
	return Rasterize(doc, width, height)
}

var _ Rasterizer = Engine{}

// Rasterize parses doc and renders it into a width × height pixmap.
func Rasterize(doc face.Document, width, height int) (pix *Pixmap, err error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New(errors.ErrCodeAllocationFailed, "cannot allocate %dx%d pixmap", width, height)
	}
	if width > MaxPixels/height {
		return nil, errors.New(errors.ErrCodeAllocationFailed, "pixmap %dx%d exceeds %d pixels", width, height, MaxPixels)
	}

	if err := checkPaths(doc); err != nil {
		return nil, err
	}
	icon, err := oksvg.ReadIconStream(strings.NewReader(string(doc)), oksvg.StrictErrorMode)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "parse svg")
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidDocument, "document has no usable viewBox")
	}

	// The engine panics on some degenerate geometry; treat that as a bad
	// document rather than taking the process down.
	defer func() {
		if r := recover(); r != nil {
			pix = nil
			err = errors.Wrap(errors.ErrCodeInvalidDocument, fmt.Errorf("%v", r), "rasterize svg")
		}
	}()

	icon.Transform = rasterx.Identity.Scale(
		float64(width)/face.CanvasWidth,
		float64(height)/face.CanvasHeight,
	)

	bounds := image.Rect(0, 0, width, height)
	rgba := image.NewRGBA(bounds)
	scanner := rasterx.NewScannerGV(width, height, rgba, bounds)
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)

	// rasterx composites premultiplied; consumers want straight alpha.
	out := image.NewNRGBA(bounds)
	xdraw.Draw(out, bounds, rgba, image.Point{}, xdraw.Src)
	return NewPixmap(out), nil
}

// checkPaths compiles the d attribute of every path element. oksvg drops
// paths whose data it cannot compile and still reports success, which would
// turn a bad document into a blank pixmap.
func checkPaths(doc face.Document) error {
	dec := xml.NewDecoder(strings.NewReader(string(doc)))
	var cursor oksvg.PathCursor
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDocument, err, "parse svg")
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "path" {
			continue
		}
		for _, attr := range se.Attr {
			if attr.Name.Local != "d" {
				continue
			}
			if err := cursor.CompilePath(attr.Value); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidDocument, err, "path data %q", attr.Value)
			}
		}
	}
}
