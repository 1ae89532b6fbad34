package config

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/matzehuels/whisker/pkg/errors"
	"github.com/matzehuels/whisker/pkg/grid"
)

// ParseColor accepts "#rgb", "#rrggbb" or an SVG color name. The empty
// string yields an unset color.
func ParseColor(s string) (grid.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return grid.Color{}, nil
	}

	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return grid.RGB(c.R, c.G, c.B), nil
	}

	hex := s
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) != 4 && len(hex) != 7 {
		return grid.Color{}, errors.New(errors.ErrCodeInvalidColor, "unrecognized color %q", s)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return grid.Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "unrecognized color %q", s)
	}
	r, g, b := c.RGB255()
	return grid.RGB(r, g, b), nil
}
