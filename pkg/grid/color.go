package grid

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/lipgloss"
)

// Color is an optional 24-bit color. The zero value is unset.
type Color struct {
	r, g, b uint8
	set     bool
}

// RGB returns a set color.
func RGB(r, g, b uint8) Color {
	return Color{r: r, g: g, b: b, set: true}
}

// FromColor converts any color.Color, dropping alpha.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB(n.R, n.G, n.B)
}

// IsSet reports whether c holds a color.
func (c Color) IsSet() bool { return c.set }

// RGB returns the channels of c. An unset color reports zeros.
func (c Color) RGB() (r, g, b uint8) { return c.r, c.g, c.b }

// Hex returns c as "#rrggbb", or "" when unset.
func (c Color) Hex() string {
	if !c.set {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

func (c Color) String() string {
	if !c.set {
		return "unset"
	}
	return c.Hex()
}

func (c Color) lipgloss() lipgloss.TerminalColor {
	if !c.set {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(c.Hex())
}

// NRGBA returns c as an opaque color.NRGBA. An unset color is fully
// transparent black.
func (c Color) NRGBA() color.NRGBA {
	if !c.set {
		return color.NRGBA{}
	}
	return color.NRGBA{R: c.r, G: c.g, B: c.b, A: 0xff}
}
