package grid

import (
	"image/color"
	"io"
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

func TestRect(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 4, Height: 5}

	if r.Left() != 2 || r.Top() != 3 || r.Right() != 6 || r.Bottom() != 8 {
		t.Errorf("edges wrong: %v", r)
	}
	if r.Area() != 20 {
		t.Errorf("Area() = %d, want 20", r.Area())
	}

	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 7, true},
		{6, 3, false},
		{2, 8, false},
		{1, 3, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}

	if !(Rect{Width: 0, Height: 3}).IsEmpty() {
		t.Error("zero width rect should be empty")
	}
	if (Rect{Width: -1, Height: 3}).Area() != 0 {
		t.Error("negative rect should have zero area")
	}
	if NewRect(40, 20) == NewRect(41, 20) {
		t.Error("rects of different width must not be equal")
	}
}

func TestColor(t *testing.T) {
	var unset Color
	if unset.IsSet() || unset.Hex() != "" || unset.String() != "unset" {
		t.Errorf("zero Color should be unset: %v", unset)
	}

	c := RGB(0x1e, 0x90, 0xff)
	if !c.IsSet() || c.Hex() != "#1e90ff" {
		t.Errorf("RGB().Hex() = %q", c.Hex())
	}
	if r, g, b := c.RGB(); r != 0x1e || g != 0x90 || b != 0xff {
		t.Errorf("RGB() = %d,%d,%d", r, g, b)
	}

	if got := FromColor(color.NRGBA{R: 10, G: 20, B: 30, A: 128}); got != RGB(10, 20, 30) {
		t.Errorf("FromColor() = %v", got)
	}
}

func TestBufferCell(t *testing.T) {
	b := NewBuffer(Rect{X: 1, Y: 1, Width: 3, Height: 2})

	if b.Cell(0, 0) != nil {
		t.Error("cell outside area should be nil")
	}
	if b.Cell(4, 1) != nil {
		t.Error("cell past right edge should be nil")
	}

	c := b.Cell(3, 2)
	if c == nil {
		t.Fatal("cell inside area should not be nil")
	}
	if c.Rune != Blank || c.FG.IsSet() || c.BG.IsSet() {
		t.Errorf("new cell should be blank: %+v", *c)
	}

	c.SetRune('x')
	c.SetFG(RGB(1, 2, 3))
	if got := b.Cell(3, 2); got.Rune != 'x' || got.FG != RGB(1, 2, 3) {
		t.Errorf("cell mutation not stored: %+v", *got)
	}
	if b.Row(2) != "  x" {
		t.Errorf("Row(2) = %q", b.Row(2))
	}
	if b.Row(9) != "" {
		t.Error("Row outside area should be empty")
	}

	b.Reset()
	if b.Row(2) != "   " || b.Cell(3, 2).FG.IsSet() {
		t.Error("Reset should blank all cells")
	}
}

func TestBufferFill(t *testing.T) {
	b := NewBuffer(NewRect(2, 2))
	b.Fill(RGB(0, 0, 128))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if b.Cell(x, y).BG != RGB(0, 0, 128) {
				t.Errorf("cell (%d,%d) not filled", x, y)
			}
		}
	}
}

func TestRenderPlain(t *testing.T) {
	b := NewBuffer(NewRect(3, 2))
	b.Cell(0, 0).SetRune('a')
	b.Cell(1, 0).SetRune('b')
	b.Cell(1, 0).SetFG(RGB(255, 0, 0))
	b.Cell(2, 1).SetRune('c')

	got := b.RenderWith(NewRenderer(io.Discard, termenv.Ascii))
	want := "ab \n  c"
	if got != want {
		t.Errorf("RenderWith(Ascii) = %q, want %q", got, want)
	}
}

func TestRenderTrueColor(t *testing.T) {
	b := NewBuffer(NewRect(2, 1))
	b.Cell(0, 0).SetRune('▀')
	b.Cell(0, 0).SetFG(RGB(255, 0, 0))

	got := b.RenderWith(NewRenderer(io.Discard, termenv.TrueColor))
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected escape sequences, got %q", got)
	}
	if !strings.Contains(got, "▀") {
		t.Errorf("glyph missing from %q", got)
	}
	if strings.Contains(got, "\n") {
		t.Error("single row should not contain a newline")
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := NewBuffer(Rect{}).Render(); got != "" {
		t.Errorf("empty buffer rendered %q", got)
	}
}
