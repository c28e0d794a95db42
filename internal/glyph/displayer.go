package glyph

import (
	"image/color"

	"deskclock/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// SurfaceDisplayer adapts a hal.Surface to the tinygo display interfaces so
// tinyfont and tinyterm can draw on the panel.
type SurfaceDisplayer struct {
	S hal.Surface
}

func toColor(c color.RGBA) hal.Color { return hal.RGB(c.R, c.G, c.B) }

func (d SurfaceDisplayer) Size() (x, y int16) {
	return int16(d.S.Width()), int16(d.S.Height())
}

func (d SurfaceDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.S.FillColor(d.S.BeginFill(int(x), int(y), 1, 1), toColor(c))
}

func (d SurfaceDisplayer) Display() error { return nil }

func (d SurfaceDisplayer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	Fill(d.S, int(x), int(y), int(width), int(height), toColor(c))
	return nil
}

// SetScroll is a no-op; the surface has no hardware scroll.
func (d SurfaceDisplayer) SetScroll(line int16) {}

func (d SurfaceDisplayer) SetRotation(rotation drivers.Rotation) error {
	return nil
}

// WriteText draws s with its top edge at y.
func WriteText(s hal.Surface, f tinyfont.Fonter, x, y int, text string, c hal.Color) {
	r, g, b := c.RGB888()
	tinyfont.WriteLine(SurfaceDisplayer{S: s}, f, int16(x), int16(y+int(f.GetYAdvance())), text, color.RGBA{R: r, G: g, B: b, A: 0xFF})
}
