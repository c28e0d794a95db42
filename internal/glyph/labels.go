package glyph

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Label identifies a fixed text block painted beside the segment fields.
type Label int

const (
	LabelWeather Label = iota
	LabelMoon
	LabelRoom
	LabelPM
	LabelAlarm
	LabelBell
	NumLabels
)

var labelText = [...]string{
	LabelWeather: "WEATHER",
	LabelMoon:    "MOON",
	LabelRoom:    "ROOM",
	LabelPM:      "PM",
	LabelAlarm:   "ALARM",
}

// LabelFont is the font the text labels are rasterised with.
var LabelFont tinyfont.Fonter = &proggy.TinySZ8pt7b

// TextCanvas rasterises s with f and crops it to the inked pixels.
func TextCanvas(f tinyfont.Fonter, s string) *Canvas {
	_, outbox := tinyfont.LineWidth(f, s)
	adv := int(f.GetYAdvance())
	c := NewCanvas(int(outbox)+2, 3*adv)
	tinyfont.WriteLine(c, f, 1, int16(2*adv), s, color.RGBA{A: 0xFF})
	return c.Crop()
}

// labels renders every label at the given integer scale. The bell is drawn
// to the height of the tallest text label.
func labels(scale int) [NumLabels]Block {
	var out [NumLabels]Block
	h := 0
	for l := LabelWeather; l < LabelBell; l++ {
		c := TextCanvas(LabelFont, labelText[l]).Scale(scale)
		h = max(h, c.H)
		out[l] = NewBlock(c)
	}
	out[LabelBell] = NewBlock(Bell(h))
	return out
}
