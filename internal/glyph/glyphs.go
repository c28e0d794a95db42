package glyph

import (
	"fmt"

	"deskclock/hal"
)

// Size is a glyph cell in pixels.
type Size struct{ W, H int }

// Base sizes are for the 480x320 panel; other panels scale them down.
var (
	baseLargeDigit    = Size{58, 106}
	baseSmallDigit    = Size{26, 42}
	baseSmallChar     = Size{28, 46}
	baseVerySmallChar = Size{13, 20}
	baseMoon          = 44
	baseDegrees       = Size{22, 42}
	baseWeather       = Size{64, 48}
)

const (
	baseWidth  = 480
	baseHeight = 320
)

// Glyphs holds every region set for one panel size. It is built once at
// start-up and only read afterwards.
type Glyphs struct {
	LargeDigit    Set
	SmallDigit    Set
	SmallChar     Set
	VerySmallChar Set
	Moon          Set
	Degrees       Set
	Weather       WeatherIcons
	Labels        [NumLabels]Block
}

// New builds the glyphs for a width x height panel.
func New(width, height int) (*Glyphs, error) {
	num, den := height, baseHeight
	if width*baseHeight < height*baseWidth {
		num, den = width, baseWidth
	}
	scale := func(s Size) (int, int) {
		return max(3, s.W*num/den), max(5, s.H*num/den)
	}

	g := &Glyphs{}
	var err error
	build := func(name string, dst *Set, f func(w, h int) (Set, error), s Size) {
		if err != nil {
			return
		}
		w, h := scale(s)
		if *dst, err = f(w, h); err != nil {
			err = fmt.Errorf("glyph %s: %w", name, err)
		}
	}
	build("large digit", &g.LargeDigit, SevenSegment, baseLargeDigit)
	build("small digit", &g.SmallDigit, SevenSegment, baseSmallDigit)
	build("small char", &g.SmallChar, FourteenSegment, baseSmallChar)
	build("very small char", &g.VerySmallChar, FourteenSegment, baseVerySmallChar)
	build("moon", &g.Moon, func(w, _ int) (Set, error) { return MoonPhase(w) }, Size{baseMoon, baseMoon})
	build("degrees", &g.Degrees, Degrees, baseDegrees)
	if err != nil {
		return nil, err
	}
	ww, wh := scale(baseWeather)
	if g.Weather, err = Weather(ww, wh); err != nil {
		return nil, err
	}

	labelScale := 1
	if height >= baseHeight {
		labelScale = 2
	}
	g.Labels = labels(labelScale)
	return g, nil
}

func (g *Glyphs) PaintLargeDigit(s hal.Surface, x, y int, ch byte, on, off hal.Color) {
	g.LargeDigit.Paint(s, x, y, LargeDigitPattern(ch), on, off)
}

func (g *Glyphs) PaintSmallDigit(s hal.Surface, x, y int, ch byte, on, off hal.Color) {
	g.SmallDigit.Paint(s, x, y, SmallDigitPattern(ch), on, off)
}

func (g *Glyphs) PaintSmallChar(s hal.Surface, x, y int, ch byte, on, off hal.Color) {
	g.SmallChar.Paint(s, x, y, CharPattern(ch), on, off)
}

func (g *Glyphs) PaintVerySmallChar(s hal.Surface, x, y int, ch byte, on, off hal.Color) {
	g.VerySmallChar.Paint(s, x, y, VerySmallCharPattern(ch), on, off)
}

// PaintMoon lights (on colour, in shadow) the segments whose bit is set,
// bit 0 being the leftmost.
func (g *Glyphs) PaintMoon(s hal.Surface, x, y int, segments uint8, on, off hal.Color) {
	g.Moon.Paint(s, x, y, uint16(segments&0x0F), on, off)
}

// PaintDegrees draws the unit symbol; the ring is always in the on colour.
func (g *Glyphs) PaintDegrees(s hal.Surface, x, y int, celsius bool, on, off hal.Color) {
	pattern := uint16(1 << DegreesMain)
	if celsius {
		pattern |= 1 << DegreesBottom
	} else {
		pattern |= 1 << DegreesMiddle
	}
	g.Degrees.Paint(s, x, y, pattern, on, off)
}

func (g *Glyphs) PaintWeather(s hal.Surface, x, y, idx int, c hal.Color) {
	g.Weather.Paint(s, x, y, idx, c)
}

func (g *Glyphs) PaintLabel(s hal.Surface, x, y int, l Label, fore, back hal.Color) {
	PaintBlock(s, x, y, g.Labels[l], fore, back)
}

// LabelSize returns the width and height of a label block.
func (g *Glyphs) LabelSize(l Label) (int, int) {
	return g.Labels[l].W, g.Labels[l].H
}
