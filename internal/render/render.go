// Package render composes the clock face: it formats values into glyph
// strings and paints them into the layout cells.
package render

import (
	"deskclock/hal"
	"deskclock/internal/config"
	"deskclock/internal/glyph"
	"deskclock/internal/layout"
)

// Renderer paints fields onto the panel. It remembers the colon position
// of the last time paint so the colon can blink on its own.
type Renderer struct {
	cfg    config.Config
	layout *layout.Layout
	g      *glyph.Glyphs
	s      hal.Surface
	on     hal.Color

	colonX, colonY, colonW int
	moonTextX              int
}

func New(cfg config.Config, l *layout.Layout, g *glyph.Glyphs, s hal.Surface) *Renderer {
	r := &Renderer{cfg: cfg, layout: l, g: g, s: s, on: cfg.OnColor}
	// The colon position is known before anything is painted.
	r.placeColon()
	w, h := g.LabelSize(glyph.LabelMoon)
	c := l.CellRect(layout.Weather)
	r.moonTextX = c.X + c.W - w - h
	return r
}

func (r *Renderer) Layout() *layout.Layout { return r.layout }
func (r *Renderer) Surface() hal.Surface   { return r.s }

// MoonTextX is the left edge of the MOON label. Touches on the weather
// cell left of it toggle the forecast face.
func (r *Renderer) MoonTextX() int { return r.moonTextX }

func (r *Renderer) colour(c layout.Cell, on bool) hal.Color {
	if on {
		return r.on
	}
	return r.layout.ColourOff(c)
}

// PaintBackgrounds fills every cell.
func (r *Renderer) PaintBackgrounds() {
	r.layout.PaintBackgrounds(r.s)
}

// PaintColon draws a colon (or a single dot) centred in a gap of width
// gap beside a charW x charH glyph at (x, y).
func (r *Renderer) PaintColon(x, y, gap, charW, charH int, c hal.Color, dot bool) {
	dy, size := charH/3, charW/6
	if dot {
		dy, size = charH/2, charW/4
	}
	if gap%2 != size%2 {
		size++
	}
	px := x + gap/2 - size/2
	r.s.FillColor(r.s.BeginFill(px, y+dy-size/2, size, size), c)
	if !dot {
		r.s.FillColor(r.s.BeginFill(px, y+2*dy-size/2, size, size), c)
	}
}

// UpdateColon repaints just the time colon.
func (r *Renderer) UpdateColon(on bool) {
	r.PaintColon(r.colonX, r.colonY, r.colonW, r.g.LargeDigit.W, r.g.LargeDigit.H, r.colour(layout.Time, on), false)
}

type timeMetrics struct {
	colonWidth, gap, digitWidth int
	x, y                        int
}

func (r *Renderer) timeMetrics(cell layout.Cell, digit glyph.Size) timeMetrics {
	c := r.layout.CellRect(cell)
	m := timeMetrics{colonWidth: digit.W / 3}
	m.gap = m.colonWidth / 4
	m.digitWidth = digit.W + m.gap
	m.x = c.X + (c.W-4*m.digitWidth-m.colonWidth)/2
	m.y = c.Y + (c.H-digit.H)/2
	return m
}

func (r *Renderer) placeColon() {
	m := r.timeMetrics(layout.Time, glyph.Size{W: r.g.LargeDigit.W, H: r.g.LargeDigit.H})
	r.colonX = m.x + 2*m.digitWidth - m.gap
	r.colonY = m.y
	r.colonW = m.colonWidth + m.gap
}

// PaintTime paints "HH:MM" in the time cell with the PM indicator below
// the minutes.
func (r *Renderer) PaintTime(text string, pm bool, vis Visibility) {
	const cell = layout.Time
	d := glyph.Size{W: r.g.LargeDigit.W, H: r.g.LargeDigit.H}
	m := r.timeMetrics(cell, d)
	off := r.layout.ColourOff(cell)
	x := m.x
	for i := 0; i < len(text); i++ {
		c := r.colour(cell, vis.On(i))
		if text[i] == ':' {
			r.colonX, r.colonY, r.colonW = x-m.gap, m.y, m.colonWidth+m.gap
			r.PaintColon(r.colonX, r.colonY, r.colonW, d.W, d.H, c, false)
			x += m.colonWidth
			continue
		}
		r.g.PaintLargeDigit(r.s, x, m.y, text[i], c, off)
		x += m.digitWidth
	}
	w, h := r.g.LabelSize(glyph.LabelPM)
	r.g.PaintLabel(r.s, x-m.gap-w, m.y+d.H+h/2, glyph.LabelPM, r.colour(cell, pm), r.layout.Colour(cell))
}

// PaintAlarm paints the alarm time in small digits with the ALARM label
// and the bell. PM is only lit while the first hour glyph is.
func (r *Renderer) PaintAlarm(text string, pm, bell bool, vis Visibility) {
	const cell = layout.Alarm
	cr := r.layout.CellRect(cell)
	d := glyph.Size{W: r.g.SmallDigit.W, H: r.g.SmallDigit.H}
	m := r.timeMetrics(cell, d)
	off := r.layout.ColourOff(cell)
	bg := r.layout.Colour(cell)
	pm = pm && vis.On(0)
	x := m.x
	for i := 0; i < len(text); i++ {
		c := r.colour(cell, vis.On(i))
		if text[i] == ':' {
			r.PaintColon(x-m.gap, m.y, m.colonWidth+m.gap, d.W, d.H, c, false)
			x += m.colonWidth
			continue
		}
		r.g.PaintSmallDigit(r.s, x, m.y, text[i], c, off)
		x += m.digitWidth
	}
	gapY := r.layout.GapY
	w, h := r.g.LabelSize(glyph.LabelAlarm)
	r.g.PaintLabel(r.s, cr.X+h/2, cr.Y+gapY, glyph.LabelAlarm, r.on, bg)
	r.g.PaintLabel(r.s, cr.X+w+h, cr.Y+gapY, glyph.LabelBell, r.colour(cell, bell), bg)

	w, _ = r.g.LabelSize(glyph.LabelPM)
	r.g.PaintLabel(r.s, x-m.gap-w, m.y+d.H+gapY, glyph.LabelPM, r.colour(cell, pm), bg)
}

// PaintDate paints a date-cell string. Letters use the fourteen segment
// font, everything else the seven segment digits; '.' is a dot the width
// of a glyph and '/' an unpainted space.
func (r *Renderer) PaintDate(text string, vis Visibility) {
	const cell = layout.Date
	cr := r.layout.CellRect(cell)
	cw, ch := r.g.SmallChar.W, r.g.SmallChar.H
	gap := cw / 12
	width := cw + gap
	x := cr.X + (cr.W-(len(text)*width-gap))/2
	y := cr.Y + (cr.H-ch)/2
	off := r.layout.ColourOff(cell)
	for i := 0; i < len(text); i++ {
		c := r.colour(cell, vis.On(i))
		switch ch := text[i]; {
		case ch == '.':
			r.PaintColon(x, y, width-gap, cw, r.g.SmallChar.H, c, true)
		case ch == '/':
		case isAlpha(ch):
			r.g.PaintSmallChar(r.s, x, y, toUpper(ch), c, off)
		default:
			r.g.PaintSmallDigit(r.s, x, y, ch, c, off)
		}
		x += width
	}
}

// PaintTemperature paints a three glyph reading with the ROOM label and
// the unit. The unit ring is dimmed while the reading is "?".
func (r *Renderer) PaintTemperature(text string, celsius bool) {
	const cell = layout.Temperature
	cr := r.layout.CellRect(cell)
	d := glyph.Size{W: r.g.SmallDigit.W, H: r.g.SmallDigit.H}
	gap := d.W / 3 / 4
	width := d.W + gap
	x := cr.X + (cr.W-3*width)/2
	y := cr.Y + (cr.H-d.H)/2
	off := r.layout.ColourOff(cell)
	for i := 0; i < 3; i++ {
		ch := byte(' ')
		if i < len(text) {
			ch = text[i]
		}
		r.g.PaintSmallDigit(r.s, x, y, ch, r.on, off)
		x += width
	}
	_, h := r.g.LabelSize(glyph.LabelRoom)
	r.g.PaintLabel(r.s, cr.X+h/2, cr.Y+r.layout.GapY, glyph.LabelRoom, r.on, r.layout.Colour(cell))

	known := len(text) == 0 || text[0] != '?'
	r.g.PaintDegrees(r.s, x, y, celsius, r.colour(cell, known), off)
}
