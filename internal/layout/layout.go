// Package layout maps the fixed cell table onto panel pixels.
package layout

import "deskclock/hal"

// Cell indexes the five display regions.
type Cell int

const (
	Time Cell = iota
	Temperature
	Alarm
	Weather
	Date
	NumCells
)

// None is returned by CellAt for points outside every cell.
const None = NumCells

func (c Cell) String() string {
	switch c {
	case Time:
		return "time"
	case Temperature:
		return "temperature"
	case Alarm:
		return "alarm"
	case Weather:
		return "weather"
	case Date:
		return "date"
	}
	return "none"
}

// Cell colours. The OFF variants tint unlit segments.
var (
	Yellow       = hal.RGB(224, 255, 8)
	YellowOff    = hal.RGB(210, 235, 8)
	Blue         = hal.RGB(191, 226, 255)
	BlueOff      = hal.RGB(180, 210, 240)
	LightBlue    = hal.RGB(226, 255, 255)
	LightBlueOff = hal.RGB(205, 235, 235)
)

// Descriptor places a cell on a 3 x 4 grid.
type Descriptor struct {
	X, Y, W, H int // grid offset and span
	Colour     hal.Color
	ColourOff  hal.Color
}

var descriptors = [NumCells]Descriptor{
	Time:        {0, 0, 2, 2, LightBlue, LightBlueOff},
	Temperature: {2, 0, 1, 1, Blue, BlueOff},
	Alarm:       {2, 1, 1, 1, Yellow, YellowOff},
	Weather:     {0, 2, 3, 1, Blue, BlueOff},
	Date:        {0, 3, 3, 1, Yellow, YellowOff},
}

// Rect is a pixel rectangle.
type Rect struct{ X, Y, W, H int }

// Contains reports whether (x, y) lies strictly inside r.
func (r Rect) Contains(x, y int) bool {
	return r.X < x && x < r.X+r.W && r.Y < y && y < r.Y+r.H
}

// Layout is the cell table resolved for one panel.
type Layout struct {
	width, height int
	hdiv, vdiv    int
	showOff       bool
	// GapY is the small vertical spacing used between labels and fields.
	GapY int
}

// New resolves the layout. With showOff false the unlit segments are
// painted in the cell background colour, making them invisible.
func New(width, height int, showOff bool) *Layout {
	gap := 2
	if height < 320 {
		gap = 1
	}
	return &Layout{
		width:   width,
		height:  height,
		hdiv:    width / 3,
		vdiv:    height / 4,
		showOff: showOff,
		GapY:    gap,
	}
}

func (l *Layout) Width() int  { return l.width }
func (l *Layout) Height() int { return l.height }

// CellRect returns the pixel rectangle of c, inset one pixel from its grid
// lines.
func (l *Layout) CellRect(c Cell) Rect {
	if c < 0 || c >= NumCells {
		return Rect{}
	}
	d := descriptors[c]
	return Rect{
		X: d.X*l.hdiv + 1,
		Y: d.Y*l.vdiv + 1,
		W: d.W*l.hdiv - 2,
		H: d.H*l.vdiv - 2,
	}
}

// CellAt returns the first cell whose open rectangle contains (x, y), or
// None. Boundary pixels belong to no cell.
func (l *Layout) CellAt(x, y int) Cell {
	for c := Time; c < NumCells; c++ {
		if l.CellRect(c).Contains(x, y) {
			return c
		}
	}
	return None
}

// Colour is the background of c.
func (l *Layout) Colour(c Cell) hal.Color {
	if c < 0 || c >= NumCells {
		return 0
	}
	return descriptors[c].Colour
}

// ColourOff is the colour of unlit segments in c.
func (l *Layout) ColourOff(c Cell) hal.Color {
	if c < 0 || c >= NumCells {
		return 0
	}
	if !l.showOff {
		return descriptors[c].Colour
	}
	return descriptors[c].ColourOff
}

// PaintBackgrounds fills every cell with its background colour.
func (l *Layout) PaintBackgrounds(s hal.Surface) {
	for c := Time; c < NumCells; c++ {
		r := l.CellRect(c)
		s.FillColor(s.BeginFill(r.X, r.Y, r.W, r.H), l.Colour(c))
	}
}
