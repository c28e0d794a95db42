package hal

import "image/color"

// RectFiller is the rectangle primitive offered by SPI panel drivers such as
// tinygo.org/x/drivers/ili9341.
type RectFiller interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// RectSurface turns the streaming window protocol into rectangle fills.
// Runs that cover whole window rows are merged into one rectangle, so solid
// backgrounds cost a single driver call.
type RectSurface struct {
	f             RectFiller
	width, height int

	wx, wy, ww, wh int
	pos            int

	// Err holds the first driver error since the last BeginFill.
	Err error
}

// NewRectSurface wraps f as a width x height surface.
func NewRectSurface(f RectFiller, width, height int) *RectSurface {
	return &RectSurface{f: f, width: width, height: height}
}

func (s *RectSurface) Width() int  { return s.width }
func (s *RectSurface) Height() int { return s.height }

func (s *RectSurface) BeginFill(x, y, w, h int) int {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s.wx, s.wy, s.ww, s.wh = x, y, w, h
	s.pos = 0
	s.Err = nil
	return w * h
}

func (s *RectSurface) FillColor(n int, c Color) {
	r, g, b := c.RGB888()
	s.fill(n, color.RGBA{R: r, G: g, B: b, A: 0xFF})
}

func (s *RectSurface) FillByte(n int, v byte) {
	s.FillColor(n, Color(uint16(v)|uint16(v)<<8))
}

func (s *RectSurface) fill(n int, c color.RGBA) {
	total := s.ww * s.wh
	for n > 0 && s.pos < total {
		col := s.pos % s.ww
		row := s.pos / s.ww
		if col == 0 && n >= s.ww {
			rows := n / s.ww
			if rows > s.wh-row {
				rows = s.wh - row
			}
			s.rect(s.wx, s.wy+row, s.ww, rows, c)
			s.pos += rows * s.ww
			n -= rows * s.ww
			continue
		}
		span := s.ww - col
		if span > n {
			span = n
		}
		s.rect(s.wx+col, s.wy+row, span, 1, c)
		s.pos += span
		n -= span
	}
}

func (s *RectSurface) rect(x, y, w, h int, c color.RGBA) {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > s.width {
		w = s.width - x
	}
	if y+h > s.height {
		h = s.height - y
	}
	if w <= 0 || h <= 0 {
		return
	}
	if err := s.f.FillRectangle(int16(x), int16(y), int16(w), int16(h), c); err != nil && s.Err == nil {
		s.Err = err
	}
}
