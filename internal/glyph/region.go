// Package glyph implements the run-length region format used for segment
// glyphs and icons, the encoder that produces it, and the glyph sets painted
// by the clock face.
package glyph

import "deskclock/hal"

// Region is one independently coloured sub-shape of a glyph or icon.
//
// Layout:
//
//	dx dy                  origin of the region within its glyph
//	w [h bx by]            bulk rectangle; w == 0 means none
//	{len offs | 0x80+k}    runs: len 1..127 then x offset, the offset's
//	                       high bit advancing one row first; 0x80+k skips
//	                       k rows
//	0                      end
type Region []byte

// Paint draws r with its top-left glyph corner at (x0, y0).
//
// When offset is false the region's own (dx, dy) is ignored and (x0, y0) is
// taken as the region origin. Colour 0 is sent through the single-byte fill
// path. Malformed data stops at the end of the slice.
func Paint(s hal.Surface, x0, y0 int, r Region, c hal.Color, offset bool) {
	if len(r) < 3 {
		return
	}
	if offset {
		x0 += int(r[0])
		y0 += int(r[1])
	}
	p := 2
	next := func() (byte, bool) {
		if p >= len(r) {
			return 0, false
		}
		b := r[p]
		p++
		return b, true
	}

	w, _ := next()
	if w != 0 {
		h, _ := next()
		dx, _ := next()
		dy, ok := next()
		if !ok {
			return
		}
		Fill(s, x0+int(dx), y0+int(dy), int(w), int(h), c)
	}
	for {
		w, ok := next()
		if !ok || w == 0 {
			return
		}
		if w&0x80 != 0 {
			y0 += int(w & 0x7F)
			continue
		}
		offs, ok := next()
		if !ok {
			return
		}
		if offs&0x80 != 0 {
			y0++
		}
		Fill(s, x0+int(offs&0x7F), y0, int(w), 1, c)
	}
}

// Offset returns the region origin relative to its glyph.
func Offset(r Region) (dx, dy int) {
	if len(r) < 2 {
		return 0, 0
	}
	return int(r[0]), int(r[1])
}

// Fill paints a solid rectangle. Black goes through the cheaper byte fill.
func Fill(s hal.Surface, x, y, w, h int, c hal.Color) {
	n := s.BeginFill(x, y, w, h)
	if c == 0 {
		s.FillByte(n, 0)
		return
	}
	s.FillColor(n, c)
}
