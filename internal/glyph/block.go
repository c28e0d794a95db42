package glyph

import "deskclock/hal"

// Block is a packed 1-bit image painted as a solid rectangle of foreground
// and background pixels. Bits are raster order, least significant bit first.
type Block struct {
	W, H int
	Bits []byte
}

// NewBlock packs the canvas.
func NewBlock(c *Canvas) Block {
	b := Block{W: c.W, H: c.H, Bits: make([]byte, (c.W*c.H+7)/8)}
	for i, on := range c.pix {
		if on {
			b.Bits[i/8] |= 1 << (i % 8)
		}
	}
	return b
}

func (b Block) bit(i int) bool {
	return b.Bits[i/8]&(1<<(i%8)) != 0
}

// PaintBlock fills b's rectangle at (x, y). Equal-coloured neighbours are
// sent as one fill.
func PaintBlock(s hal.Surface, x, y int, b Block, fore, back hal.Color) {
	n := s.BeginFill(x, y, b.W, b.H)
	if n > b.W*b.H {
		n = b.W * b.H
	}
	run := 0
	var cur hal.Color
	flush := func() {
		if run == 0 {
			return
		}
		if cur == 0 {
			s.FillByte(run, 0)
		} else {
			s.FillColor(run, cur)
		}
		run = 0
	}
	for i := 0; i < n; i++ {
		c := back
		if b.bit(i) {
			c = fore
		}
		if run > 0 && c != cur {
			flush()
		}
		cur = c
		run++
	}
	flush()
}
