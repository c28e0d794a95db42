package hal

import "sync"

// BufferSurface is a Surface backed by a little-endian RGB565 pixel buffer.
//
// Pixels outside the panel are clipped; the window cursor still advances so
// partially off-screen windows keep their raster order.
type BufferSurface struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte

	// current window
	wx, wy, ww, wh int
	pos            int
}

// NewBufferSurface allocates a width x height surface.
func NewBufferSurface(width, height int) *BufferSurface {
	stride := width * 2
	return &BufferSurface{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (s *BufferSurface) Width() int  { return s.width }
func (s *BufferSurface) Height() int { return s.height }

func (s *BufferSurface) BeginFill(x, y, w, h int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s.wx, s.wy, s.ww, s.wh = x, y, w, h
	s.pos = 0
	return w * h
}

func (s *BufferSurface) FillColor(n int, c Color) {
	lo, hi := c.Bytes()
	s.fill(n, lo, hi)
}

func (s *BufferSurface) FillByte(n int, b byte) {
	s.fill(n, b, b)
}

func (s *BufferSurface) fill(n int, lo, hi byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := s.ww * s.wh
	for ; n > 0 && s.pos < total; n-- {
		x := s.wx + s.pos%s.ww
		y := s.wy + s.pos/s.ww
		s.pos++
		if x < 0 || x >= s.width || y < 0 || y >= s.height {
			continue
		}
		off := y*s.stride + x*2
		s.buf[off] = lo
		s.buf[off+1] = hi
	}
}

// At returns the pixel at (x, y), or 0 outside the panel.
func (s *BufferSurface) At(x, y int) Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0
	}
	off := y*s.stride + x*2
	return colorFromBytes(s.buf[off], s.buf[off+1])
}

// Clear fills the whole panel with c.
func (s *BufferSurface) Clear(c Color) {
	s.FillColor(s.BeginFill(0, 0, s.width, s.height), c)
}

func (s *BufferSurface) snapshotRGB565(dst []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copy(dst, s.buf)
}
