package glyph

import (
	"image/color"
	"math"
	"sort"
)

// Canvas is a 1-bit drawing area used to author glyph shapes before they are
// encoded. It satisfies tinygo.org/x/drivers.Displayer so tinyfont can draw
// straight into it.
type Canvas struct {
	W, H int
	pix  []bool
}

// NewCanvas returns an empty w x h canvas.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{W: w, H: h, pix: make([]bool, w*h)}
}

func (c *Canvas) At(x, y int) bool {
	if x < 0 || x >= c.W || y < 0 || y >= c.H {
		return false
	}
	return c.pix[y*c.W+x]
}

func (c *Canvas) Set(x, y int, on bool) {
	if x < 0 || x >= c.W || y < 0 || y >= c.H {
		return
	}
	c.pix[y*c.W+x] = on
}

// Size, SetPixel and Display implement drivers.Displayer. Any opaque colour
// sets the pixel.
func (c *Canvas) Size() (int16, int16) { return int16(c.W), int16(c.H) }

func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	c.Set(int(x), int(y), col.A != 0)
}

func (c *Canvas) Display() error { return nil }

// Empty reports whether no pixel is set.
func (c *Canvas) Empty() bool {
	for _, p := range c.pix {
		if p {
			return false
		}
	}
	return true
}

// FillRect sets or clears a rectangle.
func (c *Canvas) FillRect(x, y, w, h int, on bool) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			c.Set(xx, yy, on)
		}
	}
}

// Point is a vertex in canvas coordinates; pixel (x, y) covers
// [x, x+1) x [y, y+1).
type Point struct{ X, Y float64 }

// FillPolygon sets or clears every pixel whose centre lies inside the
// polygon (even-odd rule).
func (c *Canvas) FillPolygon(pts []Point, on bool) {
	if len(pts) < 3 {
		return
	}
	xs := make([]float64, 0, len(pts))
	for y := 0; y < c.H; y++ {
		sy := float64(y) + 0.5
		xs = xs[:0]
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			if (a.Y <= sy) == (b.Y <= sy) {
				continue
			}
			xs = append(xs, a.X+(sy-a.Y)*(b.X-a.X)/(b.Y-a.Y))
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0 := int(math.Ceil(xs[i] - 0.5))
			x1 := int(math.Ceil(xs[i+1] - 0.5))
			for x := x0; x < x1; x++ {
				c.Set(x, y, on)
			}
		}
	}
}

// FillEllipse sets or clears pixels whose centre lies inside the ellipse.
func (c *Canvas) FillEllipse(cx, cy, rx, ry float64, on bool) {
	if rx <= 0 || ry <= 0 {
		return
	}
	for y := 0; y < c.H; y++ {
		dy := (float64(y) + 0.5 - cy) / ry
		if dy*dy > 1 {
			continue
		}
		for x := 0; x < c.W; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			if dx*dx+dy*dy <= 1 {
				c.Set(x, y, on)
			}
		}
	}
}

// ThickLine returns the quadrilateral of a stroke of width t from a to b.
func ThickLine(a, b Point, t float64) []Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return nil
	}
	nx, ny := -dy/l*t/2, dx/l*t/2
	return []Point{
		{a.X + nx, a.Y + ny},
		{b.X + nx, b.Y + ny},
		{b.X - nx, b.Y - ny},
		{a.X - nx, a.Y - ny},
	}
}

// Bounds returns the bounding box of the set pixels; ok is false for an
// empty canvas.
func (c *Canvas) Bounds() (x, y, w, h int, ok bool) {
	minX, minY, maxX, maxY := c.W, c.H, -1, -1
	for yy := 0; yy < c.H; yy++ {
		for xx := 0; xx < c.W; xx++ {
			if !c.pix[yy*c.W+xx] {
				continue
			}
			minX = min(minX, xx)
			maxX = max(maxX, xx)
			minY = min(minY, yy)
			maxY = max(maxY, yy)
		}
	}
	if maxX < 0 {
		return 0, 0, 0, 0, false
	}
	return minX, minY, maxX - minX + 1, maxY - minY + 1, true
}

// Crop returns the bounding box of the set pixels as a new canvas.
func (c *Canvas) Crop() *Canvas {
	x, y, w, h, ok := c.Bounds()
	if !ok {
		return NewCanvas(0, 0)
	}
	out := NewCanvas(w, h)
	for yy := 0; yy < h; yy++ {
		for xx := 0; xx < w; xx++ {
			out.Set(xx, yy, c.At(x+xx, y+yy))
		}
	}
	return out
}

// Scale enlarges the canvas by an integer factor.
func (c *Canvas) Scale(k int) *Canvas {
	if k <= 1 {
		return c
	}
	out := NewCanvas(c.W*k, c.H*k)
	for y := 0; y < out.H; y++ {
		for x := 0; x < out.W; x++ {
			out.Set(x, y, c.At(x/k, y/k))
		}
	}
	return out
}

// Subtract clears every pixel set in o.
func (c *Canvas) Subtract(o *Canvas) {
	for y := 0; y < c.H; y++ {
		for x := 0; x < c.W; x++ {
			if o.At(x, y) {
				c.Set(x, y, false)
			}
		}
	}
}
