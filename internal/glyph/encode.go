package glyph

import (
	"errors"
	"fmt"
)

var (
	ErrOffsetRange = errors.New("glyph: offset out of range")
	ErrEmpty       = errors.New("glyph: empty shape")
)

// minBulkArea is the smallest rectangle worth a bulk header; below this the
// four header bytes cost more than the runs they replace.
const minBulkArea = 24

// Encode converts the set pixels of c into a Region.
//
// The region origin is the top-left of the shape's bounding box. When bulk is
// true the largest solid rectangle is emitted as the bulk fill and only the
// remaining pixels as runs.
func Encode(c *Canvas, bulk bool) (Region, error) {
	ox, oy, bw, bh, ok := c.Bounds()
	if !ok {
		return nil, ErrEmpty
	}
	if ox > 0xFF || oy > 0xFF {
		return nil, fmt.Errorf("origin (%d,%d): %w", ox, oy, ErrOffsetRange)
	}
	if bw > 0x7F+1 {
		return nil, fmt.Errorf("width %d: %w", bw, ErrOffsetRange)
	}

	out := Region{byte(ox), byte(oy)}

	var rx, ry, rw, rh int
	if bulk {
		rx, ry, rw, rh = largestRect(c, ox, oy, bw, bh)
		if rw*rh < minBulkArea || rw > 0xFF || rh > 0xFF {
			rw, rh = 0, 0
		}
	}
	if rw > 0 {
		out = append(out, byte(rw), byte(rh), byte(rx-ox), byte(ry-oy))
	} else {
		out = append(out, 0)
	}
	inBulk := func(x, y int) bool {
		return rw > 0 && x >= rx && x < rx+rw && y >= ry && y < ry+rh
	}

	row := 0 // decoder's current row relative to the origin
	first := true
	for y := 0; y < bh; y++ {
		started := false
		for x := 0; x < bw; {
			if !c.At(ox+x, oy+y) || inBulk(ox+x, oy+y) {
				x++
				continue
			}
			run := 1
			for x+run < bw && run < 0x7F && c.At(ox+x+run, oy+y) && !inBulk(ox+x+run, oy+y) {
				run++
			}
			offs := byte(x)
			if !started {
				skip := y - row
				if !first {
					skip--
					offs |= 0x80
				}
				out = appendSkip(out, skip)
				row = y
				started = true
				first = false
			}
			out = append(out, byte(run), offs)
			x += run
		}
	}
	return append(out, 0), nil
}

func appendSkip(out Region, n int) Region {
	for n > 0 {
		k := min(n, 0x7F)
		out = append(out, 0x80|byte(k))
		n -= k
	}
	return out
}

// largestRect finds the maximal all-set rectangle inside the given box using
// the histogram-stack method.
func largestRect(c *Canvas, ox, oy, bw, bh int) (x, y, w, h int) {
	heights := make([]int, bw+1)
	stack := make([]int, 0, bw+1)
	best := 0
	for yy := 0; yy < bh; yy++ {
		for xx := 0; xx < bw; xx++ {
			if c.At(ox+xx, oy+yy) {
				heights[xx]++
			} else {
				heights[xx] = 0
			}
		}
		stack = stack[:0]
		for xx := 0; xx <= bw; xx++ {
			for len(stack) > 0 && heights[stack[len(stack)-1]] >= heights[xx] {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				left := 0
				if len(stack) > 0 {
					left = stack[len(stack)-1] + 1
				}
				hh := heights[top]
				ww := xx - left
				if hh*ww > best {
					best = hh * ww
					x, y, w, h = ox+left, oy+yy-hh+1, ww, hh
				}
			}
			stack = append(stack, xx)
		}
	}
	return x, y, w, h
}
