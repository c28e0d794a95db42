package hal

import (
	"image/color"
	"testing"
)

type rectCall struct {
	x, y, w, h int16
	c          color.RGBA
}

type recordingFiller struct {
	calls []rectCall
}

func (r *recordingFiller) FillRectangle(x, y, w, h int16, c color.RGBA) error {
	r.calls = append(r.calls, rectCall{x, y, w, h, c})
	return nil
}

func TestRectSurfaceMergesWholeRows(t *testing.T) {
	f := &recordingFiller{}
	s := NewRectSurface(f, 100, 100)
	n := s.BeginFill(10, 20, 8, 4)
	if n != 32 {
		t.Fatalf("BeginFill = %d, want 32", n)
	}
	s.FillByte(n, 0)
	if len(f.calls) != 1 {
		t.Fatalf("calls = %d, want 1: %+v", len(f.calls), f.calls)
	}
	got := f.calls[0]
	if got.x != 10 || got.y != 20 || got.w != 8 || got.h != 4 {
		t.Fatalf("rect = %+v", got)
	}
}

func TestRectSurfaceSplitsPartialRows(t *testing.T) {
	f := &recordingFiller{}
	s := NewRectSurface(f, 100, 100)
	s.BeginFill(0, 0, 4, 3)
	s.FillColor(2, RGB(255, 0, 0))
	s.FillColor(7, RGB(0, 0, 255))
	s.FillColor(3, RGB(0, 255, 0))

	want := []struct{ x, y, w, h int16 }{
		{0, 0, 2, 1}, // red
		{2, 0, 2, 1}, // blue tail of row 0
		{0, 1, 4, 1}, // blue row 1
		{0, 2, 1, 1}, // blue head of row 2
		{1, 2, 3, 1}, // green
	}
	if len(f.calls) != len(want) {
		t.Fatalf("calls = %+v", f.calls)
	}
	for i, w := range want {
		c := f.calls[i]
		if c.x != w.x || c.y != w.y || c.w != w.w || c.h != w.h {
			t.Fatalf("call %d = %+v, want %+v", i, c, w)
		}
	}
}

func TestRectSurfaceClipsToPanel(t *testing.T) {
	f := &recordingFiller{}
	s := NewRectSurface(f, 10, 10)
	s.FillColor(s.BeginFill(-2, 8, 5, 4), 0)
	if len(f.calls) != 1 {
		t.Fatalf("calls = %+v", f.calls)
	}
	c := f.calls[0]
	if c.x != 0 || c.y != 8 || c.w != 3 || c.h != 2 {
		t.Fatalf("clipped rect = %+v", c)
	}
}
