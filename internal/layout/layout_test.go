package layout

import (
	"testing"

	"deskclock/hal"
)

var panels = []struct{ w, h int }{{480, 320}, {320, 240}}

func TestCellRectsDisjointAndInBounds(t *testing.T) {
	for _, p := range panels {
		l := New(p.w, p.h, true)
		for a := Time; a < NumCells; a++ {
			ra := l.CellRect(a)
			if ra.X < 0 || ra.Y < 0 || ra.X+ra.W > p.w || ra.Y+ra.H > p.h {
				t.Fatalf("%dx%d: %v rect %+v out of bounds", p.w, p.h, a, ra)
			}
			if ra.W <= 0 || ra.H <= 0 {
				t.Fatalf("%dx%d: %v rect %+v is empty", p.w, p.h, a, ra)
			}
			for b := a + 1; b < NumCells; b++ {
				rb := l.CellRect(b)
				if ra.X < rb.X+rb.W && rb.X < ra.X+ra.W && ra.Y < rb.Y+rb.H && rb.Y < ra.Y+ra.H {
					t.Fatalf("%dx%d: %v %+v overlaps %v %+v", p.w, p.h, a, ra, b, rb)
				}
			}
		}
	}
}

func TestCellAtInvertsCellRect(t *testing.T) {
	for _, p := range panels {
		l := New(p.w, p.h, true)
		for y := -1; y <= p.h; y++ {
			for x := -1; x <= p.w; x++ {
				want := None
				for c := Time; c < NumCells; c++ {
					r := l.CellRect(c)
					if x > r.X && x < r.X+r.W && y > r.Y && y < r.Y+r.H {
						want = c
					}
				}
				if got := l.CellAt(x, y); got != want {
					t.Fatalf("%dx%d: CellAt(%d,%d) = %v, want %v", p.w, p.h, x, y, got, want)
				}
			}
		}
	}
}

func TestCellAtBoundaries(t *testing.T) {
	l := New(480, 320, true)
	r := l.CellRect(Time)
	tests := []struct {
		x, y int
		want Cell
	}{
		{r.X + 1, r.Y + 1, Time},
		{r.X, r.Y + 5, None},
		{r.X + 5, r.Y, None},
		{r.X + r.W, r.Y + 5, None},
		{0, 0, None},
		{479, 319, None},
		{240, 200, Weather},
		{400, 40, Temperature},
		{400, 120, Alarm},
		{240, 280, Date},
		{-5, 10, None},
	}
	for _, tt := range tests {
		if got := l.CellAt(tt.x, tt.y); got != tt.want {
			t.Errorf("CellAt(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestLargePanelGeometry(t *testing.T) {
	l := New(480, 320, true)
	want := map[Cell]Rect{
		Time:        {1, 1, 318, 158},
		Temperature: {321, 1, 158, 78},
		Alarm:       {321, 81, 158, 78},
		Weather:     {1, 161, 478, 78},
		Date:        {1, 241, 478, 78},
	}
	for c, r := range want {
		if got := l.CellRect(c); got != r {
			t.Errorf("CellRect(%v) = %+v, want %+v", c, got, r)
		}
	}
	if l.GapY != 2 {
		t.Errorf("GapY = %d", l.GapY)
	}
}

func TestColourOffFollowsConfig(t *testing.T) {
	shown := New(480, 320, true)
	hidden := New(480, 320, false)
	if shown.ColourOff(Date) != YellowOff {
		t.Fatal("shown off colour")
	}
	if hidden.ColourOff(Date) != Yellow {
		t.Fatal("hidden off colour should be the background")
	}
}

func TestPaintBackgrounds(t *testing.T) {
	s := hal.NewBufferSurface(480, 320)
	l := New(480, 320, true)
	l.PaintBackgrounds(s)
	if got := s.At(10, 10); got != LightBlue {
		t.Fatalf("time cell = %#04x", got)
	}
	if got := s.At(0, 0); got != 0 {
		t.Fatalf("grid line = %#04x", got)
	}
	if got := s.At(240, 300); got != Yellow {
		t.Fatalf("date cell = %#04x", got)
	}
}
