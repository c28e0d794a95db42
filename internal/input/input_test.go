package input

import (
	"testing"

	"deskclock/hal"
)

func TestButtonDebounce(t *testing.T) {
	var b Button
	steps := []struct {
		down bool
		now  uint64
		want bool
	}{
		{false, 0, false},
		{true, 10, false},  // edge starts the timer
		{true, 40, false},  // 30 ms: still bouncing
		{false, 45, false}, // bounce restarts
		{true, 50, false},
		{true, 100, true}, // held 50 ms
		{true, 200, false},
		{false, 300, false},
		{false, 350, false}, // release is debounced but not reported
		{true, 360, false},
		{true, 410, true},
	}
	for i, s := range steps {
		if got := b.Update(s.down, s.now); got != s.want {
			t.Fatalf("step %d (down=%v now=%d): got %v, want %v", i, s.down, s.now, got, s.want)
		}
	}
}

func TestTouchDebounce(t *testing.T) {
	var tc Touch
	if _, _, ok := tc.Update(0, 0, false, 0); ok {
		t.Fatalf("tap without touch")
	}
	tc.Update(100, 100, true, 10)
	if _, _, ok := tc.Update(110, 105, true, 40); ok {
		t.Fatalf("tap before stable")
	}
	// A jump restarts the timer.
	tc.Update(200, 100, true, 50)
	if _, _, ok := tc.Update(200, 100, true, 90); ok {
		t.Fatalf("tap after jump before stable")
	}
	x, y, ok := tc.Update(205, 98, true, 100)
	if !ok || x != 205 || y != 98 {
		t.Fatalf("tap=(%d,%d,%v)", x, y, ok)
	}
	if _, _, ok := tc.Update(205, 98, true, 500); ok {
		t.Fatalf("held touch tapped twice")
	}
	tc.Update(0, 0, false, 600)
	if _, _, ok := tc.Update(0, 0, false, 700); ok {
		t.Fatalf("release reported as tap")
	}
}

func TestLongPress(t *testing.T) {
	var l LongPress
	l.Start(1000)
	for now := uint64(1000); now < 3500; now += 100 {
		if done, _ := l.Update(true, now); done {
			t.Fatalf("done early at %d", now)
		}
	}
	if done, long := l.Update(true, 3500); !done || !long {
		t.Fatalf("at 2.5 s: done=%v long=%v", done, long)
	}

	l.Start(0)
	l.Update(true, 600)
	if done, long := l.Update(false, 700); !done || long {
		t.Fatalf("released: done=%v long=%v", done, long)
	}
}

type fakeButtons map[hal.Button]bool

func (f fakeButtons) Down(b hal.Button) bool { return f[b] }

type fakeTouch struct {
	x, y int
	ok   bool
}

func (f *fakeTouch) Touching() (int, int, bool) { return f.x, f.y, f.ok }

func TestReaderPoll(t *testing.T) {
	btn := fakeButtons{}
	tp := &fakeTouch{}
	r := NewReader(btn, tp)

	r.Poll(0)
	btn[hal.ButtonAdj] = true
	tp.x, tp.y, tp.ok = 30, 40, true
	r.Poll(10)
	ev := r.Poll(60)
	if !ev.Adj || ev.Set || !ev.Tap || ev.X != 30 || ev.Y != 40 {
		t.Fatalf("events=%+v", ev)
	}
	if !ev.Any() || !r.Touching() || r.SetDown() {
		t.Fatalf("raw levels wrong")
	}

	none := NewReader(btn, nil)
	if none.Touching() {
		t.Fatalf("nil touch reports touching")
	}
	btn[hal.ButtonAlarm] = true
	if !none.AlarmSwitch() {
		t.Fatalf("alarm switch not read")
	}
}
