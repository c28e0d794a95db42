// Package input debounces the buttons and the touch panel. Everything is
// sampled from the main loop; nothing here blocks.
package input

import "deskclock/hal"

const (
	// HoldMillis is how long a button level must be stable.
	HoldMillis = 50
	// TouchStableMillis is how long a touch must stay put.
	TouchStableMillis = 50
	// TouchJitterPixels is the movement that restarts the touch timer.
	TouchJitterPixels = 50

	// A long press is held through LongPressSteps samples LongPressStepMillis
	// apart.
	LongPressSteps      = 5
	LongPressStepMillis = 500
)

// Button debounces one contact.
type Button struct {
	prevReading bool
	state       bool
	since       uint64
}

// Update samples the raw level and reports a debounced press (the
// released to pressed edge).
func (b *Button) Update(down bool, now uint64) bool {
	if down != b.prevReading {
		b.prevReading = down
		b.since = now
		return false
	}
	if down != b.state && now-b.since >= HoldMillis {
		b.state = down
		return down
	}
	return false
}

// Touch debounces the touch panel.
type Touch struct {
	prevReading bool
	state       bool
	x, y        int
	since       uint64
}

// Update samples the panel and reports a debounced touch start at the
// returned position.
func (t *Touch) Update(x, y int, touching bool, now uint64) (int, int, bool) {
	if !touching {
		x, y = t.x, t.y
	}
	if touching != t.prevReading || abs(x-t.x) > TouchJitterPixels || abs(y-t.y) > TouchJitterPixels {
		t.prevReading = touching
		t.x, t.y = x, y
		t.since = now
		return x, y, false
	}
	if touching != t.state && now-t.since >= TouchStableMillis {
		t.state = touching
		return x, y, touching
	}
	return x, y, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// LongPress times a hold without blocking. Start it on the press, then
// feed it the raw level until it reports done.
type LongPress struct {
	start   uint64
	samples int
}

func (l *LongPress) Start(now uint64) {
	l.start = now
	l.samples = 0
}

// Update reports done once the hold is released or has lasted
// LongPressSteps samples; long is set only in the second case.
func (l *LongPress) Update(held bool, now uint64) (done, long bool) {
	if !held {
		return true, false
	}
	for l.samples < LongPressSteps && now-l.start >= uint64(l.samples+1)*LongPressStepMillis {
		l.samples++
	}
	if l.samples == LongPressSteps {
		return true, true
	}
	return false, false
}

// Events is one poll of every input.
type Events struct {
	Set, Adj bool
	// Tap is a debounced touch start at (X, Y).
	Tap  bool
	X, Y int
}

// Any reports whether anything was pressed.
func (e Events) Any() bool { return e.Set || e.Adj || e.Tap }

// Reader polls the HAL inputs.
type Reader struct {
	buttons hal.Buttons
	touch   hal.Touch

	set, adj Button
	tap      Touch
}

// NewReader accepts a nil touch for panels without an overlay.
func NewReader(buttons hal.Buttons, touch hal.Touch) *Reader {
	return &Reader{buttons: buttons, touch: touch}
}

func (r *Reader) Poll(now uint64) Events {
	var ev Events
	if r.buttons != nil {
		ev.Set = r.set.Update(r.buttons.Down(hal.ButtonSet), now)
		ev.Adj = r.adj.Update(r.buttons.Down(hal.ButtonAdj), now)
	}
	if r.touch != nil {
		x, y, ok := r.touch.Touching()
		ev.X, ev.Y, ev.Tap = r.tap.Update(x, y, ok, now)
	}
	return ev
}

// SetDown is the raw level of the SET button.
func (r *Reader) SetDown() bool {
	return r.buttons != nil && r.buttons.Down(hal.ButtonSet)
}

// Touching is the raw touch state.
func (r *Reader) Touching() bool {
	if r.touch == nil {
		return false
	}
	_, _, ok := r.touch.Touching()
	return ok
}

// AlarmSwitch is the raw level of the arm switch.
func (r *Reader) AlarmSwitch() bool {
	return r.buttons != nil && r.buttons.Down(hal.ButtonAlarm)
}
