package edit

import (
	"testing"

	"deskclock/hal"
	"deskclock/internal/config"
	"deskclock/internal/glyph"
	"deskclock/internal/input"
	"deskclock/internal/layout"
	"deskclock/internal/moon"
	"deskclock/internal/render"
	"deskclock/internal/settings"
)

type fakeTarget struct {
	now    hal.DateTime
	st     settings.Settings
	armed  bool
	writes []hal.DateTime
	saves  []settings.Settings
}

func (f *fakeTarget) ReadTime() (hal.DateTime, error) { return f.now, nil }

func (f *fakeTarget) WriteTime(t hal.DateTime) error {
	f.writes = append(f.writes, t)
	f.now = t
	return nil
}

func (f *fakeTarget) Settings() settings.Settings { return f.st }

func (f *fakeTarget) SaveSettings(s settings.Settings) error {
	f.saves = append(f.saves, s)
	f.st = s
	return nil
}

func (f *fakeTarget) AlarmArmed() bool { return f.armed }

func newRenderer(t *testing.T, cfg config.Config) *render.Renderer {
	t.Helper()
	g, err := glyph.New(cfg.PanelWidth, cfg.PanelHeight)
	if err != nil {
		t.Fatalf("glyph.New: %v", err)
	}
	l := layout.New(cfg.PanelWidth, cfg.PanelHeight, cfg.ShowOffSegments)
	return render.New(cfg, l, g, hal.NewBufferSurface(cfg.PanelWidth, cfg.PanelHeight))
}

var (
	none = input.Events{}
	set  = input.Events{Set: true}
	adj  = input.Events{Adj: true}
)

// driver steps a session 10 ms apart.
type driver struct {
	t   *testing.T
	s   *Session
	now uint64
}

func (d *driver) step(ev input.Events) bool {
	d.now += 10
	return d.s.Step(ev, d.now)
}

func (d *driver) press(ev input.Events, n int) {
	for i := 0; i < n; i++ {
		if d.step(ev) {
			d.t.Fatalf("session ended after press %d", i)
		}
	}
}

func TestIdleTimeoutCancels(t *testing.T) {
	cfg := config.Default()
	tgt := &fakeTarget{now: hal.DateTime{Hour: 8, Minute: 15, DayOfWeek: 1, Day: 1, Month: 1, Year: 24}, st: settings.Defaults()}
	s := BeginDirect(TimeFields, cfg, newRenderer(t, cfg), tgt, nil, 0)
	if s.State() != EditingField || s.Field() != 0 {
		t.Fatalf("direct entry state=%v field=%d", s.State(), s.Field())
	}
	for now := uint64(0); now < IdleMillis; now += 100 {
		if s.Step(none, now) {
			t.Fatalf("ended at %d ms", now)
		}
	}
	if !s.Step(none, IdleMillis) {
		t.Fatalf("still open after %d ms idle", IdleMillis)
	}
	if s.State() != Cancelling || s.Field() != -1 || s.Outcome() != Cancelled {
		t.Fatalf("after idle: state=%v field=%d outcome=%v", s.State(), s.Field(), s.Outcome())
	}
	if !s.Engaged() {
		t.Fatalf("idle cancel should end a chain")
	}
	if len(tgt.writes) != 0 {
		t.Fatalf("idle cancel wrote the clock")
	}
}

func TestInputResetsIdle(t *testing.T) {
	cfg := config.Default()
	tgt := &fakeTarget{st: settings.Defaults()}
	s := BeginDirect(TimeFields, cfg, newRenderer(t, cfg), tgt, nil, 0)
	s.Step(adj, 20000)
	if s.Step(none, 40000) {
		t.Fatalf("idle timer not restarted by input")
	}
	if !s.Step(none, 50000) {
		t.Fatalf("not cancelled 30 s after the last input")
	}
}

func TestTimeEdit(t *testing.T) {
	cfg := config.Default()
	tgt := &fakeTarget{now: hal.DateTime{Hour: 13, Minute: 59, Second: 42, DayOfWeek: 3, Day: 6, Month: 3, Year: 24}, st: settings.Defaults()}
	d := &driver{t: t, s: Begin(TimeFields, cfg, newRenderer(t, cfg), tgt, nil, 0)}

	if d.s.State() != Selecting || d.s.Field() != -1 {
		t.Fatalf("start state=%v field=%d", d.s.State(), d.s.Field())
	}
	d.press(adj, 1) // start editing the hour
	if d.s.State() != EditingField || d.s.Field() != 0 {
		t.Fatalf("after ADJ state=%v field=%d", d.s.State(), d.s.Field())
	}
	d.press(adj, 11) // 13 -> 0
	d.press(set, 1)
	d.press(adj, 1) // 59 -> 0
	if !d.step(set) {
		t.Fatalf("SET on the last field did not finish")
	}
	if d.s.State() != Saving || d.s.Outcome() != Saved {
		t.Fatalf("state=%v outcome=%v", d.s.State(), d.s.Outcome())
	}
	if len(tgt.writes) != 1 {
		t.Fatalf("writes=%d", len(tgt.writes))
	}
	w := tgt.writes[0]
	if w.Hour != 0 || w.Minute != 0 || w.Second != 0 || w.Day != 6 {
		t.Fatalf("wrote %+v", w)
	}
}

func TestAlarmEditSavesSettings(t *testing.T) {
	cfg := config.Default()
	tgt := &fakeTarget{st: settings.Defaults(), armed: true}
	d := &driver{t: t, s: BeginDirect(AlarmFields, cfg, newRenderer(t, cfg), tgt, nil, 0)}
	d.press(adj, 2) // 7 -> 9
	d.press(set, 1)
	d.press(adj, 30)
	if !d.step(set) {
		t.Fatalf("not finished")
	}
	if len(tgt.saves) != 1 || tgt.st.AlarmHour != 9 || tgt.st.AlarmMinute != 30 {
		t.Fatalf("saved %+v", tgt.saves)
	}
	if len(tgt.writes) != 0 {
		t.Fatalf("alarm edit wrote the clock")
	}
}

func TestDateMonthWrap(t *testing.T) {
	tests := []struct {
		name      string
		day, mon  int
		wantDay   int
		wantMonth int
	}{
		{"31st into a 30 day month", 31, 10, 1, 11},
		{"December wraps to January", 15, 12, 15, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tgt := &fakeTarget{now: hal.DateTime{Hour: 10, DayOfWeek: 2, Day: tt.day, Month: tt.mon, Year: 23}, st: settings.Defaults()}
			d := &driver{t: t, s: BeginDirect(DateFields, cfg, newRenderer(t, cfg), tgt, nil, 0)}
			d.press(set, 1) // year -> month
			d.press(adj, 1)
			d.press(set, 2) // month -> date -> weekday
			if !d.step(set) {
				t.Fatalf("not finished")
			}
			w := tgt.writes[0]
			if w.Day != tt.wantDay || w.Month != tt.wantMonth || w.Year != 23 || w.DayOfWeek != 2 || w.Hour != 10 {
				t.Fatalf("wrote %+v", w)
			}
		})
	}
}

func TestDateYear(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		bumps int
		want  int
	}{
		{"out of range kept when not bumped", 0, 0, 0},
		{"out of range moves to the first year", 0, 1, 23},
		{"late year moves to the first year", 99, 1, 23},
		{"in range steps", 30, 1, 31},
		{"last year wraps", 42, 1, 23},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tgt := &fakeTarget{now: hal.DateTime{DayOfWeek: 6, Day: 1, Month: 1, Year: tt.year}, st: settings.Defaults()}
			d := &driver{t: t, s: BeginDirect(DateFields, cfg, newRenderer(t, cfg), tgt, nil, 0)}
			d.press(adj, tt.bumps)
			d.press(set, 3)
			if !d.step(set) {
				t.Fatalf("not finished")
			}
			if w := tgt.writes[0]; w.Year != tt.want || w.DayOfWeek != 6 {
				t.Fatalf("wrote %+v, want year %d", w, tt.want)
			}
		})
	}
}

func TestDateBlinkSpans(t *testing.T) {
	for _, dayFirst := range []bool{true, false} {
		cfg := config.Default()
		cfg.DayFirst = dayFirst
		tgt := &fakeTarget{now: hal.DateTime{DayOfWeek: 1, Day: 1, Month: 1, Year: 24}, st: settings.Defaults()}
		s := BeginDirect(DateFields, cfg, newRenderer(t, cfg), tgt, nil, 0)
		s.Step(set, 10) // month
		s.Step(none, 10+BlinkMillis)
		vis, _ := s.Visibility()
		monthAt := 4
		if dayFirst {
			monthAt = 7
		}
		for i := 0; i < len(vis); i++ {
			blinking := i == monthAt || i == monthAt+1
			if vis.On(i) == blinking {
				t.Fatalf("dayFirst=%v: glyph %d on=%v", dayFirst, i, vis.On(i))
			}
		}
	}
}

func TestSelectingBlinksEverything(t *testing.T) {
	cfg := config.Default()
	tgt := &fakeTarget{st: settings.Defaults(), armed: true}
	s := Begin(AlarmFields, cfg, newRenderer(t, cfg), tgt, nil, 0)
	vis, bell := s.Visibility()
	if !bell || len(vis) != 5 || !vis.On(0) || !vis.On(4) {
		t.Fatalf("lit phase vis=%v bell=%v", vis, bell)
	}
	s.Step(none, BlinkMillis)
	vis, bell = s.Visibility()
	if bell || vis.Any() {
		t.Fatalf("dark phase vis=%v bell=%v", vis, bell)
	}
}

func TestTapActsOnOwnCell(t *testing.T) {
	cfg := config.Default()
	r := newRenderer(t, cfg)
	tgt := &fakeTarget{st: settings.Defaults()}
	s := Begin(TimeFields, cfg, r, tgt, nil, 0)

	tc := r.Layout().CellRect(layout.Time)
	s.Step(input.Events{Tap: true, X: tc.X + tc.W/2, Y: tc.Y + tc.H/2}, 10)
	if s.Field() != 0 {
		t.Fatalf("tap on own cell did not start editing (field %d)", s.Field())
	}
	dc := r.Layout().CellRect(layout.Date)
	s.Step(input.Events{Tap: true, X: dc.X + 5, Y: dc.Y + 5}, 20)
	if s.Field() != 1 {
		t.Fatalf("tap elsewhere did not act as SET (field %d)", s.Field())
	}
}

func TestMoonEditSetsReference(t *testing.T) {
	cfg := config.Default()
	now := hal.DateTime{Hour: 12, Minute: 0, DayOfWeek: 1, Day: 1, Month: 1, Year: 24}
	tgt := &fakeTarget{now: now, st: settings.Defaults()}
	age := moon.CalcAge(tgt.st.MoonReference, 1, 1, 2024, 12, 0)

	d := &driver{t: t, s: BeginDirect(MoonFields, cfg, newRenderer(t, cfg), tgt, nil, 0)}
	d.press(adj, 1)
	d.press(set, 2)
	if !d.step(set) {
		t.Fatalf("not finished")
	}
	inDays := (age.Next.InDays + 1) % 29
	want := moon.MakeSeconds(1, 1, 2024, inDays*24+age.Next.AtHour, age.Next.AtMinute)
	if tgt.st.MoonReference != want {
		t.Fatalf("reference=%d, want %d", tgt.st.MoonReference, want)
	}
}

func TestMoonText(t *testing.T) {
	if got := moonText(values{inDays: 7}, 0); got != "NEW/\x86\xD4.  .  7\xDE" {
		t.Fatalf("days text=%q", got)
	}
	if got := moonText(values{hour: 6, minute: 5}, 1); got != "NEW/\xF7\xF8.  .0605" {
		t.Fatalf("time text=%q", got)
	}
}

func TestChain(t *testing.T) {
	cfg := config.Default()
	r := newRenderer(t, cfg)

	tgt := &fakeTarget{st: settings.Defaults()}
	e := NewEditor(cfg, r, tgt, nil)
	e.StartChain(0)
	want := []Kind{TimeFields, DateFields, MoonFields}
	for i, k := range want {
		if !e.Active() || e.Session().Kind() != k {
			t.Fatalf("step %d: session %v, want %v", i, e.Session(), k)
		}
		finished := e.Step(set, uint64(10*(i+1)))
		if finished != (i == len(want)-1) {
			t.Fatalf("step %d: finished=%v", i, finished)
		}
	}
	if e.Active() {
		t.Fatalf("chain still active")
	}

	tgt.armed = true
	e.StartChain(100)
	e.Step(set, 110)
	if e.Session().Kind() != AlarmFields {
		t.Fatalf("armed alarm skipped, got %v", e.Session().Kind())
	}

	// Editing a field ends the chain.
	e.StartChain(200)
	e.Step(adj, 210)
	e.Step(set, 220)
	if !e.Step(set, 230) {
		t.Fatalf("saved time did not end the chain")
	}
	if e.Active() {
		t.Fatalf("chain continued after a save")
	}
}

func TestDirectEntry(t *testing.T) {
	cfg := config.Default()
	tgt := &fakeTarget{st: settings.Defaults()}
	e := NewEditor(cfg, newRenderer(t, cfg), tgt, nil)
	if e.StartDirect(layout.Temperature, 0) || e.StartDirect(layout.Alarm, 0) || e.StartDirect(layout.None, 0) {
		t.Fatalf("direct edit opened for a cell without an editor")
	}
	if !e.StartDirect(layout.Weather, 0) || e.Session().Kind() != MoonFields || e.Session().Field() != 0 {
		t.Fatalf("weather cell did not open the moon editor")
	}
}
