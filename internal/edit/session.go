// Package edit runs the in-place editors for the time, alarm, date and
// moon reference. A session is stepped from the main loop and never
// blocks.
package edit

import (
	"fmt"

	"deskclock/hal"
	"deskclock/internal/config"
	"deskclock/internal/input"
	"deskclock/internal/layout"
	"deskclock/internal/moon"
	"deskclock/internal/render"
	"deskclock/internal/settings"
)

const (
	// BlinkMillis is the half period of the field blink.
	BlinkMillis = 500
	// IdleMillis without input cancels the session.
	IdleMillis = 30000
)

// State is the position of a session in its state machine.
type State int

const (
	// Selecting blinks every field together; ADJ starts editing, SET moves
	// on without editing.
	Selecting State = iota
	// EditingField blinks the current field; ADJ advances its value, SET
	// moves to the next field.
	EditingField
	// Saving commits the edited values. Terminal.
	Saving
	// Cancelling discards them. Terminal.
	Cancelling
)

func (s State) String() string {
	switch s {
	case Selecting:
		return "selecting"
	case EditingField:
		return "editing"
	case Saving:
		return "saving"
	case Cancelling:
		return "cancelling"
	}
	return "unknown"
}

// Outcome is how a finished session ended.
type Outcome int

const (
	// Declined means SET was pressed before any field was entered.
	Declined Outcome = iota
	Saved
	// Cancelled means the idle timeout expired.
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case Declined:
		return "skipped"
	case Saved:
		return "saved"
	case Cancelled:
		return "cancelled"
	}
	return "unknown"
}

// Target is where a session reads its starting values and commits them.
type Target interface {
	ReadTime() (hal.DateTime, error)
	WriteTime(t hal.DateTime) error
	Settings() settings.Settings
	SaveSettings(s settings.Settings) error
	AlarmArmed() bool
}

// Session edits one setting.
type Session struct {
	kind  Kind
	vt    *variant
	cfg   config.Config
	r     *render.Renderer
	t     Target
	log   hal.Logger
	state State
	// field is -1 while selecting.
	field   int
	outcome Outcome

	v        values
	settings settings.Settings

	blinkOn bool
	repaint bool
	blinkAt uint64
	idleAt  uint64
}

// Begin opens a session in the Selecting state.
func Begin(kind Kind, cfg config.Config, r *render.Renderer, t Target, log hal.Logger, now uint64) *Session {
	s := &Session{
		kind:     kind,
		vt:       variants[kind],
		cfg:      cfg,
		r:        r,
		t:        t,
		log:      log,
		state:    Selecting,
		field:    -1,
		settings: t.Settings(),
		blinkOn:  true,
		repaint:  true,
		blinkAt:  now,
		idleAt:   now,
	}
	s.load()
	s.logf("edit: %v", kind)
	return s
}

// BeginDirect opens a session already editing its first field.
func BeginDirect(kind Kind, cfg config.Config, r *render.Renderer, t Target, log hal.Logger, now uint64) *Session {
	s := Begin(kind, cfg, r, t, log, now)
	s.enterField(0)
	return s
}

func (s *Session) load() {
	rtc, err := s.t.ReadTime()
	if err != nil {
		s.logf("edit: read time: %v", err)
	}
	switch s.kind {
	case TimeFields:
		s.v.hour, s.v.minute = rtc.Hour, rtc.Minute
	case AlarmFields:
		s.v.hour, s.v.minute = s.settings.AlarmHour, s.settings.AlarmMinute
	case DateFields:
		s.v.day = wrap(rtc.DayOfWeek-1, 7)
		s.v.date = max(rtc.Day-1, 0)
		s.v.month = wrap(rtc.Month-1, 12)
		s.v.year = wrap(rtc.Year, 100)
		clampDate(&s.v)
	case MoonFields:
		age := moon.CalcAge(s.settings.MoonReference, rtc.Day, rtc.Month, 2000+rtc.Year, rtc.Hour, rtc.Minute)
		s.v.inDays, s.v.hour, s.v.minute = age.Next.InDays, age.Next.AtHour, age.Next.AtMinute
		s.v.segments = moon.Segments(age.Angle, s.cfg.Southern)
	}
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

func (s *Session) Kind() Kind        { return s.kind }
func (s *Session) State() State      { return s.state }
func (s *Session) Field() int        { return s.field }
func (s *Session) Cell() layout.Cell { return s.vt.cell }
func (s *Session) Outcome() Outcome  { return s.outcome }
func (s *Session) Done() bool        { return s.state == Saving || s.state == Cancelling }

// Engaged reports whether the user entered a field (or let the session
// time out), which ends a chain of editors.
func (s *Session) Engaged() bool { return s.Done() && s.outcome != Declined }

// Step advances the session by one loop iteration and reports whether it
// has finished. Taps on the session's own cell act as ADJ, taps elsewhere
// as SET.
func (s *Session) Step(ev input.Events, now uint64) bool {
	if s.Done() {
		return true
	}
	if s.repaint {
		s.paint()
		s.repaint = false
	}
	if now-s.blinkAt >= BlinkMillis {
		s.blinkAt = now
		s.blinkOn = !s.blinkOn
		s.repaint = true
	}
	if now-s.idleAt >= IdleMillis {
		s.logf("edit: %v idle", s.kind)
		s.field = -1
		s.finish(Cancelled)
		return true
	}

	set, adj := ev.Set, ev.Adj && !ev.Set
	if ev.Tap {
		adj = s.r.Layout().CellAt(ev.X, ev.Y) == s.vt.cell
		set = !adj
	}
	switch {
	case set:
		s.idleAt = now
		if s.field < 0 {
			s.finish(Declined)
			return true
		}
		if s.field+1 >= s.vt.fields {
			s.finish(Saved)
			return true
		}
		s.enterField(s.field + 1)
	case adj:
		s.idleAt = now
		if s.field < 0 {
			s.enterField(0)
		} else {
			s.vt.bump(&s.v, s.field)
		}
		s.blinkOn, s.repaint = true, true
	}
	return false
}

func (s *Session) enterField(field int) {
	s.field = field
	s.state = EditingField
	if s.vt.enter != nil {
		s.vt.enter(s, field)
	}
	s.repaint = true
}

// lit is the visibility of the lit blink phase.
func (s *Session) lit() render.Visibility {
	vis := render.All(s.vt.glyphs, true)
	for _, d := range s.vt.dim {
		vis = vis.Without(d[0], d[1])
	}
	return vis
}

// Visibility returns what the current blink phase shows.
func (s *Session) Visibility() (render.Visibility, bool) {
	switch {
	case s.blinkOn:
		return s.lit(), true
	case s.field < 0:
		return render.All(s.vt.glyphs, false), false
	}
	from, to := s.vt.span(s, s.field)
	return s.lit().Without(from, to), true
}

func (s *Session) paint() {
	vis, indicator := s.Visibility()
	s.vt.paint(s, vis, indicator)
}

func (s *Session) finish(o Outcome) {
	s.outcome = o
	if o != Saved {
		s.state = Cancelling
		s.restore()
		s.logf("edit: %v %v", s.kind, o)
		return
	}
	s.state = Saving
	if err := s.commit(); err != nil {
		s.logf("edit: %v save: %v", s.kind, err)
		return
	}
	s.logf("edit: %v saved", s.kind)
}

// restore repaints the untouched value; the clock repaints the rest after
// its reset.
func (s *Session) restore() {
	if s.kind == MoonFields {
		s.r.PaintMoon(s.v.segments)
		return
	}
	s.field = -1
	s.blinkOn = true
	s.paint()
}

func (s *Session) commit() error {
	switch s.kind {
	case TimeFields:
		now, err := s.t.ReadTime()
		if err != nil {
			return err
		}
		now.Hour, now.Minute, now.Second = s.v.hour, s.v.minute, 0
		return s.t.WriteTime(now)
	case AlarmFields:
		st := s.t.Settings()
		st.AlarmHour, st.AlarmMinute = s.v.hour, s.v.minute
		return s.t.SaveSettings(st)
	case DateFields:
		now, err := s.t.ReadTime()
		if err != nil {
			return err
		}
		now.DayOfWeek = s.v.day + 1
		now.Day = s.v.date + 1
		now.Month = s.v.month + 1
		now.Year = s.v.year
		return s.t.WriteTime(now)
	case MoonFields:
		now, err := s.t.ReadTime()
		if err != nil {
			return err
		}
		st := s.t.Settings()
		st.MoonReference = moon.MakeSeconds(now.Day, now.Month, 2000+now.Year, s.v.inDays*24+s.v.hour, s.v.minute)
		return s.t.SaveSettings(st)
	}
	return nil
}

func (s *Session) logf(format string, args ...any) {
	if s.log != nil {
		s.log.WriteLineString(fmt.Sprintf(format, args...))
	}
}
