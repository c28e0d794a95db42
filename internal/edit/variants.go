package edit

import (
	"deskclock/internal/layout"
	"deskclock/internal/moon"
	"deskclock/internal/render"
)

// Kind selects what a session edits.
type Kind int

const (
	TimeFields Kind = iota
	AlarmFields
	DateFields
	MoonFields
)

func (k Kind) String() string {
	switch k {
	case TimeFields:
		return "time"
	case AlarmFields:
		return "alarm"
	case DateFields:
		return "date"
	case MoonFields:
		return "moon"
	}
	return "unknown"
}

// Years the date editor steps through. A year outside them read from the
// RTC is kept until the year field is bumped, which moves it to yearBase.
const (
	yearBase = 23
	yearSpan = 20
)

// values is the working copy a session edits. Date fields other than the
// two digit year are zero based.
type values struct {
	hour, minute int

	day, date, month, year int

	inDays   int
	segments uint8
}

// variant describes one editor: its cell, fields and how to paint,
// advance and commit them.
type variant struct {
	cell   layout.Cell
	fields int
	// glyphs is the length of the painted text.
	glyphs int
	// dim lists glyphs that stay off even in the lit phase.
	dim [][2]int
	// span is the glyph range that blinks while field is edited.
	span func(s *Session, field int) (from, to int)
	// enter runs when a field becomes current.
	enter func(s *Session, field int)
	bump  func(v *values, field int)
	paint func(s *Session, vis render.Visibility, indicator bool)
}

var timeVariant = variant{
	cell:   layout.Time,
	fields: 2,
	glyphs: len(render.BlankTime),
	span:   hourMinuteSpan,
	bump:   bumpHourMinute,
	paint: func(s *Session, vis render.Visibility, _ bool) {
		s.r.ShowTime(s.v.hour, s.v.minute, s.settings.DLS, vis)
	},
}

var alarmVariant = variant{
	cell:   layout.Alarm,
	fields: 2,
	glyphs: len(render.BlankTime),
	span:   hourMinuteSpan,
	bump:   bumpHourMinute,
	paint: func(s *Session, vis render.Visibility, bell bool) {
		s.r.ShowAlarm(s.v.hour, s.v.minute, bell, vis)
	},
}

func hourMinuteSpan(_ *Session, field int) (int, int) {
	if field == 0 {
		return 0, 2
	}
	return 3, 5
}

func bumpHourMinute(v *values, field int) {
	switch field {
	case 0:
		v.hour = (v.hour + 1) % 24
	case 1:
		v.minute = (v.minute + 1) % 60
	}
}

// Date fields go year, month, day of month, weekday so the day is
// clamped to the new month before it is edited.
var dateVariant = variant{
	cell:   layout.Date,
	fields: 4,
	glyphs: len("WWW/DD.MM.YYYY"),
	span: func(s *Session, field int) (int, int) {
		monthAt, dateAt := 4, 7
		if s.cfg.DayFirst {
			monthAt, dateAt = 7, 4
		}
		switch field {
		case 0:
			return 10, 14
		case 1:
			return monthAt, monthAt + 2
		case 2:
			return dateAt, dateAt + 2
		}
		return 0, 3
	},
	enter: func(s *Session, field int) {
		if field == 1 {
			clampDate(&s.v)
		}
	},
	bump: func(v *values, field int) {
		switch field {
		case 0:
			v.year = nextYear(v.year)
		case 1:
			v.month++
		case 2:
			v.date++
		case 3:
			v.day++
		}
		v.month %= 12
		clampDate(v)
		v.day %= 7
	},
	paint: func(s *Session, vis render.Visibility, _ bool) {
		s.r.ShowDate(s.v.day+1, s.v.date+1, s.v.month+1, s.v.year, vis)
	},
}

// clampDate wraps the day of month into the current month by modulo, so
// the 31st becomes the 1st of a 30 day month.
func clampDate(v *values) {
	v.date %= moon.DaysInMonth(v.month+1, v.year)
}

func nextYear(y int) int {
	if y < yearBase || y >= yearBase+yearSpan {
		return yearBase
	}
	return yearBase + (y+1-yearBase)%yearSpan
}

// The moon editor sets the next new moon as "in N days at HH:MM".
var moonVariant = variant{
	cell:   layout.Date,
	fields: 3,
	glyphs: len("NEW/IN.  .NNNd"),
	dim:    [][2]int{{6, 7}, {9, 10}},
	span: func(_ *Session, field int) (int, int) {
		switch field {
		case 0:
			return 10, 13
		case 1:
			return 10, 12
		}
		return 12, 14
	},
	enter: func(s *Session, field int) {
		if field == 0 {
			s.r.PaintMoon(s.v.segments)
		}
	},
	bump: func(v *values, field int) {
		switch field {
		case 0:
			v.inDays = (v.inDays + 1) % 29
		case 1:
			v.hour = (v.hour + 1) % 24
		case 2:
			v.minute = (v.minute + 1) % 60
		}
	},
	paint: func(s *Session, vis render.Visibility, on bool) {
		if s.field < 0 {
			segs := s.v.segments
			if !on {
				segs = ^segs
			}
			s.r.PaintMoon(segs)
			return
		}
		s.r.PaintDate(moonText(s.v, s.field), vis)
	},
}

// moonText reads "NEW In.  .NNNd" for the day field and "NEW At.  .HHMM"
// for the time fields. Bytes with bit 7 set are raw segment patterns.
func moonText(v values, field int) string {
	if field == 0 {
		b := append([]byte(nil), "NEW/\x86\xD4.  ."...)
		b = render.AppendFormat(b, v.inDays, 3, ' ')
		return string(append(b, 0xDE))
	}
	b := append([]byte(nil), "NEW/\xF7\xF8.  ."...)
	b = render.AppendFormat(b, v.hour, 2, '0')
	b = render.AppendFormat(b, v.minute, 2, '0')
	return string(b)
}

var variants = [...]*variant{
	TimeFields:  &timeVariant,
	AlarmFields: &alarmVariant,
	DateFields:  &dateVariant,
	MoonFields:  &moonVariant,
}
