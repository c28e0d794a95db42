//go:build !tinygo

package hal

import (
	"sync"
	"time"
)

// hostRTC follows the system clock plus an offset that WriteTime adjusts.
type hostRTC struct {
	mu     sync.Mutex
	offset time.Duration
	// dowShift is the difference between the stored and the calendar day of
	// week. The DS3231 keeps the two independently.
	dowShift int
	now      func() time.Time
}

func newHostRTC(offset time.Duration) *hostRTC {
	return &hostRTC{offset: offset, now: time.Now}
}

func (r *hostRTC) current() (time.Time, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.now().Add(r.offset), r.dowShift
}

func calendarDOW(t time.Time) int {
	dow := int(t.Weekday())
	if dow == 0 {
		dow = 7
	}
	return dow
}

func (r *hostRTC) ReadMinute() (int, error) {
	t, _ := r.current()
	return t.Minute(), nil
}

func (r *hostRTC) ReadTime() (DateTime, error) {
	t, shift := r.current()
	dow := (calendarDOW(t)-1+shift)%7 + 1
	year := t.Year() - 2000
	if year < 0 {
		year = 0
	}
	return DateTime{
		Hour:      t.Hour(),
		Minute:    t.Minute(),
		Second:    t.Second(),
		DayOfWeek: dow,
		Day:       t.Day(),
		Month:     int(t.Month()),
		Year:      year % 100,
	}, nil
}

func (r *hostRTC) WriteTime(dt DateTime) error {
	if dt.Month < 1 || dt.Month > 12 || dt.Day < 1 || dt.Day > 31 {
		return ErrInvalidTime
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	want := time.Date(2000+dt.Year, time.Month(dt.Month), dt.Day, dt.Hour, dt.Minute, dt.Second, 0, now.Location())
	r.offset = want.Sub(now)
	if dt.DayOfWeek >= 1 && dt.DayOfWeek <= 7 {
		r.dowShift = ((dt.DayOfWeek-calendarDOW(want))%7 + 7) % 7
	}
	return nil
}
