// Package alarm arms, triggers and silences the buzzer.
package alarm

import (
	"fmt"

	"deskclock/hal"
)

// Alarm tracks the armed state and the buzzer.
type Alarm struct {
	buzzer hal.Buzzer
	log    hal.Logger

	enabled   bool
	buzzing   bool
	triggered bool
}

// New returns a silent alarm with the given armed state.
func New(buzzer hal.Buzzer, log hal.Logger, enabled bool) *Alarm {
	a := &Alarm{buzzer: buzzer, log: log, enabled: enabled}
	a.setBuzzer(false)
	return a
}

func (a *Alarm) Enabled() bool { return a.enabled }
func (a *Alarm) Buzzing() bool { return a.buzzing }

// SetEnabled arms or disarms. Disarming silences a sounding buzzer.
func (a *Alarm) SetEnabled(enabled bool) {
	a.enabled = enabled
	if !enabled && a.buzzing {
		a.setBuzzer(false)
	}
	a.logf("alarm: enabled=%v", enabled)
}

// PollSwitch follows the arm switch on panels without touch. It reports
// whether the armed state changed.
func (a *Alarm) PollSwitch(armed bool) bool {
	if !armed && a.buzzing {
		a.setBuzzer(false)
	}
	if armed == a.enabled {
		return false
	}
	a.enabled = armed
	a.logf("alarm: switch enabled=%v", armed)
	return true
}

// Check starts the buzzer when an armed alarm's time is reached. It fires
// once per match, however often it is called within the minute.
func (a *Alarm) Check(hour, minute, alarmHour, alarmMinute int) {
	match := hour == alarmHour && minute == alarmMinute
	if a.enabled && match && !a.triggered {
		a.logf("alarm: triggered at %02d:%02d", hour, minute)
		a.setBuzzer(true)
	}
	a.triggered = match
}

// Silence stops a sounding buzzer. It reports whether it did, in which
// case the button press or touch that caused the call is absorbed.
func (a *Alarm) Silence() bool {
	if !a.buzzing {
		return false
	}
	a.setBuzzer(false)
	a.logf("alarm: silenced")
	return true
}

func (a *Alarm) setBuzzer(on bool) {
	a.buzzing = on
	if a.buzzer != nil {
		a.buzzer.Set(on)
	}
}

func (a *Alarm) logf(format string, args ...any) {
	if a.log != nil {
		a.log.WriteLineString(fmt.Sprintf(format, args...))
	}
}
