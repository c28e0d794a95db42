// Package app wires the HAL to the clock and drives it from the host or
// firmware main loop.
package app

import (
	"fmt"

	"deskclock/hal"
	"deskclock/internal/alarm"
	"deskclock/internal/bootlog"
	"deskclock/internal/buildinfo"
	"deskclock/internal/clock"
	"deskclock/internal/config"
	"deskclock/internal/glyph"
	"deskclock/internal/input"
	"deskclock/internal/layout"
	"deskclock/internal/render"
	"deskclock/internal/settings"
	"deskclock/internal/weather"
)

type system struct {
	h       hal.HAL
	console *bootlog.Console
	clock   *clock.Clock
	started bool

	presentErr error
	halted     error
}

// New builds the clock and returns its step function. Errors during
// start-up are left on the boot console and returned from every step.
func New(h hal.HAL, cfg config.Config) func() error {
	sys, err := newSystem(h, cfg)
	if err != nil {
		sys.console.WriteLineString("boot: " + err.Error())
		return func() error { return err }
	}
	return sys.step
}

// Run starts the clock and steps it forever (TinyGo entrypoint).
func Run(h hal.HAL, cfg config.Config) {
	step := New(h, cfg)
	for {
		if err := step(); err != nil {
			if l := h.Logger(); l != nil {
				l.WriteLineString("halted: " + err.Error())
			}
			select {}
		}
	}
}

func newSystem(h hal.HAL, cfg config.Config) (*system, error) {
	var s hal.Surface
	if d := h.Display(); d != nil {
		s = d.Surface()
	}
	sys := &system{h: h, console: bootlog.New(h.Logger(), s)}
	log := sys.console
	log.WriteLineString(buildinfo.Line())

	if s == nil {
		return sys, fmt.Errorf("display: %w", hal.ErrNotImplemented)
	}
	if cfg.PanelWidth != s.Width() || cfg.PanelHeight != s.Height() {
		log.WriteLineString(fmt.Sprintf("boot: panel is %dx%d, using it", s.Width(), s.Height()))
		cfg.PanelWidth, cfg.PanelHeight = s.Width(), s.Height()
	}
	if err := cfg.Validate(); err != nil {
		return sys, err
	}
	cfg.HasTouch = cfg.HasTouch && h.Touch() != nil

	g, err := glyph.New(cfg.PanelWidth, cfg.PanelHeight)
	if err != nil {
		return sys, fmt.Errorf("glyphs: %w", err)
	}

	store := settings.NewStore(h.Flash(), log)
	st, err := store.Load()
	if err != nil {
		log.WriteLineString("settings: " + err.Error())
	}

	if t, err := h.RTC().ReadTime(); err != nil {
		log.WriteLineString("rtc: " + err.Error())
	} else {
		log.WriteLineString(fmt.Sprintf("rtc: 20%02d-%02d-%02d %02d:%02d", t.Year, t.Month, t.Day, t.Hour, t.Minute))
	}

	l := layout.New(cfg.PanelWidth, cfg.PanelHeight, cfg.ShowOffSegments)
	sys.clock = clock.New(cfg, clock.Deps{
		Renderer: render.New(cfg, l, g, s),
		RTC:      h.RTC(),
		Station:  weather.NewStation(cfg, h.Barometer(), h.Time(), log),
		Alarm:    alarm.New(h.Buzzer(), log, st.AlarmEnabled),
		Store:    store,
		Input:    input.NewReader(h.Buttons(), h.Touch()),
		Log:      log,
	}, st)
	return sys, nil
}

func (sys *system) step() (err error) {
	if sys.halted != nil {
		return sys.halted
	}
	defer func() {
		if v := recover(); v != nil {
			sys.halted = fmt.Errorf("panic: %v", v)
			showPanic(sys.h, v)
			err = sys.halted
		}
	}()

	now := sys.h.Time().Millis()
	if !sys.started {
		sys.started = true
		sys.console.Detach()
		sys.clock.Start(now)
	}
	sys.clock.Step(now)
	if d := sys.h.Display(); d != nil {
		// A failed transfer is repainted by the next change; log it once.
		perr := d.Present()
		if perr != nil && sys.presentErr == nil {
			sys.console.WriteLineString("display: " + perr.Error())
		}
		sys.presentErr = perr
	}
	return nil
}
