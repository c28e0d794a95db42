// Package clock is the clock face's scheduler. It repaints fields when
// their values change, blinks the colon, handles gestures and hands the
// panel to the editors.
package clock

import (
	"fmt"

	"deskclock/hal"
	"deskclock/internal/alarm"
	"deskclock/internal/config"
	"deskclock/internal/edit"
	"deskclock/internal/input"
	"deskclock/internal/layout"
	"deskclock/internal/moon"
	"deskclock/internal/render"
	"deskclock/internal/settings"
	"deskclock/internal/weather"
)

const (
	// CheckMillis is the minute check period.
	CheckMillis = 1000
	// ColonMillis is the colon blink half period.
	ColonMillis = 500

	// The daylight saving banner shows the old state, then the new one.
	dlsOldMillis = 500
	dlsNewMillis = 1500
)

type mode int

const (
	modeSplash mode = iota
	modeRun
	modeHold
	modeBanner
	modeRelease
	modeEdit
)

// holdOrigin is what started a long press.
type holdOrigin int

const (
	holdSetButton holdOrigin = iota
	holdTimeCell
	holdAlarmCell
)

// Deps are the collaborators of a Clock.
type Deps struct {
	Renderer *render.Renderer
	RTC      hal.RTC
	Station  *weather.Station
	Alarm    *alarm.Alarm
	Store    *settings.Store
	Input    *input.Reader
	Log      hal.Logger
}

// Clock owns the panel once the boot log is done. Step must be called
// from a single loop.
type Clock struct {
	cfg      config.Config
	r        *render.Renderer
	rtc      hal.RTC
	station  *weather.Station
	alarm    *alarm.Alarm
	store    *settings.Store
	in       *input.Reader
	log      hal.Logger
	editor   *edit.Editor
	settings settings.Settings

	state DisplayState
	mode  mode

	splashUntil uint64
	hold        input.LongPress
	holdFrom    holdOrigin
	holdCell    layout.Cell
	bannerAt    uint64
	bannerShown bool

	// retryAt holds off RTC reads after a failed one, even when the state
	// is invalid.
	retryAt uint64
}

// New builds a clock with the loaded settings.
func New(cfg config.Config, d Deps, s settings.Settings) *Clock {
	c := &Clock{
		cfg:      cfg,
		r:        d.Renderer,
		rtc:      d.RTC,
		station:  d.Station,
		alarm:    d.Alarm,
		store:    d.Store,
		in:       d.Input,
		log:      d.Log,
		settings: s,
		state:    NewDisplayState(),
	}
	c.editor = edit.NewEditor(cfg, c.r, target{c}, d.Log)
	return c
}

// State is the display cache, for inspection.
func (c *Clock) State() DisplayState { return c.state }

// Settings returns the current settings.
func (c *Clock) Settings() settings.Settings { return c.settings }

// Editing reports whether an editor owns the panel.
func (c *Clock) Editing() bool { return c.mode == modeEdit }

// Start paints the cell backgrounds and the splash face. The clock face
// follows once the splash time has passed.
func (c *Clock) Start(now uint64) {
	c.r.PaintBackgrounds()
	if c.cfg.SplashMillis == 0 {
		c.begin(now)
		return
	}
	c.r.Splash()
	c.mode = modeSplash
	c.splashUntil = now + c.cfg.SplashMillis
}

func (c *Clock) begin(now uint64) {
	c.r.PaintTime(render.BlankTime, false, render.All(len(render.BlankTime), false))
	c.station.Init()
	c.mode = modeRun
	c.state = NewDisplayState()
	c.state.CheckAt, c.state.ColonAt = now, now
	c.showAlarm()
	c.logf("clock: running")
}

// Reset forces a full repaint on the next check.
func (c *Clock) Reset() {
	c.showAlarm()
	c.state.Invalidate()
}

// Step runs one iteration of the main loop.
func (c *Clock) Step(now uint64) {
	ev := c.in.Poll(now)
	switch c.mode {
	case modeSplash:
		if now >= c.splashUntil {
			c.begin(now)
		}
	case modeEdit:
		if c.editor.Step(ev, now) {
			c.mode = modeRun
			c.Reset()
		}
	case modeHold:
		c.stepHold(now)
	case modeBanner:
		c.stepBanner(now)
	case modeRelease:
		if !c.in.Touching() && !c.in.SetDown() {
			c.mode = modeRun
		}
	case modeRun:
		if !c.cfg.HasTouch && c.alarm.PollSwitch(c.in.AlarmSwitch()) {
			c.showAlarm()
		}
		c.Tick(now)
		c.handle(ev, now)
	}
}

// Tick repaints changed fields. It blinks the colon every ColonMillis and
// reads the RTC minute every CheckMillis, or at once after a reset. A
// failed read is retried no sooner than CheckMillis later.
func (c *Clock) Tick(now uint64) {
	if c.cfg.BlinkColon && now-c.state.ColonAt >= ColonMillis {
		c.state.ColonAt = now
		c.state.ColonOn = !c.state.ColonOn
		c.r.UpdateColon(c.state.ColonOn)
	}
	if now < c.retryAt {
		return
	}
	if c.state.Valid() && now-c.state.CheckAt < CheckMillis {
		return
	}
	c.state.CheckAt = now

	minute, err := c.rtc.ReadMinute()
	if err != nil {
		c.retryAt = now + CheckMillis
		c.logf("clock: read minute: %v", err)
		return
	}
	if minute == c.state.Minute {
		return
	}
	t, err := c.rtc.ReadTime()
	if err != nil {
		c.retryAt = now + CheckMillis
		c.logf("clock: read time: %v", err)
		return
	}
	c.state.Minute = minute
	c.alarm.Check(t.Hour, t.Minute, c.settings.AlarmHour, c.settings.AlarmMinute)

	lit := render.All(len(render.BlankTime), true)
	c.r.ShowTime(t.Hour, t.Minute, c.settings.DLS, lit)
	if c.cfg.BlinkColon && !c.state.ColonOn {
		c.r.UpdateColon(false)
	}

	if day := dayKey(t.DayOfWeek, t.Day, t.Month, t.Year); day != c.state.Day {
		c.state.Day = day
		c.r.ShowDate(t.DayOfWeek, t.Day, t.Month, t.Year, render.All(len(render.SplashDate), true))
	}

	c.station.Update(t)
	if temp := c.station.Temperature(); temp != c.state.Temperature {
		c.state.Temperature = temp
		c.r.ShowTemperature(temp)
	}

	forecast, segs := c.station.Forecast(), c.moonSegments(t)
	if forecast != c.state.Forecast || segs != c.state.Segments {
		c.state.Forecast, c.state.Segments = forecast, segs
		c.r.PaintWeather(forecast, segs, c.settings.ForecastIcons, c.station.PressureHPa())
	}
	if c.cfg.Debug {
		c.r.PaintDebug(c.station.Info(), forecast)
	}
}

func (c *Clock) moonSegments(t hal.DateTime) uint8 {
	age := moon.CalcAge(c.settings.MoonReference, t.Day, t.Month, 2000+t.Year, t.Hour, t.Minute)
	return moon.Segments(age.Angle, c.cfg.Southern)
}

func (c *Clock) showAlarm() {
	c.r.ShowAlarmState(c.settings.AlarmHour, c.settings.AlarmMinute, c.alarm.Enabled())
}

// handle dispatches debounced input while the face is showing.
func (c *Clock) handle(ev input.Events, now uint64) {
	if !ev.Any() {
		return
	}
	// Any press while the buzzer sounds only silences it.
	if c.alarm.Silence() {
		if ev.Tap {
			c.mode = modeRelease
		}
		return
	}
	switch {
	case ev.Set:
		c.startHold(holdSetButton, layout.None, now)
	case ev.Tap:
		c.tap(ev.X, ev.Y, now)
	}
}

func (c *Clock) tap(x, y int, now uint64) {
	cell := c.r.Layout().CellAt(x, y)
	switch {
	case cell == layout.Time:
		c.startHold(holdTimeCell, cell, now)
	case cell == layout.Alarm && c.cfg.HasTouch:
		c.startHold(holdAlarmCell, cell, now)
	case cell == layout.Weather && x < c.r.MoonTextX():
		c.ToggleFace()
		c.mode = modeRelease
	default:
		c.startEdit(cell, now)
	}
}

func (c *Clock) startHold(from holdOrigin, cell layout.Cell, now uint64) {
	c.mode = modeHold
	c.holdFrom = from
	c.holdCell = cell
	c.hold.Start(now)
}

func (c *Clock) stepHold(now uint64) {
	held := c.in.Touching()
	if c.holdFrom == holdSetButton {
		held = c.in.SetDown()
	}
	done, long := c.hold.Update(held, now)
	if !done {
		return
	}
	c.mode = modeRun
	switch {
	case long && c.holdFrom == holdAlarmCell:
		c.ToggleAlarm()
		c.Reset()
		c.mode = modeRelease
	case long:
		c.ToggleDLS(now)
	case c.holdFrom == holdSetButton:
		c.editor.StartChain(now)
		c.mode = modeEdit
	default:
		c.startEdit(c.holdCell, now)
	}
}

func (c *Clock) startEdit(cell layout.Cell, now uint64) {
	if c.editor.StartDirect(cell, now) {
		c.mode = modeEdit
	}
}

// ToggleDLS flips the daylight hour and shows the banner.
func (c *Clock) ToggleDLS(now uint64) {
	c.settings.DLS = !c.settings.DLS
	c.save()
	c.logf("clock: daylight saving %v", c.settings.DLS)
	c.r.ShowDLS(!c.settings.DLS)
	c.mode = modeBanner
	c.bannerAt = now
	c.bannerShown = false
}

func (c *Clock) stepBanner(now uint64) {
	if !c.bannerShown && now-c.bannerAt >= dlsOldMillis {
		c.r.ShowDLS(c.settings.DLS)
		c.bannerShown = true
	}
	if now-c.bannerAt >= dlsOldMillis+dlsNewMillis {
		c.Reset()
		c.mode = modeRelease
	}
}

// ToggleAlarm arms or disarms the alarm on touch panels.
func (c *Clock) ToggleAlarm() {
	c.alarm.SetEnabled(!c.alarm.Enabled())
	c.settings.AlarmEnabled = c.alarm.Enabled()
	c.save()
	c.showAlarm()
}

// ToggleFace switches the forecast between icons and text.
func (c *Clock) ToggleFace() {
	c.r.EraseForecast(c.settings.ForecastIcons)
	c.settings.ForecastIcons = !c.settings.ForecastIcons
	c.save()
	c.logf("clock: forecast icons %v", c.settings.ForecastIcons)
	c.r.PaintForecast(c.state.Forecast, c.settings.ForecastIcons, c.station.PressureHPa())
}

func (c *Clock) save() {
	if c.store == nil {
		return
	}
	if err := c.store.Save(c.settings); err != nil {
		c.logf("clock: save settings: %v", err)
	}
}

func (c *Clock) logf(format string, args ...any) {
	if c.log != nil {
		c.log.WriteLineString(fmt.Sprintf(format, args...))
	}
}

// target gives the editors access to the clock's RTC and settings.
type target struct{ c *Clock }

func (t target) ReadTime() (hal.DateTime, error) { return t.c.rtc.ReadTime() }
func (t target) WriteTime(dt hal.DateTime) error { return t.c.rtc.WriteTime(dt) }
func (t target) Settings() settings.Settings    { return t.c.settings }
func (t target) AlarmArmed() bool               { return t.c.alarm.Enabled() }

func (t target) SaveSettings(s settings.Settings) error {
	t.c.settings = s
	if t.c.store == nil {
		return nil
	}
	return t.c.store.Save(s)
}
