package render

// ShowTime formats and paints the time, adding the daylight hour.
func (r *Renderer) ShowTime(hour24, minute int, dls bool, vis Visibility) {
	if dls {
		hour24 = (hour24 + 1) % 24
	}
	text, pm := FormatTime(hour24, minute, r.cfg.Hour12)
	r.PaintTime(text, pm, vis)
}

// ShowAlarm formats and paints an alarm time.
func (r *Renderer) ShowAlarm(hour24, minute int, bell bool, vis Visibility) {
	text, pm := FormatTime(hour24, minute, r.cfg.Hour12)
	r.PaintAlarm(text, pm, bell, vis)
}

// ShowAlarmState paints the resting alarm cell. A disarmed alarm dims the
// bell, and the time too when configured to hide it.
func (r *Renderer) ShowAlarmState(hour24, minute int, armed bool) {
	n := len(BlankTime)
	switch {
	case armed:
		r.ShowAlarm(hour24, minute, true, All(n, true))
	case r.cfg.HideDisabledAlarm:
		r.ShowAlarm(hour24, minute, false, All(n, false))
	default:
		r.ShowAlarm(hour24, minute, false, All(n, true))
	}
}

// ShowDate formats and paints the date.
func (r *Renderer) ShowDate(dayOfWeek, date, month, year int, vis Visibility) {
	r.PaintDate(DateText(dayOfWeek, date, month, year, r.cfg.DayFirst), vis)
}

// ShowTemperature formats and paints a Celsius reading in the configured
// unit.
func (r *Renderer) ShowTemperature(celsius int) {
	r.PaintTemperature(TemperatureText(celsius, r.cfg.Celsius), r.cfg.Celsius)
}

// Banner texts for the date cell. Bytes with glyph.Custom set are raw
// seven segment patterns: 0xD4 is a lower case n, 0xF1 an F.
const (
	SplashDate = "MEW/  .  .2024"
	DLSOnText  = "DLS/  .  .  0\xD4"
	DLSOffText = "DLS/  .  . 0\xF1\xF1"
)

// BannerVisibility lights the three letters and the last four glyphs of a
// banner.
var BannerVisibility = FromBits(0b1110000000111100, 16, len(SplashDate))

// Splash paints the start-up face: everything dark except the banner.
func (r *Renderer) Splash() {
	n := len(BlankTime)
	r.PaintTime(BlankTime, false, All(n, false))
	r.PaintDate(SplashDate, BannerVisibility)
	r.PaintWeather(ForecastShadows, 0, true, 0)
	r.PaintTemperature("?  ", r.cfg.Celsius)
	r.PaintAlarm(BlankTime, false, false, All(n, false))
}

// ShowDLS paints the daylight saving banner.
func (r *Renderer) ShowDLS(on bool) {
	text := DLSOffText
	if on {
		text = DLSOnText
	}
	r.PaintDate(text, BannerVisibility)
}

// EraseForecast blanks the forecast area before switching faces.
func (r *Renderer) EraseForecast(icons bool) {
	r.PaintForecast(ForecastBlank, icons, 0)
}
