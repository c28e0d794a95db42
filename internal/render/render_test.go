package render

import (
	"testing"

	"deskclock/hal"
	"deskclock/internal/config"
	"deskclock/internal/glyph"
	"deskclock/internal/layout"
	"deskclock/internal/weather"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		value, digits int
		pad           byte
		want          string
	}{
		{7, 2, ' ', " 7"},
		{0, 1, ' ', "0"},
		{0, 2, ' ', " 0"},
		{-5, 2, '0', "-5"},
		{-5, 3, ' ', " -5"},
		{-40, 3, ' ', "-40"},
		{-5, 1, ' ', "5"},
		{123, 3, '0', "123"},
		{5, 2, '0', "05"},
		{2024, 4, '0', "2024"},
		{7, 3, 0, "007"},
	}
	for _, tt := range tests {
		if got := Format(tt.value, tt.digits, tt.pad); got != tt.want {
			t.Fatalf("Format(%d, %d, %q)=%q, want %q", tt.value, tt.digits, tt.pad, got, tt.want)
		}
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		h, m   int
		hour12 bool
		want   string
		pm     bool
	}{
		{0, 5, true, "12:05", false},
		{11, 59, true, "11:59", false},
		{12, 0, true, "12:00", true},
		{13, 7, true, " 1:07", true},
		{23, 30, true, "11:30", true},
		{9, 5, false, "09:05", false},
		{0, 0, false, "00:00", false},
	}
	for _, tt := range tests {
		got, pm := FormatTime(tt.h, tt.m, tt.hour12)
		if got != tt.want || pm != tt.pm {
			t.Fatalf("FormatTime(%d, %d, %v)=%q,%v want %q,%v", tt.h, tt.m, tt.hour12, got, pm, tt.want, tt.pm)
		}
	}
}

func TestDateText(t *testing.T) {
	if got := DateText(6, 20, 9, 23, true); got != "SAT/20. 9.2023" {
		t.Fatalf("day first=%q", got)
	}
	if got := DateText(6, 20, 9, 23, false); got != "SAT/ 9.20.2023" {
		t.Fatalf("month first=%q", got)
	}
	if got := DateText(0, 1, 1, 0, true); got != "---/ 1. 1.2000" {
		t.Fatalf("bad weekday=%q", got)
	}
}

func TestTemperatureAndPressureText(t *testing.T) {
	if got := TemperatureText(21, true); got != " 21" {
		t.Fatalf("21C=%q", got)
	}
	if got := TemperatureText(20, false); got != " 68" {
		t.Fatalf("20C in F=%q", got)
	}
	if got := TemperatureText(-5, true); got != " -5" {
		t.Fatalf("-5C=%q", got)
	}
	if got := PressureText(0); got != "N/A" {
		t.Fatalf("no pressure=%q", got)
	}
	if got := PressureText(1013.4); got != "1013 HPA" {
		t.Fatalf("pressure=%q", got)
	}
	if got := PressureText(999.6); got != "1000 HPA" {
		t.Fatalf("pressure=%q", got)
	}
}

func TestForecastIcon(t *testing.T) {
	tests := []struct {
		letter byte
		want   int
	}{
		{'A', 0}, {'E', 0}, {'F', 1}, {'J', 1}, {'K', 2}, {'P', 3},
		{'T', 3}, {'U', 4}, {'Y', 4}, {'Z', 4}, {'b', 0},
		{'?', glyph.NumWeatherIcons}, {' ', glyph.NumWeatherIcons},
	}
	for _, tt := range tests {
		if got := ForecastIcon(tt.letter); got != tt.want {
			t.Fatalf("ForecastIcon(%q)=%d, want %d", tt.letter, got, tt.want)
		}
	}
}

func TestVisibility(t *testing.T) {
	v := BannerVisibility
	want := "11100000001111"
	if len(v) != len(want) {
		t.Fatalf("len=%d", len(v))
	}
	for i := range want {
		if v.On(i) != (want[i] == '1') {
			t.Fatalf("glyph %d on=%v", i, v.On(i))
		}
	}
	if v.On(-1) || v.On(len(v)) {
		t.Fatalf("out of range glyph on")
	}

	all := All(5, true)
	hour := all.Without(0, 2)
	if hour.On(0) || hour.On(1) || !hour.On(2) || !all.On(0) {
		t.Fatalf("Without=%v from %v", hour, all)
	}
	if All(3, false).Any() || !hour.Any() {
		t.Fatalf("Any wrong")
	}
}

const sentinel = hal.Color(0xF81F)

func newTestRenderer(t *testing.T) (*Renderer, *hal.BufferSurface) {
	t.Helper()
	cfg := config.Default()
	g, err := glyph.New(cfg.PanelWidth, cfg.PanelHeight)
	if err != nil {
		t.Fatalf("glyph.New: %v", err)
	}
	s := hal.NewBufferSurface(cfg.PanelWidth, cfg.PanelHeight)
	s.Clear(sentinel)
	l := layout.New(cfg.PanelWidth, cfg.PanelHeight, cfg.ShowOffSegments)
	return New(cfg, l, g, s), s
}

// countIn counts pixels of colour c inside rect.
func countIn(s *hal.BufferSurface, r layout.Rect, c hal.Color) int {
	n := 0
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			if s.At(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestPaintersStayInTheirCell(t *testing.T) {
	painters := []struct {
		cell  layout.Cell
		paint func(r *Renderer)
	}{
		{layout.Time, func(r *Renderer) { r.PaintTime("12:48", true, All(5, true)) }},
		{layout.Alarm, func(r *Renderer) { r.PaintAlarm("10:30", true, true, All(5, true)) }},
		{layout.Temperature, func(r *Renderer) { r.PaintTemperature("-12", true) }},
		{layout.Date, func(r *Renderer) { r.PaintDate("WED/31.12.2099", All(14, true)) }},
		{layout.Weather, func(r *Renderer) { r.PaintWeather('Q', 0x05, true, 1000) }},
		{layout.Weather, func(r *Renderer) { r.PaintWeather('Q', 0x05, false, 1000) }},
	}
	for _, p := range painters {
		t.Run(p.cell.String(), func(t *testing.T) {
			r, s := newTestRenderer(t)
			p.paint(r)
			l := r.Layout()
			for c := layout.Time; c < layout.NumCells; c++ {
				rect := l.CellRect(c)
				untouched := countIn(s, rect, sentinel)
				if c == p.cell {
					if untouched == rect.W*rect.H {
						t.Fatalf("nothing painted in %v", c)
					}
					if countIn(s, rect, r.on) == 0 {
						t.Fatalf("no lit pixels in %v", c)
					}
					continue
				}
				if untouched != rect.W*rect.H {
					t.Fatalf("painting %v touched %v", p.cell, c)
				}
			}
		})
	}
}

func TestVisibilitySelectsColour(t *testing.T) {
	r, s := newTestRenderer(t)
	rect := r.Layout().CellRect(layout.Time)

	r.PaintTime("88:88", false, All(5, false))
	if n := countIn(s, rect, r.on); n != 0 {
		t.Fatalf("all-off time painted %d lit pixels", n)
	}
	r.PaintTime("88:88", false, All(5, true).Without(0, 2))
	minutesOnly := countIn(s, rect, r.on)
	r.PaintTime("88:88", false, All(5, true))
	all := countIn(s, rect, r.on)
	if minutesOnly == 0 || minutesOnly >= all {
		t.Fatalf("lit pixels: minutes only %d, all %d", minutesOnly, all)
	}
}

func TestEraseForecast(t *testing.T) {
	for _, icons := range []bool{true, false} {
		r, s := newTestRenderer(t)
		r.PaintBackgrounds()
		r.PaintWeather(weather.Unknown, 0x0F, icons, 1012)

		cr := r.Layout().CellRect(layout.Weather)
		area := layout.Rect{X: cr.X, Y: cr.Y, W: cr.W / 2, H: cr.H}
		if countIn(s, area, r.on) == 0 {
			t.Fatalf("icons=%v: forecast painted nothing", icons)
		}
		r.EraseForecast(icons)
		_, h := r.g.LabelSize(glyph.LabelWeather)
		below := layout.Rect{X: area.X, Y: area.Y + h + 2*r.Layout().GapY, W: area.W, H: area.H - h - 2*r.Layout().GapY}
		if n := countIn(s, below, r.Layout().Colour(layout.Weather)); n != below.W*below.H {
			t.Fatalf("icons=%v: %d of %d pixels erased", icons, n, below.W*below.H)
		}
	}
}

func TestColonBlink(t *testing.T) {
	r, s := newTestRenderer(t)
	r.PaintTime("12:34", false, All(5, true))
	rect := layout.Rect{X: r.colonX, Y: r.colonY, W: r.colonW, H: r.g.LargeDigit.H}
	lit := countIn(s, rect, r.on)
	if lit == 0 {
		t.Fatalf("colon not painted")
	}
	r.UpdateColon(false)
	if countIn(s, rect, r.on) >= lit {
		t.Fatalf("colon still lit after UpdateColon(false)")
	}
}

func TestDebugText(t *testing.T) {
	got := DebugText(weather.Info{Raw: 10132, Adjusted: 10150, Old: 10100, Trend: weather.Rising}, 'B')
	if got != "DBG:10132 B  10100:10150 R" {
		t.Fatalf("DebugText=%q", got)
	}
}
