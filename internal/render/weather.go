package render

import (
	"deskclock/internal/glyph"
	"deskclock/internal/layout"
	"deskclock/internal/weather"
)

// Forecast values with special meaning to PaintForecast, besides the
// letters and weather.Unknown.
const (
	// ForecastBlank erases the forecast area to the cell colour.
	ForecastBlank byte = '!'
	// ForecastShadows paints only the unlit glyphs.
	ForecastShadows byte = '*'
)

const forecastColumns = 24

// ForecastIcon maps a forecast letter onto one of the five icons, from
// sunny to stormy. Anything else returns glyph.NumWeatherIcons.
func ForecastIcon(letter byte) int {
	if !isAlpha(letter) {
		return glyph.NumWeatherIcons
	}
	bucket := 26 / glyph.NumWeatherIcons
	return min(int(toUpper(letter)-'A')/bucket, glyph.NumWeatherIcons-1)
}

// PaintMoon paints the moon glyph at the right of the weather cell.
func (r *Renderer) PaintMoon(segments uint8) {
	const cell = layout.Weather
	cr := r.layout.CellRect(cell)
	_, h := r.g.LabelSize(glyph.LabelMoon)
	x := cr.X + cr.W - h - r.g.Moon.W
	y := cr.Y + (cr.H-r.g.Moon.H)/2 + 2*r.layout.GapY + 1
	r.g.PaintMoon(r.s, x, y, segments, r.on, r.layout.ColourOff(cell))
}

// PaintForecast paints the forecast as five icons (the matching one lit)
// or as two lines of text. Unknown lights every icon or shows the
// pressure instead of a forecast.
func (r *Renderer) PaintForecast(forecast byte, icons bool, pressureHPa float64) {
	const cell = layout.Weather
	cr := r.layout.CellRect(cell)
	gapY := r.layout.GapY

	bg := r.layout.ColourOff(cell)
	switch forecast {
	case ForecastBlank:
		bg = r.layout.Colour(cell)
	case ForecastShadows:
		forecast = ForecastBlank
	}

	if icons {
		icon := ForecastIcon(forecast)
		y := cr.Y + (cr.H-r.g.Weather.H)/2 + gapY
		for idx := 0; idx < glyph.NumWeatherIcons; idx++ {
			c := bg
			if idx == icon || forecast == weather.Unknown {
				c = r.on
			}
			r.g.PaintWeather(r.s, cr.X+r.g.Weather.W*idx, y, idx, c)
		}
		return
	}

	var text string
	switch {
	case isAlpha(forecast):
		text = weather.Text(forecast)
	case forecast == weather.Unknown:
		text = PressureText(pressureHPa)
	}
	lines := weather.Lines(text)

	_, h := r.g.LabelSize(glyph.LabelWeather)
	width := r.g.VerySmallChar.W + gapY
	y := cr.Y + h + 4*gapY
	for l := 0; l < 2; l++ {
		line := ""
		if l < len(lines) {
			line = lines[l]
		}
		x := cr.X + h
		for col := 0; col < forecastColumns; col++ {
			ch := byte(' ')
			if col < len(line) {
				ch = toUpper(line[col])
			}
			r.g.PaintVerySmallChar(r.s, x, y, ch, r.on, bg)
			x += width
		}
		y += r.g.VerySmallChar.H + 2*gapY
	}
}

// PaintWeather paints the whole weather cell: labels, moon and forecast.
func (r *Renderer) PaintWeather(forecast byte, segments uint8, icons bool, pressureHPa float64) {
	const cell = layout.Weather
	cr := r.layout.CellRect(cell)
	bg := r.layout.Colour(cell)
	_, h := r.g.LabelSize(glyph.LabelWeather)
	r.g.PaintLabel(r.s, cr.X+h, cr.Y+r.layout.GapY, glyph.LabelWeather, r.on, bg)
	r.g.PaintLabel(r.s, r.moonTextX, cr.Y+r.layout.GapY, glyph.LabelMoon, r.on, bg)
	r.PaintMoon(segments)
	r.PaintForecast(forecast, icons, pressureHPa)
}
