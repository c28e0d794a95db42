package render

import (
	"deskclock/hal"
	"deskclock/internal/glyph"
	"deskclock/internal/layout"
	"deskclock/internal/weather"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// DebugFont is used by the sensor overlay.
var DebugFont tinyfont.Fonter = &proggy.TinySZ8pt7b

// DebugText renders "DBG:RRRRR F  OOOOO:AAAAA T": the raw pressure, the
// forecast, the pressure three hours ago, the current adjusted pressure
// and the trend.
func DebugText(info weather.Info, forecast byte) string {
	b := append([]byte(nil), "DBG:"...)
	b = AppendFormat(b, info.Raw, 5, ' ')
	b = append(b, ' ', forecast, ' ', ' ')
	b = AppendFormat(b, info.Old, 5, ' ')
	b = append(b, ':')
	b = AppendFormat(b, info.Adjusted, 5, ' ')
	b = append(b, ' ', byte(info.Trend))
	return string(b)
}

// PaintDebug overlays the sampler state on the weather cell in black on
// white.
func (r *Renderer) PaintDebug(info weather.Info, forecast byte) {
	cr := r.layout.CellRect(layout.Weather)
	x := cr.X + cr.W/3
	y := cr.Y + 8
	text := DebugText(info, forecast)
	_, w := tinyfont.LineWidth(DebugFont, text)
	h := int(DebugFont.GetYAdvance())
	r.s.FillColor(r.s.BeginFill(x, y, int(w)+2, h+2), hal.RGB(0xFF, 0xFF, 0xFF))
	glyph.WriteText(r.s, DebugFont, x+1, y-1, text, 0)
}
