package render

// AppendFormat appends value right-aligned in digits places. Leading zeros
// become pad, except that a zero value still shows its ones digit. A
// negative value's sign replaces the last pad character; with no pad left
// the sign is dropped. A pad of 0 disables padding.
func AppendFormat(b []byte, value, digits int, pad byte) []byte {
	msd := 1
	for i := 1; i < digits; i++ {
		msd *= 10
	}
	prefix := pad
	if value < 0 {
		value = -value
		prefix = '-'
	}
	signAt := -1
	for ; msd > 0; msd /= 10 {
		if value < msd && pad != 0 && !(value == 0 && msd == 1) {
			signAt = len(b)
			b = append(b, pad)
		} else {
			b = append(b, byte('0'+value/msd))
			pad = 0
		}
		value %= msd
	}
	if signAt >= 0 {
		b[signAt] = prefix
	}
	return b
}

// Format is AppendFormat into a new string.
func Format(value, digits int, pad byte) string {
	return string(AppendFormat(make([]byte, 0, digits), value, digits, pad))
}

// BlankTime is shown for a hidden time.
const BlankTime = "  :  "

// FormatTime renders "HH:MM". In 12-hour mode the hour is space padded and
// pm reports the afternoon; 24-hour mode pads with zeros.
func FormatTime(hour24, minute int, hour12 bool) (text string, pm bool) {
	b := make([]byte, 0, len(BlankTime))
	if hour12 {
		h := hour24
		if h >= 12 {
			pm = true
			if h > 12 {
				h -= 12
			}
		}
		if h == 0 {
			h = 12
		}
		b = AppendFormat(b, h, 2, ' ')
	} else {
		b = AppendFormat(b, hour24, 2, '0')
	}
	b = append(b, ':')
	b = AppendFormat(b, minute, 2, '0')
	return string(b), pm
}

var dayNames = [8]string{"---", "MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

// DateText renders "WWW/DD.MM.YYYY" (or MM.DD). The '/' is an unpainted
// spacer that still occupies a glyph position.
func DateText(dayOfWeek, date, month, year int, dayFirst bool) string {
	b := make([]byte, 0, 14)
	if dayOfWeek >= 1 && dayOfWeek <= 7 {
		b = append(b, dayNames[dayOfWeek]...)
	} else {
		b = append(b, dayNames[0]...)
	}
	b = append(b, '/')
	first, second := month, date
	if dayFirst {
		first, second = date, month
	}
	b = AppendFormat(b, first, 2, ' ')
	b = append(b, '.')
	b = AppendFormat(b, second, 2, ' ')
	b = append(b, '.')
	b = AppendFormat(b, 2000+year, 4, '0')
	return string(b)
}

// TemperatureText renders a Celsius reading in three places, converting to
// Fahrenheit when asked.
func TemperatureText(celsius int, inCelsius bool) string {
	t := celsius
	if !inCelsius {
		t = 9*t/5 + 32
	}
	return Format(t, 3, ' ')
}

// PressureText is the forecast line shown when no forecast is available
// yet: the station pressure, or "N/A" before the first reading.
func PressureText(hPa float64) string {
	if hPa == 0 {
		return "N/A"
	}
	return Format(int(hPa+0.5), 4, ' ') + " HPA"
}

func isAlpha(ch byte) bool {
	return ch >= 'A' && ch <= 'Z' || ch >= 'a' && ch <= 'z'
}

func toUpper(ch byte) byte {
	if ch >= 'a' && ch <= 'z' {
		return ch - ('a' - 'A')
	}
	return ch
}
