// Package weather is a Zambretti style forecaster driven by the barometer.
// It is a novelty: the letter tables come from a UK forecasting dial.
package weather

import "strings"

// Forecast letters outside 'A'..'Z'.
const (
	// Unknown is shown until three hours of pressure history exist.
	Unknown byte = '?'
	// OutOfRange means the pressure fell outside the selected table.
	OutOfRange byte = ' '
)

// Trend is the three hour pressure tendency.
type Trend byte

const (
	TrendUnknown Trend = '?'
	Rising       Trend = 'R'
	Falling      Trend = 'F'
	Steady       Trend = 'S'
)

// Season selects the seasonal step along a table.
type Season int

const (
	OtherSeason Season = iota
	Summer
	Winter
)

// SeasonOf maps a month 1..12 to the forecast season. The southern
// hemisphere swaps summer and winter.
func SeasonOf(month int, southern bool) Season {
	const (
		junJulAug = 0b0000111000000
		decJanFeb = 0b1000000000110
	)
	bit := 1 << uint(month)
	summer, winter := junJulAug, decJanFeb
	if southern {
		summer, winter = winter, summer
	}
	switch {
	case summer&bit != 0:
		return Summer
	case winter&bit != 0:
		return Winter
	}
	return OtherSeason
}

type table struct {
	letters string
	hPa     []int
}

// Letters run from the highest pressure to the lowest.
var (
	risingTable = table{
		letters: "ABCFGIJLMQTYZ",
		hPa:     []int{1030, 1022, 1012, 1007, 1000, 995, 990, 984, 978, 970, 965, 959, 947},
	}
	fallingTable = table{
		letters: "ABDHORUVX",
		hPa:     []int{1050, 1040, 1024, 1018, 1010, 1004, 998, 991, 985},
	}
	steadyTable = table{
		letters: "ABEKNPSWXZ",
		hPa:     []int{1033, 1023, 1014, 1008, 1000, 994, 989, 981, 974, 960},
	}
)

// Lookup returns the letter whose table pressure is nearest to p (in deca
// pascals, sea level). Rising pressure in summer steps one letter towards
// worse weather and falling pressure in winter one letter towards better;
// the asymmetry is how the dial is marked.
func Lookup(p int, trend Trend, season Season) byte {
	var (
		t    table
		step int
	)
	switch trend {
	case Rising:
		t = risingTable
		if season == Summer {
			step = +1
		}
	case Falling:
		t = fallingTable
		if season == Winter {
			step = -1
		}
	case Steady:
		t = steadyTable
	default:
		return Unknown
	}

	if p > 10*t.hPa[0] || p < 10*t.hPa[len(t.hPa)-1] {
		return OutOfRange
	}
	closest := 0
	minDiff := abs(p - 10*t.hPa[0])
	for i := 1; i < len(t.hPa); i++ {
		if d := abs(p - 10*t.hPa[i]); d < minDiff {
			minDiff = d
			closest = i
		}
	}
	closest += step
	closest = max(0, min(closest, len(t.letters)-1))
	return t.letters[closest]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

var forecasts = [26]string{
	"Settled fine",
	"Fine weather",
	"Becoming fine",
	"Fine\nbecoming less settled",
	"Fine\npossible showers",
	"Fairly fine\nimproving",
	"Fairly fine\npossible showers early",
	"Fairly fine\nshowery later",
	"Showery early\nimproving",
	"Changeable\nmending",
	"Fairly fine\nshowers likely",
	"Rather unsettled\nclearing later",
	"Unsettled\nprobably improving",
	"Showery\nbright intervals",
	"Showery\nbecoming more unsettled",
	"Changeable\nsome rain",
	"Unsettled\nshort fine intervals",
	"Unsettled\nrain later",
	"Unsettled\nrain at times",
	"Very unsettled\nfiner at times",
	"Rain at times\nworse later",
	"Rain at times\nbecoming very unsettled",
	"Rain\nat frequent intervals",
	"Very unsettled\nrain",
	"Stormy\npossibly improving",
	"Stormy\nmuch rain",
}

// Text returns the forecast for letter, at most two lines separated by
// '\n', or "" for anything but a letter.
func Text(letter byte) string {
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'Z' {
		return ""
	}
	return forecasts[letter-'A']
}

// Lines splits a forecast into its display lines.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.SplitN(text, "\n", 2)
}
