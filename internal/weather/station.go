package weather

import (
	"fmt"
	"math"

	"deskclock/hal"
	"deskclock/internal/config"
)

const (
	// NumReadings holds three hours of half-hourly samples.
	NumReadings = 6
	// TrendThreshold is the change (1.6 hPa, in deca pascals) that counts
	// as rising or falling.
	TrendThreshold = 16
	// ReadTimeoutMillis bounds a single sensor conversion.
	ReadTimeoutMillis = 50

	// The lookup tables cover this range, in deca pascals.
	tableMin = 9470
	tableMax = 10500

	noPressure = 0
)

// Info is the sampler state shown by the debug overlay.
type Info struct {
	Raw      int // last station pressure, deca pascals
	Adjusted int // sea level (and range mapped) pressure
	Old      int // adjusted pressure three hours ago
	Trend    Trend
}

// Station samples the barometer and keeps the forecast up to date. It is
// driven from the clock loop and is not safe for concurrent use.
type Station struct {
	cfg  config.Config
	baro hal.Barometer
	t    hal.Time
	log  hal.Logger

	loopMinute  int
	temperature int
	pressure    int
	adjusted    int
	readings    [NumReadings]int
	forecast    byte
	trend       Trend
}

func NewStation(cfg config.Config, baro hal.Barometer, t hal.Time, log hal.Logger) *Station {
	return &Station{
		cfg:        cfg,
		baro:       baro,
		t:          t,
		log:        log,
		loopMinute: -1,
		forecast:   Unknown,
		trend:      TrendUnknown,
	}
}

// Init takes the first temperature and pressure readings. Failures leave
// the values at zero; the forecast stays Unknown either way.
func (s *Station) Init() {
	for i := range s.readings {
		s.readings[i] = noPressure
	}
	if m, err := s.measure(); err != nil {
		s.logf("weather: init: %v", err)
	} else {
		s.temperature = roundC(m.TemperatureC)
		s.pressure = toDecaPascal(m.PressurePa)
	}
}

// Update is called with the current time at least once a minute. The
// temperature is refreshed on every new minute; the pressure history on
// the hour and half hour. A failed read on the half hour still shifts the
// history, repeating the last adjusted pressure, so the oldest sample
// stays three hours old.
func (s *Station) Update(now hal.DateTime) {
	if now.Minute == s.loopMinute {
		return
	}
	s.loopMinute = now.Minute

	m, err := s.measure()
	if err != nil {
		s.logf("weather: read: %v", err)
	} else {
		s.temperature = roundC(m.TemperatureC)
	}
	if now.Minute != 0 && now.Minute != 30 {
		return
	}

	if err == nil {
		s.pressure = toDecaPascal(m.PressurePa)
		s.adjusted = SeaLevel(s.pressure, s.cfg.AltitudeMeters, s.temperature)
		if s.cfg.HasLocalRange() {
			s.adjusted = Remap(s.adjusted, int(s.cfg.LocalMinHPa*10), int(s.cfg.LocalMaxHPa*10))
		}
	}
	s.record(s.adjusted, SeasonOf(now.Month, s.cfg.Southern))
}

// record pushes an adjusted sample into the history and recomputes the
// forecast from the oldest one.
func (s *Station) record(adjusted int, season Season) {
	copy(s.readings[:], s.readings[1:])
	s.readings[NumReadings-1] = adjusted
	old := s.readings[0]

	s.forecast = Unknown
	if old == noPressure {
		return
	}
	switch d := adjusted - old; {
	case d >= TrendThreshold:
		s.trend = Rising
	case d <= -TrendThreshold:
		s.trend = Falling
	default:
		s.trend = Steady
	}
	s.forecast = Lookup(adjusted, s.trend, season)
}

// measure runs one conversion, polling until it completes or the deadline
// passes.
func (s *Station) measure() (hal.Measurement, error) {
	if s.baro == nil {
		return hal.Measurement{}, hal.ErrNotImplemented
	}
	if err := s.baro.Start(); err != nil {
		return hal.Measurement{}, fmt.Errorf("barometer start: %w", err)
	}
	start := s.t.Millis()
	for {
		m, ready, err := s.baro.Poll()
		if err != nil {
			return hal.Measurement{}, fmt.Errorf("barometer poll: %w", err)
		}
		if ready {
			return m, nil
		}
		if s.t.Millis()-start > ReadTimeoutMillis {
			return hal.Measurement{}, fmt.Errorf("barometer: %w", hal.ErrTimeout)
		}
	}
}

// Forecast returns a letter 'A'..'Z', Unknown or OutOfRange.
func (s *Station) Forecast() byte { return s.forecast }

// Temperature is the last reading in whole degrees Celsius.
func (s *Station) Temperature() int { return s.temperature }

// PressureHPa is the last station pressure, or 0 before the first reading.
func (s *Station) PressureHPa() float64 { return float64(s.pressure) / 10 }

func (s *Station) Info() Info {
	return Info{Raw: s.pressure, Adjusted: s.adjusted, Old: s.readings[0], Trend: s.trend}
}

func (s *Station) logf(format string, args ...any) {
	if s.log != nil {
		s.log.WriteLineString(fmt.Sprintf(format, args...))
	}
}

// SeaLevel reduces a station pressure (deca pascals) to mean sea level
// with the barometric formula.
func SeaLevel(p int, altitudeMeters float64, tempC int) int {
	if altitudeMeters == 0 {
		return p
	}
	h := 0.0065 * altitudeMeters
	k := math.Pow(1.0-h/(float64(tempC)+h+273.15), -5.257)
	return int(0.5 + float64(p)*k)
}

// Remap linearly maps lo..hi onto the range the lookup tables cover.
func Remap(p, lo, hi int) int {
	if hi == lo {
		return p
	}
	return (p-lo)*(tableMax-tableMin)/(hi-lo) + tableMin
}

func toDecaPascal(pa float64) int {
	return int(pa/10 + 0.5)
}

func roundC(c float64) int {
	return int(math.Floor(c + 0.5))
}
