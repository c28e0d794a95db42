//go:build !tinygo

package hal

import (
	"math"
	"sync"
)

// hostBarometer simulates a BMP280: conversions take a few milliseconds and
// pressure drifts slowly around standard atmosphere.
type hostBarometer struct {
	mu      sync.Mutex
	t       Time
	started bool
	readyAt uint64
}

const hostBaroConversionMillis = 8

func newHostBarometer(t Time) *hostBarometer {
	return &hostBarometer{t: t}
}

func (b *hostBarometer) Start() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.started = true
	b.readyAt = b.t.Millis() + hostBaroConversionMillis
	return nil
}

func (b *hostBarometer) Poll() (Measurement, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.started {
		return Measurement{}, false, nil
	}
	now := b.t.Millis()
	if now < b.readyAt {
		return Measurement{}, false, nil
	}
	b.started = false
	return simulatedWeather(now), true, nil
}

// simulatedWeather cycles pressure over a six hour period so the forecast
// trend changes within a demo session.
func simulatedWeather(ms uint64) Measurement {
	phase := float64(ms%(6*3600*1000)) / float64(6*3600*1000) * 2 * math.Pi
	return Measurement{
		TemperatureC: 21 + 2*math.Sin(phase/2),
		PressurePa:   101325 + 1200*math.Sin(phase),
	}
}
