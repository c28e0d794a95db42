//go:build tinygo && baremetal

package hal

import (
	"tinygo.org/x/drivers/bmp280"
	"tinygo.org/x/drivers/touch/resistive"
)

// bmp280Barometer runs the sensor in normal mode; a "conversion" is a
// read of the latest result once the standby period has elapsed.
type bmp280Barometer struct {
	d       *bmp280.Device
	started bool
}

func (b *bmp280Barometer) Start() error {
	b.started = true
	return nil
}

func (b *bmp280Barometer) Poll() (Measurement, bool, error) {
	if !b.started {
		return Measurement{}, false, nil
	}
	b.started = false
	mc, err := b.d.ReadTemperature()
	if err != nil {
		return Measurement{}, false, err
	}
	mpa, err := b.d.ReadPressure()
	if err != nil {
		return Measurement{}, false, err
	}
	return Measurement{
		TemperatureC: float64(mc) / 1000,
		PressurePa:   float64(mpa) / 1000,
	}, true, nil
}

// Raw ADC range of the four-wire overlay; measured on the reference panel.
const (
	touchMinX = 0x1800
	touchMaxX = 0xE000
	touchMinY = 0x2000
	touchMaxY = 0xE000
	touchMinZ = 0x1000
)

type resistiveTouch struct {
	r             *resistive.FourWire
	width, height int
}

func (t *resistiveTouch) Touching() (int, int, bool) {
	p := t.r.ReadTouchPoint()
	if p.Z < touchMinZ {
		return 0, 0, false
	}
	x := scaleTouch(p.Y, touchMinY, touchMaxY, t.width)
	y := scaleTouch(p.X, touchMinX, touchMaxX, t.height)
	return x, y, true
}

func scaleTouch(v, lo, hi, span int) int {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return (v - lo) * (span - 1) / (hi - lo)
}
