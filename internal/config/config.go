// Package config holds the clock's locale and hardware options, resolved once
// at start-up and read-only afterwards.
package config

import (
	"errors"
	"fmt"

	"deskclock/hal"
)

var ErrInvalid = errors.New("invalid config")

// Panel sizes supported by the glyph generator.
const (
	LargeWidth  = 480
	LargeHeight = 320
	SmallWidth  = 320
	SmallHeight = 240
)

// Config is the complete option set.
type Config struct {
	PanelWidth, PanelHeight int

	// Hour12 shows 12-hour time with a PM indicator.
	Hour12 bool
	// DayFirst orders the date DD.MM.YYYY instead of MM.DD.YYYY.
	DayFirst bool
	// Celsius selects the temperature unit.
	Celsius bool
	// OnColor paints lit segments and labels.
	OnColor hal.Color
	// ShowOffSegments tints unlit segments like a real LCD.
	ShowOffSegments bool
	// BlinkColon flashes the time colon at 1 Hz.
	BlinkColon bool
	// HideDisabledAlarm blanks the alarm time while disarmed.
	HideDisabledAlarm bool
	// Southern mirrors the moon and swaps the forecast seasons.
	Southern bool

	// HasTouch is set when the panel has a touch overlay. Without it the
	// alarm is armed by the slide switch.
	HasTouch bool

	// AltitudeMeters adjusts station pressure to sea level.
	AltitudeMeters float64
	// LocalMinHPa and LocalMaxHPa, when both set, stretch the local pressure
	// range onto the 947..1050 hPa range of the forecast tables.
	LocalMinHPa, LocalMaxHPa float64

	// SplashMillis holds the blank start-up face.
	SplashMillis uint64
	// Debug overlays raw sensor values on the weather cell.
	Debug bool
}

// Default returns the stock configuration: a large touch panel, 12-hour UK
// style date, Celsius.
func Default() Config {
	return Config{
		PanelWidth:      LargeWidth,
		PanelHeight:     LargeHeight,
		Hour12:          true,
		DayFirst:        true,
		Celsius:         true,
		ShowOffSegments: true,
		BlinkColon:      false,
		HasTouch:        true,
		AltitudeMeters:  0,
		SplashMillis:    2000,
	}
}

// Validate rejects options the glyph and weather code cannot honour.
func (c Config) Validate() error {
	switch {
	case c.PanelWidth == LargeWidth && c.PanelHeight == LargeHeight:
	case c.PanelWidth == SmallWidth && c.PanelHeight == SmallHeight:
	default:
		return fmt.Errorf("panel %dx%d: %w", c.PanelWidth, c.PanelHeight, ErrInvalid)
	}
	if c.AltitudeMeters < -500 || c.AltitudeMeters > 5000 {
		return fmt.Errorf("altitude %.0f m: %w", c.AltitudeMeters, ErrInvalid)
	}
	if (c.LocalMinHPa != 0 || c.LocalMaxHPa != 0) && c.LocalMinHPa >= c.LocalMaxHPa {
		return fmt.Errorf("local pressure range %.0f..%.0f: %w", c.LocalMinHPa, c.LocalMaxHPa, ErrInvalid)
	}
	return nil
}

// HasLocalRange reports whether the pressure remap is configured.
func (c Config) HasLocalRange() bool {
	return c.LocalMinHPa != 0 && c.LocalMaxHPa != 0
}
