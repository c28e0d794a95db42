package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrTimeout        = errors.New("timeout")
	ErrInvalidTime    = errors.New("invalid time")
)

// Color is an RGB565 pixel value: rrrrrggggggbbbbb.
type Color uint16

// Surface is the pixel-push capability of the panel.
//
// BeginFill opens a w x h window at (x, y) and returns the number of pixels
// it holds. Subsequent fills write pixels into the window in raster order.
type Surface interface {
	Width() int
	Height() int
	BeginFill(x, y, w, h int) int
	FillColor(n int, c Color)
	// FillByte repeats a single byte for every pixel byte; cheaper than
	// FillColor and only meaningful for 0x00 (black) and 0xFF (white).
	FillByte(n int, b byte)
}

// Display provides access to the panel.
type Display interface {
	Surface() Surface
	Present() error
}

// Button identifies a physical input.
type Button uint8

const (
	ButtonSet Button = iota
	ButtonAdj
	// ButtonAlarm is the arm/disarm slide switch on switch-only devices.
	ButtonAlarm
)

// Buttons reports instantaneous (not debounced) input levels.
type Buttons interface {
	Down(b Button) bool
}

// Touch reports the instantaneous touch position in panel pixels.
//
// Implementations may return nil from HAL.Touch() when the panel has no
// touch overlay.
type Touch interface {
	Touching() (x, y int, ok bool)
}

// DateTime is the calendar time held by the real-time clock.
type DateTime struct {
	Hour      int // 0..23
	Minute    int
	Second    int
	DayOfWeek int // 1..7, Monday first
	Day       int // 1..31
	Month     int // 1..12
	Year      int // 0..99, years since 2000
}

// RTC is the battery-backed real-time clock.
type RTC interface {
	ReadMinute() (int, error)
	ReadTime() (DateTime, error)
	WriteTime(t DateTime) error
}

// Measurement is one barometric sensor reading.
type Measurement struct {
	TemperatureC float64
	PressurePa   float64
}

// Barometer is the pressure/temperature sensor.
//
// Start begins a conversion; Poll reports whether the result is ready.
type Barometer interface {
	Start() error
	Poll() (m Measurement, ready bool, err error)
}

// Flash provides raw access to non-volatile memory.
//
// It is intentionally low-level: addresses and erase blocks only.
type Flash interface {
	SizeBytes() uint32
	EraseBlockBytes() uint32
	ReadAt(p []byte, off uint32) (int, error)
	WriteAt(p []byte, off uint32) (int, error)
	Erase(off, size uint32) error
}

// Buzzer is the alarm sounder.
type Buzzer interface {
	Set(on bool)
}

// Time provides a monotonic millisecond clock.
type Time interface {
	Millis() uint64
}

// HAL provides the only contact point between the clock and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Buttons() Buttons
	Touch() Touch
	RTC() RTC
	Barometer() Barometer
	Flash() Flash
	Buzzer() Buzzer
	Time() Time
}
