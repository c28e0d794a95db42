//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// Default host panel, matching the 480x320 shield.
const (
	DefaultPanelWidth  = 480
	DefaultPanelHeight = 320
)

type hostHAL struct {
	logger  *hostLogger
	surface *BufferSurface
	buttons *hostButtons
	touch   *hostTouch
	rtc     *hostRTC
	baro    *hostBarometer
	flash   *hostFlash
	buzzer  *hostBuzzer
	t       *hostTime
}

// HostConfig selects the simulated hardware.
type HostConfig struct {
	Width, Height int
	// FlashPath overrides DESKCLOCK_FLASH_PATH when non-empty. MemoryFlash
	// keeps the image in memory only.
	FlashPath string
	// RTCOffset shifts the simulated RTC away from the system clock.
	RTCOffset time.Duration
}

// MemoryFlash as HostConfig.FlashPath selects an unpersisted flash image.
const MemoryFlash = "-"

// New returns a host HAL implementation with the default panel size.
func New() HAL {
	return newHost(HostConfig{}, false)
}

func newHost(cfg HostConfig, withAudio bool) *hostHAL {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = DefaultPanelWidth, DefaultPanelHeight
	}
	logger := &hostLogger{w: os.Stdout}
	t := newHostTime()
	var flash *hostFlash
	if cfg.FlashPath == MemoryFlash {
		flash = newMemFlash(hostFlashDefaultSizeBytes)
	} else {
		flash = newHostFlash(cfg.FlashPath)
	}
	return &hostHAL{
		logger:  logger,
		surface: NewBufferSurface(cfg.Width, cfg.Height),
		buttons: &hostButtons{},
		touch:   &hostTouch{},
		rtc:     newHostRTC(cfg.RTCOffset),
		baro:    newHostBarometer(t),
		flash:   flash,
		buzzer:  newHostBuzzer(logger, withAudio),
		t:       t,
	}
}

func (h *hostHAL) Logger() Logger       { return h.logger }
func (h *hostHAL) Display() Display     { return hostDisplay{s: h.surface} }
func (h *hostHAL) Buttons() Buttons     { return h.buttons }
func (h *hostHAL) Touch() Touch         { return h.touch }
func (h *hostHAL) RTC() RTC             { return h.rtc }
func (h *hostHAL) Barometer() Barometer { return h.baro }
func (h *hostHAL) Flash() Flash         { return h.flash }
func (h *hostHAL) Buzzer() Buzzer       { return h.buzzer }
func (h *hostHAL) Time() Time           { return h.t }

type hostDisplay struct {
	s *BufferSurface
}

func (d hostDisplay) Surface() Surface { return d.s }
func (d hostDisplay) Present() error   { return nil }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// hostButtons holds levels written by the window's input poll.
type hostButtons struct {
	mu    sync.Mutex
	level [3]bool
}

func (b *hostButtons) Down(btn Button) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if int(btn) >= len(b.level) {
		return false
	}
	return b.level[btn]
}

func (b *hostButtons) set(btn Button, down bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if int(btn) < len(b.level) {
		b.level[btn] = down
	}
}

func (b *hostButtons) toggle(btn Button) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if int(btn) < len(b.level) {
		b.level[btn] = !b.level[btn]
	}
}

// hostTouch mirrors the mouse: left button down is a touch.
type hostTouch struct {
	mu   sync.Mutex
	x, y int
	down bool
}

func (t *hostTouch) Touching() (int, int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.x, t.y, t.down
}

func (t *hostTouch) set(x, y int, down bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.x, t.y, t.down = x, y, down
}
