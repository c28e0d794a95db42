//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type tinyGoDisplay struct {
	s *RectSurface
}

func (d tinyGoDisplay) Surface() Surface { return d.s }

// Present reports the first SPI error of the last fill; the panel itself
// needs no flush.
func (d tinyGoDisplay) Present() error { return d.s.Err }

type tinyGoTime struct {
	start time.Time
}

func newTinyGoTime() *tinyGoTime {
	return &tinyGoTime{start: time.Now()}
}

func (t *tinyGoTime) Millis() uint64 {
	return uint64(time.Since(t.start) / time.Millisecond)
}

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

// pinButtons reads active-low inputs with internal pull-ups.
type pinButtons struct {
	pins [3]machine.Pin
}

func newPinButtons(set, adj, alarm machine.Pin) *pinButtons {
	b := &pinButtons{pins: [3]machine.Pin{set, adj, alarm}}
	for _, p := range b.pins {
		p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	return b
}

func (b *pinButtons) Down(btn Button) bool {
	if int(btn) >= len(b.pins) {
		return false
	}
	return !b.pins[btn].Get()
}

type pinBuzzer struct {
	pin machine.Pin
}

func (b *pinBuzzer) Set(on bool) { b.pin.Set(on) }
