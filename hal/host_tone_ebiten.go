//go:build !tinygo && cgo

package hal

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	toneSampleRate = 44100
	toneHz         = 2000
	toneAmplitude  = 6000
)

// newTonePlayer returns an endless square wave at the buzzer's resonant
// frequency, paused until Play.
func newTonePlayer() tonePlayer {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(toneSampleRate)
	}
	p, err := ctx.NewPlayer(&squareWave{period: ctx.SampleRate() / toneHz})
	if err != nil {
		return nil
	}
	p.SetBufferSize(50 * time.Millisecond)
	return p
}

type squareWave struct {
	period int
	pos    int
}

// Read emits 16-bit little-endian stereo frames.
func (w *squareWave) Read(p []byte) (int, error) {
	n := len(p) / 4 * 4
	for i := 0; i < n; i += 4 {
		s := int16(toneAmplitude)
		if w.pos >= w.period/2 {
			s = -toneAmplitude
		}
		w.pos++
		if w.pos >= w.period {
			w.pos = 0
		}
		p[i+0] = byte(s)
		p[i+1] = byte(s >> 8)
		p[i+2] = byte(s)
		p[i+3] = byte(s >> 8)
	}
	return n, nil
}
