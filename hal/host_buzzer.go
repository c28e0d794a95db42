//go:build !tinygo

package hal

import "sync"

// hostBuzzer logs transitions and optionally drives a tone player.
type hostBuzzer struct {
	mu     sync.Mutex
	logger Logger
	on     bool
	tone   tonePlayer
}

type tonePlayer interface {
	Play()
	Pause()
}

func newHostBuzzer(logger Logger, withAudio bool) *hostBuzzer {
	b := &hostBuzzer{logger: logger}
	if withAudio {
		b.tone = newTonePlayer()
	}
	return b
}

func (b *hostBuzzer) Set(on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if on == b.on {
		return
	}
	b.on = on
	if b.tone != nil {
		if on {
			b.tone.Play()
		} else {
			b.tone.Pause()
		}
	}
	if on {
		b.logger.WriteLineString("buzzer: on")
	} else {
		b.logger.WriteLineString("buzzer: off")
	}
}
