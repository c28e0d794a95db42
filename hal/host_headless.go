//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Host HostConfig
	// Hz is the loop rate; the clock only needs enough to debounce input.
	Hz int
	// Ticks stops the run after that many steps; zero runs until ctx ends.
	Ticks uint64
	// Done, when set, receives the panel after the last step.
	Done func(s *BufferSurface)
}

// RunHeadless runs the clock without opening a window. There is no input;
// the clock runs on the simulated RTC and barometer alone.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	period := time.Second / time.Duration(cfg.Hz)
	if period <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHost(cfg.Host, false)
	step := newApp(h)
	if cfg.Done != nil {
		defer cfg.Done(h.surface)
	}

	t := time.NewTicker(period)
	defer t.Stop()
	for n := uint64(0); cfg.Ticks == 0 || n < cfg.Ticks; n++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
		if step == nil {
			continue
		}
		if err := step(); err != nil {
			return fmt.Errorf("step %d: %w", n, err)
		}
	}
	return nil
}
