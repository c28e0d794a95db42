//go:build !tinygo

package hal

import "time"

type hostTime struct {
	start time.Time
	now   func() time.Time
}

func newHostTime() *hostTime {
	return &hostTime{start: time.Now(), now: time.Now}
}

func (t *hostTime) Millis() uint64 {
	d := t.now().Sub(t.start)
	if d < 0 {
		return 0
	}
	return uint64(d / time.Millisecond)
}
