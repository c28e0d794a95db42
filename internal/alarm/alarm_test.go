package alarm

import "testing"

type fakeBuzzer struct {
	on    bool
	calls int
}

func (b *fakeBuzzer) Set(on bool) {
	b.on = on
	b.calls++
}

func TestTriggerOncePerMatch(t *testing.T) {
	bz := &fakeBuzzer{}
	a := New(bz, nil, true)

	a.Check(6, 59, 7, 0)
	if bz.on {
		t.Fatalf("buzzing before alarm time")
	}
	a.Check(7, 0, 7, 0)
	if !bz.on || !a.Buzzing() {
		t.Fatalf("not buzzing at alarm time")
	}
	if !a.Silence() {
		t.Fatalf("Silence did not absorb the press")
	}
	if a.Silence() {
		t.Fatalf("second Silence absorbed a press")
	}

	// Still 07:00: no retrigger after silencing.
	a.Check(7, 0, 7, 0)
	if bz.on {
		t.Fatalf("retriggered within the same minute")
	}
	a.Check(7, 1, 7, 0)
	if bz.on {
		t.Fatalf("buzzing after the alarm minute")
	}
}

func TestDisarmed(t *testing.T) {
	bz := &fakeBuzzer{}
	a := New(bz, nil, false)
	a.Check(7, 0, 7, 0)
	if bz.on {
		t.Fatalf("disarmed alarm sounded")
	}
}

func TestDisarmSilences(t *testing.T) {
	bz := &fakeBuzzer{}
	a := New(bz, nil, true)
	a.Check(7, 0, 7, 0)
	a.SetEnabled(false)
	if bz.on {
		t.Fatalf("SetEnabled(false) left the buzzer on")
	}

	a = New(bz, nil, true)
	a.Check(7, 0, 7, 0)
	if a.PollSwitch(true) {
		t.Fatalf("unchanged switch reported a change")
	}
	if !a.PollSwitch(false) {
		t.Fatalf("switch change not reported")
	}
	if bz.on || a.Enabled() {
		t.Fatalf("switch off left alarm armed or sounding")
	}
}
