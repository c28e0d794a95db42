package app

import (
	"errors"
	"testing"
)

func TestTakeRunes(t *testing.T) {
	tests := []struct {
		s          string
		n          int
		head, tail string
	}{
		{"", 4, "", ""},
		{"abc", 0, "", "abc"},
		{"abc", 4, "abc", ""},
		{"abcdef", 4, "abcd", "ef"},
		{"héllo", 2, "hé", "llo"},
	}
	for _, tt := range tests {
		head, tail := takeRunes(tt.s, tt.n)
		if head != tt.head || tail != tt.tail {
			t.Errorf("takeRunes(%q, %d) = %q, %q; want %q, %q", tt.s, tt.n, head, tail, tt.head, tt.tail)
		}
	}
}

func TestHaltedStepKeepsFailing(t *testing.T) {
	want := errors.New("boom")
	sys := &system{halted: want}
	for i := 0; i < 3; i++ {
		if err := sys.step(); !errors.Is(err, want) {
			t.Fatalf("step %d = %v, want %v", i, err, want)
		}
	}
}
