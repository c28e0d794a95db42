//go:build !tinygo

package hal

import (
	"testing"
	"time"
)

func TestHostRTCWriteThenRead(t *testing.T) {
	base := time.Date(2024, 3, 10, 8, 15, 0, 0, time.UTC)
	r := &hostRTC{now: func() time.Time { return base }}

	want := DateTime{Hour: 23, Minute: 59, Second: 0, DayOfWeek: 5, Day: 29, Month: 2, Year: 24}
	if err := r.WriteTime(want); err != nil {
		t.Fatalf("WriteTime: %v", err)
	}
	got, err := r.ReadTime()
	if err != nil {
		t.Fatalf("ReadTime: %v", err)
	}
	if got != want {
		t.Fatalf("ReadTime = %+v, want %+v", got, want)
	}
	m, _ := r.ReadMinute()
	if m != 59 {
		t.Fatalf("ReadMinute = %d", m)
	}
}

func TestHostRTCRejectsBadMonth(t *testing.T) {
	r := newHostRTC(0)
	if err := r.WriteTime(DateTime{Day: 1, Month: 13}); err == nil {
		t.Fatal("want error for month 13")
	}
}
