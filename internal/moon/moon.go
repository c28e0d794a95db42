// Package moon holds the calendar arithmetic of the clock and the moon phase
// model shown in the weather cell.
package moon

const (
	// Period is the synodic month in seconds (about 29.53059 days).
	Period = 2551443
	// DefaultReference is a known new moon, in seconds since 2000-01-01.
	DefaultReference = 750668100

	daySeconds = 24 * 60 * 60
)

// DaysInMonth returns the length of month 1..12. Any year divisible by four
// is a leap year, which holds for 2001..2099.
func DaysInMonth(month, year int) int {
	// (days-28) packed two bits per month, January in bits 2..3.
	inc := int(uint32(0x03BBEECC)>>(2*uint(month))) & 0x03
	if year%4 != 0 || inc != 0 {
		return 28 + inc
	}
	return 29
}

// DayOfCentury counts days so that 2000-01-01 is day 1.
func DayOfCentury(date, month, year int) int64 {
	y := int64(year - 2000)
	day := int64(date) + 365*y
	day += (y - 1) / 4
	for m := month - 1; m > 0; m-- {
		day += int64(DaysInMonth(m, int(y)))
	}
	return day
}

// MakeSeconds returns seconds since 2000-01-01 00:00. Hour may exceed 23 to
// express later days.
func MakeSeconds(date, month, year, hour, minute int) uint32 {
	minutes := DayOfCentury(date, month, year)*24*60 + int64(hour)*60 + int64(minute)
	return uint32(minutes * 60)
}

// NewMoon locates the next new moon relative to today.
type NewMoon struct {
	InDays   int // 0 is later today
	AtHour   int
	AtMinute int
}

// Age is the moon phase at an instant.
type Age struct {
	Days int
	// Angle runs 0..180: 0 new, 45 first quarter, 90 full, 135 last quarter.
	Angle int
	Next  NewMoon
}

// CalcAge computes the phase at the given local time from a reference new
// moon in seconds since 2000-01-01.
func CalcAge(ref uint32, date, month, year, hour, minute int) Age {
	now := MakeSeconds(date, month, year, hour, minute)
	diff := now - ref
	if now < ref {
		diff = Period - (ref - now)
	}
	age := diff % Period

	a := Age{
		Days:  int(age / daySeconds),
		Angle: int(age * 180 / Period),
	}
	// Seconds from midnight tonight to the next new moon.
	toNew := int64(Period) - int64(age) - (daySeconds - int64(hour*60+minute)*60)
	d := floorDiv(toNew, daySeconds)
	tod := toNew - d*daySeconds
	a.Next = NewMoon{
		InDays:   int(d + 1),
		AtHour:   int(tod / 3600),
		AtMinute: int(tod % 3600 / 60),
	}
	return a
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// GetSegments returns the dark segments when the lit part of the disc spans
// fromAngle..toAngle (0..180 across the face, left to right). Segment s is lit
// when its mid angle falls in the span; bits 4..7 are always set.
func GetSegments(fromAngle, toAngle int) uint8 {
	segs := uint8(0xFF)
	for s := 0; s < 4; s++ {
		mid := (45 + s*90) / 2
		if fromAngle <= mid && mid <= toAngle {
			segs &^= 1 << s
		}
	}
	return segs
}

// Segments maps a phase angle onto the moon glyph. Northern observers see
// the waxing moon lit from the right; the southern view is mirrored.
func Segments(angle int, southern bool) uint8 {
	if southern {
		if angle <= 90 {
			return GetSegments(0, angle*2)
		}
		return GetSegments((angle-90)*2, 180)
	}
	if angle <= 90 {
		return GetSegments(180-angle*2, 180)
	}
	return GetSegments(0, 180-(angle-90)*2)
}
