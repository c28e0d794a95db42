package clock

// Sentinels no real reading can take, so a reset state repaints every
// field on the next check.
const (
	noMinute      = -1
	noDay         = -1
	noTemperature = -9999
	noForecast    = 0
	noSegments    = 0xAA
)

// DisplayState is the last painted value of every field that is repainted
// only on change.
type DisplayState struct {
	Minute      int
	Day         int // packed date, see dayKey
	Temperature int
	Forecast    byte
	// Segments is the moon mask; real masks always have bits 4..7 set.
	Segments uint8

	ColonOn bool
	// CheckAt and ColonAt are when the minute check and the colon blink
	// last ran.
	CheckAt uint64
	ColonAt uint64
}

// NewDisplayState returns a state that matches nothing.
func NewDisplayState() DisplayState {
	var d DisplayState
	d.Invalidate()
	d.ColonOn = true
	return d
}

// Invalidate forces every cached field to mismatch.
func (d *DisplayState) Invalidate() {
	d.Minute = noMinute
	d.Day = noDay
	d.Temperature = noTemperature
	d.Forecast = noForecast
	d.Segments = noSegments
}

// Valid reports whether the state has been painted since the last
// Invalidate.
func (d DisplayState) Valid() bool { return d.Minute != noMinute }

func dayKey(dayOfWeek, day, month, year int) int {
	return ((year*100+month)*100+day)*10 + dayOfWeek
}
