// Package settings persists the user settings in a small record at a fixed
// flash offset.
package settings

import (
	"encoding/binary"
	"errors"
	"fmt"

	"deskclock/hal"
	"deskclock/internal/moon"
)

const (
	// Offset of the record within the first erase block; the bytes before
	// it belong to other projects sharing the part.
	Offset = 32
	// Magic tags a valid record.
	Magic = 'C'
	// RecordSize is magic, daylight flag, alarm hour, alarm minute, moon
	// reference (4 bytes, big-endian), icon flag, alarm armed flag.
	RecordSize = 10
)

var ErrBadMagic = errors.New("settings: bad magic")

// Settings is everything the clock remembers across power cycles.
type Settings struct {
	// DLS adds an hour to the displayed time.
	DLS         bool
	AlarmHour   int // 0..23
	AlarmMinute int
	// MoonReference is a new moon in seconds since 2000-01-01.
	MoonReference uint32
	// ForecastIcons shows the forecast as icons rather than text.
	ForecastIcons bool
	// AlarmEnabled is the armed state on touch panels without a switch.
	AlarmEnabled bool
}

// Defaults are used on first boot and after corruption.
func Defaults() Settings {
	return Settings{
		AlarmHour:     7,
		AlarmMinute:   0,
		MoonReference: moon.DefaultReference,
		ForecastIcons: true,
	}
}

func (s Settings) MarshalBinary() ([]byte, error) {
	b := make([]byte, RecordSize)
	b[0] = Magic
	b[1] = boolByte(s.DLS)
	b[2] = byte(s.AlarmHour)
	b[3] = byte(s.AlarmMinute)
	binary.BigEndian.PutUint32(b[4:8], s.MoonReference)
	b[8] = boolByte(s.ForecastIcons)
	b[9] = boolByte(s.AlarmEnabled)
	return b, nil
}

// UnmarshalBinary decodes a record. Out of range alarm fields are wrapped
// into range rather than rejected.
func (s *Settings) UnmarshalBinary(b []byte) error {
	if len(b) < RecordSize {
		return fmt.Errorf("settings: short record (%d bytes)", len(b))
	}
	if b[0] != Magic {
		return ErrBadMagic
	}
	*s = Settings{
		DLS:           b[1] != 0,
		AlarmHour:     int(b[2]) % 24,
		AlarmMinute:   int(b[3]) % 60,
		MoonReference: binary.BigEndian.Uint32(b[4:8]),
		ForecastIcons: b[8] != 0,
		AlarmEnabled:  b[9] != 0,
	}
	return nil
}

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}

// Store reads and writes the record through the flash HAL.
type Store struct {
	flash hal.Flash
	log   hal.Logger
}

func NewStore(f hal.Flash, log hal.Logger) *Store {
	return &Store{flash: f, log: log}
}

// Read returns the stored settings, or ErrBadMagic if none were saved.
func (st *Store) Read() (Settings, error) {
	if st.flash == nil {
		return Settings{}, hal.ErrNotImplemented
	}
	b := make([]byte, RecordSize)
	if _, err := st.flash.ReadAt(b, Offset); err != nil {
		return Settings{}, fmt.Errorf("settings read: %w", err)
	}
	var s Settings
	if err := s.UnmarshalBinary(b); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Load returns the stored settings. A missing or corrupt record yields the
// defaults, which are written back straight away. Only flash faults are
// reported; the defaults are returned with them.
func (st *Store) Load() (Settings, error) {
	s, err := st.Read()
	if err == nil {
		st.logf("settings: loaded (alarm %02d:%02d, dls %v)", s.AlarmHour, s.AlarmMinute, s.DLS)
		return s, nil
	}
	if !errors.Is(err, ErrBadMagic) {
		return Defaults(), err
	}
	st.logf("settings: no valid record, writing defaults")
	s = Defaults()
	return s, st.Save(s)
}

// Save rewrites the erase block holding the record, preserving the bytes
// around it.
func (st *Store) Save(s Settings) error {
	if st.flash == nil {
		return hal.ErrNotImplemented
	}
	rec, _ := s.MarshalBinary()

	bs := st.flash.EraseBlockBytes()
	if bs < Offset+RecordSize {
		return fmt.Errorf("settings: erase block of %d bytes: %w", bs, hal.ErrNotImplemented)
	}
	block := make([]byte, bs)
	if _, err := st.flash.ReadAt(block, 0); err != nil {
		return fmt.Errorf("settings save: read block: %w", err)
	}
	if string(block[Offset:Offset+RecordSize]) == string(rec) {
		return nil
	}
	copy(block[Offset:], rec)
	if err := st.flash.Erase(0, bs); err != nil {
		return fmt.Errorf("settings save: erase: %w", err)
	}
	if _, err := st.flash.WriteAt(block, 0); err != nil {
		return fmt.Errorf("settings save: write: %w", err)
	}
	return nil
}

func (st *Store) logf(format string, args ...any) {
	if st.log != nil {
		st.log.WriteLineString(fmt.Sprintf(format, args...))
	}
}
