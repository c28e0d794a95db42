package hal

import (
	"time"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ds3231"
)

// ds3231RTC keeps the bus next to the driver: the driver derives the
// weekday from the date both ways, so the day register is read and
// written directly.
type ds3231RTC struct {
	d   *ds3231.Device
	bus drivers.I2C
}

const ds3231RegDay = 0x03

func (r *ds3231RTC) readDay() (int, error) {
	var b [1]byte
	if err := r.bus.Tx(uint16(r.d.Address), []byte{ds3231RegDay}, b[:]); err != nil {
		return 0, err
	}
	return int(b[0] & 0x07), nil
}

func (r *ds3231RTC) writeDay(dow int) error {
	return r.bus.Tx(uint16(r.d.Address), []byte{ds3231RegDay, byte(dow)}, nil)
}

func (r *ds3231RTC) ReadMinute() (int, error) {
	t, err := r.d.ReadTime()
	if err != nil {
		return 0, err
	}
	return t.Minute(), nil
}

func (r *ds3231RTC) ReadTime() (DateTime, error) {
	t, err := r.d.ReadTime()
	if err != nil {
		return DateTime{}, err
	}
	dow, err := r.readDay()
	if err != nil {
		return DateTime{}, err
	}
	if dow == 0 {
		dow = int(t.Weekday())
		if dow == 0 {
			dow = 7
		}
	}
	return DateTime{
		Hour:      t.Hour(),
		Minute:    t.Minute(),
		Second:    t.Second(),
		DayOfWeek: dow,
		Day:       t.Day(),
		Month:     int(t.Month()),
		Year:      (t.Year() - 2000) % 100,
	}, nil
}

// WriteTime stores the calendar fields, then overwrites the weekday the
// driver derived from the date with DayOfWeek when it is 1..7.
func (r *ds3231RTC) WriteTime(dt DateTime) error {
	if dt.Month < 1 || dt.Month > 12 || dt.Day < 1 || dt.Day > 31 {
		return ErrInvalidTime
	}
	if err := r.d.SetTime(time.Date(2000+dt.Year, time.Month(dt.Month), dt.Day, dt.Hour, dt.Minute, dt.Second, 0, time.UTC)); err != nil {
		return err
	}
	if dt.DayOfWeek < 1 || dt.DayOfWeek > 7 {
		return nil
	}
	return r.writeDay(dt.DayOfWeek)
}
