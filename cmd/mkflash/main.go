//go:build !tinygo

// Command mkflash writes a settings flash image for the host simulator, or
// prints the settings held in an existing one.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"deskclock/hal"
	"deskclock/internal/moon"
	"deskclock/internal/settings"
)

const (
	defaultFlashPath = "deskclock.flash"
	defaultFlashSize = 64 * 1024
)

func main() {
	var outPath, alarm, newMoon string
	var flashSize uint
	var dump, dls, alarmOn, text bool
	flag.StringVar(&outPath, "out", defaultFlashPath, "Output flash image path.")
	flag.UintVar(&flashSize, "size", defaultFlashSize, "Flash image size (bytes), a multiple of 4096.")
	flag.BoolVar(&dump, "dump", false, "Print the settings in -out instead of writing it.")
	flag.BoolVar(&dls, "dls", false, "Start with daylight saving on.")
	flag.StringVar(&alarm, "alarm", "07:00", "Alarm time, HH:MM.")
	flag.BoolVar(&alarmOn, "alarm-on", false, "Start with the alarm armed.")
	flag.BoolVar(&text, "text", false, "Show the forecast as text instead of icons.")
	flag.StringVar(&newMoon, "new-moon", "", "Reference new moon, 2006-01-02T15:04 UTC (default built in).")
	flag.Parse()

	if outPath == "" {
		fmt.Fprintln(os.Stderr, "error: -out is required")
		os.Exit(2)
	}
	if dump {
		if err := printSettings(outPath); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		return
	}

	s := settings.Defaults()
	s.DLS = dls
	s.AlarmEnabled = alarmOn
	s.ForecastIcons = !text
	var err error
	if s.AlarmHour, s.AlarmMinute, err = parseAlarm(alarm); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
	if newMoon != "" {
		if s.MoonReference, err = parseNewMoon(newMoon); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(2)
		}
	}

	if err := run(s, outPath, uint32(flashSize)); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(s settings.Settings, outPath string, flashSize uint32) error {
	if flashSize < settings.Offset+settings.RecordSize {
		return fmt.Errorf("flash size %d too small for settings", flashSize)
	}
	ff, err := hal.CreateFlashImage(outPath, flashSize)
	if err != nil {
		return err
	}
	if err := settings.NewStore(ff, nil).Save(s); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

func printSettings(path string) error {
	ff, err := hal.OpenFlashImage(path)
	if err != nil {
		return err
	}
	s, err := settings.NewStore(ff, nil).Read()
	if err != nil {
		return err
	}
	fmt.Printf("dls:       %v\n", s.DLS)
	fmt.Printf("alarm:     %02d:%02d armed=%v\n", s.AlarmHour, s.AlarmMinute, s.AlarmEnabled)
	fmt.Printf("forecast:  icons=%v\n", s.ForecastIcons)
	fmt.Printf("new moon:  %d\n", s.MoonReference)
	return nil
}

func parseAlarm(v string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", strings.TrimSpace(v))
	if err != nil {
		return 0, 0, fmt.Errorf("alarm %q: %w", v, err)
	}
	return t.Hour(), t.Minute(), nil
}

// parseNewMoon converts a UTC time to seconds since 2000-01-01.
func parseNewMoon(v string) (uint32, error) {
	t, err := time.Parse("2006-01-02T15:04", strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("new moon %q: %w", v, err)
	}
	if t.Year() < 2000 || t.Year() > 2099 {
		return 0, fmt.Errorf("new moon %q: year outside 2000..2099", v)
	}
	return moon.MakeSeconds(t.Day(), int(t.Month()), t.Year(), t.Hour(), t.Minute()), nil
}
