//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"deskclock/app"
	"deskclock/hal"
	"deskclock/internal/buildinfo"
	"deskclock/internal/config"
)

func main() {
	cfg := config.Default()
	var hcfg hal.HeadlessConfig
	var scale int
	var headless, small, fahrenheit, monthFirst, hour24, noOff, noTouch, version bool
	var rtcOffset time.Duration

	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.IntVar(&scale, "scale", 2, "Window scale factor.")
	flag.StringVar(&hcfg.Host.FlashPath, "flash", "", "Settings flash image, - for memory only (default $DESKCLOCK_FLASH_PATH or deskclock.flash).")
	flag.DurationVar(&rtcOffset, "rtc-offset", 0, "Shift the simulated RTC from the system clock.")

	flag.BoolVar(&small, "small", false, "Use the 320x240 panel.")
	flag.BoolVar(&hour24, "24h", false, "Show 24-hour time.")
	flag.BoolVar(&monthFirst, "month-first", false, "Show the date as MM.DD.YYYY.")
	flag.BoolVar(&fahrenheit, "fahrenheit", false, "Show the temperature in Fahrenheit.")
	flag.BoolVar(&noOff, "no-off-segments", false, "Do not tint unlit segments.")
	flag.BoolVar(&cfg.BlinkColon, "blink-colon", cfg.BlinkColon, "Flash the time colon.")
	flag.BoolVar(&cfg.HideDisabledAlarm, "hide-disabled-alarm", cfg.HideDisabledAlarm, "Blank the alarm time while disarmed.")
	flag.BoolVar(&cfg.Southern, "southern", cfg.Southern, "Southern hemisphere moon and seasons.")
	flag.BoolVar(&noTouch, "no-touch", false, "Use the alarm switch (key L) instead of touch.")
	flag.Float64Var(&cfg.AltitudeMeters, "altitude", cfg.AltitudeMeters, "Station altitude in metres.")
	flag.Float64Var(&cfg.LocalMinHPa, "local-min", 0, "Lowest local sea level pressure in hPa.")
	flag.Float64Var(&cfg.LocalMaxHPa, "local-max", 0, "Highest local sea level pressure in hPa.")
	flag.Uint64Var(&cfg.SplashMillis, "splash", cfg.SplashMillis, "Start-up splash time in milliseconds.")
	flag.BoolVar(&cfg.Debug, "debug", false, "Overlay raw sensor values.")
	flag.BoolVar(&version, "version", false, "Print the build and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.Line())
		return
	}

	if small {
		cfg.PanelWidth, cfg.PanelHeight = config.SmallWidth, config.SmallHeight
	}
	cfg.Hour12 = !hour24
	cfg.DayFirst = !monthFirst
	cfg.Celsius = !fahrenheit
	cfg.ShowOffSegments = !noOff
	cfg.HasTouch = !noTouch
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	hcfg.Host.Width, hcfg.Host.Height = cfg.PanelWidth, cfg.PanelHeight
	hcfg.Host.RTCOffset = rtcOffset
	newApp := func(h hal.HAL) func() error { return app.New(h, cfg) }

	if headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, hcfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp, hal.WindowConfig{Host: hcfg.Host, Scale: scale}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
