//go:build !tinygo

package app

import (
	"context"
	"testing"

	"deskclock/hal"
	"deskclock/internal/config"
)

func TestHeadlessRunPaintsFace(t *testing.T) {
	cfg := config.Default()
	cfg.SplashMillis = 0

	var lit int
	err := hal.RunHeadless(context.Background(), func(h hal.HAL) func() error {
		return New(h, cfg)
	}, hal.HeadlessConfig{
		Host:  hal.HostConfig{Width: cfg.PanelWidth, Height: cfg.PanelHeight, FlashPath: hal.MemoryFlash},
		Hz:    200,
		Ticks: 20,
		Done: func(s *hal.BufferSurface) {
			for y := 0; y < s.Height(); y++ {
				for x := 0; x < s.Width(); x++ {
					if s.At(x, y) != 0 {
						lit++
					}
				}
			}
		},
	})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if lit == 0 {
		t.Fatal("face left the panel black")
	}
}

func TestBadConfigHaltsOnFirstStep(t *testing.T) {
	cfg := config.Default()
	cfg.AltitudeMeters = 1e6

	err := hal.RunHeadless(context.Background(), func(h hal.HAL) func() error {
		return New(h, cfg)
	}, hal.HeadlessConfig{
		Host:  hal.HostConfig{FlashPath: hal.MemoryFlash},
		Hz:    200,
		Ticks: 5,
	})
	if err == nil {
		t.Fatal("invalid config ran")
	}
}
