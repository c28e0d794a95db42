//go:build tinygo

package main

import (
	"deskclock/app"
	"deskclock/hal"
	"deskclock/internal/config"
)

func main() {
	cfg := config.Default()
	cfg.PanelWidth, cfg.PanelHeight = config.SmallWidth, config.SmallHeight
	app.Run(hal.New(), cfg)
}
