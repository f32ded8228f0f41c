//go:build tinygo

package main

import (
	"time"

	"wireframe/app"
	"wireframe/hal"
	"wireframe/internal/config"
)

func main() {
	cfg := config.Default()
	cfg.HUD = false // the panel is small, keep every pixel for the shape

	h := hal.New(0, 0) // embedded HAL sizes itself to the panel
	a := app.New(h, cfg)

	for {
		if err := a.Step(); err != nil {
			return
		}
		time.Sleep(33 * time.Millisecond)
	}
}
