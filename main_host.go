//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"wireframe/app"
	"wireframe/hal"
	"wireframe/internal/config"
)

func main() {
	var (
		cfgPath  = flag.String("config", "wireframe.yml", "Path to YAML config (missing file = defaults).")
		terminal = flag.Bool("term", false, "Render into the terminal instead of a window.")
		headless = flag.Bool("headless", false, "Run without any display.")
		hz       = flag.Int("hz", 60, "Tick rate in terminal/headless mode.")
		ticks    = flag.Uint64("ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	newApp := func(h hal.HAL) func() error {
		return app.New(h, cfg).Step
	}

	switch {
	case *headless:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, newApp, hal.HeadlessConfig{
			Width:  cfg.Width,
			Height: cfg.Height,
			Hz:     *hz,
			Ticks:  *ticks,
		})
	case *terminal:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunTerminal(ctx, newApp, hal.TerminalConfig{
			Width:  cfg.Width,
			Height: cfg.Height,
			Hz:     *hz,
		})
	default:
		err = hal.RunWindow(newApp, cfg.Width, cfg.Height)
	}

	if err != nil && err != context.Canceled {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
