package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"quadgrid/app"
	"quadgrid/hal"
	"quadgrid/internal/buildinfo"
	"quadgrid/metrics"
)

func main() {
	var (
		headless hal.HeadlessConfig
		term     hal.TerminalConfig
		win      hal.WindowConfig
		acfg     app.Config
		metAddr  string
		version  bool
	)
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless and terminal mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&headless.Snapshot, "snapshot", "", "Write a PNG of the last headless frame to this file.")
	flag.BoolVar(&term.Enabled, "tui", false, "Render into the terminal instead of a window.")
	flag.IntVar(&win.Scale, "scale", 1, "Window zoom factor.")
	flag.StringVar(&acfg.X, "x", "", "Initial X coordinate.")
	flag.StringVar(&acfg.Y, "y", "", "Initial Y coordinate.")
	flag.BoolVar(&acfg.Sound, "sound", true, "Play a tone when input is rejected (window mode only).")
	flag.StringVar(&metAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090).")
	flag.BoolVar(&version, "version", false, "Print build information and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String("quadgrid"))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if metAddr != "" {
		acfg.Metrics = metrics.New()
		go func() {
			if err := acfg.Metrics.Serve(ctx, metAddr); err != nil && !errors.Is(err, context.Canceled) {
				fmt.Fprintln(os.Stderr, err)
			}
		}()
	}

	var err error
	switch {
	case headless.Enabled:
		acfg.Sound = false
		err = hal.RunHeadless(ctx, newApp(acfg), headless)
	case term.Enabled:
		acfg.Sound = false
		term.Hz = headless.Hz
		err = hal.RunTerminal(ctx, newApp(acfg), term)
	default:
		err = hal.RunWindow(newApp(acfg), win)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(cfg app.Config) func(hal.HAL) func() error {
	return func(h hal.HAL) func() error {
		return app.NewWithConfig(h, cfg)
	}
}
