// Command sandbox is a reference host for the fallingsand simulation core:
// it opens a window, loads a grid from configuration, and paints into it
// with the mouse. It exists to exercise the core's public interfaces end to
// end; the core itself has no dependency on this binary.
package main

import (
	"flag"
	"runtime"

	"github.com/gekko3d/fallingsand"
	"github.com/gekko3d/fallingsand/config"
	"github.com/gekko3d/fallingsand/hostapp"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config overlay (optional)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	universe := fallingsand.New(cfg.Grid.Width, cfg.Grid.Height, cfg)

	logger := fallingsand.NewDefaultLogger(cfg.Logger.Prefix, cfg.Logger.Debug || *debug)
	universe.SetLogger(logger)
	logger.Infof("starting run %s (%dx%d)", universe.ID(), universe.Width(), universe.Height())

	app, err := hostapp.New(cfg, universe)
	if err != nil {
		logger.Errorf("failed to start host: %v", err)
		panic(err)
	}
	app.Run()
}
