// Command appfdemo opens a window, logs every routed event and exits
// when the window is closed. Right-clicking quits the whole app,
// which also exercises window destruction from inside a handler.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/dawgfoto/appf"
	"github.com/dawgfoto/appf/internal/config"
)

func main() {
	fs := flag.NewFlagSet("appfdemo", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: appfdemo [options]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Open a demo window and log routed events until it is closed.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
	}
	configPath := fs.String("config", "", "Config file path (default: ~/.config/appf/config.yaml)")
	display := fs.String("display", "", "X display to connect to (overrides config)")
	title := fs.String("title", "appf demo", "Window title")
	width := fs.Int("width", 640, "Window width in pixels")
	height := fs.Int("height", 480, "Window height in pixels")
	sub := fs.Bool("sub", false, "Also create an unmanaged sub-window surface")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	var cfg *config.Config
	var err error
	if *configPath == "" {
		cfg, err = config.Load()
	} else {
		cfg, err = config.LoadFromPath(*configPath)
	}
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	if cfg.XAuthority != "" {
		os.Setenv("XAUTHORITY", cfg.XAuthority)
	}
	if *display == "" {
		*display = cfg.Display
	}

	app, err := appf.New(*display)
	if err != nil {
		log.Fatalf("Failed to connect to display: %v", err)
	}
	defer app.Close()

	handler := appf.HandlerFunc(func(ev appf.Event, win *appf.Window) {
		switch e := ev.(type) {
		case appf.Redraw:
			logger.Debug("redraw", "area", e.Area)
		case appf.Resize:
			logger.Info("resize", "area", e.Area)
		case appf.MouseButton:
			logger.Info("mouse", "pos", e.Pos, "button", e.Button, "mod", e.Mod)
			if e.Button == appf.ButtonRight {
				app.Quit()
			}
		}
	})

	win, err := app.CreateWindow(appf.Rect{X: 100, Y: 100, Width: *width, Height: *height}, handler)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	if err := win.SetTitle(*title); err != nil {
		logger.Warn("set title failed", "err", err)
	}

	if *sub {
		if _, err := win.NewSubWindow(appf.Rect{X: 10, Y: 10, Width: 100, Height: 100}); err != nil {
			logger.Warn("sub-window creation failed", "err", err)
		}
	}

	if err := win.Show(); err != nil {
		log.Fatalf("Failed to show window: %v", err)
	}

	logger.Info("entering event loop", "window", win.ID())
	os.Exit(app.Run())
}
