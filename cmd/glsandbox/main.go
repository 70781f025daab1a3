// Command glsandbox opens an OpenGL window with a pulsing quad and a line
// of text rendered from bitmap or MSDF glyphs. Press M to switch glyph
// modes and Escape to quit.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"

	glsandbox "github.com/gogpu/glsandbox"
	"github.com/gogpu/glsandbox/app"
	"github.com/gogpu/glsandbox/gfx/glfwgl"
	"github.com/gogpu/glsandbox/internal/config"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML configuration file")
		fontPath   = flag.String("font", "", "font file (overrides config)")
		mode       = flag.String("mode", "", "initial glyph mode: bitmap or msdf (overrides config)")
		exportOnly = flag.Bool("export-only", false, "build and export the MSDF atlas, then exit")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	glsandbox.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *fontPath != "" {
		cfg.Font.Path = *fontPath
	}
	if *mode != "" {
		cfg.Text.Mode = *mode
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	if *exportOnly {
		path, err := app.Export(cfg)
		if err != nil {
			log.Fatalf("Failed to export atlas: %v", err)
		}
		log.Printf("Atlas saved to %s\n", path)
		return
	}

	swap := 0
	if cfg.Window.VSync {
		swap = 1
	}
	win, dev, err := glfwgl.Open(glfwgl.WindowConfig{
		Width:        cfg.Window.Width,
		Height:       cfg.Window.Height,
		Title:        cfg.Window.Title,
		SwapInterval: swap,
	})
	if err != nil {
		log.Fatalf("Failed to open window: %v", err)
	}

	a, err := app.New(cfg, win, dev)
	if err != nil {
		_ = dev.Close()
		_ = win.Close()
		log.Fatalf("Failed to start: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	runErr := a.Run(ctx)
	stop()

	if err := a.Close(); err != nil {
		log.Printf("Close: %v", err)
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Fatalf("Render loop failed: %v", runErr)
	}
}
