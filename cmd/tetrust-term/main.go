package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/browser"
	"go.uber.org/zap"

	"github.com/plus3/tetrust/config"
	"github.com/plus3/tetrust/driver"
	"github.com/plus3/tetrust/engine"
	"github.com/plus3/tetrust/logging"
	"github.com/plus3/tetrust/loop"
	"github.com/plus3/tetrust/tui"
)

const (
	frameInterval = 50 * time.Millisecond
	queueSize     = 64
	defaultLog    = "tetrust.log"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "tetrust-term:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		return err
	}

	// The terminal is the screen, so logs always go to a file.
	if cfg.LogFile == "" {
		cfg.LogFile = defaultLog
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer logger.Sync()

	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	e := engine.New(engine.WithRandomizer(cfg.NewRandomizer()))
	queue := driver.NewKeyQueue(queueSize)
	go tui.Pump(screen, queue)

	scheduler := loop.NewScheduler(e)
	scheduler.Register(&driver.InputSystem{
		Queue:    queue,
		OpenLink: func() error { return browser.OpenURL(cfg.HelpURL) },
		Logger:   logger,
	})
	scheduler.Register(&driver.GravitySystem{Clock: driver.NewGravityClock(cfg.Gravity)})
	scheduler.Register(tui.NewRenderer(screen))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting terminal front-end",
		zap.Duration("gravity", cfg.Gravity),
		zap.String("randomizer", cfg.Randomizer),
	)
	scheduler.Run(ctx, frameInterval)

	stats := e.Stats()
	logger.Info("exiting",
		zap.Stringer("screen", e.Screen()),
		zap.Int("score", e.Score()),
		zap.Int("lines", stats.Lines),
		zap.Int64("frames", scheduler.GetStats().Frames),
	)
	return nil
}
