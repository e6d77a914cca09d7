package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/browser"
	"go.uber.org/zap"

	"github.com/plus3/tetrust/config"
	"github.com/plus3/tetrust/debugui"
	"github.com/plus3/tetrust/driver"
	"github.com/plus3/tetrust/engine"
	"github.com/plus3/tetrust/logging"
	"github.com/plus3/tetrust/loop"
)

const (
	windowTitle   = "Tet-Rust"
	queueSize     = 64
	historyFrames = 120
)

// Game implements ebiten.Game around the frame scheduler.
type Game struct {
	engine    *engine.Engine
	scheduler *loop.Scheduler
	queue     *driver.KeyQueue
	timer     *debugui.FrameTimer
	hud       *HUD

	backend *debugui.Backend
	overlay *debugui.Overlay
}

func (g *Game) Update() error {
	if g.overlay == nil || !g.overlay.Input().WantCaptureKeyboard {
		pollKeys(g.queue)
	}

	if g.backend != nil {
		g.backend.BeginFrame()
	}
	g.scheduler.Once(g.timer.DeltaTime())
	if g.backend != nil {
		g.backend.EndFrame()
	}

	if g.scheduler.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	draw(screen, g.engine, g.hud)

	if g.backend != nil {
		g.backend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return ScreenWidth, ScreenHeight
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "tetrust:", err)
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

	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer logger.Sync()

	e := engine.New(engine.WithRandomizer(cfg.NewRandomizer()))
	game := &Game{
		engine:    e,
		scheduler: loop.NewScheduler(e),
		queue:     driver.NewKeyQueue(queueSize),
		timer:     debugui.NewFrameTimer(),
		hud:       &HUD{},
	}

	game.scheduler.Register(&driver.InputSystem{
		Queue:    game.queue,
		OpenLink: func() error { return browser.OpenURL(cfg.HelpURL) },
		Logger:   logger,
	})
	game.scheduler.Register(&driver.GravitySystem{Clock: driver.NewGravityClock(cfg.Gravity)})
	game.scheduler.Register(game.hud)

	if cfg.Debug {
		game.backend = debugui.NewBackend(windowTitle+" (debug)", 1280, 720)
		game.overlay = debugui.NewOverlay(historyFrames, game.scheduler.GetStats)
		game.scheduler.Register(game.overlay)
	} else {
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
		ebiten.SetWindowTitle(windowTitle)
	}

	logger.Info("starting",
		zap.Duration("gravity", cfg.Gravity),
		zap.String("randomizer", cfg.Randomizer),
		zap.Bool("debug", cfg.Debug),
	)

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run game: %w", err)
	}

	logger.Info("exiting",
		zap.Int("score", e.Score()),
		zap.Int("lines", e.Stats().Lines),
		zap.Int64("frames", game.scheduler.GetStats().Frames),
	)
	return nil
}
