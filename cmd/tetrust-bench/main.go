package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/plus3/tetrust/autoplay"
	"github.com/plus3/tetrust/config"
	"github.com/plus3/tetrust/engine"
	"github.com/plus3/tetrust/logging"
	"github.com/plus3/tetrust/loop"
)

var errUnbounded = errors.New("either -games or -duration must be set")

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "tetrust-bench:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}

	games := flag.Int("games", 20, "Number of games to play; zero plays until -duration elapses.")
	duration := flag.Duration("duration", 0, "Stop after this long; zero runs until all games finish.")
	maxPieces := flag.Int("max-pieces", 1000, "End a game after this many pieces; zero means no limit.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		return err
	}
	if *games <= 0 && *duration <= 0 {
		return errUnbounded
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer logger.Sync()

	e := engine.New(engine.WithRandomizer(cfg.NewRandomizer()))
	player := &autoplay.Player{
		Weights:   autoplay.DefaultWeights,
		Games:     *games,
		MaxPieces: *maxPieces,
	}
	player.OnGame = func(result autoplay.GameResult) {
		logger.Info("game finished",
			zap.Int("game", len(player.Results)),
			zap.Int("score", result.Score),
			zap.Int("lines", result.Lines),
			zap.Int("pieces", result.Pieces),
		)
	}

	scheduler := loop.NewScheduler(e)
	scheduler.Register(player)

	report := &Report{
		Games:          *games,
		Duration:       *duration,
		MaxPieces:      *maxPieces,
		Randomizer:     cfg.Randomizer,
		Seed:           cfg.Seed,
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	ctx := context.Background()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	logger.Info("starting benchmark",
		zap.Int("games", *games),
		zap.Duration("duration", *duration),
		zap.Int("max_pieces", *maxPieces),
		zap.String("randomizer", cfg.Randomizer),
	)

	startTime := time.Now()
	lastFrameTime := startTime

Loop:
	for !scheduler.Done() {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()
			scheduler.Once(deltaTime.Seconds())
		}
	}

	report.Collect(player.Results, scheduler.GetStats(), time.Since(startTime))
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Info("benchmark finished",
		zap.Int("completed", report.Completed),
		zap.Duration("elapsed", report.TotalTime),
	)

	return report.Generate(os.Stdout)
}
