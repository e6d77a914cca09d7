// Package config loads runtime settings for the tetrust binaries. Values
// come from defaults, an optional .env file, TETRUST_* environment variables
// and finally command-line flags, in increasing precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/plus3/tetrust/engine"
)

var (
	ErrInvalidGravity    = errors.New("invalid gravity interval")
	ErrInvalidRandomizer = errors.New("invalid randomizer")
	ErrInvalidLogLevel   = errors.New("invalid log level")
)

const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

const envPrefix = "TETRUST_"

type Config struct {
	Gravity    time.Duration
	HelpURL    string
	Randomizer string
	// Seed fixes the piece sequence when non-zero.
	Seed     uint64
	LogLevel string
	LogFile  string
	Debug    bool
}

func Default() Config {
	return Config{
		Gravity:    500 * time.Millisecond,
		HelpURL:    "https://github.com/yhanyi/TetRust",
		Randomizer: RandomizerUniform,
		LogLevel:   "info",
	}
}

// Load returns the defaults overlaid with envFile (if it exists) and the
// process environment. Variables already set in the environment win over
// the file.
func Load(envFile string) (Config, error) {
	cfg := Default()

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from TETRUST_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		return lookup(envPrefix + name)
	}

	if v, ok := get("GRAVITY"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sGRAVITY: %w", envPrefix, err)
		}
		c.Gravity = d
	}
	if v, ok := get("HELP_URL"); ok {
		c.HelpURL = v
	}
	if v, ok := get("RANDOMIZER"); ok {
		c.Randomizer = v
	}
	if v, ok := get("SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", envPrefix, err)
		}
		c.Seed = seed
	}
	if v, ok := get("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := get("LOG_FILE"); ok {
		c.LogFile = v
	}
	if v, ok := get("DEBUG"); ok {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sDEBUG: %w", envPrefix, err)
		}
		c.Debug = debug
	}
	return nil
}

// RegisterFlags binds flags to c using its current values as defaults.
func (c *Config) RegisterFlags(flags *flag.FlagSet) {
	flags.DurationVar(&c.Gravity, "gravity", c.Gravity, "interval between gravity steps")
	flags.StringVar(&c.HelpURL, "help-url", c.HelpURL, "URL opened by the title menu link entry")
	flags.StringVar(&c.Randomizer, "randomizer", c.Randomizer, "piece randomizer: uniform or bag")
	flags.Uint64Var(&c.Seed, "seed", c.Seed, "random seed, 0 for time based")
	flags.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level")
	flags.StringVar(&c.LogFile, "log-file", c.LogFile, "log file path, empty for stderr")
	flags.BoolVar(&c.Debug, "debug", c.Debug, "enable the debug overlay")
}

func (c Config) Validate() error {
	if c.Gravity <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidGravity, c.Gravity)
	}
	switch c.Randomizer {
	case RandomizerUniform, RandomizerBag:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidRandomizer, c.Randomizer)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return nil
}

// NewRandomizer builds the configured piece randomizer.
func (c Config) NewRandomizer() engine.Randomizer {
	var rng *rand.Rand
	if c.Seed != 0 {
		rng = rand.New(rand.NewPCG(c.Seed, c.Seed^0x9e3779b97f4a7c15))
	}

	if c.Randomizer == RandomizerBag {
		return engine.NewBagRandomizer(rng)
	}
	return engine.NewUniformRandomizer(rng)
}
