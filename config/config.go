// Package config reads the startup settings from flags, the environment and
// an optional .env file, in that order of precedence.
package config

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"snake-gl/game/types"
	"snake-gl/ui"
)

const (
	BackendGPU  = "gpu"
	BackendSoft = "soft"
)

const defaultEnvFile = ".env"

type Config struct {
	WindowWidth  int
	WindowHeight int
	Title        string
	GridWidth    int
	GridHeight   int
	CellSize     int
	CellOffset   int
	Tick         time.Duration
	Backend      string
	FrameOut     string
	FBDevice     string
	Seed         uint64
	LogLevel     string
	EnvFile      string
}

// Default returns the reference setup: a 10x10 grid of 60px cells in an 800x800 window.
func Default() Config {
	return Config{
		WindowWidth:  800,
		WindowHeight: 800,
		Title:        "snake-gl",
		GridWidth:    10,
		GridHeight:   10,
		CellSize:     60,
		CellOffset:   5,
		Tick:         200 * time.Millisecond,
		Backend:      BackendGPU,
		LogLevel:     "info",
		EnvFile:      defaultEnvFile,
	}
}

// envKeys binds flags to the environment variables that can set them
var envKeys = map[string]string{
	"width":       "SNAKE_WINDOW_WIDTH",
	"height":      "SNAKE_WINDOW_HEIGHT",
	"grid-width":  "SNAKE_GRID_WIDTH",
	"grid-height": "SNAKE_GRID_HEIGHT",
	"cell-size":   "SNAKE_CELL_SIZE",
	"cell-offset": "SNAKE_CELL_OFFSET",
	"tick":        "SNAKE_TICK",
	"backend":     "SNAKE_BACKEND",
	"frame-out":   "SNAKE_FRAME_OUT",
	"fbdev":       "SNAKE_FBDEV",
	"seed":        "SNAKE_SEED",
	"log-level":   "SNAKE_LOG_LEVEL",
}

// Parse reads args (without the program name). Variables come from lookup first
// and then from the env file. A nil lookup means os.LookupEnv.
func Parse(args []string, lookup func(string) (string, bool), output io.Writer) (Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	cfg := Default()

	fs := flag.NewFlagSet("snake-gl", flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}
	fs.IntVar(&cfg.WindowWidth, "width", cfg.WindowWidth, "window width in pixels")
	fs.IntVar(&cfg.WindowHeight, "height", cfg.WindowHeight, "window height in pixels")
	fs.IntVar(&cfg.GridWidth, "grid-width", cfg.GridWidth, "number of columns")
	fs.IntVar(&cfg.GridHeight, "grid-height", cfg.GridHeight, "number of rows")
	fs.IntVar(&cfg.CellSize, "cell-size", cfg.CellSize, "cell edge in pixels")
	fs.IntVar(&cfg.CellOffset, "cell-offset", cfg.CellOffset, "gap between cells in pixels")
	fs.DurationVar(&cfg.Tick, "tick", cfg.Tick, "time between two moves")
	fs.StringVar(&cfg.Backend, "backend", cfg.Backend, "renderer: gpu (window) or soft (png file / framebuffer)")
	fs.StringVar(&cfg.FrameOut, "frame-out", cfg.FrameOut, "soft backend: write the latest frame to this PNG file")
	fs.StringVar(&cfg.FBDevice, "fbdev", cfg.FBDevice, "soft backend: draw on this framebuffer device, e.g. /dev/fb0")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "fruit placement seed, 0 picks one from the clock")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fs.StringVar(&cfg.EnvFile, "env-file", cfg.EnvFile, "file with SNAKE_* variables")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	fileVars, err := godotenv.Read(cfg.EnvFile)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) || set["env-file"] {
			return cfg, errors.Wrapf(err, "read env file %s", cfg.EnvFile)
		}
		fileVars = nil
	}

	for name, key := range envKeys {
		if set[name] {
			continue
		}
		v, ok := lookup(key)
		if !ok {
			v, ok = fileVars[key]
		}
		if !ok {
			continue
		}
		if err := fs.Set(name, v); err != nil {
			return cfg, errors.Wrapf(err, "invalid %s", key)
		}
	}
	return cfg, nil
}

func (c Config) Grid() types.Grid {
	return types.Grid{Width: c.GridWidth, Height: c.GridHeight}
}

func (c Config) Layout() ui.LayoutParams {
	return ui.LayoutParams{
		Grid:         c.Grid(),
		CellSize:     c.CellSize,
		CellOffset:   c.CellOffset,
		WindowWidth:  c.WindowWidth,
		WindowHeight: c.WindowHeight,
	}
}

// Validate rejects settings the game cannot start with.
// Fruit never spawns in row or column 0, so the grid needs at least 2x2 cells.
func (c Config) Validate() error {
	if c.GridWidth < 2 || c.GridHeight < 2 {
		return errors.Errorf("grid must be at least 2x2, got %dx%d", c.GridWidth, c.GridHeight)
	}
	if c.Tick <= 0 {
		return errors.Errorf("tick must be positive, got %v", c.Tick)
	}
	switch c.Backend {
	case BackendGPU:
	case BackendSoft:
		if c.FrameOut == "" && c.FBDevice == "" {
			return errors.New("soft backend needs -frame-out or -fbdev")
		}
	default:
		return errors.Errorf("unknown backend %q", c.Backend)
	}
	return errors.Wrap(c.Layout().Validate(), "layout")
}
