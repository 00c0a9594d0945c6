package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"snake-gl/config"
	"snake-gl/game"
	"snake-gl/input"
	"snake-gl/logging"
	"snake-gl/session"
	"snake-gl/ui"
	"snake-gl/ui/gpu"
	"snake-gl/ui/soft"
)

func main() {
	cfg, err := config.Parse(os.Args[1:], nil, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		logging.Logger().Error("snake-gl failed", "err", err)
		fmt.Fprintf(os.Stderr, "snake-gl: %+v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "config")
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logging.SetLogger(logging.New(os.Stderr, level).With("session", uuid.NewString()))
	logger := logging.Component("main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	layout, err := ui.BuildLayout(cfg.Layout())
	if err != nil {
		return err
	}

	backend, src, closeInput, err := openBackend(cfg)
	if err != nil {
		return err
	}
	defer closeInput()

	renderer, err := ui.NewRenderer(backend, layout, ui.DefaultPalette())
	if err != nil {
		backend.Close()
		return errors.Wrap(err, "upload geometry")
	}
	defer func() {
		if err := renderer.Close(); err != nil {
			logger.Warn("renderer close", "err", err)
		}
	}()

	field := game.NewField(cfg.Grid(), game.WithSeed(cfg.Seed))
	logger.Info("starting", "backend", cfg.Backend, "grid", cfg.Grid(), "tick", cfg.Tick, "seed", cfg.Seed)

	res, err := session.New(field, renderer, src, cfg.Tick).Run(ctx)
	if err != nil {
		return err
	}

	switch res.Reason {
	case session.ReasonWin:
		fmt.Printf("You won! Length %d after %d ticks.\n", res.Length, res.Ticks)
	case session.ReasonCollision:
		fmt.Printf("Game over. Length %d after %d ticks.\n", res.Length, res.Ticks)
	}
	logger.Info("finished", slog.String("reason", res.Reason.String()), slog.Int("length", res.Length))
	return nil
}

// openBackend picks the renderer and the matching key source. The returned
// close func releases the key source only; the backend is closed through the renderer.
func openBackend(cfg config.Config) (ui.Backend, input.Source, func(), error) {
	switch cfg.Backend {
	case config.BackendSoft:
		var presenter soft.Presenter
		if cfg.FBDevice != "" {
			fbp, err := soft.NewFramebufferPresenter(cfg.FBDevice)
			if err != nil {
				return nil, nil, nil, err
			}
			presenter = fbp
		} else {
			presenter = soft.NewPNGPresenter(cfg.FrameOut)
		}
		backend, err := soft.New(cfg.WindowWidth, cfg.WindowHeight, presenter)
		if err != nil {
			presenter.Close()
			return nil, nil, nil, err
		}
		keys, err := input.NewTerminalSource()
		if err != nil {
			backend.Close()
			return nil, nil, nil, err
		}
		return backend, keys, func() { keys.Close() }, nil
	default:
		backend, err := gpu.New(gpu.Config{Width: cfg.WindowWidth, Height: cfg.WindowHeight, Title: cfg.Title})
		if err != nil {
			return nil, nil, nil, err
		}
		return backend, gpu.NewKeySource(), func() {}, nil
	}
}
