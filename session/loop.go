// Package session drives one round of the game: it polls input, advances the
// field one tick and redraws, at a fixed interval.
package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"snake-gl/game"
	"snake-gl/input"
	"snake-gl/logging"
	"snake-gl/ui"
)

// DefaultInterval is the time between two ticks
const DefaultInterval = 200 * time.Millisecond

// Reason tells why a round ended
type Reason int

const (
	ReasonExit Reason = iota
	ReasonCollision
	ReasonWin
	ReasonCancelled
)

func (r Reason) String() string {
	switch r {
	case ReasonExit:
		return "exit"
	case ReasonCollision:
		return "collision"
	case ReasonWin:
		return "win"
	case ReasonCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Frame is the drawing side of the loop; *ui.Renderer implements it
type Frame interface {
	Render(s ui.Scene) error
	Present() error
}

type Result struct {
	Reason  Reason
	Outcome game.Outcome
	Ticks   int
	Length  int
}

type Loop struct {
	Field    *game.Field
	Frame    Frame
	Input    input.Source
	Interval time.Duration
	Logger   *slog.Logger
}

func New(field *game.Field, frame Frame, src input.Source, interval time.Duration) *Loop {
	return &Loop{
		Field:    field,
		Frame:    frame,
		Input:    src,
		Interval: interval,
		Logger:   logging.Component("session"),
	}
}

// Run plays until the player quits, the round ends or ctx is cancelled.
func (l *Loop) Run(ctx context.Context) (Result, error) {
	if l.Interval <= 0 {
		return Result{}, errors.Errorf("tick interval must be positive, got %v", l.Interval)
	}
	logger := l.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	ticker := time.NewTicker(l.Interval)
	defer ticker.Stop()

	logger.Info("round started", "grid", l.Field.Grid, "interval", l.Interval, "fruit", l.Field.Fruit)
	for {
		reason, done, err := l.tick(logger)
		if err != nil {
			return l.result(reason), err
		}
		if done {
			res := l.result(reason)
			logger.Info("round over", "reason", res.Reason, "outcome", res.Outcome, "ticks", res.Ticks, "length", res.Length)
			return res, nil
		}

		select {
		case <-ctx.Done():
			res := l.result(ReasonCancelled)
			logger.Info("round cancelled", "ticks", res.Ticks, "length", res.Length)
			return res, nil
		case <-ticker.C:
		}
	}
}

// tick runs one frame. It reports whether the round is over.
func (l *Loop) tick(logger *slog.Logger) (Reason, bool, error) {
	cmds, err := l.Input.Poll()
	if err != nil {
		return ReasonExit, true, errors.Wrap(err, "poll input")
	}
	intent := input.Resolve(cmds)
	if intent.Exit {
		return ReasonExit, true, nil
	}
	if intent.Turn && !l.Field.TryChangeDirection(intent.Direction) {
		logger.Debug("reverse turn ignored", "requested", intent.Direction, "heading", l.Field.Snake.Direction)
	}

	before := l.Field.Snake.Length()
	switch l.Field.Step() {
	case game.Dead:
		return ReasonCollision, true, nil
	case game.Won:
		return ReasonWin, true, nil
	}
	if l.Field.Snake.Length() > before {
		logger.Debug("fruit eaten", "length", l.Field.Snake.Length(), "next", l.Field.Fruit)
	}

	if err := l.Frame.Render(l.Field); err != nil {
		return ReasonExit, true, errors.Wrap(err, "render")
	}
	if err := l.Frame.Present(); err != nil {
		return ReasonExit, true, errors.Wrap(err, "present")
	}
	return ReasonExit, false, nil
}

func (l *Loop) result(r Reason) Result {
	return Result{
		Reason:  r,
		Outcome: l.Field.Outcome(),
		Ticks:   l.Field.Ticks(),
		Length:  l.Field.Snake.Length(),
	}
}
