// Package input turns raw key events into game commands.
package input

import "snake-gl/game/types"

// Command is a key press translated to something the game understands
type Command int

const (
	None Command = iota
	MoveUp
	MoveRight
	MoveDown
	MoveLeft
	Exit
)

func (c Command) String() string {
	switch c {
	case MoveUp:
		return "up"
	case MoveRight:
		return "right"
	case MoveDown:
		return "down"
	case MoveLeft:
		return "left"
	case Exit:
		return "exit"
	default:
		return "none"
	}
}

// Direction returns the heading a movement command asks for
func (c Command) Direction() (types.Direction, bool) {
	switch c {
	case MoveUp:
		return types.Up, true
	case MoveRight:
		return types.Right, true
	case MoveDown:
		return types.Down, true
	case MoveLeft:
		return types.Left, true
	default:
		return 0, false
	}
}

// Source yields the commands seen since the previous poll, oldest first
type Source interface {
	Poll() ([]Command, error)
}

// Intent is what a frame does with the polled commands
type Intent struct {
	Direction types.Direction
	Turn      bool
	Exit      bool
}

// Resolve keeps the last movement command of the batch. Exit anywhere in the batch wins.
func Resolve(cmds []Command) Intent {
	var in Intent
	for _, c := range cmds {
		if c == Exit {
			in.Exit = true
			continue
		}
		if d, ok := c.Direction(); ok {
			in.Direction = d
			in.Turn = true
		}
	}
	return in
}
