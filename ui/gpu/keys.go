package gpu

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-gl/input"
)

// KeySource reads key presses from the raylib window
type KeySource struct{}

func NewKeySource() *KeySource {
	return &KeySource{}
}

// Poll returns key presses queued since the last frame plus any that arrived
// while the loop was sleeping. Closing the window counts as Exit.
func (s *KeySource) Poll() ([]input.Command, error) {
	var cmds []input.Command
	drain := func() {
		for k := rl.GetKeyPressed(); k != rl.KeyNull; k = rl.GetKeyPressed() {
			if c := FromRaylibKey(k); c != input.None {
				cmds = append(cmds, c)
			}
		}
	}

	drain()
	rl.PollInputEvents()
	drain()

	if rl.WindowShouldClose() {
		cmds = append(cmds, input.Exit)
	}
	return cmds, nil
}

// FromRaylibKey maps WASD, the arrow keys and Escape
func FromRaylibKey(k int32) input.Command {
	switch k {
	case rl.KeyW, rl.KeyUp:
		return input.MoveUp
	case rl.KeyD, rl.KeyRight:
		return input.MoveRight
	case rl.KeyS, rl.KeyDown:
		return input.MoveDown
	case rl.KeyA, rl.KeyLeft:
		return input.MoveLeft
	case rl.KeyEscape:
		return input.Exit
	}
	return input.None
}

var _ input.Source = (*KeySource)(nil)
