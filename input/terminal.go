package input

import (
	"github.com/eiannone/keyboard"
	"github.com/pkg/errors"

	"snake-gl/logging"
)

// TerminalSource reads keys from the controlling terminal in raw mode
type TerminalSource struct {
	events <-chan keyboard.KeyEvent
	close  func() error
}

func NewTerminalSource() (*TerminalSource, error) {
	events, err := keyboard.GetKeys(16)
	if err != nil {
		return nil, errors.Wrap(err, "open terminal keyboard")
	}
	logging.Component("input").Info("reading keys from terminal", "controls", "wasd/arrows, esc to quit")
	return &TerminalSource{events: events, close: keyboard.Close}, nil
}

// Poll drains the pending key events without blocking
func (s *TerminalSource) Poll() ([]Command, error) {
	var cmds []Command
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return append(cmds, Exit), nil
			}
			if ev.Err != nil {
				return cmds, errors.Wrap(ev.Err, "read terminal key")
			}
			if c := FromTerminalKey(ev.Rune, ev.Key); c != None {
				cmds = append(cmds, c)
			}
		default:
			return cmds, nil
		}
	}
}

func (s *TerminalSource) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// FromTerminalKey maps WASD, the arrow keys, Esc and Ctrl+C
func FromTerminalKey(r rune, k keyboard.Key) Command {
	switch k {
	case keyboard.KeyArrowUp:
		return MoveUp
	case keyboard.KeyArrowRight:
		return MoveRight
	case keyboard.KeyArrowDown:
		return MoveDown
	case keyboard.KeyArrowLeft:
		return MoveLeft
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return Exit
	}
	switch r {
	case 'w', 'W':
		return MoveUp
	case 'd', 'D':
		return MoveRight
	case 's', 'S':
		return MoveDown
	case 'a', 'A':
		return MoveLeft
	}
	return None
}
