package input

import (
	"errors"
	"testing"

	"github.com/eiannone/keyboard"

	"snake-gl/game/types"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		cmds []Command
		want Intent
	}{
		{"nothing", nil, Intent{}},
		{"single", []Command{MoveUp}, Intent{Direction: types.Up, Turn: true}},
		{"last wins", []Command{MoveUp, MoveLeft, MoveDown}, Intent{Direction: types.Down, Turn: true}},
		{"exit only", []Command{Exit}, Intent{Exit: true}},
		{"exit first", []Command{Exit, MoveRight}, Intent{Direction: types.Right, Turn: true, Exit: true}},
		{"none ignored", []Command{MoveLeft, None}, Intent{Direction: types.Left, Turn: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.cmds); got != tt.want {
				t.Errorf("Resolve(%v) = %+v, want %+v", tt.cmds, got, tt.want)
			}
		})
	}
}

func TestFromTerminalKey(t *testing.T) {
	tests := []struct {
		r    rune
		k    keyboard.Key
		want Command
	}{
		{0, keyboard.KeyArrowUp, MoveUp},
		{0, keyboard.KeyArrowRight, MoveRight},
		{0, keyboard.KeyArrowDown, MoveDown},
		{0, keyboard.KeyArrowLeft, MoveLeft},
		{0, keyboard.KeyEsc, Exit},
		{0, keyboard.KeyCtrlC, Exit},
		{'w', 0, MoveUp},
		{'D', 0, MoveRight},
		{'s', 0, MoveDown},
		{'a', 0, MoveLeft},
		{'q', 0, None},
	}
	for _, tt := range tests {
		if got := FromTerminalKey(tt.r, tt.k); got != tt.want {
			t.Errorf("FromTerminalKey(%q, %v) = %v, want %v", tt.r, tt.k, got, tt.want)
		}
	}
}

func TestTerminalSourcePoll(t *testing.T) {
	events := make(chan keyboard.KeyEvent, 4)
	events <- keyboard.KeyEvent{Key: keyboard.KeyArrowUp}
	events <- keyboard.KeyEvent{Rune: 'x'}
	events <- keyboard.KeyEvent{Rune: 'a'}
	s := &TerminalSource{events: events}

	got, err := s.Poll()
	if err != nil {
		t.Fatalf("Poll() error = %v", err)
	}
	if len(got) != 2 || got[0] != MoveUp || got[1] != MoveLeft {
		t.Errorf("Poll() = %v, want [up left]", got)
	}

	got, err = s.Poll()
	if err != nil || len(got) != 0 {
		t.Errorf("Poll() on empty queue = %v, %v; want nothing", got, err)
	}
}

func TestTerminalSourceClosedChannel(t *testing.T) {
	events := make(chan keyboard.KeyEvent)
	close(events)
	s := &TerminalSource{events: events}

	got, err := s.Poll()
	if err != nil {
		t.Fatalf("Poll() error = %v", err)
	}
	if len(got) != 1 || got[0] != Exit {
		t.Errorf("Poll() = %v, want [exit]", got)
	}
}

func TestTerminalSourceError(t *testing.T) {
	events := make(chan keyboard.KeyEvent, 1)
	events <- keyboard.KeyEvent{Err: errors.New("bad sequence")}
	s := &TerminalSource{events: events}

	if _, err := s.Poll(); err == nil {
		t.Errorf("Poll() error = nil, want error")
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}
