package entity

import (
	"snake-gl/game/types"
)

type Snake struct {
	Head types.Point
	// Body[0] is the segment right behind the head, the last element is the tail end
	Body          []types.Point
	Direction     types.Direction
	PendingGrowth bool
}

func NewSnake(startPos types.Point, dir types.Direction) *Snake {
	return &Snake{
		Head:      startPos,
		Body:      make([]types.Point, 0),
		Direction: dir,
	}
}

// SetDirection changes the heading unless dir would turn the snake onto itself.
// It reports whether the direction was accepted.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if dir == s.Direction.Opposite() {
		return false
	}
	s.Direction = dir
	return true
}

// Move places the head on newHead and shifts the body behind it.
// The body grows by one segment when PendingGrowth is set; the flag is cleared either way.
func (s *Snake) Move(newHead types.Point) {
	oldHead := s.Head
	s.Head = newHead

	grow := s.PendingGrowth
	s.PendingGrowth = false

	if len(s.Body) == 0 {
		if grow {
			s.Body = append(s.Body, oldHead)
		}
		return
	}

	if grow {
		s.Body = append(s.Body, types.Point{})
	}
	copy(s.Body[1:], s.Body)
	s.Body[0] = oldHead
}

// Occupies reports whether p is covered by the head or any body segment
func (s *Snake) Occupies(p types.Point) bool {
	return s.Head == p || s.BodyContains(p)
}

func (s *Snake) BodyContains(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Length counts the head plus the body
func (s *Snake) Length() int {
	return len(s.Body) + 1
}
