package types

import "fmt"

// Point is a cell coordinate on the grid
type Point struct {
	X, Y int
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Cells returns the total number of cells of the grid
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Index returns the row-major index of p
func (g Grid) Index(p Point) int {
	return p.X + p.Y*g.Width
}

func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap brings a point that stepped one cell off the grid back on the opposite edge
func (g Grid) Wrap(p Point) Point {
	switch {
	case p.X >= g.Width:
		p.X = 0
	case p.X < 0:
		p.X = g.Width - 1
	}
	switch {
	case p.Y >= g.Height:
		p.Y = 0
	case p.Y < 0:
		p.Y = g.Height - 1
	}
	return p
}

func (g Grid) String() string {
	return fmt.Sprintf("%dx%d", g.Width, g.Height)
}
