package ui

import (
	"github.com/pkg/errors"

	"snake-gl/game/types"
	"snake-gl/geometry"
)

// QuadIndices is the index topology shared by every quad: two triangles over
// the corners in Quad order.
var QuadIndices = [6]uint16{0, 1, 2, 1, 2, 3}

// Quad holds four corners in device coordinates:
// top left, top right, bottom left, bottom right.
type Quad [4]geometry.Vector2

// Vertices flattens the corners into x, y pairs.
func (q Quad) Vertices() []float32 {
	v := make([]float32, 0, len(q)*2)
	for _, p := range q {
		v = append(v, p.X, p.Y)
	}
	return v
}

type LayoutParams struct {
	Grid         types.Grid
	CellSize     int
	CellOffset   int
	WindowWidth  int
	WindowHeight int
}

// FieldSize returns the pixel extent of the whole grid including gaps.
func (p LayoutParams) FieldSize() (w, h int) {
	w = p.CellSize*p.Grid.Width + p.CellOffset*(p.Grid.Width-1)
	h = p.CellSize*p.Grid.Height + p.CellOffset*(p.Grid.Height-1)
	return w, h
}

func (p LayoutParams) Validate() error {
	if p.Grid.Width <= 0 || p.Grid.Height <= 0 {
		return errors.Errorf("grid must be at least 1x1, got %v", p.Grid)
	}
	if p.CellSize <= 0 {
		return errors.Errorf("cell size must be positive, got %d", p.CellSize)
	}
	if p.CellOffset < 0 {
		return errors.Errorf("cell offset must not be negative, got %d", p.CellOffset)
	}
	if p.WindowWidth <= 0 || p.WindowHeight <= 0 {
		return errors.Errorf("window must be positive, got %dx%d", p.WindowWidth, p.WindowHeight)
	}
	w, h := p.FieldSize()
	if w > p.WindowWidth || h > p.WindowHeight {
		return errors.Errorf("field %dx%d does not fit window %dx%d", w, h, p.WindowWidth, p.WindowHeight)
	}
	return nil
}

// Layout is the precomputed screen geometry of the field.
// Cells is indexed like types.Grid.Index.
type Layout struct {
	Grid     types.Grid
	Boundary Quad
	Cells    []Quad
}

func (l Layout) Cell(p types.Point) Quad {
	return l.Cells[l.Grid.Index(p)]
}

// BuildLayout computes the boundary quad and one quad per cell, centred in the window.
func BuildLayout(p LayoutParams) (Layout, error) {
	if err := p.Validate(); err != nil {
		return Layout{}, errors.Wrap(err, "invalid layout")
	}

	fw, fh := p.FieldSize()
	ww, wh := float32(p.WindowWidth), float32(p.WindowHeight)
	model := geometry.Ortho2D(0, ww, wh, 0).Translate(geometry.Vector3{
		X: ww/2 - float32(fw)/2,
		Y: wh/2 - float32(fh)/2,
	})

	quad := func(x, y, w, h float32) Quad {
		return Quad{
			model.Project(geometry.Vector2{X: x, Y: y}),
			model.Project(geometry.Vector2{X: x + w, Y: y}),
			model.Project(geometry.Vector2{X: x, Y: y + h}),
			model.Project(geometry.Vector2{X: x + w, Y: y + h}),
		}
	}

	l := Layout{
		Grid:     p.Grid,
		Boundary: quad(0, 0, float32(fw), float32(fh)),
		Cells:    make([]Quad, 0, p.Grid.Cells()),
	}
	step := float32(p.CellSize + p.CellOffset)
	size := float32(p.CellSize)
	for j := 0; j < p.Grid.Height; j++ {
		for i := 0; i < p.Grid.Width; i++ {
			l.Cells = append(l.Cells, quad(float32(i)*step, float32(j)*step, size, size))
		}
	}
	return l, nil
}
