package ui

import (
	"github.com/pkg/errors"

	"snake-gl/game/types"
)

// Scene is what the renderer needs to know about the game.
type Scene interface {
	Head() types.Point
	Body() []types.Point
	FruitPos() types.Point
}

// Renderer draws a scene using primitives built once at construction.
type Renderer struct {
	backend  Backend
	layout   Layout
	palette  Palette
	boundary Primitive
	cells    []Primitive
}

func NewRenderer(backend Backend, layout Layout, palette Palette) (*Renderer, error) {
	r := &Renderer{
		backend: backend,
		layout:  layout,
		palette: palette,
		cells:   make([]Primitive, 0, len(layout.Cells)),
	}

	var err error
	r.boundary, err = backend.NewPrimitive(layout.Boundary.Vertices(), QuadIndices[:])
	if err != nil {
		return nil, errors.Wrap(err, "upload field boundary")
	}
	for i, q := range layout.Cells {
		p, err := backend.NewPrimitive(q.Vertices(), QuadIndices[:])
		if err != nil {
			r.release()
			return nil, errors.Wrapf(err, "upload cell %d", i)
		}
		r.cells = append(r.cells, p)
	}
	return r, nil
}

// Render clears the surface and draws the field, the fruit and the snake in that order.
func (r *Renderer) Render(s Scene) error {
	r.backend.Clear(r.palette.Clear)

	if err := r.backend.Draw(r.boundary, r.palette.Field); err != nil {
		return errors.Wrap(err, "draw field")
	}

	head := s.Head()
	if fruit := s.FruitPos(); fruit != head {
		if err := r.drawCell(fruit, r.palette.Fruit); err != nil {
			return errors.Wrap(err, "draw fruit")
		}
	}
	if err := r.drawCell(head, r.palette.Snake); err != nil {
		return errors.Wrap(err, "draw head")
	}
	for _, part := range s.Body() {
		if err := r.drawCell(part, r.palette.Snake); err != nil {
			return errors.Wrap(err, "draw body")
		}
	}
	return nil
}

func (r *Renderer) drawCell(p types.Point, c Color) error {
	if !r.layout.Grid.Contains(p) {
		return errors.Errorf("cell %v outside grid %v", p, r.layout.Grid)
	}
	return r.backend.Draw(r.cells[r.layout.Grid.Index(p)], c)
}

func (r *Renderer) Present() error {
	return r.backend.Present()
}

// Close releases the primitives and the backend.
func (r *Renderer) Close() error {
	r.release()
	return r.backend.Close()
}

func (r *Renderer) release() {
	for _, p := range r.cells {
		r.backend.ReleasePrimitive(p)
	}
	r.cells = nil
	r.backend.ReleasePrimitive(r.boundary)
}
