package ui

import (
	"errors"
	"testing"

	"snake-gl/game/types"
)

type drawCall struct {
	prim  Primitive
	color Color
}

// recordingBackend keeps every call so tests can check the draw sequence
type recordingBackend struct {
	vertices [][]float32
	released []Primitive
	clears   []Color
	draws    []drawCall
	presents int
	closed   bool
	failAt   int
	drawErr  error
}

func (b *recordingBackend) NewPrimitive(vertices []float32, indices []uint16) (Primitive, error) {
	if b.failAt > 0 && len(b.vertices) == b.failAt {
		return 0, errors.New("out of memory")
	}
	b.vertices = append(b.vertices, vertices)
	return Primitive(len(b.vertices) - 1), nil
}

func (b *recordingBackend) ReleasePrimitive(p Primitive) { b.released = append(b.released, p) }
func (b *recordingBackend) Clear(c Color)                { b.clears = append(b.clears, c) }

func (b *recordingBackend) Draw(p Primitive, c Color) error {
	if b.drawErr != nil {
		return b.drawErr
	}
	b.draws = append(b.draws, drawCall{p, c})
	return nil
}

func (b *recordingBackend) Present() error { b.presents++; return nil }
func (b *recordingBackend) Close() error   { b.closed = true; return nil }

type scene struct {
	head  types.Point
	body  []types.Point
	fruit types.Point
}

func (s scene) Head() types.Point     { return s.head }
func (s scene) Body() []types.Point   { return s.body }
func (s scene) FruitPos() types.Point { return s.fruit }

func newTestRenderer(t *testing.T, b *recordingBackend) *Renderer {
	t.Helper()
	l, err := BuildLayout(referenceParams)
	if err != nil {
		t.Fatalf("BuildLayout() error = %v", err)
	}
	r, err := NewRenderer(b, l, DefaultPalette())
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	return r
}

// cellPrim is the primitive handle the recording backend hands out for cell p
func cellPrim(p types.Point) Primitive {
	return Primitive(1 + p.X + p.Y*10)
}

func TestNewRendererUploadsEverything(t *testing.T) {
	b := &recordingBackend{}
	newTestRenderer(t, b)
	if len(b.vertices) != 101 {
		t.Fatalf("uploaded %d primitives, want 101", len(b.vertices))
	}
	for i, v := range b.vertices {
		if len(v) != 8 {
			t.Errorf("primitive %d has %d floats, want 8", i, len(v))
		}
	}
}

func TestRenderOrder(t *testing.T) {
	b := &recordingBackend{}
	r := newTestRenderer(t, b)
	pal := DefaultPalette()

	s := scene{
		head:  types.Point{X: 4, Y: 1},
		body:  []types.Point{{X: 3, Y: 1}, {X: 2, Y: 1}},
		fruit: types.Point{X: 7, Y: 7},
	}
	if err := r.Render(s); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if len(b.clears) != 1 || b.clears[0] != pal.Clear {
		t.Errorf("clears = %v, want one clear with %v", b.clears, pal.Clear)
	}
	want := []drawCall{
		{0, pal.Field},
		{cellPrim(s.fruit), pal.Fruit},
		{cellPrim(s.head), pal.Snake},
		{cellPrim(s.body[0]), pal.Snake},
		{cellPrim(s.body[1]), pal.Snake},
	}
	if len(b.draws) != len(want) {
		t.Fatalf("draws = %v, want %v", b.draws, want)
	}
	for i := range want {
		if b.draws[i] != want[i] {
			t.Errorf("draw %d = %v, want %v", i, b.draws[i], want[i])
		}
	}
}

func TestRenderSkipsFruitUnderHead(t *testing.T) {
	b := &recordingBackend{}
	r := newTestRenderer(t, b)

	s := scene{head: types.Point{X: 5, Y: 5}, fruit: types.Point{X: 5, Y: 5}}
	if err := r.Render(s); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(b.draws) != 2 {
		t.Fatalf("draws = %v, want field and head only", b.draws)
	}
	if b.draws[1].color != DefaultPalette().Snake {
		t.Errorf("second draw colour = %v, want snake colour", b.draws[1].color)
	}
}

func TestRenderDrawError(t *testing.T) {
	b := &recordingBackend{}
	r := newTestRenderer(t, b)
	b.drawErr = errors.New("lost context")

	if err := r.Render(scene{}); err == nil {
		t.Errorf("Render() error = nil, want error")
	}
}

func TestRenderOutsideGrid(t *testing.T) {
	b := &recordingBackend{}
	r := newTestRenderer(t, b)
	if err := r.Render(scene{head: types.Point{X: 10, Y: 0}}); err == nil {
		t.Errorf("Render() error = nil for a head outside the grid")
	}
}

func TestNewRendererUploadFailure(t *testing.T) {
	b := &recordingBackend{failAt: 5}
	l, _ := BuildLayout(referenceParams)
	if _, err := NewRenderer(b, l, DefaultPalette()); err == nil {
		t.Fatalf("NewRenderer() error = nil, want error")
	}
	if len(b.released) != 5 {
		t.Errorf("released %d primitives after failure, want 5", len(b.released))
	}
}

func TestRendererPresentAndClose(t *testing.T) {
	b := &recordingBackend{}
	r := newTestRenderer(t, b)
	if err := r.Present(); err != nil || b.presents != 1 {
		t.Errorf("Present() = %v, presents = %d", err, b.presents)
	}
	if err := r.Close(); err != nil || !b.closed {
		t.Errorf("Close() = %v, closed = %v", err, b.closed)
	}
	if len(b.released) != 101 {
		t.Errorf("released %d primitives, want 101", len(b.released))
	}
}
