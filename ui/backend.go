package ui

// Primitive is a backend handle to an uploaded quad.
type Primitive uint32

// Backend is the drawing surface the renderer talks to.
type Backend interface {
	// NewPrimitive uploads x, y vertex pairs in device coordinates with their indices.
	NewPrimitive(vertices []float32, indices []uint16) (Primitive, error)
	ReleasePrimitive(p Primitive)
	Clear(c Color)
	Draw(p Primitive, c Color) error
	// Present shows the frame drawn since the last Clear.
	Present() error
	Close() error
}
