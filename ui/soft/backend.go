// Package soft rasterizes the field on the CPU with gogpu/gg and hands each
// finished frame to a Presenter.
package soft

import (
	"image"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/pkg/errors"

	"snake-gl/logging"
	"snake-gl/ui"
)

// Presenter receives every finished frame
type Presenter interface {
	Present(frame image.Image) error
	Close() error
}

type primitive struct {
	vertices []float32
	indices  []uint16
	live     bool
}

type Backend struct {
	dc        *gg.Context
	width     int
	height    int
	prims     []primitive
	presenter Presenter
	frames    int
	logger    *slog.Logger
}

func New(width, height int, presenter Presenter) (*Backend, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("surface must be positive, got %dx%d", width, height)
	}
	if presenter == nil {
		return nil, errors.New("no presenter")
	}
	b := &Backend{
		dc:        gg.NewContext(width, height),
		width:     width,
		height:    height,
		presenter: presenter,
		logger:    logging.Component("soft"),
	}
	b.logger.Info("software surface ready", "width", width, "height", height)
	return b, nil
}

func (b *Backend) NewPrimitive(vertices []float32, indices []uint16) (ui.Primitive, error) {
	if len(vertices) == 0 || len(vertices)%2 != 0 {
		return 0, errors.Errorf("vertex data must be x, y pairs, got %d floats", len(vertices))
	}
	if len(indices) == 0 || len(indices)%3 != 0 {
		return 0, errors.Errorf("index data must form triangles, got %d indices", len(indices))
	}
	for _, i := range indices {
		if int(i) >= len(vertices)/2 {
			return 0, errors.Errorf("index %d out of range for %d vertices", i, len(vertices)/2)
		}
	}
	b.prims = append(b.prims, primitive{
		vertices: append([]float32(nil), vertices...),
		indices:  append([]uint16(nil), indices...),
		live:     true,
	})
	return ui.Primitive(len(b.prims) - 1), nil
}

func (b *Backend) ReleasePrimitive(p ui.Primitive) {
	if int(p) < len(b.prims) {
		b.prims[p] = primitive{}
	}
}

func (b *Backend) Clear(c ui.Color) {
	b.dc.ClearWithColor(gg.RGBA{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: float64(c.A)})
}

// Draw fills every triangle of p. Triangles are turned counter-clockwise
// first so that both halves of a quad add up under the fill rule.
func (b *Backend) Draw(p ui.Primitive, c ui.Color) error {
	if int(p) >= len(b.prims) || !b.prims[p].live {
		return errors.Errorf("unknown primitive %d", p)
	}
	prim := b.prims[p]

	b.dc.SetRGBA(float64(c.R), float64(c.G), float64(c.B), float64(c.A))
	for t := 0; t+2 < len(prim.indices); t += 3 {
		p0 := b.pixel(prim.vertices, prim.indices[t])
		p1 := b.pixel(prim.vertices, prim.indices[t+1])
		p2 := b.pixel(prim.vertices, prim.indices[t+2])
		if cross(p0, p1, p2) < 0 {
			p1, p2 = p2, p1
		}
		b.dc.MoveTo(p0.x, p0.y)
		b.dc.LineTo(p1.x, p1.y)
		b.dc.LineTo(p2.x, p2.y)
		b.dc.ClosePath()
	}
	return errors.Wrapf(b.dc.Fill(), "fill primitive %d", p)
}

func (b *Backend) Present() error {
	b.frames++
	if err := b.presenter.Present(b.dc.Image()); err != nil {
		return errors.Wrapf(err, "present frame %d", b.frames)
	}
	return nil
}

func (b *Backend) Close() error {
	b.prims = nil
	err := b.presenter.Close()
	if cerr := b.dc.Close(); err == nil {
		err = cerr
	}
	b.logger.Info("software surface closed", "frames", b.frames)
	return err
}

type pt struct{ x, y float64 }

// pixel converts vertex i from device coordinates to surface pixels
func (b *Backend) pixel(vertices []float32, i uint16) pt {
	x, y := float64(vertices[2*int(i)]), float64(vertices[2*int(i)+1])
	return pt{
		x: (x + 1) / 2 * float64(b.width),
		y: (1 - y) / 2 * float64(b.height),
	}
}

func cross(a, b, c pt) float64 {
	return (b.x-a.x)*(c.y-a.y) - (b.y-a.y)*(c.x-a.x)
}

var _ ui.Backend = (*Backend)(nil)
