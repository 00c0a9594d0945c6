package soft

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	fb "github.com/gonutz/framebuffer"
	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"
)

// PNGPresenter keeps the latest frame in a PNG file.
// The file is replaced atomically so readers never see half a frame.
type PNGPresenter struct {
	Path string
}

func NewPNGPresenter(path string) *PNGPresenter {
	return &PNGPresenter{Path: path}
}

func (p *PNGPresenter) Present(frame image.Image) error {
	tmp, err := os.CreateTemp(filepath.Dir(p.Path), ".frame-*.png")
	if err != nil {
		return errors.Wrap(err, "create frame file")
	}
	defer os.Remove(tmp.Name())

	if err := png.Encode(tmp, frame); err != nil {
		tmp.Close()
		return errors.Wrap(err, "encode frame")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "write frame")
	}
	return errors.Wrap(os.Rename(tmp.Name(), p.Path), "replace frame file")
}

func (p *PNGPresenter) Close() error { return nil }

// FramebufferPresenter scales every frame onto a Linux framebuffer device
type FramebufferPresenter struct {
	dev     *fb.Device
	scratch *image.RGBA
}

func NewFramebufferPresenter(device string) (*FramebufferPresenter, error) {
	dev, err := fb.Open(device)
	if err != nil {
		return nil, errors.Wrapf(err, "open framebuffer %s", device)
	}
	bounds := dev.Bounds()
	return &FramebufferPresenter{
		dev:     dev,
		scratch: image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy())),
	}, nil
}

func (p *FramebufferPresenter) Present(frame image.Image) error {
	xdraw.NearestNeighbor.Scale(p.scratch, p.scratch.Bounds(), frame, frame.Bounds(), xdraw.Src, nil)

	bounds := p.dev.Bounds()
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			px := p.scratch.RGBAAt(x, y)
			p.dev.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: px.R, G: px.G, B: px.B, A: 0xFF})
		}
	}
	return nil
}

func (p *FramebufferPresenter) Close() error {
	p.dev.Close()
	return nil
}
