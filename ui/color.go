package ui

import "image/color"

// Color is a linear RGBA colour with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// RGBA converts c into an 8 bit per channel colour.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: channel(c.A),
	}
}

// Vec4 returns the components in shader uniform order.
func (c Color) Vec4() []float32 {
	return []float32{c.R, c.G, c.B, c.A}
}

func channel(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Palette groups the colours used for a frame.
type Palette struct {
	Clear Color
	Field Color
	Snake Color
	Fruit Color
}

func DefaultPalette() Palette {
	return Palette{
		Clear: Color{R: 0, G: 0, B: 0, A: 1},
		Field: Color{R: 0.26, G: 0.28, B: 0.32, A: 1},
		Snake: Color{R: 1, G: 1, B: 1, A: 1},
		Fruit: Color{R: 0.984, G: 0.11, B: 0.369, A: 1},
	}
}
