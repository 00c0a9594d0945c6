// Package geometry provides the small amount of linear algebra needed to
// place grid quads on screen: 2/3/4 component vectors and a 4x4 matrix.
package geometry

import "fmt"

// Vector2 is a 2D vector.
type Vector2 struct {
	X, Y float32
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

func (v Vector2) Scale(s float32) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Vec3 extends v with z.
func (v Vector2) Vec3(z float32) Vector3 {
	return Vector3{X: v.X, Y: v.Y, Z: z}
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Vector3 is a 3D vector.
type Vector3 struct {
	X, Y, Z float32
}

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vector3) Neg() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

func (v Vector3) Scale(s float32) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Point returns v as a homogeneous point (w = 1).
func (v Vector3) Point() Vector4 {
	return Vector4{X: v.X, Y: v.Y, Z: v.Z, W: 1}
}

// Vector4 is a homogeneous 4D vector.
type Vector4 struct {
	X, Y, Z, W float32
}

func (v Vector4) Add(o Vector4) Vector4 {
	return Vector4{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z, W: v.W + o.W}
}

func (v Vector4) Sub(o Vector4) Vector4 {
	return Vector4{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z, W: v.W - o.W}
}

func (v Vector4) Neg() Vector4 {
	return Vector4{X: -v.X, Y: -v.Y, Z: -v.Z, W: -v.W}
}

func (v Vector4) Scale(s float32) Vector4 {
	return Vector4{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// XY drops z and w.
func (v Vector4) XY() Vector2 {
	return Vector2{X: v.X, Y: v.Y}
}
