package geometry

// Matrix4 is a 4x4 matrix stored as four column vectors:
//
//	| I.X  J.X  K.X  L.X |
//	| I.Y  J.Y  K.Y  L.Y |
//	| I.Z  J.Z  K.Z  L.Z |
//	| I.W  J.W  K.W  L.W |
//
// so that M*v = I*v.X + J*v.Y + K*v.Z + L*v.W.
type Matrix4 struct {
	I, J, K, L Vector4
}

// Identity returns the identity matrix.
func Identity() Matrix4 {
	return Matrix4{
		I: Vector4{X: 1},
		J: Vector4{Y: 1},
		K: Vector4{Z: 1},
		L: Vector4{W: 1},
	}
}

// Translation creates a matrix that moves points by v.
func Translation(v Vector3) Matrix4 {
	m := Identity()
	m.L = Vector4{X: v.X, Y: v.Y, Z: v.Z, W: 1}
	return m
}

// Ortho2D creates an orthographic projection mapping the rectangle
// [left, right] x [bottom, top] onto [-1, 1] x [-1, 1]. Z passes through.
// Passing bottom > top flips the y axis, e.g. Ortho2D(0, w, h, 0) puts the
// origin in the top left corner.
func Ortho2D(left, right, bottom, top float32) Matrix4 {
	return Matrix4{
		I: Vector4{X: 2 / (right - left)},
		J: Vector4{Y: 2 / (top - bottom)},
		K: Vector4{Z: 1},
		L: Vector4{
			X: -(right + left) / (right - left),
			Y: -(top + bottom) / (top - bottom),
			W: 1,
		},
	}
}

// MulVec returns m*v.
func (m Matrix4) MulVec(v Vector4) Vector4 {
	return m.I.Scale(v.X).
		Add(m.J.Scale(v.Y)).
		Add(m.K.Scale(v.Z)).
		Add(m.L.Scale(v.W))
}

// Mul returns m*o.
func (m Matrix4) Mul(o Matrix4) Matrix4 {
	return Matrix4{
		I: m.MulVec(o.I),
		J: m.MulVec(o.J),
		K: m.MulVec(o.K),
		L: m.MulVec(o.L),
	}
}

// Translate returns m followed by a translation by v in model space (m * T(v)).
func (m Matrix4) Translate(v Vector3) Matrix4 {
	return m.Mul(Translation(v))
}

// Project transforms a 2D point at z = 0 and returns its x, y.
func (m Matrix4) Project(p Vector2) Vector2 {
	return m.MulVec(p.Vec3(0).Point()).XY()
}
