package geometry

import (
	"math"
	"testing"
)

const eps = 1e-5

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < eps
}

func nearVec2(a, b Vector2) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func TestOrtho2DCorners(t *testing.T) {
	m := Ortho2D(0, 800, 800, 0)
	tests := []struct {
		name string
		in   Vector2
		want Vector2
	}{
		{"top left", Vector2{0, 0}, Vector2{-1, 1}},
		{"top right", Vector2{800, 0}, Vector2{1, 1}},
		{"bottom left", Vector2{0, 800}, Vector2{-1, -1}},
		{"bottom right", Vector2{800, 800}, Vector2{1, -1}},
		{"center", Vector2{400, 400}, Vector2{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Project(tt.in); !nearVec2(got, tt.want) {
				t.Errorf("Project(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTranslateAppliesInModelSpace(t *testing.T) {
	m := Ortho2D(0, 800, 800, 0).Translate(Vector3{X: 77.5, Y: 77.5})
	got := m.Project(Vector2{0, 0})
	want := Ortho2D(0, 800, 800, 0).Project(Vector2{77.5, 77.5})
	if !nearVec2(got, want) {
		t.Errorf("Project(0,0) = %v, want %v", got, want)
	}
}

func TestIdentity(t *testing.T) {
	v := Vector4{X: 1, Y: -2, Z: 3, W: 1}
	if got := Identity().MulVec(v); got != v {
		t.Errorf("Identity().MulVec(%v) = %v", v, got)
	}
	m := Ortho2D(-3, 5, 2, 9)
	if got := Identity().Mul(m); got != m {
		t.Errorf("Identity().Mul(m) = %v, want %v", got, m)
	}
}

func TestMulAssociatesWithMulVec(t *testing.T) {
	a := Ortho2D(0, 640, 480, 0)
	b := Translation(Vector3{X: 10, Y: -4, Z: 2})
	v := Vector4{X: 3, Y: 7, Z: 0, W: 1}

	got := a.Mul(b).MulVec(v)
	want := a.MulVec(b.MulVec(v))
	if !near(got.X, want.X) || !near(got.Y, want.Y) || !near(got.Z, want.Z) || !near(got.W, want.W) {
		t.Errorf("(a*b)*v = %v, want %v", got, want)
	}
}

func TestVectorOps(t *testing.T) {
	a := Vector2{1, 2}
	b := Vector2{3, 5}
	if got := a.Add(b); got != (Vector2{4, 7}) {
		t.Errorf("Add = %v", got)
	}
	if got := b.Sub(a); got != (Vector2{2, 3}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Neg(); got != (Vector2{-1, -2}) {
		t.Errorf("Neg = %v", got)
	}
	if got := (Vector3{1, 2, 3}).Point(); got != (Vector4{1, 2, 3, 1}) {
		t.Errorf("Point = %v", got)
	}
}
