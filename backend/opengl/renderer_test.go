package opengl

import (
	"math"
	"testing"
)

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestScissorBoxFlipsY(t *testing.T) {
	x, y, w, h, ok := scissorBox([4]float32{10, 20, 110, 70}, 800, 600)
	if !ok {
		t.Fatal("expected visible scissor box")
	}
	if x != 10 || y != 530 || w != 100 || h != 50 {
		t.Errorf("scissorBox = (%d, %d, %d, %d), want (10, 530, 100, 50)", x, y, w, h)
	}
}

func TestScissorBoxClampsToFramebuffer(t *testing.T) {
	x, y, w, h, ok := scissorBox([4]float32{-1e9, -1e9, 1e9, 1e9}, 800, 600)
	if !ok {
		t.Fatal("expected visible scissor box")
	}
	if x != 0 || y != 0 || w != 800 || h != 600 {
		t.Errorf("scissorBox = (%d, %d, %d, %d), want full framebuffer", x, y, w, h)
	}
}

func TestScissorBoxOffscreen(t *testing.T) {
	if _, _, _, _, ok := scissorBox([4]float32{900, 0, 1000, 100}, 800, 600); ok {
		t.Error("clip entirely right of the framebuffer should be rejected")
	}
	if _, _, _, _, ok := scissorBox([4]float32{50, 50, 50, 80}, 800, 600); ok {
		t.Error("zero-width clip should be rejected")
	}
}

func TestOrthoMatrixMapsCorners(t *testing.T) {
	m := orthoMatrix(0, 800, 600, 0, -1, 1)

	project := func(x, y float32) (float32, float32) {
		return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
	}

	if px, py := project(0, 0); !approxEqual(px, -1) || !approxEqual(py, 1) {
		t.Errorf("top-left projects to (%v, %v), want (-1, 1)", px, py)
	}
	if px, py := project(800, 600); !approxEqual(px, 1) || !approxEqual(py, -1) {
		t.Errorf("bottom-right projects to (%v, %v), want (1, -1)", px, py)
	}
}
