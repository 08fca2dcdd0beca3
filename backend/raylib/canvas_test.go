package raylib

import (
	"testing"

	"github.com/go-theft-auto/interact"
)

func TestToColor(t *testing.T) {
	c := ToColor(interact.RGBA(10, 20, 30, 40))
	if c.R != 10 || c.G != 20 || c.B != 30 || c.A != 40 {
		t.Errorf("ToColor = %+v, want {10 20 30 40}", c)
	}
}

func TestWindingSign(t *testing.T) {
	// Arrow pointing down, as the dropdown draws it.
	a := interact.Vec2{X: 0, Y: 0}
	b := interact.Vec2{X: 10, Y: 0}
	c := interact.Vec2{X: 5, Y: 10}

	if windingSign(a, b, c) <= 0 {
		t.Error("expected positive winding for clockwise-on-screen triangle")
	}
	if windingSign(a, c, b) >= 0 {
		t.Error("swapping two vertices should flip the winding")
	}
}
