// Package raylib draws interact widgets with raylib-go and polls raylib's
// input functions into an interact.InputState.
package raylib

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/go-theft-auto/interact"
)

// Canvas implements interact.Canvas with raylib's immediate drawing calls.
// Use it between rl.BeginDrawing and rl.EndDrawing.
type Canvas struct{}

var _ interact.Canvas = Canvas{}

// ToColor converts a packed 0xAABBGGRR color to a raylib color.
func ToColor(c uint32) color.RGBA {
	r, g, b, a := interact.UnpackRGBA(c)
	return rl.NewColor(r, g, b, a)
}

func toRect(r interact.Rect) rl.Rectangle {
	return rl.NewRectangle(r.X, r.Y, r.W, r.H)
}

func toVec(v interact.Vec2) rl.Vector2 {
	return rl.NewVector2(v.X, v.Y)
}

// FillRect implements interact.Canvas.
func (Canvas) FillRect(r interact.Rect, c uint32) {
	rl.DrawRectangleRec(toRect(r), ToColor(c))
}

// StrokeRect implements interact.Canvas.
func (Canvas) StrokeRect(r interact.Rect, thickness float32, c uint32) {
	rl.DrawRectangleLinesEx(toRect(r), thickness, ToColor(c))
}

// Line implements interact.Canvas.
func (Canvas) Line(x1, y1, x2, y2, thickness float32, c uint32) {
	rl.DrawLineEx(rl.NewVector2(x1, y1), rl.NewVector2(x2, y2), thickness, ToColor(c))
}

// Triangle implements interact.Canvas. Vertices are reordered to the winding
// raylib expects.
func (Canvas) Triangle(a, b, c interact.Vec2, col uint32) {
	if windingSign(a, b, c) > 0 {
		b, c = c, b
	}
	rl.DrawTriangle(toVec(a), toVec(b), toVec(c), ToColor(col))
}

// windingSign is the z component of (b-a) x (c-a) in screen coordinates.
func windingSign(a, b, c interact.Vec2) float32 {
	ab := b.Sub(a)
	ac := c.Sub(a)
	return ab.X*ac.Y - ab.Y*ac.X
}

// Text implements interact.Canvas using raylib's default font.
func (Canvas) Text(text string, x, y float32, fontSize int, c uint32) {
	if text == "" {
		return
	}
	rl.DrawText(text, int32(x), int32(y), int32(fontSize), ToColor(c))
}

// MeasureText implements interact.Canvas.
func (Canvas) MeasureText(text string, fontSize int) float32 {
	if text == "" {
		return 0
	}
	return float32(rl.MeasureText(text, int32(fontSize)))
}
