// Package ebiten draws interact widgets on ebiten images and provides an
// ebiten.Game that hosts an interact.UI.
package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/go-theft-auto/interact"
)

var (
	defaultFace       = text.NewGoXFace(basicfont.Face7x13)
	defaultFaceHeight = float64(basicfont.Face7x13.Height)

	// Solid source pixel for DrawTriangles.
	whitePixel = func() *ebiten.Image {
		img := ebiten.NewImage(1, 1)
		img.Fill(color.White)
		return img
	}()
)

// Canvas implements interact.Canvas on an ebiten image. Text uses the 7x13
// bitmap face scaled to the requested size, matching interact.DefaultFont.
type Canvas struct {
	dst *ebiten.Image
}

var _ interact.Canvas = (*Canvas)(nil)

// NewCanvas returns a canvas drawing onto dst.
func NewCanvas(dst *ebiten.Image) *Canvas {
	return &Canvas{dst: dst}
}

// ToColor converts a packed 0xAABBGGRR color to color.RGBA.
func ToColor(c uint32) color.RGBA {
	r, g, b, a := interact.UnpackRGBA(c)
	return color.RGBA{R: r, G: g, B: b, A: a}
}

// FillRect implements interact.Canvas.
func (c *Canvas) FillRect(r interact.Rect, col uint32) {
	vector.DrawFilledRect(c.dst, r.X, r.Y, r.W, r.H, ToColor(col), false)
}

// StrokeRect implements interact.Canvas. The stroke is drawn inside r.
func (c *Canvas) StrokeRect(r interact.Rect, thickness float32, col uint32) {
	half := thickness / 2
	vector.StrokeRect(c.dst, r.X+half, r.Y+half, r.W-thickness, r.H-thickness, thickness, ToColor(col), false)
}

// Line implements interact.Canvas.
func (c *Canvas) Line(x1, y1, x2, y2, thickness float32, col uint32) {
	vector.StrokeLine(c.dst, x1, y1, x2, y2, thickness, ToColor(col), false)
}

// Triangle implements interact.Canvas.
func (c *Canvas) Triangle(a, b, p interact.Vec2, col uint32) {
	r, g, bl, al := interact.UnpackRGBA(col)
	cr, cg, cb, ca := float32(r)/255, float32(g)/255, float32(bl)/255, float32(al)/255

	vs := make([]ebiten.Vertex, 0, 3)
	for _, v := range []interact.Vec2{a, b, p} {
		vs = append(vs, ebiten.Vertex{
			DstX: v.X, DstY: v.Y,
			SrcX: 0.5, SrcY: 0.5,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		})
	}
	c.dst.DrawTriangles(vs, []uint16{0, 1, 2}, whitePixel, nil)
}

func faceScale(fontSize int) float64 {
	if fontSize <= 0 {
		return 1
	}
	return float64(fontSize) / defaultFaceHeight
}

// Text implements interact.Canvas.
func (c *Canvas) Text(s string, x, y float32, fontSize int, col uint32) {
	if s == "" {
		return
	}
	scale := faceScale(fontSize)
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(ToColor(col))
	text.Draw(c.dst, s, defaultFace, op)
}

// MeasureText implements interact.Canvas.
func (c *Canvas) MeasureText(s string, fontSize int) float32 {
	if s == "" {
		return 0
	}
	w, _ := text.Measure(s, defaultFace, 0)
	return float32(w * faceScale(fontSize))
}
