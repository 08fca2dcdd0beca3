package interact

import (
	"math"
	"sync"
)

// maxCmdVertices is the largest vertex count a single command can address
// with 16-bit indices.
const maxCmdVertices = math.MaxUint16

// drawListPool provides efficient reuse of DrawList buffers across frames.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// AcquireDrawList gets a cleared DrawList from the pool that renders text
// with font (nil = DefaultFont).
// Call ReleaseDrawList when done to return it.
func AcquireDrawList(font Font) *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	dl.SetFont(font)
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		dl.font = nil
		drawListPool.Put(dl)
	}
}

// DrawList accumulates draw commands for a frame.
// It batches primitives by texture to minimize GPU state changes.
type DrawList struct {
	CmdBuffer []DrawCmd // Draw commands
	VtxBuffer []Vertex  // Vertex data
	IdxBuffer []uint16  // Index data

	font         Font
	clipStack    [][4]float32 // Clip rectangle stack
	currentClip  [4]float32   // Current clip rectangle
	textureID    uint32       // Current texture for batching
	cmdOffset    uint32       // Vertex offset for current command
	idxCmdOffset uint32       // Index offset for current command
}

var _ Canvas = (*DrawList)(nil)

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9}
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// SetFont sets the font used by Text and MeasureText (nil = DefaultFont).
func (dl *DrawList) SetFont(font Font) {
	dl.font = font
}

// Font returns the font used for text.
func (dl *DrawList) Font() Font {
	if dl.font == nil {
		return DefaultFont()
	}
	return dl.font
}

// PushClipRect pushes a new clip rectangle onto the stack.
// All subsequent primitives will be clipped to this rectangle.
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	dl.currentClip = [4]float32{x1, y1, x2, y2}
	dl.splitDraw()
}

// PopClipRect pops the clip rectangle stack.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n > 0 {
		dl.currentClip = dl.clipStack[n-1]
		dl.clipStack = dl.clipStack[:n-1]
		dl.splitDraw()
	}
}

// SetTexture sets the current texture for subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID {
		return
	}
	dl.textureID = textureID
	dl.splitDraw()
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// addVertices adds vertices and returns the starting index relative to the
// current command. A new command is started when 16-bit indices would overflow.
func (dl *DrawList) addVertices(verts ...Vertex) uint16 {
	if len(dl.CmdBuffer) == 0 ||
		len(dl.VtxBuffer)-int(dl.cmdOffset)+len(verts) > maxCmdVertices {
		dl.splitDraw()
	}
	startIdx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	return startIdx
}

// addQuad adds two triangles covering the four corners in order.
func (dl *DrawList) addQuad(v0, v1, v2, v3 Vertex) {
	idx := dl.addVertices(v0, v1, v2, v3)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 || w <= 0 || h <= 0 {
		return
	}
	dl.addQuad(
		Vertex{Pos: [2]float32{x, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, Color: color},
	)
}

// AddRectOutline draws a rectangle outline inside the given bounds.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}
	thickness = minf(thickness, minf(w, h)/2)

	dl.AddRect(x, y, w, thickness, color)
	dl.AddRect(x, y+h-thickness, w, thickness, color)
	dl.AddRect(x, y+thickness, thickness, h-2*thickness, color)
	dl.AddRect(x+w-thickness, y+thickness, thickness, h-2*thickness, color)
}

// AddLine draws a line between two points as a quad of the given thickness.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}

	dx := x2 - x1
	dy := y2 - y1
	inv := float32(1)
	if dx != 0 || dy != 0 {
		inv = 1 / float32(math.Sqrt(float64(dx*dx+dy*dy)))
	}

	// Normal perpendicular to the line, half the thickness long
	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5

	dl.addQuad(
		Vertex{Pos: [2]float32{x1 + nx, y1 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 + nx, y2 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 - nx, y2 - ny}, Color: color},
		Vertex{Pos: [2]float32{x1 - nx, y1 - ny}, Color: color},
	)
}

// AddTriangle draws a filled triangle.
func (dl *DrawList) AddTriangle(x1, y1, x2, y2, x3, y3 float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}

	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x1, y1}, Color: color},
		Vertex{Pos: [2]float32{x2, y2}, Color: color},
		Vertex{Pos: [2]float32{x3, y3}, Color: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2)
}

// GlyphQuad represents a single character's rendering quad.
type GlyphQuad struct {
	X0, Y0 float32 // Screen coordinates (top-left)
	X1, Y1 float32 // Screen coordinates (bottom-right)
	U0, V0 float32 // Texture coordinates (top-left)
	U1, V1 float32 // Texture coordinates (bottom-right)
}

// AddGlyphQuads draws a slice of glyph quads with the specified color.
func (dl *DrawList) AddGlyphQuads(quads []GlyphQuad, color uint32) {
	if color&0xFF000000 == 0 || len(quads) == 0 {
		return
	}

	for _, q := range quads {
		dl.addQuad(
			Vertex{Pos: [2]float32{q.X0, q.Y0}, TexCoord: [2]float32{q.U0, q.V0}, Color: color},
			Vertex{Pos: [2]float32{q.X1, q.Y0}, TexCoord: [2]float32{q.U1, q.V0}, Color: color},
			Vertex{Pos: [2]float32{q.X1, q.Y1}, TexCoord: [2]float32{q.U1, q.V1}, Color: color},
			Vertex{Pos: [2]float32{q.X0, q.Y1}, TexCoord: [2]float32{q.U0, q.V1}, Color: color},
		)
	}
}

// FillRect implements Canvas.
func (dl *DrawList) FillRect(r Rect, color uint32) {
	dl.SetTexture(0)
	dl.AddRect(r.X, r.Y, r.W, r.H, color)
}

// StrokeRect implements Canvas.
func (dl *DrawList) StrokeRect(r Rect, thickness float32, color uint32) {
	dl.SetTexture(0)
	dl.AddRectOutline(r.X, r.Y, r.W, r.H, color, thickness)
}

// Line implements Canvas.
func (dl *DrawList) Line(x1, y1, x2, y2, thickness float32, color uint32) {
	dl.SetTexture(0)
	dl.AddLine(x1, y1, x2, y2, color, thickness)
}

// Triangle implements Canvas.
func (dl *DrawList) Triangle(a, b, c Vec2, color uint32) {
	dl.SetTexture(0)
	dl.AddTriangle(a.X, a.Y, b.X, b.Y, c.X, c.Y, color)
}

// Text implements Canvas.
func (dl *DrawList) Text(text string, x, y float32, fontSize int, color uint32) {
	if text == "" || color&0xFF000000 == 0 {
		return
	}
	font := dl.Font()
	dl.SetTexture(font.TextureID())
	dl.AddGlyphQuads(font.GlyphQuads(text, x, y, float32(fontSize)), color)
}

// MeasureText implements Canvas.
func (dl *DrawList) MeasureText(text string, fontSize int) float32 {
	if text == "" {
		return 0
	}
	return dl.Font().MeasureText(text, float32(fontSize))
}

// Finalize prepares the DrawList for rendering.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	// Remove empty commands
	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
