package interact

// Canvas is the rendering backend as seen by widgets. Draw calls never
// mutate widget state; MeasureText is the only query.
//
// DrawList implements Canvas for GPU backends that consume vertex buffers;
// the raylib and ebiten backends implement it directly on their own drawing
// primitives.
type Canvas interface {
	// FillRect fills r with color.
	FillRect(r Rect, color uint32)

	// StrokeRect draws the outline of r, thickness pixels wide, inside r.
	StrokeRect(r Rect, thickness float32, color uint32)

	// Line draws a line segment.
	Line(x1, y1, x2, y2, thickness float32, color uint32)

	// Triangle fills the triangle a, b, c.
	Triangle(a, b, c Vec2, color uint32)

	// Text draws text with its top-left corner at (x, y).
	Text(text string, x, y float32, fontSize int, color uint32)

	// MeasureText returns the pixel width of text at fontSize.
	MeasureText(text string, fontSize int) float32
}
