package interact

import "unicode/utf8"

// drawOp is one call recorded by recordCanvas.
type drawOp struct {
	kind      string // fill, stroke, line, triangle, text
	rect      Rect
	x1, y1    float32
	x2, y2    float32
	thickness float32
	text      string
	size      int
	color     uint32
}

// recordCanvas records draw calls. Every rune measures half the font size.
type recordCanvas struct {
	ops []drawOp
}

var _ Canvas = (*recordCanvas)(nil)

func (c *recordCanvas) FillRect(r Rect, color uint32) {
	c.ops = append(c.ops, drawOp{kind: "fill", rect: r, color: color})
}

func (c *recordCanvas) StrokeRect(r Rect, thickness float32, color uint32) {
	c.ops = append(c.ops, drawOp{kind: "stroke", rect: r, thickness: thickness, color: color})
}

func (c *recordCanvas) Line(x1, y1, x2, y2, thickness float32, color uint32) {
	c.ops = append(c.ops, drawOp{kind: "line", x1: x1, y1: y1, x2: x2, y2: y2, thickness: thickness, color: color})
}

func (c *recordCanvas) Triangle(a, b, v Vec2, color uint32) {
	c.ops = append(c.ops, drawOp{kind: "triangle", x1: a.X, y1: a.Y, x2: b.X, y2: b.Y, color: color})
}

func (c *recordCanvas) Text(text string, x, y float32, fontSize int, color uint32) {
	c.ops = append(c.ops, drawOp{kind: "text", x1: x, y1: y, text: text, size: fontSize, color: color})
}

func (c *recordCanvas) MeasureText(text string, fontSize int) float32 {
	return float32(utf8.RuneCountInString(text)) * float32(fontSize) / 2
}

// of returns the recorded ops of one kind in call order.
func (c *recordCanvas) of(kind string) []drawOp {
	var out []drawOp
	for _, op := range c.ops {
		if op.kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// frameDriver feeds scripted input frames to a set of widgets.
type frameDriver struct {
	in *InputState
	ws Widgets
}

func newDriver(ws ...Widget) *frameDriver {
	return &frameDriver{in: NewInputState(), ws: ws}
}

// step runs one frame of dt seconds after applying events to the input.
func (d *frameDriver) step(dt float32, events ...func(in *InputState)) {
	d.in.BeginFrame(dt)
	for _, ev := range events {
		ev(d.in)
	}
	d.ws.UpdateAll(d.in)
}

// click presses and then releases the primary button at (x, y) over two
// zero-length frames.
func (d *frameDriver) click(x, y float32) {
	d.step(0, mouseAt(x, y), mouseButton(true))
	d.step(0, mouseButton(false))
}

// tap presses and then releases key over two zero-length frames.
func (d *frameDriver) tap(k Key) {
	d.step(0, key(k, true))
	d.step(0, key(k, false))
}

// typeText types one rune per zero-length frame.
func (d *frameDriver) typeText(s string) {
	for _, r := range s {
		d.step(0, char(r))
	}
}

func mouseAt(x, y float32) func(*InputState) {
	return func(in *InputState) { in.SetMousePos(x, y) }
}

func mouseButton(down bool) func(*InputState) {
	return func(in *InputState) { in.SetMouseButton(MouseButtonLeft, down) }
}

func key(k Key, down bool) func(*InputState) {
	return func(in *InputState) { in.SetKey(k, down) }
}

func char(r rune) func(*InputState) {
	return func(in *InputState) { in.AddInputChar(r) }
}

func wheel(y float32) func(*InputState) {
	return func(in *InputState) { in.SetMouseWheel(0, y) }
}
