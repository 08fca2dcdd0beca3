package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/interact"
)

// InputAdapter turns GLFW window callbacks into an interact.InputState.
//
// Call BeginFrame before glfw.PollEvents each frame: it clears last frame's
// edges and measures the frame delta, then the callbacks fill in this frame's
// events.
type InputAdapter struct {
	window   *glfw.Window
	input    *interact.InputState
	lastTime float64
}

// NewInputAdapter installs input callbacks on window.
func NewInputAdapter(window *glfw.Window) *InputAdapter {
	a := &InputAdapter{
		window:   window,
		input:    interact.NewInputState(),
		lastTime: glfw.GetTime(),
	}

	window.SetKeyCallback(a.keyCallback)
	window.SetCharCallback(a.charCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)

	return a
}

// BeginFrame starts a new input frame and returns the state the callbacks
// will fill.
func (a *InputAdapter) BeginFrame() *interact.InputState {
	now := glfw.GetTime()
	a.input.BeginFrame(float32(now - a.lastTime))
	a.lastTime = now

	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))
	return a.input
}

// Input returns the current input state.
func (a *InputAdapter) Input() *interact.InputState {
	return a.input
}

func (a *InputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k, ok := glfwKeys[key]
	if !ok {
		return
	}

	// Repeat keeps the key down without producing a new press edge.
	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *InputAdapter) charCallback(w *glfw.Window, char rune) {
	a.input.AddInputChar(char)
}

func (a *InputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b, ok := glfwMouseButtons[button]
	if !ok {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *InputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(a.input.MouseWheelX+float32(xoff), a.input.MouseWheelY+float32(yoff))
}

func (a *InputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

var glfwKeys = map[glfw.Key]interact.Key{
	glfw.KeyTab:       interact.KeyTab,
	glfw.KeyLeft:      interact.KeyLeft,
	glfw.KeyRight:     interact.KeyRight,
	glfw.KeyUp:        interact.KeyUp,
	glfw.KeyDown:      interact.KeyDown,
	glfw.KeyHome:      interact.KeyHome,
	glfw.KeyEnd:       interact.KeyEnd,
	glfw.KeyDelete:    interact.KeyDelete,
	glfw.KeyBackspace: interact.KeyBackspace,
	glfw.KeySpace:     interact.KeySpace,
	glfw.KeyEnter:     interact.KeyEnter,
	glfw.KeyKPEnter:   interact.KeyEnter,
	glfw.KeyEscape:    interact.KeyEscape,
}

var glfwMouseButtons = map[glfw.MouseButton]interact.MouseButton{
	glfw.MouseButtonLeft:   interact.MouseButtonLeft,
	glfw.MouseButtonRight:  interact.MouseButtonRight,
	glfw.MouseButtonMiddle: interact.MouseButtonMiddle,
}
