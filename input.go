package interact

import (
	"math"
	"unicode"
)

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a non-printable keyboard key. Printable characters arrive
// through AddInputChar instead.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyCount
)

// InputState is the input snapshot for one frame. The host fills it once per
// frame (typically from a backend adapter) and passes it to every widget's
// Update, so widgets never query global input state.
type InputState struct {
	// Seconds elapsed since the previous frame.
	DeltaTime float32

	// Mouse position
	MouseX, MouseY float32

	// Mouse buttons - current frame state
	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool // True on the frame button was pressed
	mouseUp      [MouseButtonCount]bool // True on the frame button was released

	// Mouse wheel
	MouseWheelX float32
	MouseWheelY float32

	// Keyboard - current frame state
	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool // True on the frame key was pressed
	keyUp      [KeyCount]bool // True on the frame key was released

	// Printable characters pressed this frame, in order
	InputChars []rune
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{
		InputChars: make([]rune, 0, 16),
	}
}

// BeginFrame clears the per-frame edge events and records the frame delta.
// Negative, NaN and infinite deltas are recorded as 0.
// Held keys and buttons keep their state across frames.
func (s *InputState) BeginFrame(dt float32) {
	s.Reset()
	s.DeltaTime = frameDelta(dt)
}

// frameDelta maps negative and non-finite frame deltas to 0.
func frameDelta(dt float32) float32 {
	d := float64(dt)
	if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		return 0
	}
	return dt
}

// Reset clears per-frame input state.
func (s *InputState) Reset() {
	for i := range s.mouseClicked {
		s.mouseClicked[i] = false
	}
	for i := range s.mouseUp {
		s.mouseUp[i] = false
	}
	for i := range s.keyPressed {
		s.keyPressed[i] = false
	}
	for i := range s.keyUp {
		s.keyUp[i] = false
	}
	s.InputChars = s.InputChars[:0]
	s.MouseWheelX = 0
	s.MouseWheelY = 0
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// MousePos returns the mouse position as a vector.
func (s *InputState) MousePos() Vec2 {
	return Vec2{X: s.MouseX, Y: s.MouseY}
}

// SetMouseButton sets mouse button state.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}

	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down

	if down && !wasDown {
		s.mouseClicked[button] = true
	}
	if !down && wasDown {
		s.mouseUp[button] = true
	}
}

// SetKey sets key state.
func (s *InputState) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}

	wasDown := s.keyDown[key]
	s.keyDown[key] = down

	if down && !wasDown {
		s.keyPressed[key] = true
	}
	if !down && wasDown {
		s.keyUp[key] = true
	}
}

// SetMouseWheel sets the mouse wheel delta.
func (s *InputState) SetMouseWheel(x, y float32) {
	s.MouseWheelX = x
	s.MouseWheelY = y
}

// AddInputChar records a printable character pressed this frame.
// Control and other non-printable runes are dropped.
func (s *InputState) AddInputChar(ch rune) {
	if !unicode.IsPrint(ch) {
		return
	}
	s.InputChars = append(s.InputChars, ch)
}

// CharPressed returns the first printable character pressed this frame.
func (s *InputState) CharPressed() (rune, bool) {
	if len(s.InputChars) == 0 {
		return 0, false
	}
	return s.InputChars[0], true
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked returns true if a mouse button was just clicked (pressed this frame).
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// MouseReleased returns true if a mouse button was just released.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseUp[button]
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed returns true if a key was just pressed (pressed this frame).
func (s *InputState) KeyPressed(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// KeyReleased returns true if a key was just released.
func (s *InputState) KeyReleased(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyUp[key]
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	switch k {
	case KeyNone:
		return "--"
	case KeyTab:
		return "Tab"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyDelete:
		return "Del"
	case KeyBackspace:
		return "Backspace"
	case KeySpace:
		return "Space"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Esc"
	default:
		return "?"
	}
}
